package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"coinwatch/lib/render"
	"coinwatch/lib/screener"
	"coinwatch/lib/serviceutil"
	"coinwatch/lib/tableutil"
	"coinwatch/services/capture"
)

func main() {
	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx)

	cfg, err := capture.LoadConfig("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	err = run(ctx, cfg)
	if err != nil {
		serviceutil.Fatal("capture listings", err)
	}
}

func run(ctx context.Context, cfg capture.Config) error {
	renderer, err := render.NewHttpRenderer()
	if err != nil {
		return err
	}
	defer renderer.Close()

	t1 := time.Now()
	listings, err := capture.Run(ctx, cfg.Scraper(renderer), cfg.Store())
	if err != nil {
		return err
	}
	t2 := time.Now()

	slog.InfoContext(ctx, "capture time",
		"records", len(listings),
		"seconds", t2.Sub(t1).Seconds())

	tableutil.RenderListings(
		fmt.Sprintf("Top %d Coins", len(listings)),
		listings,
	)
	tableutil.RenderListings(
		fmt.Sprintf("Price >= $%v", cfg.Screener.MinPrice),
		screener.MinPrice(listings, cfg.Screener.MinPrice),
	)
	tableutil.RenderListings(
		fmt.Sprintf("24h Gain >= %v%%", cfg.Screener.MinChange24h),
		screener.TopGainers(listings, cfg.Screener.MinChange24h),
	)
	if len(cfg.Screener.Watchlist) > 0 {
		tableutil.RenderListings(
			"Watchlist",
			screener.Watchlist(listings, cfg.Screener.Watchlist),
		)
	}
	return nil
}
