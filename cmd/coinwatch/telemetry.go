package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"coinwatch/lib/serviceutil"
	"coinwatch/lib/telemetry"
)

func InitTelemetry(ctx context.Context) {
	telemetry.InitSlog(false)

	tel, err := telemetry.SetupFromEnv(ctx, "coinwatch")
	if errors.Is(err, os.ErrNotExist) {
		slog.DebugContext(ctx, "no telemetry.json5 found, telemetry disabled")
		return
	}
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		tel.Shutdown(context.Background())
	}()
	telemetry.InstrumentPerfStats(ctx)
}
