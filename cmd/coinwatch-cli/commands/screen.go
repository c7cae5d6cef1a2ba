package commands

import (
	"fmt"

	"coinwatch/lib/screener"
	"coinwatch/lib/serviceutil"
	"coinwatch/lib/tableutil"
	"coinwatch/services/capture"
	"coinwatch/services/snapshots"

	"github.com/spf13/cobra"
)

var screenConfig *string
var screenCsv *string
var screenMinPrice *float64
var screenMinChange *float64

func init() {
	screenConfig = screenCmd.Flags().String("config", "config.json5", "The capture config to read.")
	screenCsv = screenCmd.Flags().String("csv", "", "The csv history to screen, defaults to the configured log.")
	screenMinPrice = screenCmd.Flags().Float64("min-price", 0, "Override the configured minimum price.")
	screenMinChange = screenCmd.Flags().Float64("min-change", 0, "Override the configured minimum 24h change.")
	rootCmd.AddCommand(screenCmd)
}

var screenCmd = &cobra.Command{
	Use:   "screen [--config <path>] [--csv <path>] [--min-price <n>] [--min-change <n>]",
	Short: "Re-runs the screeners over the accumulated csv history.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := capture.LoadConfig(*screenConfig)
		if err != nil {
			serviceutil.Fatal("read config", err)
		}
		path := cfg.CsvPath
		if *screenCsv != "" {
			path = *screenCsv
		}
		minPrice := cfg.Screener.MinPrice
		if cmd.Flags().Changed("min-price") {
			minPrice = *screenMinPrice
		}
		minChange := cfg.Screener.MinChange24h
		if cmd.Flags().Changed("min-change") {
			minChange = *screenMinChange
		}

		history, err := snapshots.ReadCsv(cmd.Context(), path)
		if err != nil {
			serviceutil.Fatal("read csv history", err)
		}

		tableutil.RenderHistory(
			fmt.Sprintf("Price >= $%v", minPrice),
			screener.MinPrice(history, minPrice),
		)
		tableutil.RenderHistory(
			fmt.Sprintf("24h Gain >= %v%%", minChange),
			screener.TopGainers(history, minChange),
		)
		if len(cfg.Screener.Watchlist) > 0 {
			tableutil.RenderHistory(
				"Watchlist",
				screener.Watchlist(history, cfg.Screener.Watchlist),
			)
		}
	},
}
