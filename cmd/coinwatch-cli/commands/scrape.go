package commands

import (
	"fmt"
	"log/slog"
	"time"

	"coinwatch/lib/render"
	"coinwatch/lib/restyutil"
	"coinwatch/lib/serviceutil"
	"coinwatch/lib/tableutil"
	"coinwatch/services/capture"

	"github.com/spf13/cobra"
)

var scrapeConfig *string
var scrapeCsv *string
var scrapeWorkbook *string

func init() {
	scrapeConfig = scrapeCmd.Flags().String("config", "config.json5", "The capture config to read.")
	scrapeCsv = scrapeCmd.Flags().String("csv", "", "Override the configured csv log path.")
	scrapeWorkbook = scrapeCmd.Flags().String("workbook", "", "Override the configured workbook path.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--config <path>] [--csv <path>] [--workbook <path>]",
	Short: "Runs one capture cycle and appends it to the history files.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := capture.LoadConfig(*scrapeConfig)
		if err != nil {
			serviceutil.Fatal("read config", err)
		}
		if *scrapeCsv != "" {
			cfg.CsvPath = *scrapeCsv
		}
		if *scrapeWorkbook != "" {
			cfg.WorkbookPath = *scrapeWorkbook
		}

		render.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/renderer"))
		renderer, err := render.NewHttpRenderer()
		if err != nil {
			serviceutil.Fatal("initialize renderer", err)
		}

		t1 := time.Now()
		listings, err := capture.Run(cmd.Context(), cfg.Scraper(renderer), cfg.Store())
		renderer.Close()
		if err != nil {
			serviceutil.Fatal("capture listings", err)
		}
		t2 := time.Now()

		slog.Info("capture time", "records", len(listings), "seconds", t2.Sub(t1).Seconds())
		tableutil.RenderListings(fmt.Sprintf("Top %d Coins", len(listings)), listings)
	},
}
