package capture

import (
	"errors"
	"os"
	"time"

	"coinwatch/lib/configutil"
	"coinwatch/lib/render"
	"coinwatch/lib/scrapers/coinmarketcap"
	"coinwatch/services/snapshots"

	"dario.cat/mergo"
)

type ScreenerConfig struct {
	MinPrice     float64  `json:"min_price"`
	MinChange24h float64  `json:"min_change_24h"`
	Watchlist    []string `json:"watchlist"`
}

type Config struct {
	Url               string         `json:"url"`
	RenderWaitSeconds int            `json:"render_wait_seconds"`
	MaxRows           int            `json:"max_rows"`
	CsvPath           string         `json:"csv_path"`
	WorkbookPath      string         `json:"workbook_path"`
	Screener          ScreenerConfig `json:"screener"`
}

// DefaultConfig returns the stock capture settings: the public
// listings page, an 8 second render wait, the top 60 rows and the two
// store files in the working directory.
func DefaultConfig() Config {
	return Config{
		Url:               coinmarketcap.BaseUrl,
		RenderWaitSeconds: 8,
		MaxRows:           coinmarketcap.DefaultLimit,
		CsvPath:           "crypto_prices.csv",
		WorkbookPath:      "crypto_prices.xlsx",
		Screener: ScreenerConfig{
			MinPrice:     10000,
			MinChange24h: 5,
		},
	}
}

// LoadConfig reads the config file at path and fills any zero fields
// from the defaults. A missing file is not an error, the defaults
// apply unchanged.
func LoadConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfig[Config](path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	err = mergo.Merge(&cfg, DefaultConfig())
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) RenderWait() time.Duration {
	return time.Duration(c.RenderWaitSeconds) * time.Second
}

// Scraper builds the listings scraper this config describes around the
// given renderer.
func (c Config) Scraper(renderer render.Renderer) coinmarketcap.Scraper {
	return coinmarketcap.Scraper{
		Renderer:   renderer,
		BaseUrl:    c.Url,
		RenderWait: c.RenderWait(),
		Limit:      c.MaxRows,
	}
}

// Store builds the snapshot store this config describes.
func (c Config) Store() snapshots.Store {
	return snapshots.Store{
		CsvPath:      c.CsvPath,
		WorkbookPath: c.WorkbookPath,
	}
}
