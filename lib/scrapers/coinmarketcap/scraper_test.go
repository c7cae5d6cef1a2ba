package coinmarketcap

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"coinwatch/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// fixtureRenderer serves a canned page without any network access
type fixtureRenderer struct {
	html        string
	failOnNav   bool
	navigatedTo string
	waited      time.Duration
	closed      bool
}

func (r *fixtureRenderer) Navigate(ctx context.Context, url string) error {
	if r.failOnNav {
		return fmt.Errorf("navigate %s: connection refused", url)
	}
	r.navigatedTo = url
	return nil
}

func (r *fixtureRenderer) WaitForRender(ctx context.Context, d time.Duration) error {
	r.waited = d
	return nil
}

func (r *fixtureRenderer) Document() (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(r.html))
}

func (r *fixtureRenderer) Close() error {
	r.closed = true
	return nil
}

func TestScrape(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/coinmarketcap")
	defer cleanup()

	renderer := &fixtureRenderer{html: listingsHtml}
	scraper := NewScraper(renderer)
	scraper.RenderWait = time.Millisecond

	listings, err := scraper.Scrape(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, DefaultLimit)
	require.Equal(t, BaseUrl, renderer.navigatedTo)
	require.Equal(t, time.Millisecond, renderer.waited)

	// one clock read for the whole batch
	first := listings[0].CapturedAt
	require.NotEmpty(t, first)
	for _, listing := range listings {
		require.Equal(t, first, listing.CapturedAt)
	}
	_, err = time.Parse(time.DateTime, first)
	require.NoError(t, err)
}

func TestScrapeNavigateFailure(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/coinmarketcap")
	defer cleanup()

	renderer := &fixtureRenderer{failOnNav: true}
	scraper := NewScraper(renderer)

	_, err := scraper.Scrape(context.Background())
	require.Error(t, err)
}
