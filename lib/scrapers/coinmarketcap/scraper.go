// Package coinmarketcap scrapes the coin listings table off the
// rendered front page.
package coinmarketcap

import (
	"context"
	"time"

	"coinwatch/lib/render"
	"coinwatch/lib/timezone"

	"go.opentelemetry.io/otel/codes"
)

const BaseUrl = "https://coinmarketcap.com/"

// DefaultRenderWait gives the page's client-side table time to fill in
// before extraction. The wait is a fixed delay, so a slow page can
// still come up short; the extractor tolerates that.
const DefaultRenderWait = time.Second * 8

type Scraper struct {
	Renderer   render.Renderer
	BaseUrl    string
	RenderWait time.Duration
	Limit      int
}

func NewScraper(renderer render.Renderer) Scraper {
	return Scraper{
		Renderer:   renderer,
		BaseUrl:    BaseUrl,
		RenderWait: DefaultRenderWait,
		Limit:      DefaultLimit,
	}
}

// Scrape loads the listings page, waits for it to settle and extracts
// one capture batch. All records share a single clock read taken just
// before extraction.
func (s Scraper) Scrape(ctx context.Context) ([]Listing, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	err := s.Renderer.Navigate(ctx, s.BaseUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to navigate to listings page")
		return nil, err
	}
	err = s.Renderer.WaitForRender(ctx, s.RenderWait)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "interrupted while waiting for render")
		return nil, err
	}
	doc, err := s.Renderer.Document()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to query rendered document")
		return nil, err
	}

	capturedAt := timezone.Stamp(timezone.Now())
	return ExtractListings(ctx, doc, s.Limit, capturedAt), nil
}
