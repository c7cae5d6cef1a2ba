// Package capture runs one scrape-and-persist cycle against the two
// historical stores.
package capture

import (
	"context"

	"coinwatch/lib/scrapers/coinmarketcap"
	"coinwatch/services/snapshots"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("coinwatch.services.capture")

// Run scrapes one batch and appends it to both stores, csv log first.
// The scraper's renderer stays owned by the caller, which must close
// it on every exit path. The batch is returned for report-only
// filtering.
func Run(ctx context.Context, scraper coinmarketcap.Scraper, store snapshots.Store) ([]coinmarketcap.Listing, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	listings, err := scraper.Scrape(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "scrape failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("records", len(listings)))

	err = store.Record(ctx, listings)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to record batch")
		return nil, err
	}
	return listings, nil
}
