package coinmarketcap

import (
	"context"
	"log/slog"

	"coinwatch/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

// column positions on the listings table, zero-indexed. the page has no
// stable classes or ids, so position is the contract; the only guard
// against layout drift is the cell-count check below.
const (
	nameColumn      = 1
	priceColumn     = 2
	changeColumn    = 4
	marketCapColumn = 6
)

// a real listing row carries rank through trailing action cells;
// anything shorter is an ad, a placeholder or a load-more row
const minColumns = 8

const DefaultLimit = 60

// ExtractListings pulls the first limit coin rows out of the rendered
// listings table. Rows with too few cells are skipped silently; rows
// that fail extraction are logged and dropped without aborting the
// batch. capturedAt is stamped onto every record unchanged.
func ExtractListings(ctx context.Context, doc *goquery.Document, limit int, capturedAt string) []Listing {
	ctx, span := tracer.Start(ctx, "ExtractListings")
	defer span.End()

	var listings []Listing
	var short, dropped int

	doc.Find("table tbody tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if len(listings) >= limit {
			return false
		}

		cells := row.Find("td")
		if cells.Length() < minColumns {
			short++
			return true
		}

		// the name cell stacks ticker and rank lines under the
		// display name, only line 0 is the name
		name := htmlutil.FirstLine(htmlutil.RenderedText(cells.Eq(nameColumn)))
		if name == "" {
			dropped++
			slog.WarnContext(ctx, "dropping listing row with empty name", "row", i)
			return true
		}

		listings = append(listings, Listing{
			CapturedAt: capturedAt,
			Name:       name,
			Price:      htmlutil.RenderedText(cells.Eq(priceColumn)),
			Change24h:  htmlutil.RenderedText(cells.Eq(changeColumn)),
			MarketCap:  htmlutil.RenderedText(cells.Eq(marketCapColumn)),
		})
		return true
	})

	span.SetAttributes(
		attribute.Int("extracted", len(listings)),
		attribute.Int("skipped_short", short),
		attribute.Int("dropped", dropped),
	)
	if short > 0 || dropped > 0 {
		slog.DebugContext(ctx, "skipped listing rows", "short", short, "dropped", dropped)
	}
	return listings
}
