package coinmarketcap

import (
	"context"
	_ "embed"
	"strings"
	"testing"

	"coinwatch/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/listings.html
var listingsHtml string

//go:embed testdata/sparse.html
var sparseHtml string

func document(t testing.TB, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractListingsFullTable(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/coinmarketcap")
	defer cleanup()

	ctx := context.Background()
	const stamp = "2024-06-01 09:30:00"

	// the fixture holds 62 coin rows plus an ad row after rank 5
	listings := ExtractListings(ctx, document(t, listingsHtml), DefaultLimit, stamp)
	require.Len(t, listings, DefaultLimit)

	for _, listing := range listings {
		require.Equal(t, stamp, listing.CapturedAt)
	}

	expectHead := []Listing{
		{
			CapturedAt: stamp,
			Name:       "Bitcoin",
			Price:      "$43,250.12",
			Change24h:  "-2.45%",
			MarketCap:  "$845,123,456,789",
		},
		{
			CapturedAt: stamp,
			Name:       "Ethereum",
			Price:      "$2,310.55",
			Change24h:  "1.12%",
			MarketCap:  "$277,654,321,098",
		},
		{
			CapturedAt: stamp,
			Name:       "Tether USDt",
			Price:      "$1.00",
			Change24h:  "0.01%",
			MarketCap:  "$91,234,567,890",
		},
	}
	diff := cmp.Diff(expectHead, listings[:3])
	require.Empty(t, diff)

	// the short ad row sits between ranks 5 and 6 and must not shift
	// or abort the batch
	require.Equal(t, "Solana", listings[4].Name)
	require.Equal(t, "XRP", listings[5].Name)

	// placeholder change values survive as display strings
	require.Equal(t, "Jupiter", listings[57].Name)
	require.Equal(t, "--", listings[57].Change24h)

	require.Equal(t, "Worldcoin", listings[59].Name)
}

func TestExtractListingsRespectsLimit(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/coinmarketcap")
	defer cleanup()

	listings := ExtractListings(context.Background(), document(t, listingsHtml), 3, "2024-06-01 09:30:00")
	require.Len(t, listings, 3)
	require.Equal(t, "Tether USDt", listings[2].Name)
}

func TestExtractListingsSkipsMalformedRows(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/coinmarketcap")
	defer cleanup()

	// sparse fixture: valid, ad (1 cell), valid with <br> name, valid
	// with empty name cell, valid
	listings := ExtractListings(context.Background(), document(t, sparseHtml), DefaultLimit, "2024-06-01 09:30:00")

	var names []string
	for _, listing := range listings {
		names = append(names, listing.Name)
	}
	diff := cmp.Diff([]string{"Bitcoin", "Ethereum", "Solana"}, names)
	require.Empty(t, diff)

	require.Equal(t, "$2,310.55", listings[1].Price)
	require.Equal(t, "1.12%", listings[1].Change24h)
}

func TestExtractListingsEmptyTable(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/coinmarketcap")
	defer cleanup()

	doc := document(t, "<html><body><p>no table here</p></body></html>")
	listings := ExtractListings(context.Background(), doc, DefaultLimit, "2024-06-01 09:30:00")
	require.Empty(t, listings)
}
