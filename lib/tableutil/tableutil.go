// Package tableutil renders capture batches as stdout tables.
package tableutil

import (
	"os"

	"coinwatch/lib/scrapers/coinmarketcap"

	"github.com/jedib0t/go-pretty/v6/table"
)

func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// RenderListings prints one batch under a title. An empty batch still
// renders the header so a run visibly produced nothing.
func RenderListings(title string, listings []coinmarketcap.Listing) {
	t := NewTable()
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Name", "Price", "24h Change", "Market Cap"})
	for _, listing := range listings {
		t.AppendRow(table.Row{listing.Name, listing.Price, listing.Change24h, listing.MarketCap})
	}
	t.Render()
}

// RenderHistory is RenderListings with a capture timestamp column, for
// listings spanning more than one batch.
func RenderHistory(title string, listings []coinmarketcap.Listing) {
	t := NewTable()
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Timestamp", "Name", "Price", "24h Change", "Market Cap"})
	for _, listing := range listings {
		t.AppendRow(table.Row{listing.CapturedAt, listing.Name, listing.Price, listing.Change24h, listing.MarketCap})
	}
	t.Render()
}
