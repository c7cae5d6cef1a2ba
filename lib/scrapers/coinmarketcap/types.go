package coinmarketcap

// Listing is one observation of one coin at one capture time. Every
// field holds the raw display string from the page; numeric
// interpretation is lib/pricefmt's job and happens at filter time.
type Listing struct {
	CapturedAt string
	Name       string
	Price      string
	Change24h  string
	MarketCap  string
}
