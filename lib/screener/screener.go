// Package screener filters capture batches after the fact. Every
// filter is pure and order-preserving and never mutates its input.
package screener

import (
	"coinwatch/lib/pricefmt"
	"coinwatch/lib/scrapers/coinmarketcap"
	"coinwatch/lib/textutil"

	"github.com/antzucaro/matchr"
)

// MinPrice keeps listings whose price parses and is at least min.
// An unparseable price excludes the listing, it is not an error.
func MinPrice(listings []coinmarketcap.Listing, min float64) []coinmarketcap.Listing {
	var out []coinmarketcap.Listing
	for _, listing := range listings {
		price, ok := pricefmt.ParsePrice(listing.Price)
		if !ok || price < min {
			continue
		}
		out = append(out, listing)
	}
	return out
}

// TopGainers keeps listings whose 24h change parses and is at least
// minChange.
func TopGainers(listings []coinmarketcap.Listing, minChange float64) []coinmarketcap.Listing {
	var out []coinmarketcap.Listing
	for _, listing := range listings {
		change, ok := pricefmt.ParsePercent(listing.Change24h)
		if !ok || change < minChange {
			continue
		}
		out = append(out, listing)
	}
	return out
}

const watchlistSimilarity = 0.9

// Watchlist keeps listings whose display name matches one of the
// requested names: by normalized containment first, then by
// Jaro-Winkler similarity so close spellings still land.
func Watchlist(listings []coinmarketcap.Listing, names []string) []coinmarketcap.Listing {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		key := textutil.NormalizeName(name)
		if key == "" {
			continue
		}
		normalized = append(normalized, key)
	}
	if len(normalized) == 0 {
		return nil
	}

	var out []coinmarketcap.Listing
	for _, listing := range listings {
		if matchesWatchlist(listing.Name, normalized) {
			out = append(out, listing)
		}
	}
	return out
}

func matchesWatchlist(name string, normalized []string) bool {
	if textutil.MatchName(name, normalized) {
		return true
	}
	key := textutil.NormalizeName(name)
	for _, want := range normalized {
		similarity := matchr.JaroWinkler(key, want, false)
		if similarity >= watchlistSimilarity {
			return true
		}
	}
	return false
}
