// Package render abstracts the page-rendering collaborator the
// scrapers pull their documents from.
package render

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Renderer loads a page and hands back its rendered document. A
// renderer holds at most one page at a time; Navigate replaces it.
//
// WaitForRender is a fixed delay, not a readiness signal, so callers
// must tolerate a page whose dynamic content is still incomplete.
type Renderer interface {
	Navigate(ctx context.Context, url string) error
	WaitForRender(ctx context.Context, d time.Duration) error
	Document() (*goquery.Document, error)
	Close() error
}
