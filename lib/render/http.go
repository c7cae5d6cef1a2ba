package render

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"coinwatch/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

// HttpRenderer renders a page by fetching its html once over http. It
// cannot execute scripts, so pages that populate their tables
// client-side come back with whatever the server put in the initial
// document.
type HttpRenderer struct {
	Http *resty.Client
	doc  *goquery.Document
}

func NewHttpRenderer() (*HttpRenderer, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	return &HttpRenderer{Http: client}, nil
}

func (r *HttpRenderer) Navigate(ctx context.Context, pageUrl string) error {
	ctx, span := tracer.Start(ctx, "Navigate")
	defer span.End()

	res, err := r.Http.R().
		SetContext(ctx).
		Get(pageUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page")
		return err
	}
	if res.IsError() {
		err := fmt.Errorf("fetch %s: %s", pageUrl, res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "got error status")
		return err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return err
	}
	r.doc = doc
	return nil
}

func (r *HttpRenderer) WaitForRender(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *HttpRenderer) Document() (*goquery.Document, error) {
	if r.doc == nil {
		return nil, fmt.Errorf("no page has been navigated to")
	}
	return r.doc, nil
}

func (r *HttpRenderer) Close() error {
	r.Http.GetClient().CloseIdleConnections()
	return nil
}
