/*
Package gmp fetches the IPO grey market premium page and turns its table into
offering records, closing dates and gains.
*/
package gmp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

const (
	PageURL        = "https://ipowatch.in/ipo-grey-market-premium-latest-ipo-gmp/"
	userAgent      = "Mozilla/5.0"
	defaultTimeout = 30 * time.Second
)

var (
	ErrFetch   = errors.New("failed to fetch GMP page")
	ErrNoTable = errors.New("no table found on page")
)

// Fetcher downloads and parses a page. It does not retry.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher returns a Fetcher with a browser user agent and the given
// timeout. A zero timeout means 30s.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New()
	client.SetHeader("User-Agent", userAgent)
	client.SetTimeout(timeout)
	client.SetRetryCount(0)

	return &Fetcher{client: client}
}

// Fetch GETs url and parses the body as HTML. Transport errors and non-2xx
// responses wrap ErrFetch.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*html.Node, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: received status code %d from %s", ErrFetch, resp.StatusCode(), url)
	}

	doc, err := html.Parse(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", url, err)
	}
	return doc, nil
}

// FirstTable returns the first <table> in doc.
func FirstTable(doc *html.Node) (*goquery.Selection, error) {
	table := goquery.NewDocumentFromNode(doc).Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}
	return table, nil
}
