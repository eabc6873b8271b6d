// Package fetch retrieves the raw product page. Failures here are the
// fatal tier: they surface to the caller as errors and never produce a
// partial snapshot.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var ErrBadStatus = errors.New("unexpected response status")

// Fetcher supplies the raw HTML for a product URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type Options struct {
	UserAgent       string
	AcceptLanguage  string
	Accept          string
	Timeout         time.Duration
	RequestInterval time.Duration
}

func DefaultOptions() *Options {
	return &Options{
		UserAgent:       "Mozilla/5.0 (one-product-check)",
		AcceptLanguage:  "de-CH,de;q=0.9,en;q=0.8",
		Accept:          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		Timeout:         30 * time.Second,
		RequestInterval: 2 * time.Second,
	}
}

// HTTPFetcher fetches over plain HTTP with the configured headers,
// paced so repeated checks do not hammer the retailer.
type HTTPFetcher struct {
	client  *http.Client
	opts    *Options
	limiter *rate.Limiter
}

func NewHTTPFetcher(opts *Options) *HTTPFetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	limit := rate.Inf
	if opts.RequestInterval > 0 {
		limit = rate.Every(opts.RequestInterval)
	}
	return &HTTPFetcher{
		client:  &http.Client{Timeout: opts.Timeout},
		opts:    opts,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept-Language", f.opts.AcceptLanguage)
	req.Header.Set("Accept", f.opts.Accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	return string(body), nil
}
