package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() *Options {
	opts := DefaultOptions()
	opts.RequestInterval = 0
	return opts
}

func TestHTTPFetcherSendsConfiguredHeaders(t *testing.T) {
	var gotUserAgent, gotAcceptLanguage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAcceptLanguage = r.Header.Get("Accept-Language")
		w.Write([]byte("<html><body>an Lager</body></html>"))
	}))
	defer server.Close()

	f := NewHTTPFetcher(testOptions())
	html, err := f.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "<html><body>an Lager</body></html>", html)
	assert.Equal(t, "Mozilla/5.0 (one-product-check)", gotUserAgent)
	assert.Equal(t, "de-CH,de;q=0.9,en;q=0.8", gotAcceptLanguage)
}

func TestHTTPFetcherRejectsBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := NewHTTPFetcher(testOptions())
	_, err := f.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestHTTPFetcherHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewHTTPFetcher(testOptions())
	_, err := f.Fetch(ctx, server.URL)

	require.Error(t, err)
}
