// Package http provides the HTTP implementation of limitless.Fetcher.
// Every fetch passes through the shared pacer and observes the run-wide
// abort signal, so the crawl's rate limit and fail-fast semantics hold no
// matter which stage issues the request.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	limitless "github.com/2mnml/limitlesstcg-search"
)

// DefaultFetchTimeout is the default per-request timeout.
const DefaultFetchTimeout = 18 * time.Second

const userAgent = "Mozilla/5.0 (LimitlessScraper/fixed-locked/4.6)"

// Ensure Fetcher implements limitless.Fetcher at compile time.
var _ limitless.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML pages over HTTP, paced by an admission gate and
// short-circuited by an abort signal.
type Fetcher struct {
	client  *http.Client
	pacer   limitless.Pacer
	abort   *limitless.Abort
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (18s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a Fetcher that acquires a slot from pacer before every
// request and refuses new work once abort is signaled.
func NewFetcher(pacer limitless.Pacer, abort *limitless.Abort, opts ...Option) *Fetcher {
	f := &Fetcher{
		pacer:   pacer,
		abort:   abort,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
//
// The abort check happens before the pacer acquire: a canceled run must not
// consume rate-limit slots for work it will discard.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.abort.Signaled() {
		return "", limitless.Errorf(limitless.ECANCELED, "fetch canceled: run aborted")
	}

	if err := f.pacer.Acquire(ctx); err != nil {
		return "", limitless.Errorf(limitless.ECANCELED, "fetch canceled: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", limitless.Errorf(limitless.EINVALID, "invalid URL %s: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", limitless.Errorf(limitless.ETRANSPORT, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", limitless.Errorf(limitless.ERESPONSE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", limitless.Errorf(limitless.ETRANSPORT, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. The underlying http.Client needs no explicit
// cleanup, so this is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
