package limitless

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations are expected to be safe for concurrent use: a crawl issues
// many overlapping Fetch calls through a single Fetcher.
type Fetcher interface {
	// Fetch performs one GET and returns the response body.
	// The context controls timeout and cancellation. Implementations decline
	// with an ECANCELED error when the run's Abort signal is already set.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}

// Pacer admits operation starts under a global rate cap. Every fetch of a
// run, regardless of stage, acquires the same Pacer before touching the
// network.
type Pacer interface {
	// Acquire blocks until the rate cap permits one more operation start.
	// Returns an error only if the context finishes first.
	Acquire(ctx context.Context) error
}
