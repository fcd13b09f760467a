package mock

import (
	"context"

	limitless "github.com/2mnml/limitlesstcg-search"
)

var _ limitless.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of limitless.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
