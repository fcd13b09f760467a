package mock

import (
	"context"

	limitless "github.com/2mnml/limitlesstcg-search"
)

var _ limitless.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of limitless.Pacer.
// A nil AcquireFn admits immediately.
type Pacer struct {
	AcquireFn func(ctx context.Context) error
}

func (p *Pacer) Acquire(ctx context.Context) error {
	if p.AcquireFn == nil {
		return nil
	}
	return p.AcquireFn(ctx)
}
