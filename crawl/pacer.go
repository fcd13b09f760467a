package crawl

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	limitless "github.com/2mnml/limitlesstcg-search"
)

// DefaultJitter bounds the random post-admission delay that spreads out
// synchronized bursts of concurrent callers.
const DefaultJitter = 5 * time.Millisecond

// minWait is the floor for sleeps while the window is full, so a caller
// never busy-spins waiting for the oldest admission to expire.
const minWait = time.Millisecond

// Compile-time interface verification.
var _ limitless.Pacer = (*Pacer)(nil)

// Pacer is a sliding-window rate limiter shared by every stage of a crawl:
// at most rps operation starts are admitted within any trailing one-second
// window, regardless of how many goroutines call Acquire concurrently.
type Pacer struct {
	rps    int
	jitter time.Duration

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	mu     sync.Mutex
	window []time.Time // admission timestamps, oldest first
}

// Option configures a Pacer.
type Option func(*Pacer)

// WithJitter sets the upper bound for the random delay slept after each
// admission. Zero disables jitter. Defaults to DefaultJitter.
func WithJitter(d time.Duration) Option {
	return func(p *Pacer) {
		p.jitter = d
	}
}

// WithClock replaces the wall clock and the sleep function, allowing tests
// to drive the admission window with a simulated clock.
func WithClock(now func() time.Time, sleep func(context.Context, time.Duration) error) Option {
	return func(p *Pacer) {
		p.now = now
		p.sleep = sleep
	}
}

// NewPacer creates a Pacer admitting at most rps operation starts per
// rolling second. Values below 1 are treated as 1.
func NewPacer(rps int, opts ...Option) *Pacer {
	if rps < 1 {
		rps = 1
	}
	p := &Pacer{
		rps:    rps,
		jitter: DefaultJitter,
		now:    time.Now,
		sleep:  sleepCtx,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Acquire blocks until the trailing-window count is below the cap, then
// records one admission. The check-and-append is serialized under the
// mutex; the jitter sleep happens after the mutex is released so other
// callers are not held up.
func (p *Pacer) Acquire(ctx context.Context) error {
	for {
		p.mu.Lock()
		now := p.now()

		// Evict admissions older than the trailing window.
		expired := 0
		for expired < len(p.window) && now.Sub(p.window[expired]) >= time.Second {
			expired++
		}
		p.window = append(p.window[:0], p.window[expired:]...)

		if len(p.window) < p.rps {
			p.window = append(p.window, now)
			p.mu.Unlock()
			if p.jitter > 0 {
				return p.sleep(ctx, rand.N(p.jitter))
			}
			return nil
		}

		// Window is full: wait until the oldest admission exits it, then
		// re-check from scratch.
		wait := time.Second - now.Sub(p.window[0])
		p.mu.Unlock()

		if wait < minWait {
			wait = minWait
		}
		if err := p.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// sleepCtx sleeps for d unless the context finishes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
