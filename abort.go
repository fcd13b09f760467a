package limitless

import "sync/atomic"

// Abort is a one-way, run-wide cancellation signal shared by every component
// of a crawl. Once set it is never cleared; components check it before
// starting new work and decline once it is observed set.
//
// The zero value is ready to use.
type Abort struct {
	flag atomic.Bool
}

// Set flips the signal. It returns true for the first caller only, so the
// winner can emit the single fail-fast diagnostic.
func (a *Abort) Set() bool {
	return a.flag.CompareAndSwap(false, true)
}

// Signaled reports whether the signal has been set.
func (a *Abort) Signaled() bool {
	return a.flag.Load()
}
