package crawl

import (
	"context"
	"log/slog"
	"sync/atomic"

	limitless "github.com/2mnml/limitlesstcg-search"
	"golang.org/x/sync/errgroup"
)

// tally counts failed operations for a run and sets the abort signal once
// the configured threshold is crossed. Whichever failure wins the flip
// emits the single fail-fast diagnostic; later failures stay quiet.
type tally struct {
	abort     *limitless.Abort
	threshold int
	logger    *slog.Logger
	count     atomic.Int64
}

func newTally(abort *limitless.Abort, threshold int, logger *slog.Logger) *tally {
	if threshold < 1 {
		threshold = 1
	}
	return &tally{abort: abort, threshold: threshold, logger: logger}
}

// record counts one failure. ECANCELED results are not counted: the task
// merely declined to run after the abort was already signaled.
func (t *tally) record(url string, err error) {
	if limitless.ErrorCode(err) == limitless.ECANCELED {
		return
	}
	if t.count.Add(1) >= int64(t.threshold) && t.abort.Set() {
		t.logger.Error("fail-fast: aborting run",
			"url", url,
			"code", limitless.ErrorCode(err),
			"err", limitless.ErrorMessage(err),
		)
	}
}

func (t *tally) errors() int {
	return int(t.count.Load())
}

// runStage fetches every URL with at most limit tasks in flight and hands
// each fetched page to extract. It returns only after every task has
// settled, even when the run aborts mid-stage: tasks observe the abort
// signal before fetching, but an in-flight fetch is left to finish or fail
// on its own. Extraction results accumulate in completion order, not input
// order.
func (c *Crawler) runStage(ctx context.Context, stage string, urls []string, limit int, t *tally, extract func(url, html string) error) {
	c.notify(ProgressEvent{Type: ProgressStageStarted, Stage: stage, Total: len(urls)})

	var completed atomic.Int64
	var g errgroup.Group
	g.SetLimit(limit)

	for _, u := range urls {
		g.Go(func() error {
			if t.abort.Signaled() {
				return nil
			}

			html, err := c.Fetcher.Fetch(ctx, u)
			if err == nil {
				err = extract(u, html)
			}
			if err != nil {
				t.record(u, err)
				if limitless.ErrorCode(err) != limitless.ECANCELED {
					c.notify(ProgressEvent{
						Type:      ProgressFailed,
						Stage:     stage,
						Completed: int(completed.Add(1)),
						Total:     len(urls),
						URL:       u,
						Error:     err,
					})
				}
				return nil
			}

			c.notify(ProgressEvent{
				Type:      ProgressCompleted,
				Stage:     stage,
				Completed: int(completed.Add(1)),
				Total:     len(urls),
				URL:       u,
			})
			return nil
		})
	}

	// Join point: the next stage must not observe this stage's output until
	// every task has reached a terminal state.
	_ = g.Wait()

	c.notify(ProgressEvent{Type: ProgressFinished, Stage: stage, Completed: int(completed.Load()), Total: len(urls)})
}
