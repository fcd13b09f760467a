// Package crawl implements the concurrent, rate-limited, fail-fast fetch
// pipeline that turns a tournament listing into matched decks. A search
// proceeds in three strictly sequential stages — listing pages, standings
// pages, decklist pages — with deduplicated URLs flowing from each stage
// into the next and a single shared abort signal that stops new work
// everywhere once the failure threshold is crossed.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	limitless "github.com/2mnml/limitlesstcg-search"
)

// Default concurrency caps. Listing and standings pages are few, decklist
// pages dominate volume; the Pacer remains the global bound across both.
const (
	DefaultPageConcurrency = 12
	DefaultDeckConcurrency = 180
)

// Stage labels reported through progress events.
const (
	StagePages       = "pages"
	StageTournaments = "tournaments"
	StageDecks       = "decks"
)

// Crawler orchestrates a card search across the tournament hierarchy.
type Crawler struct {
	Fetcher   limitless.Fetcher
	Listing   limitless.ListingParser
	Standings limitless.StandingsParser
	Decks     limitless.DeckParser

	// Abort is the run-wide cancellation signal. Use a fresh one per run.
	Abort *limitless.Abort

	Logger *slog.Logger

	// PageConcurrency caps in-flight fetches for the listing and standings
	// stages, DeckConcurrency for the decklist stage.
	PageConcurrency int
	DeckConcurrency int

	// FailThreshold is the number of failed operations that aborts the run.
	// Defaults to 1: the first error anywhere stops the crawl.
	FailThreshold int

	// Progress, if set, receives events as the crawl proceeds.
	Progress ProgressFunc
}

// Result holds the outcome of a search crawl. An aborted run carries
// whatever was gathered before the abort was observed.
type Result struct {
	Tournaments int
	Decks       int
	Matches     []*limitless.Deck
	Errors      int
	Aborted     bool
	Elapsed     time.Duration
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Stage     string
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStageStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Search crawls the listing at listURL for decks containing card.
//
// An aborted run is not an error: Search returns the partial counts and
// matches gathered before the abort, with Result.Aborted set. Only a failed
// seed fetch or an invalid input surfaces as an error.
func (c *Crawler) Search(ctx context.Context, listURL, card string) (*Result, error) {
	begin := time.Now()

	needle := strings.ToLower(strings.TrimSpace(card))
	if needle == "" {
		return nil, limitless.Errorf(limitless.EINVALID, "card name required")
	}

	pageLimit := c.PageConcurrency
	if pageLimit <= 0 {
		pageLimit = DefaultPageConcurrency
	}
	deckLimit := c.DeckConcurrency
	if deckLimit <= 0 {
		deckLimit = DefaultDeckConcurrency
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	t := newTally(c.Abort, c.FailThreshold, logger)

	// Seed fetch discovers how many listing pages exist.
	first, err := c.Fetcher.Fetch(ctx, listURL)
	if err != nil {
		t.record(listURL, err)
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	pages := []string{listURL}
	for p := 2; p <= c.Listing.PageCount(first); p++ {
		u, err := PageURL(listURL, p)
		if err != nil {
			return nil, fmt.Errorf("build page URL: %w", err)
		}
		pages = append(pages, u)
	}

	// Stage 1: listing pages -> standings URLs.
	var mu sync.Mutex
	var tournaments []string
	c.runStage(ctx, StagePages, pages, pageLimit, t, func(_, html string) error {
		links := c.Listing.TournamentLinks(html)
		mu.Lock()
		tournaments = append(tournaments, links...)
		mu.Unlock()
		return nil
	})
	uniqTournaments := Dedupe(tournaments)
	if c.Abort.Signaled() {
		return c.result(begin, 0, 0, nil, t), nil
	}

	// Stage 2: standings pages -> decklist URLs.
	var deckURLs []string
	c.runStage(ctx, StageTournaments, uniqTournaments, pageLimit, t, func(_, html string) error {
		links := c.Standings.DecklistLinks(html)
		mu.Lock()
		deckURLs = append(deckURLs, links...)
		mu.Unlock()
		return nil
	})
	uniqDecks := Dedupe(deckURLs)
	if c.Abort.Signaled() {
		return c.result(begin, len(uniqTournaments), 0, nil, t), nil
	}

	// Stage 3: decklist pages -> matched decks, in completion order.
	var matches []*limitless.Deck
	c.runStage(ctx, StageDecks, uniqDecks, deckLimit, t, func(pageURL, html string) error {
		if !c.Decks.HasCard(html, needle) {
			return nil
		}
		deck, err := c.Decks.ParseDeck(pageURL, html)
		if err != nil {
			return limitless.Errorf(limitless.EEXTRACT, "parse deck %s: %v", pageURL, err)
		}
		deck.ContentHash = computeHash(html)
		mu.Lock()
		matches = append(matches, deck)
		mu.Unlock()
		return nil
	})

	return c.result(begin, len(uniqTournaments), len(uniqDecks), matches, t), nil
}

func (c *Crawler) result(begin time.Time, tournaments, decks int, matches []*limitless.Deck, t *tally) *Result {
	return &Result{
		Tournaments: tournaments,
		Decks:       decks,
		Matches:     matches,
		Errors:      t.errors(),
		Aborted:     c.Abort.Signaled(),
		Elapsed:     time.Since(begin),
	}
}

func (c *Crawler) notify(event ProgressEvent) {
	if c.Progress != nil {
		c.Progress(event)
	}
}

// PageURL returns listURL with its "page" query parameter set to page.
// All other query parameters are preserved.
func PageURL(listURL string, page int) (string, error) {
	u, err := url.Parse(listURL)
	if err != nil {
		return "", limitless.Errorf(limitless.EINVALID, "invalid listing URL: %v", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
