package limitless

import (
	"context"
	"time"
)

// Search represents one completed card search run and its headline numbers.
type Search struct {
	ID   string `json:"id"`
	Card string `json:"card"`

	// Crawl counts: tournaments scanned, decklist pages scanned, decks matched.
	Tournaments int `json:"tournaments"`
	Decks       int `json:"decks"`
	Matches     int `json:"matches"`

	Elapsed   time.Duration `json:"elapsed"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Validate returns an error if the search contains invalid fields.
func (s *Search) Validate() error {
	if s.Card == "" {
		return Errorf(EINVALID, "search card required")
	}
	return nil
}

// SearchService represents a service for persisting and browsing search runs.
type SearchService interface {
	// CreateSearch persists a completed search together with its matched decks.
	CreateSearch(ctx context.Context, search *Search, decks []*Deck) error

	// FindSearchByID retrieves a search by ID.
	// Returns ENOTFOUND if the search does not exist.
	FindSearchByID(ctx context.Context, id string) (*Search, error)

	// FindSearches retrieves searches matching the filter, newest first.
	FindSearches(ctx context.Context, filter SearchFilter) ([]*Search, error)

	// FindDecksBySearchID retrieves the matched decks of a search in the
	// order they were recorded.
	FindDecksBySearchID(ctx context.Context, searchID string) ([]*Deck, error)

	// DeleteSearch permanently removes a search and its decks.
	// Returns ENOTFOUND if the search does not exist.
	DeleteSearch(ctx context.Context, id string) error
}

// SearchFilter represents a filter for FindSearches.
type SearchFilter struct {
	ID   *string `json:"id"`
	Card *string `json:"card"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
