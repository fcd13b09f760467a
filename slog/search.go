package slog

import (
	"context"
	"log/slog"
	"time"

	limitless "github.com/2mnml/limitlesstcg-search"
)

// Ensure LoggingSearchService implements limitless.SearchService.
var _ limitless.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with debug logging.
type LoggingSearchService struct {
	next   limitless.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next limitless.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// CreateSearch delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) CreateSearch(ctx context.Context, search *limitless.Search, decks []*limitless.Deck) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create search",
			"card", search.Card,
			"decks", len(decks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSearch(ctx, search, decks)
}

// FindSearchByID delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) FindSearchByID(ctx context.Context, id string) (search *limitless.Search, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find search",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSearchByID(ctx, id)
}

// FindSearches delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) FindSearches(ctx context.Context, filter limitless.SearchFilter) (searches []*limitless.Search, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find searches",
			"count", len(searches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSearches(ctx, filter)
}

// FindDecksBySearchID delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) FindDecksBySearchID(ctx context.Context, searchID string) (decks []*limitless.Deck, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find decks",
			"searchId", searchID,
			"count", len(decks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDecksBySearchID(ctx, searchID)
}

// DeleteSearch delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) DeleteSearch(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete search",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSearch(ctx, id)
}
