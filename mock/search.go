package mock

import (
	"context"

	limitless "github.com/2mnml/limitlesstcg-search"
)

var _ limitless.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of limitless.SearchService.
type SearchService struct {
	CreateSearchFn        func(ctx context.Context, search *limitless.Search, decks []*limitless.Deck) error
	FindSearchByIDFn      func(ctx context.Context, id string) (*limitless.Search, error)
	FindSearchesFn        func(ctx context.Context, filter limitless.SearchFilter) ([]*limitless.Search, error)
	FindDecksBySearchIDFn func(ctx context.Context, searchID string) ([]*limitless.Deck, error)
	DeleteSearchFn        func(ctx context.Context, id string) error
}

func (s *SearchService) CreateSearch(ctx context.Context, search *limitless.Search, decks []*limitless.Deck) error {
	return s.CreateSearchFn(ctx, search, decks)
}

func (s *SearchService) FindSearchByID(ctx context.Context, id string) (*limitless.Search, error) {
	return s.FindSearchByIDFn(ctx, id)
}

func (s *SearchService) FindSearches(ctx context.Context, filter limitless.SearchFilter) ([]*limitless.Search, error) {
	return s.FindSearchesFn(ctx, filter)
}

func (s *SearchService) FindDecksBySearchID(ctx context.Context, searchID string) ([]*limitless.Deck, error) {
	return s.FindDecksBySearchIDFn(ctx, searchID)
}

func (s *SearchService) DeleteSearch(ctx context.Context, id string) error {
	return s.DeleteSearchFn(ctx, id)
}
