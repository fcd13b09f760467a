package mock

import (
	limitless "github.com/2mnml/limitlesstcg-search"
)

var _ limitless.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of limitless.ListingParser.
type ListingParser struct {
	PageCountFn       func(html string) int
	TournamentLinksFn func(html string) []string
}

func (p *ListingParser) PageCount(html string) int {
	return p.PageCountFn(html)
}

func (p *ListingParser) TournamentLinks(html string) []string {
	return p.TournamentLinksFn(html)
}

var _ limitless.StandingsParser = (*StandingsParser)(nil)

// StandingsParser is a mock implementation of limitless.StandingsParser.
type StandingsParser struct {
	DecklistLinksFn func(html string) []string
}

func (p *StandingsParser) DecklistLinks(html string) []string {
	return p.DecklistLinksFn(html)
}

var _ limitless.DeckParser = (*DeckParser)(nil)

// DeckParser is a mock implementation of limitless.DeckParser.
type DeckParser struct {
	HasCardFn   func(html, card string) bool
	ParseDeckFn func(url, html string) (*limitless.Deck, error)
}

func (p *DeckParser) HasCard(html, card string) bool {
	return p.HasCardFn(html, card)
}

func (p *DeckParser) ParseDeck(url, html string) (*limitless.Deck, error) {
	return p.ParseDeckFn(url, html)
}
