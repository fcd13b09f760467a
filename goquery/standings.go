package goquery

import (
	"regexp"

	limitless "github.com/2mnml/limitlesstcg-search"
)

var decklistHref = regexp.MustCompile(`^/tournament/[^/]+/player/[^/]+/decklist$`)

// Ensure StandingsParser implements limitless.StandingsParser at compile time.
var _ limitless.StandingsParser = (*StandingsParser)(nil)

// StandingsParser extracts decklist links from a tournament standings page.
type StandingsParser struct {
	// BaseURL is the site root used to absolutize relative links.
	// Defaults to DefaultBaseURL.
	BaseURL string
}

// DecklistLinks returns the absolute decklist page URLs linked from the
// standings, deduplicated in document order.
func (p *StandingsParser) DecklistLinks(html string) []string {
	base := p.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return extractLinks(html, base, decklistHref)
}
