package limitless

// ListingParser reads a completed-tournaments listing page.
type ListingParser interface {
	// PageCount returns the total number of listing pages from the
	// pagination metadata, 1 if undeterminable.
	PageCount(html string) int

	// TournamentLinks returns absolute standings-page URLs in document
	// order. The caller deduplicates.
	TournamentLinks(html string) []string
}

// StandingsParser reads a tournament standings page.
type StandingsParser interface {
	// DecklistLinks returns absolute decklist-page URLs in document order.
	// The caller deduplicates.
	DecklistLinks(html string) []string
}

// DeckParser reads an individual decklist page.
//
// Extraction is best-effort over several page variants; HasCard can produce
// false negatives and callers must not assume more than "pure function of
// page content".
type DeckParser interface {
	// HasCard reports whether the decklist contains the card. The card name
	// is matched case-insensitively as a substring.
	HasCard(html, card string) bool

	// ParseDeck extracts the deck record from a decklist page.
	// Called only for pages where HasCard returned true.
	ParseDeck(url, html string) (*Deck, error)
}
