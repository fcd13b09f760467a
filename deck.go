package limitless

// Deck represents a single decklist that matched a card search, along with
// the player's result in the tournament it came from.
type Deck struct {
	ID       string `json:"id"`
	SearchID string `json:"searchId"`

	// Decklist page the deck was parsed from.
	URL string `json:"url"`

	// Player name derived from the decklist URL slug.
	Player string `json:"player"`

	// Archetype label reported by the site, "Other" if undeterminable.
	Archetype string `json:"archetype"`

	// Tournament result.
	Points  int  `json:"points"`
	Wins    int  `json:"wins"`
	Losses  int  `json:"losses"`
	Ties    int  `json:"ties"`
	Dropped bool `json:"dropped"`

	// Hash of the decklist page content at fetch time.
	ContentHash string `json:"contentHash"`
}

// Validate returns an error if the deck contains invalid fields.
func (d *Deck) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "deck URL required")
	}
	return nil
}

// Played returns the total number of games played.
func (d *Deck) Played() int {
	return d.Wins + d.Losses + d.Ties
}

// WinRate returns wins over decided games (ties excluded), 0 if none were
// decided.
func (d *Deck) WinRate() float64 {
	decided := d.Wins + d.Losses
	if decided == 0 {
		return 0
	}
	return float64(d.Wins) / float64(decided)
}
