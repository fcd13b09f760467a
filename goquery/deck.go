package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	limitless "github.com/2mnml/limitlesstcg-search"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nameField    = regexp.MustCompile(`(?i)"name":"([^"]+)"`)
	jsDeckBlock  = regexp.MustCompile("(?s)const\\s+decklist\\s*=\\s*`(.*?)`")
	detailsLine  = regexp.MustCompile(`(\d+)\s+points\s*\((\d+)-(\d+)-(\d+)\)`)
	playerSlug   = regexp.MustCompile(`/player/([^/]+)/decklist`)
	titleCaser   = cases.Title(language.Und)
)

// Ensure DeckParser implements limitless.DeckParser at compile time.
var _ limitless.DeckParser = (*DeckParser)(nil)

// DeckParser inspects decklist pages for card membership and extracts deck
// metadata.
type DeckParser struct{}

// HasCard reports whether the decklist page contains card. The card name is
// matched as a case-insensitive substring.
//
// Decklist pages embed the list in up to three places depending on page
// vintage: a hidden form input carrying the deck as JSON, a JavaScript
// template literal, and the rendered decklist markup. The strategies are
// tried in that order; the first hit wins.
func (p *DeckParser) HasCard(html, card string) bool {
	needle := strings.ToLower(strings.TrimSpace(card))
	if needle == "" {
		return false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}

	if hasCardInHiddenInput(doc, needle) {
		return true
	}
	if hasCardInJSBlock(html, needle) {
		return true
	}
	return hasCardInDecklistText(doc, needle)
}

// hasCardInHiddenInput scans the JSON card names embedded in the hidden
// export form input.
func hasCardInHiddenInput(doc *goquery.Document, needle string) bool {
	value, exists := doc.Find(`input[name="input"]`).First().Attr("value")
	if !exists {
		return false
	}
	for _, m := range nameField.FindAllStringSubmatch(value, -1) {
		if strings.Contains(strings.ToLower(m[1]), needle) {
			return true
		}
	}
	return false
}

// hasCardInJSBlock scans the decklist template literal in inline JavaScript.
func hasCardInJSBlock(html, needle string) bool {
	m := jsDeckBlock.FindStringSubmatch(html)
	if m == nil {
		return false
	}
	return strings.Contains(strings.ToLower(m[1]), needle)
}

// hasCardInDecklistText scans the rendered decklist block, falling back to
// the whole document when the block is absent.
func hasCardInDecklistText(doc *goquery.Document, needle string) bool {
	sel := doc.Find("div.decklist")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	return strings.Contains(strings.ToLower(sel.Text()), needle)
}

// ParseDeck extracts the deck's metadata from a decklist page. Missing
// fields fall back to zero values rather than failing: standings markup
// varies between tournament organizers and a partially described deck is
// still a usable result.
func (p *DeckParser) ParseDeck(pageURL, html string) (*limitless.Deck, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, limitless.Errorf(limitless.EEXTRACT, "parse decklist page: %v", err)
	}

	deck := &limitless.Deck{
		URL:       pageURL,
		Player:    playerFromURL(pageURL),
		Archetype: archetype(doc),
	}

	details := doc.Find("div.details").First().Text()
	if m := detailsLine.FindStringSubmatch(details); m != nil {
		deck.Points, _ = strconv.Atoi(m[1])
		deck.Wins, _ = strconv.Atoi(m[2])
		deck.Losses, _ = strconv.Atoi(m[3])
		deck.Ties, _ = strconv.Atoi(m[4])
	}
	deck.Dropped = strings.Contains(strings.ToLower(details), "drop")

	return deck, nil
}

func archetype(doc *goquery.Document) string {
	if tooltip, exists := doc.Find("div.deck").First().Attr("data-tooltip"); exists {
		if a := strings.TrimSpace(tooltip); a != "" {
			return a
		}
	}
	return "Other"
}

// playerFromURL derives a display name from the player slug in the decklist
// URL, e.g. "/player/jane-doe/decklist" becomes "Jane Doe".
func playerFromURL(pageURL string) string {
	m := playerSlug.FindStringSubmatch(pageURL)
	if m == nil {
		return ""
	}
	name := strings.TrimSpace(strings.ReplaceAll(m[1], "-", " "))
	return titleCaser.String(name)
}
