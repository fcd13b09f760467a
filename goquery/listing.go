// Package goquery implements the HTML parsers for tournament listing,
// standings, and decklist pages using goquery for DOM traversal.
package goquery

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	limitless "github.com/2mnml/limitlesstcg-search"
)

// DefaultBaseURL is the site root that relative tournament links resolve
// against.
const DefaultBaseURL = "https://play.limitlesstcg.com"

var standingsHref = regexp.MustCompile(`^/tournament/[^/]+/standings$`)

// Ensure ListingParser implements limitless.ListingParser at compile time.
var _ limitless.ListingParser = (*ListingParser)(nil)

// ListingParser extracts pagination and tournament links from a completed
// tournaments listing page.
type ListingParser struct {
	// BaseURL is the site root used to absolutize relative links.
	// Defaults to DefaultBaseURL.
	BaseURL string
}

// PageCount returns the number of listing pages advertised by the page's
// pagination control. A page without one is a single-page listing.
func (p *ListingParser) PageCount(html string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 1
	}

	max, exists := doc.Find("ul.pagination").First().Attr("data-max")
	if !exists {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(max))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// TournamentLinks returns the absolute standings page URLs linked from the
// listing, deduplicated in document order.
func (p *ListingParser) TournamentLinks(html string) []string {
	return extractLinks(html, p.baseURL(), standingsHref)
}

func (p *ListingParser) baseURL() string {
	if p.BaseURL != "" {
		return p.BaseURL
	}
	return DefaultBaseURL
}

// extractLinks collects hrefs matching pattern from every anchor in the
// document, resolved against base, first occurrence wins.
func extractLinks(html, base string, pattern *regexp.Regexp) []string {
	baseU, err := url.Parse(base)
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !pattern.MatchString(href) {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := baseU.ResolveReference(ref).String()
		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}
		out = append(out, resolved)
	})
	return out
}
