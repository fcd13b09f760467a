package main

import (
	"fmt"
	"time"

	limitless "github.com/2mnml/limitlesstcg-search"
	"github.com/2mnml/limitlesstcg-search/crawl"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := limitless.SearchFilter{Limit: c.Limit}
	if c.Card != "" {
		filter.Card = &c.Card
	}

	searches, err := deps.Searches.FindSearches(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", limitless.ErrorMessage(err))
		return err
	}

	if len(searches) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches found. Use 'lsearch search' to run one.")
		return nil
	}

	for _, s := range searches {
		fmt.Fprintf(deps.Stdout, "%s  %s  %q  %d tournaments  %d decks  %d matches  %s\n",
			s.ID, s.CreatedAt.Format(time.DateTime), s.Card,
			s.Tournaments, s.Decks, s.Matches, crawl.FormatElapsed(s.Elapsed))
	}

	return nil
}
