package main

import (
	"fmt"

	limitless "github.com/2mnml/limitlesstcg-search"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	search, err := deps.Searches.FindSearchByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", limitless.ErrorMessage(err))
		return err
	}

	decks, err := deps.Searches.FindDecksBySearchID(deps.Ctx, search.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", limitless.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Search %q: %d tournaments, %d decks, %d matches\n",
		search.Card, search.Tournaments, search.Decks, search.Matches)

	for _, d := range decks {
		record := fmt.Sprintf("%d-%d-%d", d.Wins, d.Losses, d.Ties)
		if d.Dropped {
			record += " (drop)"
		}
		fmt.Fprintf(deps.Stdout, "%6.2f%%  %-10s  %-24s  %-20s  %s\n",
			d.WinRate()*100, record, d.Archetype, d.Player, d.URL)
	}

	return nil
}
