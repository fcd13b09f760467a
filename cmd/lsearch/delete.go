package main

import (
	"fmt"

	limitless "github.com/2mnml/limitlesstcg-search"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return limitless.Errorf(limitless.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Searches.DeleteSearch(deps.Ctx, c.ID); err != nil {
		if limitless.ErrorCode(err) == limitless.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: search %q not found. Use 'lsearch history' to see past searches.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", limitless.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted search %q\n", c.ID)
	return nil
}
