package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	limitless "github.com/2mnml/limitlesstcg-search"
	"github.com/2mnml/limitlesstcg-search/crawl"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStageStarted:
			fmt.Fprintf(deps.Stdout, "  %s: %d to fetch\n", event.Stage, event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", crawl.TruncateURL(event.URL, 60), event.Error)
		}
	}
	deps.Crawler.Progress = progress

	result, err := deps.Crawler.Search(deps.Ctx, c.URL, c.Card)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", limitless.ErrorMessage(err))
		return err
	}

	if result.Aborted {
		fmt.Fprintf(deps.Stderr, "aborted after %d error(s); results are partial\n", result.Errors)
	}

	report := &limitless.Report{
		Card:        c.Card,
		Tournaments: result.Tournaments,
		Decks:       result.Decks,
		Matches:     result.Matches,
		Elapsed:     result.Elapsed,
	}

	outPath := c.Output
	if outPath == "" {
		outPath = safeFilename(c.Card) + ".html"
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := deps.Renderer.Render(f, report); err != nil {
		f.Close()
		return fmt.Errorf("render report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	absPath, err := filepath.Abs(outPath)
	if err != nil {
		absPath = outPath
	}

	if !c.NoSave {
		search := &limitless.Search{
			Card:        c.Card,
			Tournaments: result.Tournaments,
			Decks:       result.Decks,
			Matches:     len(result.Matches),
			Elapsed:     result.Elapsed,
		}
		if err := deps.Searches.CreateSearch(deps.Ctx, search, result.Matches); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", limitless.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Tournaments:   %d\n", result.Tournaments)
	fmt.Fprintf(deps.Stdout, "Decks:         %d\n", result.Decks)
	fmt.Fprintf(deps.Stdout, "Matches:       %d\n", len(result.Matches))
	fmt.Fprintf(deps.Stdout, "Elapsed Time:  %s\n", crawl.FormatElapsed(result.Elapsed))
	fmt.Fprintf(deps.Stdout, "Output:        %s\n", absPath)

	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// safeFilename derives a filesystem-safe name from a card name.
func safeFilename(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = unsafeFilenameChars.ReplaceAllString(s, "_")
	if s == "" {
		return "results"
	}
	return s
}
