package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	limitless "github.com/2mnml/limitlesstcg-search"
	"github.com/2mnml/limitlesstcg-search/crawl"
	"github.com/2mnml/limitlesstcg-search/sqlite"
)

// DefaultListURL is the completed tournaments listing the search starts from.
const DefaultListURL = "https://play.limitlesstcg.com/tournaments/completed" +
	"?game=PTCG&format=STANDARD&platform=all&type=online&time=4weeks&show=100"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Searches limitless.SearchService
	Crawler  *crawl.Crawler
	Renderer limitless.ReportRenderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search  SearchCmd  `cmd:"" help:"Search recent tournament decks for a card"`
	History HistoryCmd `cmd:"" help:"List past searches"`
	Show    ShowCmd    `cmd:"" help:"Show the matched decks of a past search"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a past search"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Card string `arg:"" help:"Card name to search for (case-insensitive substring)"`

	URL             string        `default:"${list_url}" help:"Tournament listing URL to crawl"`
	Output          string        `short:"o" help:"Report output path (defaults to <card>.html)"`
	RPS             int           `default:"360" help:"Global request rate limit per second"`
	PageConcurrency int           `default:"12" help:"Concurrent listing/standings fetches"`
	DeckConcurrency int           `default:"180" help:"Concurrent decklist fetches"`
	Timeout         time.Duration `default:"18s" help:"Per-request HTTP timeout"`
	FailThreshold   int           `default:"1" help:"Abort the run after this many failed requests"`
	MinWinRate      float64       `default:"0.40" help:"Hide matched decks below this win rate in the report"`
	NoSave          bool          `help:"Skip recording the search in history"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Card  string `help:"Only show searches for this card"`
	Limit int    `default:"20" help:"Maximum number of searches to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Search ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Search ID"`
	Force bool   `help:"Confirm deletion"`
}
