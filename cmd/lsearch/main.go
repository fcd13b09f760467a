package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	limitless "github.com/2mnml/limitlesstcg-search"
	"github.com/2mnml/limitlesstcg-search/crawl"
	"github.com/2mnml/limitlesstcg-search/goquery"
	"github.com/2mnml/limitlesstcg-search/html"
	limhttp "github.com/2mnml/limitlesstcg-search/http"
	limslog "github.com/2mnml/limitlesstcg-search/slog"
	"github.com/2mnml/limitlesstcg-search/sqlite"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SearchService limitless.SearchService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lsearch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"list_url": DefaultListURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lsearch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LSEARCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.SearchService = sqlite.NewSearchService(m.DB)
	deps.DB = m.DB
	deps.Searches = limslog.NewLoggingSearchService(m.SearchService, deps.Logger)

	if cmd == "search" {
		abort := &limitless.Abort{}
		pacer := crawl.NewPacer(cli.Search.RPS)
		fetcher := limhttp.NewFetcher(pacer, abort, limhttp.WithTimeout(cli.Search.Timeout))
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Fetcher:         limslog.NewLoggingFetcher(fetcher, deps.Logger),
			Listing:         &goquery.ListingParser{},
			Standings:       &goquery.StandingsParser{},
			Decks:           &goquery.DeckParser{},
			Abort:           abort,
			Logger:          deps.Logger,
			PageConcurrency: cli.Search.PageConcurrency,
			DeckConcurrency: cli.Search.DeckConcurrency,
			FailThreshold:   cli.Search.FailThreshold,
		}
		deps.Renderer = &html.ReportRenderer{MinWinRate: cli.Search.MinWinRate}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("LSEARCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "lsearch.db"
	}
	dir := filepath.Join(home, ".lsearch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "lsearch.db")
}
