package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	limitless "github.com/2mnml/limitlesstcg-search"
	main "github.com/2mnml/limitlesstcg-search/cmd/lsearch"
	"github.com/2mnml/limitlesstcg-search/crawl"
	"github.com/2mnml/limitlesstcg-search/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCrawler returns a crawler over a tiny fixed site: one listing page,
// two tournaments, three decks of which one matches any card.
func testCrawler() *crawl.Crawler {
	tournaments := map[string][]string{"LIST": {"T1", "T2"}}
	decklists := map[string][]string{"T1": {"D1", "D2"}, "T2": {"D3"}}
	return &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) { return url, nil },
		},
		Listing: &mock.ListingParser{
			PageCountFn:       func(string) int { return 1 },
			TournamentLinksFn: func(html string) []string { return tournaments[html] },
		},
		Standings: &mock.StandingsParser{
			DecklistLinksFn: func(html string) []string { return decklists[html] },
		},
		Decks: &mock.DeckParser{
			HasCardFn: func(html, _ string) bool { return html == "D2" },
			ParseDeckFn: func(url, _ string) (*limitless.Deck, error) {
				return &limitless.Deck{URL: url, Player: "Jane", Archetype: "Other", Wins: 4, Losses: 1}, nil
			},
		},
		Abort:  &limitless.Abort{},
		Logger: slog.New(slog.DiscardHandler),
	}
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("crawls, renders and records the search", func(t *testing.T) {
		t.Parallel()

		outPath := filepath.Join(t.TempDir(), "report.html")

		var rendered *limitless.Report
		var saved *limitless.Search
		var savedDecks []*limitless.Deck

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Crawler: testCrawler(),
			Renderer: &mock.ReportRenderer{
				RenderFn: func(w io.Writer, report *limitless.Report) error {
					rendered = report
					_, err := w.Write([]byte("<html></html>"))
					return err
				},
			},
			Searches: &mock.SearchService{
				CreateSearchFn: func(_ context.Context, search *limitless.Search, decks []*limitless.Deck) error {
					saved = search
					savedDecks = decks
					return nil
				},
			},
		}

		cmd := &main.SearchCmd{Card: "charizard", URL: "LIST", Output: outPath}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, rendered)
		assert.Equal(t, "charizard", rendered.Card)
		assert.Equal(t, 2, rendered.Tournaments)
		assert.Equal(t, 3, rendered.Decks)
		require.Len(t, rendered.Matches, 1)
		assert.Equal(t, "D2", rendered.Matches[0].URL)

		require.NotNil(t, saved)
		assert.Equal(t, 1, saved.Matches)
		assert.Len(t, savedDecks, 1)

		body, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", string(body))

		out := stdout.String()
		assert.Contains(t, out, "Tournaments:   2")
		assert.Contains(t, out, "Decks:         3")
		assert.Contains(t, out, "Matches:       1")
		assert.Contains(t, out, outPath)
	})

	t.Run("--no-save skips history", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Crawler: testCrawler(),
			Renderer: &mock.ReportRenderer{
				RenderFn: func(w io.Writer, _ *limitless.Report) error { return nil },
			},
			// Searches deliberately nil: a call would panic the test.
		}

		cmd := &main.SearchCmd{
			Card:   "charizard",
			URL:    "LIST",
			Output: filepath.Join(t.TempDir(), "report.html"),
			NoSave: true,
		}
		require.NoError(t, cmd.Run(deps))
	})

	t.Run("reports a partial run on stderr", func(t *testing.T) {
		t.Parallel()

		crawler := testCrawler()
		crawler.PageConcurrency = 1
		crawler.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "T1" {
					return "", limitless.Errorf(limitless.ERESPONSE, "HTTP 500 for T1")
				}
				return url, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Crawler: crawler,
			Renderer: &mock.ReportRenderer{
				RenderFn: func(w io.Writer, _ *limitless.Report) error { return nil },
			},
			Searches: &mock.SearchService{
				CreateSearchFn: func(_ context.Context, _ *limitless.Search, _ []*limitless.Deck) error {
					return nil
				},
			},
		}

		cmd := &main.SearchCmd{Card: "charizard", URL: "LIST", Output: filepath.Join(t.TempDir(), "r.html")}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "results are partial")
	})

	t.Run("empty card is an error", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Crawler: testCrawler(),
		}

		cmd := &main.SearchCmd{Card: "  ", URL: "LIST"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, limitless.EINVALID, limitless.ErrorCode(err))
	})
}
