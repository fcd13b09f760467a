package limitless

import (
	"io"
	"time"
)

// Report is the renderable outcome of a search run.
type Report struct {
	Card        string
	Tournaments int
	Decks       int
	Matches     []*Deck
	Elapsed     time.Duration
}

// ReportRenderer renders a search report for human consumption.
type ReportRenderer interface {
	Render(w io.Writer, report *Report) error
}
