package mock

import (
	"io"

	limitless "github.com/2mnml/limitlesstcg-search"
)

var _ limitless.ReportRenderer = (*ReportRenderer)(nil)

// ReportRenderer is a mock implementation of limitless.ReportRenderer.
type ReportRenderer struct {
	RenderFn func(w io.Writer, report *limitless.Report) error
}

func (r *ReportRenderer) Render(w io.Writer, report *limitless.Report) error {
	return r.RenderFn(w, report)
}
