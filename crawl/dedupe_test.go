package crawl_test

import (
	"testing"

	"github.com/2mnml/limitlesstcg-search/crawl"
	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	t.Parallel()

	t.Run("keeps first occurrence in order", func(t *testing.T) {
		t.Parallel()

		got := crawl.Dedupe([]string{"a", "b", "a", "c", "b"})
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		once := crawl.Dedupe([]string{"x", "y", "x", "z", "z", "y"})
		twice := crawl.Dedupe(once)
		assert.Equal(t, once, twice)
	})

	t.Run("passes through already-unique input", func(t *testing.T) {
		t.Parallel()

		in := []string{"a", "b", "c"}
		assert.Equal(t, in, crawl.Dedupe(in))
	})

	t.Run("handles empty and nil input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, crawl.Dedupe(nil))
		assert.Empty(t, crawl.Dedupe([]string{}))
	})

	t.Run("output is a subsequence of the input", func(t *testing.T) {
		t.Parallel()

		in := []string{"d", "a", "d", "b", "a", "c", "d", "b"}
		out := crawl.Dedupe(in)

		i := 0
		for _, u := range in {
			if i < len(out) && out[i] == u {
				i++
			}
		}
		assert.Equal(t, len(out), i, "output must preserve input order")
	})
}
