package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	limitless "github.com/2mnml/limitlesstcg-search"
	limitlesshttp "github.com/2mnml/limitlesstcg-search/http"
	"github.com/2mnml/limitlesstcg-search/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFetcher(opts ...limitlesshttp.Option) (*limitlesshttp.Fetcher, *limitless.Abort) {
	abort := &limitless.Abort{}
	return limitlesshttp.NewFetcher(&mock.Pacer{}, abort, opts...), abort
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher, _ := newFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends identifying headers", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotAccept string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher, _ := newFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Contains(t, gotUA, "LimitlessScraper")
		assert.Equal(t, "text/html,application/xhtml+xml", gotAccept)
	})

	t.Run("refuses to fetch after abort", func(t *testing.T) {
		t.Parallel()

		var served bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			served = true
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher, abort := newFetcher()
		defer fetcher.Close()
		abort.Set()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		assert.Equal(t, limitless.ECANCELED, limitless.ErrorCode(err))
		assert.False(t, served, "no request may reach the server after abort")
	})

	t.Run("abort check precedes the pacer", func(t *testing.T) {
		t.Parallel()

		var acquired bool
		pacer := &mock.Pacer{
			AcquireFn: func(context.Context) error {
				acquired = true
				return nil
			},
		}
		abort := &limitless.Abort{}
		abort.Set()
		fetcher := limitlesshttp.NewFetcher(pacer, abort)
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://example.com")
		assert.Equal(t, limitless.ECANCELED, limitless.ErrorCode(err))
		assert.False(t, acquired, "aborted fetches must not consume pacer slots")
	})

	t.Run("pacer failure maps to canceled", func(t *testing.T) {
		t.Parallel()

		pacer := &mock.Pacer{
			AcquireFn: func(ctx context.Context) error { return context.DeadlineExceeded },
		}
		fetcher := limitlesshttp.NewFetcher(pacer, &limitless.Abort{})
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://example.com")
		assert.Equal(t, limitless.ECANCELED, limitless.ErrorCode(err))
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher, _ := newFetcher(limitlesshttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, limitless.ETRANSPORT, limitless.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher, _ := newFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns transport error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher, _ := newFetcher(limitlesshttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, limitless.ETRANSPORT, limitless.ErrorCode(err))
	})

	t.Run("returns response error for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		fetcher, _ := newFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, limitless.ERESPONSE, limitless.ErrorCode(err))
		assert.Contains(t, err.Error(), "404")
	})
}
