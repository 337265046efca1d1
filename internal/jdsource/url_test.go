package jdsource

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(selector string) *URLFetcher {
	return NewURLFetcher(Options{Selector: selector, Timeout: 5 * time.Second, Logger: log.New(io.Discard, "", 0)})
}

func TestURLFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, `<html><head><title>Jobs</title><style>.x{}</style></head><body>
<nav>Home</nav>
<main>
  <h1>Senior Frontend Developer</h1>
  <p>Location: Remote</p>
  <script>var tracking = "aws";</script>
  <ul>
    <li>React</li>
    <li>TypeScript</li>
  </ul>
</main>
</body></html>`)
	}))
	defer srv.Close()

	text, err := newTestFetcher("main").Fetch(context.Background(), srv.URL+"/jobs/1")
	require.NoError(t, err)
	assert.Equal(t, "Senior Frontend Developer\nLocation: Remote\nReact\nTypeScript", text)
	assert.NotContains(t, text, "tracking")
}

func TestURLFetcher_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestFetcher("").Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestURLFetcher_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, `<html><body><div id="root"></div><script>render()</script></body></html>`)
	}))
	defer srv.Close()

	_, err := newTestFetcher("").Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestURLFetcher_InvalidURL(t *testing.T) {
	f := newTestFetcher("")
	for _, raw := range []string{"", "not a url", "ftp://example.com/jd", "/relative/path"} {
		_, err := f.Fetch(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidURL, raw)
	}
}

func TestURLFetcher_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFetcher("").Fetch(ctx, "http://127.0.0.1:1/jd")
	assert.ErrorIs(t, err, context.Canceled)
}
