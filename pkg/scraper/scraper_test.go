package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureHTML = `<!DOCTYPE html>
<html>
<head>
<title> Afaq Tours | Dubai Tours &amp; Safaris </title>
<meta name="description" content="Dubai tours and desert safaris.">
<script>var tracked = true;</script>
<style>body { color: red; }</style>
</head>
<body>
<nav><a href="/hidden">Hidden nav link with many words inside</a></nav>
<header><p>Header boilerplate paragraph that should disappear</p></header>
<h1>Desert Safari Adventures In Dubai</h1>
<p>Tiny.</p>
<p>Experience the golden dunes with our
   expert guides.</p>
<ul><li>Full day trip to Abu Dhabi city</li><li>Two words</li></ul>
<a href="/tours/safari">Desert Safari</a>
<a href="https://wa.me/971505058571">WhatsApp Us</a>
<a href="/empty"></a>
<footer><p>Footer text that also has enough words here</p></footer>
</body>
</html>`

func newTestScraper(handler http.Handler, ttl time.Duration) (*WebsiteScraper, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewWebsiteScraper(server.URL+"/", 5*time.Second, ttl), server
}

func TestFetchExtractsContentBlocks(t *testing.T) {
	var gotUA string
	s, server := newTestScraper(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(fixtureHTML)) //nolint:errcheck
	}), time.Minute)
	defer server.Close()

	content := s.Fetch(context.Background())
	lines := strings.Split(content, "\n")

	assert.Equal(t, "Mozilla/5.0 (Chatbot/1.0)", gotUA)
	assert.Equal(t, "Website Title: Afaq Tours | Dubai Tours & Safaris", lines[0])
	assert.Equal(t, "Meta Description: Dubai tours and desert safaris.", lines[1])

	assert.Contains(t, lines, "Desert Safari Adventures In Dubai")
	assert.Contains(t, lines, "Experience the golden dunes with our expert guides.")
	assert.Contains(t, lines, "Full day trip to Abu Dhabi city")

	// Anchors become "text: absolute URL" pairs.
	assert.Contains(t, lines, "Desert Safari: "+server.URL+"/tours/safari")
	assert.Contains(t, lines, "WhatsApp Us: https://wa.me/971505058571")

	// Short text, empty anchors and boilerplate subtrees are dropped.
	assert.NotContains(t, content, "Tiny.")
	assert.NotContains(t, content, "Two words")
	assert.NotContains(t, content, "Hidden nav link")
	assert.NotContains(t, content, "Header boilerplate")
	assert.NotContains(t, content, "Footer text")
	assert.NotContains(t, content, "tracked")
}

func TestFetchDefaultsTitleWhenMissing(t *testing.T) {
	s, server := newTestScraper(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body><p>Just one paragraph with enough words</p></body></html>")) //nolint:errcheck
	}), time.Minute)
	defer server.Close()

	content := s.Fetch(context.Background())
	assert.True(t, strings.HasPrefix(content, "Website Title: Afaq Tours Dubai"))
}

func TestFetchFailureReturnsPlaceholder(t *testing.T) {
	s, server := newTestScraper(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}), time.Minute)
	defer server.Close()

	content := s.Fetch(context.Background())
	assert.True(t, strings.HasPrefix(content, "Website content not available. Error: "))

	t.Run("unreachable host", func(t *testing.T) {
		dead := NewWebsiteScraper("http://127.0.0.1:1/", 500*time.Millisecond, time.Minute)
		content := dead.Fetch(context.Background())
		assert.True(t, strings.HasPrefix(content, "Website content not available. Error: "))
	})
}

func TestSummaryCachesSuccessfulFetches(t *testing.T) {
	var hits atomic.Int32
	s, server := newTestScraper(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Write([]byte(fixtureHTML)) //nolint:errcheck
	}), time.Minute)
	defer server.Close()

	first := s.Summary(context.Background())
	second := s.Summary(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load())

	t.Run("Fetch bypasses the cache", func(t *testing.T) {
		s.Fetch(context.Background())
		assert.Equal(t, int32(2), hits.Load())
	})
}

func TestSummaryNeverCachesFailures(t *testing.T) {
	var hits atomic.Int32
	var failing atomic.Bool
	failing.Store(true)

	s, server := newTestScraper(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(fixtureHTML)) //nolint:errcheck
	}), time.Minute)
	defer server.Close()

	first := s.Summary(context.Background())
	require.True(t, strings.HasPrefix(first, "Website content not available."))

	// Recovery is picked up on the next turn, not after a TTL.
	failing.Store(false)
	second := s.Summary(context.Background())
	assert.True(t, strings.HasPrefix(second, "Website Title:"))
	assert.Equal(t, int32(2), hits.Load())
}
