package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdigest/pkg/domain"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	fc := domain.FetchContext{Category: "national", Weight: 8, Affinity: 0.75}

	t.Run("rss feed", func(t *testing.T) {
		rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:dc="http://purl.org/dc/elements/1.1/">
	<channel>
		<title>Test Feed</title>
		<link>https://example.com</link>
		<description>Test feed description</description>
		<item>
			<title>Ministers agree budget</title>
			<link>https://example.com/budget</link>
			<description><![CDATA[<p>Ministers &amp; MPs <b>agree</b>
			the budget</p>]]></description>
			<category>Politics</category>
			<author>desk@example.com (Jane Reporter)</author>
			<pubDate>Mon, 02 Jun 2025 15:04:05 +0000</pubDate>
		</item>
		<item>
			<title>Content only</title>
			<link>https://example.com/content</link>
			<content:encoded><![CDATA[<div>Full <i>article</i> body</div>]]></content:encoded>
			<dc:creator>John Columnist</dc:creator>
		</item>
		<item>
			<description>no title, no link</description>
		</item>
	</channel>
</rss>`

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "application/rss+xml")
			_, _ = w.Write([]byte(rssContent))
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(5*time.Second, "TestAgent/1.0")
		src := domain.Source{Name: "Test Outlet", URL: server.URL, Leaning: domain.LeaningCentreLeft}
		items, err := fetcher.Fetch(context.Background(), src, fc)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "TestAgent/1.0", gotUA)

		assert.Equal(t, "Ministers agree budget", items[0].Title)
		assert.Equal(t, "https://example.com/budget", items[0].Link)
		assert.Equal(t, "Ministers & MPs agree the budget", items[0].Summary)
		assert.Equal(t, "Jane Reporter", items[0].Author)
		require.NotNil(t, items[0].Published)
		assert.Equal(t, time.Date(2025, 6, 2, 15, 4, 5, 0, time.UTC), items[0].Published.UTC())
		assert.Equal(t, "national", items[0].Category, "category comes from fetch context")
		assert.Equal(t, "Test Outlet", items[0].SourceName)
		assert.Equal(t, domain.LeaningCentreLeft, items[0].SourceLeaning)
		assert.InDelta(t, 0.75, items[0].Affinity, 1e-9)
		assert.Equal(t, 8, items[0].CategoryWeight)

		assert.Equal(t, "Full article body", items[1].Summary, "falls back to content")
		assert.Equal(t, "John Columnist", items[1].Author)
		assert.Nil(t, items[1].Published)

		assert.Empty(t, items[2].Title)
		assert.Empty(t, items[2].Link)
		assert.Equal(t, "no title, no link", items[2].Summary)
		assert.Equal(t, "Test Outlet", items[2].Author, "author falls back to source name")
	})

	t.Run("atom feed", func(t *testing.T) {
		atomContent := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Test Atom Feed</title>
	<link href="https://example.com/"/>
	<updated>2025-06-02T15:04:05Z</updated>
	<entry>
		<title>Atom Entry 1</title>
		<link href="https://example.com/entry1"/>
		<id>entry1</id>
		<updated>2025-06-02T15:04:05Z</updated>
		<summary>Entry 1 summary</summary>
	</entry>
</feed>`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/atom+xml")
			_, _ = w.Write([]byte(atomContent))
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(5*time.Second, "TestAgent/1.0")
		items, err := fetcher.Fetch(context.Background(), domain.Source{Name: "Atom", URL: server.URL}, fc)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Atom Entry 1", items[0].Title)
		assert.Equal(t, "https://example.com/entry1", items[0].Link)
		assert.Equal(t, "Entry 1 summary", items[0].Summary)
		assert.Equal(t, "Atom", items[0].Author)
		require.NotNil(t, items[0].Published, "updated used when published missing")
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(20*time.Millisecond, "TestAgent/1.0")
		items, err := fetcher.Fetch(context.Background(), domain.Source{Name: "Slow", URL: server.URL}, fc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSourceUnavailable))
		assert.Contains(t, err.Error(), "Slow")
		assert.Nil(t, items)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(5*time.Second, "TestAgent/1.0")
		items, err := fetcher.Fetch(context.Background(), domain.Source{Name: "Broken", URL: server.URL}, fc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSourceUnavailable))
		assert.Contains(t, err.Error(), "unexpected status code: 500")
		assert.Nil(t, items)
	})

	t.Run("invalid feed content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not xml content"))
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(5*time.Second, "TestAgent/1.0")
		items, err := fetcher.Fetch(context.Background(), domain.Source{Name: "Junk", URL: server.URL}, fc)
		require.Error(t, err)
		assert.Nil(t, items)
	})

	t.Run("invalid url", func(t *testing.T) {
		fetcher := NewHTTPFetcher(time.Second, "TestAgent/1.0")
		_, err := fetcher.Fetch(context.Background(), domain.Source{Name: "Bad", URL: "not-a-valid-url"}, fc)
		require.Error(t, err)
	})
}
