package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdigest/pkg/domain"
)

func TestEnricher_Enrich(t *testing.T) {
	e := New("", nil)

	tbl := []struct {
		link      string
		paywalled bool
	}{
		{"https://www.ft.com/content/123-abc", true},
		{"https://www.economist.com/international/2025/06/01/story", true},
		{"https://www.telegraph.co.uk/news/2025/06/01/x/?utm=rss", true},
		{"https://www.bbc.co.uk/news/articles/c123", false},
		{"https://www.theguardian.com/uk-news/2025/jun/01/story", false},
		{"", false},
	}

	for _, tt := range tbl {
		t.Run(tt.link, func(t *testing.T) {
			res := e.Enrich(domain.DigestArticle{Title: "t", OriginalURL: tt.link, Position: 3})
			assert.Equal(t, tt.paywalled, res.Paywalled)
			assert.Equal(t, "t", res.Title)
			assert.Equal(t, 3, res.Position)
			if !tt.paywalled {
				assert.Nil(t, res.ArchiveURL)
				return
			}
			require.NotNil(t, res.ArchiveURL)
			assert.Equal(t, DefaultBaseURL+"/"+tt.link, *res.ArchiveURL, "original link appended verbatim")
		})
	}
}

func TestEnricher_Custom(t *testing.T) {
	e := New("https://archive.example.org/", []string{"paywalled.example.com"})

	res := e.Enrich(domain.DigestArticle{OriginalURL: "https://paywalled.example.com/a?b=c&d=e"})
	require.NotNil(t, res.ArchiveURL)
	assert.Equal(t, "https://archive.example.org/https://paywalled.example.com/a?b=c&d=e", *res.ArchiveURL)

	res = e.Enrich(domain.DigestArticle{OriginalURL: "https://www.ft.com/content/1"})
	assert.False(t, res.Paywalled, "custom list replaces defaults")
	assert.Nil(t, res.ArchiveURL)
}

func TestEnricher_ClearsStaleArchiveURL(t *testing.T) {
	stale := "https://old.example.com"
	res := New("", nil).Enrich(domain.DigestArticle{OriginalURL: "https://www.bbc.co.uk/news/1", ArchiveURL: &stale})
	assert.Nil(t, res.ArchiveURL)
}
