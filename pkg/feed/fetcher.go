package feed

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsdigest/pkg/domain"
)

// HTTPFetcher fetches a source feed and normalizes its entries into raw articles
type HTTPFetcher struct {
	parser  *Parser
	timeout time.Duration
	policy  *bluemonday.Policy
}

// NewHTTPFetcher creates a fetcher with per-source timeout and user agent
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFetcher{
		parser:  NewParser(timeout, userAgent),
		timeout: timeout,
		policy:  bluemonday.StrictPolicy(),
	}
}

// Fetch retrieves the source feed and maps each entry to a raw article.
// Category, weight and affinity come from the fetch context, never from the feed itself.
func (f *HTTPFetcher) Fetch(ctx context.Context, src domain.Source, fc domain.FetchContext) ([]domain.RawArticle, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parser.Parse(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrSourceUnavailable, src.Name, err)
	}

	res := make([]domain.RawArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		res = append(res, domain.RawArticle{
			Title:          strings.TrimSpace(item.Title),
			Link:           strings.TrimSpace(item.Link),
			Summary:        f.summary(item),
			Author:         author(item, src.Name),
			Published:      published(item),
			SourceName:     src.Name,
			SourceLeaning:  src.Leaning,
			Category:       fc.Category,
			Affinity:       fc.Affinity,
			CategoryWeight: fc.Weight,
		})
	}
	return res, nil
}

// summary returns a plain text snippet, description first, then full content
func (f *HTTPFetcher) summary(item *gofeed.Item) string {
	if s := f.snippet(item.Description); s != "" {
		return s
	}
	return f.snippet(item.Content)
}

// snippet strips markup and collapses whitespace
func (f *HTTPFetcher) snippet(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(f.policy.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

func author(item *gofeed.Item, fallback string) string {
	if item.Author != nil && strings.TrimSpace(item.Author.Name) != "" {
		return strings.TrimSpace(item.Author.Name)
	}
	for _, a := range item.Authors {
		if a != nil && strings.TrimSpace(a.Name) != "" {
			return strings.TrimSpace(a.Name)
		}
	}
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 && item.DublinCoreExt.Creator[0] != "" {
		return item.DublinCoreExt.Creator[0]
	}
	return fallback
}

func published(item *gofeed.Item) *time.Time {
	var ts time.Time
	switch {
	case item.PublishedParsed != nil:
		ts = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		ts = *item.UpdatedParsed
	default:
		return nil
	}
	return &ts
}
