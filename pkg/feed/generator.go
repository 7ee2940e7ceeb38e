package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/newsdigest/pkg/domain"
)

// Generator renders ready digests as RSS 2.0 feeds
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed with one item per digest article, in the given order
func (g *Generator) GenerateRSS(digest domain.Digest, articles []domain.DigestArticle) (string, error) {
	title := digest.Title
	if digest.Subtitle != "" {
		title = fmt.Sprintf("%s - %s", digest.Title, digest.Subtitle)
	}
	selfLink := fmt.Sprintf("%s/rss/%s", g.baseURL, digest.ID)

	rssItems := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		rssItems = append(rssItems, g.convertToRSSItem(digest.ID, a))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title: title,
			Link:  fmt.Sprintf("%s/api/v1/digests/%s", g.baseURL, digest.ID),
			Description: fmt.Sprintf("News digest for %s to %s",
				digest.PeriodStart.Format("2 January 2006"), digest.PeriodEnd.Format("2 January 2006")),
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: digest.UpdatedAt.Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// convertToRSSItem converts a digest article to an RSS item
func (g *Generator) convertToRSSItem(digestID string, a domain.DigestArticle) *RSSItem {
	var desc strings.Builder
	if a.Subtitle != "" {
		desc.WriteString(a.Subtitle)
		desc.WriteString("\n\n")
	}
	desc.WriteString(a.Summary)
	if a.ArchiveURL != nil {
		desc.WriteString("\n\nArchived copy: ")
		desc.WriteString(*a.ArchiveURL)
	}

	item := &RSSItem{
		Title:       fmt.Sprintf("[%d] %s", a.Importance, a.Title),
		Link:        a.OriginalURL,
		GUID:        fmt.Sprintf("%s-%d", digestID, a.Position),
		Description: desc.String(),
		Author:      a.Author,
	}
	if a.Published != nil {
		item.PubDate = a.Published.Format(time.RFC1123Z)
	}
	if a.Category != "" {
		item.Categories = []string{a.Category}
	}
	if a.SourceName != "" {
		item.Source = &RSSSource{Name: a.SourceName, URL: a.OriginalURL}
	}
	return item
}
