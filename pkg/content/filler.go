package content

import (
	"context"
	"strings"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsdigest/pkg/domain"
)

//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Extractor gets the readable text of a page
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Filler uses extracted page text as the summary of candidates that came without one
type Filler struct {
	extractor     Extractor
	maxConcurrent int
	maxLength     int
}

// NewFiller makes a filler running at most maxConcurrent extractions at once and
// truncating extracted text to maxLength runes
func NewFiller(extractor Extractor, maxConcurrent, maxLength int) *Filler {
	return &Filler{extractor: extractor, maxConcurrent: max(1, maxConcurrent), maxLength: maxLength}
}

// FillSummaries returns a copy of candidates with empty summaries filled from the article page.
// Order and length are kept, failed extractions leave the summary empty.
func (f *Filler) FillSummaries(ctx context.Context, candidates []domain.RawArticle) []domain.RawArticle {
	res := make([]domain.RawArticle, len(candidates))
	copy(res, candidates)

	var g errgroup.Group
	g.SetLimit(f.maxConcurrent)
	filled := 0
	for i := range res {
		if strings.TrimSpace(res[i].Summary) != "" || res[i].Link == "" {
			continue
		}
		filled++
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			text, err := f.extractor.Extract(ctx, res[i].Link)
			if err != nil {
				lgr.Printf("[DEBUG] can't extract summary for %s: %v", res[i].Link, err)
				return nil
			}
			res[i].Summary = f.snippet(text)
			return nil
		})
	}
	_ = g.Wait() // extraction failures are not errors
	if filled > 0 {
		lgr.Printf("[DEBUG] tried to fill %d of %d candidate summaries", filled, len(res))
	}
	return res
}

// snippet collapses whitespace and truncates to maxLength runes on a word boundary when possible
func (f *Filler) snippet(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if f.maxLength <= 0 || len(r) <= f.maxLength {
		return text
	}
	cut := string(r[:f.maxLength])
	if idx := strings.LastIndex(cut, " "); idx > len(cut)/2 {
		cut = cut[:idx]
	}
	return cut + "..."
}
