package news

import (
	"context"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsdigest/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// Fetcher retrieves and normalizes entries of a single source
type Fetcher interface {
	Fetch(ctx context.Context, src domain.Source, fc domain.FetchContext) ([]domain.RawArticle, error)
}

// Aggregator fans out fetches across all enabled categories, then filters, scores,
// ranks and deduplicates the combined result.
type Aggregator struct {
	registry Registry
	fetcher  Fetcher
	now      func() time.Time
}

// NewAggregator makes an aggregator for the given source registry
func NewAggregator(registry Registry, fetcher Fetcher) *Aggregator {
	return &Aggregator{registry: registry, fetcher: fetcher, now: time.Now}
}

type fetchTask struct {
	src domain.Source
	fc  domain.FetchContext
}

// FetchNews returns ranked, deduplicated articles for the reader.
// Per-source failures are logged and count as zero articles, so the result is empty,
// never an error, when every source fails.
func (a *Aggregator) FetchNews(ctx context.Context, categories []domain.CategoryPreference,
	reader domain.Leaning, since *time.Time) []domain.ScoredArticle {

	tasks := a.tasks(categories, reader)
	if len(tasks) == 0 {
		lgr.Printf("[WARN] no sources configured for enabled categories")
		return []domain.ScoredArticle{}
	}

	// each task owns its slot, results are merged in dispatch order after all settle
	results := make([][]domain.RawArticle, len(tasks))
	var g errgroup.Group
	for i, t := range tasks {
		g.Go(func() error {
			articles, err := a.fetcher.Fetch(ctx, t.src, t.fc)
			if err != nil {
				lgr.Printf("[WARN] failed to fetch %s (%s) for %s: %v", t.src.Name, t.src.URL, t.fc.Category, err)
				return nil
			}
			lgr.Printf("[DEBUG] fetched %d articles from %s for %s", len(articles), t.src.Name, t.fc.Category)
			results[i] = articles
			return nil
		})
	}
	_ = g.Wait() // tasks never return errors

	now := a.now()
	scored := make([]domain.ScoredArticle, 0)
	for _, batch := range results {
		for _, art := range batch {
			if !InWindow(art, since) {
				continue
			}
			scored = append(scored, domain.ScoredArticle{RawArticle: art, Score: Score(art, now)})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	res := Dedup(scored)
	lgr.Printf("[INFO] aggregated %d articles (%d before dedup) from %d sources", len(res), len(scored), len(tasks))
	return res
}

// InWindow reports whether the article passes the since cutoff.
// Articles without a publish date are always kept.
func InWindow(a domain.RawArticle, since *time.Time) bool {
	if since == nil || a.Published == nil {
		return true
	}
	return !a.Published.Before(*since)
}

// tasks builds the fetch list, one task per source of every enabled category
func (a *Aggregator) tasks(categories []domain.CategoryPreference, reader domain.Leaning) []fetchTask {
	var res []fetchTask
	for _, cat := range categories {
		if !cat.Enabled {
			continue
		}
		for _, src := range a.registry[cat.Category] {
			res = append(res, fetchTask{
				src: src,
				fc:  domain.FetchContext{Category: cat.Category, Weight: cat.Weight, Affinity: Affinity(reader, src.Leaning)},
			})
		}
	}
	return res
}
