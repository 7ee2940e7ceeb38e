// Package digest runs a digest generation: aggregate, curate, enrich and persist,
// driving the digest record through generating → ready | failed.
package digest

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/newsdigest/pkg/domain"
)

//go:generate moq -out mocks/aggregator.go -pkg mocks -skip-ensure -fmt goimports . Aggregator
//go:generate moq -out mocks/curator.go -pkg mocks -skip-ensure -fmt goimports . Curator
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher
//go:generate moq -out mocks/summary_filler.go -pkg mocks -skip-ensure -fmt goimports . SummaryFiller

// Aggregator returns ranked, deduplicated candidate articles
type Aggregator interface {
	FetchNews(ctx context.Context, categories []domain.CategoryPreference, reader domain.Leaning, since *time.Time) []domain.ScoredArticle
}

// Curator selects and rewrites digest articles from candidates
type Curator interface {
	Curate(ctx context.Context, req domain.CurationRequest) (domain.Curation, error)
}

// Store is the set of mutations a generation performs, nothing else is written
type Store interface {
	CreateDigest(ctx context.Context, d domain.Digest) error
	InsertDigestArticles(ctx context.Context, digestID string, articles []domain.DigestArticle) error
	UpdateDigestStatus(ctx context.Context, digestID string, status domain.DigestStatus, subtitle string) error
	UpdateOwnerWatermark(ctx context.Context, owner string, ts time.Time) error
}

// Enricher sets paywall flag and archive link of an article
type Enricher interface {
	Enrich(a domain.DigestArticle) domain.DigestArticle
}

// SummaryFiller fills empty candidate summaries, optional
type SummaryFiller interface {
	FillSummaries(ctx context.Context, candidates []domain.RawArticle) []domain.RawArticle
}

// Config holds generator settings
type Config struct {
	Title               string        // masthead title of every digest
	MaxCandidates       int           // top ranked articles offered for curation
	CompensationTimeout time.Duration // bound for marking a digest failed
	DefaultSince        time.Duration // look-back when the request has no since
}

// Request describes one generation
type Request struct {
	Owner      string
	Leaning    domain.Leaning
	Frequency  domain.Frequency
	Categories []domain.CategoryPreference
	Since      *time.Time // start of the period, the owner's watermark
}

// Generator orchestrates digest generation
type Generator struct {
	aggregator Aggregator
	curator    Curator
	store      Store
	enricher   Enricher
	filler     SummaryFiller
	cfg        Config

	now   func() time.Time
	newID func() string
}

// NewGenerator makes a generator, filler may be nil
func NewGenerator(aggregator Aggregator, curator Curator, store Store, enricher Enricher, filler SummaryFiller, cfg Config) *Generator {
	if cfg.Title == "" {
		cfg.Title = "The TebPaper"
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = 80
	}
	if cfg.CompensationTimeout <= 0 {
		cfg.CompensationTimeout = 10 * time.Second
	}
	if cfg.DefaultSince <= 0 {
		cfg.DefaultSince = 7 * 24 * time.Hour
	}
	return &Generator{
		aggregator: aggregator,
		curator:    curator,
		store:      store,
		enricher:   enricher,
		filler:     filler,
		cfg:        cfg,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

// Generate builds and persists a digest, returning its id.
// No articles from any source gives domain.ErrNoArticlesFound and nothing is persisted.
// Any failure after the digest record is created marks it failed before the error is returned.
func (g *Generator) Generate(ctx context.Context, req Request) (string, error) {
	req = g.normalize(req)
	now := g.now()
	since := g.since(req, now)

	scored, err := g.collect(ctx, req, since)
	if err != nil {
		return "", err
	}

	d := domain.Digest{
		ID:          g.newID(),
		Owner:       req.Owner,
		Title:       g.cfg.Title,
		PeriodStart: since,
		PeriodEnd:   now,
		Status:      domain.DigestGenerating,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := g.store.CreateDigest(ctx, d); err != nil {
		return "", fmt.Errorf("%w: create digest for %s: %w", domain.ErrPersistence, req.Owner, err)
	}
	lgr.Printf("[INFO] generating digest %s for %s from %d articles since %s", d.ID, req.Owner, len(scored),
		since.Format(time.RFC3339))

	count, err := g.complete(ctx, d, req, scored)
	if err != nil {
		g.compensate(ctx, d.ID, err)
		return "", err
	}

	// ready is terminal, a stale watermark only widens the next period
	if err := g.store.UpdateOwnerWatermark(ctx, req.Owner, now); err != nil {
		lgr.Printf("[WARN] digest %s is ready but watermark of %s not updated: %v", d.ID, req.Owner, err)
	}
	lgr.Printf("[INFO] digest %s ready with %d articles", d.ID, count)
	return d.ID, nil
}

// Preview runs the same pipeline without persisting anything, for anonymous readers.
// Articles are ordered by importance, highest first.
func (g *Generator) Preview(ctx context.Context, req Request) (*domain.Paper, error) {
	req = g.normalize(req)
	now := g.now()
	since := g.since(req, now)

	scored, err := g.collect(ctx, req, since)
	if err != nil {
		return nil, err
	}

	candidates := g.candidates(ctx, scored)
	cur, err := g.curator.Curate(ctx, g.curationRequest(req, candidates))
	if err != nil {
		return nil, fmt.Errorf("curate paper: %w", err)
	}

	articles := g.assemble("", candidates, cur)
	sort.SliceStable(articles, func(i, j int) bool { return articles[i].Importance > articles[j].Importance })

	return &domain.Paper{
		ID:          g.newID(),
		Title:       g.cfg.Title,
		Subtitle:    cur.DigestTitle,
		Leaning:     req.Leaning,
		PeriodStart: since,
		PeriodEnd:   now,
		CreatedAt:   now,
		Articles:    articles,
	}, nil
}

// collect runs the aggregator, an empty result is an error
func (g *Generator) collect(ctx context.Context, req Request, since time.Time) ([]domain.ScoredArticle, error) {
	scored := g.aggregator.FetchNews(ctx, req.Categories, req.Leaning, &since)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("aggregate news: %w", err)
	}
	if len(scored) == 0 {
		return nil, domain.ErrNoArticlesFound
	}
	return scored, nil
}

// complete runs everything after the digest record exists and returns the number of stored articles
func (g *Generator) complete(ctx context.Context, d domain.Digest, req Request, scored []domain.ScoredArticle) (int, error) {
	candidates := g.candidates(ctx, scored)

	cur, err := g.curator.Curate(ctx, g.curationRequest(req, candidates))
	if err != nil {
		return 0, fmt.Errorf("curate digest %s: %w", d.ID, err)
	}

	articles := g.assemble(d.ID, candidates, cur)

	// the caller gave up, the digest must not become ready
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("generate digest %s: %w", d.ID, err)
	}
	if err := g.store.InsertDigestArticles(ctx, d.ID, articles); err != nil {
		return 0, fmt.Errorf("%w: insert articles of digest %s: %w", domain.ErrPersistence, d.ID, err)
	}
	if err := g.store.UpdateDigestStatus(ctx, d.ID, domain.DigestReady, cur.DigestTitle); err != nil {
		return 0, fmt.Errorf("%w: mark digest %s ready: %w", domain.ErrPersistence, d.ID, err)
	}
	return len(articles), nil
}

// compensate marks the digest failed, on a context that survives the caller's cancellation
func (g *Generator) compensate(ctx context.Context, digestID string, cause error) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.cfg.CompensationTimeout)
	defer cancel()
	if err := g.store.UpdateDigestStatus(cctx, digestID, domain.DigestFailed, ""); err != nil {
		lgr.Printf("[ERROR] can't mark digest %s failed: %v, generation error: %v", digestID, err, cause)
		return
	}
	lgr.Printf("[WARN] digest %s failed: %v", digestID, cause)
}

// candidates takes the top ranked articles and fills missing summaries if a filler is set
func (g *Generator) candidates(ctx context.Context, scored []domain.ScoredArticle) []domain.RawArticle {
	n := min(len(scored), g.cfg.MaxCandidates)
	res := make([]domain.RawArticle, n)
	for i := range n {
		res[i] = scored[i].RawArticle
	}
	if g.filler != nil {
		res = g.filler.FillSummaries(ctx, res)
	}
	return res
}

func (g *Generator) curationRequest(req Request, candidates []domain.RawArticle) domain.CurationRequest {
	return domain.CurationRequest{
		Candidates: candidates,
		Leaning:    req.Leaning,
		Frequency:  req.Frequency,
		Categories: req.Categories,
	}
}

// assemble maps selections back to candidates in curation order.
// Selections with an index outside of candidates are skipped, positions stay contiguous.
func (g *Generator) assemble(digestID string, candidates []domain.RawArticle, cur domain.Curation) []domain.DigestArticle {
	res := make([]domain.DigestArticle, 0, len(cur.Selections))
	for _, sel := range cur.Selections {
		if sel.Index < 0 || sel.Index >= len(candidates) {
			lgr.Printf("[WARN] curation selected index %d, only %d candidates, skipped", sel.Index, len(candidates))
			continue
		}
		src := candidates[sel.Index]
		a := domain.DigestArticle{
			DigestID:    digestID,
			Title:       sel.Headline,
			Subtitle:    sel.Subtitle,
			Summary:     sel.Summary,
			OriginalURL: src.Link,
			SourceName:  src.SourceName,
			Author:      src.Author,
			Category:    sel.Category,
			Importance:  sel.Importance,
			Published:   src.Published,
			Position:    len(res),
		}
		if a.Title == "" {
			a.Title = src.Title
		}
		if a.Summary == "" {
			a.Summary = src.Summary
		}
		if a.Category == "" {
			a.Category = src.Category
		}
		res = append(res, g.enricher.Enrich(a))
	}
	return res
}

func (g *Generator) normalize(req Request) Request {
	if !req.Leaning.Valid() {
		req.Leaning = domain.LeaningCentre
	}
	if req.Frequency != domain.FrequencyDaily {
		req.Frequency = domain.FrequencyWeekly
	}
	if len(req.Categories) == 0 {
		req.Categories = domain.DefaultCategories()
	}
	return req
}

func (g *Generator) since(req Request, now time.Time) time.Time {
	if req.Since != nil {
		return *req.Since
	}
	return now.Add(-g.cfg.DefaultSince)
}
