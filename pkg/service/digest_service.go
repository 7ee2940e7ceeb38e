// Package service combines repositories, the digest generator and the paper store into the
// operations used by the scheduler, the HTTP server and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdigest/pkg/digest"
	"github.com/umputun/newsdigest/pkg/domain"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/digest_repo.go -pkg mocks -skip-ensure -fmt goimports . DigestRepo
//go:generate moq -out mocks/profile_repo.go -pkg mocks -skip-ensure -fmt goimports . ProfileRepo

// Generator runs digest generations
type Generator interface {
	Generate(ctx context.Context, req digest.Request) (string, error)
	Preview(ctx context.Context, req digest.Request) (*domain.Paper, error)
}

// DigestRepo reads digests, fails stuck ones and drops old failures
type DigestRepo interface {
	GetDigest(ctx context.Context, id string) (*domain.Digest, error)
	GetDigestArticles(ctx context.Context, digestID string) ([]domain.DigestArticle, error)
	ListDigests(ctx context.Context, filter domain.DigestFilter) ([]domain.Digest, error)
	LatestReadyDigest(ctx context.Context, owner string) (*domain.Digest, error)
	FailStaleDigests(ctx context.Context, before time.Time) ([]string, error)
	PurgeFailedDigests(ctx context.Context, before time.Time) (int64, error)
}

// ProfileRepo reads and seeds reader profiles
type ProfileRepo interface {
	EnsureProfile(ctx context.Context, id string, leaning domain.Leaning, frequency domain.Frequency) (*domain.Profile, error)
	GetDueProfiles(ctx context.Context, now time.Time) ([]domain.Profile, error)
}

// Config holds service settings
type Config struct {
	DefaultLeaning   domain.Leaning   // leaning of new profiles and anonymous papers
	DefaultFrequency domain.Frequency // frequency of new profiles and anonymous papers
	StuckAfter       time.Duration    // generating digests not updated for this long are failed
	KeepFailed       time.Duration    // failed digests are removed after this long, at least a week
}

// DigestService provides digest operations for profiles and anonymous readers
type DigestService struct {
	digests   DigestRepo
	profiles  ProfileRepo
	generator Generator
	papers    *digest.PaperStore
	cfg       Config
	now       func() time.Time
}

// DigestView is a digest with its articles, articles are present only for ready digests
type DigestView struct {
	domain.Digest
	Articles []domain.DigestArticle `json:"articles"`
}

// NewDigestService creates a digest service
func NewDigestService(digests DigestRepo, profiles ProfileRepo, generator Generator, papers *digest.PaperStore, cfg Config) *DigestService {
	if !cfg.DefaultLeaning.Valid() {
		cfg.DefaultLeaning = domain.LeaningCentre
	}
	if cfg.DefaultFrequency != domain.FrequencyDaily {
		cfg.DefaultFrequency = domain.FrequencyWeekly
	}
	if cfg.StuckAfter <= 0 {
		cfg.StuckAfter = 30 * time.Minute
	}
	// a recent failure keeps its owner from being due, it has to outlive the longest period
	if cfg.KeepFailed < domain.FrequencyWeekly.Period() {
		cfg.KeepFailed = 30 * 24 * time.Hour
	}
	return &DigestService{digests: digests, profiles: profiles, generator: generator, papers: papers, cfg: cfg, now: time.Now}
}

// GenerateFor generates a digest for the owner's profile, creating the profile with defaults
// on first use. The period starts at the owner's watermark.
func (s *DigestService) GenerateFor(ctx context.Context, owner string) (string, error) {
	if owner == "" {
		return "", errors.New("owner is required")
	}
	profile, err := s.profiles.EnsureProfile(ctx, owner, s.cfg.DefaultLeaning, s.cfg.DefaultFrequency)
	if err != nil {
		return "", fmt.Errorf("get profile of %s: %w", owner, err)
	}
	return s.generator.Generate(ctx, s.request(*profile))
}

// Preview builds an anonymous paper for the leaning with default categories and keeps it
// in the paper store
func (s *DigestService) Preview(ctx context.Context, leaning domain.Leaning) (domain.Paper, error) {
	if leaning == "" {
		leaning = s.cfg.DefaultLeaning
	}
	if !leaning.Valid() {
		return domain.Paper{}, fmt.Errorf("invalid leaning %q", leaning)
	}
	paper, err := s.generator.Preview(ctx, digest.Request{
		Leaning:    leaning,
		Frequency:  s.cfg.DefaultFrequency,
		Categories: domain.DefaultCategories(),
	})
	if err != nil {
		return domain.Paper{}, err
	}
	paper.ID = s.papers.Put(*paper)
	return *paper, nil
}

// Paper returns a previously generated anonymous paper
func (s *DigestService) Paper(id string) (domain.Paper, error) {
	p, ok := s.papers.Get(id)
	if !ok {
		return domain.Paper{}, fmt.Errorf("paper %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// Digest returns a digest with its articles
func (s *DigestService) Digest(ctx context.Context, id string) (DigestView, error) {
	d, err := s.digests.GetDigest(ctx, id)
	if err != nil {
		return DigestView{}, err
	}
	res := DigestView{Digest: *d, Articles: []domain.DigestArticle{}}
	if d.Status != domain.DigestReady {
		return res, nil
	}
	if res.Articles, err = s.digests.GetDigestArticles(ctx, id); err != nil {
		return DigestView{}, err
	}
	return res, nil
}

// LatestDigest returns the most recent ready digest of the owner with its articles
func (s *DigestService) LatestDigest(ctx context.Context, owner string) (DigestView, error) {
	d, err := s.digests.LatestReadyDigest(ctx, owner)
	if err != nil {
		return DigestView{}, err
	}
	return s.Digest(ctx, d.ID)
}

// ListDigests returns digests matching the filter
func (s *DigestService) ListDigests(ctx context.Context, filter domain.DigestFilter) ([]domain.Digest, error) {
	return s.digests.ListDigests(ctx, filter)
}

// DueOwners returns owners of profiles due for a new digest
func (s *DigestService) DueOwners(ctx context.Context) ([]string, error) {
	profiles, err := s.profiles.GetDueProfiles(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("get due profiles: %w", err)
	}
	res := make([]string, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, p.ID)
	}
	return res, nil
}

// Reconcile fails digests stuck in generating for longer than the configured threshold and
// removes failed digests older than the retention. Returns the number of digests failed.
func (s *DigestService) Reconcile(ctx context.Context) (int, error) {
	now := s.now()
	ids, err := s.digests.FailStaleDigests(ctx, now.Add(-s.cfg.StuckAfter))
	if err != nil {
		return 0, fmt.Errorf("fail stale digests: %w", err)
	}
	for _, id := range ids {
		lgr.Printf("[WARN] digest %s stuck in generating, marked failed", id)
	}

	purged, err := s.digests.PurgeFailedDigests(ctx, now.Add(-s.cfg.KeepFailed))
	if err != nil {
		return len(ids), fmt.Errorf("purge failed digests: %w", err)
	}
	if purged > 0 {
		lgr.Printf("[INFO] removed %d failed digests older than %s", purged, s.cfg.KeepFailed)
	}
	return len(ids), nil
}

// request makes a generation request from the profile
func (s *DigestService) request(p domain.Profile) digest.Request {
	categories := p.Categories
	if len(categories) == 0 {
		categories = domain.DefaultCategories()
	}
	since := p.LastDigestAt
	if since == nil {
		ts := s.now().Add(-p.Frequency.Period())
		since = &ts
	}
	return digest.Request{
		Owner:      p.ID,
		Leaning:    p.Leaning,
		Frequency:  p.Frequency,
		Categories: categories,
		Since:      since,
	}
}
