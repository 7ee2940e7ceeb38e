package service

import (
	"context"
	"time"

	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/repository"
)

// Store provides the digest generator with unified access to repositories
type Store struct {
	digestRepo  *repository.DigestRepository
	profileRepo *repository.ProfileRepository
}

// NewStore creates a new store on top of repositories
func NewStore(repos *repository.Repositories) *Store {
	return &Store{digestRepo: repos.Digest, profileRepo: repos.Profile}
}

// Digest methods

func (s *Store) CreateDigest(ctx context.Context, d domain.Digest) error {
	return s.digestRepo.CreateDigest(ctx, d)
}

func (s *Store) InsertDigestArticles(ctx context.Context, digestID string, articles []domain.DigestArticle) error {
	return s.digestRepo.InsertDigestArticles(ctx, digestID, articles)
}

func (s *Store) UpdateDigestStatus(ctx context.Context, digestID string, status domain.DigestStatus, subtitle string) error {
	return s.digestRepo.UpdateDigestStatus(ctx, digestID, status, subtitle)
}

// Profile methods

func (s *Store) UpdateOwnerWatermark(ctx context.Context, owner string, ts time.Time) error {
	return s.profileRepo.UpdateOwnerWatermark(ctx, owner, ts)
}
