package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdigest/pkg/digest"
	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/service/mocks"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestService(dr DigestRepo, pr ProfileRepo, gen Generator) *DigestService {
	svc := NewDigestService(dr, pr, gen, digest.NewPaperStore(10, time.Hour), Config{StuckAfter: 30 * time.Minute})
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestNewDigestService_Defaults(t *testing.T) {
	svc := NewDigestService(nil, nil, nil, nil, Config{DefaultLeaning: "far-out", DefaultFrequency: "hourly"})
	assert.Equal(t, domain.LeaningCentre, svc.cfg.DefaultLeaning)
	assert.Equal(t, domain.FrequencyWeekly, svc.cfg.DefaultFrequency)
	assert.Equal(t, 30*time.Minute, svc.cfg.StuckAfter)
	assert.Equal(t, 30*24*time.Hour, svc.cfg.KeepFailed)

	svc = NewDigestService(nil, nil, nil, nil, Config{KeepFailed: time.Hour})
	assert.Equal(t, 30*24*time.Hour, svc.cfg.KeepFailed, "retention shorter than a week is raised")
	svc = NewDigestService(nil, nil, nil, nil, Config{KeepFailed: 10 * 24 * time.Hour})
	assert.Equal(t, 10*24*time.Hour, svc.cfg.KeepFailed)
}

func TestDigestService_GenerateFor(t *testing.T) {
	watermark := testNow.Add(-26 * time.Hour)
	cats := []domain.CategoryPreference{{Category: "science", Weight: 9, Enabled: true}}

	t.Run("profile with watermark", func(t *testing.T) {
		pr := &mocks.ProfileRepoMock{EnsureProfileFunc: func(ctx context.Context, id string, l domain.Leaning, f domain.Frequency) (*domain.Profile, error) {
			return &domain.Profile{ID: id, Leaning: domain.LeaningLeft, Frequency: domain.FrequencyDaily,
				LastDigestAt: &watermark, Categories: cats}, nil
		}}
		gen := &mocks.GeneratorMock{GenerateFunc: func(ctx context.Context, req digest.Request) (string, error) {
			return "d1", nil
		}}
		svc := newTestService(&mocks.DigestRepoMock{}, pr, gen)

		id, err := svc.GenerateFor(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "d1", id)

		require.Len(t, pr.EnsureProfileCalls(), 1)
		assert.Equal(t, domain.LeaningCentre, pr.EnsureProfileCalls()[0].Leaning)
		assert.Equal(t, domain.FrequencyWeekly, pr.EnsureProfileCalls()[0].Frequency)

		require.Len(t, gen.GenerateCalls(), 1)
		req := gen.GenerateCalls()[0].Req
		assert.Equal(t, "alice", req.Owner)
		assert.Equal(t, domain.LeaningLeft, req.Leaning)
		assert.Equal(t, domain.FrequencyDaily, req.Frequency)
		assert.Equal(t, cats, req.Categories)
		require.NotNil(t, req.Since)
		assert.Equal(t, watermark, *req.Since)
	})

	t.Run("new profile looks back one period", func(t *testing.T) {
		pr := &mocks.ProfileRepoMock{EnsureProfileFunc: func(ctx context.Context, id string, l domain.Leaning, f domain.Frequency) (*domain.Profile, error) {
			return &domain.Profile{ID: id, Leaning: l, Frequency: f}, nil
		}}
		gen := &mocks.GeneratorMock{GenerateFunc: func(ctx context.Context, req digest.Request) (string, error) {
			return "d2", nil
		}}
		_, err := newTestService(&mocks.DigestRepoMock{}, pr, gen).GenerateFor(context.Background(), "bob")
		require.NoError(t, err)
		req := gen.GenerateCalls()[0].Req
		require.NotNil(t, req.Since)
		assert.Equal(t, testNow.Add(-7*24*time.Hour), *req.Since)
		assert.Equal(t, domain.DefaultCategories(), req.Categories)
	})

	t.Run("errors", func(t *testing.T) {
		pr := &mocks.ProfileRepoMock{EnsureProfileFunc: func(ctx context.Context, id string, l domain.Leaning, f domain.Frequency) (*domain.Profile, error) {
			return nil, errors.New("db down")
		}}
		gen := &mocks.GeneratorMock{}
		svc := newTestService(&mocks.DigestRepoMock{}, pr, gen)

		_, err := svc.GenerateFor(context.Background(), "")
		require.Error(t, err)
		_, err = svc.GenerateFor(context.Background(), "alice")
		require.EqualError(t, err, "get profile of alice: db down")
		assert.Empty(t, gen.GenerateCalls())
	})

	t.Run("generation error passes through", func(t *testing.T) {
		pr := &mocks.ProfileRepoMock{EnsureProfileFunc: func(ctx context.Context, id string, l domain.Leaning, f domain.Frequency) (*domain.Profile, error) {
			return &domain.Profile{ID: id, Leaning: l, Frequency: f}, nil
		}}
		gen := &mocks.GeneratorMock{GenerateFunc: func(ctx context.Context, req digest.Request) (string, error) {
			return "", domain.ErrNoArticlesFound
		}}
		_, err := newTestService(&mocks.DigestRepoMock{}, pr, gen).GenerateFor(context.Background(), "alice")
		require.ErrorIs(t, err, domain.ErrNoArticlesFound)
	})
}

func TestDigestService_Preview(t *testing.T) {
	gen := &mocks.GeneratorMock{PreviewFunc: func(ctx context.Context, req digest.Request) (*domain.Paper, error) {
		return &domain.Paper{Title: "The TebPaper", Leaning: req.Leaning,
			Articles: []domain.DigestArticle{{Title: "one"}}}, nil
	}}
	svc := newTestService(&mocks.DigestRepoMock{}, &mocks.ProfileRepoMock{}, gen)

	p, err := svc.Preview(context.Background(), domain.LeaningRight)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.LeaningRight, p.Leaning)

	stored, err := svc.Paper(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, stored)

	req := gen.PreviewCalls()[0].Req
	assert.Empty(t, req.Owner)
	assert.Equal(t, domain.DefaultCategories(), req.Categories)

	_, err = svc.Preview(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.LeaningCentre, gen.PreviewCalls()[1].Req.Leaning)

	_, err = svc.Preview(context.Background(), "sideways")
	require.Error(t, err)
	assert.Len(t, gen.PreviewCalls(), 2)

	_, err = svc.Paper("missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDigestService_PreviewError(t *testing.T) {
	gen := &mocks.GeneratorMock{PreviewFunc: func(ctx context.Context, req digest.Request) (*domain.Paper, error) {
		return nil, domain.ErrCurationUnavailable
	}}
	svc := newTestService(&mocks.DigestRepoMock{}, &mocks.ProfileRepoMock{}, gen)
	_, err := svc.Preview(context.Background(), domain.LeaningLeft)
	require.ErrorIs(t, err, domain.ErrCurationUnavailable)
}

func TestDigestService_Digest(t *testing.T) {
	dr := &mocks.DigestRepoMock{
		GetDigestFunc: func(ctx context.Context, id string) (*domain.Digest, error) {
			switch id {
			case "ready":
				return &domain.Digest{ID: id, Status: domain.DigestReady}, nil
			case "generating":
				return &domain.Digest{ID: id, Status: domain.DigestGenerating}, nil
			}
			return nil, domain.ErrNotFound
		},
		GetDigestArticlesFunc: func(ctx context.Context, digestID string) ([]domain.DigestArticle, error) {
			return []domain.DigestArticle{{Title: "a", DigestID: digestID}}, nil
		},
		LatestReadyDigestFunc: func(ctx context.Context, owner string) (*domain.Digest, error) {
			if owner == "alice" {
				return &domain.Digest{ID: "ready", Owner: owner, Status: domain.DigestReady}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(dr, &mocks.ProfileRepoMock{}, &mocks.GeneratorMock{})

	v, err := svc.Digest(context.Background(), "ready")
	require.NoError(t, err)
	assert.Len(t, v.Articles, 1)

	v, err = svc.Digest(context.Background(), "generating")
	require.NoError(t, err)
	assert.Empty(t, v.Articles)
	assert.Len(t, dr.GetDigestArticlesCalls(), 1, "articles of a non-ready digest are not read")

	_, err = svc.Digest(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)

	v, err = svc.LatestDigest(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "ready", v.ID)
	_, err = svc.LatestDigest(context.Background(), "bob")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDigestService_DueOwners(t *testing.T) {
	pr := &mocks.ProfileRepoMock{GetDueProfilesFunc: func(ctx context.Context, now time.Time) ([]domain.Profile, error) {
		return []domain.Profile{{ID: "a"}, {ID: "b"}}, nil
	}}
	svc := newTestService(&mocks.DigestRepoMock{}, pr, &mocks.GeneratorMock{})
	owners, err := svc.DueOwners(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, owners)
	assert.Equal(t, testNow, pr.GetDueProfilesCalls()[0].Now)

	pr.GetDueProfilesFunc = func(ctx context.Context, now time.Time) ([]domain.Profile, error) {
		return nil, errors.New("boom")
	}
	_, err = svc.DueOwners(context.Background())
	require.Error(t, err)
}

func TestDigestService_Reconcile(t *testing.T) {
	dr := &mocks.DigestRepoMock{
		FailStaleDigestsFunc: func(ctx context.Context, before time.Time) ([]string, error) {
			return []string{"x", "y"}, nil
		},
		PurgeFailedDigestsFunc: func(ctx context.Context, before time.Time) (int64, error) {
			return 3, nil
		},
	}
	svc := newTestService(dr, &mocks.ProfileRepoMock{}, &mocks.GeneratorMock{})
	n, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, testNow.Add(-30*time.Minute), dr.FailStaleDigestsCalls()[0].Before)
	require.Len(t, dr.PurgeFailedDigestsCalls(), 1)
	assert.Equal(t, testNow.Add(-30*24*time.Hour), dr.PurgeFailedDigestsCalls()[0].Before)

	t.Run("purge error", func(t *testing.T) {
		dr.PurgeFailedDigestsFunc = func(ctx context.Context, before time.Time) (int64, error) {
			return 0, errors.New("busy")
		}
		n, err := svc.Reconcile(context.Background())
		require.EqualError(t, err, "purge failed digests: busy")
		assert.Equal(t, 2, n, "stuck digests are failed anyway")
	})

	t.Run("fail error", func(t *testing.T) {
		calls := len(dr.PurgeFailedDigestsCalls())
		dr.FailStaleDigestsFunc = func(ctx context.Context, before time.Time) ([]string, error) {
			return nil, errors.New("locked")
		}
		_, err := svc.Reconcile(context.Background())
		require.EqualError(t, err, "fail stale digests: locked")
		assert.Len(t, dr.PurgeFailedDigestsCalls(), calls, "no purge after failure")
	})
}
