package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdigest/pkg/domain"
)

// ProfileRepository handles reader profiles and their category preferences
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// profileSQL represents a profile for SQL operations
type profileSQL struct {
	ID           string     `db:"id"`
	Leaning      string     `db:"political_leaning"`
	Frequency    string     `db:"digest_frequency"`
	LastDigestAt *time.Time `db:"last_digest_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

// categorySQL represents a category preference for SQL operations
type categorySQL struct {
	ProfileID string `db:"profile_id"`
	Category  string `db:"category"`
	Weight    int    `db:"weight"`
	Enabled   bool   `db:"enabled"`
	Position  int    `db:"position"`
}

const profileColumns = "id, political_leaning, digest_frequency, last_digest_at, created_at"

// EnsureProfile returns the profile, creating it with the given leaning, frequency and the
// default categories if it does not exist
func (r *ProfileRepository) EnsureProfile(ctx context.Context, id string, leaning domain.Leaning, frequency domain.Frequency) (*domain.Profile, error) {
	if id == "" {
		return nil, fmt.Errorf("ensure profile: empty id")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	res, err := tx.ExecContext(ctx, `
		INSERT INTO profiles (id, political_leaning, digest_frequency, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`, id, string(leaning), string(frequency), dbTime(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("insert profile %s: %w", id, err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		for i, cat := range domain.DefaultCategories() {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO category_preferences (profile_id, category, weight, enabled, position) VALUES (?, ?, ?, ?, ?)`,
				id, cat.Category, cat.Weight, cat.Enabled, i)
			if err != nil {
				return nil, fmt.Errorf("insert category %s of profile %s: %w", cat.Category, id, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit profile: %w", err)
	}
	return r.GetProfile(ctx, id)
}

// GetProfile returns the profile with its category preferences
func (r *ProfileRepository) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	var rec profileSQL
	if err := r.db.GetContext(ctx, &rec, "SELECT "+profileColumns+" FROM profiles WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get profile %s: %w", id, err)
	}

	cats, err := r.GetCategoryPreferences(ctx, id)
	if err != nil {
		return nil, err
	}
	p := rec.toDomain()
	p.Categories = cats
	return &p, nil
}

// GetCategoryPreferences returns category preferences of the profile in their stored order
func (r *ProfileRepository) GetCategoryPreferences(ctx context.Context, profileID string) ([]domain.CategoryPreference, error) {
	var recs []categorySQL
	query := `SELECT profile_id, category, weight, enabled, position FROM category_preferences
		WHERE profile_id = ? ORDER BY position, category`
	if err := r.db.SelectContext(ctx, &recs, query, profileID); err != nil {
		return nil, fmt.Errorf("get categories of profile %s: %w", profileID, err)
	}
	res := make([]domain.CategoryPreference, 0, len(recs))
	for _, rec := range recs {
		res = append(res, domain.CategoryPreference{Category: rec.Category, Weight: rec.Weight, Enabled: rec.Enabled})
	}
	return res, nil
}

// UpdateOwnerWatermark sets the time the owner's last digest was completed
func (r *ProfileRepository) UpdateOwnerWatermark(ctx context.Context, owner string, ts time.Time) error {
	return withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "UPDATE profiles SET last_digest_at = ? WHERE id = ?", dbTime(ts), owner)
		if err != nil {
			return lockOrCritical(fmt.Errorf("update watermark of %s: %w", owner, err))
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return &criticalError{err: fmt.Errorf("profile %s: %w", owner, domain.ErrNotFound)}
		}
		return nil
	})
}

// GetDueProfiles returns profiles without a digest for a full period of their frequency.
// Profiles with a generating digest, or a digest failed within the last period, are not due.
func (r *ProfileRepository) GetDueProfiles(ctx context.Context, now time.Time) ([]domain.Profile, error) {
	daily := string(domain.FrequencyDaily)
	due := sq.Or{
		sq.Eq{"last_digest_at": nil},
		sq.And{
			sq.Eq{"digest_frequency": daily},
			sq.Expr("julianday(last_digest_at) <= julianday(?)", dbTime(now.Add(-domain.FrequencyDaily.Period()))),
		},
		sq.And{
			sq.NotEq{"digest_frequency": daily},
			sq.Expr("julianday(last_digest_at) <= julianday(?)", dbTime(now.Add(-domain.FrequencyWeekly.Period()))),
		},
	}

	// an owner with a generation in progress, or one that failed within the current period,
	// waits for the next period instead of paying for another curation on every tick
	idle := sq.Expr(`NOT EXISTS (SELECT 1 FROM digests d WHERE d.owner = profiles.id AND (
		d.status = ? OR (d.status = ? AND julianday(d.updated_at) > julianday(
			CASE WHEN profiles.digest_frequency = ? THEN ? ELSE ? END))))`,
		string(domain.DigestGenerating), string(domain.DigestFailed), daily,
		dbTime(now.Add(-domain.FrequencyDaily.Period())), dbTime(now.Add(-domain.FrequencyWeekly.Period())))

	query, args, err := sq.Select(profileColumns).From("profiles").Where(sq.And{due, idle}).
		OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due profiles query: %w", err)
	}
	var recs []profileSQL
	if err := r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("get due profiles: %w", err)
	}

	res := make([]domain.Profile, 0, len(recs))
	for _, rec := range recs {
		p := rec.toDomain()
		if p.Categories, err = r.GetCategoryPreferences(ctx, p.ID); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

func (p profileSQL) toDomain() domain.Profile {
	return domain.Profile{
		ID:           p.ID,
		Leaning:      domain.Leaning(p.Leaning),
		Frequency:    domain.Frequency(p.Frequency),
		LastDigestAt: p.LastDigestAt,
		CreatedAt:    p.CreatedAt,
	}
}
