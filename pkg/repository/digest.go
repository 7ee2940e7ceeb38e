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

// DigestRepository handles digest and digest article database operations
type DigestRepository struct {
	db *sqlx.DB
}

// NewDigestRepository creates a new digest repository
func NewDigestRepository(db *sqlx.DB) *DigestRepository {
	return &DigestRepository{db: db}
}

// digestSQL represents a digest for SQL operations
type digestSQL struct {
	ID          string    `db:"id"`
	Owner       string    `db:"owner"`
	Title       string    `db:"title"`
	Subtitle    string    `db:"subtitle"`
	PeriodStart time.Time `db:"period_start"`
	PeriodEnd   time.Time `db:"period_end"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// digestArticleSQL represents a digest article for SQL operations
type digestArticleSQL struct {
	ID          int64          `db:"id"`
	DigestID    string         `db:"digest_id"`
	Title       string         `db:"title"`
	Subtitle    string         `db:"subtitle"`
	Summary     string         `db:"summary"`
	OriginalURL string         `db:"original_url"`
	ArchiveURL  sql.NullString `db:"archive_url"`
	Paywalled   bool           `db:"is_paywalled"`
	SourceName  string         `db:"source_name"`
	Author      string         `db:"author"`
	Category    string         `db:"category"`
	Importance  int            `db:"importance"`
	PublishedAt *time.Time     `db:"published_at"`
	Position    int            `db:"position"`
}

const digestColumns = "id, owner, title, subtitle, period_start, period_end, status, created_at, updated_at"

// CreateDigest inserts a new digest record
func (r *DigestRepository) CreateDigest(ctx context.Context, d domain.Digest) error {
	if d.ID == "" {
		return fmt.Errorf("create digest: empty id")
	}
	if d.Status == "" {
		d.Status = domain.DigestGenerating
	}
	query := `
		INSERT INTO digests (id, owner, title, subtitle, period_start, period_end, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, d.ID, d.Owner, d.Title, d.Subtitle, dbTime(d.PeriodStart),
		dbTime(d.PeriodEnd), string(d.Status), dbTime(d.CreatedAt), dbTime(d.UpdatedAt))
	if err != nil {
		return fmt.Errorf("create digest %s: %w", d.ID, err)
	}
	return nil
}

// InsertDigestArticles stores all articles of a digest in one transaction, nothing is stored on failure
func (r *DigestRepository) InsertDigestArticles(ctx context.Context, digestID string, articles []domain.DigestArticle) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	query := `
		INSERT INTO digest_articles (digest_id, title, subtitle, summary, original_url, archive_url, is_paywalled,
			source_name, author, category, importance, published_at, position)
		VALUES (:digest_id, :title, :subtitle, :summary, :original_url, :archive_url, :is_paywalled,
			:source_name, :author, :category, :importance, :published_at, :position)`

	for _, a := range articles {
		rec := toDigestArticleSQL(a)
		rec.DigestID = digestID
		if _, err := tx.NamedExecContext(ctx, query, rec); err != nil {
			return fmt.Errorf("insert article %d of digest %s: %w", a.Position, digestID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit digest articles: %w", err)
	}
	return nil
}

// UpdateDigestStatus moves a generating digest to the given status. Terminal digests are never
// changed, updating one is an error.
func (r *DigestRepository) UpdateDigestStatus(ctx context.Context, digestID string, status domain.DigestStatus, subtitle string) error {
	return withLockRetry(ctx, func() error {
		query := `UPDATE digests SET status = ?, subtitle = ?, updated_at = ? WHERE id = ? AND status = ?`
		res, err := r.db.ExecContext(ctx, query, string(status), subtitle, dbTime(time.Now()), digestID,
			string(domain.DigestGenerating))
		if err != nil {
			return lockOrCritical(fmt.Errorf("update digest %s status: %w", digestID, err))
		}
		n, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get affected rows: %w", err)}
		}
		if n == 0 {
			return &criticalError{err: fmt.Errorf("digest %s is not generating: %w", digestID, domain.ErrNotFound)}
		}
		return nil
	})
}

// GetDigest returns a digest by id
func (r *DigestRepository) GetDigest(ctx context.Context, id string) (*domain.Digest, error) {
	var rec digestSQL
	query := "SELECT " + digestColumns + " FROM digests WHERE id = ?"
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("digest %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get digest %s: %w", id, err)
	}
	d := rec.toDomain()
	return &d, nil
}

// GetDigestArticles returns articles of a ready digest, most important first.
// Articles of a digest in any other status are never returned.
func (r *DigestRepository) GetDigestArticles(ctx context.Context, digestID string) ([]domain.DigestArticle, error) {
	query := `
		SELECT a.id, a.digest_id, a.title, a.subtitle, a.summary, a.original_url, a.archive_url, a.is_paywalled,
			a.source_name, a.author, a.category, a.importance, a.published_at, a.position
		FROM digest_articles a
		JOIN digests d ON d.id = a.digest_id
		WHERE a.digest_id = ? AND d.status = ?
		ORDER BY a.importance DESC, a.position ASC`

	var recs []digestArticleSQL
	if err := r.db.SelectContext(ctx, &recs, query, digestID, string(domain.DigestReady)); err != nil {
		return nil, fmt.Errorf("get articles of digest %s: %w", digestID, err)
	}

	res := make([]domain.DigestArticle, 0, len(recs))
	for _, rec := range recs {
		res = append(res, rec.toDomain())
	}
	return res, nil
}

// ListDigests returns digests matching the filter, newest first
func (r *DigestRepository) ListDigests(ctx context.Context, filter domain.DigestFilter) ([]domain.Digest, error) {
	qb := sq.Select(digestColumns).From("digests").OrderBy("created_at DESC", "id")
	if filter.Owner != "" {
		qb = qb.Where(sq.Eq{"owner": filter.Owner})
	}
	if filter.Status != "" {
		qb = qb.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}
	return r.selectDigests(ctx, qb)
}

// LatestReadyDigest returns the most recent ready digest of the owner
func (r *DigestRepository) LatestReadyDigest(ctx context.Context, owner string) (*domain.Digest, error) {
	res, err := r.ListDigests(ctx, domain.DigestFilter{Owner: owner, Status: domain.DigestReady, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("ready digest of %s: %w", owner, domain.ErrNotFound)
	}
	return &res[0], nil
}

// FailStaleDigests marks digests generating since before the given time as failed and
// returns their ids
func (r *DigestRepository) FailStaleDigests(ctx context.Context, before time.Time) ([]string, error) {
	stale := sq.And{
		sq.Eq{"status": string(domain.DigestGenerating)},
		sq.Expr("julianday(updated_at) < julianday(?)", dbTime(before)),
	}

	query, args, err := sq.Select("id").From("digests").Where(stale).OrderBy("updated_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stale digests query: %w", err)
	}
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("get stale digests: %w", err)
	}
	if len(ids) == 0 {
		return ids, nil
	}

	upd, updArgs, err := sq.Update("digests").
		Set("status", string(domain.DigestFailed)).
		Set("updated_at", dbTime(time.Now())).
		Where(sq.Eq{"id": ids, "status": string(domain.DigestGenerating)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build fail digests query: %w", err)
	}
	err = withLockRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, upd, updArgs...)
		return lockOrCritical(err)
	})
	if err != nil {
		return nil, fmt.Errorf("fail stale digests: %w", err)
	}
	return ids, nil
}

// PurgeFailedDigests removes failed digests last updated before the given time, with their
// articles, and returns the number removed
func (r *DigestRepository) PurgeFailedDigests(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := sq.Delete("digests").Where(sq.And{
		sq.Eq{"status": string(domain.DigestFailed)},
		sq.Expr("julianday(updated_at) < julianday(?)", dbTime(before)),
	}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge digests query: %w", err)
	}

	var purged int64
	err = withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return lockOrCritical(fmt.Errorf("purge failed digests: %w", err))
		}
		if purged, err = res.RowsAffected(); err != nil {
			return &criticalError{err: fmt.Errorf("get affected rows: %w", err)}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}

func (r *DigestRepository) selectDigests(ctx context.Context, qb sq.SelectBuilder) ([]domain.Digest, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build digests query: %w", err)
	}
	var recs []digestSQL
	if err := r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("list digests: %w", err)
	}
	res := make([]domain.Digest, 0, len(recs))
	for _, rec := range recs {
		res = append(res, rec.toDomain())
	}
	return res, nil
}

func (d digestSQL) toDomain() domain.Digest {
	return domain.Digest{
		ID:          d.ID,
		Owner:       d.Owner,
		Title:       d.Title,
		Subtitle:    d.Subtitle,
		PeriodStart: d.PeriodStart,
		PeriodEnd:   d.PeriodEnd,
		Status:      domain.DigestStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDigestArticleSQL(a domain.DigestArticle) digestArticleSQL {
	rec := digestArticleSQL{
		DigestID:    a.DigestID,
		Title:       a.Title,
		Subtitle:    a.Subtitle,
		Summary:     a.Summary,
		OriginalURL: a.OriginalURL,
		Paywalled:   a.Paywalled,
		SourceName:  a.SourceName,
		Author:      a.Author,
		Category:    a.Category,
		Importance:  a.Importance,
		PublishedAt: dbTimePtr(a.Published),
		Position:    a.Position,
	}
	if a.ArchiveURL != nil {
		rec.ArchiveURL = sql.NullString{String: *a.ArchiveURL, Valid: true}
	}
	return rec
}

func (a digestArticleSQL) toDomain() domain.DigestArticle {
	res := domain.DigestArticle{
		ID:          a.ID,
		DigestID:    a.DigestID,
		Title:       a.Title,
		Subtitle:    a.Subtitle,
		Summary:     a.Summary,
		OriginalURL: a.OriginalURL,
		Paywalled:   a.Paywalled,
		SourceName:  a.SourceName,
		Author:      a.Author,
		Category:    a.Category,
		Importance:  a.Importance,
		Published:   a.PublishedAt,
		Position:    a.Position,
	}
	if a.ArchiveURL.Valid {
		u := a.ArchiveURL.String
		res.ArchiveURL = &u
	}
	return res
}
