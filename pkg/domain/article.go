package domain

import "time"

// RawArticle is a normalized feed entry, fetched under a specific category
type RawArticle struct {
	Title          string
	Link           string
	Summary        string
	Author         string
	Published      *time.Time // nil if the feed gave no usable date
	SourceName     string
	SourceLeaning  Leaning
	Category       string // category the article was fetched under
	Affinity       float64
	CategoryWeight int
}

// ScoredArticle is a raw article with its composite ranking score
type ScoredArticle struct {
	RawArticle
	Score float64
}

// FetchContext carries the per-source values copied onto every fetched article
type FetchContext struct {
	Category string
	Weight   int
	Affinity float64
}

// DigestArticle is a curated article persisted as part of a digest
type DigestArticle struct {
	ID          int64      `json:"id,omitempty"`
	DigestID    string     `json:"digest_id,omitempty"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Summary     string     `json:"summary"`
	OriginalURL string     `json:"original_url"`
	ArchiveURL  *string    `json:"archive_url"`
	Paywalled   bool       `json:"is_paywalled"`
	SourceName  string     `json:"source_name"`
	Author      string     `json:"author"`
	Category    string     `json:"category"`
	Importance  int        `json:"importance"`
	Published   *time.Time `json:"published_at"`
	Position    int        `json:"position"`
}
