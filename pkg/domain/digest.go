package domain

import "time"

// DigestStatus is the state of a digest generation
type DigestStatus string

// digest states, ready and failed are terminal
const (
	DigestGenerating DigestStatus = "generating"
	DigestReady      DigestStatus = "ready"
	DigestFailed     DigestStatus = "failed"
)

// Terminal reports whether no further transition is allowed from the status
func (s DigestStatus) Terminal() bool {
	return s == DigestReady || s == DigestFailed
}

// Digest is one generation cycle for one reader
type Digest struct {
	ID          string       `json:"id"`
	Owner       string       `json:"owner"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	PeriodStart time.Time    `json:"period_start"`
	PeriodEnd   time.Time    `json:"period_end"`
	Status      DigestStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"` // time of the last status change
}

// DigestFilter selects digests for listing
type DigestFilter struct {
	Owner  string
	Status DigestStatus
	Limit  int
}

// Paper is a digest generated for an anonymous reader, never persisted
type Paper struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Leaning     Leaning         `json:"leaning"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	CreatedAt   time.Time       `json:"created_at"`
	Articles    []DigestArticle `json:"articles"`
}
