package domain

import "time"

// Frequency is how often a reader gets a digest
type Frequency string

// supported frequencies
const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Period returns the time span covered by one digest of this frequency
func (f Frequency) Period() time.Duration {
	if f == FrequencyDaily {
		return 24 * time.Hour
	}
	return 7 * 24 * time.Hour
}

// Profile holds reader preferences and the digest watermark
type Profile struct {
	ID           string               `json:"id"`
	Leaning      Leaning              `json:"political_leaning"`
	Frequency    Frequency            `json:"digest_frequency"`
	LastDigestAt *time.Time           `json:"last_digest_at"` // watermark, nil before the first ready digest
	CreatedAt    time.Time            `json:"created_at"`
	Categories   []CategoryPreference `json:"categories"`
}

// Due reports whether a new digest is due, a full period has passed since the watermark
func (p Profile) Due(now time.Time) bool {
	if p.LastDigestAt == nil {
		return true
	}
	return !p.LastDigestAt.Add(p.Frequency.Period()).After(now)
}
