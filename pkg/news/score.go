package news

import (
	"time"

	"github.com/umputun/newsdigest/pkg/domain"
)

const (
	recencyWindow   = 7 * 24 * time.Hour
	neutralRecency  = 0.5
	recencyFloor    = 0.3
	maxCategoryRank = 10.0
)

// Score computes the composite ranking score of an article at the given time.
// Undated articles get neutral recency; dated ones decay linearly over a week.
func Score(a domain.RawArticle, now time.Time) float64 {
	weight := float64(a.CategoryWeight)
	weight = min(max(weight, 0), maxCategoryRank)
	return (weight / maxCategoryRank) * a.Affinity * (recencyFloor + (1-recencyFloor)*Recency(a.Published, now))
}

// Recency maps publish time to [0,1], 1 for "now" and 0 for a week old or older
func Recency(published *time.Time, now time.Time) float64 {
	if published == nil {
		return neutralRecency
	}
	r := 1 - float64(now.Sub(*published))/float64(recencyWindow)
	return min(max(r, 0), 1)
}
