package news

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/newsdigest/pkg/domain"
)

func TestRecency(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time { ts := now.Add(-d); return &ts }

	assert.InDelta(t, 0.5, Recency(nil, now), 1e-9, "undated is neutral")
	assert.InDelta(t, 1.0, Recency(at(0), now), 1e-9)
	assert.InDelta(t, 0.5, Recency(at(84*time.Hour), now), 1e-9)
	assert.InDelta(t, 0.0, Recency(at(7*24*time.Hour), now), 1e-9)
	assert.InDelta(t, 0.0, Recency(at(30*24*time.Hour), now), 1e-9, "older than a week is clamped")
	assert.InDelta(t, 1.0, Recency(at(-48*time.Hour), now), 1e-9, "future date is clamped")
}

func TestScore(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	fresh := now
	weekOld := now.Add(-8 * 24 * time.Hour)

	t.Run("fresh, full weight and affinity", func(t *testing.T) {
		a := domain.RawArticle{CategoryWeight: 10, Affinity: 1, Published: &fresh}
		assert.InDelta(t, 1.0, Score(a, now), 1e-9)
	})

	t.Run("stale article keeps the floor", func(t *testing.T) {
		a := domain.RawArticle{CategoryWeight: 10, Affinity: 1, Published: &weekOld}
		assert.InDelta(t, 0.3, Score(a, now), 1e-9)
	})

	t.Run("undated uses neutral recency", func(t *testing.T) {
		a := domain.RawArticle{CategoryWeight: 5, Affinity: 0.8}
		assert.InDelta(t, 0.5*0.8*(0.3+0.35), Score(a, now), 1e-9)
	})

	t.Run("zero affinity zeroes score", func(t *testing.T) {
		a := domain.RawArticle{CategoryWeight: 10, Affinity: 0, Published: &fresh}
		assert.Zero(t, Score(a, now))
	})

	t.Run("out of range weight is clamped", func(t *testing.T) {
		a := domain.RawArticle{CategoryWeight: 25, Affinity: 1, Published: &fresh}
		assert.InDelta(t, 1.0, Score(a, now), 1e-9)
	})
}

func TestScore_Monotonic(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	pub := now.Add(-36 * time.Hour)

	prev := -1.0
	for w := 1; w <= 10; w++ {
		s := Score(domain.RawArticle{CategoryWeight: w, Affinity: 0.75, Published: &pub}, now)
		assert.GreaterOrEqual(t, s, prev, "weight %d", w)
		assert.LessOrEqual(t, s, 1.0)
		prev = s
	}

	prev = -1.0
	for _, aff := range []float64{0, 0.25, 0.5, 0.75, 1} {
		s := Score(domain.RawArticle{CategoryWeight: 6, Affinity: aff, Published: &pub}, now)
		assert.GreaterOrEqual(t, s, prev, "affinity %v", aff)
		prev = s
	}
}
