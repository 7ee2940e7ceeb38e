package digest

import (
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/umputun/newsdigest/pkg/domain"
)

// PaperStore keeps anonymous papers in memory. It is bounded in size and age, a paper
// can disappear at any time and is gone on restart.
type PaperStore struct {
	cache *lru.LRU[string, domain.Paper]
}

// NewPaperStore makes a store holding at most size papers for ttl each
func NewPaperStore(size int, ttl time.Duration) *PaperStore {
	return &PaperStore{cache: lru.NewLRU[string, domain.Paper](max(1, size), nil, ttl)}
}

// Put saves the paper and returns its id, assigned if empty
func (s *PaperStore) Put(p domain.Paper) string {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	s.cache.Add(p.ID, p)
	return p.ID
}

// Get returns the paper if it is still kept
func (s *PaperStore) Get(id string) (domain.Paper, bool) {
	return s.cache.Get(id)
}

// Len returns the number of kept papers
func (s *PaperStore) Len() int {
	return s.cache.Len()
}
