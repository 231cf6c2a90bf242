package recommend

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CriteriaStore keeps each user's in-progress criteria selection. Entries
// are transient: a selection abandoned mid-flow falls out of the cache on
// its own, and every touch extends the window.
type CriteriaStore struct {
	cache *gocache.Cache
}

func NewCriteriaStore(ttl time.Duration) *CriteriaStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &CriteriaStore{cache: gocache.New(ttl, 10*time.Minute)}
}

func key(userID int64) string { return strconv.FormatInt(userID, 10) }

// Toggle flips one criteria key ("group_value") in the user's set and
// returns the updated selection.
func (s *CriteriaStore) Toggle(userID int64, criteriaKey string) []string {
	sel := s.Selected(userID)
	for i, k := range sel {
		if k == criteriaKey {
			sel = append(sel[:i], sel[i+1:]...)
			s.cache.SetDefault(key(userID), sel)
			return sel
		}
	}
	sel = append(sel, criteriaKey)
	s.cache.SetDefault(key(userID), sel)
	return sel
}

// Selected returns the user's current selection in toggle order.
func (s *CriteriaStore) Selected(userID int64) []string {
	v, ok := s.cache.Get(key(userID))
	if !ok {
		return nil
	}
	sel := v.([]string)
	out := make([]string, len(sel))
	copy(out, sel)
	return out
}

// Reset drops the user's selection.
func (s *CriteriaStore) Reset(userID int64) {
	s.cache.Delete(key(userID))
}
