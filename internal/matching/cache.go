package matching

import (
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// RefreshFunc produces a fresh ranked match list for one cache key. It is
// invoked at most once per key at a time regardless of how many callers
// are waiting.
type RefreshFunc func() ([]JobMatch, error)

type cacheEntry struct {
	capturedAt time.Time
	matches    []JobMatch
}

// RecommendationCache memoizes ranked job matches per candidate user id.
// Entries are replaced whole on refresh and judged stale by TTL on read;
// stale slots are kept, only their value stops being served. A failed
// refresh writes nothing, so any prior entry survives for the next
// attempt.
type RecommendationCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[int64]cacheEntry

	group singleflight.Group
}

func NewRecommendationCache(ttl time.Duration) *RecommendationCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RecommendationCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[int64]cacheEntry),
	}
}

type refreshOutcome struct {
	matches []JobMatch
	cached  bool
}

// GetOrRefresh returns the cached matches for key when the entry is
// younger than the TTL, otherwise runs refresh and stores the result.
// Concurrent misses for the same key coalesce into a single refresh whose
// result (or failure) every waiter receives; misses for other keys are
// unaffected.
func (c *RecommendationCache) GetOrRefresh(key int64, refresh RefreshFunc) ([]JobMatch, bool, error) {
	if matches, ok := c.lookup(key); ok {
		return matches, true, nil
	}

	v, err, _ := c.group.Do(strconv.FormatInt(key, 10), func() (any, error) {
		// A refresh that finished while we queued behind it already
		// stored a fresh entry.
		if matches, ok := c.lookup(key); ok {
			return refreshOutcome{matches: matches, cached: true}, nil
		}

		matches, err := refresh()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = cacheEntry{capturedAt: c.now(), matches: matches}
		c.mu.Unlock()

		return refreshOutcome{matches: matches, cached: false}, nil
	})
	if err != nil {
		return nil, false, err
	}

	out := v.(refreshOutcome)
	return out.matches, out.cached, nil
}

// Invalidate drops the entry for key so the next lookup refreshes.
func (c *RecommendationCache) Invalidate(key int64) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *RecommendationCache) lookup(key int64) ([]JobMatch, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.capturedAt) >= c.ttl {
		return nil, false
	}
	return e.matches, true
}
