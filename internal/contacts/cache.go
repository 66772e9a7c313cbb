package contacts

import (
	"sync"
	"time"

	"jobscout-engine/internal/domain"
)

// cacheTTL is how long a lookup response stays servable. Entries past
// the TTL are treated as absent, never returned stale.
const cacheTTL = time.Hour

type cacheEntry struct {
	profiles []domain.Profile
	at       time.Time
}

// lookupCache holds lookup responses keyed by serialized parameters.
// It is owned by exactly one Client. A stale read racing a write only
// costs a duplicate upstream call, so a plain RWMutex suffices.
type lookupCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func newLookupCache() *lookupCache {
	return &lookupCache{entries: make(map[string]cacheEntry)}
}

func (c *lookupCache) get(key string, now time.Time) ([]domain.Profile, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || now.Sub(e.at) >= cacheTTL {
		return nil, false
	}
	return e.profiles, true
}

func (c *lookupCache) put(key string, profiles []domain.Profile, now time.Time) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{profiles: profiles, at: now}
	c.mu.Unlock()
}
