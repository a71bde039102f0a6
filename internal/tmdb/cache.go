package tmdb

import (
	"sync"
	"time"
)

type seasonKey struct {
	seriesID int64
	season   int
}

type cacheEntry struct {
	episodes map[int]string
	expires  time.Time
}

// cache holds fetched season episode maps so a preview refresh doesn't
// re-request every season.
type cache struct {
	mu      sync.RWMutex
	entries map[seasonKey]cacheEntry
	ttl     time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[seasonKey]cacheEntry),
		ttl:     ttl,
	}
}

func (c *cache) get(seriesID int64, season int) (map[int]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[seasonKey{seriesID, season}]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.episodes, true
}

func (c *cache) set(seriesID int64, season int, episodes map[int]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[seasonKey{seriesID, season}] = cacheEntry{
		episodes: episodes,
		expires:  time.Now().Add(c.ttl),
	}
}
