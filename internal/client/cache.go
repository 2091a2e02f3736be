package client

import (
	"sync"
	"time"
)

// DefaultCacheTTL is the freshness window for cached queries; the mentor
// dashboard uses the shorter DashboardCacheTTL.
const (
	DefaultCacheTTL   = 5 * time.Minute
	DashboardCacheTTL = 30 * time.Second
)

// entry is one cached query result
type entry struct {
	value     any
	fetchedAt time.Time
	ttl       time.Duration
}

func (e *entry) fresh(now time.Time) bool {
	return now.Sub(e.fetchedAt) < e.ttl
}

// Cache stores query results keyed by query identity. Entries expire by
// TTL but are kept around so callers can fall back to stale data when the
// server is unreachable.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]*entry
	defaultTTL time.Duration
	now        func() time.Time
}

// NewCache creates a Cache with the given default TTL. A zero TTL falls
// back to DefaultCacheTTL.
func NewCache(defaultTTL time.Duration) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultCacheTTL
	}
	return &Cache{
		entries:    make(map[string]*entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// LoadFunc produces a fresh value for a cache key
type LoadFunc func() (any, error)

// Fetch returns the cached value for key while it is inside its TTL window,
// otherwise calls load. When load fails and a stale value exists, the stale
// value is returned together with the error so the caller can keep showing
// it.
func (c *Cache) Fetch(key string, ttl time.Duration, load LoadFunc) (any, error) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	var cached any
	if ok {
		cached = e.value
	}
	fresh := ok && e.fresh(c.now())
	c.mu.RUnlock()
	if fresh {
		return cached, nil
	}

	return c.refresh(key, ttl, load)
}

// Refresh always performs the call, bypassing the TTL window. Stale data is
// preserved on failure the same way Fetch preserves it.
func (c *Cache) Refresh(key string, ttl time.Duration, load LoadFunc) (any, error) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	return c.refresh(key, ttl, load)
}

func (c *Cache) refresh(key string, ttl time.Duration, load LoadFunc) (any, error) {
	value, err := load()
	if err != nil {
		c.mu.RLock()
		e, ok := c.entries[key]
		var stale any
		if ok {
			stale = e.value
		}
		c.mu.RUnlock()
		if ok {
			return stale, err
		}
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = &entry{value: value, fetchedAt: c.now(), ttl: ttl}
	c.mu.Unlock()

	return value, nil
}

// Invalidate removes a key so the next Fetch performs the call
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Get returns the cached value regardless of freshness
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Patch applies an optimistic in-place edit to a cached value after a
// mutation. The entry's fetch time is not advanced, so the next Fetch past
// the original window still reconciles against the server.
func (c *Cache) Patch(key string, apply func(value any) any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	e.value = apply(e.value)
	return true
}
