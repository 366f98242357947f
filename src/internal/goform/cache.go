package goform

import (
	"strings"
	"sync"
	"time"

	"github.com/maksimkurb/zte-goform/src/internal/log"
)

// QueryCache holds recent query responses keyed by the ordered key list.
//
// Reads of fresh entries only take the cache's own RWMutex. Population on a
// miss happens under the shared device lock, which is also held by writers
// and re-authentication, so a miss can never race a command.
type QueryCache struct {
	lock *sync.Mutex // shared device lock, owned by the client

	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	values  Values
	expires time.Time
}

// NewQueryCache creates a cache whose population is serialized by lock.
// A non-positive ttl selects DefaultCacheTTL.
func NewQueryCache(lock *sync.Mutex, ttl time.Duration) *QueryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &QueryCache{
		lock:    lock,
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// CanonicalKey joins keys preserving order; order is part of the wire query
// and therefore of the cache key.
func CanonicalKey(keys []string) string {
	return strings.Join(keys, ",")
}

// TTL returns the freshness window.
func (c *QueryCache) TTL() time.Duration {
	return c.ttl
}

// Get returns a copy of the fresh entry for key. Expired entries are misses.
func (c *QueryCache) Get(key string) (Values, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expires) {
		return nil, false
	}
	return e.values.Clone(), true
}

// Put stores values under key with a fresh expiry and prunes stale entries.
func (c *QueryCache) Put(key string, values Values) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if !now.Before(e.expires) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cacheEntry{values: values.Clone(), expires: now.Add(c.ttl)}
}

// Invalidate drops every entry.
func (c *QueryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len returns the number of stored entries, fresh or not.
func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetOrFetch returns the fresh entry for keys or calls fetch to populate it.
//
// fetch runs with the device lock held. The entry is re-checked after the
// lock is acquired so concurrent misses for the same keys cost one network
// call. Errors are not cached.
func (c *QueryCache) GetOrFetch(keys []string, fetch func() (Values, error)) (Values, error) {
	key := CanonicalKey(keys)
	if values, ok := c.Get(key); ok {
		return values, nil
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	// Double-check after acquiring the device lock
	if values, ok := c.Get(key); ok {
		return values, nil
	}

	log.Debugf("Query cache miss for %s", key)
	values, err := fetch()
	if err != nil {
		return nil, err
	}
	c.Put(key, values)
	return values.Clone(), nil
}
