// Package cache is the process-wide read cache in front of the catalog store.
// Each query shape (category list, featured products, single product, ...) is
// an independently keyed, independently expiring entry; any admin mutation
// clears everything at once (see invalidation.go).
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// TTL classes by query shape: volatility vs. read cost.
const (
	// Categories change rarely; a day of staleness is acceptable between
	// invalidations.
	TTLCategories = 24 * time.Hour

	// Everything product-shaped balances stock/price freshness against
	// per-read billing on the backing store.
	TTLFeatured   = time.Hour
	TTLProduct    = time.Hour
	TTLCategory   = time.Hour
	TTLByCategory = time.Hour
	TTLCatalog    = time.Hour
)

type entry struct {
	value     any
	fetchedAt time.Time
	ttl       time.Duration
}

func (e *entry) fresh(now time.Time) bool {
	return now.Sub(e.fetchedAt) < e.ttl
}

// Cache is constructed once at startup and injected into the services that
// read through it. Entries are replaced wholesale on recomputation; readers
// never observe a partially written value.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group
}

func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

func (c *Cache) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.entries[key]; ok && e.fresh(time.Now()) {
		return e.value, true
	}
	return nil, false
}

func (c *Cache) set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{value: value, fetchedAt: time.Now(), ttl: ttl}
}

// GetOrCompute returns the memoized value for key when it is younger than ttl,
// otherwise invokes compute, stores the result, and returns it. Concurrent
// callers racing on the same absent or expired key share a single in-flight
// computation; a compute error is returned to every waiter and nothing is
// cached, so an unreachable backing store is never masked by a stale entry.
func (c *Cache) GetOrCompute(key string, ttl time.Duration, compute func() (any, error)) (any, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Another flight may have populated the key while we queued.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return nil, err
		}
		c.set(key, v, ttl)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// GetOrCompute is the typed wrapper over Cache.GetOrCompute; the cache stores
// values as any, callers get their concrete type back.
func GetOrCompute[T any](c *Cache, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	v, err := c.GetOrCompute(key, ttl, func() (any, error) {
		return compute()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// InvalidateAll drops every entry. The next read of ANY shape is a full miss.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Len reports the number of stored entries (fresh or expired).
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
