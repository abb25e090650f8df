// Package cache provides a generic TTL memo cache
package cache

import (
	"sync"
	"time"
)

// entry wraps a cached value with its expiration time
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Stats counts lookups since creation
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Cache is a thread-safe memo cache with TTL expiration
type Cache[K comparable, V any] struct {
	entries map[K]entry[V]
	mu      sync.RWMutex
	ttl     time.Duration
	stats   Stats
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

// New creates a cache with the given TTL and starts its expiry sweeper.
// Call Close to stop the sweeper.
func New[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return newWithClock[K, V](ttl, time.Now)
}

// newWithClock sets now before the sweeper goroutine can read it
func newWithClock[K comparable, V any](ttl time.Duration, now func() time.Time) *Cache[K, V] {
	c := &Cache[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
		now:     now,
		stop:    make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Get retrieves a value, returning (value, true) if found and not expired
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.entries[key]
	if !exists || c.now().After(e.expiresAt) {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.stats.Hits++
	return e.value, true
}

// Set stores a value with the cache's TTL
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// GetOrLoad returns the cached value for key, or calls load and caches its
// result. Errors are returned as-is and never cached. hit reports whether
// the value came from the cache.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (value V, hit bool, err error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}

	v, err := load()
	if err != nil {
		var zero V
		return zero, false, err
	}
	c.Set(key, v)
	return v, false, nil
}

// Len returns the number of entries (including expired)
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns a snapshot of hit/miss counters
func (c *Cache[K, V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Close stops the background sweeper. It is safe to call more than once.
func (c *Cache[K, V]) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache[K, V]) sweep() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache[K, V]) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
