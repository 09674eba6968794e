package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a typed, string-keyed wrapper around ristretto.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
}

// Stats is a snapshot of a cache's counters for the admin page.
type Stats struct {
	Name         string
	Hits         uint64
	Misses       uint64
	Sets         uint64
	HitRate      float64 // percent
	CostAdded    uint64
	CostEvicted  uint64
	SetsDropped  uint64
	SetsRejected uint64
	CurrentItems int64
}

// New creates a cache. costFunc prices a value when Set is called with cost 0.
func New[T any](costFunc func(T) int64, name string) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e5,     // number of keys to track frequency of
		MaxCost:     1 << 26, // 64MB
		BufferItems: 64,      // number of keys per Get buffer
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl: impl,
		name: name,
	}, nil
}

// Name returns the label the cache was created with.
func (c *Cache[T]) Name() string {
	return c.name
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with no expiry.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.impl.Set(key, value, cost)
}

// SetWithTTL stores a value that expires after ttl. A zero ttl never expires.
func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

// Delete removes a single key.
func (c *Cache[T]) Delete(key string) {
	c.impl.Del(key)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes are applied, so a Get right after a Set
// observes the value.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// ItemCount returns the current number of items in the cache
func (c *Cache[T]) ItemCount() int64 {
	m := c.impl.Metrics
	return int64(m.KeysAdded()) - int64(m.KeysEvicted())
}

// Stats returns a snapshot of the cache metrics.
func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics

	hitRate := 0.0
	if total := m.Hits() + m.Misses(); total > 0 {
		hitRate = float64(m.Hits()) / float64(total) * 100
	}

	return Stats{
		Name:         c.name,
		Hits:         m.Hits(),
		Misses:       m.Misses(),
		Sets:         m.KeysAdded(),
		HitRate:      hitRate,
		CostAdded:    m.CostAdded(),
		CostEvicted:  m.CostEvicted(),
		SetsDropped:  m.SetsDropped(),
		SetsRejected: m.SetsRejected(),
		CurrentItems: c.ItemCount(),
	}
}
