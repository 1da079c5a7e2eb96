// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"sync"
	"sync/atomic"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Stats is a snapshot of cache performance counters.
type Stats struct {
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	TotalKeys int64   `json:"total_keys"`
	HitRate   float64 `json:"hit_rate"` // percentage
}

// Memory is a thread-safe keyed cache with no expiry and no eviction.
// Entries live until the process exits.
//
// The name labels the cache_* Prometheus series.
type Memory[K comparable, V any] struct {
	name    string
	mu      sync.RWMutex
	entries map[K]V
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewMemory creates an empty cache.
//
//	details := cache.NewMemory[int, metadata.Details]("memory")
//	details.Set(19995, d)
//	if d, ok := details.Get(19995); ok { ... }
func NewMemory[K comparable, V any](name string) *Memory[K, V] {
	return &Memory[K, V]{
		name:    name,
		entries: make(map[K]V),
	}
}

// Get returns the cached value for key and whether it was present.
func (c *Memory[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	value, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	metrics.RecordCacheLookup(c.name, ok)
	return value, ok
}

// Set stores value under key, replacing any previous value.
func (c *Memory[K, V]) Set(key K, value V) {
	c.mu.Lock()
	c.entries[key] = value
	n := len(c.entries)
	c.mu.Unlock()

	metrics.CacheSize.WithLabelValues(c.name).Set(float64(n))
}

// Len returns the number of cached entries.
func (c *Memory[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of the cache counters.
func (c *Memory[K, V]) GetStats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		TotalKeys: int64(c.Len()),
		HitRate:   c.HitRate(),
	}
}

// HitRate returns the hit rate as a percentage, or 0 before any lookup.
func (c *Memory[K, V]) HitRate() float64 {
	hits := c.hits.Load()
	total := hits + c.misses.Load()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}
