// Package lruk implements an LRU-K admission filter: a key is only
// admitted into the main cache once it has been observed K times,
// shielding the main cache from one-off scans.
package lruk

import (
	"sync"

	"github.com/arazmj/gocache/cache"
	"github.com/arazmj/gocache/lru"
)

var _ cache.Policy[string, int] = (*Cache[string, int])(nil)

// Cache wraps a main LRU cache and a history LRU cache (key to observation
// count). It composes lru.Cache rather than embedding/inheriting it, since
// admission changes both Put and Get semantics in ways inheritance would
// leak through.
type Cache[K comparable, V any] struct {
	mu sync.Mutex

	main    *lru.Cache[K, V]
	history *lru.Cache[K, int]
	k       int
}

// New constructs an LRU-K cache. mainCapacity bounds the admitted cache;
// historyCapacity bounds how many not-yet-admitted keys are tracked at
// once (so rarely seen keys are eventually forgotten); k is the number of
// observations required before a key is admitted.
func New[K comparable, V any](mainCapacity, historyCapacity, k int) *Cache[K, V] {
	if k < 1 {
		k = 1
	}
	return &Cache[K, V]{
		main:    lru.New[K, V](mainCapacity),
		history: lru.New[K, int](historyCapacity),
		k:       k,
	}
}

// Put overwrites key directly if it is already admitted to main.
// Otherwise it counts this as one observation and admits key once the
// observation count reaches k, clearing its history entry on admission.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var existing V
	if c.main.Get(key, &existing) {
		c.main.Put(key, value)
		return
	}

	if c.observe(key) >= c.k {
		c.history.Remove(key)
		c.main.Put(key, value)
	}
}

// Get reports whether key is resident in the main cache, copying its
// value into out. A lookup on a key pending admission counts as an
// observation but is always a miss: presence is always determined by an
// explicit hit/miss return, never by comparing a returned value against a
// zero value.
func (c *Cache[K, V]) Get(key K, out *V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.main.Get(key, out) {
		return true
	}
	c.observe(key)
	return false
}

// GetOrZero returns the value for key, or the zero value of V on a miss.
func (c *Cache[K, V]) GetOrZero(key K) V {
	var v V
	c.Get(key, &v)
	return v
}

// observe increments key's history observation count and returns the new
// count. Callers must hold c.mu.
func (c *Cache[K, V]) observe(key K) int {
	var count int
	c.history.Get(key, &count)
	count++
	c.history.Put(key, count)
	return count
}
