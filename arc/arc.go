package arc

import (
	"sync"

	"github.com/arazmj/gocache/cache"
)

var (
	_ cache.Policy[string, int] = (*Cache[string, int])(nil)
	_ cache.Purger              = (*Cache[string, int])(nil)
)

// DefaultCapacity and DefaultTransformThreshold are the values NewDefault
// uses. New also falls back to DefaultTransformThreshold when given a
// non-positive transformThreshold; a non-positive capacity is kept as is.
const (
	DefaultCapacity           = 10
	DefaultTransformThreshold = 2
)

// Cache coordinates an LRU half and an LFU half, each sized at capacity,
// so the effective budget of a Cache is 2*capacity entries, split
// dynamically between the two halves as ghost hits shift capacity back
// and forth.
//
// The coordinator holds a single lock around every composite operation
// and treats lruPart/lfuPart as plain data, which sidesteps the fixed
// lock-acquisition-order a two-separate-locks design would need.
type Cache[K comparable, V any] struct {
	mu  sync.Mutex
	lru *lruPart[K, V]
	lfu *lfuPart[K, V]
}

// New constructs an ARC cache. Both halves start at capacity entries and
// an equally sized ghost list; once an entry's access count reaches
// transformThreshold it is copied into the LFU half and also stays in the
// LRU half. A
// non-positive capacity produces a dead cache, consistent with every
// other policy in this module — it is not treated as "use the default",
// which is what NewDefault is for.
func New[K comparable, V any](capacity, transformThreshold int) *Cache[K, V] {
	if transformThreshold <= 0 {
		transformThreshold = DefaultTransformThreshold
	}
	return &Cache[K, V]{
		lru: newLRUPart[K, V](capacity, capacity, transformThreshold),
		lfu: newLFUPart[K, V](capacity, capacity),
	}
}

// NewDefault constructs an ARC cache using the package's documented
// defaults (capacity 10, transformThreshold 2).
func NewDefault[K comparable, V any]() *Cache[K, V] {
	return New[K, V](DefaultCapacity, DefaultTransformThreshold)
}

// Put inserts or overwrites key. A ghost hit on either half rebalances
// capacity before absorbing the miss; a fresh LRU insert that reaches
// transformThreshold is mirrored into the LFU half.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.checkGhostCaches(key) {
		c.lru.put(key, value)
		return
	}

	if promoted := c.lru.put(key, value); promoted {
		c.lfu.put(key, value)
	}
}

// Get copies the value for key into out and returns true on a hit. The
// LRU half is consulted first; a hit that reaches transformThreshold is
// mirrored into the LFU half.
func (c *Cache[K, V]) Get(key K, out *V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.checkGhostCaches(key)

	if ok, shouldTransform := c.lru.get(key, out); ok {
		if shouldTransform {
			c.lfu.put(key, *out)
		}
		return true
	}
	return c.lfu.get(key, out)
}

// GetOrZero returns the value for key, or the zero value of V on a miss.
func (c *Cache[K, V]) GetOrZero(key K) V {
	var v V
	c.Get(key, &v)
	return v
}

// Purge removes every entry from both halves and both ghost lists.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.purge()
	c.lfu.purge()
}

// Len returns the number of entries currently resident across both
// halves.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.len() + c.lfu.len()
}

// checkGhostCaches asks each half whether key is a recent ghost of that
// half, shifting one unit of capacity toward whichever half reports a hit
// (by shrinking the other half, which can refuse if it has none to give).
// It reports whether any ghost hit occurred.
func (c *Cache[K, V]) checkGhostCaches(key K) bool {
	if c.lru.checkGhost(key) {
		if c.lfu.decreaseCapacity() {
			c.lru.increaseCapacity()
		}
		return true
	}
	if c.lfu.checkGhost(key) {
		if c.lru.decreaseCapacity() {
			c.lfu.increaseCapacity()
		}
		return true
	}
	return false
}
