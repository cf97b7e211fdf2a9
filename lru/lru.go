// Package lru implements a bounded-capacity, O(1) recency-ordered cache.
package lru

import (
	"sync"

	"github.com/arazmj/gocache/cache"
	"github.com/arazmj/gocache/internal/dlinklist"
)

var (
	_ cache.Policy[string, int] = (*Cache[string, int])(nil)
	_ cache.Remover[string]     = (*Cache[string, int])(nil)
	_ cache.Purger              = (*Cache[string, int])(nil)
)

// Cache is a thread-safe, fixed-capacity least-recently-used cache.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	index    map[K]*dlinklist.Node[K, V]
	order    *dlinklist.List[K, V]
	capacity int
}

// New constructs an LRU cache holding at most capacity entries. A
// non-positive capacity produces a dead cache: Put is a no-op and Get
// always misses.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		index:    make(map[K]*dlinklist.Node[K, V]),
		order:    dlinklist.New[K, V](),
		capacity: capacity,
	}
}

// Put inserts or overwrites key with value, evicting the least-recently-
// used entry if the cache is full and key is new.
func (c *Cache[K, V]) Put(key K, value V) {
	if c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.index[key]; ok {
		n.Value = value
		c.order.MoveToBack(n)
		return
	}

	if len(c.index) == c.capacity {
		victim := c.order.PopFront()
		delete(c.index, victim.Key)
	}
	c.index[key] = c.order.PushBack(key, value)
}

// Get copies the value for key into out, marks it most-recently-used, and
// returns true. On a miss it returns false and leaves out untouched.
func (c *Cache[K, V]) Get(key K, out *V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.index[key]
	if !ok {
		return false
	}
	c.order.MoveToBack(n)
	*out = n.Value
	return true
}

// GetOrZero returns the value for key, or the zero value of V on a miss.
func (c *Cache[K, V]) GetOrZero(key K) V {
	var v V
	c.Get(key, &v)
	return v
}

// Remove deletes key from the cache if present. It is a no-op otherwise.
func (c *Cache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.index[key]
	if !ok {
		return
	}
	c.order.Remove(n)
	delete(c.index, key)
}

// Len returns the number of entries currently resident.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

// Purge removes every entry without destroying the cache.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = make(map[K]*dlinklist.Node[K, V])
	c.order = dlinklist.New[K, V]()
}
