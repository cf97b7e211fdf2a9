// Package lfu implements a bounded-capacity, frequency-bucketed cache with
// an average-frequency aging mechanism that bounds counter growth.
package lfu

import (
	"sync"

	"github.com/samber/lo"

	"github.com/arazmj/gocache/cache"
	"github.com/arazmj/gocache/internal/dlinklist"
)

var (
	_ cache.Policy[string, int] = (*Cache[string, int])(nil)
	_ cache.Purger              = (*Cache[string, int])(nil)
)

// DefaultMaxAvgFreq is the average-frequency decay threshold used when a
// caller does not specify one.
const DefaultMaxAvgFreq = 10

// minFreq is explicitly optional rather than using a sentinel integer: it
// is unset until the first insert.
type minFreq struct {
	value int
	valid bool
}

func (m *minFreq) set(v int) { m.value, m.valid = v, true }

func (m *minFreq) unset() { m.value, m.valid = 0, false }

// Cache is a thread-safe, fixed-capacity least-frequently-used cache.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int

	index   map[K]*dlinklist.Node[K, V]
	buckets buckets[K, V]
	minF    minFreq

	maxAvgFreq   int
	curTotalFreq int
}

// New constructs an LFU cache holding at most capacity entries, aging
// every entry's frequency once the running average exceeds maxAvgFreq. A
// non-positive capacity produces a dead cache.
func New[K comparable, V any](capacity, maxAvgFreq int) *Cache[K, V] {
	if maxAvgFreq <= 0 {
		maxAvgFreq = DefaultMaxAvgFreq
	}
	return &Cache[K, V]{
		capacity:   capacity,
		index:      make(map[K]*dlinklist.Node[K, V]),
		buckets:    make(buckets[K, V]),
		maxAvgFreq: maxAvgFreq,
	}
}

// Put inserts or overwrites key with value. An overwrite bumps frequency
// exactly like a Get; a fresh insert starts the entry at frequency 1 and
// may evict the current minimum-frequency, least-recently-inserted entry.
func (c *Cache[K, V]) Put(key K, value V) {
	if c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.index[key]; ok {
		n.Value = value
		c.promote(n)
		c.bumpTotal()
		return
	}

	if len(c.index) == c.capacity {
		c.evict()
	}

	n := c.buckets.insert(1, key, value)
	c.index[key] = n
	c.minF.set(1)
	c.bumpTotal()
}

// Get copies the value for key into out, bumps its frequency, and returns
// true. On a miss it returns false and leaves out untouched.
func (c *Cache[K, V]) Get(key K, out *V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.index[key]
	if !ok {
		return false
	}
	*out = n.Value
	c.promote(n)
	c.bumpTotal()
	return true
}

// GetOrZero returns the value for key, or the zero value of V on a miss.
func (c *Cache[K, V]) GetOrZero(key K) V {
	var v V
	c.Get(key, &v)
	return v
}

// Purge removes every entry without destroying the cache.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = make(map[K]*dlinklist.Node[K, V])
	c.buckets = make(buckets[K, V])
	c.minF.unset()
	c.curTotalFreq = 0
}

// Len returns the number of entries currently resident.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

// promote moves n from its current frequency bucket to the next one up,
// advancing minFreq when the vacated bucket was the minimum. n itself is
// reused and its Freq updated in place, so the index's existing handle to
// it stays valid.
func (c *Cache[K, V]) promote(n *dlinklist.Node[K, V]) {
	oldFreq := n.Freq
	emptied := c.buckets.move(oldFreq, oldFreq+1, n)
	if emptied && c.minF.valid && c.minF.value == oldFreq {
		c.minF.set(oldFreq + 1)
	}
}

// evict removes the front (earliest-inserted) entry of the minimum-
// frequency bucket. Callers must hold c.mu and ensure the cache is
// non-empty.
func (c *Cache[K, V]) evict() {
	if !c.minF.valid {
		return
	}
	l, ok := c.buckets[c.minF.value]
	if !ok {
		return
	}
	victim := l.PopFront()
	if victim == nil {
		return
	}
	if l.Len() == 0 {
		delete(c.buckets, c.minF.value)
	}
	delete(c.index, victim.Key)
	c.curTotalFreq -= victim.Freq
}

// bumpTotal accounts for one more access and triggers aging if the
// running average frequency has exceeded maxAvgFreq.
func (c *Cache[K, V]) bumpTotal() {
	c.curTotalFreq++
	if len(c.index) == 0 {
		return
	}
	if c.curTotalFreq/len(c.index) > c.maxAvgFreq {
		c.age()
	}
}

// age lowers every entry's frequency by maxAvgFreq/2 (at least 1, floor 1)
// and rebuilds minFreq. Keys
// are snapshotted before any bucket is mutated so the aging sweep never
// reassigns a node while ranging over the structure it is mutating.
func (c *Cache[K, V]) age() {
	keys := lo.Keys(c.index)
	decay := c.maxAvgFreq / 2
	if decay < 1 {
		decay = 1
	}

	total := 0
	for _, key := range keys {
		n := c.index[key]
		newFreq := n.Freq - decay
		if newFreq < 1 {
			newFreq = 1
		}
		c.buckets.move(n.Freq, newFreq, n)
		total += newFreq
	}
	c.curTotalFreq = total

	if min, ok := c.buckets.minNonEmptyKey(); ok {
		c.minF.set(min)
	} else {
		c.minF.set(1)
	}
}
