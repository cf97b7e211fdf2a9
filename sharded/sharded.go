// Package sharded wraps LRU and LFU caches in a fixed-fanout array of
// independently locked shards, trading globally optimal replacement for
// reduced lock contention under concurrent access.
package sharded

import (
	"fmt"
	"runtime"

	"github.com/cespare/xxhash/v2"

	"github.com/arazmj/gocache/cache"
	"github.com/arazmj/gocache/lfu"
	"github.com/arazmj/gocache/lru"
)

// shardCount resolves a caller-supplied shard count, defaulting to host
// parallelism when non-positive.
func shardCount(requested int) int {
	if requested > 0 {
		return requested
	}
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}

// perShardCapacity splits totalCapacity evenly across shards, rounding up
// so the aggregate capacity never falls short of totalCapacity.
func perShardCapacity(totalCapacity, shards int) int {
	if shards <= 0 {
		return totalCapacity
	}
	return (totalCapacity + shards - 1) / shards
}

// shardIndex hashes key with xxhash and routes it to one of n shards. It
// dispatches on the key's dynamic type the way the corpus's sharded
// caches do, since xxhash itself only hashes bytes/strings.
func shardIndex[K comparable](key K, n int) int {
	return int(hashKey(key) % uint64(n))
}

func hashKey[K comparable](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case []byte:
		return xxhash.Sum64(k)
	case int:
		return xxhash.Sum64String(fmt.Sprintf("%d", k))
	case int64:
		return xxhash.Sum64String(fmt.Sprintf("%d", k))
	case uint64:
		return xxhash.Sum64String(fmt.Sprintf("%d", k))
	default:
		return xxhash.Sum64String(fmt.Sprintf("%v", key))
	}
}

// HashLruCache partitions a total capacity across shardCount independent
// LRU caches.
type HashLruCache[K comparable, V any] struct {
	shards []*lru.Cache[K, V]
}

// NewHashLruCache allocates shardCount shards (defaulting to host
// parallelism when non-positive) each sized ceil(totalCapacity/shards).
func NewHashLruCache[K comparable, V any](totalCapacity, shards int) *HashLruCache[K, V] {
	n := shardCount(shards)
	per := perShardCapacity(totalCapacity, n)
	h := &HashLruCache[K, V]{shards: make([]*lru.Cache[K, V], n)}
	for i := range h.shards {
		h.shards[i] = lru.New[K, V](per)
	}
	return h
}

func (h *HashLruCache[K, V]) shardFor(key K) *lru.Cache[K, V] {
	return h.shards[shardIndex(key, len(h.shards))]
}

func (h *HashLruCache[K, V]) Put(key K, value V) { h.shardFor(key).Put(key, value) }

func (h *HashLruCache[K, V]) Get(key K, out *V) bool { return h.shardFor(key).Get(key, out) }

func (h *HashLruCache[K, V]) GetOrZero(key K) V { return h.shardFor(key).GetOrZero(key) }

func (h *HashLruCache[K, V]) Remove(key K) { h.shardFor(key).Remove(key) }

func (h *HashLruCache[K, V]) Purge() {
	for _, s := range h.shards {
		s.Purge()
	}
}

// HashLfuCache partitions a total capacity across shardCount independent
// LFU caches.
type HashLfuCache[K comparable, V any] struct {
	shards []*lfu.Cache[K, V]
}

// NewHashLfuCache allocates shardCount shards (defaulting to host
// parallelism when non-positive) each sized ceil(totalCapacity/shards),
// aging independently per shard at maxAvgFreq.
func NewHashLfuCache[K comparable, V any](totalCapacity, shards, maxAvgFreq int) *HashLfuCache[K, V] {
	n := shardCount(shards)
	per := perShardCapacity(totalCapacity, n)
	h := &HashLfuCache[K, V]{shards: make([]*lfu.Cache[K, V], n)}
	for i := range h.shards {
		h.shards[i] = lfu.New[K, V](per, maxAvgFreq)
	}
	return h
}

func (h *HashLfuCache[K, V]) shardFor(key K) *lfu.Cache[K, V] {
	return h.shards[shardIndex(key, len(h.shards))]
}

func (h *HashLfuCache[K, V]) Put(key K, value V) { h.shardFor(key).Put(key, value) }

func (h *HashLfuCache[K, V]) Get(key K, out *V) bool { return h.shardFor(key).Get(key, out) }

func (h *HashLfuCache[K, V]) GetOrZero(key K) V { return h.shardFor(key).GetOrZero(key) }

func (h *HashLfuCache[K, V]) Purge() {
	for _, s := range h.shards {
		s.Purge()
	}
}

var (
	_ cache.Policy[string, int] = (*HashLruCache[string, int])(nil)
	_ cache.Policy[string, int] = (*HashLfuCache[string, int])(nil)
	_ cache.Remover[string]     = (*HashLruCache[string, int])(nil)
	_ cache.Purger              = (*HashLruCache[string, int])(nil)
	_ cache.Purger              = (*HashLfuCache[string, int])(nil)
)
