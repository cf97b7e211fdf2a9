package sharded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashLruBasicPutGet(t *testing.T) {
	c := NewHashLruCache[string, int](4, 2)

	c.Put("a", 1)
	c.Put("b", 2)

	var v int
	require.True(t, c.Get("a", &v))
	assert.Equal(t, 1, v)
	require.True(t, c.Get("b", &v))
	assert.Equal(t, 2, v)
}

// TestKeysInDifferentShardsAreRetainedIndependently checks that two keys
// hashing to different shards are both retained even when, combined,
// they would overflow a single non-sharded cache of capacity 1.
func TestKeysInDifferentShardsAreRetainedIndependently(t *testing.T) {
	c := NewHashLruCache[int, int](2, 2)
	require.Len(t, c.shards, 2)

	// Find two distinct keys that land in different shards: with 2
	// shards and a large enough pool this is guaranteed to exist.
	var keyA, keyB int = -1, -1
	for i := 0; i < 1000 && keyB == -1; i++ {
		if keyA == -1 {
			keyA = i
			continue
		}
		if c.shardFor(i) != c.shardFor(keyA) {
			keyB = i
		}
	}
	require.NotEqual(t, -1, keyB, "expected to find two keys in different shards")

	c.Put(keyA, keyA*10)
	c.Put(keyB, keyB*10)

	var v int
	require.True(t, c.Get(keyA, &v))
	assert.Equal(t, keyA*10, v)
	require.True(t, c.Get(keyB, &v))
	assert.Equal(t, keyB*10, v)
}

// TestSameKeyAlwaysSameShard checks that shard routing is deterministic.
func TestSameKeyAlwaysSameShard(t *testing.T) {
	c := NewHashLruCache[string, int](8, 4)

	for i := 0; i < 50; i++ {
		assert.Equal(t, c.shardFor("stable-key"), c.shardFor("stable-key"))
	}
}

func TestRemoveIsShardLocal(t *testing.T) {
	c := NewHashLruCache[int, int](8, 4)
	c.Put(1, 100)
	c.Put(2, 200)

	c.Remove(1)

	var v int
	assert.False(t, c.Get(1, &v))
	require.True(t, c.Get(2, &v))
	assert.Equal(t, 200, v)
}

func TestHashLruDefaultsShardCountToHostParallelism(t *testing.T) {
	c := NewHashLruCache[string, int](16, 0)
	assert.Equal(t, shardCount(0), len(c.shards))
	assert.GreaterOrEqual(t, len(c.shards), 1)
}

func TestHashLruPurge(t *testing.T) {
	c := NewHashLruCache[string, int](4, 2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Purge()

	var v int
	assert.False(t, c.Get("a", &v))
	assert.False(t, c.Get("b", &v))
}

func TestHashLfuBasicPutGet(t *testing.T) {
	c := NewHashLfuCache[string, int](4, 2, 10)

	c.Put("a", 1)
	c.Put("b", 2)

	var v int
	require.True(t, c.Get("a", &v))
	assert.Equal(t, 1, v)
}

func TestHashLfuPurge(t *testing.T) {
	c := NewHashLfuCache[string, int](4, 2, 10)
	c.Put("a", 1)
	c.Purge()

	var v int
	assert.False(t, c.Get("a", &v))
}

func TestPerShardCapacityRoundsUp(t *testing.T) {
	assert.Equal(t, 2, perShardCapacity(5, 3))
	assert.Equal(t, 3, perShardCapacity(9, 3))
	assert.Equal(t, 5, perShardCapacity(5, 1))
}
