package arc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGhostHitShiftsCapacityTowardLruHalf(t *testing.T) {
	c := New[int, string](2, 2)

	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(3, "c") // evicts 1 from the LRU half into its ghost list

	require.Equal(t, 2, c.lru.capacity)
	require.Equal(t, 2, c.lfu.capacity)

	c.Put(1, "a") // hits the LRU ghost

	assert.Equal(t, 3, c.lru.capacity)
	assert.Equal(t, 1, c.lfu.capacity)

	var v string
	require.True(t, c.Get(1, &v))
	assert.Equal(t, "a", v)
}

// TestCapacityInvariant checks that the sum of the two halves'
// capacities never changes across a ghost-driven rebalance.
func TestCapacityInvariant(t *testing.T) {
	c := New[int, string](3, 2)
	total := c.lru.capacity + c.lfu.capacity

	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(3, "c")
	c.Put(4, "d") // evicts 1 into the LRU ghost

	assert.Equal(t, total, c.lru.capacity+c.lfu.capacity)

	c.Put(1, "a") // LRU ghost hit: shifts capacity toward the LRU half

	assert.Equal(t, total, c.lru.capacity+c.lfu.capacity)
	assert.Equal(t, 4, c.lru.capacity)
	assert.Equal(t, 2, c.lfu.capacity)
}

func TestPromotionMirrorsIntoLfuHalf(t *testing.T) {
	c := New[int, string](4, 2)

	c.Put(1, "a")
	var v string
	c.Get(1, &v) // access count reaches 2 == transformThreshold

	// The promoted key is now visible via the LFU half even though the
	// coordinator still finds it through the LRU half first.
	found, _ := c.lfu.get(1, &v)
	assert.True(t, found)
	assert.Equal(t, "a", v)
}

func TestDeadCache(t *testing.T) {
	c := New[string, int](0, 0)
	c.Put("a", 1)

	var v int
	assert.False(t, c.Get("a", &v))
}

func TestPurge(t *testing.T) {
	c := New[string, int](2, 2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Purge()

	assert.Equal(t, 0, c.Len())
	var v int
	assert.False(t, c.Get("a", &v))
}

func TestGetOrZero(t *testing.T) {
	c := New[string, int](2, 2)
	assert.Equal(t, 0, c.GetOrZero("missing"))

	c.Put("a", 11)
	assert.Equal(t, 11, c.GetOrZero("a"))
}
