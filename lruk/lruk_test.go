package lruk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This module's admission policy counts both Get and Put on a
// not-yet-admitted key as observations, so admission lands on the first
// put after which the observation count is at least K, not necessarily
// the Kth put specifically.
func TestAdmissionCountsGetsAndPutsTowardK(t *testing.T) {
	c := New[int, string](1, 4, 2)

	c.Put(1, "a")

	var v string
	assert.False(t, c.Get(1, &v), "admission pending")

	c.Put(1, "a")

	require.True(t, c.Get(1, &v), "admitted")
	assert.Equal(t, "a", v)
}

func TestAdmissionRequiresKObservations(t *testing.T) {
	c := New[string, int](2, 4, 3)

	var v int
	assert.False(t, c.Get("x", &v)) // observation 1
	assert.False(t, c.Get("x", &v)) // observation 2
	assert.False(t, c.Get("x", &v)) // observation 3: still a miss, not yet put

	c.Put("x", 42) // observation 4, admits

	require.True(t, c.Get("x", &v))
	assert.Equal(t, 42, v)
}

func TestDirectOverwriteOfAdmittedKeySkipsHistory(t *testing.T) {
	c := New[string, int](2, 4, 1)

	c.Put("x", 1) // k=1: admitted immediately
	c.Put("x", 2) // already in main: direct overwrite

	var v int
	require.True(t, c.Get("x", &v))
	assert.Equal(t, 2, v)
}

func TestHistoryCapacityForgetsRareKeys(t *testing.T) {
	c := New[string, int](4, 1, 2)

	var v int
	c.Get("a", &v) // a: 1 observation, history = {a:1}
	c.Get("b", &v) // history capacity 1 evicts a's observation count

	c.Put("a", 1) // a starts over at 1 observation, not admitted yet
	var out int
	assert.False(t, c.Get("a", &out))
}

func TestGetOrZero(t *testing.T) {
	c := New[string, int](1, 2, 1)
	assert.Equal(t, 0, c.GetOrZero("missing"))

	c.Put("x", 5)
	assert.Equal(t, 5, c.GetOrZero("x"))
}
