package dlinklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPushBackOrder(t *testing.T) {
	l := New[string, int]()
	l.PushBack("a", 1)
	l.PushBack("b", 2)
	l.PushBack("c", 3)

	require.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"a", "b", "c"}, l.Keys())
	assert.Equal(t, "a", l.Front().Key)
	assert.Equal(t, "c", l.Back().Key)
}

func TestListRemoveMiddle(t *testing.T) {
	l := New[string, int]()
	a := l.PushBack("a", 1)
	b := l.PushBack("b", 2)
	l.PushBack("c", 3)

	l.Remove(b)

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []string{"a", "c"}, l.Keys())
	assert.Equal(t, a, l.Front())
}

func TestListMoveToBack(t *testing.T) {
	l := New[string, int]()
	a := l.PushBack("a", 1)
	l.PushBack("b", 2)
	l.PushBack("c", 3)

	l.MoveToBack(a)

	assert.Equal(t, []string{"b", "c", "a"}, l.Keys())
	assert.Equal(t, 3, l.Len())
}

func TestListPopFrontEmpty(t *testing.T) {
	l := New[string, int]()
	assert.Nil(t, l.PopFront())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
	assert.Equal(t, 0, l.Len())
}

func TestListPopFrontOrder(t *testing.T) {
	l := New[string, int]()
	l.PushBack("a", 1)
	l.PushBack("b", 2)

	victim := l.PopFront()

	require.NotNil(t, victim)
	assert.Equal(t, "a", victim.Key)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, []string{"b"}, l.Keys())
}

func TestPushNodeBackPreservesNodeIdentityAndFields(t *testing.T) {
	src := New[string, int]()
	n := src.PushBack("a", 1)
	n.Freq = 7
	src.Remove(n)

	dst := New[string, int]()
	dst.PushNodeBack(n)

	require.Equal(t, 1, dst.Len())
	assert.Same(t, n, dst.Back())
	assert.Equal(t, "a", n.Key)
	assert.Equal(t, 1, n.Value)
	assert.Equal(t, 7, n.Freq)
}
