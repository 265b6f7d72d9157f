package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T, c Cache[string, int]) {
	_, ok := c.Get("missing")
	require.False(t, ok)

	c.Set("a", 1)
	c.Set("b", 2)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 2, c.Len())

	c.Set("a", 3)
	v, _ = c.Get("a")
	require.Equal(t, 3, v)
	require.Equal(t, 2, c.Len())

	c.Clear()
	require.Zero(t, c.Len())
	_, ok = c.Get("a")
	require.False(t, ok)
}

func TestLRUCache(t *testing.T) {
	testCache(t, NewLRUCache[string, int](8))

	c := NewLRUCache[string, int](4)
	for i := range 10 {
		c.Set(strconv.Itoa(i), i)
	}
	require.Equal(t, 4, c.Len())
	_, ok := c.Get("0")
	require.False(t, ok)
	v, ok := c.Get("9")
	require.True(t, ok)
	require.Equal(t, 9, v)
}

func TestMapCache(t *testing.T) {
	testCache(t, NewMapCache[string, int](4))

	c := NewMapCache[string, int](4)
	for i := range 100 {
		c.Set(strconv.Itoa(i), i)
	}
	require.Equal(t, 100, c.Len())
}

func TestNilCache(t *testing.T) {
	c := NewNilCache[string, int]()
	c.Set("a", 1)
	_, ok := c.Get("a")
	require.False(t, ok)
	require.Zero(t, c.Len())
}
