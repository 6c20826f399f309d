package avl

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

// minimalHeight is ceil(log2(n+1)) - 1: the height of any minimal-height
// binary tree of n nodes, with a leaf at height 0.
func minimalHeight(n int) int8 {
	return int8(bits.Len(uint(n)) - 1)
}

func TestFromSortedGrid(t *testing.T) {
	for n := 0; n <= 130; n++ {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = i * 3
		}
		s := NewSetFromSorted(keys)

		require.Equal(t, n, s.Len(), "n=%d", n)
		validateTree(t, &s.t)
		require.Equal(t, keys, append([]int{}, inorderKeys(&s.t)...), "n=%d", n)

		if n > 0 {
			require.Equal(t, minimalHeight(n), s.t.arena.nodes[s.t.root].height,
				"height not minimal for n=%d", n)
		}

		for _, k := range keys {
			require.True(t, s.Has(k), "n=%d key=%d", n, k)
			require.False(t, s.Has(k+1), "n=%d key=%d", n, k+1)
		}
	}
}

// TestFromSortedLowerMiddle pins the documented tie-break: even-length
// ranges are rooted at the lower middle.
func TestFromSortedLowerMiddle(t *testing.T) {
	s := NewSetFromSorted([]int{1, 2, 3, 4})
	// Range [0,3] roots at slot 1 (key 2), its right range [2,3] at slot 2.
	require.Equal(t, 2, s.t.arena.nodes[s.t.root].key)
	right := s.t.arena.nodes[s.t.root].right
	require.Equal(t, 3, s.t.arena.nodes[right].key)
}

func TestFromSortedMap(t *testing.T) {
	items := []Pair[string, int]{
		{"ant", 1}, {"bee", 2}, {"cat", 3}, {"dog", 4}, {"eel", 5},
	}
	m := NewMapFromSorted(items)
	require.Equal(t, 5, m.Len())
	validateTree(t, &m.t)

	for _, p := range items {
		v, ok := m.Get(p.Key)
		require.True(t, ok, p.Key)
		require.Equal(t, p.Value, v)
	}
	_, ok := m.Get("fox")
	require.False(t, ok)

	// The built tree mutates like any other.
	m.Insert("fox", 6)
	require.True(t, m.Delete("ant"))
	validateTree(t, &m.t)
	require.Equal(t, []string{"bee", "cat", "dog", "eel", "fox"}, inorderKeys(&m.t))
}

func TestFromSortedEmptyAndSingle(t *testing.T) {
	require.Equal(t, 0, NewSetFromSorted([]int{}).Len())

	s := NewSetFromSorted([]int{42})
	require.Equal(t, 1, s.Len())
	require.Equal(t, int8(0), s.t.arena.nodes[s.t.root].height)
	require.True(t, s.Has(42))
}

func TestFromSortedFuncDescendingComparator(t *testing.T) {
	desc := func(a, b int) int { return b - a }
	// Strictly ascending under desc means numerically descending input.
	s := NewSetFromSortedFunc(desc, []int{9, 7, 5, 3, 1})
	validateTree(t, &s.t)
	require.Equal(t, []int{9, 7, 5, 3, 1}, append([]int{}, inorderKeys(&s.t)...))
	require.True(t, s.Has(5))
	require.Equal(t, 9, s.First().Key())
}
