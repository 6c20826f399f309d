package avl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIteratorBidirectional(t *testing.T) {
	m := NewMap[int, string]()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		m.Insert(k, "")
	}

	it := m.First()
	var fwd []int
	for ; it.Valid(); it = it.Next() {
		fwd = append(fwd, it.Key())
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, fwd)

	// it is now past the end; stepping back recovers the last element and a
	// full reverse walk follows parent/child links only.
	var back []int
	for it = it.Prev(); it.Valid(); it = it.Prev() {
		back = append(back, it.Key())
	}
	require.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, back)

	// Next on the end position stays at the end.
	end := m.Last().Next()
	require.False(t, end.Valid())
	require.False(t, end.Next().Valid())
}

func TestIteratorZeroValue(t *testing.T) {
	var it Iterator[int, int]
	require.False(t, it.Valid())
	require.False(t, it.Next().Valid())
	require.False(t, it.Prev().Valid())
}

func TestIteratorSurvivesInsertGrowth(t *testing.T) {
	m := NewMap[int, int]()
	m.Insert(10, 1)
	it := m.First()

	// Force repeated growth of the backing store. Node addresses move;
	// indices, and therefore iterators, do not.
	for k := 0; k < 1000; k++ {
		m.Insert(1000+k, k)
	}
	require.True(t, it.Valid())
	require.Equal(t, 10, it.Key())
	require.Equal(t, 1, it.Value())
}

// TestEraseInvalidationScenario demonstrates why every iterator except the
// one returned by an erase is invalid: compaction moves the node from the
// last occupied slot into the freed slot, so a held index can silently come
// to name a different element. The surviving structure is re-derived through
// fresh lookups rather than by dereferencing the stale position.
func TestEraseInvalidationScenario(t *testing.T) {
	s := NewSet[int]()
	for _, k := range []int{1, 2, 3, 4, 5} {
		s.Add(k)
	}

	held := s.LowerBound(1) // position of key 1
	require.Equal(t, 1, held.Key())
	heldSlot := held.idx

	// Erase a leaf whose slot is not the last one; compaction relocates the
	// former-last element into the freed slot.
	victim := s.t.find(3)
	lastSlot := s.t.arena.len() - 1
	require.NotEqual(t, lastSlot, victim, "scenario needs a non-last victim")
	movedKey := s.t.arena.nodes[lastSlot].key
	require.Equal(t, 5, movedKey)

	ret := s.DeleteAt(SetIterator[int]{&s.t, victim})

	// The returned iterator is the one sanctioned survivor: it names the
	// in-order successor of the erased key.
	require.True(t, ret.Valid())
	require.Equal(t, 4, ret.Key())

	// The relocated element now answers at the victim's old slot, so any
	// iterator still holding an index from before the erase may observe an
	// arbitrary other element (or fall off the arena entirely).
	require.Equal(t, victim, s.t.find(movedKey))

	// The oracle view of the survivors is intact.
	require.Equal(t, []int{1, 2, 4, 5}, inorderKeys(&s.t))
	for _, k := range []int{1, 2, 4, 5} {
		require.True(t, s.Has(k))
	}
	validateTree(t, &s.t)

	// Re-deriving the position of key 1 is the supported pattern; the held
	// index from before the erase carries no guarantee.
	fresh := s.LowerBound(1)
	require.Equal(t, 1, fresh.Key())
	_ = heldSlot
}

func TestLowerUpperBound(t *testing.T) {
	s := NewSetFromSorted([]int{2, 4, 6, 8})

	// Exact hit: LowerBound lands on the key, UpperBound on its successor.
	require.Equal(t, 4, s.LowerBound(4).Key())
	require.Equal(t, 6, s.UpperBound(4).Key())

	// Between keys both bounds agree on the first greater key.
	require.Equal(t, 6, s.LowerBound(5).Key())
	require.Equal(t, 6, s.UpperBound(5).Key())

	// Below every key both bounds land on the first key.
	require.Equal(t, 2, s.LowerBound(1).Key())
	require.Equal(t, 2, s.UpperBound(1).Key())

	// At or beyond the greatest key the upper bound is the end position.
	require.Equal(t, 8, s.LowerBound(8).Key())
	require.False(t, s.UpperBound(8).Valid())
	require.False(t, s.LowerBound(9).Valid())
	require.False(t, s.UpperBound(9).Valid())

	empty := NewSet[int]()
	require.False(t, empty.LowerBound(0).Valid())
	require.False(t, empty.UpperBound(0).Valid())

	// The map facade routes through the same descent.
	m := NewMapFromSorted([]Pair[string, int]{{"b", 1}, {"d", 2}})
	require.Equal(t, "d", m.UpperBound("b").Key())
	require.Equal(t, 2, m.UpperBound("c").Value())
	require.False(t, m.UpperBound("d").Valid())
}

func TestEqualRange(t *testing.T) {
	s := NewSetFromSorted([]int{2, 4, 6, 8})

	lo, hi := s.EqualRange(4)
	require.True(t, lo.Valid())
	require.Equal(t, 4, lo.Key())
	require.Equal(t, 6, hi.Key())
	require.Equal(t, hi, lo.Next())

	// Absent key: an empty range positioned at the first greater key.
	lo, hi = s.EqualRange(5)
	require.Equal(t, lo, hi)
	require.Equal(t, 6, lo.Key())

	// Past every key: both ends of the range are the end position.
	lo, hi = s.EqualRange(9)
	require.False(t, lo.Valid())
	require.False(t, hi.Valid())
}
