package avl

import (
	"cmp"
	"iter"
)

// SetIterator is an index-backed position within a Set. It follows the same
// invalidation contract as Iterator.
type SetIterator[K any] = Iterator[K, struct{}]

// Set is an ordered set of unique keys backed by the same contiguous AVL
// arena as Map, with no per-element value storage. The zero Set is not
// usable; construct with NewSet, NewSetFunc, or a FromSorted constructor.
type Set[K any] struct {
	t tree[K, struct{}]
}

// NewSet returns an empty Set ordered by the natural ordering of K.
func NewSet[K cmp.Ordered]() *Set[K] {
	return &Set[K]{t: newTree[K, struct{}](cmp.Compare[K])}
}

// NewSetFunc returns an empty Set ordered by compare, which must define a
// total order over K.
func NewSetFunc[K any](compare func(K, K) int) *Set[K] {
	return &Set[K]{t: newTree[K, struct{}](compare)}
}

// NewSetFromSorted builds a minimal-height Set from keys, which the caller
// guarantees to be strictly ascending with no duplicates. The precondition
// is not validated. O(n), zero rotations.
func NewSetFromSorted[K cmp.Ordered](keys []K) *Set[K] {
	return NewSetFromSortedFunc(cmp.Compare[K], keys)
}

// NewSetFromSortedFunc is NewSetFromSorted with an explicit comparator;
// keys must be strictly ascending under compare.
func NewSetFromSortedFunc[K any](compare func(K, K) int, keys []K) *Set[K] {
	s := NewSetFunc[K](compare)
	s.t.fromSorted(len(keys), func(i int) (K, struct{}) { return keys[i], struct{}{} })
	return s
}

// Len returns the number of keys.
func (s *Set[K]) Len() int { return s.t.arena.len() }

// IsEmpty reports whether the set holds no keys.
func (s *Set[K]) IsEmpty() bool { return s.t.arena.len() == 0 }

// Has reports whether key is present.
func (s *Set[K]) Has(key K) bool { return s.t.find(key) != nilIdx }

// Add inserts key when absent. When key is already present the set is
// unchanged and the existing position is returned with false.
func (s *Set[K]) Add(key K) (SetIterator[K], bool) {
	i, inserted := s.t.insert(key, struct{}{}, false)
	return SetIterator[K]{&s.t, i}, inserted
}

// Delete removes key, reporting whether it was present.
func (s *Set[K]) Delete(key K) bool {
	i := s.t.find(key)
	if i == nilIdx {
		return false
	}
	s.t.eraseAt(i)
	return true
}

// DeleteAt removes the key at it and returns the position of its in-order
// successor, the only iterator valid after the call.
func (s *Set[K]) DeleteAt(it SetIterator[K]) SetIterator[K] {
	if !it.Valid() {
		return it
	}
	return SetIterator[K]{&s.t, s.t.eraseAt(it.idx)}
}

// First returns the position of the smallest key, invalid when the set is
// empty.
func (s *Set[K]) First() SetIterator[K] {
	return SetIterator[K]{&s.t, s.t.first()}
}

// Last returns the position of the greatest key, invalid when the set is
// empty.
func (s *Set[K]) Last() SetIterator[K] {
	return SetIterator[K]{&s.t, s.t.last()}
}

// LowerBound returns the position of the first key not less than key.
func (s *Set[K]) LowerBound(key K) SetIterator[K] {
	return SetIterator[K]{&s.t, s.t.lowerBound(key)}
}

// UpperBound returns the position of the first key strictly greater than
// key.
func (s *Set[K]) UpperBound(key K) SetIterator[K] {
	return SetIterator[K]{&s.t, s.t.upperBound(key)}
}

// EqualRange returns the half-open range of keys equal to key: exactly one
// key when present, an empty range when not.
func (s *Set[K]) EqualRange(key K) (SetIterator[K], SetIterator[K]) {
	lb := s.LowerBound(key)
	if !lb.Valid() || s.t.cmp(key, lb.Key()) != 0 {
		return lb, lb
	}
	return lb, lb.Next()
}

// All returns an in-order iterator over all keys. The set must not be
// mutated during the walk.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := s.t.first(); i != nilIdx; i = s.t.successor(i) {
			if !yield(s.t.arena.nodes[i].key) {
				return
			}
		}
	}
}

// Backward returns a reverse-order iterator over all keys. The set must not
// be mutated during the walk.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := s.t.last(); i != nilIdx; i = s.t.predecessor(i) {
			if !yield(s.t.arena.nodes[i].key) {
				return
			}
		}
	}
}

// Clear removes every key in one step, retaining arena capacity.
func (s *Set[K]) Clear() { s.t.clear() }

// Reserve grows the arena to hold at least n keys without changing contents
// or any index.
func (s *Set[K]) Reserve(n int) { s.t.arena.reserve(n) }

// ShrinkToFit releases spare arena capacity. Advisory only.
func (s *Set[K]) ShrinkToFit() { s.t.arena.shrinkToFit() }

// Clone returns an independent copy sharing no storage with s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{t: s.t.clone()}
}
