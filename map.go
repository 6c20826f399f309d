package avl

import (
	"cmp"
	"errors"
	"iter"
)

// ErrKeyNotFound is returned by At for keys not present in the container.
var ErrKeyNotFound = errors.New("avl: key not found")

// Pair carries one key/value element for bulk construction.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map with unique keys whose nodes all live in one
// contiguous arena. The zero Map is not usable; construct with NewMap,
// NewMapFunc, or one of the FromSorted constructors, which bind the
// comparator for the lifetime of the map.
//
// A Map performs no internal synchronization. See the package documentation
// for the storage model and the iterator invalidation contract.
type Map[K, V any] struct {
	t tree[K, V]
}

// NewMap returns an empty Map ordered by the natural ordering of K.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{t: newTree[K, V](cmp.Compare[K])}
}

// NewMapFunc returns an empty Map ordered by compare, which must define a
// total order over K. Keys that compare equal are the same key.
func NewMapFunc[K, V any](compare func(K, K) int) *Map[K, V] {
	return &Map[K, V]{t: newTree[K, V](compare)}
}

// NewMapFromSorted builds a minimal-height Map from items, which the caller
// guarantees to be in strictly ascending key order with no duplicates. The
// precondition is not validated. O(n), zero rotations.
func NewMapFromSorted[K cmp.Ordered, V any](items []Pair[K, V]) *Map[K, V] {
	return NewMapFromSortedFunc(cmp.Compare[K], items)
}

// NewMapFromSortedFunc is NewMapFromSorted with an explicit comparator;
// items must be strictly ascending under compare.
func NewMapFromSortedFunc[K, V any](compare func(K, K) int, items []Pair[K, V]) *Map[K, V] {
	m := NewMapFunc[K, V](compare)
	m.t.fromSorted(len(items), func(i int) (K, V) { return items[i].Key, items[i].Value })
	return m
}

// Len returns the number of elements.
func (m *Map[K, V]) Len() int { return m.t.arena.len() }

// IsEmpty reports whether the map holds no elements.
func (m *Map[K, V]) IsEmpty() bool { return m.t.arena.len() == 0 }

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i := m.t.find(key); i != nilIdx {
		return m.t.arena.nodes[i].value, true
	}
	var zero V
	return zero, false
}

// At returns the value stored for key, or ErrKeyNotFound when key is
// absent. Unlike GetOrInsert it never modifies the map.
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		return v, ErrKeyNotFound
	}
	return v, nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool { return m.t.find(key) != nilIdx }

// Insert adds key with value when absent. When key is already present the
// map is unchanged and the existing position is returned with false.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	i, inserted := m.t.insert(key, value, false)
	return Iterator[K, V]{&m.t, i}, inserted
}

// Put adds key with value, overwriting the stored value when key is already
// present. The boolean reports whether a new element was created.
func (m *Map[K, V]) Put(key K, value V) (Iterator[K, V], bool) {
	i, inserted := m.t.insert(key, value, true)
	return Iterator[K, V]{&m.t, i}, inserted
}

// GetOrInsert returns a pointer to the value stored for key, first
// inserting the zero value when key is absent. The pointer is valid only
// until the next mutation of the map: a later insert may grow the backing
// store and relocate every node's address.
func (m *Map[K, V]) GetOrInsert(key K) *V {
	var zero V
	i, _ := m.t.insert(key, zero, false)
	return &m.t.arena.nodes[i].value
}

// Delete removes key, reporting whether it was present. Deleting an absent
// key leaves the map, and every outstanding iterator, untouched.
func (m *Map[K, V]) Delete(key K) bool {
	i := m.t.find(key)
	if i == nilIdx {
		return false
	}
	m.t.eraseAt(i)
	return true
}

// DeleteAt removes the element at it and returns the position of its
// in-order successor (invalid when the erased key was the greatest). The
// returned iterator is the only one valid after the call. Passing an
// invalid iterator is a no-op that returns it unchanged.
func (m *Map[K, V]) DeleteAt(it Iterator[K, V]) Iterator[K, V] {
	if !it.Valid() {
		return it
	}
	return Iterator[K, V]{&m.t, m.t.eraseAt(it.idx)}
}

// First returns the position of the smallest key, invalid when the map is
// empty.
func (m *Map[K, V]) First() Iterator[K, V] {
	return Iterator[K, V]{&m.t, m.t.first()}
}

// Last returns the position of the greatest key, invalid when the map is
// empty.
func (m *Map[K, V]) Last() Iterator[K, V] {
	return Iterator[K, V]{&m.t, m.t.last()}
}

// LowerBound returns the position of the first key not less than key.
func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] {
	return Iterator[K, V]{&m.t, m.t.lowerBound(key)}
}

// UpperBound returns the position of the first key strictly greater than
// key.
func (m *Map[K, V]) UpperBound(key K) Iterator[K, V] {
	return Iterator[K, V]{&m.t, m.t.upperBound(key)}
}

// EqualRange returns the half-open range of elements equal to key. Keys are
// unique, so the range holds exactly one element when key is present and is
// empty (both positions equal) when it is not.
func (m *Map[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	lb := m.LowerBound(key)
	if !lb.Valid() || m.t.cmp(key, lb.Key()) != 0 {
		return lb, lb
	}
	return lb, lb.Next()
}

// All returns an in-order iterator over all elements. The map must not be
// mutated during the walk.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := m.t.first(); i != nilIdx; i = m.t.successor(i) {
			n := &m.t.arena.nodes[i]
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Backward returns a reverse-order iterator over all elements. The map must
// not be mutated during the walk.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := m.t.last(); i != nilIdx; i = m.t.predecessor(i) {
			n := &m.t.arena.nodes[i]
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Clear removes every element in one step. Arena capacity is retained for
// reuse; all iterators are invalidated.
func (m *Map[K, V]) Clear() { m.t.clear() }

// Reserve grows the arena to hold at least n elements. It never changes
// contents, ordering, or any index.
func (m *Map[K, V]) Reserve(n int) { m.t.arena.reserve(n) }

// ShrinkToFit releases spare arena capacity. Advisory; logical contents are
// never changed.
func (m *Map[K, V]) ShrinkToFit() { m.t.arena.shrinkToFit() }

// Clone returns an independent copy sharing no storage with m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{t: m.t.clone()}
}
