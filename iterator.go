package avl

// Iterator is an index-backed position within a Map or Set supporting
// bidirectional in-order traversal. An invalid Iterator represents the
// position past either end.
//
// Validity across mutation follows the contiguous storage model:
//
//   - Insert never moves an existing node's slot, so iterators survive
//     insertion. Growth of the backing store relocates node addresses, never
//     indices, and iterators hold indices.
//   - Any erase invalidates every outstanding iterator except the one
//     returned by that same erase call, because compaction can relocate an
//     arbitrary other node (the one previously in the last slot) into the
//     freed slot. A stale iterator must not be used.
type Iterator[K, V any] struct {
	t   *tree[K, V]
	idx int
}

// Valid reports whether the iterator references an element. The zero
// Iterator is not valid, nor is a position obtained by walking off either
// end.
func (it Iterator[K, V]) Valid() bool {
	return it.t != nil && it.idx != nilIdx
}

// Key returns the key at the iterator's position. It must only be called on
// a valid iterator.
func (it Iterator[K, V]) Key() K {
	return it.t.arena.nodes[it.idx].key
}

// Value returns the value at the iterator's position. It must only be
// called on a valid iterator.
func (it Iterator[K, V]) Value() V {
	return it.t.arena.nodes[it.idx].value
}

// Next returns the position of the in-order successor. Advancing past the
// last element yields an invalid iterator; advancing an invalid iterator
// returns it unchanged.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if !it.Valid() {
		return it
	}
	return Iterator[K, V]{it.t, it.t.successor(it.idx)}
}

// Prev returns the position of the in-order predecessor. Stepping back from
// the past-the-end position yields the last element, so a backward walk can
// start from any end iterator obtained from the container.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if it.t == nil {
		return it
	}
	if it.idx == nilIdx {
		return Iterator[K, V]{it.t, it.t.last()}
	}
	return Iterator[K, V]{it.t, it.t.predecessor(it.idx)}
}
