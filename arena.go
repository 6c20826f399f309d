package avl

import "slices"

// arena owns the contiguous backing store for all nodes of one tree. It is
// the only place node storage is created or released, and it understands
// nothing about key ordering; callers hand it slots that are already
// detached from the tree.
type arena[K, V any] struct {
	nodes []node[K, V]
}

func (a *arena[K, V]) len() int { return len(a.nodes) }

// alloc appends a new leaf node and returns its slot index. Amortized O(1);
// growth of the backing store changes node addresses but never any index.
func (a *arena[K, V]) alloc(key K, value V, parent int) int {
	i := len(a.nodes)
	a.nodes = append(a.nodes, node[K, V]{
		key:    key,
		value:  value,
		parent: parent,
		left:   nilIdx,
		right:  nilIdx,
	})
	return i
}

// compactRemove frees slot i, which the caller has already detached from the
// tree. Unless i is the last occupied slot, the node in the last slot is
// moved into i and every index that referenced the last slot is rewritten:
// the moved node's parent's child link, and the parent link of each of the
// moved node's children. The occupied count then shrinks by one.
//
// Returns the old index of the moved node, or nilIdx when nothing moved. The
// caller remaps any references of its own (the root, a pending iterator
// index) that named the returned slot.
func (a *arena[K, V]) compactRemove(i int) int {
	last := len(a.nodes) - 1
	moved := nilIdx
	if i != last {
		n := a.nodes[last]
		if n.parent != nilIdx {
			p := &a.nodes[n.parent]
			if p.left == last {
				p.left = i
			} else {
				p.right = i
			}
		}
		if n.left != nilIdx {
			a.nodes[n.left].parent = i
		}
		if n.right != nilIdx {
			a.nodes[n.right].parent = i
		}
		a.nodes[i] = n
		moved = last
	}
	// Zero the vacated slot so the collector can reclaim the payload.
	a.nodes[last] = node[K, V]{}
	a.nodes = a.nodes[:last]
	return moved
}

// reserve grows capacity to hold at least n nodes. Existing slots are never
// reordered and no index changes.
func (a *arena[K, V]) reserve(n int) {
	if extra := n - len(a.nodes); extra > 0 {
		a.nodes = slices.Grow(a.nodes, extra)
	}
}

// shrinkToFit releases spare capacity. Advisory; indices are preserved and
// only physical addresses may change.
func (a *arena[K, V]) shrinkToFit() {
	a.nodes = slices.Clip(a.nodes)
}

// clear resets the occupied count to zero, retaining capacity for reuse.
// Payloads are zeroed so held references do not outlive their elements.
func (a *arena[K, V]) clear() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
}
