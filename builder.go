package avl

// fromSorted replaces the tree's contents with n elements already in
// strictly ascending key order with no duplicates. at(i) supplies element i.
//
// Slot i stores element i, so slot order equals in-order traversal order and
// the subtree for any contiguous sub-range is rooted at that range's middle
// slot. Construction is O(n) with zero comparisons and zero rotations, and
// the resulting height is the minimum possible for n nodes.
//
// The ordering precondition is the caller's contract and is not validated;
// violating it produces a structurally well-formed tree whose searches are
// simply wrong.
func (t *tree[K, V]) fromSorted(n int, at func(int) (K, V)) {
	t.clear()
	if n == 0 {
		return
	}
	if cap(t.arena.nodes) < n {
		t.arena.nodes = make([]node[K, V], n)
	} else {
		t.arena.nodes = t.arena.nodes[:n]
	}
	t.root = t.build(0, n-1, nilIdx, at)
}

// build assigns the middle slot of [lo, hi] as the local subtree root and
// recurses on both halves, computing heights bottom-up. Even-length ranges
// take the lower middle; either middle yields a height-minimal AVL shape,
// this one is fixed so the layout is deterministic.
func (t *tree[K, V]) build(lo, hi, parent int, at func(int) (K, V)) int {
	if lo > hi {
		return nilIdx
	}
	mid := lo + (hi-lo)/2
	n := &t.arena.nodes[mid]
	n.key, n.value = at(mid)
	n.parent = parent
	n.left = t.build(lo, mid-1, mid, at)
	n.right = t.build(mid+1, hi, mid, at)
	n.height = 1 + max(t.heightOf(n.left), t.heightOf(n.right))
	return mid
}
