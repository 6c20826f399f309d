package avl

// eraseAt removes the element at slot idx. It returns the slot holding the
// in-order successor of the erased key after compaction, or nilIdx when the
// erased key was the greatest.
//
// The removal runs in three steps, all within this one logical operation:
// structural detachment (classical BST deletion), a rebalancing retrace from
// the point of structural change, and swap-compaction of the freed slot.
// Every outstanding index except the returned one is invalid afterwards,
// because compaction can relocate an arbitrary node (the one previously in
// the last slot) into the freed slot.
func (t *tree[K, V]) eraseAt(idx int) int {
	nodes := t.arena.nodes
	next := t.successor(idx)

	removed := idx
	retrace := nodes[idx].parent
	switch {
	case nodes[idx].left == nilIdx:
		t.transplant(idx, nodes[idx].right)
	case nodes[idx].right == nilIdx:
		t.transplant(idx, nodes[idx].left)
	default:
		// Two children: overwrite the payload from the in-order successor
		// and splice the successor's slot out instead. The successor is the
		// leftmost node of the right subtree, so it has no left child.
		succ := next
		nodes[idx].key = nodes[succ].key
		nodes[idx].value = nodes[succ].value
		removed = succ
		retrace = nodes[succ].parent
		t.transplant(succ, nodes[succ].right)
		// The successor's key now lives in idx's slot.
		next = idx
	}

	t.rebalance(retrace)

	if moved := t.arena.compactRemove(removed); moved != nilIdx {
		if t.root == moved {
			t.root = removed
		}
		if next == moved {
			next = removed
		}
	}
	return next
}

// transplant replaces the subtree rooted at u with the subtree rooted at v
// in u's parent. v may be nilIdx. u's own links are left untouched; after
// this call u is unreachable from the root.
func (t *tree[K, V]) transplant(u, v int) {
	nodes := t.arena.nodes
	parent := nodes[u].parent
	if parent == nilIdx {
		t.root = v
	} else if nodes[parent].left == u {
		nodes[parent].left = v
	} else {
		nodes[parent].right = v
	}
	if v != nilIdx {
		nodes[v].parent = parent
	}
}
