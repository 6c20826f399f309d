package avl

// heightOf treats nilIdx as an empty subtree of height -1, so a leaf has
// height 0.
func (t *tree[K, V]) heightOf(i int) int8 {
	if i == nilIdx {
		return -1
	}
	return t.arena.nodes[i].height
}

// updateHeight recomputes the height at i from its children.
func (t *tree[K, V]) updateHeight(i int) {
	n := &t.arena.nodes[i]
	n.height = 1 + max(t.heightOf(n.left), t.heightOf(n.right))
}

// balanceFactor is left height minus right height; positive means
// left-heavy. The AVL invariant requires it to stay within [-1, 1].
func (t *tree[K, V]) balanceFactor(i int) int {
	n := &t.arena.nodes[i]
	return int(t.heightOf(n.left)) - int(t.heightOf(n.right))
}

// rotateLeft promotes the right child of x. Only the index links of the
// nodes involved (and x's parent) change; no slot moves and nothing
// allocates. Returns the new root of the rotated subtree.
//
//	  x                y
//	 / \              / \
//	A   y     ==>    x   C
//	   / \          / \
//	  B   C        A   B
func (t *tree[K, V]) rotateLeft(x int) int {
	nodes := t.arena.nodes
	y := nodes[x].right
	oldParent := nodes[x].parent
	b := nodes[y].left

	nodes[y].left = x
	nodes[x].parent = y

	nodes[x].right = b
	if b != nilIdx {
		nodes[b].parent = x
	}

	nodes[y].parent = oldParent
	if oldParent == nilIdx {
		t.root = y
	} else if nodes[oldParent].left == x {
		nodes[oldParent].left = y
	} else {
		nodes[oldParent].right = y
	}

	t.updateHeight(x)
	t.updateHeight(y)
	return y
}

// rotateRight promotes the left child of y, the mirror of rotateLeft.
//
//	    y            x
//	   / \          / \
//	  x   C  ==>   A   y
//	 / \              / \
//	A   B            B   C
func (t *tree[K, V]) rotateRight(y int) int {
	nodes := t.arena.nodes
	x := nodes[y].left
	oldParent := nodes[y].parent
	b := nodes[x].right

	nodes[x].right = y
	nodes[y].parent = x

	nodes[y].left = b
	if b != nilIdx {
		nodes[b].parent = y
	}

	nodes[x].parent = oldParent
	if oldParent == nilIdx {
		t.root = x
	} else if nodes[oldParent].left == y {
		nodes[oldParent].left = x
	} else {
		nodes[oldParent].right = x
	}

	t.updateHeight(y)
	t.updateHeight(x)
	return x
}

// rebalance retraces from i to the root, recomputing heights and applying
// the four rotation cases (LL, LR, RR, RL) wherever the balance invariant is
// violated. i may be nilIdx, in which case nothing happens.
func (t *tree[K, V]) rebalance(i int) {
	for i != nilIdx {
		t.updateHeight(i)
		switch bf := t.balanceFactor(i); {
		case bf > 1:
			if t.balanceFactor(t.arena.nodes[i].left) < 0 {
				t.rotateLeft(t.arena.nodes[i].left) // LR
			}
			i = t.rotateRight(i)
		case bf < -1:
			if t.balanceFactor(t.arena.nodes[i].right) > 0 {
				t.rotateRight(t.arena.nodes[i].right) // RL
			}
			i = t.rotateLeft(i)
		}
		i = t.arena.nodes[i].parent
	}
}
