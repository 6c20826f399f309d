package avl

import "slices"

// tree is the balanced-tree core: a single root index over the arena plus
// the search and balance algorithms. The comparator is bound once at
// construction and used for every ordering decision; keys that compare equal
// under it are the same key.
type tree[K, V any] struct {
	arena arena[K, V]
	root  int
	cmp   func(K, K) int
}

func newTree[K, V any](compare func(K, K) int) tree[K, V] {
	return tree[K, V]{root: nilIdx, cmp: compare}
}

// find returns the slot holding key, or nilIdx when absent. Iterative
// descent, O(log n).
func (t *tree[K, V]) find(key K) int {
	cur := t.root
	for cur != nilIdx {
		n := &t.arena.nodes[cur]
		switch c := t.cmp(key, n.key); {
		case c < 0:
			cur = n.left
		case c > 0:
			cur = n.right
		default:
			return cur
		}
	}
	return nilIdx
}

// minFrom returns the leftmost slot of the subtree rooted at i.
func (t *tree[K, V]) minFrom(i int) int {
	for t.arena.nodes[i].left != nilIdx {
		i = t.arena.nodes[i].left
	}
	return i
}

// maxFrom returns the rightmost slot of the subtree rooted at i.
func (t *tree[K, V]) maxFrom(i int) int {
	for t.arena.nodes[i].right != nilIdx {
		i = t.arena.nodes[i].right
	}
	return i
}

// first returns the slot with the smallest key, or nilIdx when empty.
func (t *tree[K, V]) first() int {
	if t.root == nilIdx {
		return nilIdx
	}
	return t.minFrom(t.root)
}

// last returns the slot with the greatest key, or nilIdx when empty.
func (t *tree[K, V]) last() int {
	if t.root == nilIdx {
		return nilIdx
	}
	return t.maxFrom(t.root)
}

// successor returns the slot holding the next key in order, or nilIdx when i
// holds the greatest key. The walk uses only parent and child links; no
// traversal stack exists anywhere in the package.
func (t *tree[K, V]) successor(i int) int {
	nodes := t.arena.nodes
	if nodes[i].right != nilIdx {
		return t.minFrom(nodes[i].right)
	}
	parent := nodes[i].parent
	for parent != nilIdx && nodes[parent].right == i {
		i = parent
		parent = nodes[i].parent
	}
	return parent
}

// predecessor returns the slot holding the previous key in order, or nilIdx
// when i holds the smallest key.
func (t *tree[K, V]) predecessor(i int) int {
	nodes := t.arena.nodes
	if nodes[i].left != nilIdx {
		return t.maxFrom(nodes[i].left)
	}
	parent := nodes[i].parent
	for parent != nilIdx && nodes[parent].left == i {
		i = parent
		parent = nodes[i].parent
	}
	return parent
}

// clear discards every element in one step, retaining arena capacity.
func (t *tree[K, V]) clear() {
	t.arena.clear()
	t.root = nilIdx
}

// clone returns a deep copy sharing no storage with t. Slot indices are
// identical in the copy, so the shape carries over verbatim.
func (t *tree[K, V]) clone() tree[K, V] {
	return tree[K, V]{
		arena: arena[K, V]{nodes: slices.Clone(t.arena.nodes)},
		root:  t.root,
		cmp:   t.cmp,
	}
}
