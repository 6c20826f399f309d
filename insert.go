package avl

// insert places key in the tree. When key is already present no structural
// change happens: the existing slot is returned with false, and the stored
// value is overwritten only when assign is set. Otherwise a new node is
// allocated, attached under the descent's terminal node, and the tree is
// retraced from there.
func (t *tree[K, V]) insert(key K, value V, assign bool) (int, bool) {
	if t.root == nilIdx {
		t.root = t.arena.alloc(key, value, nilIdx)
		return t.root, true
	}

	cur := t.root
	parent := nilIdx
	dir := 0 // sign of the comparison that left parent
	for cur != nilIdx {
		parent = cur
		c := t.cmp(key, t.arena.nodes[cur].key)
		if c == 0 {
			if assign {
				t.arena.nodes[cur].value = value
			}
			return cur, false
		}
		dir = c
		if c < 0 {
			cur = t.arena.nodes[cur].left
		} else {
			cur = t.arena.nodes[cur].right
		}
	}

	idx := t.arena.alloc(key, value, parent)
	if dir < 0 {
		t.arena.nodes[parent].left = idx
	} else {
		t.arena.nodes[parent].right = idx
	}
	t.rebalance(parent)
	return idx, true
}
