package avl

// lowerBound returns the slot of the first key not less than key, or nilIdx
// when every key is smaller. Best-candidate descent: whenever the probe key
// is >= key the probe becomes the candidate and the search narrows left,
// otherwise it narrows right.
func (t *tree[K, V]) lowerBound(key K) int {
	cur, candidate := t.root, nilIdx
	for cur != nilIdx {
		n := &t.arena.nodes[cur]
		if t.cmp(n.key, key) >= 0 {
			candidate = cur
			cur = n.left
		} else {
			cur = n.right
		}
	}
	return candidate
}

// upperBound returns the slot of the first key strictly greater than key, or
// nilIdx when no key is greater.
func (t *tree[K, V]) upperBound(key K) int {
	cur, candidate := t.root, nilIdx
	for cur != nilIdx {
		n := &t.arena.nodes[cur]
		if t.cmp(n.key, key) > 0 {
			candidate = cur
			cur = n.left
		} else {
			cur = n.right
		}
	}
	return candidate
}
