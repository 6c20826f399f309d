package avl

// nilIdx is the reserved slot index meaning "no node". It is the parent of
// the root and the link value for every absent child.
const nilIdx = -1

// node is one tree element inside the contiguous arena. Links are slot
// indices rather than pointers, so growth of the backing store relocates
// node addresses without disturbing any relationship.
//
// height is the AVL height of the subtree rooted here: an absent child
// contributes -1 and a leaf has height 0. int8 covers any tree that fits in
// addressable memory.
type node[K, V any] struct {
	key    K
	value  V
	parent int
	left   int
	right  int
	height int8
}
