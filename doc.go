package avl

/*

# Contiguous AVL ordered map and set

This package provides Map and Set: ordered associative containers whose nodes
all live in one contiguous, index-addressed arena instead of being allocated
individually and linked by pointer.

The design trades pointer freedom for density and locality:

- nodes are addressed by slot index, never by pointer
- navigation (descent, rotation, successor walks) is index arithmetic over
  one backing slice
- iterator validity across mutation is an explicit caller contract

## Storage model

Every node records its payload and three slot indices plus a height:

	+-----+-------+--------+------+-------+--------+
	| key | value | parent | left | right | height |
	+-----+-------+--------+------+-------+--------+

A reserved sentinel index means "no node"; it is the parent of the root and
the child link of every absent child. Because relationships are indices,
growth of the backing store may relocate every node's address while leaving
every relationship, and every index-backed iterator, intact. This is exactly
why the tree encodes links as indices rather than pointers.

The arena is kept gap free. Erasing a key structurally detaches one slot and
then compacts in the same operation: the node in the last occupied slot moves
into the freed slot and every index that referenced the last slot is
rewritten. Consequently:

- insert never moves an existing node's slot, so iterators survive insertion
- erase invalidates every outstanding iterator except the one it returns,
  because compaction can relocate an arbitrary other node

## Balance

The tree is a classical AVL tree: for every node the heights of the left and
right subtrees differ by at most one, restored after each insert or erase by
single and double rotations along the retrace path to the root. An absent
child contributes height -1, so a leaf has height 0.

Bulk construction from an already sorted, duplicate-free input bypasses the
insertion path entirely: NewMapFromSorted and NewSetFromSorted lay out a
minimal-height tree in O(n) with zero rotations.

## Concurrency

Containers perform no internal synchronization. Concurrent read-only use is
safe only while no mutation is in flight; the caller excludes concurrent
mutation.

*/
