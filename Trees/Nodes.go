package Trees

import "golang.org/x/exp/constraints"

// Node of a BST. A node owns its two children; no node is shared between two
// parents, so unlinking a node releases its whole subtree.
// Outside this package a Node is a read-only view: it can only be navigated. All
// methods accept a nil receiver, which stands for an empty subtree.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

// Value held by n, or the zero value of T if n is nil.
func (n *Node[T]) Value() (v T) {
	if n != nil {
		v = n.v
	}
	return
}

// Left child of n.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.l
}

// Right child of n.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.r
}

// build a height balanced subtree from s, which must be sorted ascending without
// repeats. The lower middle element of s becomes the root. Recursive.
// Time: O(len(s))
func build[T constraints.Ordered](s []T) *Node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := (len(s) - 1) >> 1
	return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
}

// height of the subtree at n. Recursive.
func height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.l), height(n.r))
}

// balancedHeight returns the height of n and whether every node under n satisfies
// the balance bound. The height is meaningless when the second value is false.
// Recursive.
func balancedHeight[T constraints.Ordered](n *Node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, ok := balancedHeight(n.l)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(n.r)
	if !ok || lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}
