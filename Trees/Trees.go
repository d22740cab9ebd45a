package Trees

import "golang.org/x/exp/constraints"

// Tree is the contract of an ordered set of unique values kept in a binary search
// tree. None of the receivers treat a missing or duplicated value as an error:
// Insert and Delete report through their bool result whether the tree changed, and
// queries on an empty tree return zero results (empty slices, height -1, balanced).
// Implementations are not safe for concurrent use; callers must synchronize.
// Methods implemented recursively should be noted, otherwise they are iterative.
type Tree[T constraints.Ordered] interface {
	//Insert v to the Tree. Returns false, leaving the tree unchanged, if v is
	//already present.
	Insert(v T) bool
	//Delete v from the Tree. Returns false if v isn't present.
	Delete(v T) bool
	//Find whether v is in the Tree.
	Find(v T) bool
	//LevelOrder visits values breadth first, left to right within a level.
	//If visit is given, it's called once per node and the result is nil;
	//otherwise the values are returned in that order. The same holds for the
	//other three traversals.
	LevelOrder(visit ...func(T)) []T
	//InOrder visits left subtree, node, right subtree: ascending order.
	InOrder(visit ...func(T)) []T
	//PreOrder visits node, left subtree, right subtree.
	PreOrder(visit ...func(T)) []T
	//PostOrder visits left subtree, right subtree, node.
	PostOrder(visit ...func(T)) []T
	//Height of the subtree rooted at n; -1 for nil, 0 for a leaf.
	Height(n *Node[T]) int
	//Depth of n below the root; 0 for the root, -1 for nil or a foreign node.
	Depth(n *Node[T]) int
	//IsBalanced reports whether the heights of the two subtrees of every node
	//differ by at most 1.
	IsBalanced() bool
	//Rebalance rebuilds the tree so that IsBalanced holds.
	Rebalance()
	//Root gives a read-only view of the root node, nil when empty.
	Root() *Node[T]
	//Size of the tree.
	Size() int
}
