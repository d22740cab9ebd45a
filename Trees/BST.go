package Trees

import (
	"github.com/google/btree"
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// sortDegree is the btree degree used while sorting the input of Build.
const sortDegree = 32

// BST is a binary search tree with no repeated values. It doesn't balance itself on
// Insert or Delete; balance is restored only by an explicit call to Rebalance, which
// rebuilds the whole tree from its sorted values. D below denotes the current
// height of the tree, which is log2(n) right after Build or Rebalance and up to n
// after adversarial inserts.
// The zero value is not usable; create trees with New or Build.
type BST[T constraints.Ordered] struct {
	root *Node[T]
	sz   int
	log  zerolog.Logger
}

// New returns an empty tree.
func New[T constraints.Ordered](opts ...Option) *BST[T] {
	o := makeOptions(opts)
	return &BST[T]{log: o.log}
}

// Build a height balanced tree from vs. vs may be in any order and contain
// repeated values, only one copy of each is kept. vs isn't modified or retained.
// Time: O(n log n)
func Build[T constraints.Ordered](vs []T, opts ...Option) *BST[T] {
	u := New[T](opts...)
	s := sortedSet(vs)
	u.root, u.sz = build(s), len(s)
	return u
}

// sortedSet returns the distinct values of vs in ascending order.
func sortedSet[T constraints.Ordered](vs []T) []T {
	bt := btree.NewG[T](sortDegree, func(a, b T) bool { return a < b })
	for _, v := range vs {
		bt.ReplaceOrInsert(v)
	}
	s := make([]T, 0, bt.Len())
	bt.Ascend(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// Size returns the number of values in the tree.
// Time: O(1)
func (u *BST[T]) Size() int {
	return u.sz
}

// Root returns the root node, nil if the tree is empty.
func (u *BST[T]) Root() *Node[T] {
	return u.root
}

// Clear the tree.
func (u *BST[T]) Clear() {
	u.root, u.sz = nil, 0
}

// insert v to the subtree whose root is stored in cur. A new leaf is linked into
// the first empty slot met on the way down.
func (u *BST[T]) insert(cur **Node[T], v T) bool {
	n := *cur
	if n == nil {
		*cur = &Node[T]{v: v}
		return true
	}
	if v < n.v {
		return u.insert(&n.l, v)
	} else if v > n.v {
		return u.insert(&n.r, v)
	}
	return false
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BST[T]) Insert(v T) bool {
	if !u.insert(&u.root, v) {
		u.log.Info().Interface("value", v).Msg("duplicate value, insertion rejected")
		return false
	}
	u.sz++
	return true
}

// remove v from the subtree whose root is stored in cur. A node with two children
// takes the value of its in-order successor, which is then removed from the right
// subtree; that second removal always hits a node with at most one child.
func (u *BST[T]) remove(cur **Node[T], v T) bool {
	n := *cur
	if n == nil {
		return false
	}
	if v < n.v {
		return u.remove(&n.l, v)
	} else if v > n.v {
		return u.remove(&n.r, v)
	}
	if n.l == nil {
		*cur = n.r
	} else if n.r == nil {
		*cur = n.l
	} else {
		s := n.r
		for s.l != nil {
			s = s.l
		}
		n.v = s.v
		return u.remove(&n.r, s.v)
	}
	return true
}

// Delete [Tree.Delete]. Recursive.
// Time: O(D)
func (u *BST[T]) Delete(v T) bool {
	if !u.remove(&u.root, v) {
		u.log.Debug().Interface("value", v).Msg("value not found, nothing deleted")
		return false
	}
	u.sz--
	return true
}

// Get the node holding v, nil if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *BST[T]) Get(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BST[T]) Find(v T) bool {
	return u.Get(v) != nil
}

// Minimum value of the tree; false if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (v T, ok bool) {
	cur := u.root
	if cur == nil {
		return
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum value of the tree; false if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (v T, ok bool) {
	cur := u.root
	if cur == nil {
		return
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Height [Tree.Height]. n may belong to any tree. Recursive.
// Time: O(size of n's subtree)
func (u *BST[T]) Height(n *Node[T]) int {
	return height(n)
}

// Depth [Tree.Depth]. Found by descending from the root toward n's value, so
// nodes don't need to know their parent.
// Time: O(D); Space: O(1)
func (u *BST[T]) Depth(n *Node[T]) int {
	if n == nil {
		return -1
	}
	d := 0
	for cur := u.root; cur != nil; d++ {
		if n.v < cur.v {
			cur = cur.l
		} else if n.v > cur.v {
			cur = cur.r
		} else if cur == n {
			return d
		} else {
			break
		}
	}
	return -1
}

// IsBalanced [Tree.IsBalanced]. Recursive.
// Time: O(n)
func (u *BST[T]) IsBalanced() bool {
	_, ok := balancedHeight(u.root)
	return ok
}

// Rebalance [Tree.Rebalance]. The old nodes are dropped and the tree is rebuilt from
// its in-order sequence, so node views obtained before the call are stale.
// Time: O(n)
func (u *BST[T]) Rebalance() {
	e := u.log.Debug()
	if e.Enabled() {
		e = e.Int("size", u.sz).Int("height_before", height(u.root))
	}
	u.root = build(u.InOrder())
	if e.Enabled() {
		e.Int("height_after", height(u.root)).Msg("tree rebuilt")
	}
}
