package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// visitor merges the caller supplied visitors of a traversal. If there is none,
// the traversal collects into the returned slice pointer instead.
func (u *BST[T]) visitor(visit []func(T)) (func(T), *[]T) {
	fs := make([]func(T), 0, len(visit))
	for _, f := range visit {
		if f != nil {
			fs = append(fs, f)
		}
	}
	switch len(fs) {
	case 0:
		out := make([]T, 0, u.sz)
		return func(v T) { out = append(out, v) }, &out
	case 1:
		return fs[0], nil
	default:
		return func(v T) {
			for _, f := range fs {
				f(v)
			}
		}, nil
	}
}

func collected[T any](out *[]T) []T {
	if out == nil {
		return nil
	}
	return *out
}

// LevelOrder [Tree.LevelOrder]. Nodes wait in a FIFO queue seeded with the root.
// Time: O(n); Space: O(width)
func (u *BST[T]) LevelOrder(visit ...func(T)) []T {
	f, out := u.visitor(visit)
	if u.root != nil {
		q := Queues.MakeArrayQueue[*Node[T]](uint(u.sz>>1 + 1))
		for q.Push(u.root); !q.Empty(); {
			cur, _ := q.Pop()
			f(cur.v)
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
	return collected(out)
}

// InOrder [Tree.InOrder]. Recursive.
// Time: O(n); Space: O(D)
func (u *BST[T]) InOrder(visit ...func(T)) []T {
	f, out := u.visitor(visit)
	inOrder(u.root, f)
	return collected(out)
}

// PreOrder [Tree.PreOrder]. Recursive.
// Time: O(n); Space: O(D)
func (u *BST[T]) PreOrder(visit ...func(T)) []T {
	f, out := u.visitor(visit)
	preOrder(u.root, f)
	return collected(out)
}

// PostOrder [Tree.PostOrder]. Recursive.
// Time: O(n); Space: O(D)
func (u *BST[T]) PostOrder(visit ...func(T)) []T {
	f, out := u.visitor(visit)
	postOrder(u.root, f)
	return collected(out)
}

func inOrder[T constraints.Ordered](n *Node[T], f func(T)) {
	if n == nil {
		return
	}
	inOrder(n.l, f)
	f(n.v)
	inOrder(n.r, f)
}

func preOrder[T constraints.Ordered](n *Node[T], f func(T)) {
	if n == nil {
		return
	}
	f(n.v)
	preOrder(n.l, f)
	preOrder(n.r, f)
}

func postOrder[T constraints.Ordered](n *Node[T], f func(T)) {
	if n == nil {
		return
	}
	postOrder(n.l, f)
	postOrder(n.r, f)
	f(n.v)
}

// Ascend returns a closure f acting like an iterator over the in-order traversal.
// Calling f is like calling "Next()": val, valid=f(), where val is meaningful only
// if valid is true. Once valid is false f stays exhausted.
// The path to the next node is kept on an explicit stack, so a degenerate tree
// doesn't grow the call stack. The tree must not be modified while f is in use.
// Time: f(): amortized O(1). Space: O(D)
func (u *BST[T]) Ascend() func() (T, bool) {
	st := arraystack.New()
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	return func() (v T, ok bool) {
		top, ok := st.Pop()
		if !ok {
			return v, false
		}
		n := top.(*Node[T])
		for cur := n.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		return n.v, true
	}
}
