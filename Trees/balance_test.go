package Trees

import (
	"slices"
	"testing"
)

func TestHeight(t *testing.T) {
	tree := Build([]int{42})
	if h := tree.Height(tree.Root()); h != 0 {
		t.Errorf("single node height is %d, want 0", h)
	}
	if h := tree.Height(nil); h != -1 {
		t.Errorf("nil height is %d, want -1", h)
	}
	tree = Build([]int{1, 2, 3, 4, 5, 6, 7, 8})
	// 4 is the root; 6 on the right holds 5 and 7, 7 holds 8.
	if h := tree.Height(tree.Root()); h != 3 {
		t.Errorf("root height is %d, want 3", h)
	}
	if h := tree.Height(tree.Root().Left()); h != 1 {
		t.Errorf("left height is %d, want 1", h)
	}
	if h := tree.Height(tree.Get(7)); h != 1 {
		t.Errorf("height of 7 is %d, want 1", h)
	}
	if h := tree.Height(tree.Get(8)); h != 0 {
		t.Errorf("height of leaf 8 is %d, want 0", h)
	}
}

// levels returns the level of every node, found breadth first through the
// read-only node view.
func levels(root *Node[int]) map[*Node[int]]int {
	ls := make(map[*Node[int]]int)
	if root == nil {
		return ls
	}
	q := []*Node[int]{root}
	ls[root] = 0
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		for _, c := range []*Node[int]{cur.Left(), cur.Right()} {
			if c != nil {
				ls[c] = ls[cur] + 1
				q = append(q, c)
			}
		}
	}
	return ls
}

func TestDepth(t *testing.T) {
	tree := New[int]()
	for _, v := range randomValues(500, 1000) {
		tree.Insert(v)
	}
	ls := levels(tree.Root())
	if len(ls) != tree.Size() {
		t.Fatalf("found %d nodes, want %d", len(ls), tree.Size())
	}
	for n, l := range ls {
		if d := tree.Depth(n); d != l {
			t.Errorf("depth of %d is %d, want %d", n.Value(), d, l)
		}
	}
	if d := tree.Depth(tree.Root()); d != 0 {
		t.Errorf("root depth is %d, want 0", d)
	}
	other := Build([]int{tree.Root().Value()})
	if d := tree.Depth(other.Root()); d != -1 {
		t.Errorf("depth of a node from another tree is %d, want -1", d)
	}
	if d := tree.Depth(nil); d != -1 {
		t.Errorf("depth of nil is %d, want -1", d)
	}
}

func TestIsBalanced(t *testing.T) {
	tree := Build([]int{1, 2, 3})
	if !tree.IsBalanced() {
		t.Errorf("3 node tree isn't balanced")
	}
	tree.Insert(4)
	if !tree.IsBalanced() {
		t.Errorf("4 node tree isn't balanced: %v", tree.PreOrder())
	}
	tree.Insert(5)
	// 3 has no left child and a right chain 4-5 of height 1.
	if tree.IsBalanced() {
		t.Errorf("tree with chain 3-4-5 is balanced: %v", tree.PreOrder())
	}
	// Root heights are equal but both children are chains.
	tree = New[int]()
	for _, v := range []int{50, 40, 30, 20, 60, 70, 80} {
		tree.Insert(v)
	}
	if d := tree.Height(tree.Root().Left()) - tree.Height(tree.Root().Right()); d != 0 {
		t.Fatalf("root subtree heights differ by %d", d)
	}
	if tree.IsBalanced() {
		t.Errorf("tree with unbalanced children is balanced")
	}
}

func TestRebalance(t *testing.T) {
	tree := Build([]int{5, 20, 33, 47, 98})
	for _, v := range []int{120, 111, 123, 145, 155, 188} {
		if !tree.Insert(v) {
			t.Fatalf("failed to insert %d", v)
		}
	}
	if tree.IsBalanced() {
		t.Errorf("tree is balanced before Rebalance: %v", tree.PreOrder())
	}
	in, pre := tree.InOrder(), tree.PreOrder()
	tree.Rebalance()
	checkTree(t, tree)
	if !tree.IsBalanced() {
		t.Errorf("tree isn't balanced after Rebalance: %v", tree.PreOrder())
	}
	if s := tree.InOrder(); !slices.Equal(s, in) {
		t.Errorf("in-order changed from %v to %v", in, s)
	}
	if s := tree.PreOrder(); slices.Equal(s, pre) {
		t.Errorf("rebalance didn't change the structure: %v", s)
	}
	if tree.Size() != 11 {
		t.Errorf("tree size is %d, want 11", tree.Size())
	}
}

func TestRebalance_Idempotent(t *testing.T) {
	tree := Build(randomValues(1000, 5000))
	in, pre := tree.InOrder(), tree.PreOrder()
	tree.Rebalance()
	if !tree.IsBalanced() || !slices.Equal(tree.InOrder(), in) {
		t.Errorf("rebalancing a balanced tree changed its contents")
	}
	if !slices.Equal(tree.PreOrder(), pre) {
		t.Errorf("rebalancing a built tree changed its shape")
	}
}

func TestRebalance_Random(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 20; i++ {
		for _, v := range randomValues(300, 3000) {
			tree.Insert(v)
		}
		for _, v := range randomValues(150, 3000) {
			tree.Delete(v)
		}
		in := tree.InOrder()
		tree.Rebalance()
		checkTree(t, tree)
		if !tree.IsBalanced() {
			t.Fatalf("tree of %d isn't balanced after Rebalance", tree.Size())
		}
		if !slices.Equal(tree.InOrder(), in) {
			t.Fatalf("rebalance changed the contents")
		}
	}
}
