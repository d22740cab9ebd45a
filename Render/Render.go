// Package Render draws a Trees.Node view as text. Both renderers are pure
// functions of the node view and never modify the tree.
package Render

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

const (
	pipe      = "│   "
	blank     = "    "
	lowerLink = "└── "
	upperLink = "┌── "
)

// PrettyPrint writes the subtree of n sideways, one node per line: the right subtree
// above its parent and the left subtree below, so the tree reads as if rotated 90
// degrees counter-clockwise. Nothing is written for a nil node. Recursive.
func PrettyPrint[T constraints.Ordered](w io.Writer, n *Trees.Node[T]) error {
	return prettyPrint(w, n, "", true)
}

func prettyPrint[T constraints.Ordered](w io.Writer, n *Trees.Node[T], prefix string, isLeft bool) error {
	if n == nil {
		return nil
	}
	up, down, link := pipe, blank, lowerLink
	if !isLeft {
		up, down, link = blank, pipe, upperLink
	}
	if err := prettyPrint(w, n.Right(), prefix+up, false); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", prefix, link, n.Value()); err != nil {
		return err
	}
	return prettyPrint(w, n.Left(), prefix+down, true)
}

// TreePrint renders the subtree of n top-down with children tagged [L] or [R].
// Returns "" for a nil node.
func TreePrint[T constraints.Ordered](n *Trees.Node[T]) string {
	if n == nil {
		return ""
	}
	t := treeprint.NewWithRoot(n.Value())
	addChildren(t, n)
	return t.String()
}

func addChildren[T constraints.Ordered](t treeprint.Tree, n *Trees.Node[T]) {
	for _, c := range [...]struct {
		tag string
		n   *Trees.Node[T]
	}{{"L", n.Left()}, {"R", n.Right()}} {
		switch {
		case c.n == nil:
		case c.n.Left() == nil && c.n.Right() == nil:
			t.AddMetaNode(c.tag, c.n.Value())
		default:
			addChildren(t.AddMetaBranch(c.tag, c.n.Value()), c.n)
		}
	}
}
