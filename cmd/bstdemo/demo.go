package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"

	"github.com/g-m-twostay/go-bst/Render"
	"github.com/g-m-twostay/go-bst/Trees"
)

const (
	stylePretty    = "pretty"
	styleTreePrint = "treeprint"
	// minUnbalance is how many ascending values the demo appends past the largest
	// value; a chain this long under the rightmost node always breaks balance.
	minUnbalance = 6
)

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "build a tree from random values, unbalance it with large values, then rebalance it",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"n"},
			Usage:   "number of random values to build from",
			Value:   15,
			EnvVars: []string{"BSTDEMO_SIZE"},
		},
		&cli.IntFlag{
			Name:    "max",
			Usage:   "random values are drawn from [0, max)",
			Value:   100,
			EnvVars: []string{"BSTDEMO_MAX"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed, defaults to the current time",
			EnvVars: []string{"BSTDEMO_SEED"},
		},
	},
	Action: runDemo,
}

var cmdBuild = &cli.Command{
	Name:      "build",
	Usage:     "build a tree from the given integers and apply edits to it",
	ArgsUsage: `<int>...`,
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "insert",
			Usage: "values to insert after building",
		},
		&cli.IntSliceFlag{
			Name:  "delete",
			Usage: "values to delete after inserting",
		},
		&cli.IntSliceFlag{
			Name:  "find",
			Usage: "values to look up",
		},
		&cli.BoolFlag{
			Name:  "rebalance",
			Usage: "rebalance the tree after the edits",
		},
	},
	Action: runBuild,
}

func runDemo(cctx *cli.Context) error {
	log := loggerFrom(cctx)
	size, hi := cctx.Int("size"), cctx.Int("max")
	if size < 0 {
		return fmt.Errorf("size must not be negative, got %d", size)
	}
	if hi < 1 {
		return fmt.Errorf("max must be positive, got %d", hi)
	}
	seed := cctx.Int64("seed")
	if !cctx.IsSet("seed") {
		seed = time.Now().UnixNano()
	}
	faker := gofakeit.New(seed)
	vs := make([]int, size)
	for i := range vs {
		vs[i] = faker.Number(0, hi-1)
	}
	log.Info().Int64("seed", seed).Ints("values", vs).Msg("generated input")

	tree := Trees.Build(vs, Trees.WithLogger(log))
	if err := report(cctx, tree, "built"); err != nil {
		return err
	}

	extra := make([]int, max(minUnbalance, size/2))
	for i, v := 0, hi; i < len(extra); i++ {
		v += faker.Number(1, 10)
		extra[i] = v
		tree.Insert(v)
	}
	log.Info().Ints("values", extra).Msg("inserted values above max")
	if err := report(cctx, tree, "unbalanced"); err != nil {
		return err
	}

	tree.Rebalance()
	return report(cctx, tree, "rebalanced")
}

func runBuild(cctx *cli.Context) error {
	log := loggerFrom(cctx)
	vs := make([]int, 0, cctx.NArg())
	for _, a := range cctx.Args().Slice() {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("parsing value %q: %w", a, err)
		}
		vs = append(vs, v)
	}
	tree := Trees.Build(vs, Trees.WithLogger(log))
	for _, v := range cctx.IntSlice("insert") {
		tree.Insert(v)
	}
	for _, v := range cctx.IntSlice("delete") {
		if !tree.Delete(v) {
			log.Warn().Int("value", v).Msg("value not in tree")
		}
	}
	if cctx.Bool("rebalance") {
		tree.Rebalance()
	}
	w := cctx.App.Writer
	for _, v := range cctx.IntSlice("find") {
		if n := tree.Get(v); n != nil {
			fmt.Fprintf(w, "find %d: depth %d, height %d\n", v, tree.Depth(n), tree.Height(n))
		} else {
			fmt.Fprintf(w, "find %d: not found\n", v)
		}
	}
	return report(cctx, tree, "tree")
}

// report prints the diagram, balance and traversals of tree under a heading.
func report(cctx *cli.Context, tree *Trees.BST[int], heading string) error {
	w := cctx.App.Writer
	fmt.Fprintf(w, "== %s: %d values, height %d\n", heading, tree.Size(), tree.Height(tree.Root()))
	if err := draw(w, cctx.String("style"), tree); err != nil {
		return fmt.Errorf("drawing tree: %w", err)
	}
	fmt.Fprintf(w, "balanced: %v\n", tree.IsBalanced())
	fmt.Fprintf(w, "level order: %v\n", tree.LevelOrder())
	fmt.Fprintf(w, "pre order: %v\n", tree.PreOrder())
	fmt.Fprintf(w, "post order: %v\n", tree.PostOrder())
	fmt.Fprint(w, "in order:")
	tree.InOrder(func(v int) {
		fmt.Fprintf(w, " %d", v)
	})
	fmt.Fprintln(w)
	return nil
}

func draw(w io.Writer, style string, tree *Trees.BST[int]) error {
	switch style {
	case styleTreePrint:
		_, err := io.WriteString(w, Render.TreePrint(tree.Root()))
		return err
	default:
		return Render.PrettyPrint(w, tree.Root())
	}
}
