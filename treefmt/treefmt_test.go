package treefmt_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/gitter-badger/matryoshka/internal/exp"
	"github.com/gitter-badger/matryoshka/rec"
	"github.com/gitter-badger/matryoshka/treefmt"
)

func disableColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

type node struct {
	name string
	val  int
	kids []*node
}

func plainTree(root *node) rec.Tree[*node, int] {
	return rec.Tree[*node, int]{
		Root:     root,
		Children: func(n *node) []*node { return n.kids },
		Attr:     func(n *node) int { return n.val },
	}
}

func TestFormat(t *testing.T) {
	disableColor(t)

	root := &node{name: "root", val: 1, kids: []*node{
		{name: "a", val: 2, kids: []*node{{name: "c", val: 4}}},
		{name: "b", val: 3},
	}}

	got := treefmt.Format(plainTree(root), func(n *node) string { return n.name }, "demo")

	want := "demo (4 nodes)\n" +
		"root = 1\n" +
		"├── a = 2\n" +
		"│   └── c = 4\n" +
		"└── b = 3\n"
	assert.Equal(t, want, got)
}

func TestFormatSingleNode(t *testing.T) {
	disableColor(t)

	got := treefmt.Format(plainTree(&node{name: "only", val: 9}), func(n *node) string { return n.name }, "demo")
	assert.Equal(t, "demo (1 node)\nonly = 9\n", got)
}

func TestFormatAnnotatedExpression(t *testing.T) {
	disableColor(t)

	term := exp.Mul(exp.Mul(exp.Num(2), exp.Num(3)), exp.Num(4))
	size := func(l exp.ExpF[exp.Attr[int]]) int {
		return exp.Fold(l, 1, func(acc int, c exp.Attr[int]) int { return acc + c.Value })
	}
	attributed := rec.Annotate(term, exp.Project, exp.Map, exp.NewAttr, size)
	tree := rec.AttrTree(attributed, exp.AttrValue, exp.AttrLayer, exp.Fold)

	got := treefmt.Format(tree, func(h exp.Attr[int]) string { return exp.Describe(h.Layer) }, "expression")

	want := "expression (5 nodes)\n" +
		"* = 5\n" +
		"├── * = 3\n" +
		"│   ├── 2 = 1\n" +
		"│   └── 3 = 1\n" +
		"└── 4 = 1\n"
	assert.Equal(t, want, got)
}
