package rec

// Tree is the handoff to rendering and diagnostics: a root node, a way to
// enumerate a node's children in order, and a way to read the value carried
// at a node. Consumers walk it without knowing anything about fixpoints or
// schemes.
type Tree[N, V any] struct {
	Root     N
	Children func(N) []N
	Attr     func(N) V
}

// AttrTree adapts an attributed term, as produced by Annotate or a histo
// fold, into a Tree. Nodes are the attributed subterms themselves; children
// come from the underlying layer, values from the annotation.
func AttrTree[V, H, FH any](
	root H,
	attr func(H) V,
	layer func(H) FH,
	fold func(FH, []H, func([]H, H) []H) []H,
) Tree[H, V] {
	return Tree[H, V]{
		Root: root,
		Children: func(h H) []H {
			return fold(layer(h), nil, func(acc []H, c H) []H {
				return append(acc, c)
			})
		},
		Attr: attr,
	}
}
