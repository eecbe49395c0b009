package exp

import (
	"github.com/gitter-badger/matryoshka/rec"
)

// Attr is an attributed term: an expression where every node carries a value
// of type A next to the layer it annotates. Histo presents child histories as
// Attr values; Annotate returns a fully attributed copy of a term.
type Attr[A any] struct {
	Value A
	Layer ExpF[Attr[A]]
}

// NewAttr attaches a value to a layer of attributed children.
func NewAttr[A any](v A, l ExpF[Attr[A]]) Attr[A] {
	return Attr[A]{Value: v, Layer: l}
}

// AttrValue reads the value at the root of an attributed term.
func AttrValue[A any](a Attr[A]) A { return a.Value }

// AttrLayer reads the layer under the root of an attributed term.
func AttrLayer[A any](a Attr[A]) ExpF[Attr[A]] { return a.Layer }

// MapAttr applies f to every value in an attributed term.
func MapAttr[A, B any](a Attr[A], f func(A) B) Attr[B] {
	return Attr[B]{
		Value: f(a.Value),
		Layer: Map(a.Layer, func(c Attr[A]) Attr[B] { return MapAttr(c, f) }),
	}
}

// DupAttr re-attributes every node with its own attributed subtree, so each
// value becomes the full history below that node.
func DupAttr[A any](a Attr[A]) Attr[Attr[A]] {
	return Attr[Attr[A]]{
		Value: a,
		Layer: Map(a.Layer, DupAttr[A]),
	}
}

// Partial is a partially built term: either a pending seed of type A or one
// layer whose children are themselves partial. Futu coalgebras return these
// to emit several layers per step, deferring the rest to later seeds. The
// zero Partial is not valid; build with Later or Now.
type Partial[A any] struct {
	seed     A
	layer    ExpF[Partial[A]]
	deferred bool
}

// Later defers to a seed that will be expanded on a later step.
func Later[A any](seed A) Partial[A] {
	return Partial[A]{seed: seed, deferred: true}
}

// Now commits one built layer.
func Now[A any](l ExpF[Partial[A]]) Partial[A] {
	return Partial[A]{layer: l}
}

// PartialOut splits a partial term into a pending seed or a built layer.
func PartialOut[A any](p Partial[A]) rec.Either[A, ExpF[Partial[A]]] {
	if p.deferred {
		return rec.Left[A, ExpF[Partial[A]]](p.seed)
	}
	return rec.Right[A, ExpF[Partial[A]]](p.layer)
}

// MapPartial applies f to every pending seed in a partial term.
func MapPartial[A, B any](p Partial[A], f func(A) B) Partial[B] {
	if p.deferred {
		return Later(f(p.seed))
	}
	return Now[B](Map(p.layer, func(c Partial[A]) Partial[B] { return MapPartial(c, f) }))
}

// JoinPartial flattens a partial term whose seeds are themselves partial.
func JoinPartial[A any](p Partial[Partial[A]]) Partial[A] {
	if p.deferred {
		return p.seed
	}
	return Now[A](Map(p.layer, JoinPartial[A]))
}
