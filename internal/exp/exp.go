// Package exp defines a small arithmetic expression shape and wires it to the
// scheme engine in rec. It is the concrete AST the engine's capability
// functions are written against: one layer type generic over the child
// position, a fixpoint wrapping it, and plain functions for map, fold,
// traverse and unzip over a layer's children.
//
// The layer has four variants. Num and Var are leaves, Mul has two children,
// Let binds a name to an init term inside a body. All variants are comparable,
// so == on Exp is structural equality, layer by layer.
package exp

import (
	"fmt"
	"strconv"

	"github.com/gitter-badger/matryoshka/rec"
)

// ExpF is one layer of an expression, generic over the type sitting at child
// positions. The marker method seals the variant set to this package.
type ExpF[A any] interface {
	isExpF()
}

// NumF is an integer literal.
type NumF[A any] struct {
	N int
}

// VarF is a variable reference.
type VarF[A any] struct {
	Name string
}

// MulF is the product of two children.
type MulF[A any] struct {
	L A
	R A
}

// LetF binds Name to Bind inside Body.
type LetF[A any] struct {
	Name string
	Bind A
	Body A
}

func (NumF[A]) isExpF() {}
func (VarF[A]) isExpF() {}
func (MulF[A]) isExpF() {}
func (LetF[A]) isExpF() {}

// Exp is the fixpoint of ExpF: a term whose children are terms. The zero Exp
// is not a valid term; build terms with the constructors below.
type Exp struct {
	layer ExpF[Exp]
}

// Project unwraps one layer of a term.
func Project(e Exp) ExpF[Exp] { return e.layer }

// Embed wraps one layer of terms into a term.
func Embed(l ExpF[Exp]) Exp { return Exp{layer: l} }

// Num builds a literal term.
func Num(n int) Exp { return Embed(NumF[Exp]{N: n}) }

// Var builds a variable reference term.
func Var(name string) Exp { return Embed(VarF[Exp]{Name: name}) }

// Mul builds a product term.
func Mul(l, r Exp) Exp { return Embed(MulF[Exp]{L: l, R: r}) }

// Let builds a binding term.
func Let(name string, bind, body Exp) Exp {
	return Embed(LetF[Exp]{Name: name, Bind: bind, Body: body})
}

// Map applies f to each child of a layer, left to right, preserving the
// variant and child order.
func Map[A, B any](l ExpF[A], f func(A) B) ExpF[B] {
	switch v := l.(type) {
	case NumF[A]:
		return NumF[B]{N: v.N}
	case VarF[A]:
		return VarF[B]{Name: v.Name}
	case MulF[A]:
		return MulF[B]{L: f(v.L), R: f(v.R)}
	case LetF[A]:
		return LetF[B]{Name: v.Name, Bind: f(v.Bind), Body: f(v.Body)}
	}
	panic(fmt.Sprintf("exp: unexpected layer %T", l))
}

// Fold accumulates over a layer's children, left to right. Leaves return z
// unchanged.
func Fold[A, Z any](l ExpF[A], z Z, step func(Z, A) Z) Z {
	switch v := l.(type) {
	case MulF[A]:
		return step(step(z, v.L), v.R)
	case LetF[A]:
		return step(step(z, v.Bind), v.Body)
	default:
		return z
	}
}

// Traverse applies f to each child of a layer, left to right, stopping at the
// first error.
func Traverse[A, B any](l ExpF[A], f func(A) (B, error)) (ExpF[B], error) {
	switch v := l.(type) {
	case NumF[A]:
		return NumF[B]{N: v.N}, nil
	case VarF[A]:
		return VarF[B]{Name: v.Name}, nil
	case MulF[A]:
		lb, err := f(v.L)
		if err != nil {
			return nil, err
		}
		rb, err := f(v.R)
		if err != nil {
			return nil, err
		}
		return MulF[B]{L: lb, R: rb}, nil
	case LetF[A]:
		bind, err := f(v.Bind)
		if err != nil {
			return nil, err
		}
		body, err := f(v.Body)
		if err != nil {
			return nil, err
		}
		return LetF[B]{Name: v.Name, Bind: bind, Body: body}, nil
	}
	panic(fmt.Sprintf("exp: unexpected layer %T", l))
}

// Unzip splits a layer of paired children into two layers, pairing position
// by position. Leaf payloads are duplicated into both results.
func Unzip[A, B any](l ExpF[rec.Pair[A, B]]) (ExpF[A], ExpF[B]) {
	switch v := l.(type) {
	case NumF[rec.Pair[A, B]]:
		return NumF[A]{N: v.N}, NumF[B]{N: v.N}
	case VarF[rec.Pair[A, B]]:
		return VarF[A]{Name: v.Name}, VarF[B]{Name: v.Name}
	case MulF[rec.Pair[A, B]]:
		return MulF[A]{L: v.L.Fst, R: v.R.Fst}, MulF[B]{L: v.L.Snd, R: v.R.Snd}
	case LetF[rec.Pair[A, B]]:
		return LetF[A]{Name: v.Name, Bind: v.Bind.Fst, Body: v.Body.Fst},
			LetF[B]{Name: v.Name, Bind: v.Bind.Snd, Body: v.Body.Snd}
	}
	panic(fmt.Sprintf("exp: unexpected layer %T", l))
}

// Describe names a layer's variant for display, ignoring its children.
func Describe[A any](l ExpF[A]) string {
	switch v := l.(type) {
	case NumF[A]:
		return strconv.Itoa(v.N)
	case VarF[A]:
		return v.Name
	case MulF[A]:
		return "*"
	case LetF[A]:
		return "let " + v.Name
	}
	return fmt.Sprintf("%T", l)
}

// String renders e in the concrete syntax Parse reads back: literals, names,
// and fully parenthesized products and bindings.
func (e Exp) String() string {
	return rec.Cata(e, Project, Map[Exp, string], func(l ExpF[string]) string {
		switch v := l.(type) {
		case NumF[string]:
			return strconv.Itoa(v.N)
		case VarF[string]:
			return v.Name
		case MulF[string]:
			return "(" + v.L + " * " + v.R + ")"
		case LetF[string]:
			// Parenthesized like Mul so a binding nested under a product
			// reads back at the same position.
			return "(let " + v.Name + " = " + v.Bind + " in " + v.Body + ")"
		}
		panic(fmt.Sprintf("exp: unexpected layer %T", l))
	})
}
