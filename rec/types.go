package rec

import "fmt"

// Pair groups two values computed for the same node or child position, such
// as para's (original subterm, folded value) or zygo's (helper, main result).
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// NewPair builds a Pair with both type arguments inferred.
func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Fst returns the first component of p.
func Fst[A, B any](p Pair[A, B]) A { return p.Fst }

// Snd returns the second component of p.
func Snd[A, B any](p Pair[A, B]) B { return p.Snd }

// PairMap transforms the second component, keeping the first. Together with
// PairDup and Snd it forms the environment-comonad capability used when a
// pair context is threaded through GCata.
func PairMap[E, A, B any](p Pair[E, A], fn func(A) B) Pair[E, B] {
	return Pair[E, B]{Fst: p.Fst, Snd: fn(p.Snd)}
}

// PairDup duplicates the pair context: the environment is retained and the
// whole pair becomes the new second component.
func PairDup[E, A any](p Pair[E, A]) Pair[E, Pair[E, A]] {
	return Pair[E, Pair[E, A]]{Fst: p.Fst, Snd: p}
}

// Either holds exactly one of two alternatives. Apo-style unfolds use it to
// mark a child as either a finished term (left) or a seed to continue from
// (right); futu-style partial terms destructure into one as well.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds an Either holding the left alternative.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right builds an Either holding the right alternative.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// Left reports the left alternative, if that is the side held.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right reports the right alternative, if that is the side held.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// IsRight reports which side is held.
func (e Either[L, R]) IsRight() bool { return e.isRight }

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// EitherMap transforms the right alternative, keeping a left untouched.
// Together with EitherJoin and Right it forms the monad capability used when
// an either context is threaded through GAna.
func EitherMap[L, A, B any](e Either[L, A], fn func(A) B) Either[L, B] {
	if a, ok := e.Right(); ok {
		return Right[L](fn(a))
	}
	l, _ := e.Left()
	return Left[L, B](l)
}

// EitherJoin collapses a nested either: an outer left stays left, otherwise
// the inner either is returned as is.
func EitherJoin[L, A any](e Either[L, Either[L, A]]) Either[L, A] {
	if inner, ok := e.Right(); ok {
		return inner
	}
	l, _ := e.Left()
	return Left[L, A](l)
}

// Identity returns v unchanged. It is the distributive law of the identity
// context, under which GCata collapses to Cata and GAna to Ana.
func Identity[A any](v A) A { return v }

// Apply feeds v to fn. It is the identity context's map capability.
func Apply[A, B any](v A, fn func(A) B) B { return fn(v) }
