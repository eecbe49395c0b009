package rec

// CataM is Cata with a fallible algebra: children are folded left to right
// through the shape's traverse capability, and the first error, whether from
// a child or from alg itself, aborts the remaining traversal.
func CataM[T, FT, FA, A any](
	t T,
	project func(T) FT,
	traverse func(FT, func(T) (A, error)) (FA, error),
	alg func(FA) (A, error),
) (A, error) {
	var fold func(T) (A, error)
	fold = func(t T) (A, error) {
		layer, err := traverse(project(t), fold)
		if err != nil {
			var zero A
			return zero, err
		}
		return alg(layer)
	}
	return fold(t)
}

// AnaM is Ana with a fallible coalgebra: each step may fail, and a failure
// at any child stops the unfold without visiting later siblings.
func AnaM[A, FA, FT, T any](
	seed A,
	embed func(FT) T,
	traverse func(FA, func(A) (T, error)) (FT, error),
	coalg func(A) (FA, error),
) (T, error) {
	var unfold func(A) (T, error)
	unfold = func(a A) (T, error) {
		var zero T
		layer, err := coalg(a)
		if err != nil {
			return zero, err
		}
		built, err := traverse(layer, unfold)
		if err != nil {
			return zero, err
		}
		return embed(built), nil
	}
	return unfold(seed)
}

// HyloM fuses AnaM into CataM: seeds are expanded and folded in one pass,
// with either side's first error aborting the whole computation.
func HyloM[A, FA, FB, B any](
	seed A,
	traverse func(FA, func(A) (B, error)) (FB, error),
	alg func(FB) (B, error),
	coalg func(A) (FA, error),
) (B, error) {
	var run func(A) (B, error)
	run = func(a A) (B, error) {
		var zero B
		layer, err := coalg(a)
		if err != nil {
			return zero, err
		}
		folded, err := traverse(layer, run)
		if err != nil {
			return zero, err
		}
		return alg(folded)
	}
	return run(seed)
}

// ParaM is Para with a fallible algebra, sequencing children left to right
// and aborting on the first error.
func ParaM[T, FT, FP, A any](
	t T,
	project func(T) FT,
	traverse func(FT, func(T) (Pair[T, A], error)) (FP, error),
	alg func(FP) (A, error),
) (A, error) {
	var fold func(T) (Pair[T, A], error)
	fold = func(t T) (Pair[T, A], error) {
		layer, err := traverse(project(t), fold)
		if err != nil {
			return Pair[T, A]{}, err
		}
		a, err := alg(layer)
		if err != nil {
			return Pair[T, A]{}, err
		}
		return Pair[T, A]{Fst: t, Snd: a}, nil
	}
	p, err := fold(t)
	if err != nil {
		var zero A
		return zero, err
	}
	return p.Snd, nil
}

// ApoM is Apo with a fallible coalgebra: Left(term) children are grafted
// as-is, Right(seed) children continue unfolding, and the first error aborts.
func ApoM[A, FE, FT, T any](
	seed A,
	embed func(FT) T,
	traverse func(FE, func(Either[T, A]) (T, error)) (FT, error),
	coalg func(A) (FE, error),
) (T, error) {
	var unfold func(A) (T, error)
	unfold = func(a A) (T, error) {
		var zero T
		layer, err := coalg(a)
		if err != nil {
			return zero, err
		}
		built, err := traverse(layer, func(e Either[T, A]) (T, error) {
			if t, ok := e.Left(); ok {
				return t, nil
			}
			next, _ := e.Right()
			return unfold(next)
		})
		if err != nil {
			return zero, err
		}
		return embed(built), nil
	}
	return unfold(seed)
}

// TopDownCataM rewrites a term top-down while threading caller state, such as
// variable bindings, from each node to its children. step sees the current
// state and node and returns the state its children inherit together with the
// node's replacement; the replacement's layer is kept and its children are
// rewritten recursively. Children are sequenced left to right and the first
// error aborts the rewrite.
func TopDownCataM[S, T, FT any](
	t T,
	state S,
	project func(T) FT,
	embed func(FT) T,
	traverse func(FT, func(T) (T, error)) (FT, error),
	step func(S, T) (S, T, error),
) (T, error) {
	var walk func(S, T) (T, error)
	walk = func(s S, t T) (T, error) {
		var zero T
		s2, t2, err := step(s, t)
		if err != nil {
			return zero, err
		}
		layer, err := traverse(project(t2), func(c T) (T, error) {
			return walk(s2, c)
		})
		if err != nil {
			return zero, err
		}
		return embed(layer), nil
	}
	return walk(state, t)
}
