package rec

// Cata folds t bottom-up: every child is folded first, then alg collapses the
// resulting layer of values. alg must be total over the shape's variants.
func Cata[T, FT, FA, A any](
	t T,
	project func(T) FT,
	fmap func(FT, func(T) A) FA,
	alg func(FA) A,
) A {
	var fold func(T) A
	fold = func(t T) A {
		return alg(fmap(project(t), fold))
	}
	return fold(t)
}

// Ana unfolds a term top-down from seed: coalg produces one layer of new
// seeds, each of which is unfolded in turn. Termination is the coalgebra's
// responsibility; a coalgebra that never yields a childless layer diverges.
func Ana[A, FA, FT, T any](
	seed A,
	embed func(FT) T,
	fmap func(FA, func(A) T) FT,
	coalg func(A) FA,
) T {
	var unfold func(A) T
	unfold = func(a A) T {
		return embed(fmap(coalg(a), unfold))
	}
	return unfold(seed)
}

// Hylo is Ana immediately consumed by Cata: the value each coalgebra step
// produces is folded on the way back up, so the intermediate term is never
// materialized.
func Hylo[A, FA, FB, B any](
	seed A,
	fmap func(FA, func(A) B) FB,
	alg func(FB) B,
	coalg func(A) FA,
) B {
	var run func(A) B
	run = func(a A) B {
		return alg(fmap(coalg(a), run))
	}
	return run(seed)
}

// Para folds like Cata but presents each child as a Pair of the original
// subterm and its folded value, so the algebra can inspect the unconsumed
// input alongside the result.
func Para[T, FT, FP, A any](
	t T,
	project func(T) FT,
	fmap func(FT, func(T) Pair[T, A]) FP,
	alg func(FP) A,
) A {
	var fold func(T) Pair[T, A]
	fold = func(t T) Pair[T, A] {
		return Pair[T, A]{Fst: t, Snd: alg(fmap(project(t), fold))}
	}
	return fold(t).Snd
}

// Apo unfolds like Ana but lets the coalgebra finish a branch early: a child
// produced as Left(term) is grafted as-is, a Right(seed) keeps unfolding.
func Apo[A, FE, FT, T any](
	seed A,
	embed func(FT) T,
	fmap func(FE, func(Either[T, A]) T) FT,
	coalg func(A) FE,
) T {
	var unfold func(A) T
	unfold = func(a A) T {
		return embed(fmap(coalg(a), func(e Either[T, A]) T {
			if t, ok := e.Left(); ok {
				return t
			}
			next, _ := e.Right()
			return unfold(next)
		}))
	}
	return unfold(seed)
}

// Zygo runs two folds in one traversal: helper computes an auxiliary value
// bottom-up, and alg sees every child as a Pair of that helper value and the
// child's main result. fmapFst is the shape's map at the instantiation that
// extracts the helper component.
func Zygo[T, FT, FP, FB, B, A any](
	t T,
	project func(T) FT,
	fmap func(FT, func(T) Pair[B, A]) FP,
	fmapFst func(FP, func(Pair[B, A]) B) FB,
	helper func(FB) B,
	alg func(FP) A,
) A {
	var fold func(T) Pair[B, A]
	fold = func(t T) Pair[B, A] {
		layer := fmap(project(t), fold)
		b := helper(fmapFst(layer, Fst[B, A]))
		return Pair[B, A]{Fst: b, Snd: alg(layer)}
	}
	return fold(t).Snd
}

// ParaZygo combines Para's view of the original subterm with Zygo's helper
// threading: helper folds layers of (subterm, helper) pairs while alg folds
// layers of (helper, result) pairs, in a single traversal. unzip is the
// shape's capability for splitting a layer of paired children into two
// parallel layers at matching positions.
func ParaZygo[T, FT, FP, FTB, FBA, B, A any](
	t T,
	project func(T) FT,
	fmap func(FT, func(T) Pair[Pair[T, B], Pair[B, A]]) FP,
	unzip func(FP) (FTB, FBA),
	helper func(FTB) B,
	alg func(FBA) A,
) A {
	var fold func(T) Pair[B, A]
	fold = func(t T) Pair[B, A] {
		layer := fmap(project(t), func(c T) Pair[Pair[T, B], Pair[B, A]] {
			p := fold(c)
			return Pair[Pair[T, B], Pair[B, A]]{
				Fst: Pair[T, B]{Fst: c, Snd: p.Fst},
				Snd: p,
			}
		})
		tbs, bas := unzip(layer)
		return Pair[B, A]{Fst: helper(tbs), Snd: alg(bas)}
	}
	return fold(t).Snd
}

// TransCata rewrites every layer of a term bottom-up: children are rewritten
// first, then rewrite is applied to the enclosing layer. It is the generic
// "map over the whole structure."
func TransCata[T, FT any](
	t T,
	project func(T) FT,
	embed func(FT) T,
	fmap func(FT, func(T) T) FT,
	rewrite func(FT) FT,
) T {
	var walk func(T) T
	walk = func(t T) T {
		return embed(rewrite(fmap(project(t), walk)))
	}
	return walk(t)
}

// TransAna rewrites every layer of a term top-down: rewrite is applied to a
// layer before its children are visited, so a rewrite can introduce structure
// that is itself rewritten further down.
func TransAna[T, FT any](
	t T,
	project func(T) FT,
	embed func(FT) T,
	fmap func(FT, func(T) T) FT,
	rewrite func(FT) FT,
) T {
	var walk func(T) T
	walk = func(t T) T {
		return embed(fmap(rewrite(project(t)), walk))
	}
	return walk(t)
}
