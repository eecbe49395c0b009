package rec

// Histo folds t bottom-up while keeping every intermediate result: the
// algebra sees each child as a complete attributed subtree (type H) carrying
// the fold's value at every node, not just the child's final value.
//
// H is the shape's attributed-term type, recursive in the shape, so the
// shape declares it once and passes its constructor as mk. An algebra that
// reads only the top attribute of each child degenerates to Cata.
func Histo[T, FT, FH, H, A any](
	t T,
	project func(T) FT,
	fmap func(FT, func(T) H) FH,
	mk func(A, FH) H,
	alg func(FH) A,
) A {
	return alg(fmap(project(t), attrWalk(project, fmap, mk, alg)))
}

// Annotate is Histo keeping the whole attributed term instead of just the
// root value: the result pairs every node of t with the value the algebra
// computed for it, ready for rendering or later inspection.
func Annotate[T, FT, FH, H, A any](
	t T,
	project func(T) FT,
	fmap func(FT, func(T) H) FH,
	mk func(A, FH) H,
	alg func(FH) A,
) H {
	return attrWalk(project, fmap, mk, alg)(t)
}

func attrWalk[T, FT, FH, H, A any](
	project func(T) FT,
	fmap func(FT, func(T) H) FH,
	mk func(A, FH) H,
	alg func(FH) A,
) func(T) H {
	var walk func(T) H
	walk = func(t T) H {
		layer := fmap(project(t), walk)
		return mk(alg(layer), layer)
	}
	return walk
}

// Futu unfolds a term from a seed, allowing each coalgebra step to emit more
// than one layer at a time: a child produced as a seed resumes the coalgebra,
// while a child produced as a fully specified partial layer is expanded
// in place before the coalgebra is consulted again.
//
// P is the shape's partial-term type; out destructures it into either a
// suspended seed (left) or a layer of partial terms (right).
func Futu[A, P, FP, FT, T any](
	seed A,
	embed func(FT) T,
	fmap func(FP, func(P) T) FT,
	out func(P) Either[A, FP],
	coalg func(A) FP,
) T {
	var unfold func(A) T
	var grow func(P) T
	unfold = func(a A) T {
		return embed(fmap(coalg(a), grow))
	}
	grow = func(p P) T {
		e := out(p)
		if a, ok := e.Left(); ok {
			return unfold(a)
		}
		layer, _ := e.Right()
		return embed(fmap(layer, grow))
	}
	return unfold(seed)
}

// Chrono fuses Futu into Histo the way Hylo fuses Ana into Cata: the
// coalgebra may emit several layers per step, the algebra sees the full
// attributed history of every child, and no intermediate term is built.
func Chrono[A, P, FP, H, FH, B any](
	seed A,
	fmap func(FP, func(P) H) FH,
	out func(P) Either[A, FP],
	mk func(B, FH) H,
	alg func(FH) B,
	coalg func(A) FP,
) B {
	var grow func(P) H
	eval := func(layer FP) (B, FH) {
		kids := fmap(layer, grow)
		return alg(kids), kids
	}
	grow = func(p P) H {
		var layer FP
		e := out(p)
		if a, ok := e.Left(); ok {
			layer = coalg(a)
		} else {
			layer, _ = e.Right()
		}
		b, kids := eval(layer)
		return mk(b, kids)
	}
	b, _ := eval(coalg(seed))
	return b
}
