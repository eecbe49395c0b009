package rec

// Distributive-law constructors for GCata and GAna. Each one commutes a shape
// layer past a context, built from the shape's plain map capability so the
// engine never has to name the shape. Type parameters are ordered so that the
// context type comes first: callers instantiate it explicitly and inference
// fills in the rest from the capability arguments.

// DistCata is the law for the identity context. With Identity and Apply as
// the context capabilities it makes GCata behave exactly like Cata.
func DistCata[FA any](fa FA) FA { return fa }

// DistAna is the law for the identity context on the unfold side.
func DistAna[FA any](fa FA) FA { return fa }

// DistZygo builds the law for a pair-with-helper context from a helper
// algebra. Each layer of pairs is split with the shape's map: the first
// components feed the helper, the second components stay for the main
// algebra. Instantiate the first type parameter with the paired carrier the
// law commutes over, which for GCata is the context-wrapped value:
//
//	dist := rec.DistZygo[rec.Pair[int, string]](evalAlg, exp.Map, exp.Map)
func DistZygo[A, FP, FA, B, FB any](
	helper func(FB) B,
	fmapFst func(FP, func(Pair[B, A]) B) FB,
	fmapSnd func(FP, func(Pair[B, A]) A) FA,
) func(FP) Pair[B, FA] {
	return func(fp FP) Pair[B, FA] {
		return NewPair(helper(fmapFst(fp, Fst[B, A])), fmapSnd(fp, Snd[B, A]))
	}
}

// DistPara is DistZygo with embed as the helper: the first component of each
// pair rebuilds the original subterm, which is exactly what Para carries.
func DistPara[A, FP, FA, T, FT any](
	embed func(FT) T,
	fmapFst func(FP, func(Pair[T, A]) T) FT,
	fmapSnd func(FP, func(Pair[T, A]) A) FA,
) func(FP) Pair[T, FA] {
	return DistZygo[A, FP, FA, T, FT](embed, fmapFst, fmapSnd)
}

// DistGApo builds the law for an either context from a coalgebra that keeps
// unfolding the left branch. A left value is expanded one layer with coalg
// and every child marked left again; a right layer has its children marked
// right. With project as the coalgebra this is DistApo.
func DistGApo[A, B, FB, FA, FE any](
	coalg func(B) FB,
	fmapL func(FB, func(B) Either[B, A]) FE,
	fmapR func(FA, func(A) Either[B, A]) FE,
) func(Either[B, FA]) FE {
	return func(e Either[B, FA]) FE {
		if b, ok := e.Left(); ok {
			return fmapL(coalg(b), Left[B, A])
		}
		fa, _ := e.Right()
		return fmapR(fa, Right[B, A])
	}
}

// DistApo is DistGApo with project as the coalgebra: a grafted subterm is
// unrolled layer by layer, which makes GAna behave exactly like Apo.
func DistApo[A, T, FT, FA, FE any](
	project func(T) FT,
	fmapL func(FT, func(T) Either[T, A]) FE,
	fmapR func(FA, func(A) Either[T, A]) FE,
) func(Either[T, FA]) FE {
	return DistGApo[A, T, FT, FA, FE](project, fmapL, fmapR)
}

// DistHisto builds the law for an attributed-term context from the shape's
// attribute capabilities: attr and layer destructure an attributed node, mk
// rebuilds one. The law peels a layer of attributes into an attributed layer
// of values, recursing through the children's histories. Instantiate the
// attributed type and its value type explicitly. For GCata both sit one
// attribute level above the carrier:
//
//	dist := rec.DistHisto[exp.Attr[exp.Attr[int]], exp.Attr[int]](
//		exp.AttrValue, exp.AttrLayer, exp.Map, exp.Map, exp.NewAttr)
func DistHisto[H, A, FH, FA, FH2, H2 any](
	attr func(H) A,
	layer func(H) FH,
	fmapA func(FH, func(H) A) FA,
	fmapH func(FH, func(H) H2) FH2,
	mk func(FA, FH2) H2,
) func(FH) H2 {
	var dist func(FH) H2
	dist = func(fh FH) H2 {
		return mk(fmapA(fh, attr), fmapH(fh, func(h H) H2 {
			return dist(layer(h))
		}))
	}
	return dist
}

// DistFutu builds the law for a partial-term context from the shape's partial
// capabilities: out splits a partial term into a pending seed or a built
// layer, pure defers a seed, roll wraps a built layer. Instantiate the seed
// type explicitly:
//
//	dist := rec.DistFutu[exp.Partial[int]](exp.PartialOut, exp.Map, exp.Map, exp.Later, exp.Now)
func DistFutu[A, P1, FP1, FA, P2, FP2 any](
	out func(P1) Either[FA, FP1],
	fmapSeed func(FA, func(A) P2) FP2,
	fmapRec func(FP1, func(P1) P2) FP2,
	pure func(A) P2,
	roll func(FP2) P2,
) func(P1) FP2 {
	var dist func(P1) FP2
	dist = func(p P1) FP2 {
		e := out(p)
		if fa, ok := e.Left(); ok {
			return fmapSeed(fa, pure)
		}
		fl, _ := e.Right()
		return fmapRec(fl, func(inner P1) P2 {
			return roll(dist(inner))
		})
	}
	return dist
}
