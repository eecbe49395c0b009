package rec

// GCata is the generalized fold the named schemes specialize. A context W is
// threaded alongside every child's folded value; choosing W and the matching
// distributive law recovers the named schemes:
//
//   - identity context (Identity/Apply capabilities): Cata
//   - pair-with-subterm context (DistPara, PairMap/PairDup/Snd): Para
//   - pair-with-helper context (DistZygo, PairMap/PairDup/Snd): Zygo
//   - attributed-term context (DistHisto, shape attr capabilities): Histo
//
// The capability arguments instantiate W at the child positions the traversal
// passes through: wmap maps over W, duplicate nests it, extract unwraps it,
// and dist commutes one shape layer past it. A law must preserve child order
// and count and respect the context's composition; that is not checked at
// runtime, only by the equivalence properties in the tests.
func GCata[T, FT, A, WA, WWA, FWA, FWWA, WFWA any](
	t T,
	project func(T) FT,
	fmap func(FT, func(T) WWA) FWWA,
	dist func(FWWA) WFWA,
	wmap func(WFWA, func(FWA) A) WA,
	duplicate func(WA) WWA,
	extract func(WFWA) FWA,
	alg func(FWA) A,
) A {
	var loop func(T) WFWA
	loop = func(t T) WFWA {
		return dist(fmap(project(t), func(c T) WWA {
			return duplicate(wmap(loop(c), alg))
		}))
	}
	return alg(extract(loop(t)))
}

// GAna is the generalized unfold dual to GCata. A context N wraps every seed
// the coalgebra emits; choosing N and the matching distributive law recovers
// Ana (identity context), Apo (either context with DistApo) and Futu
// (partial-term context with DistFutu). pure injects a seed into the context,
// join flattens a nested context, nmap maps over it, and dist commutes the
// context past one shape layer.
func GAna[A, NA, NNA, FNA, NFNA, FNNA, FT, T any](
	seed A,
	embed func(FT) T,
	fmap func(FNNA, func(NNA) T) FT,
	dist func(NFNA) FNNA,
	nmap func(NA, func(A) FNA) NFNA,
	join func(NNA) NA,
	pure func(A) NA,
	coalg func(A) FNA,
) T {
	var loop func(NA) T
	loop = func(na NA) T {
		return embed(fmap(dist(nmap(na, coalg)), func(nna NNA) T {
			return loop(join(nna))
		}))
	}
	return loop(pure(seed))
}
