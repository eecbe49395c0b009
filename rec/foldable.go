package rec

// Foldable utilities derived from the shape's fold capability. Every helper
// funnels through one depth-first pre-order walk so that ordering is fixed in
// a single place: a term comes before its children, children in layer order.

// Children returns the immediate sub-terms of t in layer order.
func Children[T, FT any](
	t T,
	project func(T) FT,
	fold func(FT, []T, func([]T, T) []T) []T,
) []T {
	return fold(project(t), nil, func(acc []T, c T) []T {
		return append(acc, c)
	})
}

// IsLeaf reports whether t has no children.
func IsLeaf[T, FT any](
	t T,
	project func(T) FT,
	fold func(FT, []T, func([]T, T) []T) []T,
) bool {
	return len(Children(t, project, fold)) == 0
}

// walkPre visits t and then each child's subtree, depth-first. A false from
// visit stops the walk; the return value reports whether it ran to the end.
func walkPre[T, FT any](
	t T,
	project func(T) FT,
	fold func(FT, []T, func([]T, T) []T) []T,
	visit func(T) bool,
) bool {
	if !visit(t) {
		return false
	}
	for _, c := range Children(t, project, fold) {
		if !walkPre(c, project, fold, visit) {
			return false
		}
	}
	return true
}

// Universe returns t followed by the universe of each child, depth-first
// pre-order.
func Universe[T, FT any](
	t T,
	project func(T) FT,
	fold func(FT, []T, func([]T, T) []T) []T,
) []T {
	var out []T
	walkPre(t, project, fold, func(n T) bool {
		out = append(out, n)
		return true
	})
	return out
}

// FoldMap maps f over the universe of t and combines the results with an
// associative combine, starting from empty.
func FoldMap[M, T, FT any](
	t T,
	project func(T) FT,
	fold func(FT, []T, func([]T, T) []T) []T,
	empty M,
	combine func(M, M) M,
	f func(T) M,
) M {
	acc := empty
	walkPre(t, project, fold, func(n T) bool {
		acc = combine(acc, f(n))
		return true
	})
	return acc
}

// Any reports whether pred holds for some term in the universe of t. The
// walk stops at the first hit.
func Any[T, FT any](
	t T,
	project func(T) FT,
	fold func(FT, []T, func([]T, T) []T) []T,
	pred func(T) bool,
) bool {
	return !walkPre(t, project, fold, func(n T) bool {
		return !pred(n)
	})
}

// All reports whether pred holds for every term in the universe of t. The
// walk stops at the first miss.
func All[T, FT any](
	t T,
	project func(T) FT,
	fold func(FT, []T, func([]T, T) []T) []T,
	pred func(T) bool,
) bool {
	return walkPre(t, project, fold, pred)
}

// Contains reports whether sub occurs in the universe of t under the term's
// structural equality.
func Contains[T comparable, FT any](
	t T,
	project func(T) FT,
	fold func(FT, []T, func([]T, T) []T) []T,
	sub T,
) bool {
	return Any(t, project, fold, func(n T) bool { return n == sub })
}

// Collect applies pick to every term in the universe of t and returns the
// accepted values in visit order.
func Collect[R, T, FT any](
	t T,
	project func(T) FT,
	fold func(FT, []T, func([]T, T) []T) []T,
	pick func(T) (R, bool),
) []R {
	var out []R
	walkPre(t, project, fold, func(n T) bool {
		if r, ok := pick(n); ok {
			out = append(out, r)
		}
		return true
	})
	return out
}
