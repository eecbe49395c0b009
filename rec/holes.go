package rec

// Hole is one child position of a layer: the child sitting there and a
// function that rebuilds the whole layer with exactly that position replaced.
// Every other position is passed through unchanged.
type Hole[T, FT any] struct {
	Child   T
	Replace func(T) FT
}

// Holes returns one Hole per child position of layer, in layer order. It
// relies on the map capability visiting children in layer order, the same
// contract the schemes rely on; each Replace counts positions during the
// rebuild and swaps only its own.
func Holes[T, FT any](
	layer FT,
	fmap func(FT, func(T) T) FT,
	fold func(FT, []T, func([]T, T) []T) []T,
) []Hole[T, FT] {
	children := fold(layer, nil, func(acc []T, c T) []T {
		return append(acc, c)
	})
	holes := make([]Hole[T, FT], 0, len(children))
	for i, c := range children {
		holes = append(holes, Hole[T, FT]{
			Child: c,
			Replace: func(repl T) FT {
				j := -1
				return fmap(layer, func(old T) T {
					j++
					if j == i {
						return repl
					}
					return old
				})
			},
		})
	}
	return holes
}
