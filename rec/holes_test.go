package rec_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitter-badger/matryoshka/internal/exp"
	"github.com/gitter-badger/matryoshka/rec"
)

func TestHolesIdentity(t *testing.T) {
	t.Parallel()

	layer := exp.Project(exp.Mul(exp.Num(0), exp.Num(1)))
	holes := rec.Holes(layer, exp.Map, exp.Fold)
	require.Len(t, holes, 2)

	assert.Equal(t, exp.Num(0), holes[0].Child)
	assert.Equal(t, exp.Num(1), holes[1].Child)

	// Putting the same child back rebuilds the layer exactly.
	assert.Equal(t, layer, holes[0].Replace(exp.Num(0)))

	// Replacing position 0 leaves position 1 untouched.
	swapped := holes[0].Replace(exp.Num(2))
	assert.Equal(t, exp.Project(exp.Mul(exp.Num(2), exp.Num(1))), swapped)
}

func TestHolesOnBindings(t *testing.T) {
	t.Parallel()

	layer := exp.Project(exp.Let("x", exp.Num(1), exp.Var("x")))
	holes := rec.Holes(layer, exp.Map, exp.Fold)
	require.Len(t, holes, 2)

	assert.Equal(t, exp.Num(1), holes[0].Child)
	assert.Equal(t, exp.Var("x"), holes[1].Child)

	// The bound name survives a child replacement.
	got := holes[1].Replace(exp.Num(9))
	assert.Equal(t, exp.Project(exp.Let("x", exp.Num(1), exp.Num(9))), got)
}

func TestHolesOnLeaves(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rec.Holes(exp.Project(exp.Num(3)), exp.Map, exp.Fold))
	assert.Empty(t, rec.Holes(exp.Project(exp.Var("x")), exp.Map, exp.Fold))
}

func TestHolesPositionalIdentity(t *testing.T) {
	t.Parallel()

	marker := exp.Var("hole")

	rng := rand.New(rand.NewSource(30))
	for i := 0; i < 100; i++ {
		layer := exp.Project(exp.Gen(rng, 4))
		children := rec.Children(exp.Embed(layer), exp.Project, exp.Fold)
		holes := rec.Holes(layer, exp.Map, exp.Fold)
		require.Len(t, holes, len(children))

		for i, h := range holes {
			assert.Equal(t, children[i], h.Child)
			assert.Equal(t, layer, h.Replace(h.Child))

			replaced := h.Replace(marker)
			after := rec.Children(exp.Embed(replaced), exp.Project, exp.Fold)
			require.Len(t, after, len(children))
			for j := range after {
				if j == i {
					assert.Equal(t, marker, after[j])
				} else {
					assert.Equal(t, children[j], after[j])
				}
			}
		}
	}
}
