package exp

import (
	"fmt"
	"math/rand"
)

// Gen returns a pseudo-random closed term of at most the given depth. Every
// Var it emits sits under a Let that binds it, so generated terms always
// evaluate. Deterministic for a fixed source, which keeps property tests
// reproducible.
func Gen(rng *rand.Rand, depth int) Exp {
	return gen(rng, depth, nil)
}

func gen(rng *rand.Rand, depth int, scope []string) Exp {
	if depth <= 0 {
		return genLeaf(rng, scope)
	}
	switch rng.Intn(6) {
	case 0:
		return genLeaf(rng, scope)
	case 1, 2, 3:
		return Mul(gen(rng, depth-1, scope), gen(rng, depth-1, scope))
	default:
		name := fmt.Sprintf("v%d", len(scope))
		return Let(name, gen(rng, depth-1, scope), gen(rng, depth-1, append(scope, name)))
	}
}

func genLeaf(rng *rand.Rand, scope []string) Exp {
	if len(scope) > 0 && rng.Intn(3) == 0 {
		return Var(scope[rng.Intn(len(scope))])
	}
	return Num(rng.Intn(10))
}
