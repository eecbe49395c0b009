package exp

import (
	"fmt"

	"github.com/gitter-badger/matryoshka/rec"
)

// binding pairs a bound term with the scope it was defined in, so a Var is
// always resolved against its binding's own enclosing bindings.
type binding struct {
	term  Exp
	scope map[string]binding
}

// Resolve substitutes away every Let and Var in e by a top-down rewrite that
// threads lexical scope through ancestors, returning a closed term built from
// literals and products alone. Bound terms are only resolved where a Var
// references them. env seeds the outermost scope and may be nil.
func Resolve(e Exp, env map[string]int) (Exp, error) {
	scope := make(map[string]binding, len(env))
	for name, n := range env {
		scope[name] = binding{term: Num(n)}
	}
	return rec.TopDownCataM(e, scope, Project, Embed, Traverse[Exp, Exp], resolveBindings)
}

// Eval evaluates e to an integer: Resolve, then reduce bottom-up.
func Eval(e Exp, env map[string]int) (int, error) {
	resolved, err := Resolve(e, env)
	if err != nil {
		return 0, err
	}
	return rec.CataM(resolved, Project, Traverse[Exp, int], evalLayer)
}

// resolveBindings rewrites away Let and Var nodes. A Let extends a copied
// scope and continues with its body; a Var is replaced by its binding, and
// the walk continues under the binding's captured scope. The loop re-examines
// each replacement so chains of bindings resolve in one step. Every Var hop
// moves to a scope captured strictly earlier in the walk, so the loop cannot
// revisit a binding.
func resolveBindings(scope map[string]binding, t Exp) (map[string]binding, Exp, error) {
	for {
		switch v := Project(t).(type) {
		case LetF[Exp]:
			next := make(map[string]binding, len(scope)+1)
			for name, b := range scope {
				next[name] = b
			}
			next[v.Name] = binding{term: v.Bind, scope: scope}
			scope = next
			t = v.Body
		case VarF[Exp]:
			b, ok := scope[v.Name]
			if !ok {
				return nil, Exp{}, fmt.Errorf("exp: unbound variable %q", v.Name)
			}
			scope, t = b.scope, b.term
		default:
			return scope, t, nil
		}
	}
}

func evalLayer(l ExpF[int]) (int, error) {
	switch v := l.(type) {
	case NumF[int]:
		return v.N, nil
	case VarF[int]:
		return 0, fmt.Errorf("exp: unbound variable %q", v.Name)
	case LetF[int]:
		return 0, fmt.Errorf("exp: unresolved binding %q", v.Name)
	case MulF[int]:
		return v.L * v.R, nil
	}
	return 0, fmt.Errorf("exp: unexpected layer %T", l)
}

// Vars returns the distinct variable names referenced anywhere in e, in first
// occurrence order. Bound and unbound references are not distinguished.
func Vars(e Exp) []string {
	seen := make(map[string]bool)
	var names []string
	for _, name := range rec.Collect(e, Project, Fold[Exp, []Exp], func(t Exp) (string, bool) {
		if v, ok := Project(t).(VarF[Exp]); ok {
			return v.Name, true
		}
		return "", false
	}) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
