package rec_test

import (
	"fmt"

	"github.com/gitter-badger/matryoshka/internal/exp"
	"github.com/gitter-badger/matryoshka/rec"
)

func ExampleCata() {
	tree := exp.Mul(exp.Mul(exp.Num(2), exp.Num(3)), exp.Num(4))

	product := rec.Cata(tree, exp.Project, exp.Map, func(l exp.ExpF[int]) int {
		switch v := l.(type) {
		case exp.NumF[int]:
			return v.N
		case exp.MulF[int]:
			return v.L * v.R
		default:
			return 0
		}
	})

	fmt.Println(product)
	// Output: 24
}

func ExampleHylo() {
	// Factor 96 into a product of twos and fold it back together without
	// ever holding the intermediate tree.
	factor := func(x int) exp.ExpF[int] {
		if x > 2 && x%2 == 0 {
			return exp.MulF[int]{L: 2, R: x / 2}
		}
		return exp.NumF[int]{N: x}
	}
	multiply := func(l exp.ExpF[int]) int {
		switch v := l.(type) {
		case exp.NumF[int]:
			return v.N
		case exp.MulF[int]:
			return v.L * v.R
		default:
			return 0
		}
	}

	fmt.Println(rec.Hylo(96, exp.Map, multiply, factor))
	// Output: 96
}

func ExampleTransCata() {
	tree := exp.Mul(exp.Mul(exp.Num(2), exp.Num(3)), exp.Var("x"))

	// Reduce every product of two literals, bottom-up.
	folded := rec.TransCata(tree, exp.Project, exp.Embed, exp.Map, func(l exp.ExpF[exp.Exp]) exp.ExpF[exp.Exp] {
		v, ok := l.(exp.MulF[exp.Exp])
		if !ok {
			return l
		}
		ln, lok := exp.Project(v.L).(exp.NumF[exp.Exp])
		rn, rok := exp.Project(v.R).(exp.NumF[exp.Exp])
		if lok && rok {
			return exp.NumF[exp.Exp]{N: ln.N * rn.N}
		}
		return l
	})

	fmt.Println(folded)
	// Output: (6 * x)
}

func ExampleAnnotate() {
	tree := exp.Mul(exp.Num(2), exp.Mul(exp.Num(3), exp.Num(4)))

	size := func(l exp.ExpF[exp.Attr[int]]) int {
		return exp.Fold(l, 1, func(acc int, c exp.Attr[int]) int { return acc + c.Value })
	}
	attributed := rec.Annotate(tree, exp.Project, exp.Map, exp.NewAttr, size)

	fmt.Println(attributed.Value)
	// Output: 5
}

func ExampleHoles() {
	layer := exp.Project(exp.Mul(exp.Num(0), exp.Num(1)))

	for _, h := range rec.Holes(layer, exp.Map, exp.Fold) {
		fmt.Println(exp.Embed(h.Replace(exp.Num(9))))
	}
	// Output:
	// (9 * 1)
	// (0 * 9)
}

func ExampleUniverse() {
	tree := exp.Let("x", exp.Num(2), exp.Mul(exp.Var("x"), exp.Num(3)))

	for _, sub := range rec.Universe(tree, exp.Project, exp.Fold) {
		fmt.Println(sub)
	}
	// Output:
	// (let x = 2 in (x * 3))
	// 2
	// (x * 3)
	// x
	// 3
}
