package rec_test

import (
	"math/rand"
	"testing"

	"github.com/gitter-badger/matryoshka/internal/exp"
	"github.com/gitter-badger/matryoshka/rec"
)

var benchSink int

func BenchmarkCata(b *testing.B) {
	term := exp.Gen(rand.New(rand.NewSource(42)), 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = rec.Cata(term, exp.Project, exp.Map, sizeAlg)
	}
}

func BenchmarkHylo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = rec.Hylo(1<<20, exp.Map, evalNumMul, halvingCoalg)
	}
}

func BenchmarkHisto(b *testing.B) {
	term := exp.Gen(rand.New(rand.NewSource(42)), 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = rec.Histo(term, exp.Project, exp.Map, exp.NewAttr, attrSizeAlg)
	}
}

func BenchmarkUniverse(b *testing.B) {
	term := exp.Gen(rand.New(rand.NewSource(42)), 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = len(rec.Universe(term, exp.Project, exp.Fold))
	}
}
