package lowerbound_test

import (
	"testing"

	"github.com/katalvlaran/gosemsim/builder"
	"github.com/katalvlaran/gosemsim/lowerbound"
)

// BenchmarkCompute compares both strategies on a 2000-term random DAG.
func BenchmarkCompute(b *testing.B) {
	g, err := builder.BuildOntology(
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithSingleRoot()},
		builder.RandomDAG(2000, 0.002),
	)
	if err != nil {
		b.Fatal(err)
	}

	for _, s := range []lowerbound.Strategy{lowerbound.StrategyTraversal, lowerbound.StrategyBitset} {
		s := s
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := lowerbound.Compute(g, lowerbound.WithStrategy(s)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
