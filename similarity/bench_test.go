package similarity_test

import (
	"testing"

	"github.com/katalvlaran/gosemsim/builder"
	"github.com/katalvlaran/gosemsim/lowerbound"
	"github.com/katalvlaran/gosemsim/similarity"
)

// BenchmarkMethods measures each measure on leaf pairs of a 1000-term DAG.
func BenchmarkMethods(b *testing.B) {
	g, err := builder.BuildOntology(
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithSingleRoot()},
		builder.RandomDAG(1000, 0.004),
	)
	if err != nil {
		b.Fatal(err)
	}
	if _, err = lowerbound.Compute(g); err != nil {
		b.Fatal(err)
	}
	terms := g.Terms()
	x, y := terms[len(terms)-1], terms[len(terms)/2]

	for _, name := range similarity.MethodNames() {
		m, err := similarity.MethodByName(name, nil)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := m(g, x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
