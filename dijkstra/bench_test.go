package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gosemsim/core"
	"github.com/katalvlaran/gosemsim/dijkstra"
)

// BenchmarkDijkstra_Lattice walks up a layered lattice where every term has
// two parents, one is_a and one part_of.
func BenchmarkDijkstra_Lattice(b *testing.B) {
	const layers, width = 200, 20
	g := core.NewGraph()
	for l := 1; l < layers; l++ {
		for i := 0; i < width; i++ {
			child := fmt.Sprintf("L%d_%d", l, i)
			_ = g.AddRelationship(fmt.Sprintf("L%d_%d", l-1, i), child, core.IsA)
			_ = g.AddRelationship(fmt.Sprintf("L%d_%d", l-1, (i+1)%width), child, core.PartOf)
		}
	}
	factor := func(k core.RelationKind) float64 {
		if k == core.IsA {
			return 0.8
		}
		return 0.6
	}
	src := fmt.Sprintf("L%d_0", layers-1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithFactor(factor))
	}
}
