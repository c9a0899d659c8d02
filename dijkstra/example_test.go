package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gosemsim/core"
	"github.com/katalvlaran/gosemsim/dijkstra"
)

// ExampleDijkstra ranks the ancestors of a term by their strongest
// is_a/part_of path.
func ExampleDijkstra() {
	g := core.NewGraph()
	_ = g.AddRelationship("cell", "organelle", core.PartOf)
	_ = g.AddRelationship("organelle", "nucleus", core.IsA)
	_ = g.AddRelationship("cell", "nucleus", core.PartOf)

	weights := map[core.RelationKind]float64{core.IsA: 0.8, core.PartOf: 0.6}
	strength, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source("nucleus"),
		dijkstra.WithFactor(func(k core.RelationKind) float64 { return weights[k] }),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("organelle %.2f\n", strength["organelle"])
	fmt.Printf("cell %.2f via %v\n", strength["cell"], dijkstra.Path(prev, "nucleus", "cell"))
	// Output:
	// organelle 0.80
	// cell 0.60 via [nucleus cell]
}
