// Package dijkstra finds the strongest path between ontology terms.
//
// Overview:
//
//   - Each relationship kind maps to a strength factor in [0, 1]; the
//     strength of a path is the product of its factors.
//   - Dijkstra computes the strongest path from a single source term to all
//     reachable terms in O((V + E) log V) time using a max-heap.
//   - The walk follows parents (Reverse, the default) or children (Forward).
//
// When to use:
//
//   - Wang S-values: the contribution of an ancestor to a term is the
//     strongest is_a/part_of path between them (see similarity.FixpointSValues).
//   - Any "how strongly is A implied by B" question over weighted relationships.
//
// Key features:
//
//   - Functional options: Source, WithDirection, WithFactor, WithReturnPath, WithMinStrength.
//   - ReturnPath: returns a predecessor map; Path rebuilds one route from it.
//   - MinStrength: stops expanding once every pending term is weaker than the bound.
//     Terms discovered before the cut-off keep their best strength so far.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound for bad inputs.
//   - ErrFactorOutOfRange if a factor would let a path gain strength.
//   - ErrOptionViolation for invalid option values.
//
// Example:
//
//	strength, prev, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source("GO:0006915"),
//	    dijkstra.WithFactor(func(k core.RelationKind) float64 { return weights[k] }),
//	    dijkstra.WithReturnPath(),
//	)
package dijkstra
