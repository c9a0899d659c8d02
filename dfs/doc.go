// Package dfs implements depth-first algorithms on an ontology core.Graph:
// topological ordering and cycle witnesses.
//
// What:
//
//   - TopologicalSort: linear ordering of terms in which every parent precedes
//     its children, returning ErrCycleDetected if a cycle exists. Ties between
//     independent terms are broken by ID, so the order is reproducible.
//   - FindCycle: one directed cycle as a closed sequence [v0 … v0], rotated to
//     start at its smallest ID; nil when the graph is acyclic.
//
// Why:
//
//   - lowerbound's bitset strategy folds descendant sets leaves-first, which
//     needs a topological order.
//   - Ontology loaders and the CLI verify the acyclicity every similarity
//     measure assumes.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - TopoOption:  WithCancelContext(ctx)
//
// Complexity:
//
//   - TopologicalSort: Time O(V + E log d), Memory O(V)
//   - FindCycle:       Time O(V + E log d + L²), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  cycle discovered by TopologicalSort
//   - ErrNeighborFetch  child lookup failed
//   - context.Canceled  traversal canceled via context
package dfs
