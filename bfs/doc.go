// Package bfs provides breadth-first search over an ontology core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore terms in non-decreasing distance (relationship count) from a start term.
//   - Walk Forward (Parent → Child, descendants) or Reverse (Child → Parent, ancestors).
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from term → distance from start
//   - Parent: map from term → its predecessor in the BFS tree
//   - Via: kind of the relationship that discovered each term
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a term is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Filters individual relationships via WithFilterNeighbor or WithKinds.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Shortest is_a/part_of path lengths feed the Pekar similarity measure.
//   - Wavefront walks over ancestors feed Wang S-values.
//
// Determinism
//
//	core.Graph returns parents and children sorted by term ID, and BFS
//	enqueues them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Terms|, E = |Relationships|)
//
//   - Time:   O(V + E log d) (neighbor lists are sorted per expansion)
//   - Memory: O(V)           (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, "GO:0016043",
//	    bfs.WithDirection(bfs.Reverse),
//	    bfs.WithKinds(core.IsA, core.PartOf),
//	    bfs.WithMaxDepth(3),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start term does not exist.
//   - ErrOptionViolation      if invalid Option (negative MaxDepth, unknown Direction, empty kinds).
//   - ErrNeighbors            if the graph lookup fails for any term.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() on cancellation.
package bfs
