// Package dfs provides depth-first algorithms on ontology graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of terms such that for
// every relationship Parent→Child, Parent appears before Child.
// If the graph contains a cycle, ErrCycleDetected is returned.
// If neighbor iteration fails, ErrNeighborFetch is returned.
//
// Complexity:
//
//   - Time:   O(V + E log d) (each term and relationship visited once; child lists are sorted)
//   - Memory: O(V)           (recursion stack and state map)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gosemsim/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the graph being sorted
	opts  topoOptions    // traversal options (cancellation)
	state map[string]int // visitation state: 0=White,1=Gray,2=Black
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all terms in g.
// Roots come first, leaves last; ties are broken by term ID so the
// result is deterministic.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected.
// If neighbor lookup fails, returns ErrNeighborFetch.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	terms := g.Terms() // sorted list of term IDs
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(terms)), // all terms start as White (0)
		order: make([]string, 0, len(terms)),    // capacity hint for post-order
	}
	// 4. Drive DFS from every unvisited term, in reverse ID order so that
	//    the reversed post-order lists lower IDs first among independent terms.
	for i := len(terms) - 1; i >= 0; i-- {
		if sorter.state[terms[i]] == White {
			if err := sorter.visit(terms[i]); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id string) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: if already Gray, we found a back-edge
	if t.state[id] == Gray {
		return fmt.Errorf("%w: through %q", ErrCycleDetected, id)
	}
	// 3. Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}
	// 4. Mark as in-progress (Gray)
	t.state[id] = Gray

	// 5. Retrieve children
	children, err := t.graph.Children(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	// 6. Explore each child, highest ID first (see step 4 of TopologicalSort)
	for i := len(children) - 1; i >= 0; i-- {
		if err = t.visit(children[i].ID); err != nil {
			return err
		}
	}

	// 7. Mark as fully explored (Black)
	t.state[id] = Black
	// 8. Record in post-order list
	t.order = append(t.order, id)

	return nil
}
