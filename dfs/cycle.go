// Package dfs implements cycle witnesses for ontology graphs. An ontology is
// assumed acyclic by every similarity measure; FindCycle lets loaders and the
// CLI verify that assumption and report an offending path.
//
// Complexity:
//
//   - Time:   O(V + E log d + L²) (L = cycle length, for rotation)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gosemsim/core"
)

// cycleFinder keeps the DFS path stack for cycle reconstruction.
type cycleFinder struct {
	graph *core.Graph
	opts  topoOptions
	state map[string]int
	path  []string
	found []string
}

// FindCycle returns one directed cycle of g as a closed sequence
// [v0, v1, ..., v0], rotated so that v0 is its smallest ID.
// It returns (nil, nil) for an acyclic graph and ErrGraphNil for a nil graph.
func FindCycle(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	terms := g.Terms()
	f := &cycleFinder{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(terms)),
		path:  make([]string, 0, 16),
	}
	for _, v := range terms {
		if f.state[v] != White {
			continue
		}
		if err := f.visit(v); err != nil {
			return nil, err
		}
		if f.found != nil {
			return rotate(f.found), nil
		}
	}

	return nil, nil
}

// visit stops descending as soon as a back-edge closes a cycle.
func (f *cycleFinder) visit(id string) error {
	select {
	case <-f.opts.ctx.Done():
		return f.opts.ctx.Err()
	default:
	}
	f.state[id] = Gray
	f.path = append(f.path, id)

	children, err := f.graph.Children(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, c := range children {
		switch f.state[c.ID] {
		case White:
			if err = f.visit(c.ID); err != nil {
				return err
			}
			if f.found != nil {
				return nil
			}
		case Gray:
			idx := indexOf(f.path, c.ID)
			f.found = append([]string(nil), f.path[idx:]...)
			return nil
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return nil
}

// rotate turns an open cycle into a closed one starting at its minimal ID.
func rotate(open []string) []string {
	start := 0
	for i := range open {
		if open[i] < open[start] {
			start = i
		}
	}
	closed := make([]string, 0, len(open)+1)
	closed = append(closed, open[start:]...)
	closed = append(closed, open[:start]...)

	return append(closed, closed[0])
}

// indexOf returns the first index of val in s, or -1 if not found.
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}
