// SPDX-License-Identifier: MIT
//
// File: pekar.go
// Role: Pekar edge-counting measure on top of the LCA and forward BFS distances.

package similarity

import (
	"github.com/katalvlaran/gosemsim/bfs"
	"github.com/katalvlaran/gosemsim/core"
)

// Pekar returns rootc / (ac + bc + rootc), where m = lca(a, b),
// ac and bc are the hop counts from m down to a and b, root is the ancestor
// of m with the smallest lower bound (m itself when m has no ancestors) and
// rootc is the hop count from root down to m.
//
// Absent when a and b share no ancestor or the denominator is 0.
//
// Errors:
//   - core.ErrNotReady, core.ErrTermNotFound.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func Pekar(g *core.Graph, a, b string) (Score, error) {
	m, ok, err := LowestCommonAncestor(g, a, b)
	if err != nil || !ok {
		return Absent(), err
	}

	fromM, err := bfs.Distances(g, m)
	if err != nil {
		return Absent(), err
	}
	ac, bc := fromM[a], fromM[b]

	anc, err := g.Ancestors(m)
	if err != nil {
		return Absent(), err
	}
	root, found, err := minLowerBound(g, anc)
	if err != nil {
		return Absent(), err
	}
	rootc := 0
	if found {
		fromRoot, err := bfs.Distances(g, root)
		if err != nil {
			return Absent(), err
		}
		rootc = fromRoot[m]
	}

	den := ac + bc + rootc
	if den == 0 {
		return Absent(), nil
	}

	return Defined(Round(float64(rootc) / float64(den))), nil
}
