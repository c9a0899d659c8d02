// SPDX-License-Identifier: MIT
//
// File: ic.go
// Role: Information content and lowest common ancestor.
// Determinism:
//   - LCA ties on lower bound are broken by the smallest term id.

package similarity

import (
	"math"

	"github.com/katalvlaran/gosemsim/core"
)

// InformationContent returns -log2(lb[t] / |V|) rounded to three decimals.
// A root whose lower bound covers the whole graph has IC 0.
//
// Errors:
//   - core.ErrNotReady, core.ErrTermNotFound.
func InformationContent(g *core.Graph, t string) (float64, error) {
	lb, err := g.LowerBound(t)
	if err != nil {
		return 0, err
	}

	return ic(lb, g.TermCount()), nil
}

func ic(lb, total int) float64 {
	return Round(-math.Log2(float64(lb) / float64(total)))
}

// maxIC is the information content of a single-term lower bound set.
func maxIC(total int) float64 {
	return -math.Log2(1 / float64(total))
}

// LowestCommonAncestor returns the common ancestor-or-self of a and b with
// the smallest lower bound (the most informative shared term). ok is false
// when a and b share no ancestor.
//
// Implementation:
//   - Stage 1: RequireReady, then AncestorsOrSelf of both terms.
//   - Stage 2: Scan the intersection for the minimal (lb, id) pair.
//
// Errors:
//   - core.ErrNotReady, core.ErrTermNotFound.
//
// Complexity:
//   - Time O(V+E) per uncached term, Space O(V).
func LowestCommonAncestor(g *core.Graph, a, b string) (string, bool, error) {
	if err := g.RequireReady(); err != nil {
		return "", false, err
	}
	sa, err := g.AncestorsOrSelf(a)
	if err != nil {
		return "", false, err
	}
	sb, err := g.AncestorsOrSelf(b)
	if err != nil {
		return "", false, err
	}

	best, ok, err := minLowerBound(g, sa.Intersect(sb))
	if err != nil {
		return "", false, err
	}

	return best, ok, nil
}

// minLowerBound picks the member of s with the smallest lower bound,
// smallest id on ties.
func minLowerBound(g *core.Graph, s core.Set) (string, bool, error) {
	var (
		best   string
		bestLB int
		found  bool
	)
	for id := range s {
		lb, err := g.LowerBound(id)
		if err != nil {
			return "", false, err
		}
		if !found || lb < bestLB || (lb == bestLB && id < best) {
			best, bestLB, found = id, lb, true
		}
	}

	return best, found, nil
}
