// SPDX-License-Identifier: MIT
//
// File: traversal.go
// Role: StrategyTraversal. For every term n: credit n once, then credit each
//       ancestor of n once. Ancestor sets are true reachable sets, so a term
//       reachable through several routes is credited once per descendant.

package lowerbound

import (
	"context"

	"github.com/katalvlaran/gosemsim/core"
)

func countTraversal(ctx context.Context, g *core.Graph) (map[string]int, error) {
	terms := g.Terms()
	lb := make(map[string]int, len(terms))
	for _, n := range terms {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		lb[n]++
		anc, err := g.Ancestors(n)
		if err != nil {
			return nil, err
		}
		for a := range anc {
			lb[a]++
		}
	}

	return lb, nil
}
