// SPDX-License-Identifier: MIT
// Package: gosemsim/builder
//
// impl_tree.go - implementation of Tree(branching, depth) constructor.
//
// Contract:
//   - branching ≥ 1 and depth ≥ 0 (else ErrTooFewTerms).
//   - Terms are numbered in BFS order: index 0 is the root and the children
//     of index i are i*b+1 … i*b+b.
//   - depth 0 yields the lone root; the total is Σ_{k=0..depth} b^k terms.
//   - Relationships are emitted parent-major, children ascending.
//
// Complexity:
//   - Time: O(N) terms + O(N-1) relationships, N = total term count.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gosemsim/core"
)

const (
	methodTree   = "Tree"
	minBranching = 1
	minDepth     = 0
	maxTreeTerms = 1 << 22
)

// Tree returns a Constructor that builds a complete rooted tree.
func Tree(branching, depth int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if branching < minBranching {
			return fmt.Errorf("%s: branching=%d < min=%d: %w", methodTree, branching, minBranching, ErrTooFewTerms)
		}
		if depth < minDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", methodTree, depth, minDepth, ErrTooFewTerms)
		}

		// Count terms level by level, refusing absurd sizes before allocating.
		total, level := 1, 1
		for d := 0; d < depth; d++ {
			level *= branching
			total += level
			if total > maxTreeTerms {
				return fmt.Errorf("%s: %d terms exceed limit %d: %w", methodTree, total, maxTreeTerms, ErrConstructFailed)
			}
		}

		ids := make([]string, total)
		var err error
		for i := 0; i < total; i++ {
			if ids[i], err = cfg.addTerm(g, methodTree, i); err != nil {
				return err
			}
		}
		for child := 1; child < total; child++ {
			parent := (child - 1) / branching
			if err = cfg.link(g, methodTree, ids[parent], ids[child]); err != nil {
				return err
			}
		}

		return nil
	}
}
