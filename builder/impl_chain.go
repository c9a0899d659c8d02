// SPDX-License-Identifier: MIT
// Package: gosemsim/builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewTerms).
//   - Adds terms via cfg.idFn in ascending index order (0..n-1).
//   - Emits relationships (i-1) → i for i=1..n-1 in stable increasing order,
//     so index 0 is the single root and n-1 the single leaf.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) terms + O(n-1) relationships.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gosemsim/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodChain   = "Chain"
	minChainTerms = 1
)

// Chain returns a Constructor that builds a linear is_a-style chain of n terms.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minChainTerms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainTerms, ErrTooFewTerms)
		}

		prev, err := cfg.addTerm(g, methodChain, 0)
		if err != nil {
			return err
		}
		var cur string
		for i := 1; i < n; i++ {
			if cur, err = cfg.addTerm(g, methodChain, i); err != nil {
				return err
			}
			if err = cfg.link(g, methodChain, prev, cur); err != nil {
				return err
			}
			prev = cur
		}

		return nil
	}
}
