// SPDX-License-Identifier: MIT
// Package: gosemsim/builder
//
// impl_random_dag.go - implementation of RandomDAG(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator restricted to forward pairs: each edge i→j
//     with i<j is included independently with probability p. Index order is
//     therefore a topological order and the result is acyclic.
//   - WithSingleRoot: after sampling, every j>0 without a parent is attached
//     under index 0.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewTerms).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0<p<1 (else ErrNeedRandSource).
//   - Adds terms via cfg.idFn in ascending index order (0..n-1).
//
// Complexity:
//   - Time: O(n) terms + O(n²) Bernoulli trials.
//   - Space: O(n) for the parentless marks.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i).
//   - Deterministic outcomes for fixed seed/options due to fixed trial order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gosemsim/core"
)

const (
	methodRandomDAG   = "RandomDAG"
	minRandomDAGTerms = 1
	probMin           = 0.0
	probMax           = 1.0
)

// RandomDAG returns a Constructor that samples a random DAG over n terms
// with independent forward-edge probability p.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < minRandomDAGTerms {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomDAG, n, minRandomDAGTerms, ErrTooFewTerms)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDAG, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDAG, ErrNeedRandSource)
		}

		// 2) Add all terms deterministically via cfg.idFn (IDs 0..n-1).
		ids := make([]string, n)
		var err error
		for i := 0; i < n; i++ {
			if ids[i], err = cfg.addTerm(g, methodRandomDAG, i); err != nil {
				return err
			}
		}

		// 3) Sample forward edges in a stable order.
		hasParent := make([]bool, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !include(cfg, p) {
					continue
				}
				if err = cfg.link(g, methodRandomDAG, ids[i], ids[j]); err != nil {
					return err
				}
				hasParent[j] = true
			}
		}

		// 4) Optionally hang orphans under index 0.
		if cfg.singleRoot {
			for j := 1; j < n; j++ {
				if hasParent[j] {
					continue
				}
				if err = cfg.link(g, methodRandomDAG, ids[0], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// include performs one Bernoulli(p) trial; p ∈ {0,1} needs no RNG.
func include(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
