// SPDX-License-Identifier: MIT
// Package: gosemsim/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildOntology(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Acyclicity: every factory emits edges from a lower index to a higher one,
//     so the produced ontology is a DAG by construction.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gosemsim/core"
)

// Constructor applies a deterministic ontology mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildOntology creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildOntology: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewTerms, ErrInvalidProbability, ...).
func BuildOntology(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildOntology: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to extend a
// fixture with extra relationships after a first precomputation.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Edges(rels...)            explicit relationships, kinds as given (impl_edges.go)
// Pairs(pairs...)           explicit "parent→child" pairs, kinds from cfg (impl_edges.go)
// Chain(n)                  0→1→…→n-1 (impl_chain.go)
// Tree(branching, depth)    complete rooted tree in BFS numbering (impl_tree.go)
// RandomDAG(n, p)           Bernoulli(p) edge i→j for every i<j (impl_random_dag.go)
