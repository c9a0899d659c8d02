// SPDX-License-Identifier: MIT
// Package: gosemsim/builder
//
// config.go : internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn       = DefaultIDFn ("0","1","2",...)
//   • rng        = nil          (pure/deterministic unless seeded)
//   • kinds      = [is_a]
//   • namespace  = ""
//   • singleRoot = false

package builder

import (
	"fmt"
	"math/rand" // RNG for stochastic builders

	"github.com/katalvlaran/gosemsim/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Term ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Relationship kinds cycled (or drawn) for generated edges.
	kinds []core.RelationKind
	// Namespace attribute for generated terms.
	namespace string
	// RandomDAG: hang orphans under index 0.
	singleRoot bool
	// edgeSeq counts emitted edges for round-robin kinds; shared by
	// pointer so all constructors of one build continue the sequence.
	edgeSeq *int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		rng:     nil,
		kinds:   []core.RelationKind{core.IsA},
		edgeSeq: new(int),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nextKind returns the kind for the next emitted edge.
func (c builderConfig) nextKind() core.RelationKind {
	if len(c.kinds) == 1 {
		return c.kinds[0]
	}
	if c.rng != nil {
		return c.kinds[c.rng.Intn(len(c.kinds))]
	}
	k := c.kinds[*c.edgeSeq%len(c.kinds)]
	*c.edgeSeq++

	return k
}

// addTerm inserts term idx with the configured namespace.
func (c builderConfig) addTerm(g *core.Graph, method string, idx int) (string, error) {
	id := c.idFn(idx)
	if err := g.AddTerm(id, core.Attributes{Namespace: c.namespace}); err != nil {
		return "", fmt.Errorf("%s: AddTerm(%s): %w", method, id, err)
	}

	return id, nil
}

// link emits parent→child with the next configured kind.
func (c builderConfig) link(g *core.Graph, method, parent, child string) error {
	kind := c.nextKind()
	if err := g.AddRelationship(parent, child, kind); err != nil {
		return fmt.Errorf("%s: AddRelationship(%s→%s, %s): %w", method, parent, child, kind, err)
	}

	return nil
}
