// SPDX-License-Identifier: MIT
// Package: gosemsim/builder
//
// options.go : functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for stochastic builders

	"github.com/katalvlaran/gosemsim/core"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic term ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithKinds sets the relationship kinds emitted by generated edges.
// Without an RNG the kinds are assigned round-robin in emission order;
// with one, each edge draws uniformly. Panics on an empty list.
func WithKinds(kinds ...core.RelationKind) BuilderOption {
	if len(kinds) == 0 {
		panic("builder: WithKinds()")
	}
	cp := append([]core.RelationKind(nil), kinds...)
	return func(c *builderConfig) {
		c.kinds = cp
	}
}

// WithNamespace stamps every generated term with the namespace attribute.
func WithNamespace(ns string) BuilderOption {
	return func(c *builderConfig) {
		c.namespace = ns
	}
}

// WithSingleRoot makes RandomDAG attach every parentless term other than
// index 0 under index 0, so any two terms share a common ancestor.
func WithSingleRoot() BuilderOption {
	return func(c *builderConfig) {
		c.singleRoot = true
	}
}
