// SPDX-License-Identifier: MIT
//
// File: compute.go
// Role: Compute entry point: option resolution, strategy dispatch and the
//       single built → ready transition through core.Graph.SetLowerBounds.
// Determinism:
//   - The mapping depends only on the graph topology; strategies agree exactly.
// Concurrency:
//   - Compute reads the graph through its locked accessors. A concurrent
//     mutation is detected by the version check and reported as
//     core.ErrStaleSnapshot; the graph then stays in StateBuilt.

package lowerbound

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gosemsim/core"
)

// Compute counts, for every term x, the size of {x} ∪ descendants(x) and
// installs the mapping on g, moving it to core.StateLowerBoundsReady.
//
// Implementation:
//   - Stage 1: Resolve options (ErrOptionViolation) and read g.Version().
//   - Stage 2: Count with the selected Strategy, honoring ctx between terms.
//   - Stage 3: g.SetLowerBounds(lb, version); notify Observer and log.
//
// Running Compute twice on an unchanged graph yields identical mappings.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation.
//   - ctx.Err() on cancellation or deadline.
//   - dfs.ErrCycleDetected (StrategyBitset only).
//   - core.ErrStaleSnapshot if g was mutated during the run.
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	version := g.Version()
	start := time.Now()

	var (
		lb  map[string]int
		err error
	)
	switch o.Strategy {
	case StrategyBitset:
		lb, err = countBitset(o.Ctx, g)
	default:
		lb, err = countTraversal(o.Ctx, g)
	}
	if err != nil {
		o.Logger.Warn("lower bound precomputation failed", "strategy", o.Strategy.String(), "error", err)
		return nil, fmt.Errorf("lowerbound: %s: %w", o.Strategy, err)
	}

	if err = g.SetLowerBounds(lb, version); err != nil {
		return nil, fmt.Errorf("lowerbound: %w", err)
	}
	elapsed := time.Since(start)

	if o.Observer != nil {
		o.Observer.ObservePrecompute(o.Strategy.String(), len(lb), elapsed)
	}
	o.Logger.Debug("lower bounds computed",
		"strategy", o.Strategy.String(),
		"terms", len(lb),
		"version", version,
		"duration", elapsed,
	)

	return &Result{
		LowerBounds: lb,
		Terms:       len(lb),
		Duration:    elapsed,
		Strategy:    o.Strategy,
	}, nil
}
