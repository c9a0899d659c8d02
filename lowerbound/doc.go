// Package lowerbound precomputes, for every term x of an ontology, the size of
// {x} ∪ descendants(x). Information content and every measure built on it
// read these counts, so Compute must run once after the graph is built and
// again after any later mutation.
//
// The count is a true set union: in a DAG where a term is reachable through
// several parents it is counted once, never once per path.
//
// Strategies (WithStrategy):
//
//	StrategyTraversal  per-term ancestor walk, O(V·(V+E)) time, O(V) memory (default)
//	StrategyBitset     reverse-topological bitset DP, O(V·E/64) time, O(V²/64) memory
//
// Both return identical mappings; the bitset strategy additionally reports
// dfs.ErrCycleDetected on cyclic input.
//
// Usage:
//
//	res, err := lowerbound.Compute(g,
//	    lowerbound.WithContext(ctx),
//	    lowerbound.WithStrategy(lowerbound.StrategyBitset),
//	    lowerbound.WithLogger(logger),
//	    lowerbound.WithObserver(m), // *metrics.Metrics
//	)
//
// Errors:
//
//   - ErrGraphNil, ErrOptionViolation, ErrUnknownStrategy (ParseStrategy)
//   - ctx.Err() on cancellation
//   - core.ErrStaleSnapshot when the graph changed during the run
package lowerbound
