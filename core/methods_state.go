// SPDX-License-Identifier: MIT
//
// File: methods_state.go
// Role: Readiness state machine and lower bound storage.
// Policy:
//   - StateBuilt → StateLowerBoundsReady happens only through SetLowerBounds.
//   - Any topology mutation returns the graph to StateBuilt.
//   - LowerBound and LowerBounds never expose values of a non-ready graph.

package core

import "fmt"

// State returns the current readiness.
func (g *Graph) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.state
}

// Version returns the mutation counter. Precomputation reads it before
// walking the graph and hands it back to SetLowerBounds.
func (g *Graph) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}

// RequireReady fails with ErrNotReady unless lower bounds are installed.
func (g *Graph) RequireReady() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.state != StateLowerBoundsReady {
		return ErrNotReady
	}

	return nil
}

// LowerBound returns |{id} ∪ descendants(id)|.
//
// Errors:
//   - ErrNotReady: lower bounds are not computed.
//   - ErrEmptyTermID, ErrTermNotFound.
func (g *Graph) LowerBound(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyTermID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.state != StateLowerBoundsReady {
		return 0, ErrNotReady
	}
	lb, ok := g.lowerBounds[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrTermNotFound, id)
	}

	return lb, nil
}

// LowerBounds returns a copy of the lower bound mapping, or nil when the
// graph is not ready.
func (g *Graph) LowerBounds() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.state != StateLowerBoundsReady {
		return nil
	}
	out := make(map[string]int, len(g.lowerBounds))
	for id, lb := range g.lowerBounds {
		out[id] = lb
	}

	return out
}

// SetLowerBounds installs precomputed lower bounds and moves the graph to
// StateLowerBoundsReady.
//
// Implementation:
//   - Stage 1: Under the write lock compare version with the current one (ErrStaleSnapshot).
//   - Stage 2: Check that lb covers exactly the term set with values ≥ 1 (ErrInvalidLowerBounds).
//   - Stage 3: Copy lb, reset the reachability memo and flip the state.
//
// Inputs:
//   - lb: term → lower bound, typically produced by lowerbound.Compute.
//   - version: the Version() observed before lb was computed.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) SetLowerBounds(lb map[string]int, version uint64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if version != g.version {
		return fmt.Errorf("%w: computed at version %d, graph at %d", ErrStaleSnapshot, version, g.version)
	}
	if len(lb) != len(g.terms) {
		return fmt.Errorf("%w: %d values for %d terms", ErrInvalidLowerBounds, len(lb), len(g.terms))
	}
	installed := make(map[string]int, len(lb))
	for id := range g.terms {
		v, ok := lb[id]
		if !ok {
			return fmt.Errorf("%w: missing %q", ErrInvalidLowerBounds, id)
		}
		if v < 1 {
			return fmt.Errorf("%w: %q has %d", ErrInvalidLowerBounds, id, v)
		}
		installed[id] = v
	}

	g.lowerBounds = installed
	g.state = StateLowerBoundsReady
	g.muCache.Lock()
	g.ancestorCache = nil
	g.descendantCache = nil
	g.muCache.Unlock()

	return nil
}
