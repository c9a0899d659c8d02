// SPDX-License-Identifier: MIT
//
// File: methods_relationships.go
// Role: Relationship lifecycle and adjacency queries (Parents, Children, Roots).
// Determinism:
//   - Relationships() sorts by (Parent, Child).
//   - Parents()/Children() sort by neighbour ID.
// Concurrency:
//   - AddRelationship takes mu for writing; queries take it for reading.

package core

import (
	"fmt"
	"sort"
)

// AddRelationship records the directed relationship parent → child of the given kind.
//
// Implementation:
//   - Stage 1: Validate IDs (ErrEmptyTermID) and reject self-relationships (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, create missing endpoint terms with empty attributes.
//   - Stage 3: Store the kind in both the forward and the reverse index.
//   - Stage 4: Invalidate lower bounds and reachability caches.
//
// Behavior highlights:
//   - One kind per ordered pair: re-adding (parent, child) replaces the kind.
//   - Cycles are not detected here.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddRelationship(parent, child string, kind RelationKind) error {
	if parent == "" || child == "" {
		return ErrEmptyTermID
	}
	if parent == child {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, parent)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureTermLocked(parent)
	g.ensureTermLocked(child)

	out, ok := g.children[parent]
	if !ok {
		out = make(map[string]RelationKind)
		g.children[parent] = out
	}
	if _, exists := out[child]; !exists {
		g.relCount++
	}
	out[child] = kind

	in, ok := g.parents[child]
	if !ok {
		in = make(map[string]RelationKind)
		g.parents[child] = in
	}
	in[parent] = kind

	g.invalidateLocked()

	return nil
}

// invalidateLocked bumps the version and drops every derived statistic.
// Caller must hold mu for writing.
func (g *Graph) invalidateLocked() {
	g.version++
	g.state = StateBuilt
	g.lowerBounds = nil

	g.muCache.Lock()
	g.ancestorCache = nil
	g.descendantCache = nil
	g.muCache.Unlock()
}

// Relationships returns every relationship sorted by (Parent, Child).
// Complexity: O(E log E).
func (g *Graph) Relationships() []Relationship {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Relationship, 0, g.relCount)
	for parent, kids := range g.children {
		for child, kind := range kids {
			out = append(out, Relationship{Parent: parent, Child: child, Kind: kind})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Parent != out[j].Parent {
			return out[i].Parent < out[j].Parent
		}
		return out[i].Child < out[j].Child
	})

	return out
}

// RelationshipCount returns |E|.
func (g *Graph) RelationshipCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.relCount
}

// Parents returns the direct predecessors of id with the connecting kinds.
//
// Errors:
//   - ErrEmptyTermID, ErrTermNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Parents(id string) ([]Link, error) {
	return g.links(id, true)
}

// Children returns the direct successors of id with the connecting kinds.
//
// Errors:
//   - ErrEmptyTermID, ErrTermNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Children(id string) ([]Link, error) {
	return g.links(id, false)
}

func (g *Graph) links(id string, up bool) ([]Link, error) {
	if id == "" {
		return nil, ErrEmptyTermID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.terms[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrTermNotFound, id)
	}
	index := g.children
	if up {
		index = g.parents
	}
	adj := index[id]
	out := make([]Link, 0, len(adj))
	for nbr, kind := range adj {
		out = append(out, Link{ID: nbr, Kind: kind})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Roots returns the terms without parents, sorted ascending.
// An ontology usually has one root per namespace.
func (g *Graph) Roots() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []string
	for id := range g.terms {
		if len(g.parents[id]) == 0 {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}
