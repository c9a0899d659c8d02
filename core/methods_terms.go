// SPDX-License-Identifier: MIT
//
// File: methods_terms.go
// Role: Term lifecycle, term queries and the alias table.
// Determinism:
//   - Terms() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Mutations take mu for writing; queries take it for reading.

package core

import (
	"fmt"
	"sort"
)

// AddTerm inserts a term with its attributes.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyTermID).
//   - Stage 2: If the term exists and was declared before, do nothing.
//   - Stage 3: If the term was created implicitly by AddRelationship, attach attrs.
//   - Stage 4: Otherwise register a new term and invalidate statistics.
//
// Behavior highlights:
//   - Idempotent for declared terms: the first attributes win.
//   - Adding a new term to a ready graph drops it back to StateBuilt,
//     because |V| takes part in every information content value.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddTerm(id string, attrs Attributes) error {
	if id == "" {
		return ErrEmptyTermID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if t, ok := g.terms[id]; ok {
		if _, pending := g.implicit[id]; pending {
			t.Attributes = attrs
			delete(g.implicit, id)
		}
		return nil
	}

	g.terms[id] = &Term{ID: id, Attributes: attrs}
	g.invalidateLocked()

	return nil
}

// ensureTermLocked registers id with empty attributes if it is missing.
// Caller must hold mu for writing.
func (g *Graph) ensureTermLocked(id string) {
	if _, ok := g.terms[id]; ok {
		return
	}
	g.terms[id] = &Term{ID: id}
	g.implicit[id] = struct{}{}
}

// HasTerm reports whether id is a term of the graph (empty ID ⇒ false).
// Aliases are not considered; use Resolve first.
func (g *Graph) HasTerm(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.terms[id]

	return ok
}

// Term returns a copy of the term record.
//
// Errors:
//   - ErrEmptyTermID: if id == "".
//   - ErrTermNotFound: if id is not a term.
func (g *Graph) Term(id string) (Term, error) {
	if id == "" {
		return Term{}, ErrEmptyTermID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	t, ok := g.terms[id]
	if !ok {
		return Term{}, fmt.Errorf("%w: %q", ErrTermNotFound, id)
	}

	return *t, nil
}

// Terms returns all term IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Terms() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.terms))
	for id := range g.terms {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// TermCount returns |V|.
func (g *Graph) TermCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.terms)
}

// AddAlias maps an alternate identifier onto a canonical one.
//
// The canonical term does not need to exist yet (ontology files declare
// alternate ids inside the stanza of their replacement). Registering an
// alias never changes topology, so readiness is preserved.
//
// Errors:
//   - ErrEmptyTermID: if alt or canonical is empty.
//   - ErrAliasConflict: if alt is itself a term ID, or alt == canonical.
func (g *Graph) AddAlias(alt, canonical string) error {
	if alt == "" || canonical == "" {
		return ErrEmptyTermID
	}
	if alt == canonical {
		return fmt.Errorf("%w: %q", ErrAliasConflict, alt)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.terms[alt]; ok {
		return fmt.Errorf("%w: %q", ErrAliasConflict, alt)
	}
	g.aliases[alt] = canonical

	return nil
}

// Resolve returns the canonical ID for id: id itself when it is a term,
// the alias target when id is a known alternate ID whose target is a term,
// and ("", false) otherwise.
func (g *Graph) Resolve(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.terms[id]; ok {
		return id, true
	}
	if canonical, ok := g.aliases[id]; ok {
		if _, exists := g.terms[canonical]; exists {
			return canonical, true
		}
	}

	return "", false
}

// Aliases returns a copy of the alias table.
func (g *Graph) Aliases() map[string]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]string, len(g.aliases))
	for alt, canonical := range g.aliases {
		out[alt] = canonical
	}

	return out
}
