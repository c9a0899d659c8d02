// Package core provides the ontology graph used by every similarity measure:
// a thread-safe, in-memory directed acyclic graph of terms connected by typed
// relationships, plus an alias table and the precomputed lower bound statistics.
//
// The Graph G = (V,E) stores:
//
//   - Terms with immutable attributes (name, namespace, obsolete flag)
//   - Relationships Parent → Child tagged with a RelationKind ("is_a", "part_of", …)
//   - A forward index children[parent][child] and a reverse index parents[child][parent],
//     giving O(1) successor and predecessor lookups
//   - An alias table mapping alternate IDs to canonical IDs (resolution is the caller's job)
//   - lower bounds: |{t} ∪ descendants(t)| per term, installed by package lowerbound
//
// Lifecycle:
//
//	NewGraph()                      → StateBuilt
//	AddTerm / AddRelationship / AddAlias
//	lowerbound.Compute(g)           → StateLowerBoundsReady (via SetLowerBounds)
//	similarity queries              (read-only, any number of goroutines)
//
// Mutating a ready graph drops it back to StateBuilt and discards lower
// bounds; queries needing them then fail with ErrNotReady until the
// precomputation runs again.
//
// Core Methods:
//
//	// Build
//	AddTerm(id string, attrs Attributes) error                 // O(1)
//	AddRelationship(parent, child string, kind RelationKind) error // O(1)
//	AddAlias(alt, canonical string) error                      // O(1)
//
//	// Query
//	HasTerm, Term, Terms, TermCount, Resolve, Aliases
//	Parents(id), Children(id) ([]Link, error)                  // O(d log d)
//	Relationships() []Relationship                             // O(E log E)
//	Roots() []string                                           // O(V log V)
//	Ancestors(id), Descendants(id), AncestorsOrSelf(id) (Set, error) // O(V+E), memoized when ready
//
//	// Statistics
//	State(), Version(), RequireReady()
//	LowerBound(id) (int, error), LowerBounds() map[string]int
//	SetLowerBounds(lb map[string]int, version uint64) error
//
// Errors:
//
//	ErrEmptyTermID        – zero-length term ID
//	ErrTermNotFound       – ID is not a term (lookup error)
//	ErrNotReady           – lower bounds not computed (invalid operation)
//	ErrLoopNotAllowed     – parent == child
//	ErrAliasConflict      – alternate ID collides with a term ID
//	ErrStaleSnapshot      – graph mutated while lower bounds were computed
//	ErrInvalidLowerBounds – mapping misses a term or holds a value < 1
//
// Acyclicity is assumed and never validated here; dfs.TopologicalSort reports
// cycles for callers who need that guarantee.
package core
