// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Term, Relationship, Set, State and Graph declarations, sentinel errors
//       and the NewGraph constructor.
// Concurrency:
//   - mu guards terms, adjacency, aliases, lower bounds, state and version.
//   - muCache guards the memoized reachability sets; it is only taken while mu
//     is held (read or write), so lock order is always mu -> muCache.

package core

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for ontology graph operations.
var (
	// ErrEmptyTermID indicates that a term identifier is the empty string.
	ErrEmptyTermID = errors.New("core: term ID is empty")

	// ErrTermNotFound indicates a query referenced a term absent from the graph.
	// It is the lookup error class: callers passed an id that is not canonical
	// or simply not part of the ontology.
	ErrTermNotFound = errors.New("core: term not found")

	// ErrNotReady indicates a query needs lower bounds that have not been computed.
	// It is the invalid-operation class: run lowerbound.Compute first.
	ErrNotReady = errors.New("core: lower bounds not computed")

	// ErrLoopNotAllowed indicates an attempt to relate a term to itself.
	ErrLoopNotAllowed = errors.New("core: self-relationship not allowed")

	// ErrAliasConflict indicates an alternate id collides with a canonical term id.
	ErrAliasConflict = errors.New("core: alias collides with a term ID")

	// ErrStaleSnapshot indicates the graph changed between reading its version
	// and installing lower bounds computed from that version.
	ErrStaleSnapshot = errors.New("core: graph changed during precomputation")

	// ErrInvalidLowerBounds indicates a lower bound mapping that does not cover
	// every term with a positive count.
	ErrInvalidLowerBounds = errors.New("core: invalid lower bounds")
)

// RelationKind tags a relationship between two terms.
type RelationKind string

// Relation kinds found in the Gene Ontology. Any other string is accepted.
const (
	IsA                 RelationKind = "is_a"
	PartOf              RelationKind = "part_of"
	Regulates           RelationKind = "regulates"
	PositivelyRegulates RelationKind = "positively_regulates"
	NegativelyRegulates RelationKind = "negatively_regulates"
)

// Attributes describe a term. They are fixed once the term is added.
type Attributes struct {
	Name      string
	Namespace string
	Obsolete  bool
}

// Term is a node of the ontology.
type Term struct {
	ID string
	Attributes
}

// Relationship is a directed edge Parent → Child tagged with its kind.
// Parent is the more general term.
type Relationship struct {
	Parent string
	Child  string
	Kind   RelationKind
}

// Link is one adjacency entry as seen from a term: the neighbour ID and the
// kind of the relationship connecting them.
type Link struct {
	ID   string
	Kind RelationKind
}

// Set is an unordered set of term IDs.
type Set map[string]struct{}

// Has reports membership.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the set cardinality.
func (s Set) Len() int { return len(s) }

// Sorted returns the members in ascending lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Intersect returns a new set holding the members present in both s and o.
// Complexity: O(min(|s|,|o|)).
func (s Set) Intersect(o Set) Set {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set, len(small))
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}

	return out
}

func (s Set) clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// State is the readiness of a Graph.
type State uint8

const (
	// StateBuilt means terms and relationships may still change and no
	// statistics are available.
	StateBuilt State = iota
	// StateLowerBoundsReady means lower bounds are installed and the graph
	// is a read-only snapshot.
	StateLowerBoundsReady
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateBuilt:
		return "built"
	case StateLowerBoundsReady:
		return "lower-bounds-ready"
	default:
		return "unknown"
	}
}

// Graph is an in-memory ontology DAG.
//
// Relationships are stored twice: children[parent][child] = kind and
// parents[child][parent] = kind, so both successor and predecessor lookups
// are O(1). Acyclicity is assumed, not validated.
type Graph struct {
	mu      sync.RWMutex // guards everything below except the caches
	muCache sync.Mutex   // guards ancestorCache and descendantCache

	terms    map[string]*Term
	implicit map[string]struct{}                // created by AddRelationship, attributes pending
	children map[string]map[string]RelationKind // parent → child → kind
	parents  map[string]map[string]RelationKind // child → parent → kind
	aliases  map[string]string                  // alternate ID → canonical ID
	relCount int

	lowerBounds map[string]int
	state       State
	version     uint64 // incremented on every topology mutation

	ancestorCache   map[string]Set
	descendantCache map[string]Set
}

// NewGraph creates an empty ontology graph in StateBuilt.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		terms:    make(map[string]*Term),
		implicit: make(map[string]struct{}),
		children: make(map[string]map[string]RelationKind),
		parents:  make(map[string]map[string]RelationKind),
		aliases:  make(map[string]string),
		state:    StateBuilt,
	}
}
