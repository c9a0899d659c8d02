// Package dijkstra defines core types and configuration options for the
// strongest-path search over an ontology graph.
//
// Every relationship carries a strength factor in [0, 1] chosen by its
// kind. The strength of a path is the product of its factors and the search
// returns, for every term reachable from Source, the strongest path found.
// Products never grow along a path, so the usual Dijkstra argument holds with
// "largest strength first" in place of "smallest distance first".
//
// Options:
//
//	– Source:      ID of the starting term (must be non-empty and present).
//	– Direction:   Reverse walks towards ancestors (default), Forward towards descendants.
//	– Factor:      strength of a relationship kind; unknown kinds may return 0.
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MinStrength: terms whose best strength falls below this value are not explored.
//
// Errors (sentinel):
//
//	– ErrEmptySource      if the provided source ID is empty.
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrVertexNotFound   if the source term does not exist in the graph.
//	– ErrFactorOutOfRange if Factor maps a kind present in the graph outside [0, 1].
//	– ErrOptionViolation  if an option was given an invalid value.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gosemsim/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source term ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source term does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrFactorOutOfRange indicates a relationship kind whose factor lies
	// outside [0, 1]. Such a factor would let a longer path grow stronger.
	ErrFactorOutOfRange = errors.New("dijkstra: strength factor outside [0, 1]")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Direction selects which relationship index the search follows.
type Direction int

const (
	// Reverse walks Child → Parent, i.e. towards ancestors.
	Reverse Direction = iota
	// Forward walks Parent → Child, i.e. towards descendants.
	Forward
)

// FactorFunc returns the strength of a relationship of the given kind.
type FactorFunc func(kind core.RelationKind) float64

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source      string     // The ID of the source term
	Direction   Direction  // Reverse (ancestors) or Forward (descendants)
	Factor      FactorFunc // Strength of each relationship kind
	ReturnPath  bool       // Whether to return the predecessor map
	MinStrength float64    // Terms weaker than this are not explored

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting term ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithDirection selects Reverse (ancestors) or Forward (descendants).
// Any other value is an ErrOptionViolation.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if d != Forward && d != Reverse {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, int(d))
			return
		}
		o.Direction = d
	}
}

// WithFactor sets the per-kind strength. A nil fn is an ErrOptionViolation.
func WithFactor(fn FactorFunc) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil factor function", ErrOptionViolation)
			return
		}
		o.Factor = fn
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMinStrength stops the search at terms whose best strength is below floor.
// floor must lie in [0, 1]; other values are an ErrOptionViolation.
func WithMinStrength(floor float64) Option {
	return func(o *Options) {
		if floor < 0 || floor > 1 {
			o.err = fmt.Errorf("%w: MinStrength %v outside [0, 1]", ErrOptionViolation, floor)
			return
		}
		o.MinStrength = floor
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source term ID.
//
// Defaults:
//   - Source:      <as passed> (validated in Dijkstra).
//   - Direction:   Reverse.
//   - Factor:      every kind has strength 1.
//   - ReturnPath:  false.
//   - MinStrength: 0 (explore everything reachable).
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		Direction:   Reverse,
		Factor:      func(core.RelationKind) float64 { return 1 },
		ReturnPath:  false,
		MinStrength: 0,
	}
}
