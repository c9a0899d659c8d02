// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Strategy enum, Observer hook, functional options, Result and sentinel errors.

package lowerbound

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Sentinel errors for precomputation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("lowerbound: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lowerbound: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
	ErrUnknownStrategy = errors.New("lowerbound: unknown strategy")
)

// Strategy selects how descendant sets are counted. All strategies return
// identical mappings.
type Strategy int

const (
	// StrategyTraversal walks the ancestors of every term and credits each
	// one, O(V·(V+E)) time and O(V) extra memory.
	StrategyTraversal Strategy = iota
	// StrategyBitset folds descendant bitsets in reverse topological order,
	// O(V·E/64) time and O(V²/64) memory. Fails on cyclic graphs.
	StrategyBitset
)

// String returns "traversal" or "bitset".
func (s Strategy) String() string {
	switch s {
	case StrategyTraversal:
		return "traversal"
	case StrategyBitset:
		return "bitset"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a case-insensitive name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "traversal":
		return StrategyTraversal, nil
	case "bitset":
		return StrategyBitset, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Observer receives one observation per successful precomputation.
type Observer interface {
	ObservePrecompute(strategy string, terms int, elapsed time.Duration)
}

// Option configures Compute via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Compute is invoked.
type Option func(*Options)

// Options holds the resolved configuration for Compute.
type Options struct {
	// Ctx allows cancellation and deadlines; checked between terms.
	Ctx context.Context

	// Strategy picks the counting algorithm.
	Strategy Strategy

	// Logger receives a debug record per run.
	Logger *slog.Logger

	// Observer, if non-nil, receives duration and size of each run.
	Observer Observer

	err error
}

// DefaultOptions returns Background context, StrategyTraversal, a discarding
// logger and no observer.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: StrategyTraversal,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the counting algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyTraversal && s != StrategyBitset {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an Observer (e.g. *metrics.Metrics).
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// Result describes a completed precomputation.
type Result struct {
	// LowerBounds maps every term to |descendants| + 1.
	LowerBounds map[string]int
	// Terms is |V| at the time of the run.
	Terms int
	// Duration is the wall time spent counting.
	Duration time.Duration
	// Strategy is the algorithm that produced LowerBounds.
	Strategy Strategy
}
