// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: PairwiseFunc, Recorder hook, functional options and sentinel errors.

package termset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gosemsim/core"
	"github.com/katalvlaran/gosemsim/similarity"
)

// Sentinel errors for term-set aggregation.
var (
	// ErrEmptyTermSet is returned when either input set has no terms.
	ErrEmptyTermSet = errors.New("termset: term set is empty")

	// ErrUnknownStrategy is returned by StrategyByName for an unrecognized name.
	ErrUnknownStrategy = errors.New("termset: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("termset: invalid option supplied")
)

// PairwiseFunc scores one pair of terms.
type PairwiseFunc func(a, b string) (similarity.Score, error)

// Bind fixes the graph argument of a similarity.Method.
func Bind(g *core.Graph, m similarity.Method) PairwiseFunc {
	return func(a, b string) (similarity.Score, error) {
		return m(g, a, b)
	}
}

// SimFunc calls fn and turns any error into an absent score: a pair that
// cannot be compared carries no signal.
func SimFunc(fn PairwiseFunc, a, b string) similarity.Score {
	s, err := fn(a, b)
	if err != nil {
		return similarity.Absent()
	}

	return s
}

// Recorder observes aggregation work. Implementations must be safe for
// concurrent use when WithConcurrency exceeds 1.
type Recorder interface {
	// ObserveComparison is called once per evaluated pair.
	ObserveComparison(defined bool)
	// ObserveAggregation is called once per completed aggregation.
	ObserveAggregation(strategy string, elapsed time.Duration)
}

// Option configures an aggregation via functional arguments. Invalid values
// are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the resolved aggregation configuration.
type Options struct {
	// Ctx cancels outstanding pair evaluations.
	Ctx context.Context

	// Concurrency bounds the number of pairs evaluated at once.
	Concurrency int

	// Recorder, if non-nil, receives per-pair and per-aggregation observations.
	Recorder Recorder

	err error
}

// DefaultOptions returns Background context, sequential evaluation and no recorder.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Concurrency: 1,
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

// WithConcurrency sets the number of concurrent pair evaluations; n must be ≥ 1.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: concurrency %d < 1", ErrOptionViolation, n)
			return
		}
		o.Concurrency = n
	}
}

// WithRecorder registers a Recorder (e.g. *metrics.Metrics).
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}
