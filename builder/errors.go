// SPDX-License-Identifier: MIT
// Package: gosemsim/builder
//
// errors.go : sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainTerms, ErrTooFewTerms)
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority when several validations fail:
//   • ErrTooFewTerms       : size/domain checks first (n, branching, depth).
//   • ErrInvalidProbability: then probability ranges.
//   • ErrNeedRandSource    : then RNG presence for stochastic builders.
//   • ErrConstructFailed   : nil graph / nil constructor / core rejection.

package builder

import "errors"

// ErrTooFewTerms indicates that a numeric parameter (n, branching, depth)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewTerms = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed
// (nil graph, nil constructor, or the graph rejected a term/relationship).
var ErrConstructFailed = errors.New("builder: construction failed")
