// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Score (explicit absence), rounding, relation weights and sentinel errors.
// Policy:
//   - Numerically undefined outcomes (no common ancestor, zero denominator)
//     are Absent scores, never errors and never zero.
//   - Every published value is rounded to three decimals, half away from zero.

package similarity

import (
	"errors"
	"math"
	"strconv"

	"github.com/katalvlaran/gosemsim/core"
)

// ErrUnknownMethod is returned by MethodByName for an unrecognized name.
var ErrUnknownMethod = errors.New("similarity: unknown method")

// precision is the number of decimals kept by Round.
const precision = 1000

// Score is a similarity value that may be absent.
// The zero Score is absent.
type Score struct {
	value   float64
	defined bool
}

// Absent returns the "no comparable signal" score.
func Absent() Score { return Score{} }

// Defined wraps v as a present score. v is stored as given; measures round
// before wrapping.
func Defined(v float64) Score { return Score{value: v, defined: true} }

// Value returns the score and whether it is defined.
func (s Score) Value() (float64, bool) { return s.value, s.defined }

// IsAbsent reports whether the score carries no value.
func (s Score) IsAbsent() bool { return !s.defined }

// String renders the value in shortest form, or "absent".
func (s Score) String() string {
	if !s.defined {
		return "absent"
	}

	return strconv.FormatFloat(s.value, 'f', -1, 64)
}

// Round keeps three decimals, rounding half away from zero. Negative zero
// is normalized to zero.
func Round(x float64) float64 {
	r := math.Round(x*precision) / precision
	if r == 0 {
		return 0
	}

	return r
}

// Weights maps a relation kind to its S-value propagation factor.
// Kinds missing from the map weigh 0 and stop propagation.
type Weights map[core.RelationKind]float64

// DefaultWeights returns {is_a: 0.8, part_of: 0.6}.
func DefaultWeights() Weights {
	return Weights{
		core.IsA:    0.8,
		core.PartOf: 0.6,
	}
}

// factor returns the weight of kind, 0 when unknown.
func (w Weights) factor(kind core.RelationKind) float64 {
	return w[kind]
}
