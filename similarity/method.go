// SPDX-License-Identifier: MIT
//
// File: method.go
// Role: Method type and the name registry used by config and the CLI.

package similarity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/gosemsim/core"
)

// Method is a pairwise term similarity measure.
type Method func(g *core.Graph, a, b string) (Score, error)

// Registered method names.
const (
	MethodResnik     = "resnik"
	MethodNormResnik = "norm_resnik"
	MethodLin        = "lin"
	MethodWang       = "wang"
	MethodPekar      = "pekar"
)

// WangMethod binds w to Wang. A nil w means DefaultWeights.
func WangMethod(w Weights) Method {
	return func(g *core.Graph, a, b string) (Score, error) {
		return Wang(g, a, b, w)
	}
}

// MethodByName resolves a case-insensitive method name. w is only used by "wang".
func MethodByName(name string, w Weights) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MethodResnik:
		return Resnik, nil
	case MethodNormResnik:
		return NormResnik, nil
	case MethodLin:
		return Lin, nil
	case MethodWang:
		return WangMethod(w), nil
	case MethodPekar:
		return Pekar, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// MethodNames lists the registered names in sorted order.
func MethodNames() []string {
	names := []string{MethodResnik, MethodNormResnik, MethodLin, MethodWang, MethodPekar}
	sort.Strings(names)

	return names
}
