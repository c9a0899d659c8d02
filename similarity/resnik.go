// SPDX-License-Identifier: MIT
//
// File: resnik.go
// Role: IC-based measures: Resnik, normalized Resnik and Lin.
// Policy:
//   - Derived measures work on the rounded Resnik and IC values.

package similarity

import "github.com/katalvlaran/gosemsim/core"

// Resnik returns IC(lca(a, b)), or Absent when a and b share no ancestor.
//
// Errors:
//   - core.ErrNotReady, core.ErrTermNotFound.
func Resnik(g *core.Graph, a, b string) (Score, error) {
	lca, ok, err := LowestCommonAncestor(g, a, b)
	if err != nil || !ok {
		return Absent(), err
	}
	v, err := InformationContent(g, lca)
	if err != nil {
		return Absent(), err
	}

	return Defined(v), nil
}

// NormResnik divides Resnik by the largest attainable IC, -log2(1/|V|).
// Absent when Resnik is absent or the graph has a single term.
func NormResnik(g *core.Graph, a, b string) (Score, error) {
	res, err := Resnik(g, a, b)
	if err != nil {
		return Absent(), err
	}
	r, ok := res.Value()
	if !ok {
		return Absent(), nil
	}
	m := maxIC(g.TermCount())
	if m == 0 {
		return Absent(), nil
	}

	return Defined(Round(r / m)), nil
}

// Lin returns 2·Resnik / (IC(a) + IC(b)).
// Absent when Resnik is absent or both terms have IC 0.
func Lin(g *core.Graph, a, b string) (Score, error) {
	icA, err := InformationContent(g, a)
	if err != nil {
		return Absent(), err
	}
	icB, err := InformationContent(g, b)
	if err != nil {
		return Absent(), err
	}
	res, err := Resnik(g, a, b)
	if err != nil {
		return Absent(), err
	}
	r, ok := res.Value()
	if !ok || icA+icB == 0 {
		return Absent(), nil
	}

	return Defined(Round(2 * r / (icA + icB))), nil
}
