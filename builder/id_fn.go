// Package builder: ID schemes for generated terms. Real ontologies use
// prefixed ids (CURIEIDFn); the short schemes keep test fixtures readable.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps the zero-based index of a generated term to its id.
// The same idx must always give the same id.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// CURIEIDFn returns OBO-style compact identifiers with a zero-padded local
// part, e.g. CURIEIDFn("GO", 7)(42) → "GO:0000042".
// Panics if idx < 0.
func CURIEIDFn(prefix string, width int) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("CURIEIDFn: idx must be ≥ 0, got %d", idx))
		}
		return fmt.Sprintf("%s:%0*d", prefix, width, idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithGOIDs sets the ID scheme to Gene Ontology identifiers ("GO:0000000").
func WithGOIDs() BuilderOption {
	return WithIDScheme(CURIEIDFn("GO", 7))
}
