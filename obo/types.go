// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Header, Result, options and sentinel errors for the OBO reader.

package obo

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/gosemsim/core"
)

// Sentinel errors for OBO parsing.
var (
	// ErrMalformed indicates a line or stanza that does not follow OBO 1.2/1.4 syntax.
	ErrMalformed = errors.New("obo: malformed input")

	// ErrMissingField indicates a required header tag or term tag is absent.
	ErrMissingField = errors.New("obo: missing required field")

	// ErrInconsistentAltID indicates an alt_id that is also declared as a term id.
	ErrInconsistentAltID = errors.New("obo: alternate id is also a term id")
)

// Header carries the document-level tags.
type Header struct {
	FormatVersion string
	DataVersion   string
}

// Result is a parsed ontology.
type Result struct {
	Header Header
	// Graph holds terms, relationships and alt_id aliases; lower bounds are
	// not computed.
	Graph *core.Graph
	// Terms counts loaded [Term] stanzas.
	Terms int
	// Obsolete counts [Term] stanzas skipped as obsolete.
	Obsolete int
	// Typedefs counts skipped [Typedef] stanzas.
	Typedefs int
}

// Option configures Parse.
type Option func(*Options)

// Options holds the resolved parser configuration.
type Options struct {
	// IncludeObsolete keeps terms tagged is_obsolete: true.
	IncludeObsolete bool
	// Logger receives one info record per parsed document.
	Logger *slog.Logger
}

// DefaultOptions skips obsolete terms and discards logs.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithIncludeObsolete keeps obsolete terms in the graph.
func WithIncludeObsolete() Option {
	return func(o *Options) {
		o.IncludeObsolete = true
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
