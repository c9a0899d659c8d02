// SPDX-License-Identifier: MIT
//
// File: gaf.go
// Role: GAF 2.x gene association reader producing per-entity term sets.
// Policy:
//   - The first line must be the "!gaf-version:" header; other "!" lines are comments.
//   - Records are tab-separated with at least 12 columns.
//   - A NOT-qualified record is dropped unless WithNotQualified, but its
//     entity is still registered.

package gaf

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// Sentinel errors for GAF parsing.
var (
	// ErrMissingHeader indicates the document does not start with "!gaf-version:".
	ErrMissingHeader = errors.New("gaf: missing gaf-version header")

	// ErrMalformedRecord indicates a record with too few columns or an empty id.
	ErrMalformedRecord = errors.New("gaf: malformed record")
)

const (
	headerPrefix = "!gaf-version:"
	minColumns   = 12
	maxLineBytes = 1 << 20
)

// Column indexes (0-based) of the fields kept by the reader.
const (
	colObjectID   = 1
	colSymbol     = 2
	colQualifier  = 3
	colTermID     = 4
	colEvidence   = 6
	colObjectName = 9
	colObjectType = 11
)

// Annotation links an entity to one ontology term.
type Annotation struct {
	TermID       string
	Qualifiers   []string
	EvidenceCode string
}

// Entity is an annotated gene product.
type Entity struct {
	ID     string
	Symbol string
	Name   string
	Type   string
	// Annotations is keyed by term id; a later record for the same term
	// replaces the earlier one.
	Annotations map[string]Annotation
}

// Terms returns the annotated term ids in ascending order.
func (e *Entity) Terms() []string {
	out := make([]string, 0, len(e.Annotations))
	for id := range e.Annotations {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Annotations is a parsed GAF document.
type Annotations struct {
	Version  string
	Entities map[string]*Entity
	// Dropped counts NOT-qualified records that were skipped.
	Dropped int
}

// Entity returns the entity with the given DB object id.
func (a *Annotations) Entity(id string) (*Entity, bool) {
	e, ok := a.Entities[id]
	return e, ok
}

// IDs returns the entity ids in ascending order.
func (a *Annotations) IDs() []string {
	out := make([]string, 0, len(a.Entities))
	for id := range a.Entities {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Option configures Parse.
type Option func(*Options)

// Options holds the resolved reader configuration.
type Options struct {
	// NotQualified keeps records whose qualifier contains NOT.
	NotQualified bool
	// Logger receives one info record per parsed document.
	Logger *slog.Logger
}

// DefaultOptions drops NOT-qualified records and discards logs.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithNotQualified keeps NOT-qualified records.
func WithNotQualified() Option {
	return func(o *Options) { o.NotQualified = true }
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// ParseFile opens path and parses it; files ending in ".gz" are gunzipped.
func ParseFile(path string, opts ...Option) (*Annotations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gaf: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gaf: %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return Parse(r, opts...)
}

// Parse reads a GAF document.
//
// Errors:
//   - ErrMissingHeader, ErrMalformedRecord, read errors.
func Parse(r io.Reader, opts ...Option) (*Annotations, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("gaf: read: %w", err)
		}
		return nil, ErrMissingHeader
	}
	head := strings.TrimSpace(sc.Text())
	if !strings.HasPrefix(head, headerPrefix) {
		return nil, fmt.Errorf("%w: got %q", ErrMissingHeader, head)
	}

	a := &Annotations{
		Version:  strings.TrimSpace(strings.TrimPrefix(head, headerPrefix)),
		Entities: make(map[string]*Entity),
	}
	lineNo, records := 1, 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := a.add(line, o); err != nil {
			return nil, fmt.Errorf("%w: line %d", err, lineNo)
		}
		records++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gaf: read: %w", err)
	}

	o.Logger.Info("annotations parsed",
		"gaf_version", a.Version,
		"records", records,
		"entities", len(a.Entities),
		"not_qualified_dropped", a.Dropped,
	)

	return a, nil
}

func (a *Annotations) add(line string, o Options) error {
	row := strings.Split(line, "\t")
	if len(row) < minColumns {
		return fmt.Errorf("%w: %d columns, need %d", ErrMalformedRecord, len(row), minColumns)
	}
	uid, termID := row[colObjectID], row[colTermID]
	if uid == "" || termID == "" {
		return fmt.Errorf("%w: empty object or term id", ErrMalformedRecord)
	}

	e, ok := a.Entities[uid]
	if !ok {
		e = &Entity{
			ID:          uid,
			Symbol:      row[colSymbol],
			Name:        row[colObjectName],
			Type:        row[colObjectType],
			Annotations: make(map[string]Annotation),
		}
		a.Entities[uid] = e
	}

	var qualifiers []string
	if q := row[colQualifier]; q != "" {
		qualifiers = strings.Split(q, "|")
	}
	if !o.NotQualified && hasNot(qualifiers) {
		a.Dropped++
		return nil
	}
	e.Annotations[termID] = Annotation{
		TermID:       termID,
		Qualifiers:   qualifiers,
		EvidenceCode: row[colEvidence],
	}

	return nil
}

func hasNot(qualifiers []string) bool {
	for _, q := range qualifiers {
		if q == "NOT" {
			return true
		}
	}

	return false
}
