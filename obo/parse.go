// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: Line-oriented OBO reader feeding a core.Graph.
// Policy:
//   - Header tags are read until the first stanza; format-version is required.
//   - [Term] stanzas become terms; [Typedef] stanzas are skipped; any other
//     stanza type is rejected.
//   - "is_a: X" adds X → term with kind is_a; "relationship: R X" adds
//     X → term with kind R. Trailing "{...}" modifiers and "! comments" are ignored.
//   - alt_id values are registered as aliases once every stanza is read.

package obo

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/katalvlaran/gosemsim/core"
)

const maxLineBytes = 1 << 20

var (
	stanzaRe = regexp.MustCompile(`^\[([A-Za-z_]+)\]$`)
	tagRe    = regexp.MustCompile(`^([A-Za-z0-9_-]+):\s*(.*)$`)
)

// stanza is one [Term] block as read from the file.
type stanza struct {
	line          int
	id            string
	name          string
	namespace     string
	obsolete      bool
	altIDs        []string
	relationships []core.Relationship
}

// ParseFile opens path and parses it; files ending in ".gz" are gunzipped.
func ParseFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obo: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("obo: %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return Parse(r, opts...)
}

// Parse reads an OBO document into a new core.Graph.
//
// Implementation:
//   - Stage 1: Header tags until the first "[Stanza]" line.
//   - Stage 2: Accumulate each stanza; on the next header line or EOF,
//     validate it (ErrMissingField) and add its term and relationships.
//   - Stage 3: Register alt_ids (ErrInconsistentAltID if one is a term id).
//
// Errors:
//   - ErrMalformed, ErrMissingField, ErrInconsistentAltID, read errors.
func Parse(r io.Reader, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &parser{
		opts:   o,
		res:    &Result{Graph: core.NewGraph()},
		altIDs: make(map[string]string),
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	for sc.Scan() {
		p.lineNo++
		if err := p.line(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obo: read: %w", err)
	}
	if err := p.flush(); err != nil {
		return nil, err
	}
	if p.res.Header.FormatVersion == "" {
		return nil, fmt.Errorf("%w: format-version", ErrMissingField)
	}
	if err := p.registerAliases(); err != nil {
		return nil, err
	}

	g := p.res.Graph
	o.Logger.Info("ontology parsed",
		"format_version", p.res.Header.FormatVersion,
		"data_version", p.res.Header.DataVersion,
		"terms", g.TermCount(),
		"relationships", g.RelationshipCount(),
		"obsolete_skipped", p.res.Obsolete,
		"aliases", len(p.altIDs),
	)

	return p.res, nil
}

type parser struct {
	opts   Options
	res    *Result
	lineNo int

	kind    string // current stanza type, "" while in the header
	current *stanza
	altIDs  map[string]string
}

func (p *parser) line(raw string) error {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "!") {
		return nil
	}

	if m := stanzaRe.FindStringSubmatch(text); m != nil {
		if err := p.flush(); err != nil {
			return err
		}
		switch m[1] {
		case "Term":
			p.current = &stanza{line: p.lineNo}
		case "Typedef":
			p.res.Typedefs++
		default:
			return fmt.Errorf("%w: line %d: unexpected stanza [%s]", ErrMalformed, p.lineNo, m[1])
		}
		p.kind = m[1]
		return nil
	}

	m := tagRe.FindStringSubmatch(text)
	if m == nil {
		return fmt.Errorf("%w: line %d: %q", ErrMalformed, p.lineNo, text)
	}
	tag, value := m[1], m[2]

	switch p.kind {
	case "":
		switch tag {
		case "format-version":
			p.res.Header.FormatVersion = value
		case "data-version":
			p.res.Header.DataVersion = value
		}
		return nil
	case "Term":
		return p.termTag(tag, value)
	default:
		return nil
	}
}

func (p *parser) termTag(tag, value string) error {
	s := p.current
	switch tag {
	case "id":
		s.id = value
	case "name":
		s.name = value
	case "namespace":
		s.namespace = value
	case "is_obsolete":
		s.obsolete = value == "true"
	case "alt_id":
		s.altIDs = append(s.altIDs, firstField(value))
	case "is_a":
		target := firstField(value)
		if target == "" {
			return fmt.Errorf("%w: line %d: empty is_a", ErrMalformed, p.lineNo)
		}
		s.relationships = append(s.relationships, core.Relationship{Parent: target, Kind: core.IsA})
	case "relationship":
		fields := strings.Fields(stripComment(value))
		if len(fields) < 2 {
			return fmt.Errorf("%w: line %d: relationship needs a type and a target", ErrMalformed, p.lineNo)
		}
		s.relationships = append(s.relationships, core.Relationship{Parent: fields[1], Kind: core.RelationKind(fields[0])})
	}

	return nil
}

// flush validates and loads the pending [Term] stanza, if any.
func (p *parser) flush() error {
	s := p.current
	p.current = nil
	if s == nil {
		return nil
	}

	for _, f := range [...]struct{ tag, value string }{{"id", s.id}, {"name", s.name}, {"namespace", s.namespace}} {
		if f.value == "" {
			return fmt.Errorf("%w: %s in [Term] at line %d", ErrMissingField, f.tag, s.line)
		}
	}
	if s.obsolete && !p.opts.IncludeObsolete {
		p.res.Obsolete++
		return nil
	}

	g := p.res.Graph
	attrs := core.Attributes{Name: s.name, Namespace: s.namespace, Obsolete: s.obsolete}
	if err := g.AddTerm(s.id, attrs); err != nil {
		return fmt.Errorf("obo: term at line %d: %w", s.line, err)
	}
	for _, rel := range s.relationships {
		if err := g.AddRelationship(rel.Parent, s.id, rel.Kind); err != nil {
			return fmt.Errorf("obo: %s: %w", s.id, err)
		}
	}
	for _, alt := range s.altIDs {
		p.altIDs[alt] = s.id
	}
	p.res.Terms++

	return nil
}

func (p *parser) registerAliases() error {
	alts := make([]string, 0, len(p.altIDs))
	for alt := range p.altIDs {
		alts = append(alts, alt)
	}
	sort.Strings(alts)

	g := p.res.Graph
	for _, alt := range alts {
		if g.HasTerm(alt) {
			return fmt.Errorf("%w: %q", ErrInconsistentAltID, alt)
		}
		if err := g.AddAlias(alt, p.altIDs[alt]); err != nil {
			return fmt.Errorf("obo: alt_id %q: %w", alt, err)
		}
	}

	return nil
}

// stripComment drops a trailing "! comment".
func stripComment(v string) string {
	if i := strings.Index(v, "!"); i >= 0 {
		v = v[:i]
	}

	return strings.TrimSpace(v)
}

// firstField returns the first whitespace-separated token of v without its comment.
func firstField(v string) string {
	fields := strings.Fields(stripComment(v))
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}
