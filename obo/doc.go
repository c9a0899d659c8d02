// Package obo reads ontologies in the OBO flat-file format (1.2 and 1.4)
// into a core.Graph.
//
// Only the tags that shape the graph are interpreted:
//
//	format-version, data-version   header
//	id, name, namespace            required per [Term]
//	is_obsolete                    obsolete terms are skipped unless WithIncludeObsolete
//	alt_id                         registered as an alias of the term
//	is_a                           parent with kind is_a
//	relationship                   "<kind> <parent>", kind taken verbatim (part_of, regulates, ...)
//
// Every other tag is ignored. [Typedef] stanzas are skipped; any other stanza
// type is rejected with ErrMalformed. Parents may be referenced before they
// are declared. ParseFile gunzips paths ending in ".gz".
//
// The returned graph is in core.StateBuilt; run lowerbound.Compute before
// querying similarities.
package obo
