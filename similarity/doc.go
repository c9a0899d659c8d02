// Package similarity implements semantic similarity measures between two
// terms of an ontology whose lower bounds have been computed
// (see package lowerbound).
//
// Measures:
//
//	InformationContent   -log2(lb[t] / |V|)
//	LowestCommonAncestor common ancestor-or-self with the smallest lb
//	Resnik               IC(lca)
//	NormResnik           Resnik / -log2(1/|V|)
//	Lin                  2·Resnik / (IC(a) + IC(b))
//	Wang                 shared S-value mass over total S-value mass
//	Pekar                rootc / (ac + bc + rootc), hop counts around the lca
//
// Every function first checks g.RequireReady() and fails with
// core.ErrNotReady, and fails with core.ErrTermNotFound for ids that are not
// canonical terms (resolve aliases with core.Graph.Resolve beforehand).
// Outcomes that are numerically undefined, such as terms without a common
// ancestor or a zero denominator, are reported as an Absent Score rather than
// an error. Absent is not zero and aggregations in package termset skip it.
//
// All values are rounded to three decimals, half away from zero.
//
// S-values follow a breadth-first wavefront over parent edges: a term takes
// its value from the frontier that first reaches it. FixpointSValues offers
// the strongest-path variant (package dijkstra) for callers that need the
// maximum over every path; Wang always uses SValues.
//
// Functions are safe for concurrent use on a ready graph.
package similarity
