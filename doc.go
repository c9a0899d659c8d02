// Package gosemsim is an in-memory toolkit for semantic similarity over
// ontologies such as the Gene Ontology: from the graph itself to comparing
// gene products by their annotations.
//
// What is inside?
//
//	core/         ontology Graph: terms, typed relationships, alt-id aliases,
//	              readiness state and memoized ancestor/descendant sets
//	bfs/, dfs/    traversals; dfs also provides topological order and cycles
//	dijkstra/     strongest (maximum product) path over weighted relationships
//	builder/      synthetic ontologies (chains, trees, random DAGs) for tests
//	lowerbound/   the precomputation: |descendants(t)| + 1 for every term
//	similarity/   IC, LCA, Resnik, normalized Resnik, Lin, Wang, Pekar
//	termset/      max, average and best-match average over term sets
//	obo/, gaf/    OBO ontology and GAF annotation readers
//	config/       YAML configuration for the gosemsim command
//	metrics/      Prometheus instrumentation
//
// The flow is one way:
//
//	obo.Parse ─▶ core.Graph ─▶ lowerbound.Compute ─▶ similarity.* ─▶ termset.*
//	                                                                    ▲
//	                                               gaf.Parse ───────────┘
//
// Every similarity query requires lower bounds; call lowerbound.Compute once
// after the graph is built. After that the graph is read-only and safe for
// any number of concurrent readers. Undefined results (no common ancestor,
// zero denominators) are similarity.Score values that report IsAbsent.
//
//	go get github.com/katalvlaran/gosemsim
package gosemsim
