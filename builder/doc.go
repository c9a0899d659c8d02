// Package builder generates synthetic ontologies for tests, examples and
// benchmarks. Every constructor returns a core.Graph mutation; BuildOntology
// composes them deterministically.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, ID scheme, relationship kinds, namespace.
//   - Term-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – SymbolNumberIDFn:  prefix + decimal ("t0","t1",…).
//     – CURIEIDFn:         OBO identifiers ("GO:0008150").
//   - Constructors:
//     – Edges / Pairs:     explicit fixtures (e.g. a hand-drawn DAG).
//     – Chain(n):          0→1→…→n-1.
//     – Tree(b, d):        complete b-ary tree of depth d.
//     – RandomDAG(n, p):   forward Bernoulli edges i→j, i<j.
//
// Guarantees:
//
//   - Generated constructors (Chain, Tree, RandomDAG) only emit edges from a
//     lower index to a higher one, so their output is acyclic.
//   - Equal options, seed and constructor order give identical graphs.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewTerms, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) and never panic.
//
// Example:
//
//	g, err := builder.BuildOntology(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithSingleRoot(),
//	        builder.WithKinds(core.IsA, core.PartOf), builder.WithGOIDs()},
//	    builder.RandomDAG(500, 0.01),
//	)
package builder
