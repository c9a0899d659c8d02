// Package termset scores two sets of ontology terms, typically the
// annotations of two gene products, by aggregating a pairwise similarity.
//
// Strategies:
//
//	Max  largest defined pairwise score
//	Avg  mean over defined pairs only
//	BMA  best-match average over both directions, rows without a match dropped
//
// The pairwise function is injected as a PairwiseFunc; Bind adapts any
// similarity.Method to a fixed graph. Errors raised by the pairwise function
// (unknown term, graph not ready) make that pair absent instead of failing
// the aggregation, and absent pairs never count as zero. When every pair is
// absent the result is similarity.Absent().
//
// Pairs are evaluated by an errgroup limited to WithConcurrency(n) goroutines
// (default 1) and reduced afterwards, so the result does not depend on n.
//
//	fn := termset.Bind(g, similarity.Resnik)
//	s, err := termset.BMA(geneA, geneB, fn,
//	    termset.WithConcurrency(8),
//	    termset.WithContext(ctx),
//	)
package termset
