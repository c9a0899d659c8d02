// SPDX-License-Identifier: MIT
//
// File: aggregate.go
// Role: Max, Avg and BMA over the |A|·|B| pairwise score matrix.
// Policy:
//   - Absent pairs are skipped, never counted as zero.
//   - Duplicate terms are collapsed, keeping the first occurrence.
// Concurrency:
//   - Pairs are evaluated through an errgroup bounded by Options.Concurrency;
//     the reduce step runs after the errgroup barrier on one goroutine.

package termset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gosemsim/similarity"
)

// Strategy aggregates pairwise scores of two term sets.
type Strategy func(a, b []string, fn PairwiseFunc, opts ...Option) (similarity.Score, error)

// Registered strategy names.
const (
	StrategyMax = "max"
	StrategyAvg = "avg"
	StrategyBMA = "bma"
)

// Max returns the largest defined pairwise score, or Absent if none is defined.
//
// Errors:
//   - ErrEmptyTermSet, ErrOptionViolation, ctx.Err().
func Max(a, b []string, fn PairwiseFunc, opts ...Option) (similarity.Score, error) {
	return run(StrategyMax, a, b, fn, opts, reduceMax)
}

// Avg returns the mean of the defined pairwise scores; the denominator is
// the number of defined pairs, not |A|·|B|.
//
// Errors:
//   - ErrEmptyTermSet, ErrOptionViolation, ctx.Err().
func Avg(a, b []string, fn PairwiseFunc, opts ...Option) (similarity.Score, error) {
	return run(StrategyAvg, a, b, fn, opts, reduceAvg)
}

// BMA is the best-match average: every term of A contributes its best score
// against B and every term of B its best score against A. Terms without any
// defined score are dropped from both the sum and the denominator.
//
// Errors:
//   - ErrEmptyTermSet, ErrOptionViolation, ctx.Err().
func BMA(a, b []string, fn PairwiseFunc, opts ...Option) (similarity.Score, error) {
	return run(StrategyBMA, a, b, fn, opts, reduceBMA)
}

// StrategyByName resolves "max", "avg" or "bma" (case-insensitive).
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyMax:
		return Max, nil
	case StrategyAvg:
		return Avg, nil
	case StrategyBMA:
		return BMA, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// StrategyNames lists the registered names in sorted order.
func StrategyNames() []string {
	names := []string{StrategyMax, StrategyAvg, StrategyBMA}
	sort.Strings(names)

	return names
}

// Aggregate runs the strategy registered under name.
func Aggregate(name string, a, b []string, fn PairwiseFunc, opts ...Option) (similarity.Score, error) {
	s, err := StrategyByName(name)
	if err != nil {
		return similarity.Absent(), err
	}

	return s(a, b, fn, opts...)
}

type matrix [][]similarity.Score

func run(name string, a, b []string, fn PairwiseFunc, opts []Option, reduce func(matrix) similarity.Score) (similarity.Score, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return similarity.Absent(), o.err
	}
	a, b = dedupe(a), dedupe(b)
	if len(a) == 0 || len(b) == 0 {
		return similarity.Absent(), ErrEmptyTermSet
	}

	start := time.Now()
	m, err := evaluate(a, b, fn, o)
	if err != nil {
		return similarity.Absent(), err
	}
	s := reduce(m)
	if o.Recorder != nil {
		o.Recorder.ObserveAggregation(name, time.Since(start))
	}

	return s, nil
}

// evaluate fills the |a|×|b| score matrix. Each goroutine writes its own cell.
func evaluate(a, b []string, fn PairwiseFunc, o Options) (matrix, error) {
	m := make(matrix, len(a))
	for i := range m {
		m[i] = make([]similarity.Score, len(b))
	}

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Concurrency)
outer:
	for i := range a {
		for j := range b {
			if ctx.Err() != nil {
				break outer
			}
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				s := SimFunc(fn, a[i], b[j])
				m[i][j] = s
				if o.Recorder != nil {
					o.Recorder.ObserveComparison(!s.IsAbsent())
				}

				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	return m, nil
}

func reduceMax(m matrix) similarity.Score {
	var (
		best  float64
		found bool
	)
	for _, row := range m {
		for _, s := range row {
			if v, ok := s.Value(); ok && (!found || v > best) {
				best, found = v, true
			}
		}
	}
	if !found {
		return similarity.Absent()
	}

	return similarity.Defined(similarity.Round(best))
}

func reduceAvg(m matrix) similarity.Score {
	var (
		sum float64
		n   int
	)
	for _, row := range m {
		for _, s := range row {
			if v, ok := s.Value(); ok {
				sum += v
				n++
			}
		}
	}
	if n == 0 {
		return similarity.Absent()
	}

	return similarity.Defined(similarity.Round(sum / float64(n)))
}

func reduceBMA(m matrix) similarity.Score {
	var (
		sum float64
		n   int
	)
	add := func(best float64, found bool) {
		if found {
			sum += best
			n++
		}
	}
	// Rows: best match of each a in B.
	for _, row := range m {
		add(bestOf(len(row), func(j int) similarity.Score { return row[j] }))
	}
	// Columns: best match of each b in A.
	if len(m) > 0 {
		for j := range m[0] {
			add(bestOf(len(m), func(i int) similarity.Score { return m[i][j] }))
		}
	}
	if n == 0 {
		return similarity.Absent()
	}

	return similarity.Defined(similarity.Round(sum / float64(n)))
}

func bestOf(n int, at func(int) similarity.Score) (float64, bool) {
	var (
		best  float64
		found bool
	)
	for k := 0; k < n; k++ {
		if v, ok := at(k).Value(); ok && (!found || v > best) {
			best, found = v, true
		}
	}

	return best, found
}

// dedupe drops repeated ids, keeping first occurrences in order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
