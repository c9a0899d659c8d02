// SPDX-License-Identifier: MIT
//
// File: wang.go
// Role: S-value propagation and the Wang measure.
// Policy:
//   - SValues expands by graph distance: a term is frozen into the frontier
//     where it is first discovered, so a larger value reachable only through
//     a longer path is not applied afterwards. FixpointSValues takes the
//     strongest path and may return larger values on such graphs.
//   - Frontier members are processed in ascending id order.

package similarity

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gosemsim/core"
	"github.com/katalvlaran/gosemsim/dijkstra"
)

// SValues returns the semantic contribution of t and each of its ancestors
// reached through weighted edges. t maps to 1; a parent p of n gets
// max(current, value[n]·w[kind]). A nil w means DefaultWeights.
//
// Implementation:
//   - Stage 1: frontier = {t}, value[t] = 1.
//   - Stage 2: for each frontier term, relax its parents; parents not yet
//     visited form the next frontier.
//   - Stage 3: round every value to three decimals.
//
// Errors:
//   - core.ErrNotReady, core.ErrTermNotFound.
//
// Complexity:
//   - Time O((V+E)·log V), Space O(V).
func SValues(g *core.Graph, t string, w Weights) (map[string]float64, error) {
	if err := g.RequireReady(); err != nil {
		return nil, err
	}
	if w == nil {
		w = DefaultWeights()
	}

	sv := map[string]float64{t: 1}
	visited := make(map[string]bool)
	level := []string{t}
	for len(level) > 0 {
		for _, n := range level {
			visited[n] = true
		}
		seen := make(map[string]bool)
		var next []string
		for _, n := range level {
			parents, err := g.Parents(n)
			if err != nil {
				return nil, err
			}
			for _, p := range parents {
				cand := sv[n] * w.factor(p.Kind)
				if cur, ok := sv[p.ID]; !ok || cand > cur {
					sv[p.ID] = cand
				}
				if !visited[p.ID] && !seen[p.ID] {
					seen[p.ID] = true
					next = append(next, p.ID)
				}
			}
		}
		sort.Strings(next)
		level = next
	}

	return roundAll(sv), nil
}

// FixpointSValues is the textbook S-value: the maximum over all paths of the
// product of edge weights, found with a strongest-path search. It equals
// SValues whenever every ancestor's best path is also a shortest one.
//
// Errors:
//   - core.ErrNotReady, core.ErrTermNotFound.
//   - dijkstra.ErrFactorOutOfRange if a weight used by the graph lies outside [0, 1].
//
// Complexity:
//   - Time O((V+E)·log V), Space O(V).
func FixpointSValues(g *core.Graph, t string, w Weights) (map[string]float64, error) {
	if err := g.RequireReady(); err != nil {
		return nil, err
	}
	if !g.HasTerm(t) {
		return nil, fmt.Errorf("%w: %q", core.ErrTermNotFound, t)
	}
	if w == nil {
		w = DefaultWeights()
	}

	sv, _, err := dijkstra.Dijkstra(g,
		dijkstra.Source(t),
		dijkstra.WithDirection(dijkstra.Reverse),
		dijkstra.WithFactor(w.factor),
	)
	if err != nil {
		return nil, err
	}

	return roundAll(sv), nil
}

func roundAll(sv map[string]float64) map[string]float64 {
	for k, v := range sv {
		sv[k] = Round(v)
	}

	return sv
}

// Wang compares the S-value maps of a and b:
//
//	Σ_{k ∈ s1 ∩ s2} (s1[k] + s2[k]) / (Σ s1 + Σ s2)
//
// The result lies in [0, 1] for weights in [0, 1] and Wang(t, t) == 1.
// A nil w means DefaultWeights.
//
// Errors:
//   - core.ErrNotReady, core.ErrTermNotFound.
func Wang(g *core.Graph, a, b string, w Weights) (Score, error) {
	s1, err := SValues(g, a, w)
	if err != nil {
		return Absent(), err
	}
	s2, err := SValues(g, b, w)
	if err != nil {
		return Absent(), err
	}

	return wangScore(s1, s2), nil
}

// wangScore sums in key order so that Wang(a, b) and Wang(b, a) agree bit for bit.
func wangScore(s1, s2 map[string]float64) Score {
	var num, sum1, sum2 float64
	for _, k := range sortedKeys(s1) {
		sum1 += s1[k]
		if v2, ok := s2[k]; ok {
			num += s1[k] + v2
		}
	}
	for _, k := range sortedKeys(s2) {
		sum2 += s2[k]
	}
	if sum1+sum2 == 0 {
		return Absent()
	}

	return Defined(Round(num / (sum1 + sum2)))
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
