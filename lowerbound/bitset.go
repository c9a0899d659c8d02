// SPDX-License-Identifier: MIT
//
// File: bitset.go
// Role: StrategyBitset. Terms are indexed in topological order; walking that
//       order backwards, each term's reachable set is its own bit OR-ed with
//       the sets of its children. Popcount gives the lower bound.
// Complexity:
//   - Time O(V·E/64), Space O(V²/64) words.

package lowerbound

import (
	"context"
	"math/bits"

	"github.com/katalvlaran/gosemsim/core"
	"github.com/katalvlaran/gosemsim/dfs"
)

// bitset is a fixed-size set of term indexes.
type bitset []uint64

func newBitset(n int) bitset { return make(bitset, (n+63)/64) }

func (b bitset) set(i int) { b[i/64] |= 1 << (uint(i) % 64) }

func (b bitset) or(other bitset) {
	for i := range b {
		b[i] |= other[i]
	}
}

func (b bitset) count() int {
	c := 0
	for _, w := range b {
		c += bits.OnesCount64(w)
	}

	return c
}

func countBitset(ctx context.Context, g *core.Graph) (map[string]int, error) {
	order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	if err != nil {
		return nil, err
	}
	n := len(order)
	index := make(map[string]int, n)
	for i, id := range order {
		index[id] = i
	}

	sets := make([]bitset, n)
	lb := make(map[string]int, n)
	for i := n - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		s := newBitset(n)
		s.set(i)
		kids, err := g.Children(order[i])
		if err != nil {
			return nil, err
		}
		for _, c := range kids {
			s.or(sets[index[c.ID]])
		}
		sets[i] = s
		lb[order[i]] = s.count()
	}

	return lb, nil
}
