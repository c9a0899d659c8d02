package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gosemsim/bfs"
	"github.com/katalvlaran/gosemsim/core"
)

// BenchmarkBFS_Chain measures BFS on a linear is_a chain of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_ = g.AddRelationship(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), core.IsA)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 terms).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1

	g := core.NewGraph()
	for i := 1; i <= (nodeCount-1)/2; i++ {
		p := fmt.Sprintf("%d", i)
		_ = g.AddRelationship(p, fmt.Sprintf("%d", 2*i), core.IsA)
		_ = g.AddRelationship(p, fmt.Sprintf("%d", 2*i+1), core.PartOf)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "1")
	}
}

// BenchmarkBFS_RandomDAGReverse measures ancestor walks on a sparse random DAG.
func BenchmarkBFS_RandomDAGReverse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	for k := 0; k < E; k++ {
		u, v := rnd.Intn(V), rnd.Intn(V)
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		_ = g.AddRelationship(fmt.Sprintf("n%d", u), fmt.Sprintf("n%d", v), core.IsA)
	}
	leaf := fmt.Sprintf("n%d", V-1)
	if !g.HasTerm(leaf) {
		_ = g.AddTerm(leaf, core.Attributes{})
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, leaf, bfs.WithDirection(bfs.Reverse))
	}
}
