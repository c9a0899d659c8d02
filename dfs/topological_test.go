package dfs_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosemsim/core"
	"github.com/katalvlaran/gosemsim/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// build adds every parent→child pair with is_a.
func build(t testing.TB, pairs [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		require.NoError(t, g.AddRelationship(p[0], p[1], core.IsA))
	}

	return g
}

// TestTopo_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopo_EmptyGraph covers a graph with no terms.
func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewGraph())
	assert.NoError(t, err)
	assert.Empty(t, order)
}

// TestTopo_NoEdges checks that isolated terms come out in ID order.
func TestTopo_NoEdges(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddTerm(id, core.Attributes{}))
	}

	order, err := dfs.TopologicalSort(g)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

// TestTopo_SimpleChain verifies linear chain A→B→C yields [A,B,C].
func TestTopo_SimpleChain(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}, {"B", "C"}})

	order, err := dfs.TopologicalSort(g)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

// TestTopo_BranchingDAG checks a DAG with A→B and A→C.
func TestTopo_BranchingDAG(t *testing.T) {
	g := build(t, [][2]string{{"A", "C"}, {"A", "B"}})

	order, err := dfs.TopologicalSort(g)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

// TestTopo_Disconnected verifies that disconnected components are included.
func TestTopo_Disconnected(t *testing.T) {
	g := build(t, [][2]string{{"X", "Y"}, {"A", "B"}})

	order, err := dfs.TopologicalSort(g)
	assert.NoError(t, err)
	assert.Less(t, position(order, "X"), position(order, "Y"))
	assert.Less(t, position(order, "A"), position(order, "B"))
	assert.ElementsMatch(t, []string{"X", "Y", "A", "B"}, order)
}

// TestTopo_ComplexDAG builds a DAG of 10 terms with cross-links and ensures validity.
func TestTopo_ComplexDAG(t *testing.T) {
	edges := [][2]string{
		{"V1", "V3"}, {"V1", "V2"}, {"V2", "V5"}, {"V3", "V5"},
		{"V2", "V4"}, {"V4", "V6"}, {"V5", "V7"}, {"V6", "V8"},
		{"V7", "V9"}, {"V8", "V10"},
	}
	g := build(t, edges)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Len(t, order, 10)
	for _, e := range edges {
		assert.Less(t,
			position(order, e[0]), position(order, e[1]),
			"edge %s→%s should be respected", e[0], e[1],
		)
	}

	again, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, order, again, "order must be deterministic")
}

// TestTopo_CycleDetection uses a 6-term cycle to verify ErrCycleDetected.
func TestTopo_CycleDetection(t *testing.T) {
	cycle := []string{"a", "b", "c", "d", "e", "f"}
	g := core.NewGraph()
	for i := range cycle {
		require.NoError(t, g.AddRelationship(cycle[i], cycle[(i+1)%len(cycle)], core.IsA))
	}
	order, err := dfs.TopologicalSort(g)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_Cancellation aborts with the context error.
func TestTopo_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddRelationship(fmt.Sprintf("n%02d", i), fmt.Sprintf("n%02d", i+1), core.IsA))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
