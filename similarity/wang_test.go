package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosemsim/builder"
	"github.com/katalvlaran/gosemsim/core"
	"github.com/katalvlaran/gosemsim/dijkstra"
	"github.com/katalvlaran/gosemsim/similarity"
)

func chain(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildOntology(nil, builder.Pairs([2]string{"a", "b"}, [2]string{"b", "c"}))
	require.NoError(t, err)

	return precompute(t, g)
}

func TestSValues_Chain(t *testing.T) {
	g := chain(t)

	sv, err := similarity.SValues(g, "c", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"c": 1, "b": 0.8, "a": 0.64}, sv)

	sv, err = similarity.SValues(g, "c", similarity.Weights{core.PartOf: 0.6})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"c": 1, "b": 0, "a": 0}, sv)
}

func TestWang_Chain(t *testing.T) {
	g := chain(t)

	s, err := similarity.Wang(g, "b", "c", nil)
	requireScore(t, 0.764, s, err)
	s, err = similarity.Wang(g, "c", "b", similarity.DefaultWeights())
	requireScore(t, 0.764, s, err)
}

func TestWang_Identity(t *testing.T) {
	g := precompute(t, synthetic(t))
	for _, id := range g.Terms() {
		s, err := similarity.Wang(g, id, id, nil)
		requireScore(t, 1, s, err)
	}
}

func TestWang_Bounded(t *testing.T) {
	g, err := builder.BuildOntology(
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithKinds(core.IsA, core.PartOf, core.Regulates)},
		builder.RandomDAG(40, 0.1),
	)
	require.NoError(t, err)
	precompute(t, g)

	terms := g.Terms()
	for _, a := range terms[:10] {
		for _, b := range terms {
			s, err := similarity.Wang(g, a, b, nil)
			require.NoError(t, err)
			v, ok := s.Value()
			require.True(t, ok)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestWang_UnknownTerm(t *testing.T) {
	g := chain(t)
	_, err := similarity.Wang(g, "a", "zz", nil)
	assert.ErrorIs(t, err, core.ErrTermNotFound)
	_, err = similarity.SValues(g, "zz", nil)
	assert.ErrorIs(t, err, core.ErrTermNotFound)
}

// TestSValues_FrontierFreeze pins the wavefront behavior: r is first reached
// through a zero-weight edge, then raised by the longer path through y after
// its own parents were already relaxed, so q keeps 0. The fixpoint variant
// carries the raised value on to q.
func TestSValues_FrontierFreeze(t *testing.T) {
	g, err := builder.BuildOntology(nil, builder.Edges(
		core.Relationship{Parent: "r", Child: "t", Kind: core.Regulates},
		core.Relationship{Parent: "y", Child: "t", Kind: core.IsA},
		core.Relationship{Parent: "r", Child: "y", Kind: core.IsA},
		core.Relationship{Parent: "q", Child: "r", Kind: core.IsA},
	))
	require.NoError(t, err)
	precompute(t, g)

	sv, err := similarity.SValues(g, "t", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"t": 1, "y": 0.8, "r": 0.64, "q": 0}, sv)

	fix, err := similarity.FixpointSValues(g, "t", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"t": 1, "y": 0.8, "r": 0.64, "q": 0.512}, fix)
}

func TestFixpointSValues_MatchesOnTree(t *testing.T) {
	g, err := builder.BuildOntology(nil, builder.Tree(2, 4))
	require.NoError(t, err)
	precompute(t, g)

	for _, id := range g.Terms() {
		bfsSV, err := similarity.SValues(g, id, nil)
		require.NoError(t, err)
		fixSV, err := similarity.FixpointSValues(g, id, nil)
		require.NoError(t, err)
		assert.Equal(t, bfsSV, fixSV, "term %s", id)
	}
}

func TestFixpointSValues_Errors(t *testing.T) {
	g, err := builder.BuildOntology(nil, builder.Chain(3))
	require.NoError(t, err)
	precompute(t, g)

	_, err = similarity.FixpointSValues(g, "nope", nil)
	assert.ErrorIs(t, err, core.ErrTermNotFound)

	_, err = similarity.FixpointSValues(g, g.Terms()[0], similarity.Weights{core.IsA: 1.2})
	assert.ErrorIs(t, err, dijkstra.ErrFactorOutOfRange)
}
