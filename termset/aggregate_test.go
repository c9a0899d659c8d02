package termset_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosemsim/builder"
	"github.com/katalvlaran/gosemsim/core"
	"github.com/katalvlaran/gosemsim/lowerbound"
	"github.com/katalvlaran/gosemsim/similarity"
	"github.com/katalvlaran/gosemsim/termset"
)

// table returns a PairwiseFunc backed by a fixed score table. Pairs missing
// from the table are absent; ids starting with "!" fail.
func table(scores map[[2]string]float64) termset.PairwiseFunc {
	return func(a, b string) (similarity.Score, error) {
		if a[0] == '!' || b[0] == '!' {
			return similarity.Absent(), errors.New("boom")
		}
		if v, ok := scores[[2]string{a, b}]; ok {
			return similarity.Defined(v), nil
		}

		return similarity.Absent(), nil
	}
}

var sparse = table(map[[2]string]float64{
	{"x1", "y1"}: 0.2,
	{"x1", "y2"}: 0.8,
})

type countingRecorder struct {
	mu           sync.Mutex
	defined      int
	absent       int
	aggregations []string
}

func (r *countingRecorder) ObserveComparison(defined bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if defined {
		r.defined++
	} else {
		r.absent++
	}
}

func (r *countingRecorder) ObserveAggregation(strategy string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aggregations = append(r.aggregations, strategy)
}

func requireScore(t *testing.T, want float64, s similarity.Score, err error) {
	t.Helper()
	require.NoError(t, err)
	v, ok := s.Value()
	require.True(t, ok, "expected a defined score")
	assert.Equal(t, want, v)
}

func TestStrategies_SkipAbsent(t *testing.T) {
	a := []string{"x1", "x2"}
	b := []string{"y1", "y2", "y3"}

	s, err := termset.Max(a, b, sparse)
	requireScore(t, 0.8, s, err)
	s, err = termset.Avg(a, b, sparse)
	requireScore(t, 0.5, s, err)
	// Rows: x1 → 0.8, x2 dropped. Columns: y1 → 0.2, y2 → 0.8, y3 dropped.
	s, err = termset.BMA(a, b, sparse)
	requireScore(t, 0.6, s, err)
}

func TestStrategies_AllAbsent(t *testing.T) {
	for _, name := range termset.StrategyNames() {
		s, err := termset.Aggregate(name, []string{"x2"}, []string{"y3", "!bad"}, sparse)
		require.NoError(t, err, name)
		assert.True(t, s.IsAbsent(), name)
	}
}

func TestStrategies_EmptySet(t *testing.T) {
	_, err := termset.Max(nil, []string{"y1"}, sparse)
	assert.ErrorIs(t, err, termset.ErrEmptyTermSet)
	_, err = termset.Avg([]string{"x1"}, []string{}, sparse)
	assert.ErrorIs(t, err, termset.ErrEmptyTermSet)
	_, err = termset.BMA(nil, nil, sparse)
	assert.ErrorIs(t, err, termset.ErrEmptyTermSet)
}

func TestStrategies_Dedupe(t *testing.T) {
	rec := &countingRecorder{}
	s, err := termset.Avg([]string{"x1", "x1", "x2"}, []string{"y1", "y2", "y1", "y3"}, sparse, termset.WithRecorder(rec))
	requireScore(t, 0.5, s, err)
	assert.Equal(t, 2, rec.defined)
	assert.Equal(t, 4, rec.absent)
	assert.Equal(t, []string{"avg"}, rec.aggregations)
}

func TestSimFunc_ErrorBecomesAbsent(t *testing.T) {
	assert.True(t, termset.SimFunc(sparse, "!x", "y1").IsAbsent())
	v, ok := termset.SimFunc(sparse, "x1", "y2").Value()
	assert.True(t, ok)
	assert.Equal(t, 0.8, v)
}

func TestOptions(t *testing.T) {
	_, err := termset.Max([]string{"x1"}, []string{"y1"}, sparse, termset.WithConcurrency(0))
	assert.ErrorIs(t, err, termset.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = termset.BMA([]string{"x1"}, []string{"y1"}, sparse, termset.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStrategyByName(t *testing.T) {
	assert.Equal(t, []string{"avg", "bma", "max"}, termset.StrategyNames())
	_, err := termset.StrategyByName("BMA")
	assert.NoError(t, err)
	_, err = termset.StrategyByName("median")
	assert.ErrorIs(t, err, termset.ErrUnknownStrategy)
	_, err = termset.Aggregate("median", []string{"x1"}, []string{"y1"}, sparse)
	assert.ErrorIs(t, err, termset.ErrUnknownStrategy)
}

func syntheticGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildOntology(nil, builder.Pairs(
		[2]string{"0", "1"}, [2]string{"1", "3"}, [2]string{"1", "4"}, [2]string{"1", "5"},
		[2]string{"1", "6"}, [2]string{"1", "7"}, [2]string{"0", "2"}, [2]string{"2", "8"},
		[2]string{"8", "9"}, [2]string{"9", "3"}, [2]string{"2", "10"}, [2]string{"10", "11"},
		[2]string{"11", "4"}, [2]string{"12", "13"}, [2]string{"13", "14"},
	))
	require.NoError(t, err)
	_, err = lowerbound.Compute(g)
	require.NoError(t, err)

	return g
}

func TestBind_UnknownTermIsAbsent(t *testing.T) {
	g := syntheticGraph(t)
	fn := termset.Bind(g, similarity.Resnik)

	s, err := termset.Max([]string{"3", "4"}, []string{"6", "18"}, fn)
	requireScore(t, 1.322, s, err)
}

func TestConcurrency_SameResult(t *testing.T) {
	g := syntheticGraph(t)
	terms := g.Terms()
	a, b := terms[:8], terms[5:]

	for _, name := range similarity.MethodNames() {
		m, err := similarity.MethodByName(name, nil)
		require.NoError(t, err)
		fn := termset.Bind(g, m)
		for _, strategy := range termset.StrategyNames() {
			seq, err := termset.Aggregate(strategy, a, b, fn)
			require.NoError(t, err)
			par, err := termset.Aggregate(strategy, a, b, fn, termset.WithConcurrency(6))
			require.NoError(t, err)
			assert.Equal(t, seq, par, "%s/%s", name, strategy)
		}
	}
}

func TestMaxAtLeastAvg(t *testing.T) {
	g := syntheticGraph(t)
	terms := g.Terms()
	fn := termset.Bind(g, similarity.Lin)

	for i := 0; i+3 <= len(terms); i++ {
		a := terms[i : i+3]
		b := terms[len(terms)-i-3 : len(terms)-i]
		mx, err := termset.Max(a, b, fn)
		require.NoError(t, err)
		avg, err := termset.Avg(a, b, fn)
		require.NoError(t, err)
		if mx.IsAbsent() {
			assert.True(t, avg.IsAbsent())
			continue
		}
		mv, _ := mx.Value()
		av, _ := avg.Value()
		assert.GreaterOrEqual(t, mv, av)
	}
}
