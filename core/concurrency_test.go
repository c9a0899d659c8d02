// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosemsim/core"
)

// TestConcurrentAddRelationship ensures concurrent builders do not lose edges.
func TestConcurrentAddRelationship(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	errs := make(chan error, num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddRelationship("ROOT", fmt.Sprintf("T%d", id), core.IsA)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	kids, err := g.Children("ROOT")
	require.NoError(t, err)
	require.Len(t, kids, num)
	require.Equal(t, num+1, g.TermCount())
}

// TestConcurrentReadersOnReadyGraph hammers the memoized reachability paths.
func TestConcurrentReadersOnReadyGraph(t *testing.T) {
	g := core.NewGraph()
	const depth = 30
	for i := 0; i < depth; i++ {
		require.NoError(t, g.AddRelationship(fmt.Sprintf("N%02d", i), fmt.Sprintf("N%02d", i+1), core.IsA))
	}
	ready(t, g)

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	sizes := make(chan int, readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			anc, err := g.Ancestors(fmt.Sprintf("N%02d", depth))
			if err != nil {
				sizes <- -1
				return
			}
			sizes <- anc.Len()
		}()
	}
	wg.Wait()
	close(sizes)
	for n := range sizes {
		require.Equal(t, depth, n)
	}
}
