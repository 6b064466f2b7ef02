// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundplan/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe
// and every neighbor appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	errs := make([]error, num)
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, errs[id] = g.AddEdge("X", fmt.Sprintf("V%d", id))
		}(i)
	}
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
	}
	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReaders runs readers against a fully built graph.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 20; i++ {
		_, err := g.AddEdge("hub", fmt.Sprintf("V%d", i))
		require.NoError(t, err)
	}

	const readers = 50
	var wg sync.WaitGroup
	degrees := make([]int, readers)
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			degrees[id], _ = g.Degree("hub")
			_ = g.Stats()
			_ = g.Edges()
		}(i)
	}
	wg.Wait()

	for _, d := range degrees {
		require.Equal(t, 20, d)
	}
}
