package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decaygraph/bfs"
	"github.com/katalvlaran/decaygraph/core"
)

// build creates a graph with vertices 0..n-1 and the given edges.
func build(n int, edges ...core.Edge) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, _, _ = g.AddVertex(i, 0, core.NoBlock)
	}
	for _, e := range edges {
		_ = g.AddEdge(e.From, e.To)
	}
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, []int{0})
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(1)
	_, err = bfs.BFS(g, []int{0, 7})
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, []int{0}, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_NoStarts(t *testing.T) {
	res, err := bfs.BFS(build(3), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Generations())
}

// TestBFS_SharedDaughterTakesNearestDepth: 0→1→2→3 and 0→3. Vertex 3 is
// first reached from 0.
func TestBFS_SharedDaughterTakesNearestDepth(t *testing.T) {
	g := build(4, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2},
		core.Edge{From: 2, To: 3}, core.Edge{From: 0, To: 3})

	res, err := bfs.BFS(g, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 1, 2: 2}, res.Depth)
}

// TestBFS_MultiSource seeds two disjoint trees, as a truth graph with two
// beam roots.
func TestBFS_MultiSource(t *testing.T) {
	g := build(6, core.Edge{From: 0, To: 2}, core.Edge{From: 1, To: 2},
		core.Edge{From: 2, To: 3}, core.Edge{From: 2, To: 4}, core.Edge{From: 5, To: 4})

	res, err := bfs.BFS(g, g.Roots())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 5}, {2, 4}, {3}}, res.Generations())
}

func TestBFS_MaxDepth(t *testing.T) {
	g := build(4, core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2}, core.Edge{From: 2, To: 3})

	res, err := bfs.BFS(g, []int{0}, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.BFS(g, []int{0}, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(build(2, core.Edge{From: 0, To: 1}), []int{0}, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
