package bfs_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnacletoLAB/ensmallen-sub009/bfs"
	"github.com/AnacletoLAB/ensmallen-sub009/builder"
	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
)

func buildChain(t *testing.T, n int, opts ...builder.Option) *graph.Graph {
	t.Helper()
	g, err := builder.Chain(n, opts...)
	require.NoError(t, err)
	return g
}

func TestBFS_Errors(t *testing.T) {
	g := buildChain(t, 3)

	_, err := bfs.BFS(g, 7)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = bfs.BFS(g, 0, bfs.WithDestination(9))
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_ChainDistances(t *testing.T) {
	g := buildChain(t, 5)

	res, err := bfs.BFS(g, 0, bfs.WithPredecessors())
	require.NoError(t, err)
	assert.Equal(t, []core.NodeT{0, 1, 2, 3, 4}, res.Distances)
	assert.Equal(t, []core.NodeT{0, 1, 2, 3, 4}, res.Order)
	assert.EqualValues(t, 4, res.Eccentricity)
	assert.EqualValues(t, 4, res.MostDistantNode)
	assert.InDelta(t, 10.0, res.TotalDistance, 1e-12)
	assert.InDelta(t, 1+0.5+1.0/3+0.25, res.HarmonicDistance, 1e-12)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeT{0, 1, 2, 3}, path)
}

func TestBFS_DirectedUnreachable(t *testing.T) {
	g := buildChain(t, 4, builder.WithDirected(true))

	res, err := bfs.BFS(g, 2, bfs.WithPredecessors())
	require.NoError(t, err)
	assert.False(t, res.Reached(0))
	assert.Equal(t, core.NodeNotPresent, res.Distances[1])
	_, err = res.PathTo(0)
	assert.ErrorIs(t, err, bfs.ErrUnreachable)
}

func TestBFS_DestinationAndDepth(t *testing.T) {
	g := buildChain(t, 10)

	res, err := bfs.BFS(g, 0, bfs.WithDestination(3))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeT{0, 1, 2, 3}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	assert.False(t, res.Reached(3))
}

func TestBFS_HooksAndFilter(t *testing.T) {
	g, err := builder.Star(5)
	require.NoError(t, err)

	var visited []core.NodeT
	res, err := bfs.BFS(g, 0,
		bfs.WithOnVisit(func(id, _ core.NodeT) error { visited = append(visited, id); return nil }),
		bfs.WithFilterNeighbor(func(_, nbr core.NodeT) bool { return nbr%2 == 0 }),
	)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeT{0, 2, 4}, visited)
	assert.Equal(t, visited, res.Order)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ core.NodeT) error {
		if id == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_Cancelled(t *testing.T) {
	g := buildChain(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiameter(t *testing.T) {
	ctx := context.Background()

	d, err := bfs.Diameter(ctx, buildChain(t, 6))
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	circle, err := builder.Circle(8)
	require.NoError(t, err)
	d, err = bfs.Diameter(ctx, circle, bfs.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)

	d, err = bfs.Diameter(ctx, buildChain(t, 4, builder.WithDirected(true)))
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))

	// two components: a chain of 3 and a chain of 2
	forest, err := builder.FromPairs(5, []core.Pair{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}, {Src: 3, Dst: 4}})
	require.NoError(t, err)
	d, err = bfs.Diameter(ctx, forest)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
}
