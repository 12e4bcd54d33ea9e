package scc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnacletoLAB/ensmallen-sub009/builder"
	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/scc"
)

func buildDirected(t *testing.T, n int, pairs ...core.Pair) *graph.Graph {
	t.Helper()
	g, err := builder.FromPairs(n, pairs, builder.WithDirected(true))
	require.NoError(t, err)
	return g
}

func TestTarjan_CycleCollapses(t *testing.T) {
	g := buildDirected(t, 3, core.Pair{Src: 0, Dst: 1}, core.Pair{Src: 1, Dst: 0}, core.Pair{Src: 1, Dst: 2})

	res, err := scc.Tarjan(context.Background(), g)
	require.NoError(t, err)

	assert.ElementsMatch(t, [][]core.NodeT{{0, 1}, {2}}, res.Components)
	assert.Equal(t, res.Membership[0], res.Membership[1])
	assert.NotEqual(t, res.Membership[0], res.Membership[2])
	// sinks close first
	assert.Equal(t, []core.NodeT{2}, res.Components[0])
}

func TestTarjan_PartitionProperties(t *testing.T) {
	g, err := builder.ErdosRenyi(200, 0.01, builder.WithDirected(true), builder.WithSeed(3))
	require.NoError(t, err)

	res, err := scc.Tarjan(context.Background(), g)
	require.NoError(t, err)

	seen := make([]bool, g.NumberOfNodes())
	for id, component := range res.Components {
		require.NotEmpty(t, component)
		for _, v := range component {
			assert.False(t, seen[v], "node %d in two components", v)
			seen[v] = true
			assert.EqualValues(t, id, res.Membership[v])
		}
	}
	for v, ok := range seen {
		assert.True(t, ok, "node %d unassigned", v)
	}

	// edges never point from an earlier closed component to a later one
	for e := range g.Edges(true) {
		assert.GreaterOrEqual(t, res.Membership[e.Src], res.Membership[e.Dst])
	}
}

func TestTarjan_UndirectedGivesConnectedComponents(t *testing.T) {
	g, err := builder.FromPairs(6, []core.Pair{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}, {Src: 3, Dst: 4}})
	require.NoError(t, err)

	res, err := scc.Tarjan(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count())
	assert.Equal(t, 3, res.Largest())
	assert.ElementsMatch(t, [][]core.NodeT{{0, 1, 2}, {3, 4}, {5}}, res.Components)
}

func TestTarjan_DeepChainDoesNotRecurse(t *testing.T) {
	g, err := builder.Chain(200000, builder.WithDirected(true))
	require.NoError(t, err)

	res, err := scc.Tarjan(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 200000, res.Count())
}

func TestTarjan_Cancelled(t *testing.T) {
	g, err := builder.Circle(10, builder.WithDirected(true))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = scc.Tarjan(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
}
