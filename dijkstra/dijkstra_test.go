package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnacletoLAB/ensmallen-sub009/builder"
	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/dijkstra"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
)

// buildDiamond returns 0-1 (1), 0-2 (4), 1-2 (1), 2-3 (2), 1-3 (6) plus an
// isolated node 4.
func buildDiamond(t *testing.T, opts ...builder.Option) *graph.Graph {
	t.Helper()
	g, err := builder.FromWeightedPairs(5, []builder.WeightedPair{
		{Src: 0, Dst: 1, Weight: 1},
		{Src: 0, Dst: 2, Weight: 4},
		{Src: 1, Dst: 2, Weight: 1},
		{Src: 2, Dst: 3, Weight: 2},
		{Src: 1, Dst: 3, Weight: 6},
	}, opts...)
	require.NoError(t, err)
	return g
}

func TestDijkstra_Validation(t *testing.T) {
	g := buildDiamond(t)

	_, err := dijkstra.Dijkstra(g, 9)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithDestination(9))
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithUnitWeights(), dijkstra.WithProbabilities())
	assert.ErrorIs(t, err, dijkstra.ErrConflictingModes)
	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithProbabilities())
	assert.ErrorIs(t, err, dijkstra.ErrNotProbability)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	chain, err := builder.Chain(3)
	require.NoError(t, err)
	_, err = dijkstra.Dijkstra(chain, 0, dijkstra.WithProbabilities())
	assert.ErrorIs(t, err, core.ErrMissingWeights)

	negative, err := builder.FromWeightedPairs(2, []builder.WeightedPair{{Src: 0, Dst: 1, Weight: -1}})
	require.NoError(t, err)
	_, err = dijkstra.Dijkstra(negative, 0)
	assert.ErrorIs(t, err, core.ErrNonPositiveWeights)

	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(math.NaN()))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
	assert.NotPanics(t, func() { _, _, _ = dijkstra.ShortestPath(g, 0, 3, dijkstra.WithMaxDistance(-1)) })
}

func TestDijkstra_UndirectedUnweightedIsSymmetric(t *testing.T) {
	g, err := builder.FromPairs(3, []core.Pair{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}})
	require.NoError(t, err)

	from0, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	from2, err := dijkstra.Dijkstra(g, 2)
	require.NoError(t, err)

	assert.Equal(t, 2.0, from0.Distances[2])
	assert.Equal(t, 2.0, from2.Distances[0])
	assert.Equal(t, 1.0, from0.Distances[1])
}

func TestDijkstra_Weighted(t *testing.T) {
	g := buildDiamond(t)

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithPredecessors())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 4, math.Inf(1)}, res.Distances)
	assert.Equal(t, []core.NodeT{core.NodeNotPresent, 0, 1, 2, core.NodeNotPresent}, res.Predecessors)
	assert.EqualValues(t, 3, res.MostDistantNode)
	assert.Equal(t, 4.0, res.Eccentricity)
	assert.InDelta(t, 7.0, res.TotalDistance, 1e-12)
	assert.InDelta(t, 1+0.5+0.25, res.HarmonicDistance, 1e-12)
	assert.True(t, res.Reached(3))
	assert.False(t, res.Reached(4))

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeT{0, 1, 2, 3}, path)
	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestDijkstra_UnitWeightsIgnoreWeights(t *testing.T) {
	g := buildDiamond(t)

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithUnitWeights())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 2, math.Inf(1)}, res.Distances)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := buildDiamond(t)

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Distances[2])
	assert.True(t, math.IsInf(res.Distances[3], 1))
	assert.False(t, res.Reached(3))
}

func TestDijkstra_DestinationStopsEarly(t *testing.T) {
	g := buildDiamond(t)

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithDestination(1), dijkstra.WithPredecessors())
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Distances[1])
	assert.True(t, math.IsInf(res.Distances[2], 1), "tentative distances are dropped")
	assert.Equal(t, core.NodeNotPresent, res.Predecessors[2])
}

func TestDijkstra_Directed(t *testing.T) {
	g, err := builder.FromWeightedPairs(3, []builder.WeightedPair{
		{Src: 0, Dst: 1, Weight: 2},
		{Src: 1, Dst: 2, Weight: 3},
	}, builder.WithDirected(true))
	require.NoError(t, err)

	forward, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, forward.Distances[2])

	backward, err := dijkstra.Dijkstra(g, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(backward.Distances[0], 1))
	assert.Equal(t, 0.0, backward.Eccentricity)
	assert.EqualValues(t, 2, backward.MostDistantNode)
}

func TestDijkstra_Probabilities(t *testing.T) {
	g, err := builder.FromWeightedPairs(4, []builder.WeightedPair{
		{Src: 0, Dst: 1, Weight: 0.5},
		{Src: 1, Dst: 2, Weight: 0.5},
		{Src: 0, Dst: 2, Weight: 0.2},
	})
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithProbabilities(), dijkstra.WithPredecessors())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Distances[0], 1e-12)
	assert.InDelta(t, 0.5, res.Distances[1], 1e-6)
	assert.InDelta(t, 0.25, res.Distances[2], 1e-6, "two halves beat one fifth")
	assert.Equal(t, 0.0, res.Distances[3])
	assert.EqualValues(t, 1, res.Predecessors[2])
	assert.InDelta(t, 0.25, res.Eccentricity, 1e-6)
	assert.InDelta(t, 3*math.Ln2, res.TotalDistance, 1e-6)
}

func TestShortestPath(t *testing.T) {
	g := buildDiamond(t)

	path, d, err := dijkstra.ShortestPath(g, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeT{3, 2, 1, 0}, path)
	assert.Equal(t, 4.0, d)

	_, _, err = dijkstra.ShortestPath(g, 0, 4)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	path, d, err = dijkstra.ShortestPath(g, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeT{2}, path)
	assert.Equal(t, 0.0, d)
}
