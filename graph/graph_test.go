package graph_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnacletoLAB/ensmallen-sub009/builder"
	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// buildTriangle returns the undirected weighted triangle 0-1-2 plus an
// isolated node 3 and a self-loop on 2.
func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := builder.FromWeightedPairs(4, []builder.WeightedPair{
		{Src: 0, Dst: 1, Weight: 1},
		{Src: 1, Dst: 2, Weight: 2},
		{Src: 0, Dst: 2, Weight: 4},
		{Src: 2, Dst: 2, Weight: 0.5},
	}, builder.WithName("triangle"))
	require.NoError(t, err)
	return g
}

// buildDirected returns 0->1, 1->2, 2->0, 2->3 with typed edges.
func buildDirected(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := builder.FromEdgeRecords([]builder.EdgeRecord{
		{Line: 1, Src: "0", Dst: "1", EdgeType: "a"},
		{Line: 2, Src: "1", Dst: "2", EdgeType: "b"},
		{Line: 3, Src: "2", Dst: "0", EdgeType: "a"},
		{Line: 4, Src: "2", Dst: "3"},
	}, builder.WithDirected(true), builder.WithNumericIDs())
	require.NoError(t, err)
	return g
}

func TestGraph_Counts(t *testing.T) {
	g := buildTriangle(t)

	assert.EqualValues(t, 4, g.NumberOfNodes())
	assert.EqualValues(t, 7, g.NumberOfDirectedEdges())
	assert.EqualValues(t, 4, g.NumberOfEdges())
	assert.EqualValues(t, 1, g.NumberOfSelfLoops())
	assert.EqualValues(t, 1, g.NumberOfSingletons())
	assert.EqualValues(t, 1, g.NumberOfTraps())
	assert.EqualValues(t, 3, g.MaxNodeDegree())
	assert.EqualValues(t, 0, g.MinNodeDegree())
	assert.False(t, g.IsMultigraph())
	assert.True(t, g.HasDisconnectedNodes())
	assert.Contains(t, g.String(), "triangle: undirected, 4 nodes, 4 edges")

	degrees := g.NodeDegrees()
	var sum core.EdgeT
	for _, d := range degrees {
		sum += core.EdgeT(d)
	}
	assert.Equal(t, g.NumberOfDirectedEdges(), sum)
}

func TestGraph_CheckedAndUncheckedAgree(t *testing.T) {
	g := buildDirected(t)
	for e := core.EdgeT(0); e < g.NumberOfDirectedEdges(); e++ {
		src, dst, err := g.NodeIDsFromEdgeID(e)
		require.NoError(t, err)
		us, ud := g.UncheckedNodeIDsFromEdgeID(e)
		assert.Equal(t, src, us)
		assert.Equal(t, dst, ud)

		id, err := g.EdgeIDFromNodeIDs(src, dst)
		require.NoError(t, err)
		assert.Equal(t, e, id)
		assert.Equal(t, e, g.UncheckedEdgeIDFromNodeIDs(src, dst))
	}
	assert.Equal(t, core.EdgeNotPresent, g.UncheckedEdgeIDFromNodeIDs(1, 0))

	_, err := g.EdgeIDFromNodeIDs(1, 0)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, _, err = g.NodeIDsFromEdgeID(99)
	assert.ErrorIs(t, err, core.ErrEdgeOutOfRange)
	_, err = g.NodeDegree(4)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	assert.Equal(t, core.KindOutOfRange, core.KindOf(err))
}

func TestGraph_Classification(t *testing.T) {
	g := buildDirected(t)

	trap, err := g.IsTrap(3)
	require.NoError(t, err)
	assert.True(t, trap)
	// node 3 has an inbound edge, so it is not a singleton in a directed graph
	single, err := g.IsSingleton(3)
	require.NoError(t, err)
	assert.False(t, single)

	loopy, err := builder.FromPairs(2, []core.Pair{{Src: 1, Dst: 1}})
	require.NoError(t, err)
	ok, err := loopy.IsSingletonWithSelfLoops(1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = loopy.IsSingleton(0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGraph_Guards(t *testing.T) {
	g := buildDirected(t)

	assert.NoError(t, g.Must(g.MustHaveNodes, g.MustHaveEdges, g.MustBeDirected, g.MustHaveEdgeTypes))
	assert.ErrorIs(t, g.MustHaveWeights(), core.ErrMissingWeights)
	assert.ErrorIs(t, g.MustBeUndirected(), core.ErrMustBeUndirected)
	assert.ErrorIs(t, g.MustHaveNodeTypes(), core.ErrMissingNodeTypes)
	assert.ErrorIs(t, g.MustContainNode(10), core.ErrNodeOutOfRange)
	assert.Equal(t, core.KindMissingFeature, core.KindOf(g.MustHaveWeights()))

	tri := buildTriangle(t)
	assert.NoError(t, tri.MustHavePositiveWeights())
}

func TestGraph_TypesAndWeights(t *testing.T) {
	g := buildDirected(t)

	typ, err := g.EdgeTypeID(0)
	require.NoError(t, err)
	name, err := g.EdgeTypeName(typ)
	require.NoError(t, err)
	assert.Equal(t, "a", name)

	last, err := g.EdgeIDFromNodeIDs(2, 3)
	require.NoError(t, err)
	typ, err = g.EdgeTypeID(last)
	require.NoError(t, err)
	assert.Equal(t, core.EdgeTypeNotPresent, typ)

	tri := buildTriangle(t)
	w, err := tri.EdgeWeightFromNodeIDs(2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 4, w)
	lo, err := tri.MinEdgeWeight()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, lo, 1e-9)
}

func TestGraph_EdgesIteration(t *testing.T) {
	g := buildTriangle(t)

	var undirected []core.Pair
	for e := range g.Edges(false) {
		assert.LessOrEqual(t, e.Src, e.Dst)
		undirected = append(undirected, core.Pair{Src: e.Src, Dst: e.Dst})
	}
	assert.Equal(t, []core.Pair{{Src: 0, Dst: 1}, {Src: 0, Dst: 2}, {Src: 1, Dst: 2}, {Src: 2, Dst: 2}}, undirected)
	assert.Len(t, slices.Collect(g.Edges(true)), 7)

	ctx := context.Background()
	p, err := g.ParEdges(ctx, false, parallel.WithMinLen(1))
	require.NoError(t, err)
	got := parallel.Collect(p)
	assert.Len(t, got, 4)

	lower, err := g.ParLowerTriangularEdges(ctx)
	require.NoError(t, err)
	for _, e := range parallel.Collect(lower) {
		assert.LessOrEqual(t, e.Dst, e.Src)
	}
}

func TestGraph_SourcesAreTransparent(t *testing.T) {
	g := buildDirected(t)
	before := make([]core.NodeT, 0, g.NumberOfDirectedEdges())
	for e := core.EdgeT(0); e < g.NumberOfDirectedEdges(); e++ {
		before = append(before, g.UncheckedSourceNodeIDFromEdgeID(e))
	}

	g.EnableSources()
	g.EnableSources()
	assert.True(t, g.HasSources())
	for e := core.EdgeT(0); e < g.NumberOfDirectedEdges(); e++ {
		assert.Equal(t, before[e], g.UncheckedSourceNodeIDFromEdgeID(e))
	}
	g.DisableSources()
	assert.False(t, g.HasSources())
}

func TestGraph_Transforms(t *testing.T) {
	g := buildDirected(t)
	rev := g.Transposed()

	assert.True(t, rev.HasEdgeFromNodeIDs(1, 0))
	assert.True(t, rev.HasEdgeFromNodeIDs(3, 2))
	assert.False(t, rev.HasEdgeFromNodeIDs(0, 1))
	e, err := rev.EdgeIDFromNodeIDs(3, 2)
	require.NoError(t, err)
	typ, err := rev.EdgeTypeID(e)
	require.NoError(t, err)
	assert.Equal(t, core.EdgeTypeNotPresent, typ)

	plain := g.WithoutEdgeTypes().WithName("plain")
	assert.False(t, plain.HasEdgeTypes())
	assert.True(t, g.HasEdgeTypes())
	assert.Equal(t, "plain", plain.Name())

	tri := buildTriangle(t)
	assert.False(t, tri.WithoutWeights().HasWeights())
	assert.Equal(t, tri.Hash(), tri.Transposed().Hash())
	assert.NotEqual(t, tri.Hash(), tri.WithoutWeights().Hash())
}

func TestGraph_Names(t *testing.T) {
	g, err := builder.FromEdgeRecords([]builder.EdgeRecord{{Line: 1, Src: "x", Dst: "y"}})
	require.NoError(t, err)

	id, err := g.EdgeIDFromNodeNames("y", "x")
	require.NoError(t, err)
	src, err := g.SourceNodeIDFromEdgeID(id)
	require.NoError(t, err)
	name, err := g.NodeName(src)
	require.NoError(t, err)
	assert.Equal(t, "y", name)

	_, err = g.NodeID("z")
	assert.ErrorIs(t, err, core.ErrUnknownName)
}
