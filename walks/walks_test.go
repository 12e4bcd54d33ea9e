package walks_test

import (
	"context"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnacletoLAB/ensmallen-sub009/builder"
	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/walks"
)

func buildCircle(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g, err := builder.Circle(n)
	require.NoError(t, err)
	return g
}

func assertValidWalk(t *testing.T, g *graph.Graph, walk []core.NodeT) {
	t.Helper()
	for i := 1; i < len(walk); i++ {
		assert.True(t, g.HasEdgeFromNodeIDs(walk[i-1], walk[i]), "step %d: %d -> %d", i, walk[i-1], walk[i])
	}
}

func TestSplitmix64_KnownValue(t *testing.T) {
	assert.Equal(t, uint64(0xe220a8397b1dcdaf), walks.Splitmix64(0))
	assert.NotEqual(t, walks.Splitmix64(1), walks.Splitmix64(2))
}

func TestDefaultParameters(t *testing.T) {
	p := walks.DefaultParameters()
	assert.EqualValues(t, 32, p.WalkLength)
	assert.EqualValues(t, 1, p.Iterations)
	assert.Equal(t, walks.Splitmix64(42), p.RandomState)
	assert.True(t, p.IsFirstOrderWalk())
	assert.False(t, p.IsNode2VecWalk())

	p.ExploreWeight = 2
	assert.False(t, p.IsFirstOrderWalk())
	assert.True(t, p.IsNode2VecWalk())
}

func TestValidate(t *testing.T) {
	undirected := buildCircle(t, 5)
	directed, err := builder.Circle(5, builder.WithDirected(true))
	require.NoError(t, err)
	empty, err := builder.FromPairs(3, nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		g      *graph.Graph
		mutate func(p *walks.Parameters)
		want   error
	}{
		{"zero return weight", undirected, func(p *walks.Parameters) { p.ReturnWeight = 0 }, walks.ErrInvalidParameters},
		{"negative explore weight", undirected, func(p *walks.Parameters) { p.ExploreWeight = -1 }, walks.ErrInvalidParameters},
		{"zero length", undirected, func(p *walks.Parameters) { p.WalkLength = 0 }, walks.ErrInvalidParameters},
		{"zero iterations", undirected, func(p *walks.Parameters) { p.Iterations = 0 }, walks.ErrInvalidParameters},
		{"min length above length", undirected, func(p *walks.Parameters) { p.MinLength = 40 }, walks.ErrInvalidParameters},
		{"node2vec on directed", directed, func(p *walks.Parameters) { p.ReturnWeight = 2 }, core.ErrMustBeUndirected},
		{"no edges", empty, func(p *walks.Parameters) {}, core.ErrMissingEdges},
		{"partial dense mapping", undirected, func(p *walks.Parameters) {
			p.DenseNodeMapping = map[core.NodeT]core.NodeT{0: 0}
		}, walks.ErrInvalidParameters},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := walks.DefaultParameters()
			tc.mutate(&p)
			assert.ErrorIs(t, p.Validate(tc.g), tc.want)
		})
	}
	assert.NoError(t, walks.DefaultParameters().Validate(undirected))

}

func TestCompleteWalks_ShapeAndValidity(t *testing.T) {
	g, err := builder.ErdosRenyi(60, 0.1, builder.WithSeed(5))
	require.NoError(t, err)
	p := walks.DefaultParameters()
	p.WalkLength = 12
	p.Iterations = 3
	p.ExploreWeight = 2

	seq, err := walks.CompleteWalks(g, p)
	require.NoError(t, err)
	got, err := seq.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, seq.Len(), len(got))
	for _, walk := range got {
		assert.LessOrEqual(t, len(walk), 12)
		assertValidWalk(t, g, walk)
	}
}

func TestWalks_ReproducibleAcrossWorkers(t *testing.T) {
	g, err := builder.RandomConnected(80, 120, builder.WithSeed(9), builder.WithWeightFn(builder.UniformWeightFn(0.5, 3)))
	require.NoError(t, err)
	p := walks.DefaultParameters().Seed(1234)
	p.WalkLength = 20
	p.ExploreWeight = 0.25

	collect := func(workers int) [][]core.NodeT {
		seq, err := walks.RandomWalks(g, 50, p, walks.WithWorkers(workers))
		require.NoError(t, err)
		out, err := seq.Collect(context.Background())
		require.NoError(t, err)
		return out
	}
	one := collect(1)
	assert.Equal(t, one, collect(4))
	assert.Equal(t, one, collect(0))

	seq, err := walks.RandomWalks(g, 50, p)
	require.NoError(t, err)
	var sequential [][]core.NodeT
	for _, walk := range seq.All() {
		sequential = append(sequential, walk)
	}
	assert.Equal(t, one, sequential)

	other, err := walks.RandomWalks(g, 50, p.Seed(4321))
	require.NoError(t, err)
	otherWalks, err := other.Collect(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, one, otherWalks)
}

func TestWalks_TrapsTruncateAndMinLength(t *testing.T) {
	g, err := builder.Chain(3, builder.WithDirected(true))
	require.NoError(t, err)
	p := walks.DefaultParameters()
	p.WalkLength = 5

	seq, err := walks.CompleteWalks(g, p)
	require.NoError(t, err)
	assert.Contains(t, seq.Algorithm(), "trap-aware")
	got, err := seq.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]core.NodeT{{0, 1, 2}, {1, 2}}, got)

	p.MinLength = 3
	seq, err = walks.CompleteWalks(g, p)
	require.NoError(t, err)
	got, err = seq.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]core.NodeT{{0, 1, 2}}, got)
}

func TestWalks_ReturnWeightSteersAwayFromPrevious(t *testing.T) {
	g := buildCircle(t, 10)
	p := walks.DefaultParameters()
	p.WalkLength = 25
	p.ReturnWeight = 1e-12

	seq, err := walks.CompleteWalks(g, p)
	require.NoError(t, err)
	assert.Equal(t, "second order", seq.Algorithm())
	for _, walk := range seq.All() {
		require.Len(t, walk, 25)
		for i := 2; i < len(walk); i++ {
			assert.NotEqual(t, walk[i-2], walk[i])
		}
	}
}

func TestWalks_ApproximateAndDenseMapping(t *testing.T) {
	g, err := builder.Complete(12)
	require.NoError(t, err)
	p := walks.DefaultParameters()
	p.WalkLength = 8
	p.MaxNeighbours = 3
	p.ExploreWeight = 3
	p.DenseNodeMapping = make(map[core.NodeT]core.NodeT)
	for id := range g.NodeIDs() {
		p.DenseNodeMapping[id] = id + 100
	}

	seq, err := walks.CompleteWalks(g, p)
	require.NoError(t, err)
	got, err := seq.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 12)
	for _, walk := range got {
		assert.Len(t, walk, 8)
		assert.GreaterOrEqual(t, slices.Min(walk), core.NodeT(100))
	}
}

func TestRandomWalks_Quantity(t *testing.T) {
	g := buildCircle(t, 4)
	p := walks.DefaultParameters()
	p.Iterations = 2

	seq, err := walks.RandomWalks(g, 5, p)
	require.NoError(t, err)
	assert.Equal(t, 10, seq.Len())

	_, err = walks.RandomWalks(g, 0, p)
	assert.ErrorIs(t, err, walks.ErrInvalidParameters)
}

// buildTypedHexagon returns a 6-node undirected graph whose ring edges
// i - i+1 have type "ring" and whose chords i - i+2 have type "chord".
// Nodes 0..2 are typed "left" and 3..5 "right".
func buildTypedHexagon(t *testing.T) *graph.Graph {
	t.Helper()
	var edges []builder.EdgeRecord
	for i := range 6 {
		edges = append(edges,
			builder.EdgeRecord{Line: len(edges) + 1, Src: strconv.Itoa(i), Dst: strconv.Itoa((i + 1) % 6), EdgeType: "ring"},
			builder.EdgeRecord{Line: len(edges) + 2, Src: strconv.Itoa(i), Dst: strconv.Itoa((i + 2) % 6), EdgeType: "chord"},
		)
	}
	var nodes []builder.NodeRecord
	for i := range 6 {
		typ := "left"
		if i >= 3 {
			typ = "right"
		}
		nodes = append(nodes, builder.NodeRecord{Line: i + 1, Name: strconv.Itoa(i), Type: typ})
	}
	g, err := builder.Build(builder.Records(edges), builder.Records(nodes), builder.WithNumericIDs())
	require.NoError(t, err)
	require.True(t, g.HasEdgeTypes())
	require.True(t, g.HasNodeTypes())
	return g
}

func edgeType(t *testing.T, g *graph.Graph, src, dst core.NodeT) core.EdgeTypeT {
	t.Helper()
	e, err := g.EdgeIDFromNodeIDs(src, dst)
	require.NoError(t, err)
	typ, err := g.EdgeTypeID(e)
	require.NoError(t, err)
	return typ
}

func TestWalks_ChangeEdgeTypeWeightKeepsEdgeType(t *testing.T) {
	g := buildTypedHexagon(t)
	p := walks.DefaultParameters()
	p.WalkLength = 20
	p.Iterations = 10
	p.ChangeEdgeTypeWeight = 1e-9

	seq, err := walks.CompleteWalks(g, p)
	require.NoError(t, err)
	changes := 0
	for _, walk := range seq.All() {
		require.Len(t, walk, 20)
		first := edgeType(t, g, walk[0], walk[1])
		for i := 2; i < len(walk); i++ {
			if edgeType(t, g, walk[i-1], walk[i]) != first {
				changes++
			}
		}
	}
	assert.Zero(t, changes)

	// without the bias both types show up after the first step
	p.ChangeEdgeTypeWeight = 1
	seq, err = walks.CompleteWalks(g, p)
	require.NoError(t, err)
	for _, walk := range seq.All() {
		first := edgeType(t, g, walk[0], walk[1])
		for i := 2; i < len(walk); i++ {
			if edgeType(t, g, walk[i-1], walk[i]) != first {
				changes++
			}
		}
	}
	assert.Positive(t, changes)
}

func TestWalks_ChangeNodeTypeWeightKeepsNodeType(t *testing.T) {
	g := buildTypedHexagon(t)
	p := walks.DefaultParameters()
	p.WalkLength = 20
	p.Iterations = 10
	p.ChangeNodeTypeWeight = 1e-9

	seq, err := walks.CompleteWalks(g, p)
	require.NoError(t, err)
	assert.Equal(t, "weighted first order", seq.Algorithm())
	for _, walk := range seq.All() {
		start, err := g.NodeTypeID(walk[0])
		require.NoError(t, err)
		for _, v := range walk[1:] {
			typ, err := g.NodeTypeID(v)
			require.NoError(t, err)
			assert.Equal(t, start, typ, "walk %v leaves the type of its start", walk)
		}
	}
}

func TestWalks_ExploreWeightStaysNearPrevious(t *testing.T) {
	// ring of 12 where every node also links to the node two steps ahead
	var pairs []core.Pair
	for i := range core.NodeT(12) {
		pairs = append(pairs, core.Pair{Src: i, Dst: (i + 1) % 12}, core.Pair{Src: i, Dst: (i + 2) % 12})
	}
	g, err := builder.FromPairs(12, pairs)
	require.NoError(t, err)

	p := walks.DefaultParameters()
	p.WalkLength = 30
	p.Iterations = 5
	p.ExploreWeight = 1e-12

	seq, err := walks.CompleteWalks(g, p)
	require.NoError(t, err)
	for _, walk := range seq.All() {
		require.Len(t, walk, 30)
		for i := 2; i < len(walk); i++ {
			prev, next := walk[i-2], walk[i]
			near := next == prev || g.HasEdgeFromNodeIDs(prev, next)
			assert.True(t, near, "step %d: %d -> %d -> %d", i, prev, walk[i-1], next)
		}
	}
}

func TestWalks_NormalizeByDegreePrefersLowDegree(t *testing.T) {
	// node 0 links to hub 1 (degree 21) and to leaf 2 (degree 1)
	pairs := []core.Pair{{Src: 0, Dst: 1}, {Src: 0, Dst: 2}}
	for leaf := core.NodeT(3); leaf < 23; leaf++ {
		pairs = append(pairs, core.Pair{Src: 1, Dst: leaf})
	}
	g, err := builder.FromPairs(23, pairs)
	require.NoError(t, err)

	hubShare := func(normalize bool) int {
		p := walks.DefaultParameters()
		p.WalkLength = 2
		p.Iterations = 2000
		p.NormalizeByDegree = normalize
		seq, err := walks.CompleteWalks(g, p)
		require.NoError(t, err)
		hub := 0
		for _, walk := range seq.All() {
			if walk[0] == 0 && walk[1] == 1 {
				hub++
			}
		}
		return hub
	}

	// about 1000 of 2000 walks from 0 reach the hub without normalisation,
	// about 2000/22 with it
	assert.Greater(t, hubShare(false), 700)
	assert.Less(t, hubShare(true), 300)
}
