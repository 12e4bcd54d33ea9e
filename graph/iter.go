package graph

import (
	"context"
	"iter"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/csr"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// NodeIDs yields 0..N-1.
func (g *Graph) NodeIDs() iter.Seq[core.NodeT] {
	return func(yield func(core.NodeT) bool) {
		for id := core.NodeT(0); id < g.NumberOfNodes(); id++ {
			if !yield(id) {
				return
			}
		}
	}
}

// Edges yields edges in id order. With directed == false only edges with
// Src <= Dst are yielded, so an undirected edge appears once.
func (g *Graph) Edges(directed bool) iter.Seq[core.Edge] {
	return func(yield func(core.Edge) bool) {
		dsts := g.store.Destinations()
		for src := core.NodeT(0); src < g.NumberOfNodes(); src++ {
			lo, hi := g.store.UncheckedMinMaxEdgeIDs(src)
			for e := lo; e < hi; e++ {
				dst := dsts[e]
				if !directed && dst < src {
					continue
				}
				if !yield(core.Edge{ID: e, Src: src, Dst: dst}) {
					return
				}
			}
		}
	}
}

// NeighbourEdges yields the outgoing edges of id.
func (g *Graph) NeighbourEdges(id core.NodeT) (iter.Seq[core.Edge], error) {
	if err := g.MustContainNode(id); err != nil {
		return nil, err
	}

	return func(yield func(core.Edge) bool) {
		lo, hi := g.store.UncheckedMinMaxEdgeIDs(id)
		for e := lo; e < hi; e++ {
			if !yield(core.Edge{ID: e, Src: id, Dst: g.store.UncheckedDestinationNodeID(e)}) {
				return
			}
		}
	}, nil
}

// EdgeWeights yields (edge id, weight) pairs.
func (g *Graph) EdgeWeights() (iter.Seq2[core.EdgeT, core.WeightT], error) {
	if err := g.MustHaveWeights(); err != nil {
		return nil, err
	}

	return func(yield func(core.EdgeT, core.WeightT) bool) {
		for e, w := range g.weights {
			if !yield(core.EdgeT(e), w) {
				return
			}
		}
	}, nil
}

// NodeTypeIDs yields (node id, node type id) pairs.
func (g *Graph) NodeTypeIDs() (iter.Seq2[core.NodeT, core.NodeTypeT], error) {
	if err := g.MustHaveNodeTypes(); err != nil {
		return nil, err
	}

	return func(yield func(core.NodeT, core.NodeTypeT) bool) {
		for id, t := range g.nodeTypes {
			if !yield(core.NodeT(id), t) {
				return
			}
		}
	}, nil
}

// EdgeTypeIDs yields (edge id, edge type id) pairs.
func (g *Graph) EdgeTypeIDs() (iter.Seq2[core.EdgeT, core.EdgeTypeT], error) {
	if err := g.MustHaveEdgeTypes(); err != nil {
		return nil, err
	}

	return func(yield func(core.EdgeT, core.EdgeTypeT) bool) {
		for e, t := range g.edgeTypes {
			if !yield(core.EdgeT(e), t) {
				return
			}
		}
	}, nil
}

// ParNodeIDs returns a splittable producer over 0..N-1.
func (g *Graph) ParNodeIDs() parallel.Producer[core.NodeT] {
	return csr.NewNodesProducer(g.NumberOfNodes())
}

// ParEdges returns a splittable producer over the edges. With
// directed == false it yields Src <= Dst edges only, like Edges(false).
func (g *Graph) ParEdges(ctx context.Context, directed bool, opts ...parallel.Option) (parallel.Producer[core.Edge], error) {
	if directed {
		return csr.NewEdgesProducer(g.store), nil
	}

	return g.ParUpperTriangularEdges(ctx, opts...)
}

// ParLowerTriangularEdges returns a producer over edges with Dst <= Src.
// The O(N) restricted prefix pass runs once, in parallel, before iteration.
func (g *Graph) ParLowerTriangularEdges(ctx context.Context, opts ...parallel.Option) (parallel.Producer[core.Edge], error) {
	return csr.NewRestrictedProducer(ctx, g.store, csr.Lower, opts...)
}

// ParUpperTriangularEdges returns a producer over edges with Dst >= Src.
func (g *Graph) ParUpperTriangularEdges(ctx context.Context, opts ...parallel.Option) (parallel.Producer[core.Edge], error) {
	return csr.NewRestrictedProducer(ctx, g.store, csr.Upper, opts...)
}
