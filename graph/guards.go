package graph

import (
	"fmt"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// MustHaveNodes fails with core.ErrMissingNodes on an empty graph.
func (g *Graph) MustHaveNodes() error {
	if !g.HasNodes() {
		return core.ErrMissingNodes
	}

	return nil
}

// MustHaveEdges fails with core.ErrMissingEdges on an edgeless graph.
func (g *Graph) MustHaveEdges() error {
	if !g.HasEdges() {
		return core.ErrMissingEdges
	}

	return nil
}

// MustHaveWeights fails with core.ErrMissingWeights on an unweighted graph.
func (g *Graph) MustHaveWeights() error {
	if !g.HasWeights() {
		return core.ErrMissingWeights
	}

	return nil
}

// MustHavePositiveWeights requires weights that are all strictly positive.
func (g *Graph) MustHavePositiveWeights() error {
	if err := g.MustHaveWeights(); err != nil {
		return err
	}
	if g.weightStats().nonPositive {
		return fmt.Errorf("%w: minimum weight is %v", core.ErrNonPositiveWeights, g.weightStats().min)
	}

	return nil
}

// MustHaveNodeTypes fails with core.ErrMissingNodeTypes when node types are absent.
func (g *Graph) MustHaveNodeTypes() error {
	if !g.HasNodeTypes() {
		return core.ErrMissingNodeTypes
	}

	return nil
}

// MustHaveEdgeTypes fails with core.ErrMissingEdgeTypes when edge types are absent.
func (g *Graph) MustHaveEdgeTypes() error {
	if !g.HasEdgeTypes() {
		return core.ErrMissingEdgeTypes
	}

	return nil
}

// MustBeUndirected fails with core.ErrMustBeUndirected on a directed graph.
func (g *Graph) MustBeUndirected() error {
	if g.directed {
		return core.ErrMustBeUndirected
	}

	return nil
}

// MustBeDirected fails with core.ErrMustBeDirected on an undirected graph.
func (g *Graph) MustBeDirected() error {
	if !g.directed {
		return core.ErrMustBeDirected
	}

	return nil
}

// MustContainNode fails with core.ErrNodeOutOfRange when id >= N.
func (g *Graph) MustContainNode(id core.NodeT) error {
	if id >= g.NumberOfNodes() {
		return core.NodeOutOfRange(id, g.NumberOfNodes())
	}

	return nil
}

// MustContainEdge fails with core.ErrEdgeOutOfRange when id >= M.
func (g *Graph) MustContainEdge(id core.EdgeT) error {
	if id >= g.NumberOfDirectedEdges() {
		return core.EdgeOutOfRange(id, g.NumberOfDirectedEdges())
	}

	return nil
}

// Must runs guards in order and returns the first failure.
//
//	if err := g.Must(g.MustBeUndirected, g.MustHaveEdges); err != nil { ... }
func (g *Graph) Must(guards ...func() error) error {
	for _, guard := range guards {
		if err := guard(); err != nil {
			return err
		}
	}

	return nil
}
