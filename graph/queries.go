package graph

import (
	"fmt"
	"slices"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// HasNode reports whether id < N.
func (g *Graph) HasNode(id core.NodeT) bool { return id < g.NumberOfNodes() }

// HasEdgeFromNodeIDs reports whether src -> dst exists. Out-of-range ids
// yield false.
func (g *Graph) HasEdgeFromNodeIDs(src, dst core.NodeT) bool {
	if !g.HasNode(src) || !g.HasNode(dst) {
		return false
	}

	return g.store.UncheckedHasEdge(src, dst)
}

// UncheckedHasEdgeFromNodeIDs is HasEdgeFromNodeIDs for validated ids.
func (g *Graph) UncheckedHasEdgeFromNodeIDs(src, dst core.NodeT) bool {
	return g.store.UncheckedHasEdge(src, dst)
}

// EdgeIDFromNodeIDs returns the id of src -> dst, the first one on a multigraph.
func (g *Graph) EdgeIDFromNodeIDs(src, dst core.NodeT) (core.EdgeT, error) {
	return g.store.EdgeID(src, dst)
}

// UncheckedEdgeIDFromNodeIDs returns the first id of src -> dst, or
// core.EdgeNotPresent when there is no such edge.
func (g *Graph) UncheckedEdgeIDFromNodeIDs(src, dst core.NodeT) core.EdgeT {
	id, found := g.store.UncheckedEdgeID(src, dst)
	if !found {
		return core.EdgeNotPresent
	}

	return id
}

// EdgeIDFromNodeNames resolves both names and returns the edge id.
func (g *Graph) EdgeIDFromNodeNames(src, dst string) (core.EdgeT, error) {
	s, err := g.NodeID(src)
	if err != nil {
		return 0, err
	}
	d, err := g.NodeID(dst)
	if err != nil {
		return 0, err
	}

	return g.EdgeIDFromNodeIDs(s, d)
}

// NodeIDsFromEdgeID returns the endpoints of edge e.
func (g *Graph) NodeIDsFromEdgeID(e core.EdgeT) (core.NodeT, core.NodeT, error) {
	return g.store.NodeIDs(e)
}

// UncheckedNodeIDsFromEdgeID is NodeIDsFromEdgeID for a validated id.
func (g *Graph) UncheckedNodeIDsFromEdgeID(e core.EdgeT) (core.NodeT, core.NodeT) {
	return g.store.UncheckedNodeIDs(e)
}

// SourceNodeIDFromEdgeID returns the source of edge e.
func (g *Graph) SourceNodeIDFromEdgeID(e core.EdgeT) (core.NodeT, error) {
	if err := g.MustContainEdge(e); err != nil {
		return 0, err
	}

	return g.store.UncheckedSourceNodeID(e), nil
}

// UncheckedSourceNodeIDFromEdgeID is SourceNodeIDFromEdgeID for a validated id.
func (g *Graph) UncheckedSourceNodeIDFromEdgeID(e core.EdgeT) core.NodeT {
	return g.store.UncheckedSourceNodeID(e)
}

// DestinationNodeIDFromEdgeID returns the destination of edge e.
func (g *Graph) DestinationNodeIDFromEdgeID(e core.EdgeT) (core.NodeT, error) {
	if err := g.MustContainEdge(e); err != nil {
		return 0, err
	}

	return g.store.UncheckedDestinationNodeID(e), nil
}

// UncheckedDestinationNodeIDFromEdgeID is DestinationNodeIDFromEdgeID for a validated id.
func (g *Graph) UncheckedDestinationNodeIDFromEdgeID(e core.EdgeT) core.NodeT {
	return g.store.UncheckedDestinationNodeID(e)
}

// MinMaxEdgeIDsFromSourceNodeID returns the half-open edge id range of src.
func (g *Graph) MinMaxEdgeIDsFromSourceNodeID(src core.NodeT) (core.EdgeT, core.EdgeT, error) {
	return g.store.MinMaxEdgeIDs(src)
}

// UncheckedMinMaxEdgeIDsFromSourceNodeID is MinMaxEdgeIDsFromSourceNodeID for a validated id.
func (g *Graph) UncheckedMinMaxEdgeIDsFromSourceNodeID(src core.NodeT) (core.EdgeT, core.EdgeT) {
	return g.store.UncheckedMinMaxEdgeIDs(src)
}

// NodeDegree returns the out-degree of id.
func (g *Graph) NodeDegree(id core.NodeT) (core.NodeT, error) {
	if err := g.MustContainNode(id); err != nil {
		return 0, err
	}

	return g.UncheckedNodeDegree(id), nil
}

// UncheckedNodeDegree is NodeDegree for a validated id.
func (g *Graph) UncheckedNodeDegree(id core.NodeT) core.NodeT {
	return core.NodeT(g.store.UncheckedDegree(id))
}

// NodeDegrees returns the out-degree of every node.
func (g *Graph) NodeDegrees() []core.NodeT {
	out := make([]core.NodeT, g.NumberOfNodes())
	for i := range out {
		out[i] = g.UncheckedNodeDegree(core.NodeT(i))
	}

	return out
}

// NeighbourNodeIDs returns a copy of the sorted destinations of id.
func (g *Graph) NeighbourNodeIDs(id core.NodeT) ([]core.NodeT, error) {
	if err := g.MustContainNode(id); err != nil {
		return nil, err
	}

	return slices.Clone(g.store.UncheckedNeighbours(id)), nil
}

// UncheckedNeighbourNodeIDs returns the sorted destinations of id as a view
// into the store. The caller must not modify it.
func (g *Graph) UncheckedNeighbourNodeIDs(id core.NodeT) []core.NodeT {
	return g.store.UncheckedNeighbours(id)
}

// IsSingleton reports whether no edge touches id.
func (g *Graph) IsSingleton(id core.NodeT) (bool, error) {
	if err := g.MustContainNode(id); err != nil {
		return false, err
	}

	return g.UncheckedIsSingleton(id), nil
}

// UncheckedIsSingleton is IsSingleton for a validated id.
func (g *Graph) UncheckedIsSingleton(id core.NodeT) bool {
	if !g.directed {
		return g.store.UncheckedDegree(id) == 0
	}

	return !g.incidence().touched[id]
}

// IsSingletonWithSelfLoops reports whether every edge touching id is a self-loop.
func (g *Graph) IsSingletonWithSelfLoops(id core.NodeT) (bool, error) {
	if err := g.MustContainNode(id); err != nil {
		return false, err
	}

	return g.UncheckedIsSingletonWithSelfLoops(id), nil
}

// UncheckedIsSingletonWithSelfLoops is IsSingletonWithSelfLoops for a validated id.
func (g *Graph) UncheckedIsSingletonWithSelfLoops(id core.NodeT) bool {
	inc := g.incidence()

	return inc.touched[id] && !inc.foreign[id]
}

// IsTrap reports whether id has out-degree zero.
func (g *Graph) IsTrap(id core.NodeT) (bool, error) {
	if err := g.MustContainNode(id); err != nil {
		return false, err
	}

	return g.UncheckedIsTrap(id), nil
}

// UncheckedIsTrap is IsTrap for a validated id.
func (g *Graph) UncheckedIsTrap(id core.NodeT) bool {
	return g.store.UncheckedDegree(id) == 0
}

// NodeTypeID returns the type of node id, core.NodeTypeNotPresent when the
// node is untyped.
func (g *Graph) NodeTypeID(id core.NodeT) (core.NodeTypeT, error) {
	if err := g.MustHaveNodeTypes(); err != nil {
		return 0, err
	}
	if err := g.MustContainNode(id); err != nil {
		return 0, err
	}

	return g.nodeTypes[id], nil
}

// UncheckedNodeTypeID is NodeTypeID for a typed graph and a validated id.
func (g *Graph) UncheckedNodeTypeID(id core.NodeT) core.NodeTypeT { return g.nodeTypes[id] }

// EdgeTypeID returns the type of edge e, core.EdgeTypeNotPresent when the
// edge is untyped.
func (g *Graph) EdgeTypeID(e core.EdgeT) (core.EdgeTypeT, error) {
	if err := g.MustHaveEdgeTypes(); err != nil {
		return 0, err
	}
	if err := g.MustContainEdge(e); err != nil {
		return 0, err
	}

	return g.edgeTypes[e], nil
}

// UncheckedEdgeTypeID is EdgeTypeID for a typed graph and a validated id.
func (g *Graph) UncheckedEdgeTypeID(e core.EdgeT) core.EdgeTypeT { return g.edgeTypes[e] }

// EdgeWeight returns the weight of edge e.
func (g *Graph) EdgeWeight(e core.EdgeT) (core.WeightT, error) {
	if err := g.MustHaveWeights(); err != nil {
		return 0, err
	}
	if err := g.MustContainEdge(e); err != nil {
		return 0, err
	}

	return g.weights[e], nil
}

// UncheckedEdgeWeight is EdgeWeight for a weighted graph and a validated id.
func (g *Graph) UncheckedEdgeWeight(e core.EdgeT) core.WeightT { return g.weights[e] }

// EdgeWeightFromNodeIDs returns the weight of the first edge src -> dst.
func (g *Graph) EdgeWeightFromNodeIDs(src, dst core.NodeT) (core.WeightT, error) {
	if err := g.MustHaveWeights(); err != nil {
		return 0, err
	}
	e, err := g.EdgeIDFromNodeIDs(src, dst)
	if err != nil {
		return 0, err
	}

	return g.weights[e], nil
}

// NodeName returns the name of node id.
func (g *Graph) NodeName(id core.NodeT) (string, error) {
	if err := g.MustContainNode(id); err != nil {
		return "", err
	}

	return g.nodes.UncheckedName(id), nil
}

// UncheckedNodeName is NodeName for a validated id.
func (g *Graph) UncheckedNodeName(id core.NodeT) string { return g.nodes.UncheckedName(id) }

// NodeID returns the id of the node called name.
func (g *Graph) NodeID(name string) (core.NodeT, error) {
	return g.nodes.ID(name)
}

// NodeTypeName returns the name of node type t.
func (g *Graph) NodeTypeName(t core.NodeTypeT) (string, error) {
	if err := g.MustHaveNodeTypes(); err != nil {
		return "", err
	}
	if int(t) >= g.NumberOfNodeTypes() {
		return "", fmt.Errorf("%w: node type %d, %d known", core.ErrNodeTypeOutOfRange, t, g.NumberOfNodeTypes())
	}

	return g.nodeTypeNames.UncheckedName(t), nil
}

// EdgeTypeName returns the name of edge type t.
func (g *Graph) EdgeTypeName(t core.EdgeTypeT) (string, error) {
	if err := g.MustHaveEdgeTypes(); err != nil {
		return "", err
	}
	if int(t) >= g.NumberOfEdgeTypes() {
		return "", fmt.Errorf("%w: edge type %d, %d known", core.ErrEdgeTypeOutOfRange, t, g.NumberOfEdgeTypes())
	}

	return g.edgeTypeNames.UncheckedName(t), nil
}
