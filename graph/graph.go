package graph

import (
	"context"
	"fmt"
	"math"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/csr"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
	"github.com/AnacletoLAB/ensmallen-sub009/vocabulary"
)

// Graph is an immutable, compressed graph. See the package documentation.
type Graph struct {
	name     string
	directed bool
	store    *csr.CSR

	nodes *NodeVocabulary

	nodeTypes     []core.NodeTypeT
	nodeTypeNames *NodeTypeVocabulary

	edgeTypes     []core.EdgeTypeT
	edgeTypeNames *EdgeTypeVocabulary

	weights []core.WeightT

	cache *cache
}

// New validates parts and wraps them into a Graph.
//
// Validation (in order):
//  1. Store is non-nil and the node vocabulary, when given, has one name per node.
//  2. Optional arrays have the right length and reference known type ids.
//  3. Weights are finite.
//  4. An undirected store is symmetric: every src -> dst has its dst -> src.
//
// Complexity: O(N + M log d) with d the maximum degree; the symmetry check
// runs in parallel.
func New(parts Parts) (*Graph, error) {
	if parts.Store == nil {
		return nil, fmt.Errorf("graph: %w: nil store", core.ErrInvalidParameter)
	}
	n := parts.Store.NumberOfNodes()
	m := parts.Store.NumberOfEdges()

	nodes := parts.Nodes
	if nodes == nil {
		var err error
		if nodes, err = vocabulary.Numeric[core.NodeT](int(n)); err != nil {
			return nil, fmt.Errorf("graph: %w", err)
		}
	}
	if nodes.Len() != int(n) {
		return nil, fmt.Errorf("graph: %w: %d node names for %d nodes", core.ErrInvalidParameter, nodes.Len(), n)
	}
	if err := nodes.BuildReverseMapping(); err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}

	if parts.NodeTypes != nil {
		if parts.NodeTypeNames == nil {
			return nil, fmt.Errorf("graph: %w: node types without a name vocabulary", core.ErrInvalidParameter)
		}
		if err := checkTypes(parts.NodeTypes, int(n), parts.NodeTypeNames, core.NodeTypeNotPresent, "node"); err != nil {
			return nil, err
		}
	}
	if parts.EdgeTypes != nil {
		if parts.EdgeTypeNames == nil {
			return nil, fmt.Errorf("graph: %w: edge types without a name vocabulary", core.ErrInvalidParameter)
		}
		if err := checkTypes(parts.EdgeTypes, int(m), parts.EdgeTypeNames, core.EdgeTypeNotPresent, "edge"); err != nil {
			return nil, err
		}
	}
	if parts.Weights != nil {
		if len(parts.Weights) != int(m) {
			return nil, fmt.Errorf("graph: %w: %d weights for %d edges", core.ErrInvalidParameter, len(parts.Weights), m)
		}
		for e, w := range parts.Weights {
			if math.IsNaN(float64(w)) || math.IsInf(float64(w), 0) {
				return nil, fmt.Errorf("graph: %w: edge %d has weight %v", core.ErrInvalidWeight, e, w)
			}
		}
	}
	if !parts.Directed {
		if err := checkSymmetric(parts.Store); err != nil {
			return nil, err
		}
	}

	return &Graph{
		name:          parts.Name,
		directed:      parts.Directed,
		store:         parts.Store,
		nodes:         nodes,
		nodeTypes:     parts.NodeTypes,
		nodeTypeNames: parts.NodeTypeNames,
		edgeTypes:     parts.EdgeTypes,
		edgeTypeNames: parts.EdgeTypeNames,
		weights:       parts.Weights,
		cache:         &cache{},
	}, nil
}

type typeVocabulary interface {
	Len() int
	BuildReverseMapping() error
}

// checkTypes validates a node or edge type array. Both type ids are uint16.
func checkTypes(ids []uint16, want int, names typeVocabulary, missing uint16, what string) error {
	if len(ids) != want {
		return fmt.Errorf("graph: %w: %d %s types for %d %ss", core.ErrInvalidParameter, len(ids), what, want, what)
	}
	if err := names.BuildReverseMapping(); err != nil {
		return fmt.Errorf("graph: %w", err)
	}
	for i, id := range ids {
		if id != missing && int(id) >= names.Len() {
			return fmt.Errorf("graph: %w: %s %d has type %d, %d types known", core.ErrInvalidParameter, what, i, id, names.Len())
		}
	}

	return nil
}

func checkSymmetric(store *csr.CSR) error {
	n := int(store.NumberOfNodes())
	return parallel.ForEach(context.Background(), n, func(i int) error {
		src := core.NodeT(i)
		neighbours := store.UncheckedNeighbours(src)
		for j, dst := range neighbours {
			// parallel edges must be mirrored one for one
			if j > 0 && neighbours[j-1] == dst {
				continue
			}
			if store.UncheckedEdgeCount(src, dst) != store.UncheckedEdgeCount(dst, src) {
				return fmt.Errorf("graph: %w: undirected store has %d -> %d without its reverse", core.ErrInvalidParameter, src, dst)
			}
		}
		return nil
	})
}

// Name returns the graph name.
func (g *Graph) Name() string { return g.name }

// IsDirected reports whether the graph is directed.
func (g *Graph) IsDirected() bool { return g.directed }

// NumberOfNodes returns N.
func (g *Graph) NumberOfNodes() core.NodeT { return g.store.NumberOfNodes() }

// NumberOfDirectedEdges returns the number of stored directed edges. An
// undirected edge between distinct nodes counts twice.
func (g *Graph) NumberOfDirectedEdges() core.EdgeT { return g.store.NumberOfEdges() }

// NumberOfEdges returns the number of edges as the user sees them: directed
// edges for directed graphs, each undirected edge once otherwise.
func (g *Graph) NumberOfEdges() core.EdgeT {
	m := g.store.NumberOfEdges()
	if g.directed {
		return m
	}
	loops := g.NumberOfSelfLoops()

	return (m-loops)/2 + loops
}

// HasNodes reports whether N > 0.
func (g *Graph) HasNodes() bool { return g.NumberOfNodes() > 0 }

// HasEdges reports whether the graph has at least one edge.
func (g *Graph) HasEdges() bool { return g.store.NumberOfEdges() > 0 }

// HasWeights reports whether every edge carries a weight.
func (g *Graph) HasWeights() bool { return g.weights != nil }

// HasNodeTypes reports whether the graph carries node types.
func (g *Graph) HasNodeTypes() bool { return g.nodeTypes != nil }

// HasEdgeTypes reports whether the graph carries edge types.
func (g *Graph) HasEdgeTypes() bool { return g.edgeTypes != nil }

// NumberOfNodeTypes returns the size of the node type vocabulary.
func (g *Graph) NumberOfNodeTypes() int {
	if g.nodeTypeNames == nil {
		return 0
	}

	return g.nodeTypeNames.Len()
}

// NumberOfEdgeTypes returns the size of the edge type vocabulary.
func (g *Graph) NumberOfEdgeTypes() int {
	if g.edgeTypeNames == nil {
		return 0
	}

	return g.edgeTypeNames.Len()
}

// EnableSources materialises the reverse edge -> source array, turning
// source lookups into array reads. It is idempotent.
func (g *Graph) EnableSources() { g.store.EnableSources() }

// DisableSources frees the reverse array. It is idempotent.
func (g *Graph) DisableSources() { g.store.DisableSources() }

// HasSources reports whether the reverse array is materialised.
func (g *Graph) HasSources() bool { return g.store.HasSources() }

// String returns a one-line summary of the graph.
func (g *Graph) String() string {
	kind := "undirected"
	if g.directed {
		kind = "directed"
	}
	name := g.name
	if name == "" {
		name = "graph"
	}

	return fmt.Sprintf("%s: %s, %d nodes, %d edges, weighted=%t, node types=%d, edge types=%d",
		name, kind, g.NumberOfNodes(), g.NumberOfEdges(), g.HasWeights(), g.NumberOfNodeTypes(), g.NumberOfEdgeTypes())
}
