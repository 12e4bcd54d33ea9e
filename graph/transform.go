package graph

import (
	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// clone returns a shallow copy sharing the immutable arrays, with a fresh cache.
func (g *Graph) clone() *Graph {
	c := *g
	c.cache = &cache{}

	return &c
}

// WithName returns the same graph under a new name.
func (g *Graph) WithName(name string) *Graph {
	c := g.clone()
	c.name = name
	// topology is unchanged, the memoised values still hold
	c.cache = g.cache

	return c
}

// WithoutWeights returns the graph without edge weights.
func (g *Graph) WithoutWeights() *Graph {
	c := g.clone()
	c.weights = nil

	return c
}

// WithoutEdgeTypes returns the graph without edge types.
func (g *Graph) WithoutEdgeTypes() *Graph {
	c := g.clone()
	c.edgeTypes = nil
	c.edgeTypeNames = nil

	return c
}

// WithoutNodeTypes returns the graph without node types.
func (g *Graph) WithoutNodeTypes() *Graph {
	c := g.clone()
	c.nodeTypes = nil
	c.nodeTypeNames = nil

	return c
}

// Transposed returns the graph with every edge reversed, carrying weights
// and edge types to the reversed edges. An undirected graph is its own
// transpose and is returned as a clone.
func (g *Graph) Transposed() *Graph {
	if !g.directed {
		return g.clone()
	}
	store, mapping := g.store.Transposed()
	c := g.clone()
	c.store = store
	if g.weights != nil {
		c.weights = make([]core.WeightT, len(g.weights))
		for e, w := range g.weights {
			c.weights[mapping[e]] = w
		}
	}
	if g.edgeTypes != nil {
		c.edgeTypes = make([]core.EdgeTypeT, len(g.edgeTypes))
		for e, t := range g.edgeTypes {
			c.edgeTypes[mapping[e]] = t
		}
	}

	return c
}
