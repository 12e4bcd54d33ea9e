package graph

import (
	"math"
	"sync"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// lazy memoises one derived value.
type lazy[T any] struct {
	once sync.Once
	v    T
}

func (l *lazy[T]) get(compute func() T) T {
	l.once.Do(func() { l.v = compute() })
	return l.v
}

// cache holds every memoised property of a Graph. Each field is computed
// at most once, by whichever goroutine asks first.
type cache struct {
	degrees    lazy[degreeStats]
	incidence  lazy[incidence]
	selfLoops  lazy[core.EdgeT]
	uniqueArcs lazy[core.EdgeT]
	weights    lazy[weightStats]
}

type degreeStats struct {
	min   core.NodeT
	max   core.NodeT
	traps core.NodeT
}

// incidence flags, per node, whether any edge touches it and whether an
// edge to or from a different node touches it.
type incidence struct {
	touched           []bool
	foreign           []bool
	singletons        core.NodeT
	selfLoopSingleton core.NodeT
}

type weightStats struct {
	min         float64
	max         float64
	total       float64
	nonPositive bool
}

func (g *Graph) degreeStats() degreeStats {
	return g.cache.degrees.get(func() degreeStats {
		n := g.NumberOfNodes()
		if n == 0 {
			return degreeStats{}
		}
		s := degreeStats{min: math.MaxUint32}
		for src := core.NodeT(0); src < n; src++ {
			d := core.NodeT(g.store.UncheckedDegree(src))
			s.min = min(s.min, d)
			s.max = max(s.max, d)
			if d == 0 {
				s.traps++
			}
		}
		return s
	})
}

func (g *Graph) incidence() incidence {
	return g.cache.incidence.get(func() incidence {
		n := g.NumberOfNodes()
		inc := incidence{touched: make([]bool, n), foreign: make([]bool, n)}
		for src := core.NodeT(0); src < n; src++ {
			for _, dst := range g.store.UncheckedNeighbours(src) {
				inc.touched[src] = true
				inc.touched[dst] = true
				if src != dst {
					inc.foreign[src] = true
					inc.foreign[dst] = true
				}
			}
		}
		for i := range inc.touched {
			switch {
			case !inc.touched[i]:
				inc.singletons++
			case !inc.foreign[i]:
				inc.selfLoopSingleton++
			}
		}
		return inc
	})
}

// MaxNodeDegree returns the largest out-degree, 0 for an empty graph.
func (g *Graph) MaxNodeDegree() core.NodeT { return g.degreeStats().max }

// MinNodeDegree returns the smallest out-degree, 0 for an empty graph.
func (g *Graph) MinNodeDegree() core.NodeT { return g.degreeStats().min }

// NumberOfTraps returns the number of nodes with out-degree zero.
func (g *Graph) NumberOfTraps() core.NodeT { return g.degreeStats().traps }

// HasTraps reports whether some node has out-degree zero.
func (g *Graph) HasTraps() bool { return g.NumberOfTraps() > 0 }

// NumberOfSingletons returns the number of nodes no edge touches.
func (g *Graph) NumberOfSingletons() core.NodeT { return g.incidence().singletons }

// HasSingletons reports whether some node is untouched by edges.
func (g *Graph) HasSingletons() bool { return g.NumberOfSingletons() > 0 }

// NumberOfSingletonsWithSelfLoops returns the number of nodes whose only
// edges are self-loops.
func (g *Graph) NumberOfSingletonsWithSelfLoops() core.NodeT {
	return g.incidence().selfLoopSingleton
}

// HasDisconnectedNodes reports whether some node has no edge to another node.
func (g *Graph) HasDisconnectedNodes() bool {
	return g.NumberOfSingletons()+g.NumberOfSingletonsWithSelfLoops() > 0
}

// NumberOfSelfLoops returns the number of directed edges src -> src.
func (g *Graph) NumberOfSelfLoops() core.EdgeT {
	return g.cache.selfLoops.get(func() core.EdgeT {
		var loops core.EdgeT
		for src := core.NodeT(0); src < g.NumberOfNodes(); src++ {
			loops += g.store.UncheckedEdgeCount(src, src)
		}
		return loops
	})
}

// HasSelfLoops reports whether some edge is a self-loop.
func (g *Graph) HasSelfLoops() bool { return g.NumberOfSelfLoops() > 0 }

// NumberOfUniqueDirectedEdges returns the number of distinct (src, dst) pairs.
func (g *Graph) NumberOfUniqueDirectedEdges() core.EdgeT {
	return g.cache.uniqueArcs.get(func() core.EdgeT {
		var unique core.EdgeT
		for src := core.NodeT(0); src < g.NumberOfNodes(); src++ {
			neighbours := g.store.UncheckedNeighbours(src)
			for i := range neighbours {
				if i == 0 || neighbours[i] != neighbours[i-1] {
					unique++
				}
			}
		}
		return unique
	})
}

// IsMultigraph reports whether some (src, dst) pair has parallel edges.
func (g *Graph) IsMultigraph() bool {
	return g.NumberOfUniqueDirectedEdges() < g.NumberOfDirectedEdges()
}

func (g *Graph) weightStats() weightStats {
	return g.cache.weights.get(func() weightStats {
		if len(g.weights) == 0 {
			return weightStats{}
		}
		s := weightStats{min: math.Inf(1), max: math.Inf(-1)}
		for _, w := range g.weights {
			v := float64(w)
			s.min = min(s.min, v)
			s.max = max(s.max, v)
			s.total += v
			if v <= 0 {
				s.nonPositive = true
			}
		}
		return s
	})
}

// MinEdgeWeight returns the smallest weight.
func (g *Graph) MinEdgeWeight() (float64, error) {
	if err := g.MustHaveWeights(); err != nil {
		return 0, err
	}
	if err := g.MustHaveEdges(); err != nil {
		return 0, err
	}

	return g.weightStats().min, nil
}

// MaxEdgeWeight returns the largest weight.
func (g *Graph) MaxEdgeWeight() (float64, error) {
	if err := g.MustHaveWeights(); err != nil {
		return 0, err
	}
	if err := g.MustHaveEdges(); err != nil {
		return 0, err
	}

	return g.weightStats().max, nil
}

// TotalEdgeWeight returns the sum of all directed edge weights.
func (g *Graph) TotalEdgeWeight() (float64, error) {
	if err := g.MustHaveWeights(); err != nil {
		return 0, err
	}

	return g.weightStats().total, nil
}
