package spanning

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/progress"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// Parallel builds a spanning arborescence of an undirected graph with a
// lock-free union-find shared by all workers.
//
// Every node scans its neighbours above itself and hooks the larger of the
// two roots under the smaller one with a compare-and-swap. A failed swap
// means another worker moved that root first; the pair is retried from the
// new roots. Each successful hook contributes the edge that caused it.
//
// Complexity: O(M α(N)) work, with contention only on shared roots.
func Parallel(ctx context.Context, g *graph.Graph, opts ...Option) (*Result, error) {
	return run(ctx, g, true, opts)
}

// ConnectedComponents labels the connected components of an undirected graph.
// The returned Result has no Edges.
func ConnectedComponents(ctx context.Context, g *graph.Graph, opts ...Option) (*Result, error) {
	return run(ctx, g, false, opts)
}

func run(ctx context.Context, g *graph.Graph, keepEdges bool, opts []Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err := g.MustBeUndirected(); err != nil {
		return nil, err
	}

	n := g.NumberOfNodes()
	res := &Result{Components: make([]core.NodeT, n)}
	if n == 0 {
		return res, nil
	}
	span := progress.Start(o.Logger, "spanning arborescence (parallel)", "graph", g.Name(), "workers", o.Workers)

	sets := newAtomicSets(n)
	var owned [][]core.Pair
	var shared parallel.SharedSlice[[]core.Pair]
	if keepEdges {
		owned = make([][]core.Pair, n)
		shared = parallel.NewSharedSlice(owned)
	}
	err = parallel.ForEach(ctx, int(n), func(i int) error {
		src := core.NodeT(i)
		var edges []core.Pair
		for _, dst := range g.UncheckedNeighbourNodeIDs(src) {
			if dst <= src {
				continue
			}
			if sets.union(src, dst) && keepEdges {
				edges = append(edges, core.Pair{Src: src, Dst: dst})
			}
		}
		if edges != nil {
			shared.Store(i, edges)
		}
		return nil
	}, parallel.WithWorkers(o.Workers))
	if err != nil {
		return nil, err
	}

	if keepEdges {
		res.Edges = slices.Concat(owned...)
	}
	label(res, sets.find)
	span.Done("edges", len(res.Edges), "components", res.Count)

	return res, nil
}

// atomicSets is a union-find whose parent pointers only ever decrease, so
// concurrent hooks cannot form a cycle.
type atomicSets struct {
	parent []atomic.Uint32
}

func newAtomicSets(n core.NodeT) *atomicSets {
	s := &atomicSets{parent: make([]atomic.Uint32, n)}
	for i := range s.parent {
		s.parent[i].Store(uint32(i))
	}

	return s
}

// find returns the root of v. Path halving is best effort: a lost swap
// leaves a longer but still valid path.
func (s *atomicSets) find(v core.NodeT) core.NodeT {
	for {
		p := s.parent[v].Load()
		if p == v {
			return v
		}
		gp := s.parent[p].Load()
		if gp != p {
			s.parent[v].CompareAndSwap(p, gp)
		}
		v = gp
	}
}

// union hooks the larger root under the smaller and reports whether this
// call merged two sets.
func (s *atomicSets) union(u, v core.NodeT) bool {
	for {
		ru, rv := s.find(u), s.find(v)
		if ru == rv {
			return false
		}
		if ru < rv {
			ru, rv = rv, ru
		}
		if s.parent[ru].CompareAndSwap(ru, rv) {
			return true
		}
	}
}
