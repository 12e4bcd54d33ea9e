package bfs

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// ctxCheckEvery is how many dequeues happen between context polls.
const ctxCheckEvery = 1024

// walker encapsulates mutable BFS state.
type walker struct {
	g     *graph.Graph
	opts  Options
	queue []core.NodeT
	res   *Result
}

// BFS runs breadth-first search on g from src.
func BFS(g *graph.Graph, src core.NodeT, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err := g.MustContainNode(src); err != nil {
		return nil, err
	}
	if o.Destination != core.NodeNotPresent {
		if err := g.MustContainNode(o.Destination); err != nil {
			return nil, err
		}
	}

	w := newWalker(g, o)
	if err := w.run(src); err != nil {
		return nil, err
	}

	return w.res, nil
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newWalker(g *graph.Graph, o Options) *walker {
	n := g.NumberOfNodes()
	res := &Result{Distances: make([]core.NodeT, n)}
	if o.Predecessors {
		res.Predecessors = make([]core.NodeT, n)
	}

	return &walker{g: g, opts: o, queue: make([]core.NodeT, 0, n), res: res}
}

// reset prepares the walker for another source, reusing its buffers.
func (w *walker) reset(src core.NodeT) {
	for i := range w.res.Distances {
		w.res.Distances[i] = core.NodeNotPresent
	}
	for i := range w.res.Predecessors {
		w.res.Predecessors[i] = core.NodeNotPresent
	}
	w.res.Source = src
	w.res.Order = w.res.Order[:0]
	w.res.Eccentricity = 0
	w.res.MostDistantNode = src
	w.res.TotalDistance = 0
	w.res.HarmonicDistance = 0
	w.queue = w.queue[:0]
}

// run processes the queue until empty, destination, error, or cancellation.
func (w *walker) run(src core.NodeT) error {
	w.reset(src)
	res := w.res
	res.Distances[src] = 0
	w.queue = append(w.queue, src)

	for head := 0; head < len(w.queue); head++ {
		if head%ctxCheckEvery == 0 {
			if err := w.opts.Ctx.Err(); err != nil {
				return err
			}
		}
		cur := w.queue[head]
		depth := res.Distances[cur]

		// 1. visit
		res.Order = append(res.Order, cur)
		if cur != src {
			d := float64(depth)
			res.TotalDistance += d
			res.HarmonicDistance += 1 / d
			if depth > res.Eccentricity {
				res.Eccentricity = depth
				res.MostDistantNode = cur
			}
		}
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(cur, depth); err != nil {
				return fmt.Errorf("bfs: OnVisit error at %d: %w", cur, err)
			}
		}
		if cur == w.opts.Destination {
			return nil
		}

		// 2. expand
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.g.UncheckedNeighbourNodeIDs(cur) {
			if res.Distances[nbr] != core.NodeNotPresent {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(cur, nbr) {
				continue
			}
			res.Distances[nbr] = depth + 1
			if res.Predecessors != nil {
				res.Predecessors[nbr] = cur
			}
			w.queue = append(w.queue, nbr)
		}
	}

	return nil
}

// Diameter returns the largest eccentricity over all nodes.
//
// When some node cannot reach another, a directed graph has an infinite
// diameter and +Inf is returned; on undirected graphs the result is the
// largest diameter among the connected components.
func Diameter(ctx context.Context, g *graph.Graph, opts ...Option) (float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	if err := g.MustHaveNodes(); err != nil {
		return 0, err
	}
	o.Ctx = ctx
	o.Destination = core.NodeNotPresent
	o.Predecessors = false
	o.MaxDepth = 0

	n := int(g.NumberOfNodes())
	eccentricities := make([]float64, n)
	shared := parallel.NewSharedSlice(eccentricities)
	walkers := sync.Pool{New: func() any { return newWalker(g, o) }}
	err = parallel.ForEach(ctx, n, func(i int) error {
		w := walkers.Get().(*walker)
		defer walkers.Put(w)
		if err := w.run(core.NodeT(i)); err != nil {
			return err
		}
		ecc := float64(w.res.Eccentricity)
		if g.IsDirected() && len(w.res.Order) < n {
			ecc = math.Inf(1)
		}
		shared.Store(i, ecc)
		return nil
	}, parallel.WithWorkers(o.Workers), parallel.WithMinLen(1))
	if err != nil {
		return 0, err
	}

	diameter := 0.0
	for _, ecc := range eccentricities {
		diameter = max(diameter, ecc)
	}

	return diameter, nil
}
