package dijkstra

import (
	"fmt"
	"math"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
)

// Dijkstra computes shortest distances from src to every node of g.
//
// Preconditions and validation (in order):
//  0. Options are valid (ErrBadMaxDistance).
//  1. src and, when set, the destination are nodes of g (core.ErrNodeOutOfRange).
//  2. WithUnitWeights and WithProbabilities are not combined (ErrConflictingModes).
//  3. Probability mode requires weights (core.ErrMissingWeights) in (0, 1]
//     (ErrNotProbability).
//  4. Weighted mode requires strictly positive weights
//     (core.ErrNonPositiveWeights).
//
// Complexity:
//
//   - Time:  O((N + M) log N)
//   - Space: O(N)
func Dijkstra(g *graph.Graph, src core.NodeT, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate nodes
	if err := g.MustContainNode(src); err != nil {
		return nil, err
	}
	if cfg.Destination != core.NodeNotPresent {
		if err := g.MustContainNode(cfg.Destination); err != nil {
			return nil, err
		}
	}

	// 3) Pick the cost model
	cost, err := costModel(g, cfg)
	if err != nil {
		return nil, err
	}

	r := newRunner(g, cfg, cost)
	r.run(src)

	return r.res, nil
}

// ShortestPath returns the nodes of a shortest path from src to dst and its
// distance, in the unit of Result.Distances.
func ShortestPath(g *graph.Graph, src, dst core.NodeT, opts ...Option) ([]core.NodeT, float64, error) {
	opts = append(opts[:len(opts):len(opts)], WithDestination(dst), WithPredecessors())
	res, err := Dijkstra(g, src, opts...)
	if err != nil {
		return nil, 0, err
	}
	path, err := res.PathTo(dst)
	if err != nil {
		return nil, 0, err
	}

	return path, res.Distances[dst], nil
}

// costModel validates g against the requested mode and returns the edge cost.
func costModel(g *graph.Graph, cfg Options) (func(core.EdgeT) float64, error) {
	switch {
	case cfg.UnitWeights && cfg.Probabilities:
		return nil, ErrConflictingModes
	case cfg.Probabilities:
		if err := g.MustHaveWeights(); err != nil {
			return nil, err
		}
		if g.HasEdges() {
			lo, _ := g.MinEdgeWeight()
			hi, _ := g.MaxEdgeWeight()
			if lo <= 0 || hi > 1 {
				return nil, fmt.Errorf("%w: weights span [%v, %v]", ErrNotProbability, lo, hi)
			}
		}
		return func(e core.EdgeT) float64 { return -math.Log(float64(g.UncheckedEdgeWeight(e))) }, nil
	case cfg.UnitWeights || !g.HasWeights():
		return func(core.EdgeT) float64 { return 1 }, nil
	default:
		if err := g.MustHavePositiveWeights(); err != nil {
			return nil, err
		}
		return func(e core.EdgeT) float64 { return float64(g.UncheckedEdgeWeight(e)) }, nil
	}
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.Graph
	options Options
	cost    func(core.EdgeT) float64
	queue   *Queue
	res     *Result
}

func newRunner(g *graph.Graph, cfg Options, cost func(core.EdgeT) float64) *runner {
	n := g.NumberOfNodes()
	res := &Result{settled: make([]bool, n)}
	if cfg.Predecessors {
		res.Predecessors = make([]core.NodeT, n)
	}

	return &runner{g: g, options: cfg, cost: cost, queue: NewQueue(n), res: res}
}

// reset prepares the runner for another source, reusing its buffers.
func (r *runner) reset(src core.NodeT) {
	r.queue.reset()
	clear(r.res.settled)
	for i := range r.res.Predecessors {
		r.res.Predecessors[i] = core.NodeNotPresent
	}
	r.res.Source = src
	r.res.MostDistantNode = src
	r.res.Eccentricity = 0
	r.res.TotalDistance = 0
	r.res.HarmonicDistance = 0
}

// run settles nodes in increasing distance until the queue empties or the
// destination is settled, then converts distances to the reported unit.
func (r *runner) run(src core.NodeT) {
	r.reset(src)
	res := r.res
	q := r.queue
	q.Push(src, 0)

	for q.Len() > 0 {
		// 1) Settle the closest node.
		u, d, _ := q.Pop()
		res.settled[u] = true
		if u != src {
			res.TotalDistance += d
			if d > 0 {
				res.HarmonicDistance += 1 / d
			}
			if d > q.Distance(res.MostDistantNode) {
				res.MostDistantNode = u
			}
		}
		if u == r.options.Destination {
			break
		}

		// 2) Relax its outgoing edges.
		lo, hi := r.g.UncheckedMinMaxEdgeIDsFromSourceNodeID(u)
		for e := lo; e < hi; e++ {
			v := r.g.UncheckedDestinationNodeIDFromEdgeID(e)
			if res.settled[v] {
				continue
			}
			nd := d + r.cost(e)
			if nd > r.options.MaxDistance {
				continue
			}
			if q.Push(v, nd) && res.Predecessors != nil {
				res.Predecessors[v] = u
			}
		}
	}

	// 3) Forget tentative distances of nodes left in the queue.
	for _, v := range q.heap {
		q.distances[v] = math.Inf(1)
		if res.Predecessors != nil {
			res.Predecessors[v] = core.NodeNotPresent
		}
	}

	distances := make([]float64, len(q.distances))
	copy(distances, q.distances)
	if r.options.Probabilities {
		for i, d := range distances {
			distances[i] = math.Exp(-d)
		}
	}
	res.Distances = distances
	res.Eccentricity = distances[res.MostDistantNode]
}
