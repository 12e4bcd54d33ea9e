package centrality

import (
	"context"
	"sync"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/progress"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// Betweenness returns, for every node v, the sum over pairs (s, t) with
// s != v != t of the fraction of shortest s-t paths passing through v.
func Betweenness(ctx context.Context, g *graph.Graph, opts ...Option) ([]float64, error) {
	return pathCentrality(ctx, g, "betweenness", false, opts)
}

// Stress returns, for every node v, the number of shortest paths between
// other nodes that pass through v.
func Stress(ctx context.Context, g *graph.Graph, opts ...Option) ([]float64, error) {
	return pathCentrality(ctx, g, "stress", true, opts)
}

func pathCentrality(ctx context.Context, g *graph.Graph, name string, stress bool, opts []Option) ([]float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g.IsMultigraph() {
		return nil, ErrMultigraph
	}
	n := int(g.NumberOfNodes())
	if n == 0 {
		return []float64{}, nil
	}
	span := progress.Start(o.Logger, name, "graph", g.Name(), "nodes", n)

	acc := parallel.NewAtomicFloat64s(n)
	pool := sync.Pool{New: func() any { return newBrandes(n) }}
	err = parallel.ForEach(ctx, n, func(i int) error {
		b := pool.Get().(*brandes)
		defer pool.Put(b)
		b.run(g, core.NodeT(i), stress, acc)
		return nil
	}, o.parallel()...)
	if err != nil {
		return nil, err
	}

	scores := acc.Values()
	scale := 1.0
	if !g.IsDirected() {
		scale = 0.5
	}
	if o.Normalize && n > 2 {
		pairs := float64(n-1) * float64(n-2)
		if !g.IsDirected() {
			pairs /= 2
		}
		scale /= pairs
	}
	for v := range scores {
		scores[v] *= scale
	}
	span.Done()

	return scores, nil
}

// brandes is the per-source scratch space of one worker.
type brandes struct {
	sigma []float64
	dist  []core.NodeT
	delta []float64
	order []core.NodeT
}

func newBrandes(n int) *brandes {
	b := &brandes{
		sigma: make([]float64, n),
		dist:  make([]core.NodeT, n),
		delta: make([]float64, n),
		order: make([]core.NodeT, 0, n),
	}
	for i := range b.dist {
		b.dist[i] = core.NodeNotPresent
	}

	return b
}

// run counts shortest paths from src breadth first, then walks the visit
// order backwards accumulating each node's dependency on its successors.
// Betweenness accumulates sigma[v]/sigma[w] * (1 + delta[w]); stress
// accumulates the number of paths continuing past v, 1 + delta[w], and
// credits sigma[v] times it. Only touched slots are reset afterwards.
func (b *brandes) run(g *graph.Graph, src core.NodeT, stress bool, acc *parallel.AtomicFloat64s) {
	b.order = append(b.order[:0], src)
	b.sigma[src] = 1
	b.dist[src] = 0
	for head := 0; head < len(b.order); head++ {
		v := b.order[head]
		for _, w := range g.UncheckedNeighbourNodeIDs(v) {
			if b.dist[w] == core.NodeNotPresent {
				b.dist[w] = b.dist[v] + 1
				b.order = append(b.order, w)
			}
			if b.dist[w] == b.dist[v]+1 {
				b.sigma[w] += b.sigma[v]
			}
		}
	}

	for i := len(b.order) - 1; i >= 0; i-- {
		v := b.order[i]
		var dep float64
		for _, w := range g.UncheckedNeighbourNodeIDs(v) {
			if b.dist[w] != b.dist[v]+1 {
				continue
			}
			if stress {
				dep += 1 + b.delta[w]
			} else {
				dep += b.sigma[v] / b.sigma[w] * (1 + b.delta[w])
			}
		}
		b.delta[v] = dep
		if v == src || dep == 0 {
			continue
		}
		if stress {
			acc.Add(int(v), b.sigma[v]*dep)
		} else {
			acc.Add(int(v), dep)
		}
	}

	for _, v := range b.order {
		b.sigma[v] = 0
		b.delta[v] = 0
		b.dist[v] = core.NodeNotPresent
	}
}
