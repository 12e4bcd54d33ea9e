package centrality

import (
	"context"

	"github.com/AnacletoLAB/ensmallen-sub009/bfs"
	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/dijkstra"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/progress"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// summary is what closeness and harmonic need from one single-source search.
type summary struct {
	total    float64
	harmonic float64
	reached  int
}

type searchFn func(src core.NodeT) (summary, error)

// Closeness returns the reciprocal of each node's total hop distance to the
// nodes it reaches, 0 for nodes reaching nothing.
func Closeness(ctx context.Context, g *graph.Graph, opts ...Option) ([]float64, error) {
	return distanceCentrality(ctx, g, "closeness", closeness, hops(ctx, g), opts)
}

// Harmonic returns each node's sum of reciprocal hop distances.
func Harmonic(ctx context.Context, g *graph.Graph, opts ...Option) ([]float64, error) {
	return distanceCentrality(ctx, g, "harmonic", harmonic, hops(ctx, g), opts)
}

// WeightedCloseness is Closeness over weighted shortest paths. Weights must
// be strictly positive, or probabilities with WithProbabilities.
func WeightedCloseness(ctx context.Context, g *graph.Graph, opts ...Option) ([]float64, error) {
	return weighted(ctx, g, "weighted closeness", closeness, opts)
}

// WeightedHarmonic is Harmonic over weighted shortest paths.
func WeightedHarmonic(ctx context.Context, g *graph.Graph, opts ...Option) ([]float64, error) {
	return weighted(ctx, g, "weighted harmonic", harmonic, opts)
}

func weighted(ctx context.Context, g *graph.Graph, name string, score func(summary, int, bool) float64, opts []Option) ([]float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err := g.MustHavePositiveWeights(); err != nil {
		return nil, err
	}
	var mode []dijkstra.Option
	if o.Probabilities {
		mode = append(mode, dijkstra.WithProbabilities())
	}
	search := func(src core.NodeT) (summary, error) {
		res, err := dijkstra.Dijkstra(g, src, mode...)
		if err != nil {
			return summary{}, err
		}
		reached := 0
		for v := range res.Distances {
			if res.Reached(core.NodeT(v)) {
				reached++
			}
		}
		return summary{total: res.TotalDistance, harmonic: res.HarmonicDistance, reached: reached - 1}, nil
	}

	return distanceCentrality(ctx, g, name, score, search, opts)
}

func hops(ctx context.Context, g *graph.Graph) searchFn {
	return func(src core.NodeT) (summary, error) {
		res, err := bfs.BFS(g, src, bfs.WithContext(ctx))
		if err != nil {
			return summary{}, err
		}
		return summary{total: res.TotalDistance, harmonic: res.HarmonicDistance, reached: len(res.Order) - 1}, nil
	}
}

func closeness(s summary, _ int, normalize bool) float64 {
	if s.total == 0 {
		return 0
	}
	if normalize {
		return float64(s.reached) / s.total
	}

	return 1 / s.total
}

func harmonic(s summary, n int, normalize bool) float64 {
	if normalize && n > 1 {
		return s.harmonic / float64(n-1)
	}

	return s.harmonic
}

// distanceCentrality runs search from every node in parallel. Each node
// owns its output slot.
func distanceCentrality(ctx context.Context, g *graph.Graph, name string, score func(summary, int, bool) float64, search searchFn, opts []Option) ([]float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	n := int(g.NumberOfNodes())
	span := progress.Start(o.Logger, name, "graph", g.Name(), "nodes", n)

	scores := make([]float64, n)
	shared := parallel.NewSharedSlice(scores)
	err = parallel.ForEach(ctx, n, func(i int) error {
		s, err := search(core.NodeT(i))
		if err != nil {
			return err
		}
		shared.Store(i, score(s, n, o.Normalize))
		return nil
	}, o.parallel()...)
	if err != nil {
		return nil, err
	}
	span.Done()

	return scores, nil
}
