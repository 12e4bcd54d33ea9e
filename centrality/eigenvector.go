package centrality

import (
	"context"
	"fmt"
	"math"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/progress"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// Eigenvector returns the unit-length dominant eigenvector of the adjacency
// relation, computed by shifted power iteration.
//
// It fails with core.ErrNotConverged when the L1 change between two
// iterations is still above Tolerance * N after MaxIterations.
func Eigenvector(ctx context.Context, g *graph.Graph, opts ...Option) ([]float64, error) {
	return eigenvector(ctx, g, "eigenvector", nil, opts)
}

// WeightedEigenvector is Eigenvector with every edge contributing its
// weight. Weights must be strictly positive.
func WeightedEigenvector(ctx context.Context, g *graph.Graph, opts ...Option) ([]float64, error) {
	if err := g.MustHavePositiveWeights(); err != nil {
		return nil, err
	}

	return eigenvector(ctx, g, "weighted eigenvector", func(e core.EdgeT) float64 {
		return float64(g.UncheckedEdgeWeight(e))
	}, opts)
}

func eigenvector(ctx context.Context, g *graph.Graph, name string, weight func(core.EdgeT) float64, opts []Option) ([]float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err := g.Must(g.MustHaveNodes, g.MustHaveEdges); err != nil {
		return nil, err
	}
	n := int(g.NumberOfNodes())
	tolerance := o.Tolerance * float64(n)
	if tolerance < epsilon {
		return nil, fmt.Errorf("%w: effective tolerance %v is below machine epsilon", ErrOptionViolation, tolerance)
	}
	span := progress.Start(o.Logger, name, "graph", g.Name(), "nodes", n)

	last := make([]float64, n)
	for i := range last {
		last[i] = 1 / float64(n)
	}
	for it := 1; it <= o.MaxIterations; it++ {
		// x + Aᵀx: every node keeps its own score and pushes it along
		// its outbound edges.
		next := parallel.NewAtomicFloat64s(n)
		err := parallel.ForEach(ctx, n, func(i int) error {
			src := core.NodeT(i)
			next.Add(i, last[i])
			lo, hi := g.UncheckedMinMaxEdgeIDsFromSourceNodeID(src)
			for e := lo; e < hi; e++ {
				contribution := last[i]
				if weight != nil {
					contribution *= weight(e)
				}
				next.Add(int(g.UncheckedDestinationNodeIDFromEdgeID(e)), contribution)
			}
			return nil
		}, parallel.WithWorkers(o.Workers))
		if err != nil {
			return nil, err
		}

		scores := next.Values()
		var norm float64
		for _, x := range scores {
			norm += x * x
		}
		norm = math.Sqrt(norm)
		var change float64
		for v := range scores {
			scores[v] /= norm
			change += math.Abs(scores[v] - last[v])
		}
		if change < tolerance {
			span.Done("iterations", it)
			return scores, nil
		}
		last = scores
	}
	span.Done("iterations", o.MaxIterations, "converged", false)

	return nil, fmt.Errorf("centrality: %s after %d iterations: %w", name, o.MaxIterations, core.ErrNotConverged)
}
