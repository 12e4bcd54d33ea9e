package centrality

import (
	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
)

// Degree returns each node's degree divided by the maximum degree.
func Degree(g *graph.Graph) ([]float64, error) {
	if err := g.MustHaveEdges(); err != nil {
		return nil, err
	}
	top := float64(g.MaxNodeDegree())
	scores := make([]float64, g.NumberOfNodes())
	for v, d := range g.NodeDegrees() {
		scores[v] = float64(d) / top
	}

	return scores, nil
}

// WeightedDegree returns each node's total outbound weight divided by the
// largest total. Weights must be strictly positive.
func WeightedDegree(g *graph.Graph) ([]float64, error) {
	if err := g.Must(g.MustHaveEdges, g.MustHavePositiveWeights); err != nil {
		return nil, err
	}
	scores := make([]float64, g.NumberOfNodes())
	top := 0.0
	for v := range scores {
		lo, hi := g.UncheckedMinMaxEdgeIDsFromSourceNodeID(core.NodeT(v))
		for e := lo; e < hi; e++ {
			scores[v] += float64(g.UncheckedEdgeWeight(e))
		}
		top = max(top, scores[v])
	}
	for v := range scores {
		scores[v] /= top
	}

	return scores, nil
}
