package walks

import (
	"fmt"
	"math"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
)

// IsFirstOrderWalk reports whether every bias weight is one and degree
// normalisation is off, so the walk only depends on the current node.
func (p Parameters) IsFirstOrderWalk() bool {
	return p.ReturnWeight == 1 && p.ExploreWeight == 1 &&
		p.ChangeNodeTypeWeight == 1 && p.ChangeEdgeTypeWeight == 1 &&
		!p.NormalizeByDegree
}

// IsNode2VecWalk reports whether the return or explore weight biases the
// walk, which makes it depend on the previous node.
func (p Parameters) IsNode2VecWalk() bool {
	return p.ReturnWeight != 1 || p.ExploreWeight != 1
}

// Validate checks p against g.
func (p Parameters) Validate(g *graph.Graph) error {
	weights := []struct {
		name  string
		value float64
	}{
		{"return_weight", p.ReturnWeight},
		{"explore_weight", p.ExploreWeight},
		{"change_node_type_weight", p.ChangeNodeTypeWeight},
		{"change_edge_type_weight", p.ChangeEdgeTypeWeight},
	}
	for _, w := range weights {
		if !(w.value > 0) || math.IsInf(w.value, 0) {
			return fmt.Errorf("%w: %s=%v is not a strictly positive finite number", ErrInvalidParameters, w.name, w.value)
		}
	}
	if p.WalkLength == 0 {
		return fmt.Errorf("%w: walk_length is zero", ErrInvalidParameters)
	}
	if p.Iterations == 0 {
		return fmt.Errorf("%w: iterations is zero", ErrInvalidParameters)
	}
	if p.MinLength > p.WalkLength {
		return fmt.Errorf("%w: min_length=%d exceeds walk_length=%d", ErrInvalidParameters, p.MinLength, p.WalkLength)
	}
	if err := g.MustHaveEdges(); err != nil {
		return err
	}
	if p.IsNode2VecWalk() && g.IsDirected() {
		return fmt.Errorf("walks: second order walk: %w", core.ErrMustBeUndirected)
	}
	if g.HasWeights() {
		if err := g.MustHavePositiveWeights(); err != nil {
			return err
		}
	}
	if p.DenseNodeMapping != nil {
		for id := range g.NodeIDs() {
			if _, ok := p.DenseNodeMapping[id]; !ok {
				return fmt.Errorf("%w: dense node mapping misses node %d", ErrInvalidParameters, id)
			}
		}
	}

	return nil
}
