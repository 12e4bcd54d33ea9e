package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNotProbability indicates a weight outside (0, 1] in probability mode.
	ErrNotProbability = fmt.Errorf("dijkstra: edge weights are not probabilities: %w", core.ErrInvalidParameter)

	// ErrUnreachable indicates a destination the search never settled.
	ErrUnreachable = errors.New("dijkstra: node not reached")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or
	// NaN value.
	ErrBadMaxDistance = fmt.Errorf("dijkstra: MaxDistance must be non-negative: %w", core.ErrInvalidParameter)

	// ErrConflictingModes indicates WithUnitWeights combined with
	// WithProbabilities.
	ErrConflictingModes = fmt.Errorf("dijkstra: unit weights and probabilities are exclusive: %w", core.ErrInvalidParameter)
)

// Options configures the behaviour of the Dijkstra algorithm.
//
// Destination   – stop once this node is settled; core.NodeNotPresent for none.
// Predecessors  – record the shortest path tree.
// MaxDistance   – nodes whose working cost would exceed this are not reached.
//
//	In probability mode the working cost is -ln(probability).
//
// Probabilities – treat weights as probabilities.
// UnitWeights   – ignore weights and charge 1 per edge.
type Options struct {
	Destination   core.NodeT
	Predecessors  bool
	MaxDistance   float64
	Probabilities bool
	UnitWeights   bool

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithDestination stops the search once dst has been settled. Nodes not
// settled by then are reported as unreached.
func WithDestination(dst core.NodeT) Option {
	return func(o *Options) {
		o.Destination = dst
	}
}

// WithPredecessors enables the shortest path tree in the result.
func WithPredecessors() Option {
	return func(o *Options) {
		o.Predecessors = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Negative or NaN values
// make Dijkstra fail with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithProbabilities interprets edge weights as probabilities in (0, 1].
func WithProbabilities() Option {
	return func(o *Options) {
		o.Probabilities = true
	}
}

// WithUnitWeights charges 1 per edge even on weighted graphs.
func WithUnitWeights() Option {
	return func(o *Options) {
		o.UnitWeights = true
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Destination:   core.NodeNotPresent (settle every reachable node).
//   - Predecessors:  false.
//   - MaxDistance:   +Inf (no limit).
//   - Probabilities: false.
//   - UnitWeights:   false.
func DefaultOptions() Options {
	return Options{
		Destination: core.NodeNotPresent,
		MaxDistance: math.Inf(1),
	}
}

// Result holds the outcome of a search.
type Result struct {
	Source core.NodeT

	// Distances[v] is the cost of the shortest path from Source to v, +Inf
	// when v was not reached. In probability mode it is the probability of
	// the most probable path, 0 when v was not reached.
	Distances []float64

	// Predecessors[v] is v's parent in the shortest path tree,
	// core.NodeNotPresent for Source and unreached nodes. Nil unless
	// WithPredecessors.
	Predecessors []core.NodeT

	// Eccentricity is Distances[MostDistantNode], the reached node with the
	// largest working cost. It is the Source distance when nothing else was
	// reached.
	Eccentricity    float64
	MostDistantNode core.NodeT

	// TotalDistance sums the working costs of reached nodes other than
	// Source; HarmonicDistance sums the reciprocals of the non-zero ones.
	// In probability mode both are in -ln space.
	TotalDistance    float64
	HarmonicDistance float64

	settled []bool
}

// Reached reports whether v was settled.
func (r *Result) Reached(v core.NodeT) bool {
	return int(v) < len(r.settled) && r.settled[v]
}

// PathTo reconstructs the path from Source to dst. It requires
// WithPredecessors.
func (r *Result) PathTo(dst core.NodeT) ([]core.NodeT, error) {
	if r.Predecessors == nil {
		return nil, fmt.Errorf("dijkstra: PathTo without predecessors: %w", core.ErrInvalidParameter)
	}
	if !r.Reached(dst) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dst)
	}
	var path []core.NodeT
	for cur := dst; cur != core.NodeNotPresent; cur = r.Predecessors[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
