package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = fmt.Errorf("bfs: invalid option supplied: %w", core.ErrInvalidParameter)

// ErrUnreachable is returned by PathTo for a node the search never reached.
var ErrUnreachable = errors.New("bfs: node not reached")

// Option configures BFS behaviour. Invalid values are recorded and surfaced
// as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds the parameters of a search.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// Destination, when present, stops the search once it is visited.
	Destination core.NodeT

	// Predecessors requests the BFS tree.
	Predecessors bool

	// MaxDepth, if > 0, stops expanding beyond this depth.
	MaxDepth core.NodeT

	// OnVisit is called when visiting a node. An error aborts the search.
	OnVisit func(id, depth core.NodeT) error

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbour core.NodeT) bool

	// Workers bounds the goroutines of Diameter; zero means GOMAXPROCS.
	Workers int

	err error
}

// DefaultOptions returns a background context, no destination and no limit.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Destination: core.NodeNotPresent,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDestination stops the search once dst has been visited.
func WithDestination(dst core.NodeT) Option {
	return func(o *Options) { o.Destination = dst }
}

// WithPredecessors records the parent of every reached node.
func WithPredecessors() Option {
	return func(o *Options) { o.Predecessors = true }
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = core.NodeT(d)
		}
	}
}

// WithOnVisit registers a callback run on every visit.
func WithOnVisit(fn func(id, depth core.NodeT) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithFilterNeighbor skips edges curr -> neighbour when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbour core.NodeT) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithWorkers bounds the parallelism of Diameter.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// Result holds the outcome of a search.
type Result struct {
	Source core.NodeT

	// Distances[v] is the hop count from Source, core.NodeNotPresent if v
	// was not reached.
	Distances []core.NodeT

	// Predecessors[v] is v's BFS parent, core.NodeNotPresent for Source and
	// unreached nodes. Nil unless WithPredecessors.
	Predecessors []core.NodeT

	// Order lists nodes in visit order.
	Order []core.NodeT

	// Eccentricity is the largest finite distance and MostDistantNode the
	// first node visited at that distance.
	Eccentricity    core.NodeT
	MostDistantNode core.NodeT

	// TotalDistance sums the finite distances; HarmonicDistance sums their
	// reciprocals, both excluding Source.
	TotalDistance    float64
	HarmonicDistance float64
}

// Reached reports whether v was reached.
func (r *Result) Reached(v core.NodeT) bool {
	return int(v) < len(r.Distances) && r.Distances[v] != core.NodeNotPresent
}

// PathTo reconstructs the path from Source to dst. It requires
// WithPredecessors.
func (r *Result) PathTo(dst core.NodeT) ([]core.NodeT, error) {
	if r.Predecessors == nil {
		return nil, fmt.Errorf("bfs: PathTo without predecessors: %w", core.ErrInvalidParameter)
	}
	if !r.Reached(dst) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dst)
	}
	path := make([]core.NodeT, 0, r.Distances[dst]+1)
	for cur := dst; cur != core.NodeNotPresent; cur = r.Predecessors[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
