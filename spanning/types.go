package spanning

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = fmt.Errorf("spanning: invalid option supplied: %w", core.ErrInvalidParameter)

// Options configures the builders.
type Options struct {
	// RandomState, when Random is set, rotates Kruskal's scan so that it
	// starts at a pseudo-random edge.
	RandomState uint64
	Random      bool

	// Undesired edge types are scanned by Kruskal only after every other
	// edge, so they enter the forest only when needed for connectivity.
	Undesired []core.EdgeTypeT

	// Workers bounds the goroutines of Parallel and ConnectedComponents.
	Workers int

	Logger *log.Logger

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns edge id order, automatic parallelism and no logging.
func DefaultOptions() Options {
	return Options{}
}

// WithRandomState rotates Kruskal's edge order by an offset derived from seed.
func WithRandomState(seed uint64) Option {
	return func(o *Options) {
		o.RandomState = seed
		o.Random = true
	}
}

// WithUndesiredEdgeTypes defers edges of the given types to the end of
// Kruskal's scan. The graph must carry edge types.
func WithUndesiredEdgeTypes(types ...core.EdgeTypeT) Option {
	return func(o *Options) {
		o.Undesired = append(o.Undesired, types...)
	}
}

// WithWorkers bounds the parallelism.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger enables progress logging.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result is a spanning forest with its component assignment.
type Result struct {
	// Edges of the forest, N - Count of them. Nil for ConnectedComponents.
	Edges []core.Pair

	// Components[v] is the dense component id of v.
	Components []core.NodeT

	// Count is the number of components; MinSize and MaxSize their extreme
	// sizes. All three are zero on a graph without nodes.
	Count   core.NodeT
	MinSize core.NodeT
	MaxSize core.NodeT
}

// Sizes returns the number of nodes in each component.
func (r *Result) Sizes() []core.NodeT {
	sizes := make([]core.NodeT, r.Count)
	for _, c := range r.Components {
		sizes[c]++
	}

	return sizes
}

// label turns a root per node into dense component ids ordered by smallest
// node and fills the size statistics.
func label(r *Result, root func(core.NodeT) core.NodeT) {
	n := core.NodeT(len(r.Components))
	ids := make([]core.NodeT, n)
	for i := range ids {
		ids[i] = core.NodeNotPresent
	}
	for v := core.NodeT(0); v < n; v++ {
		rv := root(v)
		if ids[rv] == core.NodeNotPresent {
			ids[rv] = r.Count
			r.Count++
		}
		r.Components[v] = ids[rv]
	}
	if r.Count == 0 {
		return
	}
	sizes := r.Sizes()
	r.MinSize, r.MaxSize = sizes[0], sizes[0]
	for _, s := range sizes[1:] {
		r.MinSize = min(r.MinSize, s)
		r.MaxSize = max(r.MaxSize, s)
	}
}
