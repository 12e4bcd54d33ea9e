package centrality

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("centrality: invalid option supplied: %w", core.ErrInvalidParameter)

	// ErrMultigraph is returned by path-counting centralities on graphs with
	// parallel edges, where a path count would depend on edge multiplicity.
	ErrMultigraph = fmt.Errorf("centrality: parallel edges are not supported: %w", core.ErrInvalidParameter)
)

const (
	defaultMaxIterations = 1000
	defaultTolerance     = 1e-6

	// epsilon is the float64 machine epsilon.
	epsilon = 0x1p-52
)

// Options configures a centrality computation.
type Options struct {
	// Normalize rescales the result: betweenness and stress by the number
	// of ordered (directed) or unordered pairs of other nodes, closeness
	// by the number of reached nodes, harmonic by N - 1.
	Normalize bool

	// Probabilities makes the weighted closeness and harmonic variants read
	// weights as probabilities and sum -ln(p) distances.
	Probabilities bool

	// MaxIterations and Tolerance bound the eigenvector iteration. The
	// effective tolerance is Tolerance * N.
	MaxIterations int
	Tolerance     float64

	Workers int
	Logger  *log.Logger

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns unnormalized scores, 1000 iterations, tolerance
// 1e-6 per node, automatic parallelism and no logging.
func DefaultOptions() Options {
	return Options{
		MaxIterations: defaultMaxIterations,
		Tolerance:     defaultTolerance,
	}
}

// WithNormalize rescales scores; see Options.Normalize.
func WithNormalize() Option {
	return func(o *Options) { o.Normalize = true }
}

// WithProbabilities reads weights as probabilities.
func WithProbabilities() Option {
	return func(o *Options) { o.Probabilities = true }
}

// WithMaxIterations bounds the eigenvector iteration. n must be > 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the per-node convergence tolerance of the eigenvector
// iteration.
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			o.err = fmt.Errorf("%w: tolerance %v", ErrOptionViolation, t)
			return
		}
		o.Tolerance = t
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

func (o Options) parallel() []parallel.Option {
	return []parallel.Option{parallel.WithWorkers(o.Workers), parallel.WithMinLen(1)}
}
