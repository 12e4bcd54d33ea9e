package walks

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// ErrInvalidParameters indicates walk parameters outside their domain.
var ErrInvalidParameters = fmt.Errorf("walks: invalid parameters: %w", core.ErrInvalidParameter)

// Default parameter values.
const (
	DefaultWalkLength uint64 = 32
	DefaultIterations uint32 = 1
	defaultSeed       uint64 = 42
)

// Parameters configures a walk sequence. The zero value is not valid; start
// from DefaultParameters. The struct decodes from TOML.
type Parameters struct {
	// WalkLength is the maximum number of nodes in a walk, start included.
	WalkLength uint64 `toml:"walk_length"`
	// Iterations is the number of walks per start node.
	Iterations uint32 `toml:"iterations"`
	// MinLength drops walks shorter than this after trap truncation.
	MinLength uint64 `toml:"min_length"`

	ReturnWeight         float64 `toml:"return_weight"`
	ExploreWeight        float64 `toml:"explore_weight"`
	ChangeNodeTypeWeight float64 `toml:"change_node_type_weight"`
	ChangeEdgeTypeWeight float64 `toml:"change_edge_type_weight"`

	// MaxNeighbours caps the candidates considered per step. Zero, the
	// default, is the exact walk; 100 is a usual cap on graphs with hubs.
	MaxNeighbours uint32 `toml:"max_neighbours"`
	// NormalizeByDegree divides each candidate weight by its degree.
	NormalizeByDegree bool `toml:"normalize_by_degree"`
	// RandomState is the mixed seed. Use Seed to set it from a plain seed.
	RandomState uint64 `toml:"random_state"`

	// DenseNodeMapping, when set, renames every emitted node id.
	DenseNodeMapping map[core.NodeT]core.NodeT `toml:"-"`
}

// DefaultParameters returns a first-order walk of length 32, one iteration,
// exact sampling and random state Splitmix64(42).
func DefaultParameters() Parameters {
	return Parameters{
		WalkLength:           DefaultWalkLength,
		Iterations:           DefaultIterations,
		ReturnWeight:         1,
		ExploreWeight:        1,
		ChangeNodeTypeWeight: 1,
		ChangeEdgeTypeWeight: 1,
		RandomState:          Splitmix64(defaultSeed),
	}
}

// Seed returns p with RandomState derived from seed.
func (p Parameters) Seed(seed uint64) Parameters {
	p.RandomState = Splitmix64(seed)
	return p
}

// Options configures walk generation.
type Options struct {
	Workers int
	Logger  *log.Logger
}

// Option configures Options.
type Option func(*Options)

// WithWorkers bounds the goroutines used by Sequence.Collect.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger enables progress logging.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns automatic parallelism and no logging.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) parallel() []parallel.Option {
	return []parallel.Option{parallel.WithWorkers(o.Workers), parallel.WithMinLen(1)}
}
