package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/AnacletoLAB/ensmallen-sub009/builder"
	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/walks"
)

// Generator names accepted in [graph].
const (
	GenChain           = "chain"
	GenCircle          = "circle"
	GenStar            = "star"
	GenWheel           = "wheel"
	GenComplete        = "complete"
	GenBarbell         = "barbell"
	GenErdosRenyi      = "erdos_renyi"
	GenSpanningTree    = "random_spanning_tree"
	GenRandomConnected = "random_connected"
)

// Weight modes accepted in [graph].
const (
	WeightsNone        = ""
	WeightsConstant    = "constant"
	WeightsUniform     = "uniform"
	WeightsProbability = "probability"
)

// Config is a run file.
//
//	[graph]
//	generator = "random_connected"
//	nodes = 1000
//	extra = 3000
//	weights = "uniform"
//	min_weight = 1.0
//	max_weight = 5.0
//
//	[walks]
//	walk_length = 80
//	return_weight = 0.5
//
//	[run]
//	workers = 8
type Config struct {
	Graph GraphConfig      `toml:"graph"`
	Walks walks.Parameters `toml:"walks"`
	Run   RunConfig        `toml:"run"`
}

// GraphConfig selects a generator and its parameters. Fields that a
// generator does not use are ignored.
type GraphConfig struct {
	Generator   string  `toml:"generator"`
	Name        string  `toml:"name"`
	Nodes       int     `toml:"nodes"`
	Extra       int     `toml:"extra"`
	Probability float64 `toml:"probability"`
	Bridge      int     `toml:"bridge"`
	Directed    bool    `toml:"directed"`
	Seed        int64   `toml:"seed"`
	Weights     string  `toml:"weights"`
	MinWeight   float64 `toml:"min_weight"`
	MaxWeight   float64 `toml:"max_weight"`
}

// RunConfig holds execution settings.
type RunConfig struct {
	Workers int `toml:"workers"`
}

// DefaultConfig returns a connected random graph of 100 nodes, default walk
// parameters and automatic parallelism.
func DefaultConfig() Config {
	return Config{
		Graph: GraphConfig{
			Generator: GenRandomConnected,
			Nodes:     100,
			Extra:     200,
			Seed:      1,
			MinWeight: 1,
			MaxWeight: 1,
		},
		Walks: walks.DefaultParameters(),
	}
}

// LoadConfig decodes path over DefaultConfig. Keys absent from the file
// keep their defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q: %w", path, undecoded[0].String(), core.ErrInvalidParameter)
	}

	return cfg, nil
}

// Build generates the configured graph.
func (c GraphConfig) Build(workers int) (*graph.Graph, error) {
	if err := c.checkWeights(); err != nil {
		return nil, err
	}
	opts := []builder.Option{
		builder.WithDirected(c.Directed),
		builder.WithSeed(c.Seed),
		builder.WithWorkers(workers),
	}
	if c.Name != "" {
		opts = append(opts, builder.WithName(c.Name))
	}
	switch c.Weights {
	case WeightsNone:
	case WeightsConstant:
		opts = append(opts, builder.WithWeightFn(builder.ConstantWeightFn(core.WeightT(c.MinWeight))))
	case WeightsUniform:
		opts = append(opts, builder.WithWeightFn(builder.UniformWeightFn(core.WeightT(c.MinWeight), core.WeightT(c.MaxWeight))))
	case WeightsProbability:
		opts = append(opts, builder.WithWeightFn(builder.ProbabilityWeightFn))
	default:
		return nil, fmt.Errorf("graph: unknown weights %q: %w", c.Weights, core.ErrInvalidParameter)
	}
	switch c.Generator {
	case GenChain:
		return builder.Chain(c.Nodes, opts...)
	case GenCircle:
		return builder.Circle(c.Nodes, opts...)
	case GenStar:
		return builder.Star(c.Nodes, opts...)
	case GenWheel:
		return builder.Wheel(c.Nodes, opts...)
	case GenComplete:
		return builder.Complete(c.Nodes, opts...)
	case GenBarbell:
		return builder.Barbell(c.Nodes, c.Bridge, opts...)
	case GenErdosRenyi:
		return builder.ErdosRenyi(c.Nodes, c.Probability, opts...)
	case GenSpanningTree:
		return builder.RandomSpanningTree(c.Nodes, opts...)
	case GenRandomConnected:
		return builder.RandomConnected(c.Nodes, c.Extra, opts...)
	default:
		return nil, fmt.Errorf("graph: unknown generator %q: %w", c.Generator, core.ErrInvalidParameter)
	}
}

// checkWeights rejects ranges the weight functions would panic on.
func (c GraphConfig) checkWeights() error {
	switch c.Weights {
	case WeightsConstant:
		if !(c.MinWeight > 0) {
			return fmt.Errorf("graph: constant weight %v must be positive: %w", c.MinWeight, core.ErrInvalidParameter)
		}
	case WeightsUniform:
		if !(c.MinWeight > 0 && c.MinWeight <= c.MaxWeight) {
			return fmt.Errorf("graph: weight range [%v, %v] must satisfy 0 < min <= max: %w", c.MinWeight, c.MaxWeight, core.ErrInvalidParameter)
		}
	}

	return nil
}
