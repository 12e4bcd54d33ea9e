// SPDX-License-Identifier: MIT
package builder

import (
	"math/rand"

	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// config aggregates every knob of Build and of the generators.
type config struct {
	directed   bool
	name       string
	numericIDs bool
	nodeCount  int
	sorted     bool
	multigraph bool
	workers    int

	// generators only
	seed       int64
	weightFn   WeightFn
	namePrefix string

	err error
}

// Option configures Build and the generators.
type Option func(*config)

// WithDirected selects a directed graph. The default is undirected.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithName names the resulting graph.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithNumericIDs declares that node names are decimal node ids. The node
// count is the largest id plus one unless WithNodeCount raises it.
func WithNumericIDs() Option {
	return func(c *config) { c.numericIDs = true }
}

// WithNodeCount reserves ids [0, n) in numeric mode, so trailing isolated
// nodes exist even when no edge mentions them.
func WithNodeCount(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.err = ErrOptionViolation
			return
		}
		c.nodeCount = n
	}
}

// WithSortedEdges declares a directed stream already grouped by source and
// sorted by destination; the builder then only verifies the order.
func WithSortedEdges() Option {
	return func(c *config) { c.sorted = true }
}

// WithMultigraph keeps parallel edges instead of rejecting them.
func WithMultigraph() Option {
	return func(c *config) { c.multigraph = true }
}

// WithWorkers bounds the goroutines used to fill the store.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.err = ErrOptionViolation
			return
		}
		c.workers = n
	}
}

// WithSeed fixes the random source of stochastic generators.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWeightFn makes generators emit weighted edges drawn from fn.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) { c.weightFn = fn }
}

// WithNamePrefix makes generators name node i as prefix + i.
// An empty prefix (the default) produces numeric ids.
func WithNamePrefix(prefix string) Option {
	return func(c *config) { c.namePrefix = prefix }
}

// defaultSeed is used when no seed was given.
const defaultSeed int64 = 1

func newConfig(opts []Option) (config, error) {
	cfg := config{seed: defaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

func (c config) parallelOptions() []parallel.Option {
	return []parallel.Option{parallel.WithWorkers(c.workers)}
}

func (c config) rng() *rand.Rand {
	return rand.New(rand.NewSource(c.seed))
}
