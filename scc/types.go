package scc

import (
	"github.com/charmbracelet/log"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// Options configures Tarjan.
type Options struct {
	Logger *log.Logger
}

// Option configures Options.
type Option func(*Options)

// WithLogger enables progress logging.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns silent options.
func DefaultOptions() Options {
	return Options{}
}

// Result is a partition of the nodes into strongly connected components.
type Result struct {
	// Components lists components in the order Tarjan closes them, which is
	// a reverse topological order of the condensation. Node ids inside a
	// component are ascending.
	Components [][]core.NodeT

	// Membership maps every node to its index in Components.
	Membership []core.NodeT
}

// Count returns the number of components.
func (r *Result) Count() int { return len(r.Components) }

// Largest returns the size of the biggest component, 0 for an empty graph.
func (r *Result) Largest() int {
	largest := 0
	for _, c := range r.Components {
		largest = max(largest, len(c))
	}
	return largest
}
