package csr

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// Builder assembles a CSR from edges written out of order at caller chosen
// edge ids. Distinct edge ids may be written concurrently.
//
// The caller must already have grouped the edge list by source and sorted
// it by destination inside each source; Build verifies the result.
// UncheckedSet performs no bounds check, which is why the builder is only
// reachable from inside the module and FromSortedEdges is the entry point.
type Builder struct {
	nodes        core.NodeT
	degrees      []atomic.Uint64
	destinations []core.NodeT
	sources      []core.NodeT
}

// NewBuilder pre-allocates a store of the given size.
func NewBuilder(nodes core.NodeT, edges core.EdgeT) *Builder {
	return &Builder{
		nodes:        nodes,
		degrees:      make([]atomic.Uint64, nodes),
		destinations: make([]core.NodeT, edges),
		sources:      make([]core.NodeT, edges),
	}
}

// UncheckedSet records edge id e as src -> dst. Each e must be written
// exactly once and src, dst must be < the node count.
func (b *Builder) UncheckedSet(e core.EdgeT, src, dst core.NodeT) {
	b.destinations[e] = dst
	b.sources[e] = src
	b.degrees[src].Add(1)
}

// Build computes the prefix sums and validates grouping and sortedness.
// When keepSources is true the store starts with its reverse array enabled.
func (b *Builder) Build(keepSources bool) (*CSR, error) {
	outbounds := make([]core.EdgeT, int(b.nodes)+1)
	for i := range b.degrees {
		outbounds[i+1] = outbounds[i] + b.degrees[i].Load()
	}
	if total := outbounds[b.nodes]; total != core.EdgeT(len(b.destinations)) {
		return nil, fmt.Errorf("%w: %d edges written, %d allocated", core.ErrInvalidParameter, total, len(b.destinations))
	}
	src := core.NodeT(0)
	for e := range b.destinations {
		for core.EdgeT(e) >= outbounds[src+1] {
			src++
		}
		if b.sources[e] != src {
			return nil, fmt.Errorf("%w: edge %d has source %d inside the slice of %d", core.ErrUnsortedEdges, e, b.sources[e], src)
		}
		if core.EdgeT(e) > outbounds[src] && b.destinations[e-1] > b.destinations[e] {
			return nil, fmt.Errorf("%w: destinations of %d decrease at edge %d", core.ErrUnsortedEdges, src, e)
		}
	}
	c := newCSR(outbounds, b.destinations)
	if keepSources {
		sources := b.sources
		c.sources.Store(&sources)
	}

	return c, nil
}

// FromSortedEdges validates a sorted edge list given as parallel arrays and
// builds the store, writing edges in parallel.
func FromSortedEdges(ctx context.Context, nodes core.NodeT, srcs, dsts []core.NodeT, opts ...parallel.Option) (*CSR, error) {
	if len(srcs) != len(dsts) {
		return nil, fmt.Errorf("%w: %d sources for %d destinations", core.ErrInvalidParameter, len(srcs), len(dsts))
	}
	if uint64(nodes) > core.MaxNodes {
		return nil, fmt.Errorf("%w: %d nodes", core.ErrInvalidParameter, nodes)
	}
	b := NewBuilder(nodes, core.EdgeT(len(srcs)))
	err := parallel.ForEach(ctx, len(srcs), func(i int) error {
		if srcs[i] >= nodes {
			return core.NodeOutOfRange(srcs[i], nodes)
		}
		if dsts[i] >= nodes {
			return core.NodeOutOfRange(dsts[i], nodes)
		}
		b.UncheckedSet(core.EdgeT(i), srcs[i], dsts[i])
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return b.Build(false)
}
