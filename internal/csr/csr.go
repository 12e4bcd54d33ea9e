package csr

import (
	"fmt"
	"slices"
	"sort"
	"sync/atomic"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// CSR is an immutable compressed adjacency structure.
// The only mutable part is the optional sources cache, which is published
// atomically and never changes query results.
type CSR struct {
	outbounds    []core.EdgeT
	destinations []core.NodeT
	sources      atomic.Pointer[[]core.NodeT]
}

// newCSR wraps already validated arrays. It is used by Builder and by
// transformations that preserve the invariants by construction.
func newCSR(outbounds []core.EdgeT, destinations []core.NodeT) *CSR {
	return &CSR{outbounds: outbounds, destinations: destinations}
}

// Empty returns a store with n nodes and no edges.
func Empty(n core.NodeT) *CSR {
	return newCSR(make([]core.EdgeT, int(n)+1), nil)
}

// NumberOfNodes returns N.
func (c *CSR) NumberOfNodes() core.NodeT {
	return core.NodeT(len(c.outbounds) - 1)
}

// NumberOfEdges returns the number of directed edges.
func (c *CSR) NumberOfEdges() core.EdgeT {
	return core.EdgeT(len(c.destinations))
}

// Outbounds exposes the prefix-sum array. Callers must not modify it.
func (c *CSR) Outbounds() []core.EdgeT { return c.outbounds }

// Destinations exposes the destinations array. Callers must not modify it.
func (c *CSR) Destinations() []core.NodeT { return c.destinations }

// UncheckedMinMaxEdgeIDs returns the half-open edge id range of src.
func (c *CSR) UncheckedMinMaxEdgeIDs(src core.NodeT) (core.EdgeT, core.EdgeT) {
	return c.outbounds[src], c.outbounds[src+1]
}

// MinMaxEdgeIDs is the validated form of UncheckedMinMaxEdgeIDs.
func (c *CSR) MinMaxEdgeIDs(src core.NodeT) (core.EdgeT, core.EdgeT, error) {
	if src >= c.NumberOfNodes() {
		return 0, 0, core.NodeOutOfRange(src, c.NumberOfNodes())
	}
	lo, hi := c.UncheckedMinMaxEdgeIDs(src)

	return lo, hi, nil
}

// UncheckedDegree returns the out-degree of src.
func (c *CSR) UncheckedDegree(src core.NodeT) core.EdgeT {
	return c.outbounds[src+1] - c.outbounds[src]
}

// UncheckedNeighbours returns the sorted destinations of src as a view.
func (c *CSR) UncheckedNeighbours(src core.NodeT) []core.NodeT {
	return c.destinations[c.outbounds[src]:c.outbounds[src+1]]
}

// UncheckedEdgeID returns the id of the first edge src -> dst.
// The lower-bound search lands on the first edge of a parallel run, so no
// backward scan is needed.
func (c *CSR) UncheckedEdgeID(src, dst core.NodeT) (core.EdgeT, bool) {
	lo, hi := c.outbounds[src], c.outbounds[src+1]
	idx, found := slices.BinarySearch(c.destinations[lo:hi], dst)

	return lo + core.EdgeT(idx), found
}

// UncheckedHasEdge reports whether src -> dst exists.
func (c *CSR) UncheckedHasEdge(src, dst core.NodeT) bool {
	_, found := c.UncheckedEdgeID(src, dst)

	return found
}

// UncheckedEdgeCount returns the number of parallel edges src -> dst.
func (c *CSR) UncheckedEdgeCount(src, dst core.NodeT) core.EdgeT {
	first, found := c.UncheckedEdgeID(src, dst)
	if !found {
		return 0
	}
	_, hi := c.UncheckedMinMaxEdgeIDs(src)
	last := first
	for last < hi && c.destinations[last] == dst {
		last++
	}

	return last - first
}

// EdgeID validates both ids and returns the first edge id of src -> dst.
func (c *CSR) EdgeID(src, dst core.NodeT) (core.EdgeT, error) {
	n := c.NumberOfNodes()
	if src >= n {
		return 0, core.NodeOutOfRange(src, n)
	}
	if dst >= n {
		return 0, core.NodeOutOfRange(dst, n)
	}
	id, found := c.UncheckedEdgeID(src, dst)
	if !found {
		return 0, fmt.Errorf("%w: %d -> %d", core.ErrEdgeNotFound, src, dst)
	}

	return id, nil
}

// UncheckedSourceNodeID returns the source of edge e: an array read when
// sources are enabled, a binary search over outbounds otherwise.
func (c *CSR) UncheckedSourceNodeID(e core.EdgeT) core.NodeT {
	if s := c.sources.Load(); s != nil {
		return (*s)[e]
	}

	return c.ownerOf(e)
}

// ownerOf returns the last source whose slice starts at or before e.
// Zero-degree sources share their start with the next source, so the last
// match is the one whose slice actually contains e.
func (c *CSR) ownerOf(e core.EdgeT) core.NodeT {
	idx := sort.Search(len(c.outbounds), func(i int) bool { return c.outbounds[i] > e })

	return core.NodeT(idx - 1)
}

// UncheckedDestinationNodeID returns the destination of edge e.
func (c *CSR) UncheckedDestinationNodeID(e core.EdgeT) core.NodeT {
	return c.destinations[e]
}

// UncheckedNodeIDs returns both endpoints of edge e.
func (c *CSR) UncheckedNodeIDs(e core.EdgeT) (core.NodeT, core.NodeT) {
	return c.UncheckedSourceNodeID(e), c.destinations[e]
}

// NodeIDs is the validated form of UncheckedNodeIDs.
func (c *CSR) NodeIDs(e core.EdgeT) (core.NodeT, core.NodeT, error) {
	if e >= c.NumberOfEdges() {
		return 0, 0, core.EdgeOutOfRange(e, c.NumberOfEdges())
	}
	src, dst := c.UncheckedNodeIDs(e)

	return src, dst, nil
}

// HasSources reports whether the reverse array is materialised.
func (c *CSR) HasSources() bool { return c.sources.Load() != nil }

// EnableSources materialises the reverse array. It is idempotent.
func (c *CSR) EnableSources() {
	if c.HasSources() {
		return
	}
	sources := make([]core.NodeT, len(c.destinations))
	for src := core.NodeT(0); src < c.NumberOfNodes(); src++ {
		lo, hi := c.UncheckedMinMaxEdgeIDs(src)
		for e := lo; e < hi; e++ {
			sources[e] = src
		}
	}
	c.sources.CompareAndSwap(nil, &sources)
}

// DisableSources frees the reverse array. It is idempotent.
func (c *CSR) DisableSources() {
	c.sources.Store(nil)
}

// Transposed returns the store with every edge reversed, plus the mapping
// from each original edge id to its id in the transposed store.
func (c *CSR) Transposed() (*CSR, []core.EdgeT) {
	n := c.NumberOfNodes()
	outbounds := make([]core.EdgeT, int(n)+1)
	for _, dst := range c.destinations {
		outbounds[dst+1]++
	}
	for i := 1; i < len(outbounds); i++ {
		outbounds[i] += outbounds[i-1]
	}
	next := slices.Clone(outbounds[:n])
	destinations := make([]core.NodeT, len(c.destinations))
	mapping := make([]core.EdgeT, len(c.destinations))
	// visiting sources in ascending order keeps every new slice sorted
	for src := core.NodeT(0); src < n; src++ {
		lo, hi := c.UncheckedMinMaxEdgeIDs(src)
		for e := lo; e < hi; e++ {
			dst := c.destinations[e]
			destinations[next[dst]] = src
			mapping[e] = next[dst]
			next[dst]++
		}
	}

	return newCSR(outbounds, destinations), mapping
}
