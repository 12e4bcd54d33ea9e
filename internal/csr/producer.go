package csr

import (
	"context"
	"sort"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// cursor is the boundary state shared by the edge producers.
//
// start and end are offsets into a prefix array (the real outbounds, or a
// restricted prefix for the triangular producers), end exclusive.
// startSrc caches the owner of start and endSrc the owner of end-1, so
// crossing into the next source costs a forward walk over zero-degree
// sources instead of a binary search.
type cursor struct {
	prefix   []core.EdgeT
	startSrc core.NodeT
	start    core.EdgeT
	endSrc   core.NodeT
	end      core.EdgeT
}

func newCursor(prefix []core.EdgeT, start, end core.EdgeT) cursor {
	cur := cursor{prefix: prefix, start: start, end: end}
	if end > start {
		cur.startSrc = owner(prefix, start)
		cur.endSrc = owner(prefix, end-1)
	}

	return cur
}

// owner returns the source whose prefix slice contains offset.
func owner(prefix []core.EdgeT, offset core.EdgeT) core.NodeT {
	idx := sort.Search(len(prefix), func(i int) bool { return prefix[i] > offset })
	if idx == 0 {
		return 0
	}
	if idx > len(prefix)-1 {
		// offset == prefix[N]: clamp to the last source
		idx = len(prefix) - 1
	}

	return core.NodeT(idx - 1)
}

func (c *cursor) len() int { return int(c.end - c.start) }

// next pops the first offset and its source.
func (c *cursor) next() (core.EdgeT, core.NodeT, bool) {
	if c.start >= c.end {
		return 0, 0, false
	}
	for c.prefix[c.startSrc+1] <= c.start {
		c.startSrc++
	}
	off := c.start
	c.start++

	return off, c.startSrc, true
}

// nextBack pops the last offset and its source.
func (c *cursor) nextBack() (core.EdgeT, core.NodeT, bool) {
	if c.start >= c.end {
		return 0, 0, false
	}
	c.end--
	for c.prefix[c.endSrc] > c.end {
		c.endSrc--
	}

	return c.end, c.endSrc, true
}

// splitAt divides the cursor at relative offset index.
func (c *cursor) splitAt(index int) (cursor, cursor) {
	mid := c.start + core.EdgeT(index)
	if mid > c.end {
		mid = c.end
	}
	midSrc := owner(c.prefix, mid)
	left := cursor{prefix: c.prefix, startSrc: c.startSrc, start: c.start, endSrc: midSrc, end: mid}
	right := cursor{prefix: c.prefix, startSrc: midSrc, start: mid, endSrc: c.endSrc, end: c.end}
	// an empty half keeps consistent sources so that the walks above
	// never run past either end of the prefix array
	if left.start >= left.end {
		left.endSrc = left.startSrc
	}
	if right.start >= right.end {
		right.startSrc = right.endSrc
	}

	return left, right
}

// EdgesProducer yields every directed edge in id order.
type EdgesProducer struct {
	csr *CSR
	cur cursor
}

// NewEdgesProducer returns a producer over all edges of c.
func NewEdgesProducer(c *CSR) *EdgesProducer {
	return &EdgesProducer{csr: c, cur: newCursor(c.outbounds, 0, c.NumberOfEdges())}
}

// NewEdgesProducerRange returns a producer over edge ids [start, end).
func NewEdgesProducerRange(c *CSR, start, end core.EdgeT) *EdgesProducer {
	if end > c.NumberOfEdges() {
		end = c.NumberOfEdges()
	}
	if start > end {
		start = end
	}

	return &EdgesProducer{csr: c, cur: newCursor(c.outbounds, start, end)}
}

// Len implements parallel.Producer.
func (p *EdgesProducer) Len() int { return p.cur.len() }

// Next implements parallel.Producer.
func (p *EdgesProducer) Next() (core.Edge, bool) {
	e, src, ok := p.cur.next()
	if !ok {
		return core.Edge{}, false
	}

	return core.Edge{ID: e, Src: src, Dst: p.csr.destinations[e]}, true
}

// NextBack implements parallel.Producer.
func (p *EdgesProducer) NextBack() (core.Edge, bool) {
	e, src, ok := p.cur.nextBack()
	if !ok {
		return core.Edge{}, false
	}

	return core.Edge{ID: e, Src: src, Dst: p.csr.destinations[e]}, true
}

// SplitAt implements parallel.Producer.
func (p *EdgesProducer) SplitAt(index int) (parallel.Producer[core.Edge], parallel.Producer[core.Edge]) {
	left, right := p.cur.splitAt(index)

	return &EdgesProducer{csr: p.csr, cur: left}, &EdgesProducer{csr: p.csr, cur: right}
}

// Triangle selects the sub-relation of a RestrictedProducer.
type Triangle int

const (
	// Lower keeps edges with dst <= src.
	Lower Triangle = iota
	// Upper keeps edges with dst >= src.
	Upper
)

// RestrictedProducer yields the edges of one triangle in id order.
//
// It iterates a restricted offset space [0, prefix[N]) where prefix counts
// only the kept edges of each source; splits bisect that space, so halves
// are balanced in kept edges. Because destinations are sorted, the kept
// edges of a source form a prefix (Lower) or a suffix (Upper) of its slice,
// which makes the restricted -> real id conversion O(1).
type RestrictedProducer struct {
	csr      *CSR
	triangle Triangle
	cur      cursor
}

// NewRestrictedProducer computes the restricted prefix array in parallel
// and returns a producer over the chosen triangle. The array is shared by
// every producer split from the result.
func NewRestrictedProducer(ctx context.Context, c *CSR, triangle Triangle, opts ...parallel.Option) (*RestrictedProducer, error) {
	n := int(c.NumberOfNodes())
	prefix := make([]core.EdgeT, n+1)
	counts := parallel.NewSharedSlice(prefix[1:])
	err := parallel.ForEach(ctx, n, func(i int) error {
		src := core.NodeT(i)
		neighbours := c.UncheckedNeighbours(src)
		// number of destinations <= src
		le := core.EdgeT(sort.Search(len(neighbours), func(j int) bool { return neighbours[j] > src }))
		if triangle == Lower {
			counts.Store(i, le)
			return nil
		}
		// number of destinations >= src
		lt := core.EdgeT(sort.Search(len(neighbours), func(j int) bool { return neighbours[j] >= src }))
		counts.Store(i, core.EdgeT(len(neighbours))-lt)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	for i := 1; i <= n; i++ {
		prefix[i] += prefix[i-1]
	}

	return &RestrictedProducer{csr: c, triangle: triangle, cur: newCursor(prefix, 0, prefix[n])}, nil
}

// Len implements parallel.Producer.
func (p *RestrictedProducer) Len() int { return p.cur.len() }

func (p *RestrictedProducer) edge(restricted core.EdgeT, src core.NodeT) core.Edge {
	var id core.EdgeT
	if p.triangle == Lower {
		id = restricted - p.cur.prefix[src] + p.csr.outbounds[src]
	} else {
		id = p.csr.outbounds[src+1] - (p.cur.prefix[src+1] - restricted)
	}

	return core.Edge{ID: id, Src: src, Dst: p.csr.destinations[id]}
}

// Next implements parallel.Producer.
func (p *RestrictedProducer) Next() (core.Edge, bool) {
	r, src, ok := p.cur.next()
	if !ok {
		return core.Edge{}, false
	}

	return p.edge(r, src), true
}

// NextBack implements parallel.Producer.
func (p *RestrictedProducer) NextBack() (core.Edge, bool) {
	r, src, ok := p.cur.nextBack()
	if !ok {
		return core.Edge{}, false
	}

	return p.edge(r, src), true
}

// SplitAt implements parallel.Producer.
func (p *RestrictedProducer) SplitAt(index int) (parallel.Producer[core.Edge], parallel.Producer[core.Edge]) {
	left, right := p.cur.splitAt(index)

	return &RestrictedProducer{csr: p.csr, triangle: p.triangle, cur: left},
		&RestrictedProducer{csr: p.csr, triangle: p.triangle, cur: right}
}

// NodesProducer yields node ids in ascending order.
type NodesProducer struct {
	start core.NodeT
	end   core.NodeT
}

// NewNodesProducer returns a producer over [0, n).
func NewNodesProducer(n core.NodeT) *NodesProducer {
	return &NodesProducer{end: n}
}

// Len implements parallel.Producer.
func (p *NodesProducer) Len() int { return int(p.end - p.start) }

// Next implements parallel.Producer.
func (p *NodesProducer) Next() (core.NodeT, bool) {
	if p.start >= p.end {
		return 0, false
	}
	p.start++

	return p.start - 1, true
}

// NextBack implements parallel.Producer.
func (p *NodesProducer) NextBack() (core.NodeT, bool) {
	if p.start >= p.end {
		return 0, false
	}
	p.end--

	return p.end, true
}

// SplitAt implements parallel.Producer.
func (p *NodesProducer) SplitAt(index int) (parallel.Producer[core.NodeT], parallel.Producer[core.NodeT]) {
	mid := p.start + core.NodeT(index)

	return &NodesProducer{start: p.start, end: mid}, &NodesProducer{start: mid, end: p.end}
}
