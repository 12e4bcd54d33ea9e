// SPDX-License-Identifier: MIT
package builder

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/csr"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
	"github.com/AnacletoLAB/ensmallen-sub009/vocabulary"
)

// arcs holds the directed edge list while it is being assembled.
type arcs struct {
	srcs, dsts []core.NodeT
	lines      []int
	weights    []core.WeightT
	types      []core.EdgeTypeT
}

func (a *arcs) push(src, dst core.NodeT, line int, weight core.WeightT, typ core.EdgeTypeT) {
	a.srcs = append(a.srcs, src)
	a.dsts = append(a.dsts, dst)
	a.lines = append(a.lines, line)
	if a.weights != nil {
		a.weights = append(a.weights, weight)
	}
	if a.types != nil {
		a.types = append(a.types, typ)
	}
}

func (a *arcs) len() int { return len(a.srcs) }

// permute reorders every column by perm, where perm[i] is the old index of
// the new i-th arc.
func (a *arcs) permute(perm []int) {
	a.srcs = permuted(a.srcs, perm)
	a.dsts = permuted(a.dsts, perm)
	a.lines = permuted(a.lines, perm)
	if a.weights != nil {
		a.weights = permuted(a.weights, perm)
	}
	if a.types != nil {
		a.types = permuted(a.types, perm)
	}
}

func permuted[T any](xs []T, perm []int) []T {
	out := make([]T, len(xs))
	for i, j := range perm {
		out[i] = xs[j]
	}

	return out
}

// state is the mutable context of a single Build call.
type state struct {
	cfg config

	names      *graph.NodeVocabulary
	numericMax int64
	closed     bool // a node list was given: edges may not add nodes

	nodeTypeNames *graph.NodeTypeVocabulary
	nodeTypes     map[core.NodeT]core.NodeTypeT

	edgeTypeNames *graph.EdgeTypeVocabulary

	weighted *bool
	arcs     arcs
}

// Build validates an edge stream and an optional node stream and returns the
// immutable graph they describe. nodes may be nil.
//
// Steps:
//  1. Intern node names (and node types) from the node stream.
//  2. Intern edge endpoints and edge types, check weights, and mirror
//     undirected edges (self-loops are stored once).
//  3. Sort by (src, dst) with a stable permutation, or only verify the order
//     when WithSortedEdges was given for a directed graph.
//  4. Reject parallel edges unless WithMultigraph.
//  5. Fill the compressed store with parallel writes and wrap it.
func Build(edges iter.Seq2[EdgeRecord, error], nodes iter.Seq2[NodeRecord, error], opts ...Option) (*graph.Graph, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if edges == nil {
		return nil, fmt.Errorf("builder: %w: nil edge stream", core.ErrInvalidParameter)
	}
	s := &state{cfg: cfg, numericMax: int64(cfg.nodeCount) - 1}
	if !cfg.numericIDs {
		s.names = vocabulary.New[core.NodeT](0)
	}

	// 1. nodes
	if nodes != nil {
		s.closed = true
		for rec, err := range nodes {
			if err != nil {
				return nil, err
			}
			if err := s.addNode(rec); err != nil {
				return nil, err
			}
		}
	}

	// 2. edges
	for rec, err := range edges {
		if err != nil {
			return nil, err
		}
		if err := s.addEdge(rec); err != nil {
			return nil, err
		}
	}

	return s.finish()
}

func (s *state) addNode(rec NodeRecord) error {
	var id core.NodeT
	if s.cfg.numericIDs {
		var err error
		if id, err = s.parseNumeric(rec.Line, rec.Name); err != nil {
			return err
		}
	} else {
		var existed bool
		var err error
		id, existed, err = s.names.Insert(rec.Name)
		if err != nil {
			return lineErrorf(rec.Line, "%w", err)
		}
		if existed {
			return lineErrorf(rec.Line, "%w: node %q listed twice", core.ErrInvalidParameter, rec.Name)
		}
	}
	if rec.Type == "" {
		return nil
	}
	if s.nodeTypeNames == nil {
		s.nodeTypeNames = vocabulary.New[core.NodeTypeT](0)
		s.nodeTypes = make(map[core.NodeT]core.NodeTypeT)
	}
	t, _, err := s.nodeTypeNames.Insert(rec.Type)
	if err != nil {
		return lineErrorf(rec.Line, "%w", err)
	}
	s.nodeTypes[id] = t

	return nil
}

func (s *state) parseNumeric(line int, name string) (core.NodeT, error) {
	v, err := strconv.ParseUint(name, 10, 32)
	if err != nil || v >= core.MaxNodes || strconv.FormatUint(v, 10) != name {
		return 0, lineErrorf(line, "%w: %q is not a numeric node id", core.ErrUnknownName, name)
	}
	if int64(v) > s.numericMax {
		s.numericMax = int64(v)
	}

	return core.NodeT(v), nil
}

func (s *state) endpoint(line int, name string) (core.NodeT, error) {
	if s.cfg.numericIDs {
		return s.parseNumeric(line, name)
	}
	if s.closed {
		id, err := s.names.ID(name)
		if err != nil {
			return 0, lineErrorf(line, "%w: unknown endpoint %q", core.ErrUnknownName, name)
		}
		return id, nil
	}
	id, _, err := s.names.Insert(name)
	if err != nil {
		return 0, lineErrorf(line, "%w", err)
	}

	return id, nil
}

func (s *state) addEdge(rec EdgeRecord) error {
	if s.weighted == nil {
		w := rec.HasWeight
		s.weighted = &w
		if w {
			s.arcs.weights = []core.WeightT{}
		}
	}
	if *s.weighted != rec.HasWeight {
		if rec.HasWeight {
			return lineErrorf(rec.Line, "%w: weighted record in an unweighted stream", core.ErrInvalidParameter)
		}
		return lineErrorf(rec.Line, "%w: %w", ErrMissingWeight, core.ErrMissingWeights)
	}
	if rec.HasWeight && (math.IsNaN(float64(rec.Weight)) || math.IsInf(float64(rec.Weight), 0)) {
		return lineErrorf(rec.Line, "%w: %v", core.ErrInvalidWeight, rec.Weight)
	}

	src, err := s.endpoint(rec.Line, rec.Src)
	if err != nil {
		return err
	}
	dst, err := s.endpoint(rec.Line, rec.Dst)
	if err != nil {
		return err
	}

	typ := core.EdgeTypeNotPresent
	if rec.EdgeType != "" {
		if s.edgeTypeNames == nil {
			s.edgeTypeNames = vocabulary.New[core.EdgeTypeT](0)
			// backfill the edges read so far as untyped
			s.arcs.types = make([]core.EdgeTypeT, s.arcs.len())
			for i := range s.arcs.types {
				s.arcs.types[i] = core.EdgeTypeNotPresent
			}
		}
		if typ, _, err = s.edgeTypeNames.Insert(rec.EdgeType); err != nil {
			return lineErrorf(rec.Line, "%w", err)
		}
	}

	s.arcs.push(src, dst, rec.Line, rec.Weight, typ)
	if !s.cfg.directed && src != dst {
		s.arcs.push(dst, src, rec.Line, rec.Weight, typ)
	}

	return nil
}

func (s *state) nodeCount() (core.NodeT, *graph.NodeVocabulary, error) {
	if !s.cfg.numericIDs {
		return core.NodeT(s.names.Len()), s.names, nil
	}
	n := s.numericMax + 1
	if uint64(n) > core.MaxNodes {
		return 0, nil, fmt.Errorf("builder: %w: %d nodes", core.ErrInvalidParameter, n)
	}
	names, err := vocabulary.Numeric[core.NodeT](int(n))
	if err != nil {
		return 0, nil, fmt.Errorf("builder: %w", err)
	}

	return core.NodeT(n), names, nil
}

func (s *state) finish() (*graph.Graph, error) {
	n, names, err := s.nodeCount()
	if err != nil {
		return nil, err
	}

	// 3. order
	if s.cfg.sorted && s.cfg.directed {
		for i := 1; i < s.arcs.len(); i++ {
			if compareArc(&s.arcs, i-1, i) > 0 {
				return nil, lineErrorf(s.arcs.lines[i], "%w: (%d, %d) after (%d, %d)",
					core.ErrUnsortedEdges, s.arcs.srcs[i], s.arcs.dsts[i], s.arcs.srcs[i-1], s.arcs.dsts[i-1])
			}
		}
	} else {
		perm := make([]int, s.arcs.len())
		for i := range perm {
			perm[i] = i
		}
		slices.SortStableFunc(perm, func(a, b int) int { return compareArc(&s.arcs, a, b) })
		s.arcs.permute(perm)
	}

	// 4. duplicates
	if !s.cfg.multigraph {
		for i := 1; i < s.arcs.len(); i++ {
			if compareArc(&s.arcs, i-1, i) == 0 {
				return nil, lineErrorf(s.arcs.lines[i], "%w: %d -> %d", core.ErrDuplicateEdge, s.arcs.srcs[i], s.arcs.dsts[i])
			}
		}
	}

	// 5. store
	m := s.arcs.len()
	b := csr.NewBuilder(n, core.EdgeT(m))
	err = parallel.ForEach(context.Background(), m, func(i int) error {
		b.UncheckedSet(core.EdgeT(i), s.arcs.srcs[i], s.arcs.dsts[i])
		return nil
	}, s.cfg.parallelOptions()...)
	if err != nil {
		return nil, err
	}
	store, err := b.Build(false)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	parts := graph.Parts{
		Name:          s.cfg.name,
		Directed:      s.cfg.directed,
		Store:         store,
		Nodes:         names,
		Weights:       s.arcs.weights,
		EdgeTypes:     s.arcs.types,
		EdgeTypeNames: s.edgeTypeNames,
	}
	if s.nodeTypeNames != nil {
		parts.NodeTypes = make([]core.NodeTypeT, n)
		for i := range parts.NodeTypes {
			parts.NodeTypes[i] = core.NodeTypeNotPresent
		}
		for id, t := range s.nodeTypes {
			parts.NodeTypes[id] = t
		}
		parts.NodeTypeNames = s.nodeTypeNames
	}
	g, err := graph.New(parts)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	return g, nil
}

func compareArc(a *arcs, i, j int) int {
	if c := cmp.Compare(a.srcs[i], a.srcs[j]); c != 0 {
		return c
	}

	return cmp.Compare(a.dsts[i], a.dsts[j])
}

// FromEdgeRecords builds a graph from a slice of edge records without a node
// list.
func FromEdgeRecords(records []EdgeRecord, opts ...Option) (*graph.Graph, error) {
	return Build(Records(records), nil, opts...)
}

// FromPairs builds an unweighted graph over numeric ids [0, n).
func FromPairs(n int, pairs []core.Pair, opts ...Option) (*graph.Graph, error) {
	records := make([]EdgeRecord, len(pairs))
	for i, p := range pairs {
		records[i] = EdgeRecord{
			Line: i + 1,
			Src:  strconv.FormatUint(uint64(p.Src), 10),
			Dst:  strconv.FormatUint(uint64(p.Dst), 10),
		}
	}

	return numeric(n, records, opts)
}

// FromWeightedPairs builds a weighted graph over numeric ids [0, n).
func FromWeightedPairs(n int, pairs []WeightedPair, opts ...Option) (*graph.Graph, error) {
	records := make([]EdgeRecord, len(pairs))
	for i, p := range pairs {
		records[i] = EdgeRecord{
			Line:      i + 1,
			Src:       strconv.FormatUint(uint64(p.Src), 10),
			Dst:       strconv.FormatUint(uint64(p.Dst), 10),
			Weight:    p.Weight,
			HasWeight: true,
		}
	}

	return numeric(n, records, opts)
}

func numeric(n int, records []EdgeRecord, opts []Option) (*graph.Graph, error) {
	all := append([]Option{WithNumericIDs(), WithNodeCount(n)}, opts...)
	g, err := FromEdgeRecords(records, all...)
	if err != nil {
		return nil, err
	}
	if int(g.NumberOfNodes()) != n {
		return nil, fmt.Errorf("builder: %w: edge endpoint beyond %d nodes", core.ErrNodeOutOfRange, n)
	}

	return g, nil
}
