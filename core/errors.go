package core

import (
	"errors"
	"fmt"
)

// Out-of-range identifiers.
var (
	// ErrNodeOutOfRange indicates a node id >= the number of nodes.
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrEdgeOutOfRange indicates an edge id >= the number of directed edges.
	ErrEdgeOutOfRange = errors.New("core: edge id out of range")

	// ErrNodeTypeOutOfRange indicates a node type id >= the number of node types.
	ErrNodeTypeOutOfRange = errors.New("core: node type id out of range")

	// ErrEdgeTypeOutOfRange indicates an edge type id >= the number of edge types.
	ErrEdgeTypeOutOfRange = errors.New("core: edge type id out of range")

	// ErrEdgeNotFound indicates that no edge joins the requested node pair.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrUnknownName indicates a name that is not in a vocabulary.
	ErrUnknownName = errors.New("core: unknown name")
)

// Missing optional features.
var (
	ErrMissingNodes       = errors.New("core: graph has no nodes")
	ErrMissingEdges       = errors.New("core: graph has no edges")
	ErrMissingWeights     = errors.New("core: graph has no edge weights")
	ErrNonPositiveWeights = errors.New("core: graph has non-positive edge weights")
	ErrMissingNodeTypes   = errors.New("core: graph has no node types")
	ErrMissingEdgeTypes   = errors.New("core: graph has no edge types")
	ErrMustBeUndirected   = errors.New("core: graph must be undirected")
	ErrMustBeDirected     = errors.New("core: graph must be directed")
)

// Malformed input.
var (
	// ErrInvalidWeight indicates a NaN or infinite weight.
	ErrInvalidWeight = errors.New("core: invalid weight")

	// ErrInvalidParameter indicates a parameter outside its domain.
	ErrInvalidParameter = errors.New("core: invalid parameter")

	// ErrEmptyInput indicates an empty collection where one was required.
	ErrEmptyInput = errors.New("core: empty input")

	// ErrUnsortedEdges indicates edges not grouped by source or not sorted
	// by destination within a source.
	ErrUnsortedEdges = errors.New("core: edges are not sorted")

	// ErrDuplicateEdge indicates a parallel edge in a graph that does not
	// accept multigraph input.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// ErrNotConverged indicates an iterative algorithm exhausted its budget.
var ErrNotConverged = errors.New("core: algorithm did not converge")

// NodeOutOfRange wraps ErrNodeOutOfRange with the offending id and bound.
func NodeOutOfRange(id NodeT, n NodeT) error {
	return fmt.Errorf("%w: node %d, graph has %d nodes", ErrNodeOutOfRange, id, n)
}

// EdgeOutOfRange wraps ErrEdgeOutOfRange with the offending id and bound.
func EdgeOutOfRange(id EdgeT, m EdgeT) error {
	return fmt.Errorf("%w: edge %d, graph has %d directed edges", ErrEdgeOutOfRange, id, m)
}

// Kind is the coarse class of an error.
type Kind int

const (
	KindUnknown Kind = iota
	KindOutOfRange
	KindMissingFeature
	KindMalformedInput
	KindNonConvergence
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindOutOfRange:
		return "out of range"
	case KindMissingFeature:
		return "missing feature"
	case KindMalformedInput:
		return "malformed input"
	case KindNonConvergence:
		return "non-convergence"
	default:
		return "unknown"
	}
}

var kinds = []struct {
	kind     Kind
	sentinel []error
}{
	{KindOutOfRange, []error{ErrNodeOutOfRange, ErrEdgeOutOfRange, ErrNodeTypeOutOfRange, ErrEdgeTypeOutOfRange, ErrEdgeNotFound, ErrUnknownName}},
	{KindMissingFeature, []error{ErrMissingNodes, ErrMissingEdges, ErrMissingWeights, ErrNonPositiveWeights, ErrMissingNodeTypes, ErrMissingEdgeTypes, ErrMustBeUndirected, ErrMustBeDirected}},
	{KindMalformedInput, []error{ErrInvalidWeight, ErrInvalidParameter, ErrEmptyInput, ErrUnsortedEdges, ErrDuplicateEdge}},
	{KindNonConvergence, []error{ErrNotConverged}},
}

// KindOf reports the class of err by walking its wrap chain.
// It returns KindUnknown for nil and for errors outside the taxonomy.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range kinds {
		for _, s := range k.sentinel {
			if errors.Is(err, s) {
				return k.kind
			}
		}
	}

	return KindUnknown
}
