// Package core defines the identifier types and the error taxonomy shared by
// every package of the graph engine.
//
// Identifier types:
//
//   - NodeT     - dense node identifier in [0, N).
//   - EdgeT     - edge identifier, the position of an edge inside the
//     destinations array of the compressed store.
//   - WeightT   - edge weight. Weights are finite; most algorithms require
//     them to be strictly positive.
//   - NodeTypeT - dense node type identifier.
//   - EdgeTypeT - dense edge type identifier.
//
// Everything else in the module is built on top of these aliases, so widening
// one of them is a single-line change here.
//
// Error taxonomy:
//
//   - Out-of-range identifiers: ErrNodeOutOfRange, ErrEdgeOutOfRange,
//     ErrNodeTypeOutOfRange, ErrEdgeTypeOutOfRange, ErrEdgeNotFound,
//     ErrUnknownName.
//   - Missing optional features: ErrMissingNodes, ErrMissingEdges,
//     ErrMissingWeights, ErrNonPositiveWeights, ErrMissingNodeTypes,
//     ErrMissingEdgeTypes, ErrMustBeUndirected, ErrMustBeDirected.
//   - Malformed input: ErrInvalidWeight, ErrInvalidParameter, ErrEmptyInput,
//     ErrUnsortedEdges, ErrDuplicateEdge.
//   - Algorithmic non-convergence: ErrNotConverged.
//
// Misuse of an "Unchecked" method is not part of this taxonomy. Those methods
// document a precondition and never return an error; violating the
// precondition is a caller bug.
//
// KindOf classifies any error wrapped around one of the sentinels above so
// that front ends can translate it without matching every sentinel.
package core
