package core

import "math"

// NodeT identifies a node. Node ids are dense in [0, N).
type NodeT = uint32

// EdgeT identifies a directed edge by its offset in the destinations array.
type EdgeT = uint64

// WeightT is the type of an edge weight.
type WeightT = float32

// NodeTypeT identifies a node type.
type NodeTypeT = uint16

// EdgeTypeT identifies an edge type.
type EdgeTypeT = uint16

const (
	// NodeNotPresent marks "no node" in node-valued arrays such as
	// predecessors or component assignments.
	NodeNotPresent NodeT = math.MaxUint32

	// EdgeNotPresent marks "no edge" in edge-valued arrays.
	EdgeNotPresent EdgeT = math.MaxUint64

	// NodeTypeNotPresent marks a node without a type in a typed graph.
	NodeTypeNotPresent NodeTypeT = math.MaxUint16

	// EdgeTypeNotPresent marks an edge without a type in a typed graph.
	EdgeTypeNotPresent EdgeTypeT = math.MaxUint16

	// MaxNodes is the largest number of nodes a store can hold; the last id
	// is reserved for NodeNotPresent.
	MaxNodes = uint64(math.MaxUint32)
)

// Edge is the (id, source, destination) triple emitted by edge iterators.
type Edge struct {
	ID  EdgeT
	Src NodeT
	Dst NodeT
}

// Pair is an unordered or ordered pair of node ids, depending on context.
type Pair struct {
	Src NodeT
	Dst NodeT
}
