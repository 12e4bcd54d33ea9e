package graph

import (
	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/csr"
	"github.com/AnacletoLAB/ensmallen-sub009/vocabulary"
)

// NodeVocabulary maps node names to node ids.
type NodeVocabulary = vocabulary.Vocabulary[core.NodeT]

// NodeTypeVocabulary maps node type names to node type ids.
type NodeTypeVocabulary = vocabulary.Vocabulary[core.NodeTypeT]

// EdgeTypeVocabulary maps edge type names to edge type ids.
type EdgeTypeVocabulary = vocabulary.Vocabulary[core.EdgeTypeT]

// Parts holds the components New assembles into a Graph.
//
// Store is required. Nodes defaults to a numeric vocabulary. NodeTypes
// (one per node) and EdgeTypes / Weights (one per directed edge) are
// optional; a types array requires its name vocabulary.
type Parts struct {
	Name     string
	Directed bool
	Store    *csr.CSR

	Nodes *NodeVocabulary

	NodeTypes     []core.NodeTypeT
	NodeTypeNames *NodeTypeVocabulary

	EdgeTypes     []core.EdgeTypeT
	EdgeTypeNames *EdgeTypeVocabulary

	Weights []core.WeightT
}
