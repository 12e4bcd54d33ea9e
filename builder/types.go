// SPDX-License-Identifier: MIT
package builder

import (
	"iter"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// EdgeRecord is one parsed edge line.
//
// Line is the 1-based source line used in error messages. EdgeType may be
// empty. Weight is only read when HasWeight is set; a stream is weighted
// when its first record carries a weight, and every later record must then
// carry one too.
type EdgeRecord struct {
	Line      int
	Src, Dst  string
	EdgeType  string
	Weight    core.WeightT
	HasWeight bool
}

// NodeRecord is one parsed node line. Type may be empty.
type NodeRecord struct {
	Line int
	Name string
	Type string
}

// Records adapts a slice of already parsed records into the iterator shape
// Build consumes.
func Records[R any](records []R) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for _, r := range records {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// WeightedPair is an edge between numeric node ids with a weight.
type WeightedPair struct {
	Src, Dst core.NodeT
	Weight   core.WeightT
}
