package spanning

import (
	"slices"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/progress"
	"github.com/AnacletoLAB/ensmallen-sub009/walks"
)

// Kruskal builds a spanning arborescence by scanning the edges once and
// keeping those that join two different sets.
//
// Steps:
//  1. Resolve options; WithUndesiredEdgeTypes requires edge types.
//  2. Scan edge ids from the rotation offset, skipping self-loops and, on
//     undirected graphs, the mirrored half (src > dst).
//  3. Union by size with path halving; a successful union keeps the edge.
//  4. Rescan for undesired edges when some were deferred.
//  5. Label components by smallest node.
//
// Complexity: O(M α(N)). Memory: O(N).
func Kruskal(g *graph.Graph, opts ...Option) (*Result, error) {
	// 1. Options
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if len(o.Undesired) > 0 {
		if err := g.MustHaveEdgeTypes(); err != nil {
			return nil, err
		}
	}

	n := g.NumberOfNodes()
	res := &Result{Components: make([]core.NodeT, n)}
	if n == 0 {
		return res, nil
	}
	span := progress.Start(o.Logger, "spanning arborescence (kruskal)", "graph", g.Name())

	// 2-4. Scan
	m := g.NumberOfDirectedEdges()
	offset := core.EdgeT(0)
	if o.Random && m > 0 {
		offset = core.EdgeT(walks.Splitmix64(walks.Splitmix64(o.RandomState)) % m)
	}
	sets := newDisjointSets(n)
	scan := func(deferred bool) {
		for i := core.EdgeT(0); i < m; i++ {
			e := (offset + i) % m
			src, dst := g.UncheckedNodeIDsFromEdgeID(e)
			if src == dst || (!g.IsDirected() && src > dst) {
				continue
			}
			if len(o.Undesired) > 0 && slices.Contains(o.Undesired, g.UncheckedEdgeTypeID(e)) != deferred {
				continue
			}
			if sets.union(src, dst) {
				res.Edges = append(res.Edges, core.Pair{Src: src, Dst: dst})
			}
		}
	}
	scan(false)
	if len(o.Undesired) > 0 {
		scan(true)
	}

	// 5. Label
	label(res, sets.find)
	span.Done("edges", len(res.Edges), "components", res.Count)

	return res, nil
}

// disjointSets is a sequential union-find with union by size.
type disjointSets struct {
	parent []core.NodeT
	size   []core.NodeT
}

func newDisjointSets(n core.NodeT) *disjointSets {
	d := &disjointSets{parent: make([]core.NodeT, n), size: make([]core.NodeT, n)}
	for i := range d.parent {
		d.parent[i] = core.NodeT(i)
		d.size[i] = 1
	}

	return d
}

// find returns the root of v, halving the path on the way.
func (d *disjointSets) find(v core.NodeT) core.NodeT {
	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]]
		v = d.parent[v]
	}

	return v
}

// union merges the sets of u and v and reports whether they were distinct.
func (d *disjointSets) union(u, v core.NodeT) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	if d.size[ru] < d.size[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	d.size[ru] += d.size[rv]

	return true
}
