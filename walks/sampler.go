package walks

import (
	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
)

// walker samples single walks. It owns scratch buffers and is not safe for
// concurrent use.
type walker struct {
	g       *graph.Graph
	p       Parameters
	uniform bool

	weights []float64
	picks   []uint64
}

func newWalker(g *graph.Graph, p Parameters, uniform bool) *walker {
	return &walker{g: g, p: p, uniform: uniform}
}

// walk samples one walk from start with its own random stream.
func (w *walker) walk(start core.NodeT, seed uint64) []core.NodeT {
	rng := newStream(seed)
	out := make([]core.NodeT, 1, w.p.WalkLength)
	out[0] = start

	if w.uniform {
		cur := start
		for uint64(len(out)) < w.p.WalkLength {
			lo, hi := w.g.UncheckedMinMaxEdgeIDsFromSourceNodeID(cur)
			if lo == hi {
				break
			}
			cur = w.g.UncheckedDestinationNodeIDFromEdgeID(lo + rng.uniform(hi-lo))
			out = append(out, cur)
		}
	} else {
		prev, prevEdge, cur := core.NodeNotPresent, core.EdgeNotPresent, start
		for uint64(len(out)) < w.p.WalkLength {
			e, ok := w.step(&rng, prev, prevEdge, cur)
			if !ok {
				break
			}
			prev, prevEdge = cur, e
			cur = w.g.UncheckedDestinationNodeIDFromEdgeID(e)
			out = append(out, cur)
		}
	}

	if m := w.p.DenseNodeMapping; m != nil {
		for i, id := range out {
			out[i] = m[id]
		}
	}

	return out
}

// step draws the next edge out of cur. prev is NodeNotPresent on the first
// step. It reports false when cur is a trap.
func (w *walker) step(rng *stream, prev core.NodeT, prevEdge core.EdgeT, cur core.NodeT) (core.EdgeT, bool) {
	g, p := w.g, w.p
	lo, hi := g.UncheckedMinMaxEdgeIDsFromSourceNodeID(cur)
	degree := hi - lo
	if degree == 0 {
		return 0, false
	}

	// candidate edges: the whole slice, or a uniform sample of it
	count := int(degree)
	var picks []uint64
	if p.MaxNeighbours > 0 && degree > core.EdgeT(p.MaxNeighbours) {
		count = int(p.MaxNeighbours)
		w.picks = rng.sample(degree, count, w.picks)
		picks = w.picks
	}
	edgeAt := func(i int) core.EdgeT {
		if picks != nil {
			return lo + picks[i]
		}
		return lo + core.EdgeT(i)
	}

	if cap(w.weights) < count {
		w.weights = make([]float64, count)
	}
	weights := w.weights[:count]

	weighted := g.HasWeights()
	nodeTypes := p.ChangeNodeTypeWeight != 1 && g.HasNodeTypes()
	edgeTypes := prev != core.NodeNotPresent && p.ChangeEdgeTypeWeight != 1 && g.HasEdgeTypes()
	explore := prev != core.NodeNotPresent && p.ExploreWeight != 1

	for i := range weights {
		e := edgeAt(i)
		n := g.UncheckedDestinationNodeIDFromEdgeID(e)
		v := 1.0
		if weighted {
			v = float64(g.UncheckedEdgeWeight(e))
		}
		if p.NormalizeByDegree {
			if d := g.UncheckedNodeDegree(n); d > 0 {
				v /= float64(d)
			}
		}
		if prev != core.NodeNotPresent {
			if n == prev {
				v *= p.ReturnWeight
			} else if explore && !g.UncheckedHasEdgeFromNodeIDs(prev, n) {
				v *= p.ExploreWeight
			}
		}
		if nodeTypes && g.UncheckedNodeTypeID(n) != g.UncheckedNodeTypeID(cur) {
			v *= p.ChangeNodeTypeWeight
		}
		if edgeTypes && g.UncheckedEdgeTypeID(e) != g.UncheckedEdgeTypeID(prevEdge) {
			v *= p.ChangeEdgeTypeWeight
		}
		weights[i] = v
	}

	return edgeAt(rng.weighted(weights)), true
}
