package scc

import (
	"context"
	"slices"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/progress"
)

// ctxCheckEvery is how many edge visits happen between context polls.
const ctxCheckEvery = 4096

// unvisited marks a node Tarjan has not reached yet.
const unvisited = core.NodeNotPresent

// frame is one entry of the explicit recursion stack.
type frame struct {
	node core.NodeT
	next core.EdgeT // next edge of node to expand
	end  core.EdgeT
}

// tarjan holds the traversal state.
type tarjan struct {
	g       *graph.Graph
	index   []core.NodeT
	low     []core.NodeT
	onStack []bool
	stack   []core.NodeT
	work    []frame
	counter core.NodeT
	res     *Result
}

// Tarjan partitions the nodes of g into strongly connected components.
// On undirected graphs the components are the connected components.
func Tarjan(ctx context.Context, g *graph.Graph, opts ...Option) (*Result, error) {
	// 1. Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	n := g.NumberOfNodes()
	span := progress.Start(cfg.Logger, "computing strongly connected components", "nodes", n)

	// 2. State
	t := &tarjan{
		g:       g,
		index:   make([]core.NodeT, n),
		low:     make([]core.NodeT, n),
		onStack: make([]bool, n),
		res:     &Result{Membership: make([]core.NodeT, n)},
	}
	for i := range t.index {
		t.index[i] = unvisited
	}

	// 3. One DFS tree per unvisited root
	steps := 0
	for root := core.NodeT(0); root < n; root++ {
		if t.index[root] != unvisited {
			continue
		}
		t.visit(root)
		for len(t.work) > 0 {
			if steps++; steps%ctxCheckEvery == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}
			t.advance()
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	span.Done("components", len(t.res.Components))

	return t.res, nil
}

// visit assigns the next index to v and pushes its frame.
func (t *tarjan) visit(v core.NodeT) {
	t.index[v] = t.counter
	t.low[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true
	lo, hi := t.g.UncheckedMinMaxEdgeIDsFromSourceNodeID(v)
	t.work = append(t.work, frame{node: v, next: lo, end: hi})
}

// advance expands one edge of the top frame, or retires the frame.
func (t *tarjan) advance() {
	top := &t.work[len(t.work)-1]
	v := top.node
	if top.next < top.end {
		w := t.g.UncheckedDestinationNodeIDFromEdgeID(top.next)
		top.next++
		switch {
		case t.index[w] == unvisited:
			t.visit(w)
		case t.onStack[w]:
			t.low[v] = min(t.low[v], t.index[w])
		}
		return
	}

	t.work = t.work[:len(t.work)-1]
	if t.low[v] == t.index[v] {
		t.close(v)
	}
	if len(t.work) > 0 {
		parent := t.work[len(t.work)-1].node
		t.low[parent] = min(t.low[parent], t.low[v])
	}
}

// close pops the component rooted at v.
func (t *tarjan) close(v core.NodeT) {
	id := core.NodeT(len(t.res.Components))
	var component []core.NodeT
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		t.res.Membership[w] = id
		component = append(component, w)
		if w == v {
			break
		}
	}
	slices.Sort(component)
	t.res.Components = append(t.res.Components, component)
}
