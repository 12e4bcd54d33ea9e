package dijkstra

import (
	"math"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// absent marks a node that is not in the heap.
const absent = -1

// Queue is a binary min-heap of node ids keyed by distance, with
// decrease-key through a node -> heap position index.
//
// Every node starts at distance +Inf. Once popped, a node's distance is
// final under non-negative costs, so pushing it again with a larger value
// is a no-op. Ties are broken by the smaller node id, which keeps the pop
// order deterministic.
type Queue struct {
	heap      []core.NodeT
	positions []int
	distances []float64
}

// NewQueue returns an empty queue over nodes [0, n).
func NewQueue(n core.NodeT) *Queue {
	q := &Queue{
		heap:      make([]core.NodeT, 0, n),
		positions: make([]int, n),
		distances: make([]float64, n),
	}
	q.reset()

	return q
}

func (q *Queue) reset() {
	q.heap = q.heap[:0]
	for i := range q.positions {
		q.positions[i] = absent
		q.distances[i] = math.Inf(1)
	}
}

// Len returns the number of queued nodes.
func (q *Queue) Len() int { return len(q.heap) }

// Distance returns the best distance recorded for node.
func (q *Queue) Distance(node core.NodeT) float64 { return q.distances[node] }

// Distances returns the distance table, indexed by node id. The slice is
// owned by the queue.
func (q *Queue) Distances() []float64 { return q.distances }

// Push records dist for node when it improves the known distance, inserting
// node or moving it up in place. It reports whether the distance improved.
func (q *Queue) Push(node core.NodeT, dist float64) bool {
	if !(dist < q.distances[node]) {
		return false
	}
	q.distances[node] = dist
	pos := q.positions[node]
	if pos == absent {
		pos = len(q.heap)
		q.heap = append(q.heap, node)
		q.positions[node] = pos
	}
	q.up(pos)

	return true
}

// Pop removes the node with the smallest distance. The last slot replaces
// the root, which then sinks.
func (q *Queue) Pop() (core.NodeT, float64, bool) {
	if len(q.heap) == 0 {
		return core.NodeNotPresent, math.Inf(1), false
	}
	root := q.heap[0]
	last := len(q.heap) - 1
	q.swap(0, last)
	q.heap = q.heap[:last]
	q.positions[root] = absent
	if last > 0 {
		q.down(0)
	}

	return root, q.distances[root], true
}

func (q *Queue) less(i, j int) bool {
	a, b := q.heap[i], q.heap[j]
	if q.distances[a] != q.distances[b] {
		return q.distances[a] < q.distances[b]
	}

	return a < b
}

func (q *Queue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.positions[q.heap[i]] = i
	q.positions[q.heap[j]] = j
}

func (q *Queue) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *Queue) down(i int) {
	n := len(q.heap)
	for {
		smallest := i
		if l := 2*i + 1; l < n && q.less(l, smallest) {
			smallest = l
		}
		if r := 2*i + 2; r < n && q.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}
