// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"iter"
	"math/rand"
	"strconv"

	"github.com/AnacletoLAB/ensmallen-sub009/graph"
)

// Stable method tags used to prefix generator errors.
const (
	methodChain              = "Chain"
	methodCircle             = "Circle"
	methodStar               = "Star"
	methodWheel              = "Wheel"
	methodComplete           = "Complete"
	methodBarbell            = "Barbell"
	methodErdosRenyi         = "ErdosRenyi"
	methodRandomSpanningTree = "RandomSpanningTree"
	methodRandomConnected    = "RandomConnected"
)

// Minimum sizes of the deterministic families.
const (
	minChainNodes    = 1
	minCircleNodes   = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteSize  = 1
	minBarbellClique = 2
	minRandomNodes   = 1
)

// emitter collects generator output in emission order. Weights are drawn
// from the configured WeightFn as edges are emitted, which keeps them
// deterministic for a fixed seed.
type emitter struct {
	cfg     config
	rng     *rand.Rand
	n       int
	records []EdgeRecord
}

func newEmitter(n int, opts []Option) (*emitter, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &emitter{cfg: cfg, rng: cfg.rng(), n: n}, nil
}

func (e *emitter) name(i int) string {
	return e.cfg.namePrefix + strconv.Itoa(i)
}

func (e *emitter) edge(i, j int) {
	rec := EdgeRecord{Line: len(e.records) + 1, Src: e.name(i), Dst: e.name(j)}
	if e.cfg.weightFn != nil {
		rec.Weight = e.cfg.weightFn(e.rng)
		rec.HasWeight = true
	}
	e.records = append(e.records, rec)
}

// build feeds the emitted records through Build. Every node is listed so
// isolated nodes keep their index.
func (e *emitter) build(method string, opts []Option) (*graph.Graph, error) {
	all := append([]Option{}, opts...)
	if e.cfg.name == "" {
		all = append(all, WithName(method))
	}
	var nodes iter.Seq2[NodeRecord, error]
	if e.cfg.namePrefix == "" {
		all = append(all, WithNumericIDs(), WithNodeCount(e.n))
	} else {
		records := make([]NodeRecord, e.n)
		for i := range records {
			records[i] = NodeRecord{Line: i + 1, Name: e.name(i)}
		}
		nodes = Records(records)
	}
	g, err := Build(Records(e.records), nodes, all...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return g, nil
}

func tooFew(method string, n, lo int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, lo, ErrTooFewVertices)
}

// Chain returns the path 0 - 1 - ... - (n-1).
func Chain(n int, opts ...Option) (*graph.Graph, error) {
	if n < minChainNodes {
		return nil, tooFew(methodChain, n, minChainNodes)
	}
	e, err := newEmitter(n, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		e.edge(i, i+1)
	}

	return e.build(methodChain, opts)
}

// Circle returns the cycle C_n, edges i -> (i+1) mod n.
func Circle(n int, opts ...Option) (*graph.Graph, error) {
	if n < minCircleNodes {
		return nil, tooFew(methodCircle, n, minCircleNodes)
	}
	e, err := newEmitter(n, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		e.edge(i, (i+1)%n)
	}

	return e.build(methodCircle, opts)
}

// Star returns a hub (node 0) linked to leaves 1..n-1.
func Star(n int, opts ...Option) (*graph.Graph, error) {
	if n < minStarNodes {
		return nil, tooFew(methodStar, n, minStarNodes)
	}
	e, err := newEmitter(n, opts)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		e.edge(0, i)
	}

	return e.build(methodStar, opts)
}

// Wheel returns a star whose leaves 1..n-1 also form a cycle.
func Wheel(n int, opts ...Option) (*graph.Graph, error) {
	if n < minWheelNodes {
		return nil, tooFew(methodWheel, n, minWheelNodes)
	}
	e, err := newEmitter(n, opts)
	if err != nil {
		return nil, err
	}
	// spokes first, then the rim
	for i := 1; i < n; i++ {
		e.edge(0, i)
	}
	for i := 1; i < n; i++ {
		next := i + 1
		if next == n {
			next = 1
		}
		e.edge(i, next)
	}

	return e.build(methodWheel, opts)
}

// Complete returns K_n. Directed builds emit both orientations of every pair.
func Complete(n int, opts ...Option) (*graph.Graph, error) {
	if n < minCompleteSize {
		return nil, tooFew(methodComplete, n, minCompleteSize)
	}
	e, err := newEmitter(n, opts)
	if err != nil {
		return nil, err
	}
	e.clique(0, n)

	return e.build(methodComplete, opts)
}

// clique emits every pair inside [lo, hi).
func (e *emitter) clique(lo, hi int) {
	for i := lo; i < hi; i++ {
		for j := i + 1; j < hi; j++ {
			e.edge(i, j)
			if e.cfg.directed {
				e.edge(j, i)
			}
		}
	}
}

// Barbell returns two K_k cliques joined by a path through bridge extra
// nodes. Nodes [0, k) form the left clique, the bridge follows, then the
// right clique. With bridge == 0 the cliques are joined by a single edge.
func Barbell(k, bridge int, opts ...Option) (*graph.Graph, error) {
	if k < minBarbellClique {
		return nil, tooFew(methodBarbell, k, minBarbellClique)
	}
	if bridge < 0 {
		return nil, fmt.Errorf("%s: bridge=%d < 0: %w", methodBarbell, bridge, ErrTooFewVertices)
	}
	n := 2*k + bridge
	e, err := newEmitter(n, opts)
	if err != nil {
		return nil, err
	}
	e.clique(0, k)
	for i := k - 1; i < k+bridge; i++ {
		e.edge(i, i+1)
	}
	e.clique(k+bridge, n)

	return e.build(methodBarbell, opts)
}

// ErdosRenyi samples G(n, p): each admissible pair is kept independently
// with probability p. Undirected graphs try pairs i < j, directed graphs
// every ordered pair i != j, both in ascending order.
func ErdosRenyi(n int, p float64, opts ...Option) (*graph.Graph, error) {
	if n < minRandomNodes {
		return nil, tooFew(methodErdosRenyi, n, minRandomNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodErdosRenyi, p, ErrInvalidProbability)
	}
	e, err := newEmitter(n, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		j := i + 1
		if e.cfg.directed {
			j = 0
		}
		for ; j < n; j++ {
			if i == j {
				continue
			}
			if e.rng.Float64() < p {
				e.edge(i, j)
			}
		}
	}

	return e.build(methodErdosRenyi, opts)
}

// spanningTree emits a uniformly shuffled random recursive tree: nodes are
// visited in a random order and each one attaches to a random earlier node.
// It returns the set of emitted pairs.
func (e *emitter) spanningTree() map[[2]int]struct{} {
	order := e.rng.Perm(e.n)
	used := make(map[[2]int]struct{}, e.n)
	for i := 1; i < e.n; i++ {
		parent := order[e.rng.Intn(i)]
		e.edge(parent, order[i])
		used[pairKey(parent, order[i], e.cfg.directed)] = struct{}{}
	}

	return used
}

func pairKey(i, j int, directed bool) [2]int {
	if !directed && j < i {
		i, j = j, i
	}

	return [2]int{i, j}
}

// RandomSpanningTree returns a random tree over n nodes, connected and
// with exactly n-1 edges.
func RandomSpanningTree(n int, opts ...Option) (*graph.Graph, error) {
	if n < minRandomNodes {
		return nil, tooFew(methodRandomSpanningTree, n, minRandomNodes)
	}
	e, err := newEmitter(n, opts)
	if err != nil {
		return nil, err
	}
	e.spanningTree()

	return e.build(methodRandomSpanningTree, opts)
}

// RandomConnected returns a random spanning tree plus extra distinct random
// edges without self-loops. extra is capped at the number of free pairs.
func RandomConnected(n, extra int, opts ...Option) (*graph.Graph, error) {
	if n < minRandomNodes {
		return nil, tooFew(methodRandomConnected, n, minRandomNodes)
	}
	if extra < 0 {
		return nil, fmt.Errorf("%s: extra=%d < 0: %w", methodRandomConnected, extra, ErrOptionViolation)
	}
	e, err := newEmitter(n, opts)
	if err != nil {
		return nil, err
	}
	used := e.spanningTree()

	pairs := n * (n - 1)
	if !e.cfg.directed {
		pairs /= 2
	}
	extra = min(extra, pairs-len(used))
	for added := 0; added < extra; {
		i, j := e.rng.Intn(n), e.rng.Intn(n)
		if i == j {
			continue
		}
		key := pairKey(i, j, e.cfg.directed)
		if _, ok := used[key]; ok {
			continue
		}
		used[key] = struct{}{}
		e.edge(i, j)
		added++
	}

	return e.build(methodRandomConnected, opts)
}
