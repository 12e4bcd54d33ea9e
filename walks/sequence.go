package walks

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/graph"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/progress"
	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// Sequence is a lazy, finite, restartable sequence of walks. Generating it
// twice yields identical walks.
type Sequence struct {
	g       *graph.Graph
	p       Parameters
	opts    Options
	uniform bool
	name    string

	sources []core.NodeT // nodes with outbound edges, ascending
	slots   int          // distinct start positions per iteration
	random  bool         // starts are drawn rather than enumerated
	total   int

	pool sync.Pool
}

// CompleteWalks returns Iterations walks from every node with outbound edges.
// Walk i starts from the (i mod S)-th such node, S being their count.
func CompleteWalks(g *graph.Graph, p Parameters, opts ...Option) (*Sequence, error) {
	s, err := newSequence(g, p, opts)
	if err != nil {
		return nil, err
	}
	s.slots = len(s.sources)
	s.total = s.slots * int(p.Iterations)
	s.announce("complete walks")

	return s, nil
}

// RandomWalks returns quantity * Iterations walks whose start nodes are drawn
// from the nodes with outbound edges using the random state.
func RandomWalks(g *graph.Graph, quantity int, p Parameters, opts ...Option) (*Sequence, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity=%d", ErrInvalidParameters, quantity)
	}
	s, err := newSequence(g, p, opts)
	if err != nil {
		return nil, err
	}
	s.slots = quantity
	s.random = true
	s.total = quantity * int(p.Iterations)
	s.announce("random walks")

	return s, nil
}

func newSequence(g *graph.Graph, p Parameters, opts []Option) (*Sequence, error) {
	if err := p.Validate(g); err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: workers=%d", ErrInvalidParameters, cfg.Workers)
	}

	s := &Sequence{g: g, p: p, opts: cfg}
	for id := range g.NodeIDs() {
		if g.UncheckedNodeDegree(id) > 0 {
			s.sources = append(s.sources, id)
		}
	}
	s.uniform = !g.HasWeights() && p.IsFirstOrderWalk()
	switch {
	case s.uniform:
		s.name = "uniform first order"
	case p.IsNode2VecWalk():
		s.name = "second order"
	default:
		s.name = "weighted first order"
	}
	if g.HasTraps() {
		s.name = "trap-aware " + s.name
	}
	s.pool.New = func() any { return newWalker(g, p, s.uniform) }

	return s, nil
}

func (s *Sequence) announce(kind string) {
	progress.Info(s.opts.Logger, "using "+s.name+" random walk algorithm",
		"kind", kind, "walks", s.total, "length", s.p.WalkLength)
}

// Len returns the number of walks sampled, before MinLength filtering.
func (s *Sequence) Len() int { return s.total }

// Algorithm names the sampler variant in use, e.g. "uniform first order".
func (s *Sequence) Algorithm() string { return s.name }

func (s *Sequence) start(i int) core.NodeT {
	local := uint64(i % s.slots)
	if !s.random {
		return s.sources[local]
	}
	draw := Splitmix64(Splitmix64(s.p.RandomState) + local)

	return s.sources[draw%uint64(len(s.sources))]
}

func (s *Sequence) walk(w *walker, i int) []core.NodeT {
	return w.walk(s.start(i), Splitmix64(s.p.RandomState^uint64(i)))
}

func (s *Sequence) keep(walk []core.NodeT) bool {
	return uint64(len(walk)) >= s.p.MinLength
}

// All yields (walk index, walk) sequentially, skipping walks shorter than
// MinLength. Each call restarts from the first walk.
func (s *Sequence) All() iter.Seq2[int, []core.NodeT] {
	return func(yield func(int, []core.NodeT) bool) {
		w := newWalker(s.g, s.p, s.uniform)
		for i := 0; i < s.total; i++ {
			walk := s.walk(w, i)
			if !s.keep(walk) {
				continue
			}
			if !yield(i, walk) {
				return
			}
		}
	}
}

// Collect samples every walk in parallel and returns the kept walks in
// index order, identical to draining All.
func (s *Sequence) Collect(ctx context.Context) ([][]core.NodeT, error) {
	span := progress.Start(s.opts.Logger, "computing random walks", "walks", s.total, "algorithm", s.name)

	out := make([][]core.NodeT, s.total)
	shared := parallel.NewSharedSlice(out)
	err := parallel.ForEach(ctx, s.total, func(i int) error {
		w := s.pool.Get().(*walker)
		shared.Store(i, s.walk(w, i))
		s.pool.Put(w)
		return nil
	}, s.opts.parallel()...)
	if err != nil {
		return nil, err
	}
	out = slices.DeleteFunc(out, func(walk []core.NodeT) bool { return !s.keep(walk) })

	span.Done("kept", len(out))

	return out, nil
}
