package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ctxCheckEvery is how many items a leaf processes between context polls.
const ctxCheckEvery = 256

// Drive delivers every item of p to fn, splitting p across at most
// Options.Workers goroutines. fn must be safe for concurrent use.
//
// The split tree is built lazily: a goroutine keeps bisecting its range,
// offers the right half to a free worker slot, and continues with the left
// half. When no slot is free it recurses on the right half itself.
//
// Complexity: O(len(p)) calls to fn plus O(len(p)/leaf) splits.
func Drive[T any](ctx context.Context, p Producer[T], fn func(T) error, opts ...Option) error {
	cfg, err := resolve(opts)
	if err != nil {
		return err
	}
	if p == nil || p.Len() == 0 {
		return nil
	}
	leaf := cfg.leafSize(p.Len())
	if cfg.Workers == 1 || p.Len() <= leaf {
		return drain(ctx, p, fn)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	var run func(Producer[T]) error
	run = func(part Producer[T]) error {
		for part.Len() > leaf {
			if err := gctx.Err(); err != nil {
				return err
			}
			left, right, ok := Split(part)
			if !ok {
				break
			}
			if !g.TryGo(func() error { return run(right) }) {
				if err := run(right); err != nil {
					return err
				}
			}
			part = left
		}

		return drain(gctx, part, fn)
	}
	g.Go(func() error { return run(p) })

	return g.Wait()
}

// ForEach calls fn for every index in [0, n) in parallel.
func ForEach(ctx context.Context, n int, fn func(int) error, opts ...Option) error {
	return Drive[int](ctx, NewRange(0, n), fn, opts...)
}

func drain[T any](ctx context.Context, p Producer[T], fn func(T) error) error {
	for i := 0; ; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		v, ok := p.Next()
		if !ok {
			return nil
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}
