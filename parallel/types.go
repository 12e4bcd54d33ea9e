package parallel

import (
	"errors"
	"runtime"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("parallel: invalid option supplied")

// Options tunes the fork-join driver.
type Options struct {
	// Workers bounds the number of goroutines running at once.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	// MinLen is the producer length below which no further split happens.
	// Zero picks a leaf size giving each worker about eight leaves.
	MinLen int

	err error
}

// Option configures Options.
type Option func(*Options)

// WithWorkers bounds the number of concurrent goroutines. n must be >= 0.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.Workers = n
	}
}

// WithMinLen sets the leaf size of the split tree. n must be >= 0.
func WithMinLen(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MinLen = n
	}
}

// DefaultOptions returns automatic worker count and leaf size.
func DefaultOptions() Options {
	return Options{}
}

func resolve(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	return cfg, nil
}

func (o Options) leafSize(total int) int {
	if o.MinLen > 0 {
		return o.MinLen
	}
	leaf := total / (8 * o.Workers)
	if leaf < 1 {
		leaf = 1
	}

	return leaf
}
