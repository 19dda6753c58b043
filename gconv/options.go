// SPDX-License-Identifier: MIT

package gconv

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/graphconv/chebyshev"
)

// Option configures BuildFilters, ApplyFilters and Layer.
type Option func(*config)

type config struct {
	workers  int                // >1 enables per-channel fan-out
	chebOpts []chebyshev.Option // forwarded to chebyshev.Basis
	logger   *slog.Logger
	cache    *FilterCache
	init     Initializer
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newConfig(opts ...Option) config {
	cfg := config{
		workers: 1,
		logger:  discardLogger,
		init:    GlorotUniform(DefaultSeed),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithParallel processes output channels concurrently on at most workers
// goroutines. workers == 1 keeps the serial path. Panics if workers < 1.
func WithParallel(workers int) Option {
	if workers < 1 {
		panic("gconv: WithParallel(workers < 1)")
	}
	return func(c *config) { c.workers = workers }
}

// WithChebyshev forwards options to the Chebyshev evaluator (e.g. the T₀ base).
func WithChebyshev(opts ...chebyshev.Option) Option {
	return func(c *config) { c.chebOpts = append(c.chebOpts, opts...) }
}

// WithLogger routes debug records (shapes, timings, cache hits) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("gconv: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithFilterCache lets Layer.Forward reuse filters while the weights version
// is unchanged. Ignored by the free functions, which have no version to key on.
func WithFilterCache(fc *FilterCache) Option {
	return func(c *config) { c.cache = fc }
}

// WithInitializer sets how NewLayer fills a fresh weight tensor.
// Panics on nil.
func WithInitializer(init Initializer) Option {
	if init == nil {
		panic("gconv: WithInitializer(nil)")
	}
	return func(c *config) { c.init = init }
}
