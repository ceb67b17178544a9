package mmbench

import "github.com/rs/zerolog"

// Option configures a Benchmark.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	seed   int64
	alloc  Allocator
}

func defaultOptions() options {
	return options{
		logger: zerolog.Nop(),
		seed:   DefaultSeed,
		alloc:  allocBuffer,
	}
}

// WithLogger routes debug and advisory events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSeed overrides the input generator seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithAllocator replaces the memory source for the four matrices.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}
