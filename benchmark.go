package mmbench

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the matrix size and the kernel to time.
type Config struct {
	N      int
	Kernel string
}

// Validate checks the size range and the kernel name, in that order.
func (c Config) Validate() error {
	if err := CheckSize(c.N); err != nil {
		return err
	}
	if _, err := LookupKernel(c.Kernel); err != nil {
		return err
	}
	return nil
}

// Result is what a single run reports.
type Result struct {
	N        int
	Kernel   string
	Elapsed  time.Duration
	GFLOPS   float64
	MaxError float64
}

// Benchmark owns the four matrices of one run: the random inputs A and B,
// the timed output C and the ijk reference output.
type Benchmark struct {
	n      int
	kernel Kernel
	logger zerolog.Logger

	a, b, c, ref *Matrix
}

// New validates cfg, seeds a fresh generator and allocates the matrices.
// A, B are filled from the generator in that order; C and the reference
// start zeroed. If any allocation fails, the ones already made are released.
func New(cfg Config, opts ...Option) (*Benchmark, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kernel, _ := LookupKernel(cfg.Kernel)

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bm := &Benchmark{n: cfg.N, kernel: kernel, logger: o.logger}
	rng := NewRNG(o.seed)

	var err error
	if bm.a, err = newRandomMatrix(cfg.N, rng, o.alloc); err != nil {
		return nil, errors.Join(err, bm.Close())
	}
	if bm.b, err = newRandomMatrix(cfg.N, rng, o.alloc); err != nil {
		return nil, errors.Join(err, bm.Close())
	}
	if bm.c, err = newZeroMatrix(cfg.N, o.alloc); err != nil {
		return nil, errors.Join(err, bm.Close())
	}
	if bm.ref, err = newZeroMatrix(cfg.N, o.alloc); err != nil {
		return nil, errors.Join(err, bm.Close())
	}

	bm.logger.Debug().
		Int("n", cfg.N).
		Int("bytes", 4*bm.a.Bytes()).
		Int64("seed", o.seed).
		Msg("allocated matrices")
	return bm, nil
}

// A returns the left input.
func (bm *Benchmark) A() *Matrix { return bm.a }

// B returns the right input.
func (bm *Benchmark) B() *Matrix { return bm.b }

// C returns the output of the timed kernel.
func (bm *Benchmark) C() *Matrix { return bm.c }

// Reference returns the ijk reference output.
func (bm *Benchmark) Reference() *Matrix { return bm.ref }

// Run computes the reference with MulIJK, then times the selected kernel
// into C and compares the two. Only the selected kernel is inside the
// measured interval. The comparison is advisory: a large error is logged
// and reported, never returned as an error.
func (bm *Benchmark) Run() (Result, error) {
	if bm.a == nil || bm.a.Data() == nil {
		return Result{}, NewInvalidArgError("Run", "benchmark already closed")
	}
	n := bm.n
	a, b, c, ref := bm.a.Data(), bm.b.Data(), bm.c.Data(), bm.ref.Data()

	MulIJK(ref, a, b, n)
	bm.logger.Debug().Msg("reference computed")

	start := time.Now()
	bm.kernel.Fn(c, a, b, n)
	elapsed := time.Since(start)

	bm.logger.Debug().
		Str("kernel", bm.kernel.Name).
		Dur("elapsed", elapsed).
		Msg("kernel finished")

	res := Result{
		N:        n,
		Kernel:   bm.kernel.Name,
		Elapsed:  elapsed,
		GFLOPS:   GFLOPS(n, elapsed),
		MaxError: MaxAbsDiff(c, ref),
	}

	if tol := ToleranceForSize(n); res.MaxError > tol.AbsTol {
		bm.logger.Warn().
			Float64("max_error", res.MaxError).
			Float64("tolerance", tol.AbsTol).
			Msg("kernel result differs from reference")
	}
	return res, nil
}

// Close releases all matrices. It is safe to call more than once.
func (bm *Benchmark) Close() error {
	var errs []error
	for _, m := range []*Matrix{bm.a, bm.b, bm.c, bm.ref} {
		if err := m.Release(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// GFLOPS converts a multiply of two n×n matrices taking elapsed into
// billions of floating-point operations per second, counting 2·n³
// operations. A zero interval yields 0.
func GFLOPS(n int, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	fn := float64(n)
	return 2 * fn * fn * fn / secs / 1e9
}
