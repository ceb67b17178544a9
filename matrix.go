package mmbench

import (
	"math/rand"
)

const (
	// MaxSize is the largest accepted matrix dimension
	MaxSize = 4096

	// DefaultSeed seeds the input generator so runs are reproducible
	DefaultSeed int64 = 42
)

// Matrix is an exclusively owned n×n buffer of float64 values in row-major
// order: element (i, j) lives at offset i*n+j.
//
// The backing memory is released by Release. A released Matrix has no data
// and must not be passed to a kernel.
type Matrix struct {
	n    int
	data []float64
	free func() error
}

// Allocator returns zeroed memory for elems float64 values together with the
// function that releases it.
type Allocator func(elems int) (data []float64, free func() error, err error)

// CheckSize reports whether n is a valid matrix dimension.
func CheckSize(n int) error {
	if n <= 0 || n > MaxSize {
		return ErrInvalidSize
	}
	return nil
}

// NewRNG returns the generator used to fill input matrices. Each benchmark
// owns its own generator so that runs in one process do not interfere.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewZeroMatrix allocates an n×n matrix with every element set to 0.
func NewZeroMatrix(n int) (*Matrix, error) {
	return newZeroMatrix(n, allocBuffer)
}

func newZeroMatrix(n int, alloc Allocator) (*Matrix, error) {
	if err := CheckSize(n); err != nil {
		return nil, err
	}
	data, free, err := alloc(n * n)
	if err != nil {
		return nil, NewMemoryError("NewZeroMatrix", "Memory allocation failed", err)
	}
	return &Matrix{n: n, data: data[:n*n], free: free}, nil
}

// NewRandomMatrix allocates an n×n matrix filled with values drawn uniformly
// from [0, 1). Values are consumed from rng in row-major order.
func NewRandomMatrix(n int, rng *rand.Rand) (*Matrix, error) {
	return newRandomMatrix(n, rng, allocBuffer)
}

func newRandomMatrix(n int, rng *rand.Rand, alloc Allocator) (*Matrix, error) {
	m, err := newZeroMatrix(n, alloc)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = rng.Float64()
	}
	return m, nil
}

// N returns the matrix dimension.
func (m *Matrix) N() int {
	return m.n
}

// Data returns the row-major backing slice. The slice aliases the matrix
// memory: it must not be used after Release, when that memory may already
// be unmapped.
func (m *Matrix) Data() []float64 {
	return m.data
}

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns row i as a slice view of the backing memory.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// Bytes returns the size of the backing memory in bytes.
func (m *Matrix) Bytes() int {
	return len(m.data) * 8
}

// Release frees the backing memory. It is safe to call more than once.
func (m *Matrix) Release() error {
	if m == nil || m.data == nil {
		return nil
	}
	m.data = nil
	err := m.free()
	m.free = nil
	if err != nil {
		return NewMemoryError("Release", "failed to free matrix buffer", err)
	}
	return nil
}
