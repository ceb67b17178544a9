package mmbench

import "sort"

// KernelFunc computes C = A×B for n×n row-major matrices. A and B are only
// read; C is overwritten.
type KernelFunc func(c, a, b []float64, n int)

// Kernel is a named loop ordering.
type Kernel struct {
	Name string
	Fn   KernelFunc
}

var kernels = map[string]KernelFunc{
	"ijk": MulIJK,
	"kij": MulKIJ,
}

// LookupKernel returns the kernel registered under name. Names are case sensitive.
func LookupKernel(name string) (Kernel, error) {
	fn, ok := kernels[name]
	if !ok {
		return Kernel{}, ErrUnknownKernel
	}
	return Kernel{Name: name, Fn: fn}, nil
}

// KernelNames returns the registered kernel names in sorted order.
func KernelNames() []string {
	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MulIJK is the canonical triple loop with k innermost.
//
// Access pattern:
//   - A[i][k] sequential in k
//   - B[k][j] stride n in k, one cache line per access
//   - C[i][j] written once from a local accumulator
//
// Its output is the reference every other kernel is checked against.
func MulIJK(c, a, b []float64, n int) {
	for i := 0; i < n; i++ {
		rowA := a[i*n : (i+1)*n]
		rowC := c[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += rowA[k] * b[k*n+j]
			}
			rowC[j] = sum
		}
	}
}

// MulKIJ hoists k outermost so the inner loop streams along rows of B and C.
//
// Access pattern:
//   - A[i][k] loaded once per (k, i) and held in a register
//   - B[k][j] sequential in j
//   - C[i][j] sequential in j, read-modify-write on every k
//
// C is accumulated across k, so it is cleared first.
func MulKIJ(c, a, b []float64, n int) {
	c = c[:n*n]
	for i := range c {
		c[i] = 0
	}

	for k := 0; k < n; k++ {
		rowB := b[k*n : (k+1)*n]
		for i := 0; i < n; i++ {
			aik := a[i*n+k]
			rowC := c[i*n : (i+1)*n]
			for j, bkj := range rowB {
				rowC[j] += aik * bkj
			}
		}
	}
}
