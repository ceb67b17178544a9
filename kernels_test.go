package mmbench

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func randomOperands(t testing.TB, n int) (a, b *Matrix) {
	t.Helper()
	rng := NewRNG(DefaultSeed)
	a, err := NewRandomMatrix(n, rng)
	require.NoError(t, err)
	b, err = NewRandomMatrix(n, rng)
	require.NoError(t, err)
	t.Cleanup(func() {
		a.Release()
		b.Release()
	})
	return a, b
}

func TestLookupKernel(t *testing.T) {
	for _, name := range []string{"ijk", "kij"} {
		k, err := LookupKernel(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.Name)
		assert.NotNil(t, k.Fn)
	}
	for _, name := range []string{"", "foo", "IJK", "jik", "kij "} {
		_, err := LookupKernel(name)
		assert.ErrorIs(t, err, ErrUnknownKernel, "name=%q", name)
	}
	assert.Equal(t, []string{"ijk", "kij"}, KernelNames())
}

func TestKernelsScalar(t *testing.T) {
	a := []float64{0.75}
	b := []float64{0.5}
	for _, name := range KernelNames() {
		k, _ := LookupKernel(name)
		c := []float64{123}
		k.Fn(c, a, b, 1)
		assert.Equal(t, 0.375, c[0], name)
	}
}

func TestKernelsKnownProduct(t *testing.T) {
	a := []float64{
		1, 2,
		3, 4,
	}
	b := []float64{
		5, 6,
		7, 8,
	}
	want := []float64{
		19, 22,
		43, 50,
	}
	for _, name := range KernelNames() {
		k, _ := LookupKernel(name)
		c := []float64{-1, -1, -1, -1}
		k.Fn(c, a, b, 2)
		assert.Equal(t, want, c, name)
	}
}

// TestKernelsAgainstGonum checks both loop orders against gonum's Dense.Mul.
func TestKernelsAgainstGonum(t *testing.T) {
	sizes := []int{1, 2, 3, 16, 31, 64, 100}
	if !testing.Short() {
		sizes = append(sizes, 257)
	}

	for _, n := range sizes {
		a, b := randomOperands(t, n)
		var want mat.Dense
		want.Mul(mat.NewDense(n, n, a.Data()), mat.NewDense(n, n, b.Data()))
		expected := want.RawMatrix().Data

		for _, name := range KernelNames() {
			t.Run(fmt.Sprintf("%s/n=%d", name, n), func(t *testing.T) {
				k, _ := LookupKernel(name)
				c := make([]float64, n*n)
				k.Fn(c, a.Data(), b.Data(), n)

				res := VerifyFloat64Array(expected, c, ToleranceForSize(n))
				assert.True(t, res.IsAcceptable(), res.String())
			})
		}
	}
}

func TestKIJMatchesReference(t *testing.T) {
	for _, n := range []int{1, 7, 64, 128} {
		a, b := randomOperands(t, n)
		ref := make([]float64, n*n)
		c := make([]float64, n*n)
		MulIJK(ref, a.Data(), b.Data(), n)
		MulKIJ(c, a.Data(), b.Data(), n)

		diff := MaxAbsDiff(c, ref)
		assert.LessOrEqual(t, diff, DefaultTolerance().AbsTol, "n=%d", n)
		if n == 1 {
			assert.Zero(t, diff)
		}
	}
}

func TestKIJClearsOutput(t *testing.T) {
	const n = 4
	a, b := randomOperands(t, n)
	ref := make([]float64, n*n)
	MulIJK(ref, a.Data(), b.Data(), n)

	c := make([]float64, n*n)
	for i := range c {
		c[i] = 1e6
	}
	MulKIJ(c, a.Data(), b.Data(), n)
	assert.LessOrEqual(t, MaxAbsDiff(c, ref), DefaultTolerance().AbsTol)
}

func TestKernelsDeterministic(t *testing.T) {
	const n = 33
	a, b := randomOperands(t, n)
	for _, name := range KernelNames() {
		k, _ := LookupKernel(name)
		first := make([]float64, n*n)
		second := make([]float64, n*n)
		k.Fn(first, a.Data(), b.Data(), n)
		k.Fn(second, a.Data(), b.Data(), n)
		assert.Equal(t, first, second, name)
	}
}

func BenchmarkKernels(b *testing.B) {
	for _, n := range []int{64, 256, 512} {
		a, bm := randomOperands(b, n)
		c := make([]float64, n*n)
		for _, name := range KernelNames() {
			k, _ := LookupKernel(name)
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				b.SetBytes(int64(3 * n * n * 8))
				b.ResetTimer()
				start := time.Now()
				for i := 0; i < b.N; i++ {
					k.Fn(c, a.Data(), bm.Data(), n)
				}
				perOp := time.Since(start) / time.Duration(b.N)
				b.ReportMetric(GFLOPS(n, perOp), "GFLOP/s")
			})
		}
	}
}
