package mmbench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxAbsDiff(t *testing.T) {
	tests := []struct {
		name string
		c    []float64
		ref  []float64
		want float64
	}{
		{name: "Empty", c: nil, ref: nil, want: 0},
		{name: "Identical", c: []float64{1, 2, 3}, ref: []float64{1, 2, 3}, want: 0},
		{name: "Largest_Wins", c: []float64{1, 2.5, 3}, ref: []float64{1.25, 2, 3}, want: 0.5},
		{name: "Sign_Ignored", c: []float64{-1, 0}, ref: []float64{1, 0.5}, want: 2},
		{name: "Short_Reference", c: []float64{1, 2}, ref: []float64{1}, want: math.Inf(1)},
		{name: "Short_Result", c: []float64{1}, ref: []float64{1, 2}, want: math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxAbsDiff(tt.c, tt.ref))
		})
	}
}

func TestFloat64NearEqual(t *testing.T) {
	tol := DefaultTolerance()
	assert.True(t, Float64NearEqual(1, 1, tol))
	assert.True(t, Float64NearEqual(0, -0.0, tol))
	assert.True(t, Float64NearEqual(1e-10, 5e-10, tol))
	assert.False(t, Float64NearEqual(0, 1e-8, tol))
	assert.True(t, Float64NearEqual(1e6, 1e6+1e-7, tol), "relative tolerance")
	assert.False(t, Float64NearEqual(1, 1+1e-6, tol))
}

func TestToleranceForSize(t *testing.T) {
	assert.Equal(t, DefaultTolerance(), ToleranceForSize(1))
	assert.Equal(t, DefaultTolerance(), ToleranceForSize(512))

	big := ToleranceForSize(MaxSize)
	assert.Greater(t, big.AbsTol, DefaultTolerance().AbsTol)
	assert.InDelta(t, 4*math.Pow(MaxSize, 2)*epsilon, big.AbsTol, 1e-20)
}

func TestVerifyFloat64Array(t *testing.T) {
	tol := DefaultTolerance()

	res := VerifyFloat64Array([]float64{1, 2, 3}, []float64{1, 2, 3}, tol)
	assert.True(t, res.IsAcceptable())
	assert.Equal(t, -1, res.FirstError)
	assert.Contains(t, res.String(), "PASS")

	res = VerifyFloat64Array([]float64{1, 2, 3, 4}, []float64{1, 2.5, 3, 3}, tol)
	assert.False(t, res.IsAcceptable())
	assert.Equal(t, 2, res.NumErrors)
	assert.Equal(t, 4, res.TotalItems)
	assert.Equal(t, 1, res.FirstError)
	assert.Equal(t, 1.0, res.MaxAbsError)
	assert.Contains(t, res.String(), "2/4 values differ")

	res = VerifyFloat64Array([]float64{1, 2}, []float64{1}, tol)
	assert.Equal(t, 2, res.NumErrors)
	assert.False(t, res.IsAcceptable())
}
