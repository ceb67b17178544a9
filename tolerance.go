// Package mmbench tolerance-based verification for floating-point comparisons
package mmbench

import (
	"fmt"
	"math"
)

// ToleranceConfig defines tolerance parameters for comparing a kernel result
// with the reference. Summation order differs between kernels, so the
// acceptable error grows with n; see ToleranceForSize.
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64
}

// DefaultTolerance is tight enough for n ≤ 512 with inputs in [0, 1).
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol: 1e-9,
		RelTol: 1e-12,
	}
}

// ToleranceForSize scales the absolute tolerance with the number of
// accumulated products. Each element of C sums n products bounded by 1, so
// the rounding error is bounded by roughly n·n·ε.
func ToleranceForSize(n int) ToleranceConfig {
	tol := DefaultTolerance()
	scaled := 4 * float64(n) * float64(n) * epsilon
	if scaled > tol.AbsTol {
		tol.AbsTol = scaled
	}
	return tol
}

const epsilon = 0x1p-52

// MaxAbsDiff returns the largest elementwise |c[i] - ref[i]|. Slices of
// different lengths never match and yield +Inf.
func MaxAbsDiff(c, ref []float64) float64 {
	if len(c) != len(ref) {
		return math.Inf(1)
	}
	maxDiff := 0.0
	for i, v := range c {
		diff := math.Abs(v - ref[i])
		if diff > maxDiff {
			maxDiff = diff
		}
	}
	return maxDiff
}

// Float64NearEqual checks if two values are equal within tolerance
func Float64NearEqual(a, b float64, tol ToleranceConfig) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff <= tol.AbsTol {
		return true
	}
	larger := math.Max(math.Abs(a), math.Abs(b))
	return diff <= larger*tol.RelTol
}

// VerificationResult summarizes a comparison against a reference
type VerificationResult struct {
	MaxAbsError float64
	NumErrors   int
	TotalItems  int
	FirstError  int // Index of first error, -1 if none
}

// VerifyFloat64Array compares two arrays and returns detailed results
func VerifyFloat64Array(expected, actual []float64, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}

	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		return result
	}

	result.MaxAbsError = MaxAbsDiff(actual, expected)
	for i := range expected {
		if !Float64NearEqual(expected[i], actual[i], tol) {
			result.NumErrors++
			if result.FirstError == -1 {
				result.FirstError = i
			}
		}
	}

	return result
}

// IsAcceptable returns true if every value matched within tolerance
func (r VerificationResult) IsAcceptable() bool {
	return r.NumErrors == 0
}

// String formats the verification result for display
func (r VerificationResult) String() string {
	if r.NumErrors == 0 {
		return "PASS: All values match within tolerance"
	}

	errorRate := float64(r.NumErrors) / float64(r.TotalItems) * 100
	return fmt.Sprintf("FAIL: %d/%d values differ (%.2f%%)\n"+
		"  Max absolute error: %e\n"+
		"  First error at index: %d",
		r.NumErrors, r.TotalItems, errorRate,
		r.MaxAbsError, r.FirstError)
}
