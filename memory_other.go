//go:build !unix

package mmbench

var allocBuffer Allocator = heapBuffer

// heapBuffer falls back to Go heap memory where anonymous mappings are unavailable.
func heapBuffer(elems int) ([]float64, func() error, error) {
	return make([]float64, elems), func() error { return nil }, nil
}
