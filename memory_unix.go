//go:build unix

package mmbench

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

var allocBuffer Allocator = mmapBuffer

// mmapBuffer backs a matrix with anonymous pages. The kernel hands out
// zeroed pages, so a fresh mapping already satisfies NewZeroMatrix.
// Mappings are page aligned.
func mmapBuffer(elems int) ([]float64, func() error, error) {
	b, err := unix.Mmap(-1, 0, elems*8, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	data := unsafe.Slice((*float64)(unsafe.Pointer(&b[0])), elems)
	return data, func() error { return unix.Munmap(b) }, nil
}
