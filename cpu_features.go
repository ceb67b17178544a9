package mmbench

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the SIMD extensions reported in the benchmark header.
type CPUFeatures struct {
	HasSSE4    bool
	HasAVX     bool
	HasAVX2    bool
	HasFMA     bool
	HasAVX512F bool
	HasASIMD   bool // arm64 Advanced SIMD
	HasSVE     bool
}

// DetectCPUFeatures reads the feature flags of the running CPU
func DetectCPUFeatures() CPUFeatures {
	return CPUFeatures{
		HasSSE4:    cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:     cpu.X86.HasAVX,
		HasAVX2:    cpu.X86.HasAVX2,
		HasFMA:     cpu.X86.HasFMA,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasASIMD:   cpu.ARM64.HasASIMD,
		HasSVE:     cpu.ARM64.HasSVE,
	}
}

// Names lists the detected features in a fixed order
func (f CPUFeatures) Names() []string {
	var names []string
	add := func(ok bool, name string) {
		if ok {
			names = append(names, name)
		}
	}
	add(f.HasSSE4, "SSE4")
	add(f.HasAVX, "AVX")
	add(f.HasAVX2, "AVX2")
	add(f.HasFMA, "FMA")
	add(f.HasAVX512F, "AVX512F")
	add(f.HasASIMD, "ASIMD")
	add(f.HasSVE, "SVE")
	return names
}

// GetCPUInfo returns a string describing available CPU features
func GetCPUInfo() string {
	names := DetectCPUFeatures().Names()
	if len(names) == 0 {
		return "No SIMD extensions detected"
	}
	return strings.Join(names, ", ")
}
