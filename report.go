package mmbench

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"strings"
)

// WriteReport renders r in the fixed text layout printed on success.
func WriteReport(w io.Writer, r Result) error {
	var buf bytes.Buffer

	title := "Matrix Multiplication Benchmark"
	if v, _ := Version(); v != "" && v != "(devel)" {
		title += " " + v
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len(title)))
	fmt.Fprintf(&buf, "Matrix size: %d x %d\n", r.N, r.N)
	fmt.Fprintf(&buf, "Kernel: %s\n", r.Kernel)
	fmt.Fprintf(&buf, "Platform: %s/%s (%s)\n", runtime.GOOS, runtime.GOARCH, GetCPUInfo())
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "=== RESULTS ===")
	fmt.Fprintf(&buf, "Time: %.6f seconds\n", r.Elapsed.Seconds())
	fmt.Fprintf(&buf, "GFLOP/s: %.3f\n", r.GFLOPS)
	fmt.Fprintf(&buf, "Max error: %.2e\n", r.MaxError)

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteUsage renders the invocation help for prog.
func WriteUsage(w io.Writer, prog string) error {
	_, err := fmt.Fprintf(w, `Usage: %[1]s <n> <kernel>
  n      : matrix size (n x n)
  kernel : %[2]s

Examples:
  %[1]s 64 ijk
  %[1]s 128 kij
`, prog, strings.Join(KernelNames(), " or "))
	return err
}
