// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mmbench times one matrix multiplication kernel.
//
// Usage:
//
//	mmbench <n> <kernel>
//
// n is the matrix dimension (1 to 4096) and kernel is ijk or kij. The
// report goes to standard output; argument and allocation diagnostics go to
// standard error. Any failure exits with status 1.
package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/tebeka/atexit"

	"github.com/LynnColeArt/mmbench"
)

func main() {
	atexit.Exit(run(os.Args, os.Stdout, os.Stderr, func(release func()) {
		atexit.Register(release)
	}))
}

func newLogger(w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(out).Level(zerolog.InfoLevel)
}

// run drives one benchmark and returns the exit status. The matrices stay
// alive after run returns; their release is handed to onExit, which main
// wires to the process exit handlers.
func run(args []string, stdout, stderr io.Writer, onExit func(release func()), opts ...mmbench.Option) int {
	logger := newLogger(stderr)

	prog := "mmbench"
	if len(args) > 0 {
		prog = filepath.Base(args[0])
	}
	if len(args) != 3 {
		mmbench.WriteUsage(stdout, prog)
		return 1
	}

	// Non-numeric sizes become 0 and fail the range check.
	n, err := strconv.Atoi(args[1])
	if err != nil {
		n = 0
	}

	opts = append([]mmbench.Option{mmbench.WithLogger(logger)}, opts...)
	bm, err := mmbench.New(mmbench.Config{N: n, Kernel: args[2]}, opts...)
	if err != nil {
		report(logger, err)
		return 1
	}
	onExit(func() {
		if err := bm.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to release matrices")
		}
	})

	res, err := bm.Run()
	if err != nil {
		report(logger, err)
		return 1
	}
	if err := mmbench.WriteReport(stdout, res); err != nil {
		logger.Error().Err(err).Msg("failed to write report")
		return 1
	}
	return 0
}

// report prints the one-line diagnostic for err on the logger.
func report(logger zerolog.Logger, err error) {
	var be *mmbench.BenchError
	if !errors.As(err, &be) {
		logger.Error().Err(err).Msg("benchmark failed")
		return
	}
	ev := logger.Error()
	if be.Err != nil {
		ev = ev.AnErr("cause", be.Err)
	}
	ev.Msg(be.Message)
}
