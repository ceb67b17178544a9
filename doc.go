// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmbench measures dense matrix multiplication under two loop
// orderings to show how memory-access locality drives throughput.
//
// A run allocates two n×n row-major float64 matrices filled from a seeded
// generator, computes a reference product with the ijk kernel, times the
// selected kernel (ijk or kij) and reports GFLOP/s together with the
// largest deviation from the reference:
//
//	bm, err := mmbench.New(mmbench.Config{N: 512, Kernel: "kij"})
//	if err != nil {
//		return err
//	}
//	defer bm.Close()
//	res, err := bm.Run()
//	if err != nil {
//		return err
//	}
//	mmbench.WriteReport(os.Stdout, res)
//
// The ijk kernel walks B with stride n in its innermost loop. The kij
// kernel hoists k outermost so both B and C are streamed sequentially,
// which is usually faster on cached hierarchies despite re-reading C on
// every k.
package mmbench
