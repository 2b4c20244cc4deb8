// Copyright 2026 The go-sparse Authors. SPDX-License-Identifier: Apache-2.0

package trisolve

import (
	"github.com/ajroetker/go-sparse/sparse"
	"github.com/ajroetker/go-sparse/sparse/contrib/workerpool"
)

// ParallelSolve is the threaded twin of Solve. The nBefore independent
// systems are split into contiguous chunks across workers goroutines,
// spawned and joined within this call; each worker runs the sequential
// kernel on its sub-batch. Workers write disjoint regions of x, so the
// result is identical to Solve, not merely within rounding.
//
// workers must be positive; the call blocks until every system is solved.
func ParallelSolve[T sparse.Numeric](u sparse.Matrix[T], x []T, nBefore, workers int) {
	if workers <= 1 || nBefore <= 1 || sparse.NoParallelEnv() {
		Solve(u, x, nBefore)
		return
	}
	nRow := u.Rows()
	if nRow == 0 {
		return
	}
	workerpool.Run(workers, nBefore, func(start, end int) {
		Solve(u, x[start*nRow:end*nRow], end-start)
	})
}

// ParallelSolveMidAxis is the threaded twin of SolveMidAxis, partitioned
// over the outer batch dimension only: the row-descending chain within one
// outer index is sequential and never split across workers.
func ParallelSolveMidAxis[T sparse.Numeric](u sparse.Matrix[T], x []T, nBefore, nAfter, workers int) {
	if workers <= 1 || nBefore <= 1 || sparse.NoParallelEnv() {
		SolveMidAxis(u, x, nBefore, nAfter)
		return
	}
	nRow := u.Rows()
	if nRow == 0 || nAfter <= 0 {
		return
	}
	stride := nRow * nAfter
	workerpool.Run(workers, nBefore, func(start, end int) {
		SolveMidAxis(u, x[start*stride:end*stride], end-start, nAfter)
	})
}

// ParallelSolveFloat32 is the non-generic version of ParallelSolve for float32.
func ParallelSolveFloat32(u sparse.Matrix[float32], x []float32, nBefore, workers int) {
	ParallelSolve(u, x, nBefore, workers)
}

// ParallelSolveFloat64 is the non-generic version of ParallelSolve for float64.
func ParallelSolveFloat64(u sparse.Matrix[float64], x []float64, nBefore, workers int) {
	ParallelSolve(u, x, nBefore, workers)
}

// ParallelSolveComplex64 is the non-generic version of ParallelSolve for complex64.
func ParallelSolveComplex64(u sparse.Matrix[complex64], x []complex64, nBefore, workers int) {
	ParallelSolve(u, x, nBefore, workers)
}

// ParallelSolveComplex128 is the non-generic version of ParallelSolve for complex128.
func ParallelSolveComplex128(u sparse.Matrix[complex128], x []complex128, nBefore, workers int) {
	ParallelSolve(u, x, nBefore, workers)
}

// ParallelSolveMidAxisFloat32 is the non-generic version of ParallelSolveMidAxis for float32.
func ParallelSolveMidAxisFloat32(u sparse.Matrix[float32], x []float32, nBefore, nAfter, workers int) {
	ParallelSolveMidAxis(u, x, nBefore, nAfter, workers)
}

// ParallelSolveMidAxisFloat64 is the non-generic version of ParallelSolveMidAxis for float64.
func ParallelSolveMidAxisFloat64(u sparse.Matrix[float64], x []float64, nBefore, nAfter, workers int) {
	ParallelSolveMidAxis(u, x, nBefore, nAfter, workers)
}

// ParallelSolveMidAxisComplex64 is the non-generic version of ParallelSolveMidAxis for complex64.
func ParallelSolveMidAxisComplex64(u sparse.Matrix[complex64], x []complex64, nBefore, nAfter, workers int) {
	ParallelSolveMidAxis(u, x, nBefore, nAfter, workers)
}

// ParallelSolveMidAxisComplex128 is the non-generic version of ParallelSolveMidAxis for complex128.
func ParallelSolveMidAxisComplex128(u sparse.Matrix[complex128], x []complex128, nBefore, nAfter, workers int) {
	ParallelSolveMidAxis(u, x, nBefore, nAfter, workers)
}
