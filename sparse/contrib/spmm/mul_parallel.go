// Copyright 2026 The go-sparse Authors. SPDX-License-Identifier: Apache-2.0

package spmm

import (
	"github.com/ajroetker/go-sparse/sparse"
	"github.com/ajroetker/go-sparse/sparse/contrib/workerpool"
)

// ParallelMul is the threaded twin of Mul. Work is partitioned over the
// flattened (batch, row) index space: output cell hi covers batch
// hi / nRow and row hi % nRow, so even a single large batch spreads across
// all workers. Workers are spawned and joined within this call and write
// disjoint elements of y, so the result is identical to Mul.
//
// workers must be positive; the call blocks until every output row is
// written. The flattened decomposition assumes nRow > 0, which holds
// because an empty matrix returns before partitioning.
func ParallelMul[T sparse.Numeric](a sparse.Matrix[T], x, y []T, nBefore, nCol, workers int) {
	if workers <= 1 || sparse.NoParallelEnv() {
		Mul(a, x, y, nBefore, nCol)
		return
	}
	nRow := a.Rows()
	if nRow == 0 || nBefore <= 0 {
		return
	}
	rowPtr, colIdx, values := a.RowPtr, a.ColIdx, a.Values

	workerpool.Run(workers, nBefore*nRow, func(start, end int) {
		for hi := start; hi < end; hi++ {
			h := hi / nRow
			i := hi - h*nRow
			xh := x[h*nCol : (h+1)*nCol]
			var sum T
			for jj := rowPtr[i]; jj < rowPtr[i+1]; jj++ {
				sum += values[jj] * xh[colIdx[jj]]
			}
			// y is (nBefore, nRow), so the flat cell index is hi itself.
			y[hi] = sum
		}
	})
}

// ParallelMulMidAxis is the threaded twin of MulMidAxis, partitioned over
// the same flattened (batch, row) space; each cell owns an nAfter-wide
// slice of y.
func ParallelMulMidAxis[T sparse.Numeric](a sparse.Matrix[T], x, y []T, nBefore, nCol, nAfter, workers int) {
	if workers <= 1 || sparse.NoParallelEnv() {
		MulMidAxis(a, x, y, nBefore, nCol, nAfter)
		return
	}
	nRow := a.Rows()
	if nRow == 0 || nBefore <= 0 || nAfter <= 0 {
		return
	}
	rowPtr, colIdx, values := a.RowPtr, a.ColIdx, a.Values
	xStride := nCol * nAfter

	workerpool.Run(workers, nBefore*nRow, func(start, end int) {
		for hi := start; hi < end; hi++ {
			h := hi / nRow
			i := hi - h*nRow
			xBase := h * xStride
			yi := y[hi*nAfter : (hi+1)*nAfter]
			clear(yi)
			for jj := rowPtr[i]; jj < rowPtr[i+1]; jj++ {
				v := values[jj]
				xj := x[xBase+int(colIdx[jj])*nAfter:]
				for k := 0; k < nAfter; k++ {
					yi[k] += v * xj[k]
				}
			}
		}
	})
}

// ParallelMulFloat32 is the non-generic version of ParallelMul for float32.
func ParallelMulFloat32(a sparse.Matrix[float32], x, y []float32, nBefore, nCol, workers int) {
	ParallelMul(a, x, y, nBefore, nCol, workers)
}

// ParallelMulFloat64 is the non-generic version of ParallelMul for float64.
func ParallelMulFloat64(a sparse.Matrix[float64], x, y []float64, nBefore, nCol, workers int) {
	ParallelMul(a, x, y, nBefore, nCol, workers)
}

// ParallelMulComplex64 is the non-generic version of ParallelMul for complex64.
func ParallelMulComplex64(a sparse.Matrix[complex64], x, y []complex64, nBefore, nCol, workers int) {
	ParallelMul(a, x, y, nBefore, nCol, workers)
}

// ParallelMulComplex128 is the non-generic version of ParallelMul for complex128.
func ParallelMulComplex128(a sparse.Matrix[complex128], x, y []complex128, nBefore, nCol, workers int) {
	ParallelMul(a, x, y, nBefore, nCol, workers)
}

// ParallelMulMidAxisFloat32 is the non-generic version of ParallelMulMidAxis for float32.
func ParallelMulMidAxisFloat32(a sparse.Matrix[float32], x, y []float32, nBefore, nCol, nAfter, workers int) {
	ParallelMulMidAxis(a, x, y, nBefore, nCol, nAfter, workers)
}

// ParallelMulMidAxisFloat64 is the non-generic version of ParallelMulMidAxis for float64.
func ParallelMulMidAxisFloat64(a sparse.Matrix[float64], x, y []float64, nBefore, nCol, nAfter, workers int) {
	ParallelMulMidAxis(a, x, y, nBefore, nCol, nAfter, workers)
}

// ParallelMulMidAxisComplex64 is the non-generic version of ParallelMulMidAxis for complex64.
func ParallelMulMidAxisComplex64(a sparse.Matrix[complex64], x, y []complex64, nBefore, nCol, nAfter, workers int) {
	ParallelMulMidAxis(a, x, y, nBefore, nCol, nAfter, workers)
}

// ParallelMulMidAxisComplex128 is the non-generic version of ParallelMulMidAxis for complex128.
func ParallelMulMidAxisComplex128(a sparse.Matrix[complex128], x, y []complex128, nBefore, nCol, nAfter, workers int) {
	ParallelMulMidAxis(a, x, y, nBefore, nCol, nAfter, workers)
}
