// Copyright 2026 The go-sparse Authors. SPDX-License-Identifier: Apache-2.0

package spmm

import "github.com/ajroetker/go-sparse/sparse"

// Mul computes Y = A·X independently for each of nBefore batches, where:
//   - a encodes a general (not necessarily triangular) matrix
//   - x is (nBefore, nCol) row-major and is never written
//   - y is (nBefore, nRow) row-major and is fully overwritten
//
// nRow is taken from the view; nCol is the matrix's column count. Rows with
// no stored entries yield zero output. An empty matrix or batch is a no-op.
func Mul[T sparse.Numeric](a sparse.Matrix[T], x, y []T, nBefore, nCol int) {
	nRow := a.Rows()
	if nRow == 0 || nBefore <= 0 {
		return
	}
	rowPtr, colIdx, values := a.RowPtr, a.ColIdx, a.Values

	for h := 0; h < nBefore; h++ {
		xh := x[h*nCol : (h+1)*nCol]
		yh := y[h*nRow : (h+1)*nRow]
		for i := 0; i < nRow; i++ {
			var sum T
			for jj := rowPtr[i]; jj < rowPtr[i+1]; jj++ {
				sum += values[jj] * xh[colIdx[jj]]
			}
			yh[i] = sum
		}
	}
}

// MulMidAxis is the rank-3 form of Mul: X is (nBefore, nCol, nAfter) and
// Y is (nBefore, nRow, nAfter), both row-major, with the product running
// along the middle axis.
func MulMidAxis[T sparse.Numeric](a sparse.Matrix[T], x, y []T, nBefore, nCol, nAfter int) {
	nRow := a.Rows()
	if nRow == 0 || nBefore <= 0 || nAfter <= 0 {
		return
	}
	rowPtr, colIdx, values := a.RowPtr, a.ColIdx, a.Values
	xStride := nCol * nAfter
	yStride := nRow * nAfter

	for h := 0; h < nBefore; h++ {
		xBase := h * xStride
		yBase := h * yStride
		for i := 0; i < nRow; i++ {
			yi := y[yBase+i*nAfter : yBase+(i+1)*nAfter]
			clear(yi)
			for jj := rowPtr[i]; jj < rowPtr[i+1]; jj++ {
				v := values[jj]
				xj := x[xBase+int(colIdx[jj])*nAfter:]
				for k := 0; k < nAfter; k++ {
					yi[k] += v * xj[k]
				}
			}
		}
	}
}

// MulFloat32 is the non-generic version of Mul for float32.
func MulFloat32(a sparse.Matrix[float32], x, y []float32, nBefore, nCol int) {
	Mul(a, x, y, nBefore, nCol)
}

// MulFloat64 is the non-generic version of Mul for float64.
func MulFloat64(a sparse.Matrix[float64], x, y []float64, nBefore, nCol int) {
	Mul(a, x, y, nBefore, nCol)
}

// MulComplex64 is the non-generic version of Mul for complex64.
func MulComplex64(a sparse.Matrix[complex64], x, y []complex64, nBefore, nCol int) {
	Mul(a, x, y, nBefore, nCol)
}

// MulComplex128 is the non-generic version of Mul for complex128.
func MulComplex128(a sparse.Matrix[complex128], x, y []complex128, nBefore, nCol int) {
	Mul(a, x, y, nBefore, nCol)
}

// MulMidAxisFloat32 is the non-generic version of MulMidAxis for float32.
func MulMidAxisFloat32(a sparse.Matrix[float32], x, y []float32, nBefore, nCol, nAfter int) {
	MulMidAxis(a, x, y, nBefore, nCol, nAfter)
}

// MulMidAxisFloat64 is the non-generic version of MulMidAxis for float64.
func MulMidAxisFloat64(a sparse.Matrix[float64], x, y []float64, nBefore, nCol, nAfter int) {
	MulMidAxis(a, x, y, nBefore, nCol, nAfter)
}

// MulMidAxisComplex64 is the non-generic version of MulMidAxis for complex64.
func MulMidAxisComplex64(a sparse.Matrix[complex64], x, y []complex64, nBefore, nCol, nAfter int) {
	MulMidAxis(a, x, y, nBefore, nCol, nAfter)
}

// MulMidAxisComplex128 is the non-generic version of MulMidAxis for complex128.
func MulMidAxisComplex128(a sparse.Matrix[complex128], x, y []complex128, nBefore, nCol, nAfter int) {
	MulMidAxis(a, x, y, nBefore, nCol, nAfter)
}
