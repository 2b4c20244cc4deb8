// Copyright 2026 The go-sparse Authors. SPDX-License-Identifier: Apache-2.0

package trisolve

import "github.com/ajroetker/go-sparse/sparse"

// Solve overwrites x with the solution of U·x = b for each of nBefore
// independent right-hand sides, where:
//   - u encodes an upper-triangular matrix with the diagonal stored first
//     in every row (see the package contract)
//   - x is (nBefore, nRow) row-major; each row of x is one system's
//     right-hand side on entry and its solution on return
//
// nRow is taken from the view. An empty matrix or empty batch is a no-op.
func Solve[T sparse.Numeric](u sparse.Matrix[T], x []T, nBefore int) {
	nRow := u.Rows()
	if nRow == 0 || nBefore <= 0 {
		return
	}
	rowPtr, colIdx, values := u.RowPtr, u.ColIdx, u.Values

	for h := 0; h < nBefore; h++ {
		xh := x[h*nRow : (h+1)*nRow]
		for i := nRow - 1; i >= 0; i-- {
			diag := rowPtr[i]
			sum := xh[i]
			for jj := diag + 1; jj < rowPtr[i+1]; jj++ {
				sum -= values[jj] * xh[colIdx[jj]]
			}
			xh[i] = sum / values[diag]
		}
	}
}

// SolveMidAxis is the rank-3 form of Solve: x is (nBefore, nRow, nAfter)
// row-major, and the solve runs along the middle axis. The nBefore*nAfter
// systems are independent; each inner-axis position reuses the same sparse
// traversal.
func SolveMidAxis[T sparse.Numeric](u sparse.Matrix[T], x []T, nBefore, nAfter int) {
	nRow := u.Rows()
	if nRow == 0 || nBefore <= 0 || nAfter <= 0 {
		return
	}
	rowPtr, colIdx, values := u.RowPtr, u.ColIdx, u.Values
	stride := nRow * nAfter

	for h := 0; h < nBefore; h++ {
		base := h * stride
		for i := nRow - 1; i >= 0; i-- {
			diag := rowPtr[i]
			xi := x[base+i*nAfter : base+(i+1)*nAfter]
			for jj := diag + 1; jj < rowPtr[i+1]; jj++ {
				v := values[jj]
				xj := x[base+int(colIdx[jj])*nAfter:]
				for a := 0; a < nAfter; a++ {
					xi[a] -= v * xj[a]
				}
			}
			d := values[diag]
			for a := 0; a < nAfter; a++ {
				xi[a] /= d
			}
		}
	}
}

// SolveFloat32 is the non-generic version of Solve for float32.
func SolveFloat32(u sparse.Matrix[float32], x []float32, nBefore int) {
	Solve(u, x, nBefore)
}

// SolveFloat64 is the non-generic version of Solve for float64.
func SolveFloat64(u sparse.Matrix[float64], x []float64, nBefore int) {
	Solve(u, x, nBefore)
}

// SolveComplex64 is the non-generic version of Solve for complex64.
func SolveComplex64(u sparse.Matrix[complex64], x []complex64, nBefore int) {
	Solve(u, x, nBefore)
}

// SolveComplex128 is the non-generic version of Solve for complex128.
func SolveComplex128(u sparse.Matrix[complex128], x []complex128, nBefore int) {
	Solve(u, x, nBefore)
}

// SolveMidAxisFloat32 is the non-generic version of SolveMidAxis for float32.
func SolveMidAxisFloat32(u sparse.Matrix[float32], x []float32, nBefore, nAfter int) {
	SolveMidAxis(u, x, nBefore, nAfter)
}

// SolveMidAxisFloat64 is the non-generic version of SolveMidAxis for float64.
func SolveMidAxisFloat64(u sparse.Matrix[float64], x []float64, nBefore, nAfter int) {
	SolveMidAxis(u, x, nBefore, nAfter)
}

// SolveMidAxisComplex64 is the non-generic version of SolveMidAxis for complex64.
func SolveMidAxisComplex64(u sparse.Matrix[complex64], x []complex64, nBefore, nAfter int) {
	SolveMidAxis(u, x, nBefore, nAfter)
}

// SolveMidAxisComplex128 is the non-generic version of SolveMidAxis for complex128.
func SolveMidAxisComplex128(u sparse.Matrix[complex128], x []complex128, nBefore, nAfter int) {
	SolveMidAxis(u, x, nBefore, nAfter)
}
