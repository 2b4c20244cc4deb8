// Copyright 2026 The go-sparse Authors. SPDX-License-Identifier: Apache-2.0

package sparse

// Matrix is a borrowed, non-owning view over caller-allocated CSR arrays.
// The three slices stay owned by the caller and must not be mutated for the
// duration of any kernel call that reads them.
//
// Layout:
//   - RowPtr has length rows+1 and is monotonically non-decreasing;
//     RowPtr[i+1]-RowPtr[i] is the number of stored entries in row i.
//   - ColIdx[RowPtr[i]:RowPtr[i+1]] holds row i's column indices, ascending.
//   - Values is parallel to ColIdx.
//
// The triangular-solve kernels additionally require every row to store its
// diagonal entry first (ColIdx[RowPtr[i]] == i) followed only by columns
// strictly greater than i, with a nonzero diagonal value. Kernels do not
// check any of this; see Validate and ValidateTriangular.
type Matrix[T Numeric] struct {
	RowPtr []int32
	ColIdx []int32
	Values []T
}

// Rows returns the number of matrix rows encoded by the view.
func (m Matrix[T]) Rows() int {
	if len(m.RowPtr) == 0 {
		return 0
	}
	return len(m.RowPtr) - 1
}

// NNZ returns the number of stored entries.
func (m Matrix[T]) NNZ() int {
	if len(m.RowPtr) == 0 {
		return 0
	}
	return int(m.RowPtr[len(m.RowPtr)-1])
}

// Row returns the column indices and values stored for row i.
// The returned slices alias the view's arrays.
func (m Matrix[T]) Row(i int) ([]int32, []T) {
	start, end := m.RowPtr[i], m.RowPtr[i+1]
	return m.ColIdx[start:end], m.Values[start:end]
}
