// Copyright 2026 The go-sparse Authors. SPDX-License-Identifier: Apache-2.0

package sparse

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the validation helpers. Callers match them
// with errors.Is; the wrapped message carries the offending index.
var (
	// ErrRowPtr indicates a malformed row-pointer array: wrong length,
	// nonzero first entry, a decreasing step, or a final entry that does
	// not match the stored-entry count.
	ErrRowPtr = errors.New("sparse: malformed row pointer array")

	// ErrColIdx indicates an out-of-range or non-ascending column index
	// within a row.
	ErrColIdx = errors.New("sparse: malformed column index array")

	// ErrValues indicates the values array is not parallel to ColIdx.
	ErrValues = errors.New("sparse: values length mismatch")

	// ErrDiagonal indicates a violation of the triangular-solve invariant:
	// a row whose first stored entry is not its diagonal, a stored entry at
	// or below the diagonal, or a zero diagonal value.
	ErrDiagonal = errors.New("sparse: triangular diagonal invariant violated")
)

// Validate performs the structural CSR checks the kernels skip: row-pointer
// shape and monotonicity, parallel-array lengths, and per-row ascending
// column indices within [0, cols).
//
// It is intended for debug paths and untrusted builders only; kernels never
// call it.
func (m Matrix[T]) Validate(cols int) error {
	if len(m.RowPtr) == 0 {
		return fmt.Errorf("%w: empty row pointer array", ErrRowPtr)
	}
	if m.RowPtr[0] != 0 {
		return fmt.Errorf("%w: first entry %d, want 0", ErrRowPtr, m.RowPtr[0])
	}
	rows := len(m.RowPtr) - 1
	for i := 0; i < rows; i++ {
		if m.RowPtr[i+1] < m.RowPtr[i] {
			return fmt.Errorf("%w: decreasing at row %d", ErrRowPtr, i)
		}
	}
	nnz := int(m.RowPtr[rows])
	if nnz != len(m.ColIdx) {
		return fmt.Errorf("%w: final entry %d, want %d", ErrRowPtr, nnz, len(m.ColIdx))
	}
	if len(m.Values) != len(m.ColIdx) {
		return fmt.Errorf("%w: %d values for %d indices", ErrValues, len(m.Values), len(m.ColIdx))
	}
	for i := 0; i < rows; i++ {
		prev := int32(-1)
		for jj := m.RowPtr[i]; jj < m.RowPtr[i+1]; jj++ {
			c := m.ColIdx[jj]
			if c < 0 || int(c) >= cols {
				return fmt.Errorf("%w: row %d column %d outside [0,%d)", ErrColIdx, i, c, cols)
			}
			if c <= prev {
				return fmt.Errorf("%w: row %d not strictly ascending at entry %d", ErrColIdx, i, jj)
			}
			prev = c
		}
	}
	return nil
}

// ValidateTriangular checks the invariant the triangular-solve kernels rely
// on: the matrix is square, every row stores its diagonal entry first with a
// nonzero value, and all remaining stored entries lie strictly above the
// diagonal. Structural checks from Validate are included.
func (m Matrix[T]) ValidateTriangular() error {
	rows := m.Rows()
	if err := m.Validate(rows); err != nil {
		return err
	}
	var zero T
	for i := 0; i < rows; i++ {
		start, end := m.RowPtr[i], m.RowPtr[i+1]
		if start == end {
			return fmt.Errorf("%w: row %d has no diagonal entry", ErrDiagonal, i)
		}
		if m.ColIdx[start] != int32(i) {
			return fmt.Errorf("%w: row %d first entry at column %d", ErrDiagonal, i, m.ColIdx[start])
		}
		if m.Values[start] == zero {
			return fmt.Errorf("%w: row %d has zero diagonal", ErrDiagonal, i)
		}
		// Validate guarantees strictly ascending columns, so diagonal-first
		// already implies every other stored column is strictly above i.
	}
	return nil
}
