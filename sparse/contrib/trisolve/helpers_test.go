// Copyright 2026 The go-sparse Authors. SPDX-License-Identifier: Apache-2.0

package trisolve

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/ajroetker/go-sparse/sparse"
)

// scalar builds a T from real and imaginary parts; the imaginary part is
// dropped for real element types.
func scalar[T sparse.Numeric](re, im float64) T {
	var t T
	switch any(t).(type) {
	case float32:
		return any(float32(re)).(T)
	case float64:
		return any(re).(T)
	case complex64:
		return any(complex64(complex(re, im))).(T)
	case complex128:
		return any(complex(re, im)).(T)
	}
	panic("unsupported element type")
}

// absDiff returns |a - b| as a float64 magnitude for any element type.
func absDiff[T sparse.Numeric](a, b T) float64 {
	switch v := any(a - b).(type) {
	case float32:
		return math.Abs(float64(v))
	case float64:
		return math.Abs(v)
	case complex64:
		return cmplx.Abs(complex128(v))
	case complex128:
		return cmplx.Abs(v)
	}
	panic("unsupported element type")
}

// maxAbsDiff returns the largest elementwise |a[i] - b[i]|.
func maxAbsDiff[T sparse.Numeric](a, b []T) float64 {
	worst := 0.0
	for i := range a {
		if d := absDiff(a[i], b[i]); d > worst {
			worst = d
		}
	}
	return worst
}

// randUpper builds a random n x n upper-triangular CSR matrix with the
// diagonal stored first in every row. Diagonal magnitudes stay in
// [1, 2) so the systems are well conditioned.
func randUpper[T sparse.Numeric](rng *rand.Rand, n int, density float64) sparse.Matrix[T] {
	rowPtr := make([]int32, 1, n+1)
	var colIdx []int32
	var values []T
	for i := 0; i < n; i++ {
		colIdx = append(colIdx, int32(i))
		values = append(values, scalar[T](1+rng.Float64(), rng.Float64()))
		for j := i + 1; j < n; j++ {
			if rng.Float64() < density {
				colIdx = append(colIdx, int32(j))
				values = append(values, scalar[T](rng.Float64()*2-1, rng.Float64()*2-1))
			}
		}
		rowPtr = append(rowPtr, int32(len(colIdx)))
	}
	return sparse.Matrix[T]{RowPtr: rowPtr, ColIdx: colIdx, Values: values}
}

// randSlice fills a length-n slice with values in [-1, 1).
func randSlice[T sparse.Numeric](rng *rand.Rand, n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = scalar[T](rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return s
}

// upper2x2 is the view for [[2, 4], [0, 3]].
func upper2x2[T sparse.Numeric]() sparse.Matrix[T] {
	return sparse.Matrix[T]{
		RowPtr: []int32{0, 2, 3},
		ColIdx: []int32{0, 1, 1},
		Values: []T{2, 4, 3},
	}
}

// identity builds the n x n identity in CSR form.
func identity[T sparse.Numeric](n int) sparse.Matrix[T] {
	rowPtr := make([]int32, n+1)
	colIdx := make([]int32, n)
	values := make([]T, n)
	for i := 0; i < n; i++ {
		rowPtr[i+1] = int32(i + 1)
		colIdx[i] = int32(i)
		values[i] = 1
	}
	return sparse.Matrix[T]{RowPtr: rowPtr, ColIdx: colIdx, Values: values}
}

// tolFor returns a comparison tolerance appropriate for T's precision.
func tolFor[T sparse.Numeric]() float64 {
	var t T
	switch any(t).(type) {
	case float32, complex64:
		return 1e-4
	default:
		return 1e-10
	}
}
