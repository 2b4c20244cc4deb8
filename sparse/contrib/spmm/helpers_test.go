// Copyright 2026 The go-sparse Authors. SPDX-License-Identifier: Apache-2.0

package spmm

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

// randCSR builds a random rows x cols CSR matrix with the given entry
// density; rows may come out empty.
func randCSR[T sparse.Numeric](rng *rand.Rand, rows, cols int, density float64) sparse.Matrix[T] {
	rowPtr := make([]int32, 1, rows+1)
	var colIdx []int32
	var values []T
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
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

// general2x2 is the view for [[2, 4], [0, 3]] read as a general matrix.
func general2x2[T sparse.Numeric]() sparse.Matrix[T] {
	return sparse.Matrix[T]{
		RowPtr: []int32{0, 2, 3},
		ColIdx: []int32{0, 1, 1},
		Values: []T{2, 4, 3},
	}
}
