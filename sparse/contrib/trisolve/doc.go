// Copyright 2026 go-sparse Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package trisolve solves batches of upper-triangular linear systems
// U·x = b in place by back substitution, where U is given in CSR form.
//
// # Algorithm
//
// Rows are processed in strictly descending order, nRow-1 down to 0. For
// row i every stored off-diagonal entry references an already-solved value,
// so one pass suffices:
//
//  1. Subtract values[jj] * x[..., colIdx[jj], ...] for each stored
//     off-diagonal entry of row i.
//  2. Divide the remainder by the diagonal entry, which is the first stored
//     entry of the row.
//
// # Data Layout
//
// Two dense layouts are supported, both contiguous row-major:
//
//   - Solve: x has shape (nBefore, nRow) — the solve runs along the last
//     axis, with a scalar accumulator per row.
//   - SolveMidAxis: x has shape (nBefore, nRow, nAfter) — the solve runs
//     along the middle axis, with an inner loop over the nAfter trailing
//     values per row.
//
// Each of the nBefore (and, for the mid-axis form, nAfter) slices is an
// independent system; x holds the right-hand sides on entry and the
// solutions on return.
//
// # Caller Contract
//
// The kernels perform no validation. The caller guarantees:
//
//   - the CSR arrays encode a square matrix whose every row stores its
//     diagonal entry first (colIdx[rowPtr[i]] == i), followed only by
//     columns strictly greater than i, sorted ascending;
//   - every diagonal value is nonzero — a zero diagonal divides through
//     and silently yields Inf/NaN components, it is not trapped;
//   - len(x) >= nBefore * u.Rows() * nAfter.
//
// Use sparse.Matrix.ValidateTriangular in debug paths to check the first
// two points.
//
// # Parallel Variants
//
// ParallelSolve and ParallelSolveMidAxis distribute the nBefore independent
// systems over a fixed number of workers in contiguous chunks. The
// row-descending dependency chain inside one system is inherently
// sequential and is never split. Results match the sequential kernels
// exactly: each system's arithmetic order is unchanged.
//
// # Example
//
//	// U = [[2, 4],
//	//      [0, 3]]
//	u := sparse.Matrix[float64]{
//	    RowPtr: []int32{0, 2, 3},
//	    ColIdx: []int32{0, 1, 1},
//	    Values: []float64{2, 4, 3},
//	}
//	x := []float64{10, 9}
//	trisolve.Solve(u, x, 1)
//	// x = [-1, 3]
package trisolve
