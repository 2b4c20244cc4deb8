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

// Package spmm applies a general CSR matrix to batched dense operands,
// computing Y = A·X without mutating X.
//
// # Algorithm
//
// For every batch index and output row i, the corresponding slice of Y is
// set to zero and then accumulated from the stored entries of row i:
//
//	Y[..., i, ...] += A[i,j] * X[..., j, ...]
//
// Entries are consumed in stored (ascending-column) order. Stale content of
// Y is irrelevant: every element is overwritten.
//
// # Data Layout
//
// Two dense layouts are supported, both contiguous row-major:
//
//   - Mul: X is (nBefore, nCol), Y is (nBefore, nRow) — apply along the
//     last axis, scalar accumulator per output element.
//   - MulMidAxis: X is (nBefore, nCol, nAfter), Y is (nBefore, nRow,
//     nAfter) — apply along the middle axis, inner loop over nAfter.
//
// nRow comes from the view; nCol is the matrix's column count and must be
// passed explicitly since CSR arrays do not encode it.
//
// # Caller Contract
//
// The kernels perform no validation. The caller guarantees well-formed CSR
// arrays (use sparse.Matrix.Validate in debug paths), in-range column
// indices, len(x) >= nBefore*nCol*nAfter, len(y) >= nBefore*nRow*nAfter,
// and that x and y do not alias each other.
//
// # Parallel Variants
//
// ParallelMul and ParallelMulMidAxis distribute the flattened
// (batch, row) index space — nBefore*nRow independent output cells — in
// contiguous chunks across a fixed number of workers. This is finer-grained
// than batch-only partitioning and balances well even when nBefore is
// small. Summation order per output element is unchanged, so results match
// the sequential kernels exactly.
package spmm
