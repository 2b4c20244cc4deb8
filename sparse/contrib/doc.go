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

// Package contrib groups the CSR kernel families.
//
// # Subpackages
//
//   - trisolve: batched in-place back substitution for upper-triangular
//     CSR systems
//   - spmm: batched application Y = A·X of a general CSR matrix to dense
//     operands
//   - workerpool: call-scoped fork-join loop with static contiguous
//     partitioning, used by the Parallel* kernels
//
// Every kernel family exposes a last-axis (rank-2 dense operand) and a
// mid-axis (rank-3 dense operand) entry point, each with a sequential and a
// threaded variant, instantiated over float32, float64, complex64 and
// complex128.
package contrib
