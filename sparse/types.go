// Package sparse provides batched numeric kernels over matrices stored in
// Compressed Sparse Row (CSR) form.
//
// The package itself holds only the shared pieces: the element-type
// constraints, the borrowed CSR view, and an opt-in structural validator.
// The kernels live in subpackages of contrib:
//
//	import "github.com/ajroetker/go-sparse/sparse/contrib/trisolve"
//	import "github.com/ajroetker/go-sparse/sparse/contrib/spmm"
//
// All kernels trust their caller: shapes, index bounds and the triangular
// structure are documented contracts, never runtime checks on the hot path.
// Use Matrix.Validate and Matrix.ValidateTriangular in debug paths when the
// CSR arrays come from an untrusted builder.
package sparse

// Floats is a constraint for real floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// Complexes is a constraint for complex element types.
type Complexes interface {
	~complex64 | ~complex128
}

// Numeric is a constraint for all element types the CSR kernels support:
// single- and double-precision real and complex. Division and multiplication
// use the semantics native to each type; a zero divisor produces Inf/NaN
// components rather than an error.
type Numeric interface {
	Floats | Complexes
}
