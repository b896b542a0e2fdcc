// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

// MatrixDims is the shape of a float matrix.
type MatrixDims struct {
	Columns uint32
	Rows    uint32
}

// VectorDims is the length of a vector.
type VectorDims struct {
	Count uint32
}

// matrixDims returns the shape of t if it is a matrix of vectors.
func matrixDims(t Type) (MatrixDims, bool) {
	m, ok := t.(Matrix)
	if !ok {
		return MatrixDims{}, false
	}
	col, ok := m.Column.(Vector)
	if !ok {
		return MatrixDims{}, false
	}
	return MatrixDims{Columns: m.Count, Rows: col.Count}, true
}

func vectorDims(t Type) (VectorDims, bool) {
	v, ok := t.(Vector)
	if !ok {
		return VectorDims{}, false
	}
	return VectorDims{Count: v.Count}, true
}

// MulMatrix returns the shape of d × rhs. Columns of d must equal rows of rhs.
func (d MatrixDims) MulMatrix(rhs MatrixDims) (MatrixDims, error) {
	if d.Columns != rhs.Rows {
		return MatrixDims{}, dimsError(ErrMatrixMulMismatch, "mul", d.Columns, rhs.Rows)
	}
	return MatrixDims{Columns: rhs.Columns, Rows: d.Rows}, nil
}

// MulVector returns the length of d × v. Columns of d must equal the vector length.
func (d MatrixDims) MulVector(v VectorDims) (VectorDims, error) {
	if d.Columns != v.Count {
		return VectorDims{}, dimsError(ErrMatrixVectorMulMismatch, "mul", d.Columns, v.Count)
	}
	return VectorDims{Count: d.Rows}, nil
}

// Transpose swaps rows and columns.
func (d MatrixDims) Transpose() MatrixDims {
	return MatrixDims{Columns: d.Rows, Rows: d.Columns}
}

// Type returns the float matrix type with this shape.
func (d MatrixDims) Type() Matrix {
	return Matrix{Column: Vector{Component: Float{}, Count: d.Rows}, Count: d.Columns}
}

// Type returns the float vector type with this length.
func (d VectorDims) Type() Vector {
	return Vector{Component: Float{}, Count: d.Count}
}
