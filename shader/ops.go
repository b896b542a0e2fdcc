// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"errors"

	"github.com/gogpu/spvc/spirv"
)

// LoadOp reads the value behind a pointer.
type LoadOp struct {
	source Op
	result Type
}

// Load reads through a pointer-typed operand.
func Load(source Op) (*LoadOp, error) {
	ptr, ok := source.Type().(Pointer)
	if !ok {
		return nil, NewError(ErrExpectedPointer, "load", "operand is not a pointer", source.Type().Display())
	}
	return &LoadOp{source: source, result: ptr.Pointee}, nil
}

// Type implements Op.
func (o *LoadOp) Type() Type { return o.result }

// Register implements Op.
func (o *LoadOp) Register(s *Shader) (RegOp, error) {
	resultType, err := o.result.Register(s)
	if err != nil {
		return nil, err
	}
	source, err := o.source.Register(s)
	if err != nil {
		return nil, err
	}
	return &loadReg{resultType: resultType, source: source}, nil
}

type loadReg struct {
	resultType uint32
	source     RegOp
}

func (r *loadReg) OpID(s *Shader) (uint32, bool, error) {
	pointer, err := valueID(s, "load", r.source)
	if err != nil {
		return 0, false, err
	}
	id, err := s.builder.AddLoad(r.resultType, pointer)
	if err != nil {
		return 0, false, encoderError(err)
	}
	return id, true, nil
}

// StoreOp writes a value through a pointer. It has no result.
type StoreOp struct {
	dest, source Op
}

// Store writes source into dest. The pointee of dest must match the type
// of source.
func Store(dest, source Op) (*StoreOp, error) {
	ptr, ok := dest.Type().(Pointer)
	if !ok {
		return nil, NewError(ErrExpectedPointer, "store", "destination is not a pointer", dest.Type().Display())
	}
	if !ptr.Pointee.Matches(source.Type()) {
		return nil, NewError(ErrStoreMismatch, "store", "value does not match destination",
			ptr.Pointee.Display(), source.Type().Display())
	}
	return &StoreOp{dest: dest, source: source}, nil
}

// Type implements Op. A store yields nothing.
func (o *StoreOp) Type() Type { return NoType{} }

// Register implements Op.
func (o *StoreOp) Register(s *Shader) (RegOp, error) {
	dest, err := o.dest.Register(s)
	if err != nil {
		return nil, err
	}
	source, err := o.source.Register(s)
	if err != nil {
		return nil, err
	}
	return &storeReg{dest: dest, source: source}, nil
}

type storeReg struct {
	dest, source RegOp
}

func (r *storeReg) OpID(s *Shader) (uint32, bool, error) {
	dest, err := valueID(s, "store", r.dest)
	if err != nil {
		return 0, false, err
	}
	source, err := valueID(s, "store", r.source)
	if err != nil {
		return 0, false, err
	}
	if err := s.builder.AddStore(dest, source); err != nil {
		return 0, false, encoderError(err)
	}
	return 0, false, nil
}

// MulOp multiplies a matrix by a matrix or a vector.
type MulOp struct {
	lhs, rhs Op
	result   Type
	opcode   spirv.OpCode
}

// Mul multiplies lhs by rhs. lhs must be a matrix; rhs a matrix with as
// many rows as lhs has columns, or a vector of that length.
//
// A matrix times vector product checks the vector length against the
// matrix column count, as OpMatrixTimesVector does, and yields a vector of
// the row count. Rows and columns only coincide for square matrices, so a
// mat2x4 (two columns of vec4) accepts a vec2 and returns a vec4.
func Mul(lhs, rhs Op) (*MulOp, error) {
	lt, rt := lhs.Type(), rhs.Type()

	ld, ok := matrixDims(lt)
	if ok {
		if rd, ok := matrixDims(rt); ok {
			dims, err := ld.MulMatrix(rd)
			if err != nil {
				return nil, withArgs(err, lt, rt)
			}
			return &MulOp{lhs: lhs, rhs: rhs, result: dims.Type(), opcode: spirv.OpMatrixTimesMatrix}, nil
		}
		if vd, ok := vectorDims(rt); ok {
			dims, err := ld.MulVector(vd)
			if err != nil {
				return nil, withArgs(err, lt, rt)
			}
			return &MulOp{lhs: lhs, rhs: rhs, result: dims.Type(), opcode: spirv.OpMatrixTimesVector}, nil
		}
	}

	return nil, NewError(ErrArgumentMismatch, "mul", "no multiplication for operand types", lt.Display(), rt.Display())
}

func withArgs(err error, types ...Type) error {
	var e *Error
	if errors.As(err, &e) {
		for _, t := range types {
			e.Args = append(e.Args, t.Display())
		}
	}
	return err
}

// Type implements Op.
func (o *MulOp) Type() Type { return o.result }

// Register implements Op.
func (o *MulOp) Register(s *Shader) (RegOp, error) {
	resultType, err := o.result.Register(s)
	if err != nil {
		return nil, err
	}
	lhs, err := o.lhs.Register(s)
	if err != nil {
		return nil, err
	}
	rhs, err := o.rhs.Register(s)
	if err != nil {
		return nil, err
	}
	return &binaryReg{name: "mul", opcode: o.opcode, resultType: resultType, lhs: lhs, rhs: rhs}, nil
}

// TransposeOp swaps the rows and columns of a matrix.
type TransposeOp struct {
	matrix Op
	result Matrix
}

// Transpose transposes a matrix-typed operand.
func Transpose(matrix Op) (*TransposeOp, error) {
	dims, ok := matrixDims(matrix.Type())
	if !ok {
		return nil, NewError(ErrExpectedMatrix, "transpose", "operand is not a matrix", matrix.Type().Display())
	}
	return &TransposeOp{matrix: matrix, result: dims.Transpose().Type()}, nil
}

// Type implements Op.
func (o *TransposeOp) Type() Type { return o.result }

// Register implements Op.
func (o *TransposeOp) Register(s *Shader) (RegOp, error) {
	resultType, err := o.result.Register(s)
	if err != nil {
		return nil, err
	}
	matrix, err := o.matrix.Register(s)
	if err != nil {
		return nil, err
	}
	return &unaryReg{name: "transpose", opcode: spirv.OpTranspose, resultType: resultType, operand: matrix}, nil
}
