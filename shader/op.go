// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import "github.com/gogpu/spvc/spirv"

// Op is a node of the operation graph. Nodes are immutable and may be
// shared by several consumers; a shared node is emitted once per
// registration of each consumer.
type Op interface {
	// Type is the result type, derived from the operands at construction.
	Type() Type

	// Register resolves types, constants and operands into a RegOp.
	// It may emit module-level declarations but never function code.
	Register(s *Shader) (RegOp, error)
}

// RegOp is a registered operation ready to emit its instruction.
type RegOp interface {
	// OpID emits the instruction into the current block and returns its
	// result id. ok is false for operations without a result, like Store.
	OpID(s *Shader) (id uint32, ok bool, err error)
}

// valueID emits r and requires a result id.
func valueID(s *Shader, op string, r RegOp) (uint32, error) {
	id, ok, err := r.OpID(s)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, NewError(ErrNoObjectID, op, "operand produced no result id")
	}
	return id, nil
}

// binaryReg emits a two-operand instruction.
type binaryReg struct {
	name       string
	opcode     spirv.OpCode
	resultType uint32
	lhs, rhs   RegOp
}

func (r *binaryReg) OpID(s *Shader) (uint32, bool, error) {
	lhs, err := valueID(s, r.name, r.lhs)
	if err != nil {
		return 0, false, err
	}
	rhs, err := valueID(s, r.name, r.rhs)
	if err != nil {
		return 0, false, err
	}
	id, err := s.builder.AddBinaryOp(r.opcode, r.resultType, lhs, rhs)
	if err != nil {
		return 0, false, encoderError(err)
	}
	return id, true, nil
}

// unaryReg emits a single-operand instruction.
type unaryReg struct {
	name       string
	opcode     spirv.OpCode
	resultType uint32
	operand    RegOp
}

func (r *unaryReg) OpID(s *Shader) (uint32, bool, error) {
	operand, err := valueID(s, r.name, r.operand)
	if err != nil {
		return 0, false, err
	}
	id, err := s.builder.AddUnaryOp(r.opcode, r.resultType, operand)
	if err != nil {
		return 0, false, encoderError(err)
	}
	return id, true, nil
}
