// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/spvc/spirv"
)

// valueOp is an operand of a fixed type used to exercise type algebra.
type valueOp struct {
	t Type
}

func (v valueOp) Type() Type { return v.t }

func (v valueOp) Register(*Shader) (RegOp, error) {
	return nil, errors.New("valueOp cannot be registered")
}

func matrix(rows, cols uint32) valueOp {
	return valueOp{t: Matrix{Column: Vector{Component: Float{}, Count: rows}, Count: cols}}
}

func vector(n uint32) valueOp {
	return valueOp{t: Vector{Component: Float{}, Count: n}}
}

func instructions(t *testing.T, s *Shader) []spirv.Instruction {
	t.Helper()
	module, err := s.Module()
	require.NoError(t, err)
	insts, err := module.Instructions()
	require.NoError(t, err)
	return insts
}

func filter(insts []spirv.Instruction, op spirv.OpCode) []spirv.Instruction {
	var out []spirv.Instruction
	for _, inst := range insts {
		if inst.Opcode == op {
			out = append(out, inst)
		}
	}
	return out
}

// memberDecorations returns OpMemberDecorate instructions with the given decoration.
func memberDecorations(insts []spirv.Instruction, dec spirv.Decoration) []spirv.Instruction {
	var out []spirv.Instruction
	for _, inst := range filter(insts, spirv.OpMemberDecorate) {
		if spirv.Decoration(inst.Words[2]) == dec {
			out = append(out, inst)
		}
	}
	return out
}

func decorations(insts []spirv.Instruction, dec spirv.Decoration) []spirv.Instruction {
	var out []spirv.Instruction
	for _, inst := range filter(insts, spirv.OpDecorate) {
		if spirv.Decoration(inst.Words[1]) == dec {
			out = append(out, inst)
		}
	}
	return out
}

func requireKind(t *testing.T, err error, kind ErrorKind) *Error {
	t.Helper()
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, kind, e.Kind, "error: %v", err)
	return e
}
