// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import "github.com/gogpu/spvc/spirv"

// Function is a finished parameterless function with a single block.
type Function struct {
	name string
	ops  []Op
	ret  Op
}

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// register emits the function and returns its id.
func (f *Function) register(s *Shader) (uint32, error) {
	regs := make([]RegOp, len(f.ops))
	for i, op := range f.ops {
		reg, err := op.Register(s)
		if err != nil {
			return 0, err
		}
		regs[i] = reg
	}

	var (
		returnType uint32
		ret        RegOp
		err        error
	)
	if f.ret != nil {
		if returnType, err = f.ret.Type().Register(s); err != nil {
			return 0, err
		}
		if ret, err = f.ret.Register(s); err != nil {
			return 0, err
		}
	} else if returnType, err = s.voidType(); err != nil {
		return 0, err
	}

	fnType, err := s.cachedType(functionKey(returnType, nil), func(s *Shader) (uint32, error) {
		return s.builder.AddTypeFunction(returnType), nil
	})
	if err != nil {
		return 0, err
	}

	id, err := s.builder.BeginFunction(returnType, spirv.FunctionControlNone, fnType)
	if err != nil {
		return 0, encoderError(err)
	}
	if err := f.emitBody(s, regs, ret); err != nil {
		s.builder.AbortFunction()
		return 0, err
	}
	s.builder.AddName(id, f.name)
	return id, nil
}

// emitBody records the single block of the open function and closes it.
func (f *Function) emitBody(s *Shader, regs []RegOp, ret RegOp) error {
	if _, err := s.builder.BeginBlock(); err != nil {
		return encoderError(err)
	}

	for _, reg := range regs {
		if _, _, err := reg.OpID(s); err != nil {
			return err
		}
	}

	if ret != nil {
		value, err := valueID(s, "return", ret)
		if err != nil {
			return err
		}
		if err := s.builder.AddReturnValue(value); err != nil {
			return encoderError(err)
		}
	} else if err := s.builder.AddReturn(); err != nil {
		return encoderError(err)
	}

	if err := s.builder.EndFunction(); err != nil {
		return encoderError(err)
	}
	return nil
}

// FunctionBuilder collects the operations of a function body in order.
type FunctionBuilder struct {
	name string
	ops  []Op
}

// NewFunction starts a function body.
func NewFunction(name string) *FunctionBuilder {
	return &FunctionBuilder{name: name}
}

// Add appends operations to the body.
func (b *FunctionBuilder) Add(ops ...Op) *FunctionBuilder {
	b.ops = append(b.ops, ops...)
	return b
}

// ReturnsVoid finishes a function returning nothing.
func (b *FunctionBuilder) ReturnsVoid() *Function {
	return &Function{name: b.name, ops: b.ops}
}

// Returns finishes a function returning the value of op.
func (b *FunctionBuilder) Returns(op Op) *Function {
	return &Function{name: b.name, ops: b.ops, ret: op}
}
