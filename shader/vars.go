// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import "github.com/gogpu/spvc/spirv"

// variable is the shared state of every module-scope variable node.
// Registration is memoized on (storage class, type, binding metadata), so
// two nodes describing the same binding resolve to one OpVariable.
type variable struct {
	name     string
	storage  StorageClass
	pointee  Type
	set      optional
	binding  optional
	location optional
	builtIn  *spirv.BuiltIn
}

// Name returns the debug name of the variable.
func (v *variable) Name() string { return v.name }

// StorageClass returns the storage class of the variable.
func (v *variable) StorageClass() StorageClass { return v.storage }

// Type implements Op. A variable is a pointer to its declared type.
func (v *variable) Type() Type {
	return Pointer{Storage: v.storage, Pointee: v.pointee}
}

// Register implements Op.
func (v *variable) Register(s *Shader) (RegOp, error) {
	if v.storage == StorageFunction {
		return nil, NewError(ErrArgumentMismatch, "variable "+v.name,
			"function storage is not allowed at module scope", v.Type().Display())
	}
	variableType, err := v.Type().Register(s)
	if err != nil {
		return nil, err
	}

	id, err := s.cachedType(globalVarKey(v, variableType), func(s *Shader) (uint32, error) {
		id := s.builder.AddVariable(variableType, v.storage.SPIRV())
		s.builder.AddName(id, v.name)
		if v.set.ok {
			s.builder.AddDecorate(id, spirv.DecorationDescriptorSet, v.set.value)
		}
		if v.binding.ok {
			s.builder.AddDecorate(id, spirv.DecorationBinding, v.binding.value)
		}
		if v.location.ok {
			s.builder.AddDecorate(id, spirv.DecorationLocation, v.location.value)
		}
		if v.builtIn != nil {
			s.builder.AddDecorate(id, spirv.DecorationBuiltIn, uint32(*v.builtIn))
		}
		return id, nil
	})
	if err != nil {
		return nil, err
	}
	return varReg(id), nil
}

// varReg is a registered variable; its id is the OpVariable result.
type varReg uint32

func (r varReg) OpID(*Shader) (uint32, bool, error) {
	return uint32(r), true, nil
}

// GlobalVar is a general module-scope variable configured with With*
// options. Its interface classification follows from the storage class
// and metadata.
type GlobalVar struct {
	variable
}

// NewGlobalVar describes a variable of type ty in a storage class.
func NewGlobalVar(name string, ty Type, storage StorageClass) *GlobalVar {
	return &GlobalVar{variable{name: name, storage: storage, pointee: ty}}
}

// WithSet returns a copy with a descriptor set.
func (v *GlobalVar) WithSet(set uint32) *GlobalVar {
	c := *v
	c.set = some(set)
	return &c
}

// WithBinding returns a copy with a binding.
func (v *GlobalVar) WithBinding(binding uint32) *GlobalVar {
	c := *v
	c.binding = some(binding)
	return &c
}

// WithLocation returns a copy with a location.
func (v *GlobalVar) WithLocation(location uint32) *GlobalVar {
	c := *v
	c.location = some(location)
	return &c
}

// WithBuiltIn returns a copy decorated as a built-in.
func (v *GlobalVar) WithBuiltIn(b spirv.BuiltIn) *GlobalVar {
	c := *v
	c.builtIn = &b
	return &c
}

// Interface implements Interfacer.
func (v *GlobalVar) Interface() (Interface, bool) {
	if v.builtIn != nil {
		return Interface{Kind: InterfaceBuiltIn, Name: v.name, Type: v.pointee}, true
	}
	switch v.storage {
	case StorageInput:
		if v.location.ok {
			return Interface{Kind: InterfaceInput, Name: v.name, Type: v.pointee, Location: v.location.value}, true
		}
	case StorageOutput:
		if v.location.ok {
			return Interface{Kind: InterfaceOutput, Name: v.name, Type: v.pointee, Location: v.location.value}, true
		}
	case StorageUniform:
		if v.set.ok && v.binding.ok {
			return Interface{Kind: InterfaceUniform, Name: v.name, Type: v.pointee, Set: v.set.value, Binding: v.binding.value}, true
		}
	}
	return Interface{}, false
}

// InputVar is a stage input at a location.
type InputVar struct {
	variable
}

// NewInputVar describes a stage input.
func NewInputVar(name string, ty Type, location uint32) *InputVar {
	return &InputVar{variable{name: name, storage: StorageInput, pointee: ty, location: some(location)}}
}

// Interface implements Interfacer.
func (v *InputVar) Interface() (Interface, bool) {
	return Interface{Kind: InterfaceInput, Name: v.name, Type: v.pointee, Location: v.location.value}, true
}

// OutputVar is a stage output at a location.
type OutputVar struct {
	variable
}

// NewOutputVar describes a stage output.
func NewOutputVar(name string, ty Type, location uint32) *OutputVar {
	return &OutputVar{variable{name: name, storage: StorageOutput, pointee: ty, location: some(location)}}
}

// Interface implements Interfacer.
func (v *OutputVar) Interface() (Interface, bool) {
	return Interface{Kind: InterfaceOutput, Name: v.name, Type: v.pointee, Location: v.location.value}, true
}

// UniformVar is a uniform block at a descriptor set and binding.
type UniformVar struct {
	variable
}

// NewUniformVar describes a uniform block.
func NewUniformVar(name string, ty Type, set, binding uint32) *UniformVar {
	return &UniformVar{variable{name: name, storage: StorageUniform, pointee: ty, set: some(set), binding: some(binding)}}
}

// Interface implements Interfacer.
func (v *UniformVar) Interface() (Interface, bool) {
	return Interface{Kind: InterfaceUniform, Name: v.name, Type: v.pointee, Set: v.set.value, Binding: v.binding.value}, true
}

// BuiltInVar is a variable with built-in semantics such as gl_Position.
type BuiltInVar struct {
	variable
}

// NewBuiltInVar describes a built-in. Position, point size and frag depth
// are outputs; every other built-in is an input.
func NewBuiltInVar(name string, ty Type, b spirv.BuiltIn) *BuiltInVar {
	storage := StorageInput
	switch b {
	case spirv.BuiltInPosition, spirv.BuiltInPointSize, spirv.BuiltInClipDistance, spirv.BuiltInFragDepth:
		storage = StorageOutput
	}
	return &BuiltInVar{variable{name: name, storage: storage, pointee: ty, builtIn: &b}}
}

// Interface implements Interfacer.
func (v *BuiltInVar) Interface() (Interface, bool) {
	return Interface{Kind: InterfaceBuiltIn, Name: v.name, Type: v.pointee}, true
}
