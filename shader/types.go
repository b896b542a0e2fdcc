// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"fmt"

	"github.com/gogpu/spvc/spirv"
)

// Type describes a SPIR-V type. Descriptions are plain values with no
// side effects; Register emits the type into a Shader on first use and
// returns the cached id afterwards.
type Type interface {
	// Register resolves the type to a SPIR-V id, emitting it if needed.
	Register(s *Shader) (uint32, error)

	// Width is the unaligned data width in bytes.
	Width() uint32

	// Matches reports structural equality with other.
	Matches(other Type) bool

	// Display is the human-readable name used in diagnostics.
	Display() string

	isType()
}

// structExtra is implemented by types that need extra member
// decorations when they appear inside a struct.
type structExtra interface {
	registerStructExtra(s *Shader, structID, index uint32)
}

// Bool is a boolean. Booleans occupy 4 bytes in uniform blocks.
type Bool struct{}

// Register implements Type.
func (Bool) Register(s *Shader) (uint32, error) {
	return s.cachedType(scalarKey(keyBool), func(s *Shader) (uint32, error) {
		return s.builder.AddTypeBool(), nil
	})
}

func (Bool) Width() uint32   { return 4 }
func (Bool) Display() string { return "bool" }
func (Bool) isType()         {}

// Matches implements Type.
func (Bool) Matches(other Type) bool {
	_, ok := other.(Bool)
	return ok
}

// UnsignedInteger is a 32-bit unsigned integer.
type UnsignedInteger struct{}

// Register implements Type.
func (UnsignedInteger) Register(s *Shader) (uint32, error) {
	return s.cachedType(scalarKey(keyUnsignedInteger), func(s *Shader) (uint32, error) {
		return s.builder.AddTypeInt(32, false), nil
	})
}

func (UnsignedInteger) Width() uint32   { return 4 }
func (UnsignedInteger) Display() string { return "uint32_t" }
func (UnsignedInteger) isType()         {}

// Matches implements Type.
func (UnsignedInteger) Matches(other Type) bool {
	_, ok := other.(UnsignedInteger)
	return ok
}

// Float is a 32-bit float.
type Float struct{}

// Register implements Type.
func (Float) Register(s *Shader) (uint32, error) {
	return s.cachedType(scalarKey(keyFloat), func(s *Shader) (uint32, error) {
		return s.builder.AddTypeFloat(32), nil
	})
}

func (Float) Width() uint32   { return 4 }
func (Float) Display() string { return "float" }
func (Float) isType()         {}

// Matches implements Type.
func (Float) Matches(other Type) bool {
	_, ok := other.(Float)
	return ok
}

// Vector is a fixed-size vector of scalars.
type Vector struct {
	Component Type
	Count     uint32
}

// Register implements Type.
func (t Vector) Register(s *Shader) (uint32, error) {
	component, err := t.Component.Register(s)
	if err != nil {
		return 0, err
	}
	return s.cachedType(vectorKey(component, t.Count), func(s *Shader) (uint32, error) {
		return s.builder.AddTypeVector(component, t.Count), nil
	})
}

func (t Vector) Width() uint32 { return t.Component.Width() * t.Count }
func (Vector) isType()         {}

// Matches implements Type.
func (t Vector) Matches(other Type) bool {
	o, ok := other.(Vector)
	return ok && t.Count == o.Count && t.Component.Matches(o.Component)
}

// Display implements Type.
func (t Vector) Display() string {
	return fmt.Sprintf("vec%d[%s]", t.Count, t.Component.Display())
}

// Matrix is a column-major matrix of Count columns.
type Matrix struct {
	Column Type
	Count  uint32
}

// Register implements Type.
func (t Matrix) Register(s *Shader) (uint32, error) {
	column, err := t.Column.Register(s)
	if err != nil {
		return 0, err
	}
	return s.cachedType(matrixKey(column, t.Count), func(s *Shader) (uint32, error) {
		return s.builder.AddTypeMatrix(column, t.Count), nil
	})
}

func (t Matrix) registerStructExtra(s *Shader, structID, index uint32) {
	s.builder.AddMemberDecorate(structID, index, spirv.DecorationColMajor)
	s.builder.AddMemberDecorate(structID, index, spirv.DecorationMatrixStride, s.opts.Layout.MatrixStride(t))
}

func (t Matrix) Width() uint32 { return t.Column.Width() * t.Count }
func (Matrix) isType()         {}

// Matches implements Type.
func (t Matrix) Matches(other Type) bool {
	o, ok := other.(Matrix)
	return ok && t.Count == o.Count && t.Column.Matches(o.Column)
}

// Display implements Type.
func (t Matrix) Display() string {
	return fmt.Sprintf("mat%d[%s]", t.Count, t.Column.Display())
}

// Pointer points to a value of Pointee in a storage class.
type Pointer struct {
	Storage StorageClass
	Pointee Type
}

// Register implements Type.
func (t Pointer) Register(s *Shader) (uint32, error) {
	pointee, err := t.Pointee.Register(s)
	if err != nil {
		return 0, err
	}
	return s.registerPointerType(t.Storage, pointee)
}

func (t Pointer) Width() uint32 { return t.Pointee.Width() }
func (Pointer) isType()         {}

// Matches implements Type.
func (t Pointer) Matches(other Type) bool {
	o, ok := other.(Pointer)
	return ok && t.Storage == o.Storage && t.Pointee.Matches(o.Pointee)
}

// Display implements Type.
func (t Pointer) Display() string {
	return fmt.Sprintf("*%s %s", t.Storage, t.Pointee.Display())
}

// NoType is the type of a failed deferred operation. It matches nothing.
type NoType struct{}

// Register implements Type.
func (NoType) Register(*Shader) (uint32, error) {
	return 0, NewError(ErrArgumentMismatch, "register", "illegal operation on no type")
}

func (NoType) Width() uint32     { return 0 }
func (NoType) Matches(Type) bool { return false }
func (NoType) Display() string   { return "<no type>" }
func (NoType) isType()           {}

// Vec2 is the GLSL vec2.
func Vec2() Vector { return Vector{Component: Float{}, Count: 2} }

// Vec3 is the GLSL vec3.
func Vec3() Vector { return Vector{Component: Float{}, Count: 3} }

// Vec4 is the GLSL vec4.
func Vec4() Vector { return Vector{Component: Float{}, Count: 4} }

// Mat2 is the GLSL mat2.
func Mat2() Matrix { return Matrix{Column: Vec2(), Count: 2} }

// Mat3 is the GLSL mat3.
func Mat3() Matrix { return Matrix{Column: Vec3(), Count: 3} }

// Mat4 is the GLSL mat4.
func Mat4() Matrix { return Matrix{Column: Vec4(), Count: 4} }
