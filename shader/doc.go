// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shader is a typed embedding layer for building SPIR-V shader
// modules from Go.
//
// Building a module happens in two phases. First the program describes
// types (Vector, Matrix, Struct, ...), interface variables (InputVar,
// OutputVar, UniformVar, BuiltInVar) and operations (Load, Store, Mul,
// Transpose, Access, Vec3ToVec4, ...). Descriptions are plain values and
// type errors are reported as soon as an invalid node is composed. Then
// Shader.EntryPoint registers a function and everything it references:
// each type, constant and variable is emitted once and cached by its
// structural identity.
//
//	s := shader.New(shader.DefaultOptions())
//
//	position := shader.NewInputVar("position", shader.Vec3(), 0)
//	glPosition := shader.NewBuiltInVar("gl_Position", shader.Vec4(), spirv.BuiltInPosition)
//
//	pos, _ := shader.Load(position)
//	pos4, _ := shader.Vec3ToVec4(pos, 1.0)
//	store, _ := shader.Store(glPosition, pos4)
//
//	main := shader.NewFunction("main").Add(store).ReturnsVoid()
//	err := s.EntryPoint(shader.Vertex, main, position, glPosition)
//
//	module, err := s.Module()
//
// # Errors
//
// Composing functions return a *Error describing the mismatch. The
// Deferred* variants never fail; they return a *BadOp that reports the
// root cause when registered, for callers that assemble large expressions
// before inspecting them.
//
// # Layout
//
// Struct members are decorated with std140 offsets by default. The packed
// rule reproduces a plain running sum of member widths.
package shader
