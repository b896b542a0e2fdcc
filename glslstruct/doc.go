// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glslstruct derives shader struct descriptions from Go types and
// from declarative definition files.
//
// Go struct fields map by shape:
//
//	float32          float
//	uint32           uint32_t
//	bool             bool
//	[N]float32       vecN        (N = 2..4)
//	[N]uint32        uvecN       (N = 2..4)
//	[C][R]float32    C columns of vecR
//	struct           nested struct
//
// A `glsl:"name,type"` tag overrides the member name (snake_case of the
// Go name by default) and, optionally, the type. `glsl:"-"` skips a field.
//
// The derived struct describes the GLSL block layout only. It says
// nothing about how the Go value is laid out in memory; uploads must
// still honor the layout rule chosen in shader.Options.
//
// Definition files list structs by name with typed fields:
//
//	[[struct]]
//	name = "Global"
//	fields = [
//	  { name = "camera", type = "mat4" },
//	  { name = "view", type = "mat4" },
//	]
//
// A field type is either a GLSL type name or the name of another struct
// in the same file.
package glslstruct
