// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shaders

import (
	"github.com/gogpu/spvc/shader"
	"github.com/gogpu/spvc/spirv"
)

// PBRVertex is the vertex stage of the PBR pipeline. It writes the clip
// position and passes normal and texture coordinates through.
//
//	set 0 binding 0: Global
//	set 1 binding 0: Model
//	in:  position@0 vec3, normal@1 vec3, tex_coord@2 vec2
//	out: v_normal@0 vec3, v_tex_coord@1 vec2, gl_Position
func PBRVertex(opts shader.Options) (*shader.Shader, error) {
	global, err := GlobalStruct()
	if err != nil {
		return nil, err
	}
	model, err := ModelStruct()
	if err != nil {
		return nil, err
	}

	globals := shader.NewUniformVar("global", global, 0, 0)
	models := shader.NewUniformVar("model", model, 1, 0)

	position := shader.NewInputVar("position", shader.Vec3(), 0)
	normal := shader.NewInputVar("normal", shader.Vec3(), 1)
	texCoord := shader.NewInputVar("tex_coord", shader.Vec2(), 2)

	vNormal := shader.NewOutputVar("v_normal", shader.Vec3(), 0)
	vTexCoord := shader.NewOutputVar("v_tex_coord", shader.Vec2(), 1)
	glPosition := shader.NewBuiltInVar("gl_Position", shader.Vec4(), spirv.BuiltInPosition)

	projection, err := loadField(globals, global, "projection")
	if err != nil {
		return nil, err
	}
	view, err := loadField(globals, global, "view")
	if err != nil {
		return nil, err
	}
	transform, err := loadField(models, model, "model")
	if err != nil {
		return nil, err
	}

	value, err := shader.Load(position)
	if err != nil {
		return nil, err
	}
	pos4, err := shader.Vec3ToVec4(value, 1.0)
	if err != nil {
		return nil, err
	}
	clip, err := mulChain(projection, view, transform, pos4)
	if err != nil {
		return nil, err
	}

	body := shader.NewFunction("main")
	for _, pair := range [][2]shader.Op{
		{glPosition, clip},
		{vNormal, normal},
		{vTexCoord, texCoord},
	} {
		store, err := passThrough(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		body.Add(store)
	}

	s := shader.New(opts)
	err = s.EntryPoint(shader.Vertex, body.ReturnsVoid(),
		globals, models, position, normal, texCoord, vNormal, vTexCoord, glPosition)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// passThrough stores source into dest, loading source first when it is a
// variable.
func passThrough(dest, source shader.Op) (*shader.StoreOp, error) {
	if _, ok := source.Type().(shader.Pointer); ok {
		value, err := shader.Load(source)
		if err != nil {
			return nil, err
		}
		source = value
	}
	return shader.Store(dest, source)
}

// PBRFragment is the fragment stage of the PBR pipeline. It outputs the
// material base color. It is composed with the deferred surface, so any
// typing mistake surfaces from EntryPoint.
//
//	set 1 binding 0: Model
//	in:  v_normal@0 vec3, v_tex_coord@1 vec2
//	out: color@0 vec4
func PBRFragment(opts shader.Options) (*shader.Shader, error) {
	model, err := ModelStruct()
	if err != nil {
		return nil, err
	}
	factor, err := field(model, "base_color_factor")
	if err != nil {
		return nil, err
	}

	models := shader.NewUniformVar("model", model, 1, 0)
	vNormal := shader.NewInputVar("v_normal", shader.Vec3(), 0)
	vTexCoord := shader.NewInputVar("v_tex_coord", shader.Vec2(), 1)
	color := shader.NewOutputVar("color", shader.Vec4(), 0)

	store := shader.DeferredStore(color, shader.DeferredLoad(shader.DeferredAccess(models, factor)))

	s := shader.New(opts)
	main := shader.NewFunction("main").Add(store).ReturnsVoid()
	if err := s.EntryPoint(shader.Fragment, main, models, vNormal, vTexCoord, color); err != nil {
		return nil, err
	}
	return s, nil
}
