// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shaders

import (
	"github.com/gogpu/spvc/shader"
	"github.com/gogpu/spvc/spirv"
)

// CameraVertex transforms a vertex position by the camera, view and
// projection matrices of the Global uniform at set 0, binding 0.
func CameraVertex(opts shader.Options) (*shader.Shader, error) {
	global, err := GlobalStruct()
	if err != nil {
		return nil, err
	}

	globals := shader.NewUniformVar("global", global, 0, 0)
	position := shader.NewInputVar("position", shader.Vec3(), 0)
	glPosition := shader.NewBuiltInVar("gl_Position", shader.Vec4(), spirv.BuiltInPosition)

	matrices := make([]shader.Op, 0, 4)
	for _, name := range []string{"camera", "view", "projection"} {
		m, err := loadField(globals, global, name)
		if err != nil {
			return nil, err
		}
		matrices = append(matrices, m)
	}

	value, err := shader.Load(position)
	if err != nil {
		return nil, err
	}
	pos4, err := shader.Vec3ToVec4(value, 1.0)
	if err != nil {
		return nil, err
	}

	clip, err := mulChain(append(matrices, pos4)...)
	if err != nil {
		return nil, err
	}
	store, err := shader.Store(glPosition, clip)
	if err != nil {
		return nil, err
	}

	s := shader.New(opts)
	main := shader.NewFunction("main").Add(store).ReturnsVoid()
	if err := s.EntryPoint(shader.Vertex, main, globals, position, glPosition); err != nil {
		return nil, err
	}
	return s, nil
}
