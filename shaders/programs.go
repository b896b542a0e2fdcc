// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shaders

import (
	"sort"

	"github.com/gogpu/spvc/shader"
)

// Program is a named shader build.
type Program struct {
	Name  string
	Kind  shader.ShaderKind
	Build func(shader.Options) (*shader.Shader, error)
}

var programs = map[string]Program{
	"camera.vert": {Name: "camera.vert", Kind: shader.Vertex, Build: CameraVertex},
	"pbr.vert":    {Name: "pbr.vert", Kind: shader.Vertex, Build: PBRVertex},
	"pbr.frag":    {Name: "pbr.frag", Kind: shader.Fragment, Build: PBRFragment},
}

// Lookup returns the program with the given name.
func Lookup(name string) (Program, bool) {
	p, ok := programs[name]
	return p, ok
}

// Names returns all program names, sorted.
func Names() []string {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
