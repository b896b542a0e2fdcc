// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glslstruct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/spvc/shader"
)

type Model struct {
	Model               [4][4]float32
	BaseColorFactor     [4]float32
	UseBaseColorTexture bool `glsl:"use_base_color_texture"`
}

type Light struct {
	Direction [3]float32
	Intensity float32
	UVScale   [2]float32
	Flags     [4]uint32
	Normal    [3][3]float32 `glsl:"normal_matrix"`
	Mask      uint32        `glsl:",bool"`
	Model     Model
	Debug     string `glsl:"-"`
	scratch   int
}

func TestOf_Model(t *testing.T) {
	st, err := Of[Model]()
	require.NoError(t, err)

	assert.Equal(t, "Model", st.Name)
	require.Len(t, st.Members, 3)
	assert.Equal(t, "model", st.Members[0].Name)
	assert.True(t, st.Members[0].Type.Matches(shader.Mat4()))
	assert.Equal(t, "base_color_factor", st.Members[1].Name)
	assert.True(t, st.Members[1].Type.Matches(shader.Vec4()))
	assert.True(t, st.Members[2].Type.Matches(shader.Bool{}))
	assert.Equal(t, []uint32{0, 64, 80}, shader.LayoutStd140.Offsets(st))
}

func TestFromType_Shapes(t *testing.T) {
	st, err := Of[*Light]()
	require.NoError(t, err)

	want := []struct {
		name string
		ty   shader.Type
	}{
		{"direction", shader.Vec3()},
		{"intensity", shader.Float{}},
		{"uv_scale", shader.Vec2()},
		{"flags", shader.Vector{Component: shader.UnsignedInteger{}, Count: 4}},
		{"normal_matrix", shader.Mat3()},
		{"mask", shader.Bool{}},
	}
	require.Len(t, st.Members, len(want)+1)
	for i, w := range want {
		assert.Equal(t, w.name, st.Members[i].Name)
		assert.Equal(t, uint32(i), st.Members[i].Index)
		assert.True(t, st.Members[i].Type.Matches(w.ty), "%s: %s", w.name, st.Members[i].Type.Display())
	}

	nested := st.Members[len(want)]
	assert.Equal(t, "model", nested.Name)
	assert.Equal(t, "struct Model", nested.Type.Display())
}

func TestFromType_Unsupported(t *testing.T) {
	type wide struct{ V [5]float32 }
	type doubles struct{ D float64 }
	type uintMatrix struct{ M [3][3]uint32 }
	type badTag struct {
		F float32 `glsl:",dvec3"`
	}

	_, err := Of[wide]()
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = Of[doubles]()
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = Of[uintMatrix]()
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = Of[badTag]()
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = Of[int]()
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestParseType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"float", "float"},
		{"bool", "bool"},
		{"uint", "uint32_t"},
		{"vec2", "vec2[float]"},
		{"uvec3", "vec3[uint32_t]"},
		{"mat3", "mat3[vec3[float]]"},
		{"mat4x3", "mat4[vec3[float]]"},
		{"mat2x4", "mat2[vec4[float]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ty, err := ParseType(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ty.Display())
		})
	}

	for _, bad := range []string{"vec5", "vec", "mat4x", "mat4y3", "double", "vec22"} {
		_, err := ParseType(bad)
		assert.ErrorIs(t, err, ErrUnsupported, bad)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Model":               "model",
		"BaseColorFactor":     "base_color_factor",
		"UVScale":             "uv_scale",
		"TexCoord0":           "tex_coord0",
		"Light2Color":         "light2_color",
		"UseBaseColorTexture": "use_base_color_texture",
	}
	for in, want := range tests {
		assert.Equal(t, want, snakeCase(in), in)
	}
}
