// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glslstruct

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/spvc/shader"
)

func TestLoad_Formats(t *testing.T) {
	for _, path := range []string{"testdata/pbr.toml", "testdata/pbr.yaml"} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			set, err := Load(path)
			require.NoError(t, err)

			structs := set.Structs()
			require.Len(t, structs, 3)
			assert.Equal(t, "Global", structs[0].Name)
			assert.Equal(t, "Model", structs[1].Name)
			assert.Equal(t, "Scene", structs[2].Name)

			global, ok := set.Struct("Global")
			require.True(t, ok)
			require.Len(t, global.Members, 3)
			for _, m := range global.Members {
				assert.True(t, m.Type.Matches(shader.Mat4()), m.Name)
			}

			model, _ := set.Struct("Model")
			fromGo, err := Of[Model]()
			require.NoError(t, err)
			assert.True(t, model.Matches(fromGo), "file and Go definitions must agree")

			scene, _ := set.Struct("Scene")
			assert.True(t, scene.Members[0].Type.Matches(global))
			assert.True(t, scene.Members[1].Type.Matches(model))
		})
	}
}

func TestLoad_UnknownExtension(t *testing.T) {
	_, err := Load("structs.json")
	assert.ErrorContains(t, err, "unknown definition format")
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := DecodeTOML(strings.NewReader(`
[[struct]]
name = "A"
feilds = [{ name = "x", type = "float" }]
`))
	assert.ErrorContains(t, err, "feilds")

	_, err = DecodeYAML(strings.NewReader(`
struct:
  - name: A
    feilds: []
`))
	assert.Error(t, err)
}

func TestResolve_Errors(t *testing.T) {
	_, err := Resolve([]Definition{{Name: "A"}, {Name: "A"}})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = Resolve([]Definition{
		{Name: "A", Fields: []Field{{Name: "b", Type: "B"}}},
		{Name: "B", Fields: []Field{{Name: "a", Type: "A"}}},
	})
	assert.ErrorIs(t, err, ErrCycle)

	_, err = Resolve([]Definition{{Name: "A", Fields: []Field{{Name: "x", Type: "Missing"}}}})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestResolve_ForwardReference(t *testing.T) {
	set, err := Resolve([]Definition{
		{Name: "Outer", Fields: []Field{{Name: "inner", Type: "Inner"}, {Name: "scale", Type: "float"}}},
		{Name: "Inner", Fields: []Field{{Name: "color", Type: "vec4"}}},
	})
	require.NoError(t, err)

	outer, ok := set.Struct("Outer")
	require.True(t, ok)
	assert.Equal(t, "struct Inner", outer.Members[0].Type.Display())
	assert.Equal(t, []uint32{0, 16}, shader.LayoutStd140.Offsets(outer))
}

func TestLoadTOML_MissingFile(t *testing.T) {
	_, err := LoadTOML(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("struct: [{name: A, fields: [{name: x, type: vec9}]}]"), 0o600))
	_, err = LoadYAML(path)
	assert.ErrorIs(t, err, ErrUnsupported)
}
