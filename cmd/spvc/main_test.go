package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/spvc/shader"
	"github.com/gogpu/spvc/spirv"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func readModule(t *testing.T, path string) *spirv.Module {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	module, err := spirv.ModuleFromBytes(data)
	require.NoError(t, err)
	return module
}

func TestBuild_AllPrograms(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()

	out, err := run(t, "build", "--out", dir, "--jobs", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "built camera.vert")
	assert.Contains(t, out, "3 entry points")

	for _, name := range []string{"camera.vert", "pbr.vert", "pbr.frag"} {
		module := readModule(t, filepath.Join(dir, name+".spv"))
		eps, err := module.EntryPoints()
		require.NoError(t, err)
		assert.Len(t, eps, 1, name)
	}

	f, err := os.Open(filepath.Join(dir, interfacesFile))
	require.NoError(t, err)
	defer f.Close()
	ifaces, err := shader.DecodeInterfaces(f)
	require.NoError(t, err)
	assert.Len(t, ifaces, 3)
}

func TestBuild_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	config := filepath.Join(dir, "spvc.toml")
	require.NoError(t, os.WriteFile(config, []byte(`
out_dir = "`+filepath.ToSlash(outDir)+`"
version = "1.4"
layout = "packed"
shaders = ["camera.vert"]
interface_format = "none"
`), 0o600))

	_, err := run(t, "--config", config, "build")
	require.NoError(t, err)

	module := readModule(t, filepath.Join(outDir, "camera.vert.spv"))
	assert.Equal(t, spirv.Version1_4, module.Version())
	eps, err := module.EntryPoints()
	require.NoError(t, err)
	assert.Len(t, eps[0].Interfaces, 3, "1.4 lists the uniform block too")

	assert.NoFileExists(t, filepath.Join(outDir, "pbr.vert.spv"))
	assert.NoFileExists(t, filepath.Join(outDir, interfacesFile))
}

func TestBuild_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := run(t, "build", "--out", t.TempDir(), "missing.vert")
	assert.ErrorContains(t, err, `unknown program "missing.vert"`)

	_, err = run(t, "build", "--out", t.TempDir(), "--layout", "std430")
	assert.ErrorContains(t, err, "unknown layout")

	_, err = run(t, "build", "--out", t.TempDir(), "--spirv-version", "9.9")
	assert.ErrorContains(t, err, "unsupported SPIR-V version")
}

func TestConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "--config", filepath.Join(dir, "missing.toml"), "version")
	assert.Error(t, err, "an explicit config must exist")

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte(`outdir = "x"`), 0o600))
	_, err = run(t, "--config", unknown, "version")
	assert.ErrorContains(t, err, "outdir")

	badFormat := filepath.Join(dir, "format.toml")
	require.NoError(t, os.WriteFile(badFormat, []byte(`interface_format = "json"`), 0o600))
	_, err = run(t, "--config", badFormat, "version")
	assert.ErrorContains(t, err, "interface_format")
}

func TestDis(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "dis", "camera.vert")
	require.NoError(t, err)
	assert.Contains(t, out, "; SPIR-V")
	assert.Contains(t, out, "OpEntryPoint Vertex")
	assert.NotContains(t, out, "\x1b[", "--no-color must strip escapes")

	dir := t.TempDir()
	_, err = run(t, "build", "--out", dir, "pbr.frag")
	require.NoError(t, err)
	out, err = run(t, "dis", filepath.Join(dir, "pbr.frag.spv"))
	require.NoError(t, err)
	assert.Contains(t, out, "OriginUpperLeft")

	_, err = run(t, "dis", "nothing-here")
	assert.ErrorContains(t, err, "no such file or program")

	garbage := filepath.Join(dir, "garbage.spv")
	require.NoError(t, os.WriteFile(garbage, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 0o600))
	_, err = run(t, "dis", garbage)
	assert.Error(t, err)
}

func TestLayout(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "layout")
	require.NoError(t, err)
	assert.Contains(t, out, "struct Global (std140 192 bytes, packed 192 bytes)")
	assert.Contains(t, out, "base_color_factor")

	defs := filepath.Join(t.TempDir(), "defs.yaml")
	require.NoError(t, os.WriteFile(defs, []byte(`
struct:
  - name: Light
    fields:
      - { name: intensity, type: float }
      - { name: direction, type: vec3 }
`), 0o600))
	out, err = run(t, "layout", defs)
	require.NoError(t, err)
	assert.Contains(t, out, "struct Light (std140 32 bytes, packed 16 bytes)")
	assert.Regexp(t, `direction\s+vec3\[float\]\s+16\s+4`, out)
}

func TestVersion(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "spvc version "+spvcVersion)
}
