package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/displaymgr/drawable"
	"github.com/achilleasa/displaymgr/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneYaml = `
log_level: debug
window:
  width: 640
  height: 480
  title: test scene
clear_color: [0.1, 0.2, 0.3]
meshes:
  - name: tri
    style: triangles
    color: [1, 0, 0]
    vertices: [[100, 100], [200, 100], [150, 200]]
  - name: hex
    style: triangle_fan
    color: [0, 1, 0]
    polygon:
      center: [320, 240]
      radius: 50
      sides: 6
  - name: box
    style: triangles
    color: [0, 0, 1]
    rect:
      min: [10, 10]
      max: [60, 40]
    offset: [5, 5]
`

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sceneYaml))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, Window{Width: 640, Height: 480, Title: "test scene"}, cfg.Window)
	assert.Equal(t, types.XYZ(0.1, 0.2, 0.3), cfg.Clear())

	meshes, err := cfg.BuildMeshes()
	require.NoError(t, err)
	require.Len(t, meshes, 3)

	assert.Equal(t, "tri", meshes[0].Name)
	assert.Equal(t, drawable.Triangles, meshes[0].Style)
	assert.False(t, meshes[0].Indexed())
	assert.Equal(t, int32(3), meshes[0].Count())

	assert.Equal(t, drawable.TriangleFan, meshes[1].Style)
	assert.Equal(t, int32(8), meshes[1].Count())

	assert.True(t, meshes[2].Indexed())
	assert.Equal(t, int32(6), meshes[2].Count())
	assert.Equal(t, types.XY(15, 15), meshes[2].Vertices[0])
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	meshes, err := cfg.BuildMeshes()
	require.NoError(t, err)
	assert.Empty(t, meshes)
}

func TestParseErrors(t *testing.T) {
	type spec struct {
		yaml   string
		expErr string
	}
	specs := []spec{
		{"window: {width: 0}", "invalid window dimensions 0x600"},
		{"clear_color: [1, 1]", "clear_color: expected 3 components; got 2"},
		{"clear_color: [1, 1, 2]", "outside [0, 1]"},
		{"unknown_key: 1", "could not decode yaml"},
	}

	for index, s := range specs {
		_, err := Parse(strings.NewReader(s.yaml))
		require.Error(t, err, "spec %d", index)
		assert.Contains(t, err.Error(), s.expErr, "spec %d", index)
	}
}

func TestBuildMeshErrors(t *testing.T) {
	type spec struct {
		def    Mesh
		expErr string
	}
	specs := []spec{
		{Mesh{Name: "a", Style: "quads", Color: []float32{1, 1, 1}}, `unknown draw style "quads"`},
		{Mesh{Name: "b", Style: "lines", Color: []float32{1}}, "color: expected 3 components"},
		{Mesh{Name: "c", Style: "lines", Color: []float32{1, 1, 1}}, "exactly one of"},
		{
			Mesh{
				Name: "d", Style: "lines", Color: []float32{1, 1, 1},
				Vertices: [][]float32{{0, 0}},
				Rect:     &Rect{Min: []float32{0, 0}, Max: []float32{1, 1}},
			},
			"exactly one of",
		},
		{
			Mesh{Name: "e", Style: "lines", Color: []float32{1, 1, 1}, Vertices: [][]float32{{0, 0, 0}}},
			"vertices: expected 2 components; got 3",
		},
		{
			Mesh{Name: "f", Style: "lines", Color: []float32{1, 1, 1}, Vertices: [][]float32{{0, 0}}, Indices: []uint32{1}},
			"out of range",
		},
		{
			Mesh{Name: "g", Style: "triangle_fan", Color: []float32{1, 1, 1}, Polygon: &Polygon{Center: []float32{0, 0}, Radius: 1, Sides: 2}},
			"at least 3 sides",
		},
	}

	for index, s := range specs {
		_, err := s.def.Build()
		require.Error(t, err, "spec %d", index)
		assert.Contains(t, err.Error(), s.expErr, "spec %d", index)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Meshes, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not open scene file")
}

func TestExampleScene(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "examples", "scene.yaml"))
	require.NoError(t, err)

	meshes, err := cfg.BuildMeshes()
	require.NoError(t, err)
	require.Len(t, meshes, 4)
	assert.Equal(t, drawable.LineLoop, meshes[3].Style)
}

func TestShaderSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shaders"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shaders", "flat.vert"), []byte("// vertex"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shaders", "empty.frag"), []byte("  \n"), 0o644))

	scenePath := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(scenePath, []byte("shaders:\n  vertex: shaders/flat.vert\n"), 0o644))

	cfg, err := Load(scenePath)
	require.NoError(t, err)
	vertex, fragment, err := cfg.ShaderSources()
	require.NoError(t, err)
	assert.Equal(t, "// vertex", vertex)
	assert.Empty(t, fragment)

	cfg.Shaders.Fragment = "shaders/empty.frag"
	_, _, err = cfg.ShaderSources()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fragment shader")
	assert.Contains(t, err.Error(), "is empty")

	cfg.Shaders.Vertex = "shaders/missing.vert"
	_, _, err = cfg.ShaderSources()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vertex shader")
}
