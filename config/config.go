// Package config loads scene files describing the display window, the shader
// program and the meshes to register at startup.
package config

import (
	"bytes"
	"io"
	"strings"

	"github.com/achilleasa/displaymgr/asset"
	"github.com/achilleasa/displaymgr/drawable"
	"github.com/achilleasa/displaymgr/mesh"
	"github.com/achilleasa/displaymgr/types"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "displaymgr"
)

type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// Paths to shader sources. Empty paths select the built-in shaders.
type Shaders struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type Polygon struct {
	Center []float32 `yaml:"center"`
	Radius float32   `yaml:"radius"`
	Sides  int       `yaml:"sides"`
}

type Rect struct {
	Min []float32 `yaml:"min"`
	Max []float32 `yaml:"max"`
}

// A mesh is defined by exactly one of Vertices, Polygon or Rect.
type Mesh struct {
	Name     string      `yaml:"name"`
	Style    string      `yaml:"style"`
	Color    []float32   `yaml:"color"`
	Vertices [][]float32 `yaml:"vertices"`
	Indices  []uint32    `yaml:"indices"`
	Polygon  *Polygon    `yaml:"polygon"`
	Rect     *Rect       `yaml:"rect"`

	// Optional transformation applied around the mesh centroid.
	Scale  float32   `yaml:"scale"`
	Rotate float32   `yaml:"rotate"`
	Offset []float32 `yaml:"offset"`
}

type Config struct {
	LogLevel   string    `yaml:"log_level"`
	Window     Window    `yaml:"window"`
	ClearColor []float32 `yaml:"clear_color"`
	Shaders    Shaders   `yaml:"shaders"`
	Meshes     []Mesh    `yaml:"meshes"`

	// Where the config was loaded from; shader paths are relative to it.
	origin *asset.Resource
}

// Create a config with an empty scene and default window settings.
func Default() *Config {
	return &Config{
		LogLevel: "notice",
		Window: Window{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
		ClearColor: []float32{0, 0, 0},
	}
}

// Load a config from a local yaml file or an http(s) URL.
func Load(path string) (*Config, error) {
	res, err := asset.Open(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "config: could not open scene file")
	}
	data, err := res.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	cfg.origin = res
	return cfg, nil
}

// Parse a yaml config. Missing settings keep their default values.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "could not decode yaml")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Check window settings and color components.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("invalid window dimensions %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := vec3(c.ClearColor); err != nil {
		return errors.Wrap(err, "clear_color")
	}
	return nil
}

// Read the vertex and fragment shader sources. Relative paths are resolved
// against the location of the scene file. An empty source is returned for
// shaders that are not set so the caller can fall back to its defaults.
func (c *Config) ShaderSources() (vertex, fragment string, err error) {
	if vertex, err = c.readShader(c.Shaders.Vertex); err != nil {
		return "", "", errors.Wrap(err, "vertex shader")
	}
	if fragment, err = c.readShader(c.Shaders.Fragment); err != nil {
		return "", "", errors.Wrap(err, "fragment shader")
	}
	return vertex, fragment, nil
}

func (c *Config) readShader(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	res, err := asset.Open(path, c.origin)
	if err != nil {
		return "", err
	}
	data, err := res.ReadAll()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.Errorf("shader source %q is empty", path)
	}
	return string(data), nil
}

// Get the clear color.
func (c *Config) Clear() types.Vec3 {
	color, _ := vec3(c.ClearColor)
	return color
}

// Build the meshes described by the config, in declaration order.
func (c *Config) BuildMeshes() ([]*mesh.Mesh, error) {
	out := make([]*mesh.Mesh, 0, len(c.Meshes))
	for index, def := range c.Meshes {
		m, err := def.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %d", index)
		}
		out = append(out, m)
	}
	return out, nil
}

// Build the mesh described by this definition.
func (def *Mesh) Build() (*mesh.Mesh, error) {
	style, err := drawable.ParseStyle(def.Style)
	if err != nil {
		return nil, err
	}

	color, err := vec3(def.Color)
	if err != nil {
		return nil, errors.Wrap(err, "color")
	}

	m := &mesh.Mesh{
		Name:  def.Name,
		Style: style,
		Color: color,
	}

	var sources int
	if len(def.Vertices) != 0 {
		sources++
		for _, v := range def.Vertices {
			vertex, err := vec2(v)
			if err != nil {
				return nil, errors.Wrap(err, "vertices")
			}
			m.Vertices = append(m.Vertices, vertex)
		}
		m.Indices = def.Indices
	}
	if def.Polygon != nil {
		sources++
		center, err := vec2(def.Polygon.Center)
		if err != nil {
			return nil, errors.Wrap(err, "polygon center")
		}
		if m.Vertices, err = mesh.Polygon(center, def.Polygon.Radius, def.Polygon.Sides); err != nil {
			return nil, err
		}
	}
	if def.Rect != nil {
		sources++
		min, err := vec2(def.Rect.Min)
		if err != nil {
			return nil, errors.Wrap(err, "rect min")
		}
		max, err := vec2(def.Rect.Max)
		if err != nil {
			return nil, errors.Wrap(err, "rect max")
		}
		if m.Vertices, m.Indices, err = mesh.Rect(min, max); err != nil {
			return nil, err
		}
	}
	if sources != 1 {
		return nil, errors.Errorf("mesh %q must define exactly one of vertices, polygon or rect", def.Name)
	}

	if def.Scale != 0 || def.Rotate != 0 || len(def.Offset) != 0 {
		scale := def.Scale
		if scale == 0 {
			scale = 1
		}
		var offset types.Vec2
		if len(def.Offset) != 0 {
			if offset, err = vec2(def.Offset); err != nil {
				return nil, errors.Wrap(err, "offset")
			}
		}
		m.Vertices = mesh.Transform(m.Vertices, mesh.Centroid(m.Vertices), scale, def.Rotate, offset)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func vec2(v []float32) (types.Vec2, error) {
	if len(v) != 2 {
		return types.Vec2{}, errors.Errorf("expected 2 components; got %d", len(v))
	}
	return types.XY(v[0], v[1]), nil
}

func vec3(v []float32) (types.Vec3, error) {
	if len(v) != 3 {
		return types.Vec3{}, errors.Errorf("expected 3 components; got %d", len(v))
	}
	for _, c := range v {
		if c < 0 || c > 1 {
			return types.Vec3{}, errors.Errorf("color component %f outside [0, 1]", c)
		}
	}
	return types.XYZ(v[0], v[1], v[2]), nil
}
