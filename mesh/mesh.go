// Package mesh builds the 2D vertex data that producers upload to the GPU
// before registering the resulting drawables. Vertex coordinates are in
// window pixels with the origin at the top-left corner.
package mesh

import (
	"fmt"

	"github.com/achilleasa/displaymgr/drawable"
	"github.com/achilleasa/displaymgr/types"
)

type Mesh struct {
	Name     string
	Style    drawable.Style
	Color    types.Vec3
	Vertices []types.Vec2

	// Optional; when present the mesh is drawn with the indexed path.
	Indices []uint32
}

// Returns true if the mesh should be drawn using its index buffer.
func (m *Mesh) Indexed() bool {
	return len(m.Indices) != 0
}

// Number of elements passed to the draw call.
func (m *Mesh) Count() int32 {
	if m.Indexed() {
		return int32(len(m.Indices))
	}
	return int32(len(m.Vertices))
}

// Check that the mesh has vertices, a supported style and that every index is
// in range.
func (m *Mesh) Validate() error {
	if err := m.Handle(0).Validate(); err != nil {
		return fmt.Errorf("mesh %q: %s", m.Name, err.Error())
	}
	if len(m.Vertices) == 0 {
		return fmt.Errorf("mesh %q: no vertices defined", m.Name)
	}
	for pos, index := range m.Indices {
		if int(index) >= len(m.Vertices) {
			return fmt.Errorf("mesh %q: index %d at position %d out of range (%d vertices)", m.Name, index, pos, len(m.Vertices))
		}
	}
	return nil
}

// Build the drawable handle for this mesh once it has been uploaded to the
// vertex array identified by id.
func (m *Mesh) Handle(id drawable.ID) drawable.Handle {
	return drawable.Handle{
		ID:        id,
		Style:     m.Style,
		Count:     m.Count(),
		UsesIndex: m.Indexed(),
		Color:     m.Color,
	}
}

// Flatten the vertex list into the interleaved x, y layout expected by the
// vertex buffer.
func (m *Mesh) Flatten() []float32 {
	out := make([]float32, 0, 2*len(m.Vertices))
	for _, v := range m.Vertices {
		out = append(out, v[0], v[1])
	}
	return out
}
