package opengl

import (
	"github.com/achilleasa/displaymgr/drawable"
	"github.com/achilleasa/displaymgr/mesh"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

// Upload the mesh vertices (and indices, if any) into a new vertex array and
// return a handle describing how to draw it. The vertex array is released
// when the handle is finalized via ReleaseResource.
func (s *Surface) Upload(m *mesh.Mesh) (drawable.Handle, error) {
	if err := m.Validate(); err != nil {
		return drawable.Handle{}, err
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	vertices := m.Flatten()
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)
	buffers := []uint32{vbo}

	if m.Indexed() {
		var ebo uint32
		gl.GenBuffers(1, &ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(m.Indices), gl.Ptr(m.Indices), gl.STATIC_DRAW)
		buffers = append(buffers, ebo)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
		gl.DeleteVertexArrays(1, &vao)
		return drawable.Handle{}, errors.Errorf("could not upload mesh %q: %s", m.Name, glErrorString(code))
	}

	id := drawable.ID(vao)
	s.buffers[id] = buffers
	logger.Debugf("uploaded mesh %q to vertex array %d (%d vertices, %d indices)", m.Name, vao, len(m.Vertices), len(m.Indices))
	return m.Handle(id), nil
}
