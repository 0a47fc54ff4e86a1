package drawable

import (
	"fmt"

	"github.com/achilleasa/displaymgr/types"
)

// ID identifies the GPU vertex array backing a handle.
type ID uint32

// Handle describes the draw parameters of a single GPU-resident mesh. Two
// handles refer to the same mesh iff their IDs match; all other fields may
// change over the handle's lifetime.
type Handle struct {
	ID    ID
	Style Style

	// Number of vertices (or indices when UsesIndex is set) to draw.
	Count int32

	UsesIndex bool

	// Normalized RGB color pushed to the shader before drawing.
	Color types.Vec3
}

// Returns true if h and other refer to the same GPU resource.
func (h Handle) Same(other Handle) bool {
	return h.ID == other.ID
}

// Check that the handle can be drawn.
func (h Handle) Validate() error {
	if h.Count < 0 {
		return fmt.Errorf("drawable: handle %d has negative count %d", h.ID, h.Count)
	}
	if _, ok := styleNames[h.Style]; !ok {
		return fmt.Errorf("drawable: handle %d has unsupported style %s", h.ID, h.Style)
	}
	return nil
}

func (h Handle) String() string {
	return fmt.Sprintf("handle{id: %d, style: %s, count: %d, indexed: %t, color: %v}", h.ID, h.Style, h.Count, h.UsesIndex, h.Color)
}

// Releaser frees the GPU resource associated with a handle id.
type Releaser interface {
	ReleaseResource(id ID)
}

// ReleaserFunc adapts a plain function to the Releaser interface.
type ReleaserFunc func(id ID)

func (fn ReleaserFunc) ReleaseResource(id ID) {
	fn(id)
}

// Finalize releases the GPU resource backing h.
func (h Handle) Finalize(r Releaser) {
	r.ReleaseResource(h.ID)
}
