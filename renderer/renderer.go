package renderer

import (
	"github.com/achilleasa/displaymgr/drawable"
	"github.com/achilleasa/displaymgr/types"
)

type Renderer interface {
	// Render frames until the surface asks to stop.
	Render() error

	// Release every registered drawable.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// Surface is implemented by hosts that own a window, a graphics context and
// a compiled shader program with a color uniform.
type Surface interface {
	drawable.Releaser

	// Returns true once the host wants the frame loop to exit.
	ShouldStop() bool

	// Forward pending input state to the host; may raise the stop signal.
	ProcessInput()

	// Process pending window-system events.
	PollEvents()

	// Present the rendered frame.
	PresentFrame()

	// Clear the color buffer.
	Clear()

	BindResource(id drawable.ID)
	SetColorUniform(color types.Vec3)
	DrawIndexed(style drawable.Style, count int32)
	DrawArray(style drawable.Style, count int32)

	// Get the first fatal failure reported by the graphics API, if any.
	Err() error
}
