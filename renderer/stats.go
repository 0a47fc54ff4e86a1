package renderer

import "time"

type FrameStats struct {
	// Number of presented frames.
	Frames uint64

	// Draw calls issued through each path.
	ArrayDraws   uint64
	IndexedDraws uint64

	// Handles drawn in the last frame.
	LastFrameHandles int

	// Total time spent inside the frame loop and the slowest frame.
	RenderTime   time.Duration
	MaxFrameTime time.Duration
}

// Total number of draw calls.
func (s FrameStats) DrawCalls() uint64 {
	return s.ArrayDraws + s.IndexedDraws
}

// Average time per frame.
func (s FrameStats) AvgFrameTime() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.RenderTime / time.Duration(s.Frames)
}
