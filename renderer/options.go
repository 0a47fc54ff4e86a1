package renderer

type Options struct {
	// Stop after rendering this many frames; 0 renders until the surface
	// asks to stop.
	MaxFrames uint64
}
