package renderer

import "errors"

var (
	ErrNoSurface      = errors.New("renderer: no surface defined")
	ErrNoRegistry     = errors.New("renderer: no registry defined")
	ErrSurfaceFailure = errors.New("renderer: surface reported a fatal error")
)
