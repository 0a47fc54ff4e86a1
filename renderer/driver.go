package renderer

import (
	"time"

	"github.com/achilleasa/displaymgr/drawable"
	"github.com/achilleasa/displaymgr/log"
	"github.com/achilleasa/displaymgr/registry"
	"github.com/pkg/errors"
)

var logger = log.New("renderer")

var _ Renderer = (*Driver)(nil)

// Driver runs the frame loop: every frame it draws each registered handle,
// in registry order, on the attached surface.
type Driver struct {
	surface  Surface
	registry *registry.Registry
	options  Options
	stats    FrameStats
}

// Create a frame driver for the specified surface and registry.
func NewDriver(surface Surface, reg *registry.Registry, opts Options) (*Driver, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if reg == nil {
		return nil, ErrNoRegistry
	}

	return &Driver{
		surface:  surface,
		registry: reg,
		options:  opts,
	}, nil
}

// Render frames until the surface raises its stop signal, the frame limit is
// reached or the surface reports a failure. Surface failures are not retried.
func (d *Driver) Render() error {
	logger.Infof("entering frame loop with %d registered handles", d.registry.Len())
	for !d.surface.ShouldStop() {
		if d.options.MaxFrames != 0 && d.stats.Frames >= d.options.MaxFrames {
			break
		}

		if err := d.RenderFrame(); err != nil {
			return err
		}
	}
	logger.Infof("left frame loop after %d frames", d.stats.Frames)
	return nil
}

// Render and present a single frame.
func (d *Driver) RenderFrame() error {
	start := time.Now()

	d.surface.ProcessInput()
	d.surface.Clear()

	handles := 0
	d.registry.Each(func(h drawable.Handle) {
		d.draw(h)
		handles++
	})

	d.surface.PresentFrame()
	d.surface.PollEvents()

	frameTime := time.Since(start)
	d.stats.Frames++
	d.stats.LastFrameHandles = handles
	d.stats.RenderTime += frameTime
	if frameTime > d.stats.MaxFrameTime {
		d.stats.MaxFrameTime = frameTime
	}

	if err := d.surface.Err(); err != nil {
		logger.Errorf("frame %d: %s", d.stats.Frames, err.Error())
		return errors.Wrapf(ErrSurfaceFailure, "frame %d: %s", d.stats.Frames, err.Error())
	}
	return nil
}

func (d *Driver) draw(h drawable.Handle) {
	d.surface.BindResource(h.ID)
	d.surface.SetColorUniform(h.Color)
	if h.UsesIndex {
		d.surface.DrawIndexed(h.Style, h.Count)
		d.stats.IndexedDraws++
	} else {
		d.surface.DrawArray(h.Style, h.Count)
		d.stats.ArrayDraws++
	}
}

// Get the registry drawn by this driver.
func (d *Driver) Registry() *registry.Registry {
	return d.registry
}

// Get render statistics.
func (d *Driver) Stats() FrameStats {
	return d.stats
}

// Deregister every handle, releasing their GPU resources. The surface itself
// is owned by the caller.
func (d *Driver) Close() {
	d.registry.Close()
}
