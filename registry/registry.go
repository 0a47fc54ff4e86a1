// Package registry tracks the drawable handles that make up each frame.
//
// A Registry is an ordered list of handles keyed by drawable.ID. The order in
// which handles are registered is the order in which they get drawn. All
// lookups are linear scans; a registry is expected to hold tens of handles,
// not millions.
//
// A Registry is not safe for concurrent use. It is meant to be mutated from
// the thread that owns the graphics context, and must not be mutated from
// within an Each callback.
package registry

import (
	"github.com/achilleasa/displaymgr/drawable"
	"github.com/achilleasa/displaymgr/log"
)

var logger = log.New("registry")

type Registry struct {
	handles  []drawable.Handle
	releaser drawable.Releaser
	closed   bool
}

// Create a new registry. The releaser is invoked exactly once for every
// handle that leaves the registry via Deregister or Close.
func New(releaser drawable.Releaser) *Registry {
	return &Registry{
		releaser: releaser,
	}
}

// Append h to the draw list. No identity check is performed; callers that
// cannot guarantee uniqueness should use Update instead.
func (r *Registry) Register(h drawable.Handle) {
	if r.closed {
		logger.Warningf("ignoring register of %d on closed registry", h.ID)
		return
	}
	r.handles = append(r.handles, h)
}

// Replace the entry sharing h's identity, keeping its position in the draw
// order. If no such entry exists h is registered instead; this upsert
// behavior is intentional.
func (r *Registry) Update(h drawable.Handle) {
	if r.closed {
		logger.Warningf("ignoring update of %d on closed registry", h.ID)
		return
	}

	if index := r.indexOf(h.ID); index != -1 {
		r.handles[index] = h
		return
	}

	logger.Debugf("update: handle %d not registered; registering it", h.ID)
	r.Register(h)
}

// Finalize and remove the entry sharing h's identity. Removing a handle that
// is not registered is a no-op.
func (r *Registry) Deregister(h drawable.Handle) {
	r.DeregisterID(h.ID)
}

// Finalize and remove the entry with the given id. The relative order of the
// remaining entries is preserved.
func (r *Registry) DeregisterID(id drawable.ID) {
	index := r.indexOf(id)
	if index == -1 {
		logger.Debugf("deregister: handle %d not registered", id)
		return
	}

	r.handles[index].Finalize(r.releaser)
	r.handles = append(r.handles[:index], r.handles[index+1:]...)
}

// Deregister all remaining handles. Further mutations are ignored.
func (r *Registry) Close() {
	if r.closed {
		return
	}

	for len(r.handles) != 0 {
		r.DeregisterID(r.handles[0].ID)
	}
	r.closed = true
}

// Get the entry with the given id.
func (r *Registry) Lookup(id drawable.ID) (drawable.Handle, bool) {
	if index := r.indexOf(id); index != -1 {
		return r.handles[index], true
	}
	return drawable.Handle{}, false
}

// Number of live handles.
func (r *Registry) Len() int {
	return len(r.handles)
}

// Get a copy of the live handles in draw order.
func (r *Registry) Handles() []drawable.Handle {
	out := make([]drawable.Handle, len(r.handles))
	copy(out, r.handles)
	return out
}

// Invoke fn for each live handle in draw order.
func (r *Registry) Each(fn func(drawable.Handle)) {
	for _, h := range r.handles {
		fn(h)
	}
}

func (r *Registry) indexOf(id drawable.ID) int {
	for index, h := range r.handles {
		if h.ID == id {
			return index
		}
	}
	return -1
}
