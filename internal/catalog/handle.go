package catalog

import "sync/atomic"

// Handle is an atomically swappable reference to the active catalog.
// Schema evolution produces a wholly new catalog which is swapped in with
// Swap; readers see either the old or the new catalog in full, never a
// partial mix.
type Handle struct {
	ptr atomic.Pointer[Catalog]
}

// NewHandle creates a handle pointing at the given catalog.
func NewHandle(c *Catalog) *Handle {
	h := &Handle{}
	h.ptr.Store(c)
	return h
}

// Load returns the active catalog.
func (h *Handle) Load() *Catalog { return h.ptr.Load() }

// Swap replaces the active catalog and returns the previous one.
func (h *Handle) Swap(c *Catalog) *Catalog { return h.ptr.Swap(c) }
