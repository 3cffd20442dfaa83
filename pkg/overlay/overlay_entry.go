// Package overlay owns the floating panels of anchored widgets: the layer
// they are mounted into, the optional backdrop below them, and the
// lifecycle that mounts, animates, and unmounts each panel.
package overlay

import (
	"sync/atomic"

	"github.com/go-drift/disclosure/pkg/placement"
)

// nextEntryID is an atomic counter for unique entry IDs.
var nextEntryID uint64

// NewEntry creates an Entry with a unique ID.
// Always use this constructor rather than literal struct creation
// to ensure proper keying.
func NewEntry(bounds func() placement.Rect) *Entry {
	return &Entry{
		Bounds: bounds,
		id:     atomic.AddUint64(&nextEntryID, 1),
	}
}

// Entry represents a single item in the layer stack.
type Entry struct {
	// Bounds reports the entry's area in viewport coordinates. Nil means
	// the entry covers the whole viewport.
	Bounds func() placement.Rect

	// Opaque entries absorb every hit test that reaches them, even outside
	// their bounds. Backdrops are opaque.
	Opaque bool

	// OnTap is called when a pointer-down hits this entry.
	OnTap func(p placement.Point)

	// Label names the entry in logs and traces.
	Label string

	layer *Layer // set by Layer on Insert, cleared on Remove
	id    uint64
}

// ID returns the entry's unique ID.
func (e *Entry) ID() uint64 {
	return e.id
}

// Mounted reports whether the entry is in a layer.
func (e *Entry) Mounted() bool {
	return e.layer != nil
}

// Remove removes this entry from its layer.
// Safe to call if not inserted or already removed (no-op).
func (e *Entry) Remove() {
	if e.layer == nil {
		return
	}
	e.layer.removeEntry(e)
}

// Contains reports whether p lies within the entry's bounds.
func (e *Entry) Contains(p placement.Point) bool {
	if e.Bounds == nil {
		return true
	}
	return e.Bounds().Contains(p)
}
