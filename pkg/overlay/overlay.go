package overlay

import (
	"sync/atomic"

	"github.com/go-drift/disclosure/pkg/placement"
)

// Layer manages a stack of entries above the page content. Later entries
// paint above earlier ones and receive hit tests first.
//
// A Layer is shared by every widget of one host surface; each lifecycle
// mounts at most one panel entry (plus an optional backdrop) into it.
type Layer struct {
	// OnChange is called after the stack changes so the host can repaint.
	OnChange func()

	entries []*Entry
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

// Entries returns the stack from bottom to top.
func (l *Layer) Entries() []*Entry {
	out := make([]*Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of mounted entries.
func (l *Layer) Len() int {
	return len(l.entries)
}

// Insert adds entry to the layer.
// Positioning: exactly one of below/above may be non-nil.
//   - below non-nil: inserts just below that entry
//   - above non-nil: inserts just above that entry
//   - both nil: inserts at top
//
// Panics if both below AND above are non-nil (ambiguous).
// Panics if entry is already inserted to any layer.
func (l *Layer) Insert(entry, below, above *Entry) {
	if below != nil && above != nil {
		panic("overlay: both below and above specified")
	}
	if entry.layer != nil {
		panic("overlay: entry already inserted")
	}
	entry.layer = l

	// Assign ID if missing (fallback for literal construction)
	if entry.id == 0 {
		entry.id = atomic.AddUint64(&nextEntryID, 1)
	}

	l.insertIntoEntries(entry, below, above)
	l.changed()
}

// HitTest returns the topmost entry hit by p, or nil when p falls through
// to the page content. Opaque entries stop the search.
func (l *Layer) HitTest(p placement.Point) *Entry {
	for i := len(l.entries) - 1; i >= 0; i-- {
		entry := l.entries[i]
		if entry.Contains(p) || entry.Opaque {
			return entry
		}
	}
	return nil
}

// Tap hit-tests p and delivers it to the entry's OnTap. It reports
// whether an entry received the tap.
func (l *Layer) Tap(p placement.Point) bool {
	entry := l.HitTest(p)
	if entry == nil {
		return false
	}
	if entry.OnTap != nil {
		entry.OnTap(p)
	}
	return true
}

func (l *Layer) insertIntoEntries(entry, below, above *Entry) {
	if below != nil {
		for i, e := range l.entries {
			if e == below {
				l.entries = append(l.entries[:i], append([]*Entry{entry}, l.entries[i:]...)...)
				return
			}
		}
		// below not found, insert at bottom
		l.entries = append([]*Entry{entry}, l.entries...)
	} else if above != nil {
		for i, e := range l.entries {
			if e == above {
				l.entries = append(l.entries[:i+1], append([]*Entry{entry}, l.entries[i+1:]...)...)
				return
			}
		}
		// above not found, insert at top
		l.entries = append(l.entries, entry)
	} else {
		l.entries = append(l.entries, entry)
	}
}

func (l *Layer) removeEntry(entry *Entry) {
	// Skip if entry was already removed or re-inserted elsewhere
	if entry.layer != l {
		return
	}
	entry.layer = nil
	for i, e := range l.entries {
		if e == entry {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			l.changed()
			break
		}
	}
}

func (l *Layer) changed() {
	if l.OnChange != nil {
		l.OnChange()
	}
}
