package overlay

import "github.com/go-drift/disclosure/pkg/placement"

// NewBackdrop creates a full-viewport entry that absorbs every pointer-down
// below the panel it guards. When dismissible, a tap calls onDismiss;
// otherwise taps are swallowed.
func NewBackdrop(dismissible bool, onDismiss func()) *Entry {
	e := NewEntry(nil)
	e.Opaque = true
	e.Label = "backdrop"
	e.OnTap = func(placement.Point) {
		if dismissible && onDismiss != nil {
			onDismiss()
		}
	}
	return e
}
