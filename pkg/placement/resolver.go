package placement

import (
	"github.com/go-drift/disclosure/pkg/errors"
)

// Result is the outcome of resolving a list against a viewport.
type Result struct {
	Candidate Candidate
	// Index is the candidate's position in the list, -1 for Default.
	Index int
	// Bounds is where the panel goes in viewport coordinates.
	Bounds Rect
	// Fits reports whether Bounds lies fully within the viewport.
	Fits bool
	// Overflow is the panel area outside the viewport.
	Overflow float64
}

// Project returns the panel bounds for a candidate.
func Project(anchor Rect, overlay Size, c Candidate) Rect {
	ax := hPoint(anchor.X, anchor.Width, c.Anchor.X)
	ay := vPoint(anchor.Y, anchor.Height, c.Anchor.Y)
	ox := hPoint(0, overlay.Width, c.Overlay.X)
	oy := vPoint(0, overlay.Height, c.Overlay.Y)
	return Rect{
		X:      ax - ox + c.OffsetX,
		Y:      ay - oy + c.OffsetY,
		Width:  overlay.Width,
		Height: overlay.Height,
	}
}

func hPoint(x, width float64, a HAlign) float64 {
	switch a {
	case Center:
		return x + width/2
	case Right:
		return x + width
	default:
		return x
	}
}

func vPoint(y, height float64, a VAlign) float64 {
	switch a {
	case Middle:
		return y + height/2
	case Bottom:
		return y + height
	default:
		return y
	}
}

// overflow returns how much of the panel falls outside the viewport.
func overflow(bounds, viewport Rect) float64 {
	return bounds.Area() - bounds.Intersect(viewport).Area()
}

// Resolve returns the first candidate whose projected bounds lie fully
// within the viewport. If none fit, it returns the candidate with the least
// overflow, ties broken by list order. An empty list resolves to Default.
func Resolve(anchor Rect, overlay Size, viewport Rect, list List) Result {
	if len(list) == 0 {
		errors.Report(&errors.OverlayError{
			Op:   "placement.Resolve",
			Kind: errors.KindPlacement,
			Err:  errors.ErrEmptyPlacements,
		})
		bounds := Project(anchor, overlay, Default)
		return Result{
			Candidate: Default,
			Index:     -1,
			Bounds:    bounds,
			Fits:      viewport.ContainsRect(bounds),
			Overflow:  overflow(bounds, viewport),
		}
	}

	best := Result{Index: -1}
	for i, c := range list {
		bounds := Project(anchor, overlay, c)
		if viewport.ContainsRect(bounds) {
			return Result{Candidate: c, Index: i, Bounds: bounds, Fits: true}
		}
		over := overflow(bounds, viewport)
		if best.Index < 0 || over < best.Overflow {
			best = Result{Candidate: c, Index: i, Bounds: bounds, Overflow: over}
		}
	}
	return best
}

// Tracker remembers the last chosen candidate and reports changes.
type Tracker struct {
	last  string
	valid bool
}

// Update records r and reports whether its candidate differs from the
// previous one. The first update always reports a change.
func (t *Tracker) Update(r Result) bool {
	changed := !t.valid || t.last != r.Candidate.Name
	t.last = r.Candidate.Name
	t.valid = true
	return changed
}

// Last returns the last recorded candidate name.
func (t *Tracker) Last() (string, bool) {
	return t.last, t.valid
}

// Reset forgets the last candidate.
func (t *Tracker) Reset() {
	t.last = ""
	t.valid = false
}
