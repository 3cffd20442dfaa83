package placement

import (
	"fmt"

	"github.com/go-drift/disclosure/pkg/errors"
)

// HAlign is a horizontal attachment point.
type HAlign int

const (
	Left HAlign = iota
	Center
	Right
)

// VAlign is a vertical attachment point.
type VAlign int

const (
	Top VAlign = iota
	Middle
	Bottom
)

// Origin is a point on a box, expressed by its horizontal and vertical sides.
type Origin struct {
	X HAlign
	Y VAlign
}

// Candidate is one way to attach a panel to its anchor.
type Candidate struct {
	Name string
	// Anchor is the point on the anchor the panel attaches to.
	Anchor Origin
	// Overlay is the point on the panel that touches Anchor.
	Overlay Origin
	OffsetX float64
	OffsetY float64
}

// List is an ordered sequence of candidates, tried first to last.
type List []Candidate

// Names returns the candidate names in order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, c := range l {
		names[i] = c.Name
	}
	return names
}

// Contains reports whether a candidate with the given name is in the list.
func (l List) Contains(name string) bool {
	for _, c := range l {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Default is used when a list is empty: centered below the anchor.
var Default = Candidate{
	Name:    "bottom",
	Anchor:  Origin{X: Center, Y: Bottom},
	Overlay: Origin{X: Center, Y: Top},
}

// Positions is the table of named candidates.
var Positions = map[string]Candidate{
	"top":          {Name: "top", Anchor: Origin{Center, Top}, Overlay: Origin{Center, Bottom}},
	"topCenter":    {Name: "topCenter", Anchor: Origin{Center, Top}, Overlay: Origin{Center, Bottom}},
	"topLeft":      {Name: "topLeft", Anchor: Origin{Left, Top}, Overlay: Origin{Left, Bottom}},
	"topRight":     {Name: "topRight", Anchor: Origin{Right, Top}, Overlay: Origin{Right, Bottom}},
	"right":        {Name: "right", Anchor: Origin{Right, Middle}, Overlay: Origin{Left, Middle}},
	"rightTop":     {Name: "rightTop", Anchor: Origin{Right, Top}, Overlay: Origin{Left, Top}},
	"rightBottom":  {Name: "rightBottom", Anchor: Origin{Right, Bottom}, Overlay: Origin{Left, Bottom}},
	"bottom":       {Name: "bottom", Anchor: Origin{Center, Bottom}, Overlay: Origin{Center, Top}},
	"bottomCenter": {Name: "bottomCenter", Anchor: Origin{Center, Bottom}, Overlay: Origin{Center, Top}},
	"bottomLeft":   {Name: "bottomLeft", Anchor: Origin{Left, Bottom}, Overlay: Origin{Left, Top}},
	"bottomRight":  {Name: "bottomRight", Anchor: Origin{Right, Bottom}, Overlay: Origin{Right, Top}},
	"left":         {Name: "left", Anchor: Origin{Left, Middle}, Overlay: Origin{Right, Middle}},
	"leftTop":      {Name: "leftTop", Anchor: Origin{Left, Top}, Overlay: Origin{Right, Top}},
	"leftBottom":   {Name: "leftBottom", Anchor: Origin{Left, Bottom}, Overlay: Origin{Right, Bottom}},
}

// Lookup returns the named candidate.
func Lookup(name string) (Candidate, bool) {
	c, ok := Positions[name]
	return c, ok
}

// Named builds a list from position names, in order. Unknown names are
// skipped and reported; duplicates are kept once.
func Named(names ...string) List {
	list := make(List, 0, len(names))
	for _, name := range names {
		c, ok := Positions[name]
		if !ok {
			errors.Report(&errors.OverlayError{
				Op:   "placement.Named",
				Kind: errors.KindPlacement,
				Err:  fmt.Errorf("%w: %q", errors.ErrUnknownPlacement, name),
			})
			continue
		}
		if list.Contains(name) {
			continue
		}
		list = append(list, c)
	}
	return list
}

// WithOffset returns a copy of the list with the offset added to every
// candidate, pushed away from the anchor along the attachment axis.
func (l List) WithOffset(gap float64) List {
	out := make(List, len(l))
	for i, c := range l {
		switch {
		case c.Anchor.Y == Top && c.Overlay.Y == Bottom:
			c.OffsetY -= gap
		case c.Anchor.Y == Bottom && c.Overlay.Y == Top:
			c.OffsetY += gap
		case c.Anchor.X == Left && c.Overlay.X == Right:
			c.OffsetX -= gap
		case c.Anchor.X == Right && c.Overlay.X == Left:
			c.OffsetX += gap
		}
		out[i] = c
	}
	return out
}

// ArrowAtCenter shifts edge-aligned candidates so an arrow drawn arrowInset
// from the panel's aligned edge points at the anchor's center. Centered
// candidates are unchanged.
func (l List) ArrowAtCenter(anchor Rect, arrowInset float64) List {
	out := make(List, len(l))
	dx := anchor.Width/2 - arrowInset
	dy := anchor.Height/2 - arrowInset
	for i, c := range l {
		switch {
		case c.Anchor.X == Left && c.Overlay.X == Left:
			c.OffsetX += dx
		case c.Anchor.X == Right && c.Overlay.X == Right:
			c.OffsetX -= dx
		case c.Anchor.Y == Top && c.Overlay.Y == Top:
			c.OffsetY += dy
		case c.Anchor.Y == Bottom && c.Overlay.Y == Bottom:
			c.OffsetY -= dy
		}
		out[i] = c
	}
	return out
}
