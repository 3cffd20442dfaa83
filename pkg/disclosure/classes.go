package disclosure

import "github.com/go-drift/disclosure/pkg/bidi"

// ClassState is the input of ClassesFor.
type ClassState struct {
	Prefix    string
	Visible   bool
	Direction bidi.Direction
	// Placement is the resolved candidate name, empty while closed.
	Placement string
}

// Classes are the class attributes of the anchor host and the panel.
type Classes struct {
	Host  []string
	Panel []string
}

// ClassesFor derives class attributes from engine state. The anchor host
// carries "<prefix>-open" while visible; the panel carries the direction
// and the placement classes the arrow is styled by.
func ClassesFor(s ClassState) Classes {
	var c Classes
	if s.Prefix == "" {
		return c
	}
	if s.Visible {
		c.Host = append(c.Host, s.Prefix+"-open")
	}
	c.Panel = append(c.Panel, s.Prefix)
	if s.Direction == bidi.RTL {
		c.Panel = append(c.Panel, s.Prefix+"-rtl")
	}
	if s.Placement != "" {
		c.Panel = append(c.Panel, s.Prefix+"-placement-"+s.Placement)
	}
	return c
}
