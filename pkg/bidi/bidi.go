// Package bidi mirrors direction-dependent defaults for right-to-left layouts.
//
// It only adjusts defaults: placement names chosen when the caller gave
// none, candidate lists built by the caller, and the expand indicator of
// nested panels. Geometry is left to the placement resolver.
package bidi

import (
	"fmt"
	"strings"

	"github.com/go-drift/disclosure/pkg/placement"
)

// Direction is the layout direction of the hosting context.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Parse converts "ltr"/"rtl" (case-insensitive) to a Direction.
// The empty string is LTR.
func Parse(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	default:
		return LTR, fmt.Errorf("unsupported direction: %q", s)
	}
}

// MirrorName swaps the left and right sides in a position name:
// "topLeft" becomes "topRight", "leftTop" becomes "rightTop".
func MirrorName(name string) string {
	switch {
	case strings.HasPrefix(name, "left"):
		return "right" + strings.TrimPrefix(name, "left")
	case strings.HasPrefix(name, "right"):
		return "left" + strings.TrimPrefix(name, "right")
	case strings.HasSuffix(name, "Left"):
		return strings.TrimSuffix(name, "Left") + "Right"
	case strings.HasSuffix(name, "Right"):
		return strings.TrimSuffix(name, "Right") + "Left"
	}
	return name
}

// DefaultPlacement returns the widget's default position for dir, given
// its left-to-right default.
func DefaultPlacement(dir Direction, ltrDefault string) string {
	if dir == RTL {
		return MirrorName(ltrDefault)
	}
	return ltrDefault
}

// DefaultPlacements mirrors every name of a default list for dir.
func DefaultPlacements(dir Direction, ltrDefaults []string) []string {
	out := make([]string, len(ltrDefaults))
	for i, name := range ltrDefaults {
		out[i] = DefaultPlacement(dir, name)
	}
	return out
}

// MirrorList swaps left and right in every candidate of list.
func MirrorList(list placement.List) placement.List {
	out := make(placement.List, len(list))
	for i, c := range list {
		c.Name = MirrorName(c.Name)
		c.Anchor.X = mirrorH(c.Anchor.X)
		c.Overlay.X = mirrorH(c.Overlay.X)
		c.OffsetX = -c.OffsetX
		out[i] = c
	}
	return out
}

func mirrorH(a placement.HAlign) placement.HAlign {
	switch a {
	case placement.Left:
		return placement.Right
	case placement.Right:
		return placement.Left
	}
	return a
}

// ExpandIcon returns the indicator of a nested panel that opens sideways:
// explicit when set, otherwise pointing towards the reading direction.
func ExpandIcon(dir Direction, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if dir == RTL {
		return "left"
	}
	return "right"
}
