package disclosure

import (
	"log/slog"
	"time"

	"github.com/go-drift/disclosure/pkg/animation"
	"github.com/go-drift/disclosure/pkg/bidi"
	"github.com/go-drift/disclosure/pkg/dismiss"
	"github.com/go-drift/disclosure/pkg/overlay"
	"github.com/go-drift/disclosure/pkg/placement"
	"github.com/go-drift/disclosure/pkg/trigger"
)

// Anchor is the element a panel is attached to.
type Anchor interface {
	// Bounds returns the anchor area in viewport coordinates and whether
	// the anchor is attached.
	Bounds() (placement.Rect, bool)
}

// Clipped is implemented by anchors inside a scroll container. The engine
// dismisses the panel once the anchor scrolls out of the clip area.
type Clipped interface {
	Clip() (placement.Rect, bool)
}

// AnchorFunc adapts a function to Anchor.
type AnchorFunc func() (placement.Rect, bool)

// Bounds implements Anchor.
func (f AnchorFunc) Bounds() (placement.Rect, bool) { return f() }

// StaticAnchor is an always attached anchor at a fixed position.
type StaticAnchor placement.Rect

// Bounds implements Anchor.
func (a StaticAnchor) Bounds() (placement.Rect, bool) { return placement.Rect(a), true }

// Options configures an Engine.
type Options struct {
	// Name labels the widget in logs and error reports.
	Name string
	// Prefix is the class prefix, e.g. "ant-tooltip".
	Prefix string

	// Anchor is required. A nil or detached anchor refuses every show.
	Anchor Anchor
	// Trigger selects the events that open and close the panel.
	Trigger trigger.Config

	// Placements lists candidate names in preference order. When empty,
	// DefaultPlacements is used, mirrored for right-to-left layouts.
	Placements        []string
	DefaultPlacements []string
	// Fallbacks are appended when the active list, given or default, holds
	// exactly one name.
	Fallbacks []string
	// Offset is the gap between anchor and panel.
	Offset float64
	// ArrowPointAtCenter shifts edge-aligned placements so the arrow
	// points at the anchor center.
	ArrowPointAtCenter bool
	ArrowInset         float64

	// Backdrop requests a dismissible backdrop. It only applies to click
	// triggers.
	Backdrop bool
	// Visible switches the engine to controlled mode.
	Visible *bool
	// Disabled refuses every show.
	Disabled  bool
	Direction bidi.Direction

	// Content is measured for placement.
	Content overlay.Content
	// Empty refuses show while it returns true.
	Empty func() bool
	// Viewport reports the visible area. Without one nothing fits and the
	// first candidate is used.
	Viewport func() placement.Rect

	NoAnimation bool
	// Motion defaults to animation.ZoomBig.
	Motion animation.Motion
	// Animator overrides the motion-driven animator.
	Animator overlay.Animator
	// Fallback bounds the wait for animation completion.
	Fallback time.Duration

	// Layer is the shared overlay layer. Nil creates a private layer.
	Layer *overlay.Layer
	// Scheduler drives delays and animation. Nil creates one on the
	// system clock.
	Scheduler *animation.Scheduler
	// Registry fans viewport events out. Nil means dismiss.Shared.
	Registry *dismiss.Registry

	Logger *slog.Logger
}

// Events are the notifications an Engine sends to its owner.
type Events struct {
	// OnVisibleChange reports a visibility change. In controlled mode it
	// is the only effect of an internal intent.
	OnVisibleChange func(visible bool)
	// OnPositionChange reports the resolved candidate when it changes.
	OnPositionChange func(name string, bounds placement.Rect)
	// OnOutside reports an interaction that dismissed the panel.
	OnOutside func(reason dismiss.Reason)
}
