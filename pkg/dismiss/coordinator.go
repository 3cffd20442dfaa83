// Package dismiss detects interactions that close an open panel: pointer
// downs outside the anchor and the panel, backdrop taps, the anchor
// scrolling out of view, and escape.
//
// A [Coordinator] never hides the panel itself. It emits a hide request
// that the owner routes through its visibility gate, so dismissal respects
// controlled visibility.
package dismiss

import (
	"fmt"
	"log/slog"

	"github.com/go-drift/disclosure/pkg/placement"
	"github.com/go-drift/disclosure/pkg/trigger"
)

// Reason tells why a panel was dismissed.
type Reason int

const (
	// Outside is a pointer-down outside both the anchor and the panel.
	Outside Reason = iota
	// Backdrop is a tap on the full-viewport backdrop.
	Backdrop
	// Detached means the anchor left its scroll container or the page.
	Detached
	// Escape is the escape key.
	Escape
)

func (r Reason) String() string {
	switch r {
	case Outside:
		return "outside"
	case Backdrop:
		return "backdrop"
	case Detached:
		return "detached"
	case Escape:
		return "escape"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Config wires a Coordinator to the widget it guards.
type Config struct {
	// Anchor reports the anchor bounds and whether it is attached.
	Anchor func() (placement.Rect, bool)
	// Clip reports the visible area of the anchor's scroll container.
	// Nil or false means the anchor is never clipped.
	Clip func() (placement.Rect, bool)
	// Panel reports the panel bounds while mounted.
	Panel func() (placement.Rect, bool)
	// Trigger reports the active trigger kind.
	Trigger func() trigger.Kind
	// Backdrop reports whether a backdrop was requested.
	Backdrop func() bool

	// Hide is called with every dismissal. The owner routes it through
	// its visibility gate.
	Hide func(Reason)
	// Reposition is called on scroll and resize while tracking or active.
	Reposition func()

	// Registry delivers viewport events. Nil means Shared.
	Registry *Registry
	Logger   *slog.Logger
}

// Coordinator watches one open panel.
type Coordinator struct {
	cfg      Config
	logger   *slog.Logger
	active   bool
	tracking bool
	acquired bool
}

// NewCoordinator creates an inactive coordinator.
func NewCoordinator(cfg Config) *Coordinator {
	if cfg.Registry == nil {
		cfg.Registry = Shared
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{cfg: cfg, logger: logger}
}

// Active reports whether the coordinator is watching.
func (c *Coordinator) Active() bool {
	return c.active
}

// SetActive starts or stops dismissal. The owner activates the coordinator
// while the panel is open. An active coordinator also repositions.
func (c *Coordinator) SetActive(active bool) {
	c.active = active
	c.sync()
}

// SetTracking starts or stops repositioning on scroll and resize without
// enabling dismissal, for a panel that is still animating in.
func (c *Coordinator) SetTracking(tracking bool) {
	c.tracking = tracking
	c.sync()
}

// sync holds the registry while the coordinator needs viewport events.
func (c *Coordinator) sync() {
	want := c.active || c.tracking
	if c.acquired == want {
		return
	}
	c.acquired = want
	if want {
		c.cfg.Registry.Acquire(c)
	} else {
		c.cfg.Registry.Release(c)
	}
}

// BackdropEnabled reports whether a backdrop should be mounted. Backdrops
// only apply to click triggers.
func (c *Coordinator) BackdropEnabled() bool {
	if c.cfg.Backdrop == nil || !c.cfg.Backdrop() {
		return false
	}
	return c.kind() == trigger.Click
}

// PointerDown handles a pointer-down anywhere in the viewport.
func (c *Coordinator) PointerDown(p placement.Point) {
	if !c.active || c.kind() == trigger.Manual {
		return
	}
	if anchor, ok := c.anchor(); ok && anchor.Contains(p) {
		return
	}
	if c.cfg.Panel != nil {
		if panel, ok := c.cfg.Panel(); ok && panel.Contains(p) {
			return
		}
	}
	c.dismiss(Outside)
}

// BackdropTap handles a tap on the backdrop.
func (c *Coordinator) BackdropTap() {
	if !c.active || !c.BackdropEnabled() {
		return
	}
	c.dismiss(Backdrop)
}

// Escape handles the escape key.
func (c *Coordinator) Escape() {
	if !c.active {
		return
	}
	c.dismiss(Escape)
}

// Detach handles an explicit detach signal from the host.
func (c *Coordinator) Detach() {
	if !c.active {
		return
	}
	c.dismiss(Detached)
}

// Scroll repositions the panel and, while active, dismisses it once the
// anchor scrolled out of its container.
func (c *Coordinator) Scroll() {
	if !c.acquired {
		return
	}
	if !c.active {
		c.reposition()
		return
	}
	if c.detached() {
		c.dismiss(Detached)
		return
	}
	c.reposition()
}

// Resize repositions the panel.
func (c *Coordinator) Resize() {
	if !c.acquired {
		return
	}
	c.reposition()
}

func (c *Coordinator) detached() bool {
	anchor, ok := c.anchor()
	if !ok {
		return true
	}
	if c.cfg.Clip == nil {
		return false
	}
	clip, ok := c.cfg.Clip()
	if !ok {
		return false
	}
	return !anchor.Intersects(clip)
}

func (c *Coordinator) anchor() (placement.Rect, bool) {
	if c.cfg.Anchor == nil {
		return placement.Rect{}, false
	}
	return c.cfg.Anchor()
}

func (c *Coordinator) kind() trigger.Kind {
	if c.cfg.Trigger == nil {
		return trigger.Manual
	}
	return c.cfg.Trigger()
}

func (c *Coordinator) reposition() {
	if c.cfg.Reposition != nil {
		c.cfg.Reposition()
	}
}

func (c *Coordinator) dismiss(reason Reason) {
	c.logger.Debug("dismiss", "reason", reason)
	if c.cfg.Hide != nil {
		c.cfg.Hide(reason)
	}
}
