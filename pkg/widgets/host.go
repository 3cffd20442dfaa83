package widgets

import (
	"log/slog"
	"time"

	"github.com/go-drift/disclosure/pkg/animation"
	"github.com/go-drift/disclosure/pkg/bidi"
	"github.com/go-drift/disclosure/pkg/config"
	"github.com/go-drift/disclosure/pkg/disclosure"
	"github.com/go-drift/disclosure/pkg/dismiss"
	"github.com/go-drift/disclosure/pkg/overlay"
	"github.com/go-drift/disclosure/pkg/placement"
)

// Host is what a widget needs from the surface it lives on. Widgets on the
// same surface share Layer, Scheduler and Registry.
type Host struct {
	Anchor    disclosure.Anchor
	Viewport  func() placement.Rect
	Layer     *overlay.Layer
	Scheduler *animation.Scheduler
	Registry  *dismiss.Registry
	Direction bidi.Direction
	// NoAnimation disables enter/leave animations for every widget.
	NoAnimation bool
	// Fallback bounds the wait for an animation completion signal.
	Fallback time.Duration
	Logger   *slog.Logger
}

// options fills the engine options every widget shares.
func (h Host) options(name string, preset config.Preset) disclosure.Options {
	return disclosure.Options{
		Name:              name,
		Prefix:            preset.Prefix,
		Anchor:            h.Anchor,
		Trigger:           preset.TriggerConfig(),
		DefaultPlacements: preset.Placement,
		Fallbacks:         preset.Fallbacks,
		Backdrop:          preset.Backdrop,
		Direction:         h.Direction,
		Viewport:          h.Viewport,
		NoAnimation:       h.NoAnimation || preset.NoAnimation,
		Motion:            preset.Motion,
		Fallback:          h.Fallback,
		Layer:             h.Layer,
		Scheduler:         h.Scheduler,
		Registry:          h.Registry,
		Logger:            h.Logger,
	}
}
