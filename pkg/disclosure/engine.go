// Package disclosure composes the trigger controller, the visibility gate,
// the overlay lifecycle, placement resolution, and dismissal into the
// engine behind every anchored floating widget.
//
// Events flow in one direction:
//
//	anchor/panel events → trigger.Controller → visibility.Gate
//	    → overlay.Lifecycle → placement.Resolve → layer
//
// and dismissal feeds hide requests back into the gate, so controlled
// visibility is respected no matter where an intent came from.
//
// An Engine is single-threaded. Every method must be called from the
// host's UI loop, the same loop that steps the Scheduler.
package disclosure

import (
	"log/slog"

	"github.com/go-drift/disclosure/pkg/animation"
	"github.com/go-drift/disclosure/pkg/bidi"
	"github.com/go-drift/disclosure/pkg/dismiss"
	"github.com/go-drift/disclosure/pkg/errors"
	"github.com/go-drift/disclosure/pkg/overlay"
	"github.com/go-drift/disclosure/pkg/placement"
	"github.com/go-drift/disclosure/pkg/trigger"
	"github.com/go-drift/disclosure/pkg/visibility"
)

// Engine is the disclosure state machine of one anchored widget.
type Engine struct {
	opts   Options
	events Events
	logger *slog.Logger

	scheduler   *animation.Scheduler
	layer       *overlay.Layer
	animator    *animation.Animator
	trigger     *trigger.Controller
	gate        *visibility.Gate
	lifecycle   *overlay.Lifecycle
	coordinator *dismiss.Coordinator

	tornDown bool
}

// New creates an engine. It starts hidden, or at opts.Visible when set.
func New(opts Options, events Events) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "disclosure")
	if opts.Name != "" {
		logger = logger.With("widget", opts.Name)
	}

	e := &Engine{
		opts:      opts,
		events:    events,
		logger:    logger,
		scheduler: opts.Scheduler,
		layer:     opts.Layer,
	}
	if e.scheduler == nil {
		e.scheduler = animation.NewScheduler(nil)
	}
	if e.layer == nil {
		e.layer = overlay.NewLayer()
	}

	var animator overlay.Animator = opts.Animator
	if animator == nil {
		motion := opts.Motion
		if motion.Duration == 0 && motion.Enter == nil {
			motion = animation.ZoomBig
		}
		e.animator = animation.NewAnimator(e.scheduler, motion)
		animator = e.animator
	}

	e.gate = visibility.NewGate(logger)
	e.gate.Disabled = opts.Disabled
	e.gate.CanShow = e.canShow
	e.gate.OnChange = e.notifyVisible
	e.gate.OnRender = e.render

	e.trigger = trigger.NewController(e.scheduler, opts.Trigger, e.gate.Request, logger)
	e.trigger.Visible = e.gate.Visible

	e.coordinator = dismiss.NewCoordinator(dismiss.Config{
		Anchor:     e.anchor,
		Clip:       e.clip,
		Panel:      e.panelBounds,
		Trigger:    func() trigger.Kind { return e.trigger.Config().Kind },
		Backdrop:   func() bool { return e.opts.Backdrop },
		Hide:       e.dismiss,
		Reposition: e.Reposition,
		Registry:   opts.Registry,
		Logger:     logger,
	})

	e.lifecycle = overlay.NewLifecycle(overlay.Config{
		Layer:         e.layer,
		Scheduler:     e.scheduler,
		Anchor:        e.anchor,
		Viewport:      opts.Viewport,
		Placements:    e.placements,
		Content:       opts.Content,
		Animator:      animator,
		NoAnimation:   opts.NoAnimation,
		Fallback:      opts.Fallback,
		Backdrop:      e.coordinator.BackdropEnabled,
		OnBackdropTap: e.coordinator.BackdropTap,
		OnStateChange: func(s overlay.State) {
			e.coordinator.SetTracking(s == overlay.Opening || s == overlay.Open)
			e.coordinator.SetActive(s == overlay.Open)
		},
		OnPositionChange: e.notifyPosition,
		Label:            opts.Name,
		Logger:           logger,
	})

	if opts.Visible != nil {
		e.gate.SetControlled(*opts.Visible)
	}
	return e
}

// Scheduler returns the scheduler driving the engine's timers.
func (e *Engine) Scheduler() *animation.Scheduler {
	return e.scheduler
}

// Layer returns the overlay layer the panel is mounted into.
func (e *Engine) Layer() *overlay.Layer {
	return e.layer
}

// Visible returns the rendered visibility.
func (e *Engine) Visible() bool {
	return e.gate.Visible()
}

// State returns the overlay lifecycle state.
func (e *Engine) State() overlay.State {
	return e.lifecycle.State()
}

// Panel returns the mounted panel, nil while closed.
func (e *Engine) Panel() *overlay.Panel {
	return e.lifecycle.Panel()
}

// Mounts returns how many times the panel was mounted and unmounted.
func (e *Engine) Mounts() (mounts, unmounts int) {
	return e.lifecycle.Mounts(), e.lifecycle.Unmounts()
}

// Frame returns the current animation frame. It is animation.Shown when a
// custom Animator is configured.
func (e *Engine) Frame() animation.Frame {
	if e.animator == nil {
		return animation.Shown
	}
	return e.animator.Current()
}

// Pending returns the delayed trigger intent, if any.
func (e *Engine) Pending() (trigger.Pending, bool) {
	return e.trigger.Pending()
}

// Placement returns the name of the resolved candidate while mounted.
func (e *Engine) Placement() (string, bool) {
	p := e.lifecycle.Panel()
	if p == nil || p.Placement == nil {
		return "", false
	}
	return p.Placement.Name, true
}

// Handle feeds an anchor event to the trigger controller.
func (e *Engine) Handle(ev trigger.Event) {
	if !e.alive("disclosure.Handle") {
		return
	}
	e.trigger.Handle(ev)
}

// HandlePanel feeds a panel event to the trigger controller.
func (e *Engine) HandlePanel(ev trigger.Event) {
	if !e.alive("disclosure.HandlePanel") {
		return
	}
	e.trigger.HandlePanel(ev)
}

// Show requests the panel programmatically. In controlled mode it only
// notifies the owner.
func (e *Engine) Show() {
	if !e.alive("disclosure.Show") {
		return
	}
	e.trigger.Cancel()
	e.gate.Request(trigger.Show)
}

// Hide requests hiding the panel programmatically.
func (e *Engine) Hide() {
	if !e.alive("disclosure.Hide") {
		return
	}
	e.trigger.Cancel()
	e.gate.Request(trigger.Hide)
}

// SetVisible supplies the controlled visibility. From now on the rendered
// visibility follows the owner's value.
func (e *Engine) SetVisible(v bool) {
	if !e.alive("disclosure.SetVisible") {
		return
	}
	e.gate.SetControlled(v)
}

// ReleaseVisible returns the engine to uncontrolled mode.
func (e *Engine) ReleaseVisible() {
	e.gate.Release()
}

// SetTrigger replaces the trigger configuration.
func (e *Engine) SetTrigger(cfg trigger.Config) {
	e.opts.Trigger = cfg
	e.trigger.SetConfig(cfg)
}

// SetPlacements replaces the candidate names and repositions an open panel.
func (e *Engine) SetPlacements(names ...string) {
	e.opts.Placements = names
	e.Reposition()
}

// SetDirection switches the layout direction.
func (e *Engine) SetDirection(dir bidi.Direction) {
	e.opts.Direction = dir
	e.Reposition()
}

// SetDisabled enables or disables showing.
func (e *Engine) SetDisabled(disabled bool) {
	e.opts.Disabled = disabled
	e.gate.Disabled = disabled
}

// SetBackdrop changes the backdrop request. It applies from the next mount.
func (e *Engine) SetBackdrop(backdrop bool) {
	e.opts.Backdrop = backdrop
}

// Reposition recomputes placement after the anchor, the viewport, or the
// content size changed. It is a no-op while closed.
func (e *Engine) Reposition() {
	if e.tornDown {
		return
	}
	e.lifecycle.Reposition()
}

// PointerDown reports a pointer-down anywhere in the viewport.
func (e *Engine) PointerDown(p placement.Point) {
	e.coordinator.PointerDown(p)
}

// Escape reports the escape key.
func (e *Engine) Escape() {
	e.coordinator.Escape()
}

// Detach reports that the anchor left the page or its scroll container.
func (e *Engine) Detach() {
	e.coordinator.Detach()
}

// Classes returns the class attributes for the current state.
func (e *Engine) Classes() Classes {
	name, _ := e.Placement()
	return ClassesFor(ClassState{
		Prefix:    e.opts.Prefix,
		Visible:   e.gate.Visible(),
		Direction: e.opts.Direction,
		Placement: name,
	})
}

// Teardown cancels every timer and animation and unmounts the panel
// without a leave animation. The engine ignores every later call.
func (e *Engine) Teardown() {
	if e.tornDown {
		return
	}
	e.tornDown = true
	e.trigger.Cancel()
	e.coordinator.SetActive(false)
	e.lifecycle.Teardown()
	e.gate.ForceHide()
	e.logger.Debug("torn down")
}

func (e *Engine) alive(op string) bool {
	if !e.tornDown {
		return true
	}
	errors.Report(&errors.OverlayError{
		Op:     op,
		Kind:   errors.KindTeardown,
		Err:    errors.ErrTornDown,
		Widget: e.opts.Name,
	})
	return false
}

func (e *Engine) anchor() (placement.Rect, bool) {
	if e.opts.Anchor == nil {
		return placement.Rect{}, false
	}
	return e.opts.Anchor.Bounds()
}

func (e *Engine) clip() (placement.Rect, bool) {
	c, ok := e.opts.Anchor.(Clipped)
	if !ok {
		return placement.Rect{}, false
	}
	return c.Clip()
}

func (e *Engine) panelBounds() (placement.Rect, bool) {
	p := e.lifecycle.Panel()
	if p == nil {
		return placement.Rect{}, false
	}
	return p.Bounds, true
}

// placements builds the active candidate list.
func (e *Engine) placements() placement.List {
	names := e.opts.Placements
	if len(names) == 0 {
		names = bidi.DefaultPlacements(e.opts.Direction, e.opts.DefaultPlacements)
	}
	if len(names) == 1 && len(e.opts.Fallbacks) > 0 {
		names = append([]string{names[0]}, e.opts.Fallbacks...)
	}

	list := placement.Named(names...)
	if e.opts.Offset != 0 {
		list = list.WithOffset(e.opts.Offset)
	}
	if e.opts.ArrowPointAtCenter {
		if anchor, ok := e.anchor(); ok {
			list = list.ArrowAtCenter(anchor, e.opts.ArrowInset)
		}
	}
	return list
}

func (e *Engine) canShow() bool {
	if _, ok := e.anchor(); !ok {
		errors.Report(&errors.OverlayError{
			Op:     "disclosure.Show",
			Kind:   errors.KindAnchor,
			Err:    errors.ErrNoAnchor,
			Widget: e.opts.Name,
		})
		return false
	}
	if e.opts.Empty != nil && e.opts.Empty() {
		errors.Report(&errors.OverlayError{
			Op:     "disclosure.Show",
			Kind:   errors.KindContent,
			Err:    errors.ErrEmptyContent,
			Widget: e.opts.Name,
		})
		return false
	}
	return true
}

func (e *Engine) render(visible bool) {
	if visible {
		e.lifecycle.Show()
		return
	}
	e.lifecycle.Hide()
}

func (e *Engine) dismiss(reason dismiss.Reason) {
	e.trigger.Cancel()
	if e.events.OnOutside != nil {
		errors.Guard("disclosure.OnOutside", func() { e.events.OnOutside(reason) })
	}
	e.gate.Request(trigger.Hide)
}

func (e *Engine) notifyVisible(visible bool) {
	if e.events.OnVisibleChange == nil {
		return
	}
	errors.Guard("disclosure.OnVisibleChange", func() { e.events.OnVisibleChange(visible) })
}

func (e *Engine) notifyPosition(r placement.Result) {
	if e.events.OnPositionChange == nil {
		return
	}
	errors.Guard("disclosure.OnPositionChange", func() {
		e.events.OnPositionChange(r.Candidate.Name, r.Bounds)
	})
}
