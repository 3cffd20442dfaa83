package overlay

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-drift/disclosure/pkg/animation"
	"github.com/go-drift/disclosure/pkg/errors"
	"github.com/go-drift/disclosure/pkg/placement"
)

// State is the lifecycle state of a panel.
//
//	        Show()            enter done
//	Closed ────────► Opening ────────────► Open
//	  ▲                ▲  │                  │
//	  │ leave done     │  │ Hide()           │ Hide()
//	  │                │  ▼                  │
//	  └──────────── Closing ◄────────────────┘
//	                 Show() cancels the unmount
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Phase is the animation phase of a mounted panel.
type Phase int

const (
	PhaseRemoved Phase = iota
	PhaseEntering
	PhaseActive
	PhaseLeaving
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseActive:
		return "active"
	case PhaseLeaving:
		return "leaving"
	default:
		return "removed"
	}
}

// DefaultFallback bounds how long Opening or Closing may wait for an
// animation completion signal.
const DefaultFallback = 500 * time.Millisecond

// Content is the rendered panel content. The lifecycle never inspects it
// beyond its natural size.
type Content interface {
	Size() placement.Size
}

// Animator plays enter/leave animations and signals completion. Cancel
// must prevent done from being called.
type Animator interface {
	Animate(entering bool, done func()) (cancel func())
}

// Panel is the floating panel of one widget. It exists from the first
// visible transition until the leave animation completes.
type Panel struct {
	// IsOpen is false once the panel started leaving.
	IsOpen bool
	// Placement is the chosen candidate, nil before the first positioning.
	Placement *placement.Candidate
	// Bounds is the panel's area in viewport coordinates.
	Bounds placement.Rect
	// Phase is the current animation phase.
	Phase Phase

	entry    *Entry
	backdrop *Entry
}

// Entry returns the layer entry holding the panel.
func (p *Panel) Entry() *Entry {
	return p.entry
}

// Config wires a Lifecycle to its collaborators. Layer, Scheduler and
// Anchor are required.
type Config struct {
	Layer     *Layer
	Scheduler *animation.Scheduler
	// Anchor reports the anchor bounds and whether it is attached.
	Anchor func() (placement.Rect, bool)
	// Viewport reports the visible area.
	Viewport func() placement.Rect
	// Placements returns the active candidate list.
	Placements func() placement.List
	Content    Content

	// Animator plays enter/leave animations. Nil disables animation.
	Animator    Animator
	NoAnimation bool
	// Fallback bounds the wait for animation completion. Zero means
	// DefaultFallback.
	Fallback time.Duration

	// Backdrop mounts a dismissible backdrop below the panel.
	Backdrop      func() bool
	OnBackdropTap func()

	OnStateChange    func(State)
	OnPositionChange func(placement.Result)

	Label  string
	Logger *slog.Logger
}

// Lifecycle owns mount, animation, and unmount of one panel.
type Lifecycle struct {
	cfg     Config
	logger  *slog.Logger
	state   State
	panel   *Panel
	tracker placement.Tracker

	gen        uint64
	cancelAnim func()
	fallback   *animation.Timer
	tornDown   bool

	mounts   int
	unmounts int
}

// NewLifecycle creates a closed lifecycle.
func NewLifecycle(cfg Config) *Lifecycle {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Fallback <= 0 {
		cfg.Fallback = DefaultFallback
	}
	return &Lifecycle{cfg: cfg, logger: logger}
}

// State returns the current state.
func (l *Lifecycle) State() State {
	return l.state
}

// Panel returns the current panel, nil while closed.
func (l *Lifecycle) Panel() *Panel {
	return l.panel
}

// Mounts returns how many times a panel was mounted.
func (l *Lifecycle) Mounts() int {
	return l.mounts
}

// Unmounts returns how many times a panel was unmounted.
func (l *Lifecycle) Unmounts() int {
	return l.unmounts
}

// TornDown reports whether Teardown was called.
func (l *Lifecycle) TornDown() bool {
	return l.tornDown
}

// Show starts opening the panel. Showing an opening or open panel is a
// no-op; showing a closing panel cancels the pending unmount.
func (l *Lifecycle) Show() {
	if l.rejectAfterTeardown("overlay.Show") {
		return
	}
	switch l.state {
	case Opening, Open:
		return
	case Closing:
		l.stopAnimation()
		l.panel.IsOpen = true
		l.panel.Phase = PhaseEntering
		l.setState(Opening)
		l.Reposition()
		l.animate(true)
		return
	}

	if _, ok := l.anchor(); !ok {
		errors.Report(&errors.OverlayError{
			Op:     "overlay.Show",
			Kind:   errors.KindAnchor,
			Err:    errors.ErrNoAnchor,
			Widget: l.cfg.Label,
		})
		return
	}

	l.mount()
	l.setState(Opening)
	// Position before the first paint so the panel never jumps.
	l.Reposition()
	l.animate(true)
}

// Hide starts closing the panel. Hiding a closed or closing panel is a no-op.
func (l *Lifecycle) Hide() {
	if l.rejectAfterTeardown("overlay.Hide") {
		return
	}
	if l.state != Opening && l.state != Open {
		return
	}
	l.stopAnimation()
	l.panel.IsOpen = false
	l.panel.Phase = PhaseLeaving
	l.setState(Closing)
	l.animate(false)
}

// Teardown synchronously cancels every timer and animation and unmounts
// the panel without a leave animation. Later calls are ignored.
func (l *Lifecycle) Teardown() {
	if l.tornDown {
		return
	}
	l.tornDown = true
	l.stopAnimation()
	if l.panel != nil {
		l.unmount()
	}
	l.setState(Closed)
}

// Reposition recomputes placement while a panel is mounted. It is a no-op
// while closed.
func (l *Lifecycle) Reposition() {
	if l.panel == nil {
		return
	}
	anchor, ok := l.anchor()
	if !ok {
		return
	}
	var size placement.Size
	if l.cfg.Content != nil {
		size = l.cfg.Content.Size()
	}
	var list placement.List
	if l.cfg.Placements != nil {
		list = l.cfg.Placements()
	}
	var viewport placement.Rect
	if l.cfg.Viewport != nil {
		viewport = l.cfg.Viewport()
	}

	result := placement.Resolve(anchor, size, viewport, list)
	candidate := result.Candidate
	l.panel.Placement = &candidate
	l.panel.Bounds = result.Bounds
	if l.tracker.Update(result) {
		l.logger.Debug("placement changed", "widget", l.cfg.Label, "placement", candidate.Name)
		if l.cfg.OnPositionChange != nil {
			l.cfg.OnPositionChange(result)
		}
	}
}

func (l *Lifecycle) anchor() (placement.Rect, bool) {
	if l.cfg.Anchor == nil {
		return placement.Rect{}, false
	}
	return l.cfg.Anchor()
}

func (l *Lifecycle) mount() {
	p := &Panel{IsOpen: true, Phase: PhaseEntering}
	p.entry = NewEntry(func() placement.Rect { return p.Bounds })
	p.entry.Label = l.cfg.Label
	l.cfg.Layer.Insert(p.entry, nil, nil)
	if l.cfg.Backdrop != nil && l.cfg.Backdrop() {
		p.backdrop = NewBackdrop(true, l.cfg.OnBackdropTap)
		l.cfg.Layer.Insert(p.backdrop, p.entry, nil)
	}
	l.panel = p
	l.mounts++
	l.logger.Debug("panel mounted", "widget", l.cfg.Label, "backdrop", p.backdrop != nil)
}

func (l *Lifecycle) unmount() {
	p := l.panel
	p.entry.Remove()
	if p.backdrop != nil {
		p.backdrop.Remove()
	}
	p.IsOpen = false
	p.Phase = PhaseRemoved
	l.panel = nil
	l.tracker.Reset()
	l.unmounts++
	l.logger.Debug("panel unmounted", "widget", l.cfg.Label)
}

func (l *Lifecycle) animate(entering bool) {
	l.gen++
	gen := l.gen
	done := func() {
		if gen != l.gen {
			return
		}
		l.finish(entering)
	}

	if l.cfg.NoAnimation || l.cfg.Animator == nil {
		done()
		return
	}

	l.fallback = l.cfg.Scheduler.AfterFunc(l.cfg.Fallback, func() {
		if gen != l.gen {
			return
		}
		errors.Report(&errors.OverlayError{
			Op:     "overlay.animate",
			Kind:   errors.KindAnimation,
			Err:    errors.ErrAnimationTimeout,
			Widget: l.cfg.Label,
		})
		l.fallback = nil
		l.finish(entering)
	})
	cancel := l.cfg.Animator.Animate(entering, done)
	// done may already have run for a zero-length animation.
	if gen == l.gen {
		l.cancelAnim = cancel
	}
}

func (l *Lifecycle) finish(entering bool) {
	l.stopAnimation()
	if entering {
		l.panel.Phase = PhaseActive
		l.setState(Open)
		return
	}
	l.unmount()
	l.setState(Closed)
}

// stopAnimation invalidates the running animation and its fallback.
func (l *Lifecycle) stopAnimation() {
	l.gen++
	if l.cancelAnim != nil {
		cancel := l.cancelAnim
		l.cancelAnim = nil
		cancel()
	}
	if l.fallback != nil {
		l.fallback.Stop()
		l.fallback = nil
	}
}

func (l *Lifecycle) setState(s State) {
	if l.state == s {
		return
	}
	l.state = s
	l.logger.Debug("overlay state", "widget", l.cfg.Label, "state", s)
	if l.cfg.OnStateChange != nil {
		l.cfg.OnStateChange(s)
	}
}

func (l *Lifecycle) rejectAfterTeardown(op string) bool {
	if !l.tornDown {
		return false
	}
	errors.Report(&errors.OverlayError{
		Op:     op,
		Kind:   errors.KindTeardown,
		Err:    errors.ErrTornDown,
		Widget: l.cfg.Label,
	})
	return true
}
