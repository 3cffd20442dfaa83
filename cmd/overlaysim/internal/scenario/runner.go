package scenario

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-drift/disclosure/pkg/animation"
	"github.com/go-drift/disclosure/pkg/bidi"
	"github.com/go-drift/disclosure/pkg/config"
	"github.com/go-drift/disclosure/pkg/disclosure"
	"github.com/go-drift/disclosure/pkg/dismiss"
	"github.com/go-drift/disclosure/pkg/overlay"
	"github.com/go-drift/disclosure/pkg/placement"
	"github.com/go-drift/disclosure/pkg/trigger"
	"github.com/go-drift/disclosure/pkg/widgets"
)

// widget is what every disclosure widget offers a host.
type widget interface {
	Attach() *disclosure.Engine
	Detach()
}

// anchor is a movable anchor clipped by the viewport.
type anchor struct {
	bounds   placement.Rect
	viewport placement.Rect
}

func (a *anchor) Bounds() (placement.Rect, bool) { return a.bounds, true }
func (a *anchor) Clip() (placement.Rect, bool)   { return a.viewport, true }

// Runner replays one scenario and prints every notification.
type Runner struct {
	out      io.Writer
	logger   *slog.Logger
	clock    *animation.FakeClock
	start    time.Time
	anchor   *anchor
	registry *dismiss.Registry
	layer    *overlay.Layer
	engine   *disclosure.Engine
	widget   widget
	cascader *widgets.Cascader
}

// NewRunner builds the widget described by s with the presets of cfg.
func NewRunner(s *Scenario, cfg *config.Resolved, out io.Writer, logger *slog.Logger) (*Runner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dir, err := bidi.Parse(s.Direction)
	if err != nil {
		return nil, err
	}
	viewport := placement.Rect{Width: 1024, Height: 768}
	if s.Viewport != nil {
		viewport = s.Viewport.rect()
	}

	r := &Runner{
		out:      out,
		logger:   logger.With("scenario", s.Name),
		clock:    animation.NewFakeClock(),
		anchor:   &anchor{bounds: s.Anchor.rect(), viewport: viewport},
		registry: &dismiss.Registry{},
		layer:    overlay.NewLayer(),
	}
	r.start = r.clock.Now()
	r.registry.OnAttach = func(attached bool) {
		r.printf("listeners attached=%t", attached)
	}

	host := widgets.Host{
		Anchor:    r.anchor,
		Viewport:  func() placement.Rect { return r.anchor.viewport },
		Layer:     r.layer,
		Scheduler: animation.NewScheduler(r.clock),
		Registry:  r.registry,
		Direction: dir,
		Fallback:  cfg.Fallback,
		Logger:    r.logger,
	}
	preset := cfg.Preset(s.Widget)
	if s.Trigger != "" {
		kind, err := trigger.ParseKind(s.Trigger)
		if err != nil {
			return nil, fmt.Errorf("trigger: %w", err)
		}
		preset.Trigger = kind
	}
	events := disclosure.Events{
		OnVisibleChange: func(v bool) { r.printf("visible=%t", v) },
		OnPositionChange: func(name string, b placement.Rect) {
			r.printf("position=%s bounds=(%g,%g %gx%g)", name, b.X, b.Y, b.Width, b.Height)
		},
		OnOutside: func(reason dismiss.Reason) { r.printf("outside=%s", reason) },
	}

	switch s.Widget {
	case config.KindTooltip:
		w := widgets.NewTooltip(host, preset)
		w.Title = s.Title
		w.Content = s.Content
		w.Placement = s.Placement
		w.Backdrop = s.Backdrop
		w.Disabled = s.Disabled
		w.Events = events
		r.widget = w
	case config.KindPopover:
		w := widgets.NewPopover(host, preset)
		w.PopoverTitle = s.Title
		w.PopoverContent = s.Content
		w.PopoverPlacement = s.Placement
		w.PopoverBackdrop = w.PopoverBackdrop || s.Backdrop
		w.Disabled = s.Disabled
		w.Events = events
		r.widget = w
	case config.KindSubmenu:
		w := widgets.NewSubmenu(host, preset)
		w.Title = s.Title
		w.Placement = s.Placement
		w.Disabled = s.Disabled
		w.Events = events
		r.widget = w
	case config.KindCascader:
		w := widgets.NewCascader(host, preset)
		for _, o := range s.Options {
			w.Options = append(w.Options, o.option())
		}
		w.Placement = s.Placement
		w.Disabled = s.Disabled
		w.Events = events
		w.OnChange = func(values []string) { r.printf("selected=%s", strings.Join(values, "/")) }
		w.OnLoad = func(o *widgets.CascaderOption) { r.printf("load=%s", o.Value) }
		r.widget = w
		r.cascader = w
	default:
		return nil, fmt.Errorf("widget: unknown kind %q", s.Widget)
	}
	r.engine = r.widget.Attach()
	return r, nil
}

// Run replays steps in order and tears the widget down at the end.
func (r *Runner) Run(steps []Step) {
	defer r.widget.Detach()
	for _, step := range steps {
		r.logger.Debug("step", "do", step.Do)
		r.step(step)
		r.printf("%s -> %s", step.Do, r.engine.State())
	}
}

func (r *Runner) step(s Step) {
	e := r.engine
	handle := e.Handle
	if s.On == "panel" {
		handle = e.HandlePanel
	}
	switch s.Do {
	case "enter":
		handle(trigger.PointerEnter)
	case "leave":
		handle(trigger.PointerLeave)
	case "click":
		handle(trigger.PointerClick)
	case "focus":
		handle(trigger.FocusIn)
	case "blur":
		handle(trigger.FocusOut)
	case "advance":
		e.Scheduler().Advance(s.For.Std())
	case "pointerdown":
		r.registry.PointerDown(placement.Point{X: s.At.X, Y: s.At.Y})
	case "tap":
		p := placement.Point{X: s.At.X, Y: s.At.Y}
		if !r.layer.Tap(p) {
			r.registry.PointerDown(p)
		}
	case "escape":
		e.Escape()
	case "scroll":
		r.registry.Scroll()
	case "resize":
		r.registry.Resize()
	case "move":
		r.anchor.bounds = s.To.rect()
	case "show":
		e.Show()
	case "hide":
		e.Hide()
	case "set-visible":
		e.SetVisible(s.Visible)
	case "release":
		e.ReleaseVisible()
	case "select":
		if !r.cascader.Activate(s.Column, s.Index) {
			r.printf("select %d/%d ignored", s.Column, s.Index)
		}
	case "teardown":
		r.widget.Detach()
	}
}

func (r *Runner) printf(format string, args ...any) {
	elapsed := r.clock.Now().Sub(r.start)
	fmt.Fprintf(r.out, "%6s  %s\n", elapsed, fmt.Sprintf(format, args...))
}
