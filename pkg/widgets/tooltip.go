package widgets

import (
	"strings"
	"time"

	"github.com/go-drift/disclosure/pkg/config"
	"github.com/go-drift/disclosure/pkg/disclosure"
	"github.com/go-drift/disclosure/pkg/placement"
	"github.com/go-drift/disclosure/pkg/proxy"
	"github.com/go-drift/disclosure/pkg/trigger"
)

// Proxy targets: the input names every tooltip-like widget reads through
// its proxy.
const (
	TargetTitle              = "Title"
	TargetContent            = "Content"
	TargetTrigger            = "Trigger"
	TargetPlacement          = "Placement"
	TargetMouseEnterDelay    = "MouseEnterDelay"
	TargetMouseLeaveDelay    = "MouseLeaveDelay"
	TargetVisible            = "Visible"
	TargetArrowPointAtCenter = "ArrowPointAtCenter"
	TargetBackdrop           = "Backdrop"
)

// arrowInset is the distance from the panel edge to the arrow tip.
const arrowInset = 12

// Inputs are a tooltip's own configurable inputs. Nil and zero values
// fall back to the widget preset.
type Inputs struct {
	Title              string
	Content            string
	Trigger            *trigger.Kind
	Placement          []string
	MouseEnterDelay    *time.Duration
	MouseLeaveDelay    *time.Duration
	Visible            *bool
	ArrowPointAtCenter bool
	Backdrop           bool
	Disabled           bool
}

// Resolved are the inputs after proxy and preset resolution.
type Resolved struct {
	Title              string
	Content            string
	Trigger            trigger.Config
	Placement          []string
	Visible            *bool
	ArrowPointAtCenter bool
	Backdrop           bool
}

// Tooltip is a text bubble attached to an anchor. It is also the base of
// every widget that reuses its engine wiring through a proxy, such as
// Popover.
type Tooltip struct {
	Inputs
	Events disclosure.Events

	name    string
	host    Host
	preset  config.Preset
	proxy   *proxy.Proxy
	isEmpty func(Resolved) bool
	engine  *disclosure.Engine
}

// NewTooltip creates a detached tooltip.
func NewTooltip(host Host, preset config.Preset) *Tooltip {
	return newTooltip(config.KindTooltip, host, preset, func(r Resolved) bool {
		return strings.TrimSpace(r.Title) == ""
	})
}

func newTooltip(name string, host Host, preset config.Preset, isEmpty func(Resolved) bool) *Tooltip {
	return &Tooltip{
		name:    name,
		host:    host,
		preset:  preset,
		proxy:   proxy.Compose(),
		isEmpty: isEmpty,
	}
}

// Extend layers a more specific mapping over the tooltip's inputs.
func (t *Tooltip) Extend(m proxy.Mapping) {
	t.proxy = t.proxy.Extend(m)
}

// Proxy returns the composed input mapping.
func (t *Tooltip) Proxy() *proxy.Proxy {
	return t.proxy
}

// Resolve reads every input through the proxy. A value from the proxy
// wins over the tooltip's own input, which wins over the preset.
func (t *Tooltip) Resolve() Resolved {
	in := t.Inputs
	p := t.preset

	cfg := p.TriggerConfig()
	if in.Trigger != nil {
		cfg.Kind = *in.Trigger
	}
	if in.MouseEnterDelay != nil {
		cfg.EnterDelay = *in.MouseEnterDelay
	}
	if in.MouseLeaveDelay != nil {
		cfg.LeaveDelay = *in.MouseLeaveDelay
	}
	cfg.Kind = proxy.Get(t.proxy, TargetTrigger, cfg.Kind)
	cfg.EnterDelay = proxy.Get(t.proxy, TargetMouseEnterDelay, cfg.EnterDelay)
	cfg.LeaveDelay = proxy.Get(t.proxy, TargetMouseLeaveDelay, cfg.LeaveDelay)

	return Resolved{
		Title:              proxy.Get(t.proxy, TargetTitle, in.Title),
		Content:            proxy.Get(t.proxy, TargetContent, in.Content),
		Trigger:            cfg,
		Placement:          proxy.Get(t.proxy, TargetPlacement, in.Placement),
		Visible:            optional(t.proxy, TargetVisible, in.Visible),
		ArrowPointAtCenter: proxy.Get(t.proxy, TargetArrowPointAtCenter, in.ArrowPointAtCenter),
		Backdrop:           proxy.Get(t.proxy, TargetBackdrop, in.Backdrop || p.Backdrop),
	}
}

// Attach creates the engine. Calling Attach again returns the same engine.
func (t *Tooltip) Attach() *disclosure.Engine {
	if t.engine != nil {
		return t.engine
	}
	r := t.Resolve()
	opts := t.host.options(t.name, t.preset)
	opts.Trigger = r.Trigger
	opts.Placements = r.Placement
	opts.Backdrop = r.Backdrop
	opts.Visible = r.Visible
	opts.Disabled = t.Disabled
	opts.ArrowPointAtCenter = r.ArrowPointAtCenter
	opts.ArrowInset = arrowInset
	opts.Offset = 4
	opts.Content = t
	opts.Empty = func() bool { return t.isEmpty(t.Resolve()) }
	t.engine = disclosure.New(opts, t.Events)
	return t.engine
}

// Refresh pushes changed inputs to the engine.
func (t *Tooltip) Refresh() {
	if t.engine == nil {
		return
	}
	r := t.Resolve()
	t.engine.SetTrigger(r.Trigger)
	t.engine.SetBackdrop(r.Backdrop)
	t.engine.SetDisabled(t.Disabled)
	t.engine.SetPlacements(r.Placement...)
	if r.Visible != nil {
		t.engine.SetVisible(*r.Visible)
	} else {
		t.engine.ReleaseVisible()
	}
}

// Engine returns the attached engine, nil before Attach.
func (t *Tooltip) Engine() *disclosure.Engine {
	return t.engine
}

// Detach tears the engine down.
func (t *Tooltip) Detach() {
	if t.engine != nil {
		t.engine.Teardown()
	}
}

// Size implements overlay.Content: the title above the content.
func (t *Tooltip) Size() placement.Size {
	r := t.Resolve()
	var blocks stack
	if r.Title != "" {
		blocks = append(blocks, NewTextContent(r.Title, 8))
	}
	if r.Content != "" {
		blocks = append(blocks, NewTextContent(r.Content, 8))
	}
	return blocks.Size()
}

// optional resolves a pointer input: a defined proxy value wins over base.
func optional[T any](p *proxy.Proxy, target string, base *T) *T {
	resolve, ok := p.Lookup(target)
	if !ok || resolve == nil {
		return base
	}
	v, defined := resolve()
	if !defined {
		return base
	}
	typed, ok := v.(T)
	if !ok {
		return base
	}
	return &typed
}
