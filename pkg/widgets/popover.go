package widgets

import (
	"strings"
	"time"

	"github.com/go-drift/disclosure/pkg/config"
	"github.com/go-drift/disclosure/pkg/proxy"
	"github.com/go-drift/disclosure/pkg/trigger"
)

// Popover is a tooltip with a title and a body. It reuses the tooltip's
// engine wiring: its own inputs are routed onto the tooltip's inputs
// through a proxy, so nothing of the tooltip logic is duplicated.
//
// A popover is empty, and refuses to show, only when both its title and
// content are empty. PopoverBackdrop only has an effect with a click
// trigger.
type Popover struct {
	*Tooltip

	PopoverTitle              string
	PopoverContent            string
	PopoverTrigger            *trigger.Kind
	PopoverPlacement          []string
	PopoverVisible            *bool
	PopoverMouseEnterDelay    *time.Duration
	PopoverMouseLeaveDelay    *time.Duration
	PopoverArrowPointAtCenter bool
	PopoverBackdrop           bool
}

// NewPopover creates a detached popover.
func NewPopover(host Host, preset config.Preset) *Popover {
	p := &Popover{PopoverBackdrop: preset.Backdrop}
	p.Tooltip = newTooltip(config.KindPopover, host, preset, func(r Resolved) bool {
		return strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.Content) == ""
	})
	p.Extend(p.Mapping())
	return p
}

// Mapping returns the popover's input routing onto tooltip inputs.
func (p *Popover) Mapping() proxy.Mapping {
	return proxy.Mapping{
		"PopoverTitle": {
			Target:  TargetTitle,
			Resolve: proxy.NonZero(func() string { return p.PopoverTitle }),
		},
		"PopoverContent": {
			Target:  TargetContent,
			Resolve: proxy.NonZero(func() string { return p.PopoverContent }),
		},
		"PopoverTrigger": {
			Target:  TargetTrigger,
			Resolve: proxy.Optional(func() *trigger.Kind { return p.PopoverTrigger }),
		},
		"PopoverPlacement": {
			Target:  TargetPlacement,
			Resolve: nonEmpty(func() []string { return p.PopoverPlacement }),
		},
		"PopoverVisible": {
			Target:  TargetVisible,
			Resolve: proxy.Optional(func() *bool { return p.PopoverVisible }),
		},
		"PopoverMouseEnterDelay": {
			Target:  TargetMouseEnterDelay,
			Resolve: proxy.Optional(func() *time.Duration { return p.PopoverMouseEnterDelay }),
		},
		"PopoverMouseLeaveDelay": {
			Target:  TargetMouseLeaveDelay,
			Resolve: proxy.Optional(func() *time.Duration { return p.PopoverMouseLeaveDelay }),
		},
		"PopoverArrowPointAtCenter": {
			Target:  TargetArrowPointAtCenter,
			Resolve: proxy.NonZero(func() bool { return p.PopoverArrowPointAtCenter }),
		},
		"PopoverBackdrop": {
			Target:  TargetBackdrop,
			Resolve: proxy.Value(func() bool { return p.PopoverBackdrop }),
		},
	}
}

func nonEmpty[T any](f func() []T) proxy.Resolver {
	return func() (any, bool) {
		v := f()
		if len(v) == 0 {
			return nil, false
		}
		return v, true
	}
}
