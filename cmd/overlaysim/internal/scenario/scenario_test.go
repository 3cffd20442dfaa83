package scenario

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/disclosure/pkg/config"
	"github.com/go-drift/disclosure/pkg/errors"
)

type discard struct{}

func (discard) HandleError(*errors.OverlayError) {}
func (discard) HandlePanic(*errors.PanicError)   {}

func resolvedNoAnimation(t *testing.T) *config.Resolved {
	t.Helper()
	errors.SetHandler(discard{})
	t.Cleanup(func() { errors.SetHandler(nil) })
	presets := config.Defaults()
	for kind, p := range presets {
		p.NoAnimation = true
		presets[kind] = p
	}
	return &config.Resolved{Fallback: 500 * time.Millisecond, Presets: presets}
}

func replay(t *testing.T, src string) string {
	t.Helper()
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var out bytes.Buffer
	r, err := NewRunner(s, resolvedNoAnimation(t), &out, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	r.Run(s.Steps)
	return out.String()
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown widget", "widget: modal\n", "unknown kind"},
		{"bad direction", "widget: tooltip\ndirection: up\n", "direction"},
		{"unknown action", "widget: tooltip\nsteps:\n  - do: jump\n", "unknown action"},
		{"tap without point", "widget: tooltip\nsteps:\n  - do: tap\n", "needs at"},
		{"select on tooltip", "widget: tooltip\nsteps:\n  - do: select\n", "needs a cascader"},
		{"negative column", "widget: cascader\nsteps:\n  - do: select\n    column: -1\n", "non-negative"},
		{"bad target", "widget: tooltip\nsteps:\n  - do: enter\n    on: page\n", "anchor or panel"},
		{"bad duration", "widget: tooltip\nsteps:\n  - do: advance\n    for: soon\n", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestRunner_HoverTooltip(t *testing.T) {
	out := replay(t, `
name: hover
widget: tooltip
title: Prompt text
anchor: {x: 400, y: 300, width: 80, height: 30}
steps:
  - do: enter
  - do: advance
    for: 150ms
  - do: leave
  - do: advance
    for: 100ms
`)
	for _, want := range []string{
		"150ms  visible=true",
		"position=top",
		"listeners attached=true",
		"250ms  visible=false",
		"listeners attached=false",
		"advance -> closed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunner_PopoverBackdrop(t *testing.T) {
	out := replay(t, `
widget: popover
title: Title
trigger: click
backdrop: true
anchor: {x: 400, y: 300, width: 80, height: 30}
steps:
  - do: click
  - do: tap
    at: {x: 5, y: 5}
`)
	if !strings.Contains(out, "outside=backdrop") || !strings.Contains(out, "tap -> closed") {
		t.Errorf("backdrop tap should dismiss:\n%s", out)
	}
}

func TestRunner_ScrollDetaches(t *testing.T) {
	out := replay(t, `
widget: popover
content: Body
trigger: click
anchor: {x: 400, y: 300, width: 80, height: 30}
steps:
  - do: click
  - do: move
    to: {x: 400, y: -200, width: 80, height: 30}
  - do: scroll
`)
	if !strings.Contains(out, "outside=detached") || !strings.Contains(out, "scroll -> closed") {
		t.Errorf("scrolling the anchor away should dismiss:\n%s", out)
	}
}

func TestRunner_CascaderSelect(t *testing.T) {
	out := replay(t, `
widget: cascader
anchor: {x: 100, y: 100, width: 200, height: 32}
options:
  - value: zhejiang
    label: Zhejiang
    children:
      - value: hangzhou
        label: Hangzhou
        leaf: true
  - value: jiangsu
    label: Jiangsu
steps:
  - do: click
  - do: select
    column: 0
    index: 1
  - do: select
    column: 0
    index: 0
  - do: select
    column: 1
    index: 0
`)
	for _, want := range []string{"position=bottomLeft", "load=jiangsu", "selected=zhejiang/hangzhou", "select -> closed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
