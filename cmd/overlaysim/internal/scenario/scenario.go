// Package scenario replays scripted input against a disclosure widget on a
// simulated clock.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/disclosure/pkg/bidi"
	"github.com/go-drift/disclosure/pkg/config"
	"github.com/go-drift/disclosure/pkg/placement"
	"github.com/go-drift/disclosure/pkg/widgets"
)

// Rect is a rectangle in scenario files.
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r Rect) rect() placement.Rect {
	return placement.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Point is a position in scenario files.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Option is a cascader option in scenario files.
type Option struct {
	Value    string   `yaml:"value"`
	Label    string   `yaml:"label"`
	Leaf     bool     `yaml:"leaf,omitempty"`
	Loading  bool     `yaml:"loading,omitempty"`
	Disabled bool     `yaml:"disabled,omitempty"`
	Children []Option `yaml:"children,omitempty"`
}

func (o Option) option() *widgets.CascaderOption {
	out := &widgets.CascaderOption{
		Value:    o.Value,
		Label:    o.Label,
		IsLeaf:   o.Leaf,
		Loading:  o.Loading,
		Disabled: o.Disabled,
	}
	for _, c := range o.Children {
		out.Children = append(out.Children, c.option())
	}
	return out
}

// Step is one scripted input.
type Step struct {
	// Do names the action: enter, leave, click, focus, blur, advance,
	// pointerdown, tap, escape, scroll, resize, move, show, hide,
	// set-visible, release, select, teardown.
	Do string `yaml:"do"`
	// On routes pointer events to the panel instead of the anchor.
	On      string          `yaml:"on,omitempty"`
	For     config.Duration `yaml:"for,omitempty"`
	At      *Point          `yaml:"at,omitempty"`
	To      *Rect           `yaml:"to,omitempty"`
	Visible bool            `yaml:"visible,omitempty"`
	Column  int             `yaml:"column,omitempty"`
	Index   int             `yaml:"index,omitempty"`
}

// Scenario describes a widget, its surroundings, and the input to replay.
type Scenario struct {
	Name      string   `yaml:"name,omitempty"`
	Widget    string   `yaml:"widget"`
	Direction string   `yaml:"direction,omitempty"`
	Anchor    Rect     `yaml:"anchor"`
	Viewport  *Rect    `yaml:"viewport,omitempty"`
	Title     string   `yaml:"title,omitempty"`
	Content   string   `yaml:"content,omitempty"`
	Trigger   string   `yaml:"trigger,omitempty"`
	Placement []string `yaml:"placement,omitempty"`
	Backdrop  bool     `yaml:"backdrop,omitempty"`
	Disabled  bool     `yaml:"disabled,omitempty"`
	Options   []Option `yaml:"options,omitempty"`
	Steps     []Step   `yaml:"steps"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

var actions = map[string]bool{
	"enter": true, "leave": true, "click": true, "focus": true, "blur": true,
	"advance": true, "pointerdown": true, "tap": true, "escape": true,
	"scroll": true, "resize": true, "move": true, "show": true, "hide": true,
	"set-visible": true, "release": true, "select": true, "teardown": true,
}

func (s *Scenario) validate() error {
	switch s.Widget {
	case config.KindTooltip, config.KindPopover, config.KindSubmenu, config.KindCascader:
	default:
		return fmt.Errorf("widget: unknown kind %q", s.Widget)
	}
	if _, err := bidi.Parse(s.Direction); err != nil {
		return fmt.Errorf("direction: %w", err)
	}
	for i, step := range s.Steps {
		do := strings.ToLower(step.Do)
		if !actions[do] {
			return fmt.Errorf("steps[%d]: unknown action %q", i, step.Do)
		}
		switch do {
		case "pointerdown", "tap":
			if step.At == nil {
				return fmt.Errorf("steps[%d]: %s needs at", i, do)
			}
		case "move":
			if step.To == nil {
				return fmt.Errorf("steps[%d]: move needs to", i)
			}
		case "select":
			if s.Widget != config.KindCascader {
				return fmt.Errorf("steps[%d]: select needs a cascader", i)
			}
			if step.Column < 0 || step.Index < 0 {
				return fmt.Errorf("steps[%d]: select needs a non-negative column and index", i)
			}
		}
		if step.On != "" && step.On != "anchor" && step.On != "panel" {
			return fmt.Errorf("steps[%d]: on must be anchor or panel", i)
		}
		s.Steps[i].Do = do
	}
	return nil
}
