// Package config loads widget presets from an optional disclosure.yaml.
//
// A preset holds the per-widget defaults the engine itself never
// hardcodes: trigger kind, placement names, enter/leave delays, backdrop,
// and animation. Values from the file are merged over the built-in
// defaults returned by [Defaults].
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/disclosure/pkg/animation"
	derrors "github.com/go-drift/disclosure/pkg/errors"
	"github.com/go-drift/disclosure/pkg/placement"
	"github.com/go-drift/disclosure/pkg/trigger"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "disclosure.yaml"

// SchemaMajor is the supported major schema version.
const SchemaMajor = "v1"

// Widget kinds with built-in presets.
const (
	KindTooltip  = "tooltip"
	KindPopover  = "popover"
	KindSubmenu  = "submenu"
	KindCascader = "cascader"
)

// Config represents the optional disclosure.yaml configuration.
type Config struct {
	Version string                  `yaml:"version,omitempty"`
	Logging LoggingConfig           `yaml:"logging"`
	Motion  MotionConfig            `yaml:"motion"`
	Widgets map[string]WidgetConfig `yaml:"widgets,omitempty"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// MotionConfig contains animation settings shared by every widget.
type MotionConfig struct {
	Duration *Duration `yaml:"duration,omitempty"`
	Fallback *Duration `yaml:"fallback,omitempty"`
}

// WidgetConfig overrides one widget kind's preset. Unset fields keep the
// built-in default.
type WidgetConfig struct {
	Trigger         string    `yaml:"trigger,omitempty"`
	Placement       []string  `yaml:"placement,omitempty"`
	MouseEnterDelay *Duration `yaml:"mouseEnterDelay,omitempty"`
	MouseLeaveDelay *Duration `yaml:"mouseLeaveDelay,omitempty"`
	Backdrop        *bool     `yaml:"backdrop,omitempty"`
	NoAnimation     *bool     `yaml:"noAnimation,omitempty"`
}

// Preset is the resolved configuration of one widget kind.
type Preset struct {
	Kind    string
	Prefix  string
	Trigger trigger.Kind
	// Placement is the left-to-right default placement list.
	Placement []string
	// Fallbacks are tried after a single placement, explicit or default.
	Fallbacks       []string
	MouseEnterDelay time.Duration
	MouseLeaveDelay time.Duration
	Backdrop        bool
	NoAnimation     bool
	Motion          animation.Motion
}

// TriggerConfig returns the preset's trigger configuration.
func (p Preset) TriggerConfig() trigger.Config {
	return trigger.Config{
		Kind:       p.Trigger,
		EnterDelay: p.MouseEnterDelay,
		LeaveDelay: p.MouseLeaveDelay,
	}
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Level    slog.Level
	Format   string
	Fallback time.Duration
	Presets  map[string]Preset
}

// Preset returns the preset for kind, falling back to the tooltip preset
// for unknown kinds.
func (r *Resolved) Preset(kind string) Preset {
	if p, ok := r.Presets[kind]; ok {
		return p
	}
	return r.Presets[KindTooltip]
}

var tooltipFallbacks = []string{"top", "right", "bottom", "left"}

// Defaults returns the built-in presets.
func Defaults() map[string]Preset {
	return map[string]Preset{
		KindTooltip: {
			Kind:            KindTooltip,
			Prefix:          "ant-tooltip",
			Trigger:         trigger.Hover,
			Placement:       []string{"top"},
			Fallbacks:       slices.Clone(tooltipFallbacks),
			MouseEnterDelay: 150 * time.Millisecond,
			MouseLeaveDelay: 100 * time.Millisecond,
			Motion:          animation.ZoomBig,
		},
		KindPopover: {
			Kind:            KindPopover,
			Prefix:          "ant-popover",
			Trigger:         trigger.Hover,
			Placement:       []string{"top"},
			Fallbacks:       slices.Clone(tooltipFallbacks),
			MouseEnterDelay: 150 * time.Millisecond,
			MouseLeaveDelay: 100 * time.Millisecond,
			Motion:          animation.ZoomBig,
		},
		KindSubmenu: {
			Kind:      KindSubmenu,
			Prefix:    "ant-menu-submenu",
			Trigger:   trigger.Hover,
			Placement: []string{"rightTop", "leftTop"},
			Motion:    animation.SlideUp,
		},
		KindCascader: {
			Kind:            KindCascader,
			Prefix:          "ant-cascader-menus",
			Trigger:         trigger.Click,
			Placement:       []string{"bottomLeft", "bottomRight", "topLeft", "topRight"},
			MouseLeaveDelay: 150 * time.Millisecond,
			Motion:          animation.SlideUp,
		},
	}
}

// LoadOptional reads disclosure.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Parse decodes configuration from YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveDir loads disclosure.yaml (if present) from dir and resolves it.
func ResolveDir(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve validates the configuration and merges it over the defaults.
// Invalid input is also reported to the error handler.
func (c *Config) Resolve() (*Resolved, error) {
	r, err := c.resolve()
	if err != nil {
		derrors.Report(&derrors.OverlayError{
			Op:   "config.Resolve",
			Kind: derrors.KindConfig,
			Err:  err,
		})
		return nil, err
	}
	return r, nil
}

func (c *Config) resolve() (*Resolved, error) {
	if err := validateVersion(c.Version); err != nil {
		return nil, err
	}

	r := &Resolved{
		Level:    slog.LevelInfo,
		Format:   "text",
		Fallback: 500 * time.Millisecond,
		Presets:  Defaults(),
	}

	if level := strings.TrimSpace(c.Logging.Level); level != "" {
		if err := r.Level.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("logging.level: %w", err)
		}
	}
	switch format := strings.ToLower(strings.TrimSpace(c.Logging.Format)); format {
	case "":
	case "text", "json":
		r.Format = format
	default:
		return nil, fmt.Errorf("logging.format: unsupported format %q", c.Logging.Format)
	}

	if c.Motion.Fallback != nil {
		r.Fallback = c.Motion.Fallback.Std()
	}
	if c.Motion.Duration != nil {
		for kind, p := range r.Presets {
			p.Motion.Duration = c.Motion.Duration.Std()
			r.Presets[kind] = p
		}
	}

	kinds := make([]string, 0, len(c.Widgets))
	for kind := range c.Widgets {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	for _, kind := range kinds {
		base, ok := r.Presets[kind]
		if !ok {
			return nil, fmt.Errorf("widgets: unknown widget kind %q", kind)
		}
		p, err := merge(base, c.Widgets[kind])
		if err != nil {
			return nil, fmt.Errorf("widgets.%s: %w", kind, err)
		}
		r.Presets[kind] = p
	}
	return r, nil
}

func merge(p Preset, w WidgetConfig) (Preset, error) {
	if w.Trigger != "" {
		kind, err := trigger.ParseKind(w.Trigger)
		if err != nil {
			return p, err
		}
		p.Trigger = kind
	}
	if len(w.Placement) > 0 {
		for _, name := range w.Placement {
			if _, ok := placement.Lookup(name); !ok {
				return p, fmt.Errorf("%w: %q", derrors.ErrUnknownPlacement, name)
			}
		}
		p.Placement = slices.Clone(w.Placement)
	}
	if w.MouseEnterDelay != nil {
		p.MouseEnterDelay = w.MouseEnterDelay.Std()
	}
	if w.MouseLeaveDelay != nil {
		p.MouseLeaveDelay = w.MouseLeaveDelay.Std()
	}
	if w.Backdrop != nil {
		p.Backdrop = *w.Backdrop
	}
	if w.NoAnimation != nil {
		p.NoAnimation = *w.NoAnimation
	}
	return p, nil
}

func validateVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a semantic version", v)
	}
	if semver.Major(v) != SchemaMajor {
		return fmt.Errorf("%w: %s (want %s.x)", derrors.ErrUnsupportedSchema, v, SchemaMajor)
	}
	return nil
}
