// Package trigger maps raw anchor and panel events to show/hide intents.
//
// A [Controller] never changes visibility itself. It emits [Intent]s to a
// sink, applying enter/leave delays for hover and toggling for click. At
// most one delayed intent is pending at any time; a newer event always
// cancels it.
package trigger

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-drift/disclosure/pkg/animation"
)

// Kind selects which events open and close the panel.
type Kind int

const (
	Hover Kind = iota
	Click
	Focus
	// Manual disables every internal trigger; visibility comes only from
	// the controlled value.
	Manual
)

func (k Kind) String() string {
	switch k {
	case Hover:
		return "hover"
	case Click:
		return "click"
	case Focus:
		return "focus"
	case Manual:
		return "manual"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a trigger name to a Kind. The empty string and
// "null" are Manual, matching hosts that pass no trigger at all.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hover":
		return Hover, nil
	case "click":
		return Click, nil
	case "focus":
		return Focus, nil
	case "manual", "", "null":
		return Manual, nil
	default:
		return Manual, fmt.Errorf("unsupported trigger: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Intent is a request to show or hide the panel.
type Intent int

const (
	Show Intent = iota
	Hide
)

func (i Intent) String() string {
	if i == Show {
		return "show"
	}
	return "hide"
}

// Event is a raw input event on the anchor or the panel.
type Event int

const (
	PointerEnter Event = iota
	PointerLeave
	PointerClick
	FocusIn
	FocusOut
)

func (e Event) String() string {
	switch e {
	case PointerEnter:
		return "enter"
	case PointerLeave:
		return "leave"
	case PointerClick:
		return "click"
	case FocusIn:
		return "focusin"
	case FocusOut:
		return "focusout"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Config configures a Controller. Delays are per widget; the controller
// has no built-in defaults beyond zero.
type Config struct {
	Kind       Kind
	EnterDelay time.Duration
	LeaveDelay time.Duration
}

// Pending describes the delayed intent waiting to fire.
type Pending struct {
	Intent Intent
	DueAt  time.Time
}

// Controller turns events into intents.
type Controller struct {
	// Visible reports the current visibility for click toggling. When nil
	// the controller toggles against the last intent it emitted.
	Visible func() bool

	cfg       Config
	scheduler *animation.Scheduler
	emit      func(Intent)
	logger    *slog.Logger

	timer   *animation.Timer
	pending Intent
	last    Intent
}

// NewController creates a controller emitting intents to emit.
func NewController(s *animation.Scheduler, cfg Config, emit func(Intent), logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		cfg:       cfg,
		scheduler: s,
		emit:      emit,
		logger:    logger,
		last:      Hide,
	}
}

// Config returns the active configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the configuration. A pending intent is cancelled when
// the trigger kind changes.
func (c *Controller) SetConfig(cfg Config) {
	if cfg.Kind != c.cfg.Kind {
		c.Cancel()
	}
	c.cfg = cfg
}

// Handle interprets an event on the anchor.
func (c *Controller) Handle(ev Event) {
	switch c.cfg.Kind {
	case Hover:
		switch ev {
		case PointerEnter:
			c.schedule(Show, c.cfg.EnterDelay)
		case PointerLeave:
			c.schedule(Hide, c.cfg.LeaveDelay)
		}
	case Click:
		if ev == PointerClick {
			c.Cancel()
			if c.isVisible() {
				c.fire(Hide)
			} else {
				c.fire(Show)
			}
		}
	case Focus:
		switch ev {
		case FocusIn:
			c.Cancel()
			c.fire(Show)
		case FocusOut:
			c.Cancel()
			c.fire(Hide)
		}
	}
}

// HandlePanel interprets an event on the floating panel. Only hover
// triggers react: entering the panel keeps it open, leaving it starts the
// leave delay.
func (c *Controller) HandlePanel(ev Event) {
	if c.cfg.Kind != Hover {
		return
	}
	switch ev {
	case PointerEnter:
		if c.timer.Active() && c.pending == Hide {
			c.Cancel()
		}
	case PointerLeave:
		c.schedule(Hide, c.cfg.LeaveDelay)
	}
}

// Pending returns the delayed intent, if any.
func (c *Controller) Pending() (Pending, bool) {
	if !c.timer.Active() {
		return Pending{}, false
	}
	return Pending{Intent: c.pending, DueAt: c.timer.DueAt()}, true
}

// Cancel drops the pending intent.
func (c *Controller) Cancel() {
	if c.timer.Stop() {
		c.logger.Debug("intent cancelled", "intent", c.pending)
	}
	c.timer = nil
}

func (c *Controller) schedule(intent Intent, delay time.Duration) {
	if c.timer.Active() {
		if c.pending == intent {
			return
		}
		c.Cancel()
	}
	if delay <= 0 {
		c.fire(intent)
		return
	}
	c.pending = intent
	c.timer = c.scheduler.AfterFunc(delay, func() {
		c.timer = nil
		c.fire(intent)
	})
}

func (c *Controller) fire(intent Intent) {
	c.last = intent
	c.logger.Debug("intent", "trigger", c.cfg.Kind, "intent", intent)
	if c.emit != nil {
		c.emit(intent)
	}
}

func (c *Controller) isVisible() bool {
	if c.Visible != nil {
		return c.Visible()
	}
	return c.last == Show
}
