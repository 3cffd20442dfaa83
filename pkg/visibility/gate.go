// Package visibility reconciles controlled and internally computed visibility.
package visibility

import (
	"log/slog"

	"github.com/go-drift/disclosure/pkg/trigger"
)

// Gate merges an optional externally controlled value with the intent
// stream from triggers and dismissal.
//
// In uncontrolled mode an intent is authoritative: it changes the rendered
// visibility and emits OnChange. In controlled mode the rendered visibility
// always equals the last controlled value; an intent that would differ only
// emits OnChange so the owner can update the value.
type Gate struct {
	// OnChange is the visibility-changed notification for the owner.
	OnChange func(visible bool)
	// OnRender is called whenever the rendered visibility changes.
	OnRender func(visible bool)
	// CanShow refuses show requests while it returns false (optional).
	CanShow func() bool
	// Disabled makes every show request a no-op.
	Disabled bool

	logger     *slog.Logger
	controlled bool
	rendered   bool
}

// NewGate creates an uncontrolled, hidden gate.
func NewGate(logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{logger: logger}
}

// Visible returns the rendered visibility.
func (g *Gate) Visible() bool {
	return g.rendered
}

// Controlled reports whether an external value is in charge.
func (g *Gate) Controlled() bool {
	return g.controlled
}

// Request applies an intent.
func (g *Gate) Request(intent trigger.Intent) {
	want := intent == trigger.Show
	if want && !g.showAllowed() {
		return
	}
	if want == g.rendered {
		return
	}
	if g.controlled {
		g.logger.Debug("intent deferred to owner", "intent", intent)
		g.notify(want)
		return
	}
	g.render(want)
	g.notify(want)
}

// SetControlled switches to controlled mode and renders v. Values set by
// the owner do not produce OnChange. A controlled show is still refused
// while the gate is disabled or CanShow says no.
func (g *Gate) SetControlled(v bool) {
	g.controlled = true
	if v && !g.showAllowed() {
		v = false
	}
	g.render(v)
}

// Release returns to uncontrolled mode keeping the current visibility.
func (g *Gate) Release() {
	g.controlled = false
}

// ForceHide renders hidden without a notification. Used on teardown.
func (g *Gate) ForceHide() {
	g.rendered = false
}

func (g *Gate) showAllowed() bool {
	if g.Disabled {
		return false
	}
	if g.CanShow != nil && !g.CanShow() {
		return false
	}
	return true
}

func (g *Gate) render(v bool) {
	if g.rendered == v {
		return
	}
	g.rendered = v
	if g.OnRender != nil {
		g.OnRender(v)
	}
}

func (g *Gate) notify(v bool) {
	if g.OnChange != nil {
		g.OnChange(v)
	}
}
