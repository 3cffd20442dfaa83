package animation

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Frame is the visual state of a panel during an enter/leave animation.
type Frame struct {
	Scale   float32
	Opacity float32
}

// Shown is the resting frame of a fully visible panel.
var Shown = Frame{Scale: 1, Opacity: 1}

// Motion describes a zoom-style enter/leave animation.
type Motion struct {
	// Duration is the length of a full enter or leave animation.
	Duration time.Duration
	// Enter eases the entering animation.
	Enter ease.TweenFunc
	// Leave eases the leaving animation.
	Leave ease.TweenFunc
	// Hidden is the frame the panel enters from and leaves to.
	Hidden Frame
}

// ZoomBig is the default motion for tooltips and popovers.
var ZoomBig = Motion{
	Duration: 200 * time.Millisecond,
	Enter:    EaseOutCirc.Tween(),
	Leave:    EaseInOutCirc.Tween(),
	Hidden:   Frame{Scale: 0.8, Opacity: 0},
}

// SlideUp is the default motion for submenu and cascader panels.
var SlideUp = Motion{
	Duration: 200 * time.Millisecond,
	Enter:    EaseOutQuint.Tween(),
	Leave:    EaseInQuint.Tween(),
	Hidden:   Frame{Scale: 0.8, Opacity: 0},
}

// Animator plays a Motion on a Scheduler and reports completion. It keeps
// the last produced frame so a reversed animation starts where the
// interrupted one stopped.
type Animator struct {
	Scheduler *Scheduler
	Motion    Motion
	// OnFrame receives every produced frame (optional).
	OnFrame func(Frame)

	current Frame
	ticker  *Ticker
}

// NewAnimator creates an animator resting at the motion's hidden frame.
func NewAnimator(s *Scheduler, m Motion) *Animator {
	return &Animator{Scheduler: s, Motion: m, current: m.Hidden}
}

// Current returns the last produced frame.
func (a *Animator) Current() Frame {
	return a.current
}

// Animate starts the enter (entering=true) or leave animation and calls done
// once it finishes. The returned function cancels the animation without
// calling done. A zero duration completes synchronously.
func (a *Animator) Animate(entering bool, done func()) (cancel func()) {
	a.stop()

	to, fn := a.Motion.Hidden, a.Motion.Leave
	if entering {
		to, fn = Shown, a.Motion.Enter
	}
	if fn == nil {
		fn = ease.Linear
	}

	// Scale the duration by the remaining distance so a reversal halfway
	// through takes half as long.
	full := a.Motion.Hidden.Opacity - Shown.Opacity
	remaining := to.Opacity - a.current.Opacity
	fraction := float32(1)
	if full != 0 {
		fraction = abs32(remaining / full)
	}
	duration := float32(a.Motion.Duration.Seconds()) * fraction

	if duration <= 0 {
		a.setFrame(to)
		if done != nil {
			done()
		}
		return func() {}
	}

	scale := gween.New(a.current.Scale, to.Scale, duration, fn)
	opacity := gween.New(a.current.Opacity, to.Opacity, duration, fn)

	ticker := a.Scheduler.NewTicker(nil)
	ticker.callback = func(elapsed time.Duration) {
		at := float32(elapsed.Seconds())
		s, _ := scale.Set(at)
		o, finished := opacity.Set(at)
		a.setFrame(Frame{Scale: s, Opacity: o})
		if finished {
			ticker.Stop()
			a.ticker = nil
			if done != nil {
				done()
			}
		}
	}
	a.ticker = ticker
	ticker.Start()

	return func() {
		if a.ticker == ticker {
			a.stop()
		}
	}
}

func (a *Animator) stop() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
}

func (a *Animator) setFrame(f Frame) {
	a.current = f
	if a.OnFrame != nil {
		a.OnFrame(f)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
