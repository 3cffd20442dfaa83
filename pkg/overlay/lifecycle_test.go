package overlay

import (
	"testing"
	"time"

	"github.com/go-drift/disclosure/pkg/animation"
	"github.com/go-drift/disclosure/pkg/errors"
	"github.com/go-drift/disclosure/pkg/placement"
)

type recorder struct {
	errs []*errors.OverlayError
}

func (r *recorder) HandleError(err *errors.OverlayError) { r.errs = append(r.errs, err) }
func (r *recorder) HandlePanic(*errors.PanicError)       {}

func (r *recorder) has(target error) bool {
	for _, err := range r.errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func captureErrors(t *testing.T) *recorder {
	t.Helper()
	r := &recorder{}
	errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return r
}

type fixedContent placement.Size

func (c fixedContent) Size() placement.Size { return placement.Size(c) }

// stuckAnimator never signals completion.
type stuckAnimator struct{ cancels int }

func (a *stuckAnimator) Animate(bool, func()) func() {
	return func() { a.cancels++ }
}

type harness struct {
	layer     *Layer
	scheduler *animation.Scheduler
	attached  bool
	anchor    placement.Rect
	states    []State
	positions []string
	life      *Lifecycle
}

func newHarness(t *testing.T, mutate func(*Config)) *harness {
	t.Helper()
	h := &harness{
		layer:     NewLayer(),
		scheduler: animation.NewScheduler(animation.NewFakeClock()),
		attached:  true,
		anchor:    placement.Rect{X: 400, Y: 300, Width: 80, Height: 30},
	}
	cfg := Config{
		Layer:     h.layer,
		Scheduler: h.scheduler,
		Anchor: func() (placement.Rect, bool) {
			return h.anchor, h.attached
		},
		Viewport:   fixed(placement.Rect{Width: 1024, Height: 768}),
		Placements: func() placement.List { return placement.Named("top", "bottom") },
		Content:    fixedContent{Width: 120, Height: 40},
		Animator:   animation.NewAnimator(h.scheduler, animation.ZoomBig),
		Label:      "test",
		OnStateChange: func(s State) {
			h.states = append(h.states, s)
		},
		OnPositionChange: func(r placement.Result) {
			h.positions = append(h.positions, r.Candidate.Name)
		},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	h.life = NewLifecycle(cfg)
	return h
}

func TestLifecycle_NoAnimationIsImmediate(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.NoAnimation = true })

	h.life.Show()
	if h.life.State() != Open {
		t.Fatalf("state = %v, want open", h.life.State())
	}
	if p := h.life.Panel(); p == nil || p.Phase != PhaseActive || !p.IsOpen {
		t.Fatalf("panel = %+v, want active and open", p)
	}

	h.life.Hide()
	if h.life.State() != Closed || h.life.Panel() != nil {
		t.Fatal("hide without animation should unmount synchronously")
	}
	if h.layer.Len() != 0 {
		t.Error("layer should be empty")
	}
	if h.life.Mounts() != 1 || h.life.Unmounts() != 1 {
		t.Errorf("mounts=%d unmounts=%d, want 1/1", h.life.Mounts(), h.life.Unmounts())
	}
}

func TestLifecycle_AnimatedOpenAndClose(t *testing.T) {
	h := newHarness(t, nil)

	h.life.Show()
	if h.life.State() != Opening {
		t.Fatalf("state = %v, want opening", h.life.State())
	}
	if h.life.Panel().Placement == nil {
		t.Fatal("panel must be positioned before the first frame")
	}

	h.scheduler.Advance(250 * time.Millisecond)
	if h.life.State() != Open {
		t.Fatalf("state = %v, want open", h.life.State())
	}

	h.life.Hide()
	if h.life.State() != Closing {
		t.Fatalf("state = %v, want closing", h.life.State())
	}
	p := h.life.Panel()
	if p == nil || p.IsOpen || p.Phase != PhaseLeaving {
		t.Fatalf("panel during leave = %+v", p)
	}
	if !p.Entry().Mounted() {
		t.Error("panel must stay mounted until the leave animation completes")
	}

	h.scheduler.Advance(250 * time.Millisecond)
	if h.life.State() != Closed || h.layer.Len() != 0 {
		t.Errorf("state = %v, layer len = %d, want closed and empty", h.life.State(), h.layer.Len())
	}

	want := []State{Opening, Open, Closing, Closed}
	if len(h.states) != len(want) {
		t.Fatalf("states = %v, want %v", h.states, want)
	}
	for i := range want {
		if h.states[i] != want[i] {
			t.Errorf("states[%d] = %v, want %v", i, h.states[i], want[i])
		}
	}
}

func TestLifecycle_ShowWhileClosingKeepsPanel(t *testing.T) {
	h := newHarness(t, nil)

	h.life.Show()
	h.scheduler.Advance(250 * time.Millisecond)
	h.life.Hide()
	h.scheduler.Advance(50 * time.Millisecond)
	h.life.Show()

	if h.life.State() != Opening {
		t.Fatalf("state = %v, want opening", h.life.State())
	}
	h.scheduler.Advance(250 * time.Millisecond)
	if h.life.State() != Open {
		t.Fatalf("state = %v, want open", h.life.State())
	}
	if h.life.Mounts() != 1 || h.life.Unmounts() != 0 {
		t.Errorf("mounts=%d unmounts=%d, want 1/0", h.life.Mounts(), h.life.Unmounts())
	}
}

func TestLifecycle_IdempotentShowAndHide(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.NoAnimation = true })

	h.life.Show()
	h.life.Show()
	if h.life.Mounts() != 1 || h.layer.Len() != 1 {
		t.Error("second show must not mount again")
	}
	h.life.Hide()
	h.life.Hide()
	if h.life.Unmounts() != 1 {
		t.Error("second hide must not unmount again")
	}
}

func TestLifecycle_FallbackAdvancesStuckAnimation(t *testing.T) {
	rec := captureErrors(t)
	stuck := &stuckAnimator{}
	h := newHarness(t, func(c *Config) {
		c.Animator = stuck
		c.Fallback = 300 * time.Millisecond
	})

	h.life.Show()
	h.scheduler.Advance(299 * time.Millisecond)
	if h.life.State() != Opening {
		t.Fatalf("state = %v, want opening before the fallback", h.life.State())
	}
	h.scheduler.Advance(time.Millisecond)
	if h.life.State() != Open {
		t.Fatalf("state = %v, want open after the fallback", h.life.State())
	}
	if !rec.has(errors.ErrAnimationTimeout) {
		t.Error("fallback should report an animation timeout")
	}

	h.life.Hide()
	h.scheduler.Advance(300 * time.Millisecond)
	if h.life.State() != Closed || h.layer.Len() != 0 {
		t.Error("fallback should unmount a stuck leave animation")
	}
}

func TestLifecycle_MissingAnchorIgnoresShow(t *testing.T) {
	rec := captureErrors(t)
	h := newHarness(t, nil)
	h.attached = false

	h.life.Show()
	if h.life.State() != Closed || h.life.Mounts() != 0 {
		t.Error("show without an anchor must not mount")
	}
	if !rec.has(errors.ErrNoAnchor) {
		t.Error("missing anchor should be reported")
	}
}

func TestLifecycle_TeardownWins(t *testing.T) {
	rec := captureErrors(t)
	h := newHarness(t, nil)

	h.life.Show()
	h.life.Teardown()
	if h.life.Panel() != nil || h.layer.Len() != 0 {
		t.Fatal("teardown must unmount synchronously")
	}
	if n := h.scheduler.Pending(); n != 0 {
		t.Errorf("pending timers after teardown = %d", n)
	}
	if h.scheduler.HasActiveTickers() {
		t.Error("animation still running after teardown")
	}

	h.life.Show()
	if h.life.Panel() != nil {
		t.Error("show after teardown must be ignored")
	}
	if !rec.has(errors.ErrTornDown) {
		t.Error("use after teardown should be reported")
	}
	h.life.Teardown()
}

func TestLifecycle_BackdropBelowPanel(t *testing.T) {
	taps := 0
	h := newHarness(t, func(c *Config) {
		c.NoAnimation = true
		c.Backdrop = func() bool { return true }
		c.OnBackdropTap = func() { taps++ }
	})

	h.life.Show()
	entries := h.layer.Entries()
	if len(entries) != 2 {
		t.Fatalf("layer len = %d, want 2", len(entries))
	}
	if entries[0].Label != "backdrop" || entries[1] != h.life.Panel().Entry() {
		t.Fatal("backdrop should sit directly below the panel")
	}

	h.layer.Tap(placement.Point{X: 1, Y: 1})
	if taps != 1 {
		t.Errorf("backdrop taps = %d, want 1", taps)
	}

	h.life.Hide()
	if h.layer.Len() != 0 {
		t.Error("backdrop should be removed with the panel")
	}
}

func TestLifecycle_RepositionReportsChangesOnly(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.NoAnimation = true })

	h.life.Show()
	h.life.Reposition()
	if len(h.positions) != 1 || h.positions[0] != "top" {
		t.Fatalf("positions = %v, want [top]", h.positions)
	}

	// Move the anchor to the top edge so "top" no longer fits.
	h.anchor.Y = 5
	h.life.Reposition()
	if len(h.positions) != 2 || h.positions[1] != "bottom" {
		t.Fatalf("positions = %v, want [top bottom]", h.positions)
	}
	if got := h.life.Panel().Placement.Name; got != "bottom" {
		t.Errorf("placement = %q, want bottom", got)
	}
}

func TestLifecycle_RepositionWhileClosedIsNoop(t *testing.T) {
	h := newHarness(t, nil)
	h.life.Reposition()
	if len(h.positions) != 0 {
		t.Error("closed lifecycle must not compute placement")
	}
}
