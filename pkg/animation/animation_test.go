package animation

import (
	"math"
	"testing"
	"time"
)

func TestScheduler_FiresInDueOrder(t *testing.T) {
	s := NewScheduler(NewFakeClock())
	var order []string
	s.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(50 * time.Millisecond)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("fired %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestScheduler_CallbackObservesDueTime(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()
	s := NewScheduler(clk)
	var firedAt time.Duration
	s.AfterFunc(40*time.Millisecond, func() { firedAt = s.Now().Sub(start) })

	s.Advance(time.Second)

	if firedAt != 40*time.Millisecond {
		t.Errorf("fired at %v, want 40ms", firedAt)
	}
}

func TestTimer_Stop(t *testing.T) {
	s := NewScheduler(NewFakeClock())
	fired := false
	timer := s.AfterFunc(10*time.Millisecond, func() { fired = true })

	if !timer.Stop() {
		t.Error("Stop should report that it prevented the timer")
	}
	if timer.Stop() {
		t.Error("second Stop should be a no-op")
	}
	s.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestScheduler_ZeroDelayFromCallbackFiresSameStep(t *testing.T) {
	s := NewScheduler(NewFakeClock())
	count := 0
	s.AfterFunc(0, func() {
		count++
		s.AfterFunc(0, func() { count++ })
	})
	s.Step()
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestScheduler_Reset(t *testing.T) {
	s := NewScheduler(NewFakeClock())
	fired := false
	timer := s.AfterFunc(time.Millisecond, func() { fired = true })
	ticker := s.NewTicker(func(time.Duration) {})
	ticker.Start()

	s.Reset()
	s.Advance(time.Second)

	if fired || timer.Active() {
		t.Error("timer survived Reset")
	}
	if ticker.IsActive() || s.HasActiveTickers() {
		t.Error("ticker survived Reset")
	}
}

func TestTicker_Elapsed(t *testing.T) {
	clk := NewFakeClock()
	s := NewScheduler(clk)
	var last time.Duration
	ticker := s.NewTicker(func(elapsed time.Duration) { last = elapsed })
	ticker.Start()
	clk.Advance(48 * time.Millisecond)
	s.Step()

	if last != 48*time.Millisecond {
		t.Errorf("callback elapsed = %v, want 48ms", last)
	}
	if ticker.Elapsed() != 48*time.Millisecond {
		t.Errorf("Elapsed() = %v", ticker.Elapsed())
	}
	ticker.Stop()
	if ticker.Elapsed() != 0 {
		t.Error("stopped ticker should report zero elapsed")
	}
}

func TestAnimator_EnterCompletes(t *testing.T) {
	s := NewScheduler(NewFakeClock())
	a := NewAnimator(s, ZoomBig)
	done := false
	a.Animate(true, func() { done = true })

	s.Advance(100 * time.Millisecond)
	if done {
		t.Fatal("enter finished early")
	}
	mid := a.Current()
	if mid.Opacity <= 0 || mid.Opacity >= 1 {
		t.Errorf("mid-animation opacity = %v", mid.Opacity)
	}

	s.Advance(150 * time.Millisecond)
	if !done {
		t.Fatal("enter did not finish")
	}
	if a.Current() != Shown {
		t.Errorf("final frame = %+v, want %+v", a.Current(), Shown)
	}
}

func TestAnimator_CancelSuppressesDone(t *testing.T) {
	s := NewScheduler(NewFakeClock())
	a := NewAnimator(s, ZoomBig)
	done := false
	cancel := a.Animate(true, func() { done = true })
	s.Advance(50 * time.Millisecond)
	cancel()
	s.Advance(time.Second)
	if done {
		t.Error("cancelled animation reported completion")
	}
	if s.HasActiveTickers() {
		t.Error("cancelled animation left a ticker running")
	}
}

func TestAnimator_ReverseStartsFromCurrentFrame(t *testing.T) {
	s := NewScheduler(NewFakeClock())
	a := NewAnimator(s, Motion{Duration: 200 * time.Millisecond, Hidden: Frame{Scale: 0.8}})
	a.Animate(true, nil)
	s.Advance(96 * time.Millisecond)
	reached := a.Current().Opacity

	left := false
	a.Animate(false, func() { left = true })
	s.Advance(time.Duration(float64(200*time.Millisecond)*float64(reached)) + 20*time.Millisecond)
	if !left {
		t.Errorf("leave from opacity %v did not finish in proportional time", reached)
	}
}

func TestAnimator_ZeroDurationIsSynchronous(t *testing.T) {
	s := NewScheduler(NewFakeClock())
	a := NewAnimator(s, Motion{Hidden: Frame{Scale: 0.8}})
	done := false
	a.Animate(true, func() { done = true })
	if !done {
		t.Error("zero-duration animation should complete synchronously")
	}
}

func TestCubicBezier(t *testing.T) {
	linear := CubicBezier(0, 0, 1, 1)
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := linear(x); math.Abs(got-x) > 1e-4 {
			t.Errorf("linear(%v) = %v", x, got)
		}
	}

	curves := map[string]Curve{
		"outCirc":   EaseOutCirc,
		"inOutCirc": EaseInOutCirc,
		"outQuint":  EaseOutQuint,
		"inQuint":   EaseInQuint,
	}
	for name, c := range curves {
		if c(0) != 0 || c(1) != 1 {
			t.Errorf("%s: end points = %v, %v", name, c(0), c(1))
		}
		prev := 0.0
		for i := 1; i <= 20; i++ {
			v := c(float64(i) / 20)
			if v < prev-1e-9 {
				t.Errorf("%s not monotonic at %d: %v < %v", name, i, v, prev)
			}
			prev = v
		}
	}
	if EaseOutCirc(0.5) <= 0.5 {
		t.Error("ease-out should be ahead of linear at the midpoint")
	}
}

func TestCurve_Tween(t *testing.T) {
	fn := CubicBezier(0, 0, 1, 1).Tween()
	if got := fn(0.5, 10, 20, 1); math.Abs(float64(got)-20) > 1e-3 {
		t.Errorf("tween midpoint = %v, want 20", got)
	}
	if got := fn(0, 10, 20, 0); got != 30 {
		t.Errorf("zero duration = %v, want the end value", got)
	}
}
