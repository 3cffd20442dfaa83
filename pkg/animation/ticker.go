// Package animation provides the timing primitives of the disclosure engine.
//
// # Core Components
//
//   - [Scheduler]: a single-threaded timer and frame loop. Enter/leave
//     delays and animation fallbacks are [Timer]s; running animations are
//     [Ticker]s. The host calls [Scheduler.Step] once per frame; tests drive
//     it with [Scheduler.Advance] on a [FakeClock].
//
//   - [Motion]: an enter/leave animation description (duration and easing)
//     played with gween tweens. [Motion.Animator] adapts it to the overlay
//     lifecycle's completion-signal contract.
//
// Nothing in this package spawns goroutines. Every callback runs inside
// Step, on the caller's goroutine, so intents are processed in arrival order.
package animation

import "time"

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the owning Scheduler's Step.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// NewTicker creates a new ticker owned by s.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		scheduler: s,
		callback:  callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.tickers[t] = struct{}{}
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	delete(t.scheduler.tickers, t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}

func (s *Scheduler) stepTickers() {
	if len(s.tickers) == 0 {
		return
	}
	// Copy so callbacks may stop or start tickers.
	tickers := make([]*Ticker, 0, len(s.tickers))
	for ticker := range s.tickers {
		tickers = append(tickers, ticker)
	}
	now := s.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	return len(s.tickers) > 0
}
