package animation

import (
	"sort"
	"time"
)

// Scheduler owns every suspension point of the engine: delay timers,
// animation fallbacks, and frame tickers. It is not safe for concurrent use;
// like the UI loop it models, all calls happen on one goroutine.
type Scheduler struct {
	clock   Clock
	timers  []*Timer
	tickers map[*Ticker]struct{}
	seq     uint64
}

// NewScheduler creates a scheduler reading time from clock.
// A nil clock means system time.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{
		clock:   clock,
		tickers: make(map[*Ticker]struct{}),
	}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// Timer is a one-shot callback scheduled on a Scheduler.
type Timer struct {
	scheduler *Scheduler
	due       time.Time
	seq       uint64
	fn        func()
	done      bool
}

// AfterFunc schedules fn to run on the first Step at or after d from now.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	s.seq++
	t := &Timer{
		scheduler: s,
		due:       s.Now().Add(d),
		seq:       s.seq,
		fn:        fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Stop cancels the timer. It reports whether the call prevented the timer
// from firing.
func (t *Timer) Stop() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	t.scheduler.remove(t)
	return true
}

// DueAt returns when the timer fires.
func (t *Timer) DueAt() time.Time {
	return t.due
}

// Active reports whether the timer is still pending.
func (t *Timer) Active() bool {
	return t != nil && !t.done
}

func (s *Scheduler) remove(t *Timer) {
	for i, pending := range s.timers {
		if pending == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Pending returns the number of timers that have not fired or been stopped.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// next returns the earliest pending timer, ordered by due time then by
// scheduling order.
func (s *Scheduler) next() *Timer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].due.Equal(s.timers[j].due) {
			return s.timers[i].seq < s.timers[j].seq
		}
		return s.timers[i].due.Before(s.timers[j].due)
	})
	return s.timers[0]
}

// FrameInterval is the frame spacing Advance emulates while tickers run.
const FrameInterval = 16 * time.Millisecond

// Step advances active tickers and then fires every timer that is due.
// Tickers run first so an animation that finished by now can cancel its
// own fallback timer. Timers scheduled by a callback with no delay fire
// within the same Step.
func (s *Scheduler) Step() {
	s.stepTickers()
	now := s.Now()
	for {
		t := s.next()
		if t == nil || t.due.After(now) {
			break
		}
		t.done = true
		s.remove(t)
		if t.fn != nil {
			t.fn()
		}
	}
}

// Advance moves a FakeClock forward by d, stepping at each timer deadline
// and, while tickers are active, at every FrameInterval. With any other
// clock it simply calls Step.
func (s *Scheduler) Advance(d time.Duration) {
	fake, ok := s.clock.(*FakeClock)
	if !ok {
		s.Step()
		return
	}
	target := fake.Now().Add(d)
	for {
		next := target
		if t := s.next(); t != nil && t.due.Before(next) {
			next = t.due
		}
		if s.HasActiveTickers() {
			if frame := fake.Now().Add(FrameInterval); frame.Before(next) {
				next = frame
			}
		}
		if next.After(fake.Now()) {
			fake.Set(next)
		}
		s.Step()
		if !next.Before(target) {
			return
		}
	}
}

// Reset stops every timer and ticker. Used on teardown of a host loop.
func (s *Scheduler) Reset() {
	for _, t := range s.timers {
		t.done = true
	}
	s.timers = nil
	for t := range s.tickers {
		t.isActive = false
	}
	s.tickers = make(map[*Ticker]struct{})
}
