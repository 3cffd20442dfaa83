package dismiss

import (
	"sync"

	"github.com/go-drift/disclosure/pkg/placement"
)

// Subscriber receives viewport and global pointer events from a Registry.
type Subscriber interface {
	PointerDown(p placement.Point)
	Scroll()
	Resize()
}

// Registry fans process-wide viewport events out to open overlays. It is
// reference counted: the host listeners are attached when the first
// subscriber joins and detached when the last one leaves.
type Registry struct {
	// OnAttach is called with true when the first subscriber joins and
	// with false when the last one leaves. Hosts attach and detach their
	// scroll/resize/pointer listeners here.
	OnAttach func(attached bool)

	mu   sync.Mutex
	subs []Subscriber
}

// Shared is the process-wide registry used when an engine has none
// configured.
var Shared = &Registry{}

// Acquire subscribes s. Acquiring an already subscribed s is a no-op.
func (r *Registry) Acquire(s Subscriber) {
	r.mu.Lock()
	for _, existing := range r.subs {
		if existing == s {
			r.mu.Unlock()
			return
		}
	}
	r.subs = append(r.subs, s)
	first := len(r.subs) == 1
	hook := r.OnAttach
	r.mu.Unlock()

	if first && hook != nil {
		hook(true)
	}
}

// Release unsubscribes s. Releasing an unknown s is a no-op.
func (r *Registry) Release(s Subscriber) {
	r.mu.Lock()
	removed := false
	for i, existing := range r.subs {
		if existing == s {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			removed = true
			break
		}
	}
	last := removed && len(r.subs) == 0
	hook := r.OnAttach
	r.mu.Unlock()

	if last && hook != nil {
		hook(false)
	}
}

// Count returns the number of subscribers.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Attached reports whether host listeners should currently be attached.
func (r *Registry) Attached() bool {
	return r.Count() > 0
}

// PointerDown delivers a global pointer-down to every subscriber.
func (r *Registry) PointerDown(p placement.Point) {
	for _, s := range r.snapshot() {
		s.PointerDown(p)
	}
}

// Scroll delivers a viewport scroll to every subscriber.
func (r *Registry) Scroll() {
	for _, s := range r.snapshot() {
		s.Scroll()
	}
}

// Resize delivers a viewport resize to every subscriber.
func (r *Registry) Resize() {
	for _, s := range r.snapshot() {
		s.Resize()
	}
}

// snapshot copies the subscribers so handlers may release themselves.
func (r *Registry) snapshot() []Subscriber {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.subs) == 0 {
		return nil
	}
	out := make([]Subscriber, len(r.subs))
	copy(out, r.subs)
	return out
}
