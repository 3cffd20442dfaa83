package widgets

import (
	"testing"
	"time"

	"github.com/go-drift/disclosure/pkg/animation"
	"github.com/go-drift/disclosure/pkg/bidi"
	"github.com/go-drift/disclosure/pkg/config"
	"github.com/go-drift/disclosure/pkg/disclosure"
	"github.com/go-drift/disclosure/pkg/dismiss"
	"github.com/go-drift/disclosure/pkg/errors"
	"github.com/go-drift/disclosure/pkg/overlay"
	"github.com/go-drift/disclosure/pkg/placement"
)

type recorder struct{ errs []*errors.OverlayError }

func (r *recorder) HandleError(err *errors.OverlayError) { r.errs = append(r.errs, err) }
func (r *recorder) HandlePanic(*errors.PanicError)      {}

func (r *recorder) kinds() []errors.ErrorKind {
	var out []errors.ErrorKind
	for _, err := range r.errs {
		out = append(out, err.Kind)
	}
	return out
}

func newHost(t *testing.T, dir bidi.Direction) (Host, *recorder) {
	t.Helper()
	r := &recorder{}
	errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return Host{
		Anchor:      disclosure.StaticAnchor{X: 400, Y: 300, Width: 80, Height: 30},
		Viewport:    func() placement.Rect { return placement.Rect{Width: 1024, Height: 768} },
		Layer:       overlay.NewLayer(),
		Scheduler:   animation.NewScheduler(animation.NewFakeClock()),
		Registry:    &dismiss.Registry{},
		Direction:   dir,
		NoAnimation: true,
	}, r
}

func preset(kind string) config.Preset {
	return config.Defaults()[kind]
}

func advance(h Host, d time.Duration) {
	h.Scheduler.Advance(d)
}

func TestTextContent_Size(t *testing.T) {
	tests := []struct {
		name string
		text string
		pad  float64
		want placement.Size
	}{
		{"single line", "hello", 0, placement.Size{Width: 35, Height: 13}},
		{"padded", "hi", 8, placement.Size{Width: 30, Height: 29}},
		{"longest line wins", "a\nabcd\nab", 0, placement.Size{Width: 28, Height: 39}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewTextContent(tt.text, tt.pad).Size(); got != tt.want {
				t.Errorf("Size() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTextContent_Empty(t *testing.T) {
	if !NewTextContent(" \n\t", 4).Empty() {
		t.Error("blank text should be empty")
	}
	if NewTextContent("\nx", 4).Empty() {
		t.Error("text with a visible line is not empty")
	}
}
