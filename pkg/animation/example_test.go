package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/disclosure/pkg/animation"
)

// A fake clock makes delays deterministic: Advance moves time forward and
// fires every timer that came due.
func ExampleScheduler() {
	s := animation.NewScheduler(animation.NewFakeClock())
	s.AfterFunc(150*time.Millisecond, func() { fmt.Println("show") })
	hide := s.AfterFunc(100*time.Millisecond, func() { fmt.Println("hide") })
	hide.Stop()

	s.Advance(time.Second)
	fmt.Println("pending:", s.Pending())
	// Output:
	// show
	// pending: 0
}

func ExampleAnimator() {
	s := animation.NewScheduler(animation.NewFakeClock())
	a := animation.NewAnimator(s, animation.ZoomBig)
	a.Animate(true, func() { fmt.Println("entered") })

	s.Advance(animation.ZoomBig.Duration + 50*time.Millisecond)
	fmt.Printf("scale %.1f, opacity %.1f\n", a.Current().Scale, a.Current().Opacity)
	// Output:
	// entered
	// scale 1.0, opacity 1.0
}
