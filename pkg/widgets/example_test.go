package widgets_test

import (
	"fmt"
	"time"

	"github.com/go-drift/disclosure/pkg/animation"
	"github.com/go-drift/disclosure/pkg/config"
	"github.com/go-drift/disclosure/pkg/disclosure"
	"github.com/go-drift/disclosure/pkg/dismiss"
	"github.com/go-drift/disclosure/pkg/placement"
	"github.com/go-drift/disclosure/pkg/trigger"
	"github.com/go-drift/disclosure/pkg/widgets"
)

func ExamplePopover() {
	host := widgets.Host{
		Anchor:      disclosure.StaticAnchor{X: 400, Y: 300, Width: 80, Height: 30},
		Viewport:    func() placement.Rect { return placement.Rect{Width: 1024, Height: 768} },
		Scheduler:   animation.NewScheduler(animation.NewFakeClock()),
		Registry:    &dismiss.Registry{},
		NoAnimation: true,
	}
	p := widgets.NewPopover(host, config.Defaults()[config.KindPopover])
	p.PopoverTitle = "Title"
	p.PopoverContent = "Content"
	p.Events.OnPositionChange = func(name string, _ placement.Rect) { fmt.Println("placed", name) }
	engine := p.Attach()
	defer p.Detach()

	engine.Handle(trigger.PointerEnter)
	host.Scheduler.Advance(150 * time.Millisecond)
	fmt.Println(engine.State(), engine.Classes().Panel)
	// Output:
	// placed top
	// open [ant-popover ant-popover-placement-top]
}
