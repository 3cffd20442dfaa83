package widgets

import (
	"slices"
	"testing"
	"time"

	"github.com/go-drift/disclosure/pkg/bidi"
	"github.com/go-drift/disclosure/pkg/errors"
	"github.com/go-drift/disclosure/pkg/placement"
	"github.com/go-drift/disclosure/pkg/proxy"
	"github.com/go-drift/disclosure/pkg/trigger"
)

func TestTooltip_EmptyTitleRefusesToShow(t *testing.T) {
	host, rec := newHost(t, bidi.LTR)
	tip := NewTooltip(host, preset("tooltip"))
	tip.Title = "   "
	engine := tip.Attach()
	t.Cleanup(tip.Detach)

	engine.Handle(trigger.PointerEnter)
	advance(host, time.Second)

	if engine.Visible() || host.Layer.Len() != 0 {
		t.Fatal("a tooltip without a title must not show")
	}
	if !slices.Equal(rec.kinds(), []errors.ErrorKind{errors.KindContent}) {
		t.Errorf("reported kinds = %v, want [content]", rec.kinds())
	}
}

func TestTooltip_HoverUsesPresetDelays(t *testing.T) {
	host, _ := newHost(t, bidi.LTR)
	tip := NewTooltip(host, preset("tooltip"))
	tip.Title = "Prompt text"
	var visible []bool
	tip.Events.OnVisibleChange = func(v bool) { visible = append(visible, v) }
	engine := tip.Attach()
	t.Cleanup(tip.Detach)

	engine.Handle(trigger.PointerEnter)
	advance(host, 149*time.Millisecond)
	if engine.Visible() {
		t.Fatal("shown before the enter delay")
	}
	advance(host, time.Millisecond)
	if !engine.Visible() {
		t.Fatal("not shown after the enter delay")
	}
	if got, _ := engine.Placement(); got != "top" {
		t.Errorf("placement = %q, want top", got)
	}

	engine.Handle(trigger.PointerLeave)
	advance(host, 100*time.Millisecond)
	if !slices.Equal(visible, []bool{true, false}) {
		t.Errorf("visible changes = %v", visible)
	}
}

func TestTooltip_SizeStacksTitleAndContent(t *testing.T) {
	host, _ := newHost(t, bidi.LTR)
	tip := NewTooltip(host, preset("tooltip"))
	tip.Title = "abcd"
	if got, want := tip.Size(), (placement.Size{Width: 44, Height: 29}); got != want {
		t.Errorf("title only: Size() = %+v, want %+v", got, want)
	}
	tip.Content = "ab"
	if got, want := tip.Size(), (placement.Size{Width: 44, Height: 58}); got != want {
		t.Errorf("title and content: Size() = %+v, want %+v", got, want)
	}
}

func TestTooltip_ResolvePrecedence(t *testing.T) {
	host, _ := newHost(t, bidi.LTR)
	tip := NewTooltip(host, preset("tooltip"))

	r := tip.Resolve()
	if r.Trigger.Kind != trigger.Hover || r.Trigger.EnterDelay != 150*time.Millisecond {
		t.Errorf("preset trigger = %+v", r.Trigger)
	}

	click := trigger.Click
	tip.Trigger = &click
	if got := tip.Resolve().Trigger.Kind; got != trigger.Click {
		t.Errorf("own input trigger = %v, want click", got)
	}

	tip.Extend(proxy.Mapping{
		"Mode": {Target: TargetTrigger, Resolve: proxy.Value(func() trigger.Kind { return trigger.Focus })},
	})
	if got := tip.Resolve().Trigger.Kind; got != trigger.Focus {
		t.Errorf("proxied trigger = %v, want focus", got)
	}
}

func TestTooltip_RefreshAppliesControlledVisibility(t *testing.T) {
	host, _ := newHost(t, bidi.LTR)
	tip := NewTooltip(host, preset("tooltip"))
	tip.Title = "Prompt text"
	var visible []bool
	tip.Events.OnVisibleChange = func(v bool) { visible = append(visible, v) }
	engine := tip.Attach()
	t.Cleanup(tip.Detach)

	on := true
	tip.Visible = &on
	tip.Refresh()
	if !engine.Visible() {
		t.Fatal("controlled visible=true should show")
	}

	engine.Handle(trigger.PointerLeave)
	advance(host, time.Second)
	if !engine.Visible() {
		t.Error("internal intents must not change controlled visibility")
	}
	if !slices.Equal(visible, []bool{false}) {
		t.Errorf("visible changes = %v, want the hide intent reported only", visible)
	}

	tip.Visible = nil
	tip.Refresh()
	engine.Handle(trigger.PointerLeave)
	advance(host, time.Second)
	if engine.Visible() {
		t.Error("released tooltip should follow its trigger again")
	}
}
