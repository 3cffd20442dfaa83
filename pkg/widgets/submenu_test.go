package widgets

import (
	"testing"
	"time"

	"github.com/go-drift/disclosure/pkg/bidi"
	"github.com/go-drift/disclosure/pkg/disclosure"
)

func TestSubmenu_DirectionDefaults(t *testing.T) {
	tests := []struct {
		dir       bidi.Direction
		placement string
		icon      string
	}{
		{bidi.LTR, "rightTop", "right"},
		{bidi.RTL, "leftTop", "left"},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			host, _ := newHost(t, tt.dir)
			s := NewSubmenu(host, preset("submenu"))
			s.Title = "Navigation"
			t.Cleanup(s.Detach)

			s.PointerEnter()
			if got, _ := s.Engine().Placement(); got != tt.placement {
				t.Errorf("placement = %q, want %q", got, tt.placement)
			}
			if got := s.ExpandIcon(); got != tt.icon {
				t.Errorf("ExpandIcon() = %q, want %q", got, tt.icon)
			}
		})
	}
}

func TestSubmenu_FlipsWhenNoRoom(t *testing.T) {
	host, _ := newHost(t, bidi.LTR)
	host.Anchor = disclosure.StaticAnchor{X: 960, Y: 300, Width: 60, Height: 30}
	s := NewSubmenu(host, preset("submenu"))
	s.Items = NewTextContent("Option 1\nOption 2", 12)
	t.Cleanup(s.Detach)

	s.PointerEnter()
	if got, _ := s.Engine().Placement(); got != "leftTop" {
		t.Errorf("placement = %q, want leftTop", got)
	}
}

func TestSubmenu_MovingIntoPanelKeepsItOpen(t *testing.T) {
	host, _ := newHost(t, bidi.LTR)
	s := NewSubmenu(host, preset("submenu"))
	s.Title = "Navigation"
	s.preset.MouseLeaveDelay = 100 * time.Millisecond
	t.Cleanup(s.Detach)

	s.PointerEnter()
	s.PointerLeave()
	s.PanelEnter()
	advance(host, time.Second)
	if !s.Engine().Visible() {
		t.Fatal("submenu closed while the pointer is over it")
	}
	s.PanelLeave()
	advance(host, 100*time.Millisecond)
	if s.Engine().Visible() {
		t.Error("leaving the nested menu should close it")
	}
}
