package widgets

import (
	"github.com/go-drift/disclosure/pkg/bidi"
	"github.com/go-drift/disclosure/pkg/config"
	"github.com/go-drift/disclosure/pkg/disclosure"
	"github.com/go-drift/disclosure/pkg/overlay"
	"github.com/go-drift/disclosure/pkg/trigger"
)

// Submenu is a nested menu panel opened by hovering its title. It opens
// to the right (to the left in right-to-left layouts) and flips to the
// other side when there is no room.
type Submenu struct {
	Title    string
	Disabled bool
	// Placement overrides the direction-aware default list.
	Placement []string
	// Items measures the nested menu. Nil measures the title alone.
	Items  overlay.Content
	Events disclosure.Events

	host   Host
	preset config.Preset
	engine *disclosure.Engine
}

// NewSubmenu creates a detached submenu.
func NewSubmenu(host Host, preset config.Preset) *Submenu {
	return &Submenu{host: host, preset: preset}
}

// Attach creates the engine. Calling Attach again returns the same engine.
func (s *Submenu) Attach() *disclosure.Engine {
	if s.engine != nil {
		return s.engine
	}
	opts := s.host.options(config.KindSubmenu, s.preset)
	opts.Placements = s.Placement
	opts.Disabled = s.Disabled
	opts.Content = s.Items
	if opts.Content == nil {
		opts.Content = NewTextContent(s.Title, 12)
	}
	s.engine = disclosure.New(opts, s.Events)
	return s.engine
}

// Engine returns the attached engine, nil before Attach.
func (s *Submenu) Engine() *disclosure.Engine {
	return s.engine
}

// Detach tears the engine down.
func (s *Submenu) Detach() {
	if s.engine != nil {
		s.engine.Teardown()
	}
}

// ExpandIcon returns the arrow shown next to the title.
func (s *Submenu) ExpandIcon() string {
	return bidi.ExpandIcon(s.host.Direction, "")
}

// PointerEnter and PointerLeave forward pointer movement over the title.
func (s *Submenu) PointerEnter() { s.Attach().Handle(trigger.PointerEnter) }
func (s *Submenu) PointerLeave() { s.Attach().Handle(trigger.PointerLeave) }

// PanelEnter and PanelLeave forward pointer movement over the open menu,
// so moving into the nested menu keeps it open.
func (s *Submenu) PanelEnter() { s.Attach().HandlePanel(trigger.PointerEnter) }
func (s *Submenu) PanelLeave() { s.Attach().HandlePanel(trigger.PointerLeave) }
