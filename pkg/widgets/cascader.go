package widgets

import (
	"github.com/go-drift/disclosure/pkg/config"
	"github.com/go-drift/disclosure/pkg/disclosure"
	"github.com/go-drift/disclosure/pkg/placement"
	"github.com/go-drift/disclosure/pkg/trigger"
)

// Column width bounds of the cascader menus.
const (
	minColumnWidth = 111
	optionPadding  = 12
)

// Cascader is a click-opened panel of option columns. Activating an option
// with children opens the next column; activating a leaf selects the path
// and closes the panel.
type Cascader struct {
	Options    []*CascaderOption
	Disabled   bool
	Placement  []string
	ExpandIcon string
	Template   OptionTemplate
	Events     disclosure.Events
	// OnChange receives the values of the selected path.
	OnChange func(values []string)
	// OnLoad is called when a non-leaf option without children is
	// activated. The host sets Loading and later Children.
	OnLoad func(option *CascaderOption)

	host   Host
	preset config.Preset
	active []int
	engine *disclosure.Engine
}

// NewCascader creates a detached cascader.
func NewCascader(host Host, preset config.Preset) *Cascader {
	return &Cascader{host: host, preset: preset}
}

// Attach creates the engine. Calling Attach again returns the same engine.
func (c *Cascader) Attach() *disclosure.Engine {
	if c.engine != nil {
		return c.engine
	}
	opts := c.host.options(config.KindCascader, c.preset)
	opts.Placements = c.Placement
	opts.Disabled = c.Disabled
	opts.Content = c
	opts.Empty = func() bool { return len(c.Options) == 0 }
	events := c.Events
	onVisible := events.OnVisibleChange
	events.OnVisibleChange = func(visible bool) {
		if !visible {
			c.active = nil
		}
		if onVisible != nil {
			onVisible(visible)
		}
	}
	c.engine = disclosure.New(opts, events)
	return c.engine
}

// Engine returns the attached engine, nil before Attach.
func (c *Cascader) Engine() *disclosure.Engine {
	return c.engine
}

// Detach tears the engine down.
func (c *Cascader) Detach() {
	if c.engine != nil {
		c.engine.Teardown()
	}
}

// Click forwards a click on the input.
func (c *Cascader) Click() { c.Attach().Handle(trigger.PointerClick) }

// ActivePath returns the indices of the activated option in each column.
func (c *Cascader) ActivePath() []int {
	return append([]int(nil), c.active...)
}

// Columns returns one column per level of the active path, plus the
// children of the last activated option.
func (c *Cascader) Columns() [][]OptionView {
	var columns [][]OptionView
	level := c.Options
	for col := 0; len(level) > 0; col++ {
		views := make([]OptionView, len(level))
		for i, o := range level {
			views[i] = OptionView{
				Option:     o,
				Column:     col,
				Activated:  col < len(c.active) && c.active[col] == i,
				ExpandIcon: c.ExpandIcon,
				Direction:  c.host.Direction,
				Template:   c.Template,
			}
		}
		columns = append(columns, views)
		if col >= len(c.active) {
			break
		}
		level = level[c.active[col]].Children
	}
	return columns
}

// Activate activates the option at index of column. It reports whether
// the option was activated; disabled options and stale indices are
// ignored.
func (c *Cascader) Activate(column, index int) bool {
	columns := c.Columns()
	if column < 0 || column >= len(columns) || index < 0 || index >= len(columns[column]) {
		return false
	}
	option := columns[column][index].Option
	if option.Disabled {
		return false
	}
	c.active = append(c.active[:column:column], index)

	switch {
	case len(option.Children) > 0 || option.Loading:
	case !option.IsLeaf:
		if c.OnLoad != nil {
			c.OnLoad(option)
		}
	default:
		values := c.selected()
		if c.OnChange != nil {
			c.OnChange(values)
		}
		if c.engine != nil {
			c.engine.Hide()
		}
		return true
	}
	if c.engine != nil {
		c.engine.Reposition()
	}
	return true
}

func (c *Cascader) selected() []string {
	values := make([]string, 0, len(c.active))
	level := c.Options
	for _, i := range c.active {
		values = append(values, level[i].Value)
		level = level[i].Children
	}
	return values
}

// Size implements overlay.Content: columns side by side, each as wide as
// its longest label and as tall as its options.
func (c *Cascader) Size() placement.Size {
	var out placement.Size
	for _, column := range c.Columns() {
		lines := make([]string, len(column))
		for i, v := range column {
			lines[i] = v.Content().Text
		}
		size := TextContent{Lines: lines, Padding: optionPadding}.Size()
		out.Width += max(size.Width, minColumnWidth)
		out.Height = max(out.Height, size.Height)
	}
	return out
}
