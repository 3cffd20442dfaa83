package widgets

import (
	"github.com/go-drift/disclosure/pkg/bidi"
)

// CascaderOption is one node of a cascader's option tree.
type CascaderOption struct {
	Value    string
	Label    string
	Title    string
	IsLeaf   bool
	Loading  bool
	Disabled bool
	Children []*CascaderOption
}

// OptionTemplate renders an option in place of its label.
type OptionTemplate func(option *CascaderOption, column int) string

// ContentKind selects how an option's content is produced.
type ContentKind int

const (
	DefaultContent ContentKind = iota
	TemplateProvided
)

// OptionContent is an option's content, resolved once per render.
type OptionContent struct {
	Kind ContentKind
	Text string
}

// LoadingIcon replaces the expand icon while children load.
const LoadingIcon = "loading"

// OptionView is the rendering state of one option in a cascader column.
type OptionView struct {
	Option    *CascaderOption
	Column    int
	Activated bool
	// ExpandIcon overrides the direction default.
	ExpandIcon string
	Direction  bidi.Direction
	Template   OptionTemplate
}

// Label returns the option label.
func (v OptionView) Label() string {
	return v.Option.Label
}

// Title returns the hover title, falling back to the label.
func (v OptionView) Title() string {
	if v.Option.Title != "" {
		return v.Option.Title
	}
	return v.Option.Label
}

// Content selects between the template and the default label content.
func (v OptionView) Content() OptionContent {
	if v.Template != nil {
		return OptionContent{Kind: TemplateProvided, Text: v.Template(v.Option, v.Column)}
	}
	return OptionContent{Kind: DefaultContent, Text: v.Label()}
}

// ShowExpand reports whether the expand indicator is shown: the option is
// not a leaf, has children, or is loading them.
func (v OptionView) ShowExpand() bool {
	o := v.Option
	return !o.IsLeaf || len(o.Children) > 0 || o.Loading
}

// Icon returns the indicator icon, empty when none is shown.
func (v OptionView) Icon() string {
	if !v.ShowExpand() {
		return ""
	}
	if v.Option.Loading {
		return LoadingIcon
	}
	return bidi.ExpandIcon(v.Direction, v.ExpandIcon)
}

// Classes returns the option's class attributes.
func (v OptionView) Classes() []string {
	classes := []string{"ant-cascader-menu-item", "ant-cascader-menu-item-expanded"}
	if v.Activated {
		classes = append(classes, "ant-cascader-menu-item-active")
	}
	if !v.Option.IsLeaf {
		classes = append(classes, "ant-cascader-menu-item-expand")
	}
	if v.Option.Disabled {
		classes = append(classes, "ant-cascader-menu-item-disabled")
	}
	return classes
}
