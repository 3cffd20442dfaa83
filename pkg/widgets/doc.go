// Package widgets provides the floating widgets built on the disclosure
// engine: Tooltip, Popover, Submenu and Cascader.
//
// # Hosting
//
// Every widget is created against a [Host], which carries what widgets on
// one surface share: the anchor, the viewport, the overlay layer, the
// scheduler and the dismiss registry. Per-kind defaults come from a
// [config.Preset]:
//
//	presets := config.Defaults()
//	tip := widgets.NewTooltip(host, presets[config.KindTooltip])
//	tip.Title = "Prompt text"
//	engine := tip.Attach()
//	engine.Handle(trigger.PointerEnter)
//
// Attach creates the engine on first use; Detach tears it down. Widgets
// never render anything: they measure their content for placement and
// expose class attributes through the engine.
//
// # Input proxying
//
// Popover is a Tooltip whose own inputs (PopoverTitle, PopoverContent,
// PopoverTrigger and so on) are routed onto the tooltip's inputs through a
// [proxy.Mapping]. Further specializations layer their own mapping with
// Extend; the most specific layer wins for any target it routes.
//
// # Cascader
//
// A Cascader shows one column per level of its active option path.
// [OptionView] holds the per-option rendering rules: the expand indicator
// is shown for options that are not leaves, have children or are loading,
// and the loading indicator replaces the expand icon.
package widgets
