package widgets

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/disclosure/pkg/placement"
)

// TextContent measures plain-text panel content. The size feeds placement
// only; drawing the text is up to the host.
type TextContent struct {
	// Lines are rendered top to bottom. Empty lines still take a line.
	Lines []string
	// Padding is added on every side.
	Padding float64
	// Face measures the text. Nil uses basicfont.Face7x13.
	Face font.Face
}

// NewTextContent splits text into lines.
func NewTextContent(text string, padding float64) TextContent {
	return TextContent{Lines: strings.Split(text, "\n"), Padding: padding}
}

// Empty reports whether every line is blank.
func (c TextContent) Empty() bool {
	for _, line := range c.Lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

// Size implements overlay.Content.
func (c TextContent) Size() placement.Size {
	face := c.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	var width int
	for _, line := range c.Lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	height := face.Metrics().Height.Ceil() * len(c.Lines)
	return placement.Size{
		Width:  float64(width) + 2*c.Padding,
		Height: float64(height) + 2*c.Padding,
	}
}

// stack measures several text blocks laid out vertically, such as a
// popover title above its body.
type stack []TextContent

func (s stack) Size() placement.Size {
	var out placement.Size
	for _, c := range s {
		if len(c.Lines) == 0 {
			continue
		}
		size := c.Size()
		out.Width = max(out.Width, size.Width)
		out.Height += size.Height
	}
	return out
}
