package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette names the colours of every drawn element.
type Palette struct {
	Background color.RGBA
	Boundary   color.RGBA
	Pending    color.RGBA // polygon being drawn, not yet closed
	Invalid    color.RGBA // edges that would make the polygon cross itself
	Trace      color.RGBA
	Start      color.RGBA
	Exit       color.RGBA
	Sample     color.RGBA
	Text       color.RGBA
}

// DefaultPalette is a dark theme.
func DefaultPalette() Palette {
	return Palette{
		Background: colornames.Midnightblue,
		Boundary:   colornames.Whitesmoke,
		Pending:    colornames.Gold,
		Invalid:    colornames.Crimson,
		Trace:      colornames.Orangered,
		Start:      colornames.Limegreen,
		Exit:       colornames.Deepskyblue,
		Sample:     colornames.Slategray,
		Text:       colornames.White,
	}
}
