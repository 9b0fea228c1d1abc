package render

import (
	"math"

	"github.com/katalvlaran/escapepath/geom"
)

// Viewport is a uniform-scale, y-flipping map from a world rectangle onto a
// W×H canvas.
type Viewport struct {
	World   geom.Rect
	W, H    int
	Padding float64

	scale float64
	offX  float64
	offY  float64
}

// NewViewport fits world into w×h with the given padding on every side,
// centring the shorter axis. A world rectangle with zero width or height is
// widened to one unit so the scale stays finite.
func NewViewport(world geom.Rect, w, h int, padding float64) Viewport {
	if world.Width() <= 0 {
		world.Max.X = world.Min.X + 1
	}
	if world.Height() <= 0 {
		world.Max.Y = world.Min.Y + 1
	}
	availW := math.Max(float64(w)-2*padding, 1)
	availH := math.Max(float64(h)-2*padding, 1)
	scale := math.Min(availW/world.Width(), availH/world.Height())

	return Viewport{
		World:   world,
		W:       w,
		H:       h,
		Padding: padding,
		scale:   scale,
		offX:    padding + (availW-world.Width()*scale)/2,
		offY:    padding + (availH-world.Height()*scale)/2,
	}
}

// Scale returns canvas pixels per world unit.
func (v Viewport) Scale() float64 { return v.scale }

// ToScreen maps a world point to canvas coordinates.
func (v Viewport) ToScreen(p geom.Point) (x, y float64) {
	x = v.offX + (p.X-v.World.Min.X)*v.scale
	y = float64(v.H) - (v.offY + (p.Y-v.World.Min.Y)*v.scale)
	return x, y
}

// ToWorld is the inverse of ToScreen.
func (v Viewport) ToWorld(x, y float64) geom.Point {
	return geom.Point{
		X: v.World.Min.X + (x-v.offX)/v.scale,
		Y: v.World.Min.Y + (float64(v.H)-y-v.offY)/v.scale,
	}
}
