package render

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/escapepath/geom"
)

// Default snapshot settings.
const (
	DefaultWidth     = 800
	DefaultHeight    = 800
	DefaultPadding   = 24
	DefaultLineWidth = 2
	markerRadius     = 5
	sampleRadius     = 1.5
)

// Options controls SavePNG.
type Options struct {
	Width, Height int
	Padding       float64
	LineWidth     float64
	Palette       Palette
	Samples       []geom.Point // drawn as dots when non-empty
}

// DefaultOptions returns an 800×800 snapshot with DefaultPalette.
func DefaultOptions() Options {
	return Options{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Padding:   DefaultPadding,
		LineWidth: DefaultLineWidth,
		Palette:   DefaultPalette(),
	}
}

func (o *Options) normalize() {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Padding < 0 {
		o.Padding = DefaultPadding
	}
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultLineWidth
	}
	if o.Palette == (Palette{}) {
		o.Palette = DefaultPalette()
	}
}

// SavePNG draws b, the optional sample cloud and trace, and writes a PNG to
// path. The first trace point is marked as the start and the last as the exit.
func SavePNG(path string, b geom.Boundary, trace []geom.Point, opts Options) error {
	opts.normalize()
	vp := NewViewport(b.Bounds(), opts.Width, opts.Height, opts.Padding)

	dc := gg.NewContext(opts.Width, opts.Height)
	defer dc.Close()

	if err := draw(dc, vp, b, trace, opts); err != nil {
		return fmt.Errorf("render: draw: %w", err)
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}

func draw(dc *gg.Context, vp Viewport, b geom.Boundary, trace []geom.Point, opts Options) error {
	pal := opts.Palette
	dc.ClearWithColor(gg.FromColor(pal.Background))

	if len(opts.Samples) > 0 {
		dc.SetColor(pal.Sample)
		for _, p := range opts.Samples {
			x, y := vp.ToScreen(p)
			dc.DrawCircle(x, y, sampleRadius)
		}
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	dc.SetLineWidth(opts.LineWidth)
	dc.SetColor(pal.Boundary)
	for _, s := range b {
		x1, y1 := vp.ToScreen(s.Start())
		x2, y2 := vp.ToScreen(s.End())
		dc.MoveTo(x1, y1)
		dc.LineTo(x2, y2)
	}
	if err := dc.Stroke(); err != nil {
		return err
	}

	if len(trace) < 2 {
		return nil
	}
	dc.SetColor(pal.Trace)
	for i, p := range trace {
		x, y := vp.ToScreen(p)
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	if err := dc.Stroke(); err != nil {
		return err
	}

	for _, m := range []struct {
		p   geom.Point
		col color.RGBA
	}{
		{trace[0], pal.Start},
		{trace[len(trace)-1], pal.Exit},
	} {
		x, y := vp.ToScreen(m.p)
		dc.SetColor(m.col)
		dc.DrawCircle(x, y, markerRadius)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	return nil
}
