package snapshot

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/wave-canvas/internal/canvas"
)

// pngSurface rasterizes canvas geometry with gg. The context is scaled once
// to the device ratio, so coordinates stay in logical pixels. gg does not
// transform line widths, so those are scaled here.
type pngSurface struct {
	dc    *gg.Context
	scale float64
}

func newSurface(vp canvas.Viewport) *pngSurface {
	dc := gg.NewContext(vp.BackingWidth, vp.BackingHeight)
	dc.Scale(vp.Scale, vp.Scale)
	return &pngSurface{dc: dc, scale: vp.Scale}
}

func (s *pngSurface) Clear(bg color.Color) {
	s.dc.SetColor(bg)
	s.dc.Clear()
}

func (s *pngSurface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	s.dc.DrawCircle(cx, cy, r)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *pngSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width * s.scale)
	s.dc.SetLineCapRound()
	s.dc.DrawLine(x0, y0, x1, y1)
	s.dc.Stroke()
}
