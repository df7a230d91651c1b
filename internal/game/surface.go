package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface draws logical-pixel geometry onto the ebiten backing image.
// The device scale is fixed when the viewport changes and applied to every
// coordinate, so callers never see backing pixels.
type screenSurface struct {
	dst   *ebiten.Image
	scale float32
}

func (s *screenSurface) setScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.scale = float32(scale)
}

func (s *screenSurface) Clear(bg color.Color) {
	if s.dst == nil {
		return
	}
	s.dst.Fill(bg)
}

func (s *screenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	if s.dst == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx)*s.scale, float32(cy)*s.scale, float32(r)*s.scale, c, true)
}

func (s *screenSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if s.dst == nil {
		return
	}
	k := s.scale
	vector.StrokeLine(s.dst, float32(x0)*k, float32(y0)*k, float32(x1)*k, float32(y1)*k, float32(width)*k, c, true)
}
