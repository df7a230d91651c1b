package canvas

import (
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/wave-canvas/internal/config"
)

// Surface is a 2D drawing target in device-independent pixels.
type Surface interface {
	Clear(bg color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// drawGrid draws the dot grid, growing dots near any wave's leading edge.
func drawGrid(surf Surface, vp Viewport, cfg config.Canvas, tier config.Tier, waves *WaveField, dot color.Color) {
	cols := int(math.Floor(vp.Width / cfg.GridSize))
	rows := int(math.Floor(vp.Height / cfg.GridSize))
	base := cfg.DotSize / 2

	for i := 0; i <= cols; i++ {
		x := float64(i) * cfg.GridSize
		for j := 0; j <= rows; j++ {
			y := float64(j) * cfg.GridSize
			bonus := waves.Bonus(x, y, tier.Range, cfg.MaxDotGrowth)
			surf.FillCircle(x, y, base+bonus, dot)
		}
	}
}

// drawStrokes draws every stroke with at least two points. Segments of a
// completed stroke take the lower opacity of their two endpoints; invisible
// segments are skipped.
func drawStrokes(surf Surface, strokes []*Stroke, now time.Time, cfg config.Canvas, ink color.NRGBA) {
	for _, st := range strokes {
		if len(st.Points) < 2 {
			continue
		}
		for i := 1; i < len(st.Points); i++ {
			prev, cur := st.Points[i-1], st.Points[i]
			if !st.Complete {
				surf.StrokeLine(prev.X, prev.Y, cur.X, cur.Y, cfg.StrokeWidth, ink)
				continue
			}
			opacity := math.Min(
				cur.Opacity(now, cfg.FadeDuration),
				prev.Opacity(now, cfg.FadeDuration),
			)
			if opacity <= 0 {
				continue
			}
			surf.StrokeLine(prev.X, prev.Y, cur.X, cur.Y, cfg.StrokeWidth, withOpacity(ink, opacity))
		}
	}
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * clamp01(opacity)))
	return c
}
