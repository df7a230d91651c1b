package canvas

import "math"

// Viewport is the drawing surface size. Width and Height are in
// device-independent pixels; the backing store is that size times Scale.
// Every drawing coordinate is in device-independent pixels and the surface
// applies Scale, which is fixed between resizes.
type Viewport struct {
	Width, Height float64
	Scale         float64

	BackingWidth, BackingHeight int
}

// NewViewport computes the backing size for a container size and device
// pixel ratio. A non-positive scale is treated as 1.
func NewViewport(width, height, scale float64) Viewport {
	if scale <= 0 {
		scale = 1
	}
	width = math.Max(width, 0)
	height = math.Max(height, 0)
	return Viewport{
		Width:         width,
		Height:        height,
		Scale:         scale,
		BackingWidth:  int(math.Ceil(width * scale)),
		BackingHeight: int(math.Ceil(height * scale)),
	}
}

// Ready reports whether there is anything to draw on.
func (v Viewport) Ready() bool { return v.Width > 0 && v.Height > 0 }

// Contains reports whether (x, y) lies in [0, Width] x [0, Height].
func (v Viewport) Contains(x, y float64) bool {
	return x >= 0 && x <= v.Width && y >= 0 && y <= v.Height
}
