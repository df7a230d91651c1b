package canvas

import (
	"math"

	"github.com/iburimskiy/wave-canvas/internal/config"
)

// Direction is the travel sense of a wave on each axis, +1 or -1.
type Direction struct {
	X, Y float64
}

// Wave is a straight leading edge sweeping across the canvas. A slope of
// +Inf is a vertical edge.
type Wave struct {
	Slope float64
	X, Y  float64
	Dir   Direction
}

// NewWave derives a wave from the first and last point of a stroke. The
// leading edge is perpendicular to the stroke's chord and starts at the edge
// of the viewport the stroke points away from.
func NewWave(first, last Point, vp Viewport) Wave {
	dx := last.X - first.X
	dy := last.Y - first.Y

	var slope float64
	switch {
	case dx == 0:
		slope = 0
	case dy == 0:
		slope = math.Inf(1)
	default:
		slope = -dx / dy
	}

	w := Wave{Slope: slope, Dir: Direction{X: -1, Y: -1}, X: vp.Width, Y: vp.Height}
	if dx > 0 {
		w.Dir.X = 1
		w.X = 0
	}
	if dy > 0 {
		w.Dir.Y = 1
		w.Y = 0
	}
	return w
}

func (w Wave) Vertical() bool { return math.IsInf(w.Slope, 0) }

// Distance is the perpendicular distance from (x, y) to the leading edge.
func (w Wave) Distance(x, y float64) float64 {
	if w.Vertical() {
		return math.Abs(x - w.X)
	}
	m := w.Slope
	return math.Abs(m*x-y+(w.Y-m*w.X)) / math.Sqrt(1+m*m)
}

// Bonus is the extra dot radius the wave gives at (x, y): maxGrowth on the
// edge, falling linearly to 0 at rng.
func (w Wave) Bonus(x, y, rng, maxGrowth float64) float64 {
	d := w.Distance(x, y)
	if d >= rng {
		return 0
	}
	return maxGrowth * (1 - d/rng)
}

// WaveField is the set of waves still on screen.
type WaveField struct {
	waves []Wave
}

func (f *WaveField) Add(w Wave) { f.waves = append(f.waves, w) }

func (f *WaveField) Waves() []Wave { return f.waves }

func (f *WaveField) Len() int { return len(f.waves) }

func (f *WaveField) Reset() { f.waves = nil }

// Advance moves every wave one frame and drops those that left the
// viewport. Vertical travel is scaled by the viewport's aspect so the sweep
// keeps the same apparent angle on any canvas shape.
func (f *WaveField) Advance(vp Viewport, tier config.Tier) {
	if !vp.Ready() {
		f.waves = nil
		return
	}
	aspect := vp.Height / vp.Width
	kept := f.waves[:0]
	for _, w := range f.waves {
		next := w
		next.X += tier.Speed * w.Dir.X
		next.Y += tier.Speed * aspect * w.Dir.Y
		if vp.Contains(next.X, next.Y) {
			kept = append(kept, next)
		}
	}
	// Clear the tail so dropped waves are not kept alive by the backing array.
	for i := len(kept); i < len(f.waves); i++ {
		f.waves[i] = Wave{}
	}
	f.waves = kept
}

// Bonus is the largest bonus any wave gives at (x, y). Waves do not stack.
func (f *WaveField) Bonus(x, y, rng, maxGrowth float64) float64 {
	best := 0.0
	for _, w := range f.waves {
		if b := w.Bonus(x, y, rng, maxGrowth); b > best {
			best = b
		}
	}
	return best
}
