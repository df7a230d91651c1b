package canvas

import "time"

// Position is a canvas-local coordinate in device-independent pixels.
type Position struct {
	X, Y float64
}

// Point is one timestamped sample of a stroke. Only the fade start can change
// after creation, and only once.
type Point struct {
	X, Y      float64
	Timestamp time.Time

	fadeStart time.Time
}

func NewPoint(pos Position, at time.Time) Point {
	return Point{X: pos.X, Y: pos.Y, Timestamp: at}
}

func (p Point) Position() Position { return Position{X: p.X, Y: p.Y} }

// FadeStart reports when the point starts fading, if it has been scheduled.
func (p Point) FadeStart() (time.Time, bool) {
	return p.fadeStart, !p.fadeStart.IsZero()
}

// scheduleFade sets the fade start unless one is already set.
func (p *Point) scheduleFade(at time.Time) bool {
	if !p.fadeStart.IsZero() {
		return false
	}
	p.fadeStart = at
	return true
}

// Opacity is 1 before the fade starts (or when it is unscheduled), falls
// linearly to 0 over fadeDuration and stays at 0 afterwards.
func (p Point) Opacity(now time.Time, fadeDuration time.Duration) float64 {
	if p.fadeStart.IsZero() {
		return 1
	}
	elapsed := now.Sub(p.fadeStart)
	switch {
	case elapsed < 0:
		return 1
	case elapsed >= fadeDuration:
		return 0
	}
	return clamp01(1 - float64(elapsed)/float64(fadeDuration))
}

// Stroke is one pointer-down to pointer-up gesture.
type Stroke struct {
	Points   []Point
	Complete bool
}

// First and Last assume a non-empty stroke; strokes are always created with
// one point.
func (s *Stroke) First() Point { return s.Points[0] }
func (s *Stroke) Last() Point  { return s.Points[len(s.Points)-1] }

// FullyFaded reports whether the stroke is complete and every point has been
// at zero opacity since at least now.
func (s *Stroke) FullyFaded(now time.Time, fadeDuration time.Duration) bool {
	if !s.Complete {
		return false
	}
	for _, p := range s.Points {
		start, ok := p.FadeStart()
		if !ok || now.Sub(start) < fadeDuration {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
