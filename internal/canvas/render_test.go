package canvas

import (
	"image/color"
	"math"
	"testing"

	"github.com/iburimskiy/wave-canvas/internal/config"
)

func TestGridCoversViewport(t *testing.T) {
	s := newTestSession(t, 100, 60)
	surf := &recordingSurface{}
	s.Paint(surf, t0)

	if surf.clears != 1 {
		t.Errorf("clears = %d, want 1", surf.clears)
	}
	// 0..100 step 20 -> 6 columns, 0..60 step 20 -> 4 rows.
	if got := len(surf.circles); got != 24 {
		t.Fatalf("dots = %d, want 24", got)
	}
	want := color.NRGBA{R: 0xCA, G: 0xF0, B: 0xF8, A: 0xFF}
	for _, c := range surf.circles {
		if c.R != 3 {
			t.Errorf("dot (%v, %v) radius = %v, want 3 without waves", c.X, c.Y, c.R)
		}
		if c.C != want {
			t.Errorf("dot colour = %v, want %v", c.C, want)
		}
	}
}

func TestGridGrowsDotsNearWave(t *testing.T) {
	s := newTestSession(t, 1000, 800)
	s.waves.Add(Wave{Slope: 0, X: 0, Y: 200, Dir: Direction{1, 1}})

	surf := &recordingSurface{}
	s.Paint(surf, t0)

	onEdge, _ := surf.circleAt(200, 200)
	if onEdge.R != 5 {
		t.Errorf("dot on the edge radius = %v, want 5", onEdge.R)
	}
	half, _ := surf.circleAt(200, 400)
	if math.Abs(half.R-4) > 1e-9 {
		t.Errorf("dot at half range radius = %v, want 4", half.R)
	}
	far, _ := surf.circleAt(200, 600)
	if far.R != 3 {
		t.Errorf("dot out of range radius = %v, want 3", far.R)
	}
}

func TestGridMobileRange(t *testing.T) {
	s := newTestSession(t, 400, 800)
	s.waves.Add(Wave{Slope: 0, X: 0, Y: 200, Dir: Direction{1, 1}})

	surf := &recordingSurface{}
	s.Paint(surf, t0)

	c, _ := surf.circleAt(100, 300)
	if math.Abs(c.R-4) > 1e-9 {
		t.Errorf("mobile dot at half range radius = %v, want 4", c.R)
	}
}

func TestStrokeRendering(t *testing.T) {
	cfg := config.DefaultCanvas()
	ink := color.NRGBA{R: 0, G: 180, B: 216, A: 255}

	faded := &Stroke{Complete: true}
	fresh := &Stroke{Complete: true}
	active := &Stroke{}
	for i := 0; i < 3; i++ {
		p := NewPoint(Position{float64(i), 0}, t0)
		p.scheduleFade(t0)
		faded.Points = append(faded.Points, p)

		q := NewPoint(Position{float64(i), 10}, t0)
		q.scheduleFade(t0.Add(ms(1000 + 100*i)))
		fresh.Points = append(fresh.Points, q)

		// Incomplete strokes cannot carry fade times; they render at full
		// opacity regardless of the clock.
		active.Points = append(active.Points, NewPoint(Position{float64(i), 20}, t0))
	}
	single := &Stroke{Complete: true, Points: []Point{NewPoint(Position{5, 5}, t0)}}

	surf := &recordingSurface{}
	now := t0.Add(ms(1150))
	drawStrokes(surf, []*Stroke{faded, fresh, single, active}, now, cfg, ink)

	if len(surf.lines) != 4 {
		t.Fatalf("segments drawn = %d, want 4 (faded and single-point strokes skipped)", len(surf.lines))
	}

	// fresh: point opacities at 1150ms are 0.7, 0.9, 1.0 -> segments 0.7, 0.9.
	wantOpacity := []float64{0.7, 0.9, 1, 1}
	for i, l := range surf.lines {
		c := l.C.(color.NRGBA)
		if want := 255 * wantOpacity[i]; math.Abs(float64(c.A)-want) > 1 {
			t.Errorf("segment %d alpha = %d, want about %.1f", i, c.A, want)
		}
		if l.W != cfg.StrokeWidth {
			t.Errorf("segment %d width = %v, want %v", i, l.W, cfg.StrokeWidth)
		}
	}
}

func TestPaintWithoutSurfaceOrViewport(t *testing.T) {
	s, err := NewSession(config.DefaultCanvas(), nil)
	if err != nil {
		t.Fatal(err)
	}
	surf := &recordingSurface{}
	s.Paint(surf, t0)
	s.Frame(surf, t0)
	if surf.clears != 0 || len(surf.circles) != 0 {
		t.Error("an unsized canvas must not draw")
	}

	s.Resize(100, 100, 1)
	s.Paint(nil, t0)
	s.Frame(nil, t0)
}

func TestFrameOrder(t *testing.T) {
	s := newTestSession(t, 1000, 800)
	s.waves.Add(Wave{Slope: 0, X: 0, Y: 190, Dir: Direction{1, 1}})

	surf := &recordingSurface{}
	s.Frame(surf, t0)

	// The grid is drawn after the wave advanced by speed*aspect = 8px.
	if got := s.Waves()[0].Y; got != 198 {
		t.Fatalf("wave Y = %v, want 198", got)
	}
	c, _ := surf.circleAt(200, 200)
	want := 3 + 2*(1-2.0/400)
	if math.Abs(c.R-want) > 1e-9 {
		t.Errorf("dot radius = %v, want %v from the advanced wave", c.R, want)
	}
}
