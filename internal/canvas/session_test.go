package canvas

import (
	"testing"

	"github.com/iburimskiy/wave-canvas/internal/config"
)

func TestSessionVerticalStrokeScenario(t *testing.T) {
	s := newTestSession(t, 800, 600)

	s.PointerDown(Position{10, 10}, t0)
	s.PointerMove(Position{10, 50}, t0.Add(ms(16)))
	s.PointerUp(Position{10, 50}, t0.Add(ms(32)))

	strokes := s.Strokes()
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	if !strokes[0].Complete || len(strokes[0].Points) != 2 {
		t.Fatalf("stroke = complete:%v points:%d, want complete with 2 points",
			strokes[0].Complete, len(strokes[0].Points))
	}

	waves := s.Waves()
	if len(waves) != 1 {
		t.Fatalf("got %d waves, want 1", len(waves))
	}
	w := waves[0]
	if w.Slope != 0 {
		t.Errorf("Slope = %v, want 0", w.Slope)
	}
	if w.Dir != (Direction{X: -1, Y: 1}) {
		t.Errorf("Dir = %+v, want {-1 1}", w.Dir)
	}
	if w.X != 800 || w.Y != 0 {
		t.Errorf("start = (%v, %v), want (800, 0)", w.X, w.Y)
	}
}

func TestSessionUpAppendsDistinctFinalPoint(t *testing.T) {
	s := newTestSession(t, 800, 600)
	s.PointerDown(Position{10, 10}, t0)
	s.PointerMove(Position{10, 50}, t0.Add(ms(16)))
	s.PointerUp(Position{10, 70}, t0.Add(ms(32)))

	if got := len(s.Strokes()[0].Points); got != 3 {
		t.Errorf("points = %d, want 3", got)
	}
}

func TestSessionStrayEventsAreNoOps(t *testing.T) {
	s := newTestSession(t, 800, 600)
	s.PointerMove(Position{1, 1}, t0)
	s.PointerUp(Position{2, 2}, t0)
	s.PointerLeave(Position{3, 3}, t0)
	s.PointerCancel(Position{4, 4}, t0)

	if st := s.Stats(); st.Strokes != 0 || st.Waves != 0 {
		t.Errorf("stray events changed state: %+v", st)
	}
	if _, ok := s.fade.LastCompletion(); ok {
		t.Error("stray up must not record a completion")
	}
}

func TestSessionLeaveAndCancelEndStroke(t *testing.T) {
	for name, end := range map[string]func(*Session, Position){
		"leave":  func(s *Session, p Position) { s.PointerLeave(p, t0.Add(ms(20))) },
		"cancel": func(s *Session, p Position) { s.PointerCancel(p, t0.Add(ms(20))) },
	} {
		t.Run(name, func(t *testing.T) {
			s := newTestSession(t, 800, 600)
			s.PointerDown(Position{100, 100}, t0)
			end(s, Position{200, 100})

			if s.Drawing() {
				t.Fatal("stroke should no longer be active")
			}
			st := s.Strokes()[0]
			if !st.Complete || len(st.Points) != 2 {
				t.Errorf("stroke = complete:%v points:%d", st.Complete, len(st.Points))
			}
			if len(s.Waves()) != 1 {
				t.Errorf("waves = %d, want 1", len(s.Waves()))
			}
		})
	}
}

func TestSessionClickEmitsWave(t *testing.T) {
	s := newTestSession(t, 800, 600)
	s.PointerDown(Position{40, 40}, t0)
	s.PointerUp(Position{40, 40}, t0.Add(ms(5)))

	st := s.Strokes()[0]
	if !st.Complete || len(st.Points) != 2 {
		t.Fatalf("stroke = complete:%v points:%d, want complete with 2 points",
			st.Complete, len(st.Points))
	}
	waves := s.Waves()
	if len(waves) != 1 {
		t.Fatalf("got %d waves, want 1 from a click", len(waves))
	}
	w := waves[0]
	if w.Slope != 0 || w.Dir != (Direction{X: -1, Y: -1}) {
		t.Errorf("wave = slope %v dir %+v, want slope 0 dir {-1 -1}", w.Slope, w.Dir)
	}
	if w.X != 800 || w.Y != 600 {
		t.Errorf("start = (%v, %v), want (800, 600)", w.X, w.Y)
	}
	if _, ok := s.fade.LastCompletion(); !ok {
		t.Error("completion time should be recorded")
	}
}

func TestSessionUpAfterMoveInPlaceKeepsPoints(t *testing.T) {
	s := newTestSession(t, 800, 600)
	s.PointerDown(Position{40, 40}, t0)
	s.PointerMove(Position{40, 40}, t0.Add(ms(5)))
	s.PointerUp(Position{40, 40}, t0.Add(ms(10)))

	if got := len(s.Strokes()[0].Points); got != 2 {
		t.Errorf("points = %d, want 2 (up repeats the last move)", got)
	}
}

func TestSessionDownWhileDrawingClosesStroke(t *testing.T) {
	s := newTestSession(t, 800, 600)
	s.PointerDown(Position{0, 0}, t0)
	s.PointerMove(Position{50, 50}, t0.Add(ms(10)))
	s.PointerDown(Position{300, 300}, t0.Add(ms(20)))

	strokes := s.Strokes()
	if len(strokes) != 2 {
		t.Fatalf("got %d strokes, want 2", len(strokes))
	}
	if !strokes[0].Complete || strokes[1].Complete {
		t.Error("only the last stroke may be incomplete")
	}
}

func TestSessionIncompleteStrokeNeverFades(t *testing.T) {
	s := newTestSession(t, 800, 600)
	drawStroke(s, t0, Position{0, 0}, Position{10, 10})
	s.PointerDown(Position{100, 100}, t0.Add(ms(100)))
	s.PointerMove(Position{120, 100}, t0.Add(ms(200)))

	for step := 0; step < 200; step++ {
		s.Advance(t0.Add(ms(100 * step)))
		for _, st := range s.Strokes() {
			if st.Complete {
				continue
			}
			for i, p := range st.Points {
				if _, ok := p.FadeStart(); ok {
					t.Fatalf("incomplete stroke point %d has a fade start", i)
				}
			}
		}
	}
}

func TestSessionOnWaveHook(t *testing.T) {
	s := newTestSession(t, 800, 600)
	var got []Wave
	s.OnWave = func(w Wave) { got = append(got, w) }

	drawStroke(s, t0, Position{0, 0}, Position{40, 20})
	if len(got) != 1 {
		t.Fatalf("OnWave called %d times, want 1", len(got))
	}
}

func TestSessionSweep(t *testing.T) {
	s := newTestSession(t, 800, 600)
	tenPointStroke(s, t0)
	s.Advance(t0.Add(ms(1000)))

	// A new stroke in progress at sweep time.
	s.PointerDown(Position{400, 400}, t0.Add(ms(1500)))
	s.PointerMove(Position{410, 400}, t0.Add(ms(1510)))

	// Last point starts fading at 1450ms and reaches zero at 1950ms.
	if n := s.Sweep(t0.Add(ms(1949))); n != 0 {
		t.Fatalf("Sweep evicted %d strokes before the fade finished", n)
	}
	if n := s.Sweep(t0.Add(ms(1950))); n != 1 {
		t.Fatalf("Sweep evicted %d strokes, want 1", n)
	}
	strokes := s.Strokes()
	if len(strokes) != 1 || strokes[0].Complete {
		t.Fatal("only the active stroke should remain")
	}
	if n := s.Sweep(t0.Add(ms(60000))); n != 0 {
		t.Error("an incomplete stroke must never be evicted")
	}
}

func TestSessionResize(t *testing.T) {
	s, err := NewSession(config.DefaultCanvas(), nil)
	if err != nil {
		t.Fatal(err)
	}

	vp, changed := s.Resize(1000.5, 500, 2)
	if !changed {
		t.Fatal("first resize should apply")
	}
	if vp.BackingWidth != 2001 || vp.BackingHeight != 1000 {
		t.Errorf("backing = %dx%d, want 2001x1000", vp.BackingWidth, vp.BackingHeight)
	}
	if s.Tier() != config.DefaultCanvas().Desktop {
		t.Errorf("tier = %+v, want desktop", s.Tier())
	}

	if _, changed := s.Resize(1000.5, 500, 2); changed {
		t.Error("same size and scale must not re-apply")
	}

	s.Resize(375, 667, 3)
	if s.Tier() != config.DefaultCanvas().Mobile {
		t.Errorf("tier = %+v, want mobile", s.Tier())
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultCanvas()
	cfg.DotColor = "blue"
	if _, err := NewSession(cfg, nil); err == nil {
		t.Error("NewSession should reject an unparsable colour")
	}
}

func TestSessionClose(t *testing.T) {
	s := newTestSession(t, 800, 600)
	drawStroke(s, t0, Position{0, 0}, Position{100, 100})
	s.Close()

	if st := s.Stats(); st.Strokes != 0 || st.Waves != 0 {
		t.Errorf("Close should discard state, got %+v", st)
	}
	s.PointerDown(Position{1, 1}, t0)
	surf := &recordingSurface{}
	s.Frame(surf, t0)
	if s.Stats().Strokes != 0 || surf.clears != 0 {
		t.Error("a closed session must ignore input and frames")
	}
}
