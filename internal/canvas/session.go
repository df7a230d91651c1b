// Package canvas implements the interactive dot-grid drawing surface:
// pointer strokes that fade after a quiet period, waves emitted by completed
// strokes, and the per-frame rendering of grid and strokes onto a Surface.
//
// A Session owns all mutable state of one mounted canvas. It is not safe for
// concurrent use; the host calls pointer handlers, frame passes and the
// housekeeping sweep from a single goroutine.
package canvas

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/wave-canvas/internal/config"
)

type Session struct {
	cfg     config.Canvas
	palette config.Palette
	logger  *log.Logger

	store *StrokeStore
	fade  *FadeScheduler
	waves WaveField

	vp     Viewport
	tier   config.Tier
	closed bool

	// OnWave, when set, is called for every emitted wave.
	OnWave func(Wave)
}

// NewSession validates cfg and returns an empty session. A nil logger falls
// back to log.Default.
func NewSession(cfg config.Canvas, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		cfg:     cfg,
		palette: palette,
		logger:  logger,
		store:   NewStrokeStore(),
		fade:    NewFadeScheduler(cfg.FadeDelay, cfg.FadeDuration),
		tier:    cfg.TierFor(0),
	}, nil
}

// Resize applies a new container size and device pixel ratio. It reports
// false, and changes nothing, when neither differs from the current
// viewport, so the scale is applied exactly once per real resize.
func (s *Session) Resize(width, height, scale float64) (Viewport, bool) {
	vp := NewViewport(width, height, scale)
	if s.closed || vp == s.vp {
		return s.vp, false
	}
	s.vp = vp
	s.tier = s.cfg.TierFor(vp.Width)
	s.logger.Debug("canvas resized",
		"width", vp.Width, "height", vp.Height, "scale", vp.Scale,
		"backing", fmt.Sprintf("%dx%d", vp.BackingWidth, vp.BackingHeight))
	return vp, true
}

func (s *Session) Viewport() Viewport { return s.vp }

// Tier returns the wave constants for the current viewport width.
func (s *Session) Tier() config.Tier { return s.tier }

// Drawing reports whether a stroke is in progress.
func (s *Session) Drawing() bool { return s.store.Active() != nil }

// PointerDown starts a new stroke at pos. A stroke left open by a lost
// pointer-up is completed first.
func (s *Session) PointerDown(pos Position, at time.Time) {
	if s.closed {
		return
	}
	if s.Drawing() {
		s.complete(at)
	}
	s.store.Begin(NewPoint(pos, at))
}

// PointerMove extends the active stroke. Without one it does nothing.
func (s *Session) PointerMove(pos Position, at time.Time) {
	if s.closed {
		return
	}
	s.store.Append(NewPoint(pos, at))
}

// PointerUp ends the active stroke with a final point at pos. Without an
// active stroke it does nothing. An up that repeats the position of the last
// move adds no sample; a click (down and up in place) still gets its final
// point, so it emits a wave.
func (s *Session) PointerUp(pos Position, at time.Time) {
	if s.closed {
		return
	}
	st := s.store.Active()
	if st == nil {
		return
	}
	if len(st.Points) < 2 || st.Last().Position() != pos {
		s.store.Append(NewPoint(pos, at))
	}
	s.complete(at)
}

// PointerLeave and PointerCancel end the stroke exactly like PointerUp.
func (s *Session) PointerLeave(pos Position, at time.Time)  { s.PointerUp(pos, at) }
func (s *Session) PointerCancel(pos Position, at time.Time) { s.PointerUp(pos, at) }

func (s *Session) complete(at time.Time) {
	st, ok := s.store.Finish()
	if !ok {
		return
	}
	s.logger.Debug("stroke completed", "points", len(st.Points))
	if len(st.Points) >= 2 {
		s.emit(NewWave(st.First(), st.Last(), s.vp))
	}
	s.fade.StrokeCompleted(at)
}

func (s *Session) emit(w Wave) {
	s.waves.Add(w)
	s.logger.Debug("wave emitted", "slope", w.Slope, "x", w.X, "y", w.Y, "dir", w.Dir)
	if s.OnWave != nil {
		s.OnWave(w)
	}
}

// Advance runs the simulation half of a frame: waves move, then the fade
// trigger is checked.
func (s *Session) Advance(now time.Time) {
	if s.closed {
		return
	}
	s.waves.Advance(s.vp, s.tier)
	s.scheduleFade(now)
}

// Paint runs the rendering half of a frame: clear, grid, strokes. A nil
// surface or an empty viewport draws nothing.
func (s *Session) Paint(surf Surface, now time.Time) {
	if s.closed || surf == nil || !s.vp.Ready() {
		return
	}
	surf.Clear(s.palette.Background)
	drawGrid(surf, s.vp, s.cfg, s.tier, &s.waves, s.palette.Dot)
	drawStrokes(surf, s.store.All(), now, s.cfg, s.palette.Stroke)
}

// Frame runs one full pass: clear, advance waves, grid, fade trigger,
// strokes.
func (s *Session) Frame(surf Surface, now time.Time) {
	if s.closed || surf == nil || !s.vp.Ready() {
		return
	}
	surf.Clear(s.palette.Background)
	s.waves.Advance(s.vp, s.tier)
	drawGrid(surf, s.vp, s.cfg, s.tier, &s.waves, s.palette.Dot)
	s.scheduleFade(now)
	drawStrokes(surf, s.store.All(), now, s.cfg, s.palette.Stroke)
}

func (s *Session) scheduleFade(now time.Time) {
	if n := s.fade.Run(s.store, now); n > 0 {
		s.logger.Debug("fade scheduled", "points", n)
	}
}

// Sweep evicts completed strokes whose points have all finished fading.
// Incomplete strokes are always kept.
func (s *Session) Sweep(now time.Time) int {
	if s.closed {
		return 0
	}
	dropped := s.store.Retain(func(st *Stroke) bool {
		return !st.FullyFaded(now, s.cfg.FadeDuration)
	})
	if dropped > 0 {
		s.logger.Debug("strokes evicted", "count", dropped, "remaining", s.store.Len())
	}
	return dropped
}

// Strokes returns the live stroke list in drawing order.
func (s *Session) Strokes() []*Stroke { return s.store.All() }

// Waves returns the waves currently on screen.
func (s *Session) Waves() []Wave { return s.waves.Waves() }

// Stats is a snapshot of the session's collections.
type Stats struct {
	Strokes int
	Points  int
	Waves   int
	Drawing bool
}

func (s *Session) Stats() Stats {
	return Stats{
		Strokes: s.store.Len(),
		Points:  s.store.PointCount(),
		Waves:   s.waves.Len(),
		Drawing: s.Drawing(),
	}
}

// Close discards all state. Every later call is a no-op.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.store.Replace(nil)
	s.waves.Reset()
	s.OnWave = nil
}

func (s *Session) Closed() bool { return s.closed }
