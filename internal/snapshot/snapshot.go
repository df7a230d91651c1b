// Package snapshot renders a scripted drawing session to PNG without a
// window. Time comes from a manual clock, so the same script always yields
// the same image.
package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/wave-canvas/internal/canvas"
	"github.com/iburimskiy/wave-canvas/internal/config"
)

// FrameInterval is the simulated time between frames, about 60 per second.
const FrameInterval = 16 * time.Millisecond

// strokeGap separates consecutive scripted strokes.
const strokeGap = 100 * time.Millisecond

var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Option configures a render.
type Option func(*renderer)

type renderer struct {
	scale  float64
	frames int
	at     time.Duration
	logger *log.Logger
}

// WithScale sets the device pixel ratio of the output (default 1).
func WithScale(s float64) Option { return func(r *renderer) { r.scale = s } }

// WithFrames simulates n frames after the last stroke. Waves move once per
// frame.
func WithFrames(n int) Option { return func(r *renderer) { r.frames = n } }

// WithAt moves the clock forward by d after the settle frames, before the
// final frame is painted. Fades follow the clock.
func WithAt(d time.Duration) Option { return func(r *renderer) { r.at = d } }

// WithLogger sets the logger used by the session.
func WithLogger(l *log.Logger) Option { return func(r *renderer) { r.logger = l } }

// Render replays gestures on a canvas sized by cfg.Window and returns the
// final frame as PNG.
func Render(cfg config.Config, gestures []Gesture, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, cfg, gestures, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write is Render with the PNG streamed to w.
func Write(w io.Writer, cfg config.Config, gestures []Gesture, opts ...Option) error {
	r := renderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if err := r.validate(); err != nil {
		return err
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}

	session, err := canvas.NewSession(cfg.Canvas, r.logger)
	if err != nil {
		return err
	}
	vp, _ := session.Resize(float64(cfg.Window.Width), float64(cfg.Window.Height), r.scale)
	if !vp.Ready() {
		return fmt.Errorf("%w: empty canvas %dx%d", config.ErrInvalid, cfg.Window.Width, cfg.Window.Height)
	}

	clock := canvas.NewManualClock(epoch)
	driver := canvas.NewDriver(session, clock, cfg.Canvas.HousekeepingInterval)
	defer driver.Stop()

	for i, g := range gestures {
		if i > 0 {
			advance(clock, driver, int(strokeGap/FrameInterval))
		}
		replay(session, clock, driver, g)
	}
	advance(clock, driver, r.frames)

	clock.Advance(r.at)
	surf := newSurface(vp)
	driver.Frame(surf)

	st := session.Stats()
	r.logger.Debug("snapshot rendered",
		"size", fmt.Sprintf("%dx%d", vp.BackingWidth, vp.BackingHeight),
		"strokes", st.Strokes, "points", st.Points, "waves", st.Waves,
		"elapsed", clock.Now().Sub(epoch))

	if err := surf.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (r renderer) validate() error {
	switch {
	case r.scale <= 0 || r.scale > 8 || math.IsNaN(r.scale):
		return fmt.Errorf("%w: scale %v out of (0, 8]", config.ErrInvalid, r.scale)
	case r.frames < 0:
		return fmt.Errorf("%w: negative frame count %d", config.ErrInvalid, r.frames)
	case r.at < 0:
		return fmt.Errorf("%w: negative time offset %v", config.ErrInvalid, r.at)
	}
	return nil
}

// replay presses at the first position, moves through the rest one frame
// apart and releases on the last.
func replay(s *canvas.Session, clock *canvas.ManualClock, d *canvas.Driver, g Gesture) {
	if len(g) == 0 {
		return
	}
	s.PointerDown(g[0], clock.Now())
	d.Step()
	for _, p := range g[1:] {
		clock.Advance(FrameInterval)
		s.PointerMove(p, clock.Now())
		d.Step()
	}
	s.PointerUp(g[len(g)-1], clock.Now())
}

func advance(clock *canvas.ManualClock, d *canvas.Driver, frames int) {
	for range frames {
		clock.Advance(FrameInterval)
		d.Step()
	}
}
