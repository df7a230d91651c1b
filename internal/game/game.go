// Package game hosts a canvas session in an ebiten window: it feeds mouse and
// touch input to the session, runs the simulation in Update and the
// rendering in Draw, and turns Layout into the resize observer.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/wave-canvas/internal/canvas"
	"github.com/iburimskiy/wave-canvas/internal/config"
)

type Game struct {
	ctx    context.Context
	cfg    config.Config
	logger *log.Logger
	clock  canvas.Clock

	session *canvas.Session
	driver  *canvas.Driver
	surface *screenSurface
	pointer pointerTracker
	chime   *chime

	// input edge detection
	prevKey map[ebiten.Key]bool

	started time.Time
	backing [2]int
	closed  bool
}

// New builds a game around a fresh canvas session. Sound is optional: if the
// audio device cannot be opened the game runs silently.
func New(cfg config.Config, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	session, err := canvas.NewSession(cfg.Canvas, logger)
	if err != nil {
		return nil, err
	}
	clock := canvas.SystemClock{}
	g := &Game{
		ctx:     context.Background(),
		cfg:     cfg,
		logger:  logger,
		clock:   clock,
		session: session,
		driver:  canvas.NewDriver(session, clock, cfg.Canvas.HousekeepingInterval),
		surface: &screenSurface{scale: 1},
		prevKey: map[ebiten.Key]bool{},
		started: clock.Now(),
	}

	if cfg.Sound.Enabled {
		c, err := newChime(cfg.Sound)
		if err != nil {
			// Non-fatal, the canvas works without sound
			logger.Warn("audio initialization failed", "err", err)
		} else {
			g.chime = c
			session.OnWave = c.play
		}
	}
	return g, nil
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
// The session is torn down before Run returns.
func Run(ctx context.Context, g *Game) error {
	g.ctx = ctx
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if g.closed || g.ctx.Err() != nil {
		return ebiten.Termination
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyF1) {
		g.cfg.Window.Overlay = !g.cfg.Window.Overlay
	}

	g.pollPointer(g.clock.Now())
	g.driver.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.closed {
		return
	}
	g.surface.dst = screen
	g.driver.Paint(g.surface)
	g.surface.dst = nil

	if g.cfg.Window.Overlay {
		g.drawOverlay(screen)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	uptime := g.clock.Now().Sub(g.started)
	status := overlayStatus(g.session, uptime, ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// overlayStatus is the one-line debug summary of a session.
func overlayStatus(s *canvas.Session, uptime time.Duration, tps float64) string {
	st := s.Stats()
	vp := s.Viewport()
	status := fmt.Sprintf("strokes %d  points %d  waves %d  speed %.0f %.0fx%.0f@%.1f  up %v  tps %.0f",
		st.Strokes, st.Points, st.Waves, s.Tier().Speed, vp.Width, vp.Height, vp.Scale,
		uptime.Truncate(time.Second), tps)
	if st.Drawing {
		status += "  drawing"
	}
	return status
}

// Layout doubles as the resize observer. The backing store is the window
// size times the device scale factor; the surface scale changes only when
// the session accepts a new viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.closed {
		return max(g.backing[0], 1), max(g.backing[1], 1)
	}
	scale := ebiten.Monitor().DeviceScaleFactor()
	vp, changed := g.session.Resize(float64(outsideWidth), float64(outsideHeight), scale)
	if changed {
		g.surface.setScale(vp.Scale)
		g.backing = [2]int{vp.BackingWidth, vp.BackingHeight}
	}
	// ebiten rejects an empty screen, e.g. while minimized
	return max(g.backing[0], 1), max(g.backing[1], 1)
}

// Session exposes the hosted session.
func (g *Game) Session() *canvas.Session { return g.session }

// Close stops the frame passes and the housekeeping sweep, detaches the
// resize observer and silences the speaker.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.driver.Stop()
	if g.chime != nil {
		g.chime.close()
	}
	g.logger.Debug("canvas torn down")
}
