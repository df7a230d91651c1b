package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/wave-canvas/internal/canvas"
)

type pointerSource int

const (
	sourceNone pointerSource = iota
	sourceMouse
	sourceTouch
)

// pointerSink receives the normalized pointer events. *canvas.Session
// implements it.
type pointerSink interface {
	PointerDown(p canvas.Position, now time.Time)
	PointerMove(p canvas.Position, now time.Time)
	PointerUp(p canvas.Position, now time.Time)
	PointerLeave(p canvas.Position, now time.Time)
	PointerCancel(p canvas.Position, now time.Time)
}

// pointerInput is one tick of polled input, already converted to logical
// pixels.
type pointerInput struct {
	focused bool

	mouse         canvas.Position
	mousePressed  bool
	mouseReleased bool

	// touch carries the tracked touch, or the first new one when idle.
	touch         canvas.Position
	touchID       ebiten.TouchID
	touchPressed  bool
	touchReleased bool
}

// pointerTracker turns ebiten's polled mouse and touch state into the
// down/move/up/leave/cancel events the canvas expects. One pointer is
// tracked at a time; the mouse wins when both start on the same tick.
type pointerTracker struct {
	source pointerSource
	touch  ebiten.TouchID
	last   canvas.Position

	ids []ebiten.TouchID
}

func (p *pointerTracker) reset() {
	p.source = sourceNone
	p.touch = 0
}

func (p *pointerTracker) update(in pointerInput, vp canvas.Viewport, now time.Time, sink pointerSink) {
	if p.source != sourceNone && !in.focused {
		sink.PointerCancel(p.last, now)
		p.reset()
		return
	}

	switch p.source {
	case sourceNone:
		switch {
		case in.mousePressed && vp.Contains(in.mouse.X, in.mouse.Y):
			p.source, p.last = sourceMouse, in.mouse
			sink.PointerDown(in.mouse, now)
		case in.touchPressed:
			p.source, p.touch, p.last = sourceTouch, in.touchID, in.touch
			sink.PointerDown(in.touch, now)
		}

	case sourceMouse:
		switch {
		case in.mouseReleased:
			sink.PointerUp(in.mouse, now)
			p.reset()
		case !vp.Contains(in.mouse.X, in.mouse.Y):
			sink.PointerLeave(in.mouse, now)
			p.reset()
		case in.mouse != p.last:
			sink.PointerMove(in.mouse, now)
			p.last = in.mouse
		}

	case sourceTouch:
		switch {
		case in.touchReleased:
			// Released touches report no position, the last one stands in.
			sink.PointerUp(p.last, now)
			p.reset()
		case in.touch != p.last:
			sink.PointerMove(in.touch, now)
			p.last = in.touch
		}
	}
}

// poll samples ebiten's input state for this tick.
func (p *pointerTracker) poll(scale float64) pointerInput {
	if scale <= 0 {
		scale = 1
	}
	logical := func(x, y int) canvas.Position {
		return canvas.Position{X: float64(x) / scale, Y: float64(y) / scale}
	}

	in := pointerInput{
		focused:       ebiten.IsFocused(),
		mouse:         logical(ebiten.CursorPosition()),
		mousePressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		mouseReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	switch p.source {
	case sourceTouch:
		in.touchID = p.touch
		in.touchReleased = inpututil.IsTouchJustReleased(p.touch)
		if !in.touchReleased {
			in.touch = logical(ebiten.TouchPosition(p.touch))
		}
	case sourceNone:
		p.ids = inpututil.AppendJustPressedTouchIDs(p.ids[:0])
		if len(p.ids) > 0 {
			in.touchID = p.ids[0]
			in.touchPressed = true
			in.touch = logical(ebiten.TouchPosition(in.touchID))
		}
	}
	return in
}

func (g *Game) pollPointer(now time.Time) {
	vp := g.session.Viewport()
	in := g.pointer.poll(vp.Scale)
	g.pointer.update(in, vp, now, g.session)
}
