package canvas

import (
	"image/color"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/wave-canvas/internal/config"
)

var t0 = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func newTestSession(t *testing.T, width, height float64) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultCanvas(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	s.Resize(width, height, 1)
	return s
}

type circle struct {
	X, Y, R float64
	C       color.Color
}

type line struct {
	X0, Y0, X1, Y1, W float64
	C                 color.Color
}

// recordingSurface keeps every draw call for inspection.
type recordingSurface struct {
	clears  int
	circles []circle
	lines   []line
}

func (r *recordingSurface) Clear(color.Color) { r.clears++ }

func (r *recordingSurface) FillCircle(cx, cy, rad float64, c color.Color) {
	r.circles = append(r.circles, circle{cx, cy, rad, c})
}

func (r *recordingSurface) StrokeLine(x0, y0, x1, y1, w float64, c color.Color) {
	r.lines = append(r.lines, line{x0, y0, x1, y1, w, c})
}

func (r *recordingSurface) circleAt(x, y float64) (circle, bool) {
	for _, c := range r.circles {
		if c.X == x && c.Y == y {
			return c, true
		}
	}
	return circle{}, false
}

// drawStroke replays a gesture through the session: down on the first
// position, moves for the middle ones, up on the last, 10ms apart, finishing
// at end.
func drawStroke(s *Session, end time.Time, pts ...Position) {
	start := end.Add(-ms(10 * (len(pts) - 1)))
	s.PointerDown(pts[0], start)
	for i := 1; i < len(pts)-1; i++ {
		s.PointerMove(pts[i], start.Add(ms(10*i)))
	}
	s.PointerUp(pts[len(pts)-1], end)
}
