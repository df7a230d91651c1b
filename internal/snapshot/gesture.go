package snapshot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iburimskiy/wave-canvas/internal/canvas"
)

// ErrGesture is returned for a stroke script that cannot be parsed.
var ErrGesture = errors.New("invalid gesture")

// Gesture is one scripted stroke: the positions a pointer passes through
// between down and up, in logical pixels.
type Gesture []canvas.Position

// ParseGesture reads a whitespace separated list of "x,y" pairs.
func ParseGesture(s string) (Gesture, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no points", ErrGesture)
	}
	g := make(Gesture, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not an x,y pair", ErrGesture, f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: x in %q: %v", ErrGesture, f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: y in %q: %v", ErrGesture, f, err)
		}
		g = append(g, canvas.Position{X: x, Y: y})
	}
	return g, nil
}

// ParseGestures parses one gesture per script.
func ParseGestures(scripts []string) ([]Gesture, error) {
	out := make([]Gesture, 0, len(scripts))
	for i, s := range scripts {
		g, err := ParseGesture(s)
		if err != nil {
			return nil, fmt.Errorf("stroke %d: %w", i+1, err)
		}
		out = append(out, g)
	}
	return out, nil
}
