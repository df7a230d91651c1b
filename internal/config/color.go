package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the parsed colour set of a Canvas.
type Palette struct {
	Dot        color.NRGBA
	Stroke     color.NRGBA
	Background color.NRGBA
}

// Palette parses the canvas colour strings.
func (c Canvas) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Dot, err = ParseHexColor(c.DotColor); err != nil {
		return p, fmt.Errorf("dot_color: %w", err)
	}
	if p.Stroke, err = ParseHexColor(c.StrokeColor); err != nil {
		return p, fmt.Errorf("stroke_color: %w", err)
	}
	if p.Background, err = ParseHexColor(c.Background); err != nil {
		return p, fmt.Errorf("background: %w", err)
	}
	return p, nil
}

// ParseHexColor accepts "#RGB", "#RRGGBB" and "#RRGGBBAA" (the leading '#'
// is optional).
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := uint8(0xff)
	switch len(h) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(h[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: colour %q alpha", ErrInvalid, s)
		}
		alpha, h = uint8(a), h[:6]
	default:
		return color.NRGBA{}, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}

	c, err := colorful.Hex("#" + h)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: colour %q: %v", ErrInvalid, s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
