package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Wave Canvas - draw to send a wave, Esc/Q: Quit"

	// Grid
	GridSize     = 20
	DotSize      = 6
	MaxDotGrowth = 2
	DotColor     = "#CAF0F8"
	Background   = "#FFFFFF"

	// Strokes
	StrokeWidth  = 3
	StrokeColor  = "#00B4D8"
	FadeDelay    = 1000 * time.Millisecond
	FadeDuration = 500 * time.Millisecond

	// Eviction sweep
	HousekeepingInterval = 1000 * time.Millisecond

	// Waves: viewport widths at or above Breakpoint use the desktop tier.
	Breakpoint   = 768
	DesktopSpeed = 10
	DesktopRange = 400
	MobileSpeed  = 2
	MobileRange  = 200

	// Sound cue played when a wave is emitted
	ChimeFrequency = 660
	ChimeDuration  = 90 * time.Millisecond
	ChimeVolume    = 0.15
)

// ErrInvalid is returned by Validate and Load for values the canvas cannot
// run with.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full runtime configuration. The zero value is not usable;
// start from Default.
type Config struct {
	Window Window `toml:"window"`
	Canvas Canvas `toml:"canvas"`
	Sound  Sound  `toml:"sound"`
}

type Window struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	Overlay bool   `toml:"overlay"`
}

// Canvas holds the drawing surface constants.
type Canvas struct {
	GridSize     float64 `toml:"grid_size"`
	DotSize      float64 `toml:"dot_size"`
	MaxDotGrowth float64 `toml:"max_dot_growth"`
	DotColor     string  `toml:"dot_color"`
	Background   string  `toml:"background"`

	StrokeWidth  float64       `toml:"stroke_width"`
	StrokeColor  string        `toml:"stroke_color"`
	FadeDelay    time.Duration `toml:"fade_delay"`
	FadeDuration time.Duration `toml:"fade_duration"`

	HousekeepingInterval time.Duration `toml:"housekeeping_interval"`

	Breakpoint float64 `toml:"breakpoint"`
	Desktop    Tier    `toml:"desktop"`
	Mobile     Tier    `toml:"mobile"`
}

// Tier is the wave speed (px per frame) and dot influence range (px) for one
// class of viewport.
type Tier struct {
	Speed float64 `toml:"speed"`
	Range float64 `toml:"range"`
}

type Sound struct {
	Enabled   bool          `toml:"enabled"`
	Frequency float64       `toml:"frequency"`
	Duration  time.Duration `toml:"duration"`
	Volume    float64       `toml:"volume"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Canvas: DefaultCanvas(),
		Sound: Sound{
			Frequency: ChimeFrequency,
			Duration:  ChimeDuration,
			Volume:    ChimeVolume,
		},
	}
}

// DefaultCanvas returns the built-in canvas constants.
func DefaultCanvas() Canvas {
	return Canvas{
		GridSize:             GridSize,
		DotSize:              DotSize,
		MaxDotGrowth:         MaxDotGrowth,
		DotColor:             DotColor,
		Background:           Background,
		StrokeWidth:          StrokeWidth,
		StrokeColor:          StrokeColor,
		FadeDelay:            FadeDelay,
		FadeDuration:         FadeDuration,
		HousekeepingInterval: HousekeepingInterval,
		Breakpoint:           Breakpoint,
		Desktop:              Tier{Speed: DesktopSpeed, Range: DesktopRange},
		Mobile:               Tier{Speed: MobileSpeed, Range: MobileRange},
	}
}

// Load reads a TOML file on top of Default. Keys the file sets override the
// defaults; keys it omits keep them. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if err := c.Canvas.Validate(); err != nil {
		return err
	}
	if c.Sound.Enabled {
		if c.Sound.Frequency <= 0 {
			return fmt.Errorf("%w: sound frequency %v", ErrInvalid, c.Sound.Frequency)
		}
		if c.Sound.Duration <= 0 {
			return fmt.Errorf("%w: sound duration %v", ErrInvalid, c.Sound.Duration)
		}
		if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
			return fmt.Errorf("%w: sound volume %v not in [0,1]", ErrInvalid, c.Sound.Volume)
		}
	}
	return nil
}

func (c Canvas) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("%w: grid_size %v", ErrInvalid, c.GridSize)
	case c.DotSize <= 0:
		return fmt.Errorf("%w: dot_size %v", ErrInvalid, c.DotSize)
	case c.MaxDotGrowth < 0:
		return fmt.Errorf("%w: max_dot_growth %v", ErrInvalid, c.MaxDotGrowth)
	case c.StrokeWidth <= 0:
		return fmt.Errorf("%w: stroke_width %v", ErrInvalid, c.StrokeWidth)
	case c.FadeDelay < 0:
		return fmt.Errorf("%w: fade_delay %v", ErrInvalid, c.FadeDelay)
	case c.FadeDuration <= 0:
		return fmt.Errorf("%w: fade_duration %v", ErrInvalid, c.FadeDuration)
	case c.HousekeepingInterval <= 0:
		return fmt.Errorf("%w: housekeeping_interval %v", ErrInvalid, c.HousekeepingInterval)
	case c.Breakpoint < 0:
		return fmt.Errorf("%w: breakpoint %v", ErrInvalid, c.Breakpoint)
	}
	for name, t := range map[string]Tier{"desktop": c.Desktop, "mobile": c.Mobile} {
		if t.Speed <= 0 || t.Range <= 0 {
			return fmt.Errorf("%w: %s tier speed=%v range=%v", ErrInvalid, name, t.Speed, t.Range)
		}
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// TierFor picks the wave constants for a viewport width. It is a plain
// breakpoint lookup, not an interpolation.
func (c Canvas) TierFor(viewportWidth float64) Tier {
	if viewportWidth >= c.Breakpoint {
		return c.Desktop
	}
	return c.Mobile
}
