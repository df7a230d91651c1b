package game

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/wave-canvas/internal/canvas"
	"github.com/iburimskiy/wave-canvas/internal/config"
)

const chimeSampleRate = beep.SampleRate(44100)

// tone is a single decaying sine blip. A fresh tone is built per wave, so the
// speaker goroutine never shares one with the game loop.
type tone struct {
	freq   float64
	volume float64
	pos    int
	length int
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.length {
			break
		}
		env := 1 - float64(t.pos)/float64(t.length)
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(chimeSampleRate)
		v := math.Sin(phase) * t.volume * env * env
		samples[i][0], samples[i][1] = v, v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// chime plays a short cue through the speaker each time a wave is emitted.
type chime struct {
	freq   float64
	volume float64
	length int
}

// newChime opens the speaker. cfg must have passed config.Validate, which
// keeps the volume in [0, 1].
func newChime(cfg config.Sound) (*chime, error) {
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &chime{
		freq:   cfg.Frequency,
		volume: cfg.Volume,
		length: chimeSampleRate.N(cfg.Duration),
	}, nil
}

func (c *chime) newTone(w canvas.Wave) *tone {
	return &tone{freq: pitchFor(c.freq, w), volume: c.volume, length: c.length}
}

func (c *chime) play(w canvas.Wave) {
	speaker.Play(c.newTone(w))
}

func (c *chime) close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

// pitchFor raises the cue a fifth for waves travelling up the screen, so
// upward and downward strokes sound different.
func pitchFor(base float64, w canvas.Wave) float64 {
	if w.Dir.Y < 0 {
		return base * 1.5
	}
	return base
}
