package canvas

import "time"

// Driver ties a Session to a clock. It runs frame passes and the fixed-period
// housekeeping sweep, and stops both together.
type Driver struct {
	session  *Session
	clock    Clock
	interval time.Duration

	nextSweep time.Time
	frames    uint64
	stopped   bool
}

// NewDriver starts the housekeeping schedule at the clock's current time. A
// nil clock uses SystemClock.
func NewDriver(s *Session, clock Clock, interval time.Duration) *Driver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Driver{
		session:   s,
		clock:     clock,
		interval:  interval,
		nextSweep: clock.Now().Add(interval),
	}
}

// Step runs the simulation half of a frame and the sweep when it is due.
func (d *Driver) Step() {
	if d.stopped {
		return
	}
	now := d.clock.Now()
	d.session.Advance(now)
	d.tick(now)
}

// Paint runs the rendering half of a frame.
func (d *Driver) Paint(surf Surface) {
	if d.stopped {
		return
	}
	d.session.Paint(surf, d.clock.Now())
	d.frames++
}

// Frame runs one complete pass and the sweep when it is due.
func (d *Driver) Frame(surf Surface) {
	if d.stopped {
		return
	}
	now := d.clock.Now()
	d.session.Frame(surf, now)
	d.frames++
	d.tick(now)
}

// tick fires the sweep once per elapsed interval. A long stall runs a single
// sweep and reschedules from now rather than replaying missed ticks.
func (d *Driver) tick(now time.Time) {
	if now.Before(d.nextSweep) {
		return
	}
	d.session.Sweep(now)
	d.nextSweep = d.nextSweep.Add(d.interval)
	if !d.nextSweep.After(now) {
		d.nextSweep = now.Add(d.interval)
	}
}

// Frames is the number of passes painted so far.
func (d *Driver) Frames() uint64 { return d.frames }

// Stop cancels frame passes and the sweep, and discards the session state.
func (d *Driver) Stop() {
	if d.stopped {
		return
	}
	d.stopped = true
	d.session.Close()
}

func (d *Driver) Running() bool { return !d.stopped }
