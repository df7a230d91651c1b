package canvas

import "time"

// FadeScheduler assigns fade start times once drawing has been quiet for the
// configured delay. The whole drawing dissolves over one fade duration,
// oldest points first, regardless of which stroke they belong to.
type FadeScheduler struct {
	delay    time.Duration
	duration time.Duration

	last    time.Time
	pending bool
}

func NewFadeScheduler(delay, duration time.Duration) *FadeScheduler {
	return &FadeScheduler{delay: delay, duration: duration}
}

// StrokeCompleted records the most recent completion time.
func (f *FadeScheduler) StrokeCompleted(at time.Time) {
	f.last = at
	f.pending = true
}

// LastCompletion returns the most recent completion time, if any.
func (f *FadeScheduler) LastCompletion() (time.Time, bool) {
	return f.last, !f.last.IsZero()
}

// Due reports whether a scheduling pass should run at now.
func (f *FadeScheduler) Due(now time.Time, drawing bool) bool {
	if !f.pending || f.last.IsZero() || drawing {
		return false
	}
	return !now.Before(f.last.Add(f.delay))
}

// Run schedules every unscheduled point of every completed stroke when the
// pass is due. It returns the number of points that received a fade start.
func (f *FadeScheduler) Run(store *StrokeStore, now time.Time) int {
	if !f.Due(now, store.Active() != nil) {
		return 0
	}
	f.pending = false

	refs := store.ByTimestamp()
	if len(refs) == 0 {
		return 0
	}
	base := f.last.Add(f.delay)
	step := float64(f.duration) / float64(len(refs))

	scheduled := 0
	for rank, ref := range refs {
		if !ref.Stroke.Complete {
			continue
		}
		at := base.Add(time.Duration(float64(rank) * step))
		if ref.Point().scheduleFade(at) {
			scheduled++
		}
	}
	return scheduled
}

// Duration is the length of one point's fade.
func (f *FadeScheduler) Duration() time.Duration { return f.duration }
