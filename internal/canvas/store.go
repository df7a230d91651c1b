package canvas

import (
	"sort"
)

// StrokeStore is the ordered stroke collection of one session. It holds any
// number of completed strokes and at most one incomplete stroke, which is
// always the last entry.
type StrokeStore struct {
	strokes []*Stroke
}

func NewStrokeStore() *StrokeStore {
	return &StrokeStore{}
}

// Begin appends a new incomplete stroke holding p.
func (s *StrokeStore) Begin(p Point) *Stroke {
	st := &Stroke{Points: []Point{p}}
	s.strokes = append(s.strokes, st)
	return st
}

// Active returns the incomplete stroke, or nil when nothing is being drawn.
func (s *StrokeStore) Active() *Stroke {
	if len(s.strokes) == 0 {
		return nil
	}
	if last := s.strokes[len(s.strokes)-1]; !last.Complete {
		return last
	}
	return nil
}

// Append adds p to the active stroke. It reports false when there is none.
func (s *StrokeStore) Append(p Point) bool {
	st := s.Active()
	if st == nil {
		return false
	}
	st.Points = append(st.Points, p)
	return true
}

// Finish marks the active stroke complete and returns it.
func (s *StrokeStore) Finish() (*Stroke, bool) {
	st := s.Active()
	if st == nil {
		return nil, false
	}
	st.Complete = true
	return st, true
}

// All returns the strokes in drawing order. The slice is shared with the
// store; callers must not append to it.
func (s *StrokeStore) All() []*Stroke { return s.strokes }

// Replace swaps in a new stroke list.
func (s *StrokeStore) Replace(strokes []*Stroke) { s.strokes = strokes }

func (s *StrokeStore) Len() int { return len(s.strokes) }

// PointCount is the number of points across all strokes.
func (s *StrokeStore) PointCount() int {
	n := 0
	for _, st := range s.strokes {
		n += len(st.Points)
	}
	return n
}

// PointRef addresses one point inside the store.
type PointRef struct {
	Stroke *Stroke
	Index  int
}

func (r PointRef) Point() *Point { return &r.Stroke.Points[r.Index] }

// ByTimestamp returns every point of every stroke ordered by creation time.
// Points with equal timestamps keep store order, so each point gets a
// distinct rank.
func (s *StrokeStore) ByTimestamp() []PointRef {
	refs := make([]PointRef, 0, s.PointCount())
	for _, st := range s.strokes {
		for i := range st.Points {
			refs = append(refs, PointRef{Stroke: st, Index: i})
		}
	}
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Point().Timestamp.Before(refs[j].Point().Timestamp)
	})
	return refs
}

// Retain keeps only the strokes for which keep returns true and reports how
// many were dropped.
func (s *StrokeStore) Retain(keep func(*Stroke) bool) int {
	kept := make([]*Stroke, 0, len(s.strokes))
	for _, st := range s.strokes {
		if keep(st) {
			kept = append(kept, st)
		}
	}
	dropped := len(s.strokes) - len(kept)
	if dropped > 0 {
		s.Replace(kept)
	}
	return dropped
}
