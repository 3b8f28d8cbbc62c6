package remap

import "sort"

// Stage is one translation layer: a collection of segments held sorted
// ascending by SourceStart. Any value not covered by a segment translates to
// itself, the identity fallback.
//
// Segments within a stage are expected to be mutually disjoint. That is an
// invariant of the data the stage is built from, not something enforced
// here. If it is ever violated the first covering segment in ascending
// SourceStart order wins, for scalar and range translation alike: both
// traverse the same ordering, so they cannot disagree.
type Stage struct {
	segments []Segment
}

// NewStage builds a stage from segments. The segments are copied and stably
// sorted by SourceStart; the input slice is not retained.
func NewStage(segments []Segment) Stage {
	ordered := make([]Segment, len(segments))
	copy(ordered, segments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SourceStart < ordered[j].SourceStart
	})
	return Stage{segments: ordered}
}

// Segments returns the stage's segments in ascending SourceStart order. The
// returned slice is the stage's own storage and must not be modified.
func (m Stage) Segments() []Segment {
	return m.segments
}

// TranslateValue translates a single value through the stage. The first
// covering segment in ascending SourceStart order translates it; a value
// covered by no segment maps to itself.
func (m Stage) TranslateValue(v uint64) uint64 {
	for _, s := range m.segments {
		if s.Covers(v) {
			return s.Translate(v)
		}
	}
	return v
}

// TranslateRange translates the whole of q through the stage without
// enumerating its values. The output is the ordered sequence of disjoint
// intervals discovered sweeping q left to right: spans between segments are
// emitted unchanged, spans covered by a segment are emitted shifted by its
// offset. The output lengths always sum to q.Length(), no value is dropped
// or duplicated.
//
// An empty or reversed interval yields nil.
func (m Stage) TranslateRange(q Interval) []Interval {
	if q.Start >= q.End {
		return nil
	}

	var out []Interval

	current := q.Start
	i := 0
	for current < q.End {
		// Skip segments the cursor has already passed, and zero length
		// segments, which cover nothing.
		if i < len(m.segments) && (m.segments[i].SourceEnd() <= current || m.segments[i].Length == 0) {
			i++
			continue
		}

		// No segment ahead of the cursor intersects the query, so the
		// remainder of the interval is unmapped.
		if i == len(m.segments) || m.segments[i].SourceStart >= q.End {
			out = append(out, Interval{Start: current, End: q.End})
			break
		}

		s := m.segments[i]
		if current < s.SourceStart {
			// The gap before the segment is unmapped, emit it unchanged.
			out = append(out, Interval{Start: current, End: s.SourceStart})
			current = s.SourceStart
		}

		// The cursor is inside the segment. Take what remains of the
		// segment, bounded by what remains of the query.
		covered := min(s.Length-(current-s.SourceStart), q.End-current)
		start := s.Translate(current)
		out = append(out, Interval{Start: start, End: SaturatingAdd(start, covered)})
		current = SaturatingAdd(current, covered)
	}

	return out
}
