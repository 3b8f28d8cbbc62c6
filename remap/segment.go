package remap

// Segment binds the contiguous source range [SourceStart, SourceStart+Length)
// to the destination range of the same length starting at DestinationStart.
// Every covered value moves by the same fixed offset.
//
// Segments are built once, when their stage is constructed, and are
// immutable thereafter. Length is expected to be greater than zero; a zero
// length segment covers nothing and the stage algorithms skip it harmlessly.
type Segment struct {
	SourceStart      uint64
	DestinationStart uint64
	Length           uint64
}

// SourceEnd returns the exclusive end of the source range. The addition
// saturates so a segment reaching the top of the identifier domain does not
// wrap.
func (s Segment) SourceEnd() uint64 {
	return SaturatingAdd(s.SourceStart, s.Length)
}

// Covers returns true if v lies within the segment's source range.
func (s Segment) Covers(v uint64) bool {
	return v >= s.SourceStart && v-s.SourceStart < s.Length
}

// Translate maps v into the segment's destination range, saturating if the
// destination range runs past the top of the identifier domain.
//
// The caller must ensure Covers(v) holds. In the interests of the hot path
// no check is made here and the result for an uncovered v is nonsense.
func (s Segment) Translate(v uint64) uint64 {
	return SaturatingAdd(s.DestinationStart, v-s.SourceStart)
}
