package remap

// Interval is a half-open range [Start, End) of identifiers. It is both the
// query type for range mode translation and the unit of its output.
//
// Intervals with Start >= End are legal everywhere, cover no values and
// contribute nothing to any translation.
type Interval struct {
	Start uint64
	End   uint64
}

// Length returns the number of values the interval covers.
func (iv Interval) Length() uint64 {
	if iv.Start >= iv.End {
		return 0
	}
	return iv.End - iv.Start
}

// IsEmpty returns true if the interval covers no values.
func (iv Interval) IsEmpty() bool {
	return iv.Start >= iv.End
}

// Contains returns true if v lies within the interval.
func (iv Interval) Contains(v uint64) bool {
	return v >= iv.Start && v < iv.End
}
