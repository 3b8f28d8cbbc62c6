package almanac

import (
	"fmt"
	"math"

	"github.com/alightgoesout/advent2023/remap"
)

// LowestLocation translates every seed through the pipeline one value at a
// time and returns the minimum output. This is part one: the seed list is a
// flat list of scalar queries.
func (a Almanac) LowestLocation() (uint64, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}
	lowest := uint64(math.MaxUint64)
	for _, seed := range a.Seeds {
		if v := a.Pipeline.TranslateValue(seed); v < lowest {
			lowest = v
		}
	}
	return lowest, nil
}

// SeedRanges reinterprets the seed list as consecutive (start, length)
// pairs, each describing the interval [start, start+length).
func (a Almanac) SeedRanges() ([]remap.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeedCount, len(a.Seeds))
	}
	ranges := make([]remap.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		start := a.Seeds[i]
		ranges = append(ranges, remap.Interval{
			Start: start,
			End:   remap.SaturatingAdd(start, a.Seeds[i+1]),
		})
	}
	return ranges, nil
}

// LowestLocationOfRanges translates the seed ranges through the pipeline in
// range mode and returns the minimum start among the resulting non-empty
// intervals. This is part two: the same seed list read as (start, length)
// pairs, translated without enumerating a single value.
func (a Almanac) LowestLocationOfRanges() (uint64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}

	lowest := uint64(math.MaxUint64)
	found := false
	for _, r := range a.Pipeline.TranslateRanges(ranges) {
		if r.IsEmpty() {
			continue
		}
		found = true
		if r.Start < lowest {
			lowest = r.Start
		}
	}
	if !found {
		return 0, ErrNoSeedRanges
	}
	return lowest, nil
}
