package almanac

import "errors"

var (
	ErrMalformedSegment  = errors.New("almanac: malformed segment definition")
	ErrZeroLengthSegment = errors.New("almanac: segment length must be greater than zero")
	ErrMalformedSeeds    = errors.New("almanac: malformed seeds line")
	ErrUnexpectedLine    = errors.New("almanac: unexpected line outside any map section")
	ErrNoSeeds           = errors.New("almanac: dataset has no seeds")
	ErrOddSeedCount      = errors.New("almanac: seed ranges need an even number of seeds")
	ErrNoSeedRanges      = errors.New("almanac: dataset has no non-empty seed ranges")
)
