package remap

import (
	"math"
	"math/bits"
)

// SaturatingAdd returns a + b, clamped to MaxUint64 rather than wrapping.
// Segments and intervals reaching the top of the identifier domain must
// clamp, wrap around would silently corrupt range boundaries.
func SaturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}
