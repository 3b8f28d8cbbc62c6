package remap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentCovers(t *testing.T) {
	s := Segment{SourceStart: 50, DestinationStart: 200, Length: 10}

	type args struct {
		v uint64
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"value below the source range is not covered", args{49}, false},
		{"source start is covered", args{50}, true},
		{"value inside the source range is covered", args{55}, true},
		{"last value of the source range is covered", args{59}, true},
		{"source end is excluded", args{60}, false},
		{"value far above the source range is not covered", args{500}, false},
		{"zero is not covered", args{0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Covers(tt.args.v); got != tt.want {
				t.Errorf("Covers(%d) = %v, want %v", tt.args.v, got, tt.want)
			}
		})
	}
}

func TestSegmentCoversNearDomainTop(t *testing.T) {
	// A segment reaching the top of the domain must not wrap when deriving
	// its source end.
	s := Segment{SourceStart: math.MaxUint64 - 5, DestinationStart: 0, Length: 100}

	assert.Equal(t, uint64(math.MaxUint64), s.SourceEnd())
	assert.True(t, s.Covers(math.MaxUint64-1))
	assert.True(t, s.Covers(math.MaxUint64))
}

func TestSegmentTranslate(t *testing.T) {
	s := Segment{SourceStart: 50, DestinationStart: 200, Length: 10}

	assert.Equal(t, uint64(200), s.Translate(50))
	assert.Equal(t, uint64(205), s.Translate(55))
	assert.Equal(t, uint64(209), s.Translate(59))
}

func TestSegmentTranslateSaturates(t *testing.T) {
	// The destination range runs past the top of the domain; translation
	// clamps instead of wrapping.
	s := Segment{SourceStart: 0, DestinationStart: math.MaxUint64 - 2, Length: 10}

	assert.Equal(t, uint64(math.MaxUint64-1), s.Translate(1))
	assert.Equal(t, uint64(math.MaxUint64), s.Translate(2))
	assert.Equal(t, uint64(math.MaxUint64), s.Translate(9))
}

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, uint64(7), SaturatingAdd(3, 4))
	assert.Equal(t, uint64(math.MaxUint64), SaturatingAdd(math.MaxUint64, 0))
	assert.Equal(t, uint64(math.MaxUint64), SaturatingAdd(math.MaxUint64, 1))
	assert.Equal(t, uint64(math.MaxUint64), SaturatingAdd(math.MaxUint64/2+1, math.MaxUint64/2+1))
}
