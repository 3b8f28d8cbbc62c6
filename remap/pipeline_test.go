package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleStage() Stage {
	return NewStage([]Segment{
		{SourceStart: 98, DestinationStart: 50, Length: 2},
		{SourceStart: 50, DestinationStart: 52, Length: 48},
	})
}

func TestPipelineTranslateValueFoldsStagesInOrder(t *testing.T) {
	p := NewPipeline([]Stage{exampleStage(), exampleStage()})

	// The fold must equal applying each stage's scalar translation in turn.
	for _, v := range []uint64{0, 49, 50, 79, 97, 98, 99, 100, 1 << 40} {
		want := v
		for _, m := range p.Stages() {
			want = m.TranslateValue(want)
		}
		assert.Equal(t, want, p.TranslateValue(v), "value %d", v)
	}

	// 79 -> 81 -> 83 through two copies of the example stage.
	assert.Equal(t, uint64(83), p.TranslateValue(79))
}

func TestPipelineScalarAndRangeModeAgree(t *testing.T) {
	// Feeding a single value interval through range mode must land on the
	// same result as the scalar fold.
	p := NewPipeline([]Stage{exampleStage(), exampleStage()})

	got := p.TranslateRanges([]Interval{{Start: 79, End: 80}})
	require.Len(t, got, 1)
	assert.Equal(t, p.TranslateValue(79), got[0].Start)
	assert.Equal(t, uint64(1), got[0].Length())
}

func TestPipelineTranslateRangesConcatenatesWorkingSet(t *testing.T) {
	p := NewPipeline([]Stage{exampleStage()})

	got := p.TranslateRanges([]Interval{
		{Start: 40, End: 60},
		{Start: 96, End: 100},
	})

	want := []Interval{
		// [40,60) splits at 50: identity below, translated above.
		{Start: 40, End: 50},
		{Start: 52, End: 62},
		// [96,100) splits at 98: tail of the low segment, whole high segment.
		{Start: 98, End: 100},
		{Start: 50, End: 52},
	}
	assert.Equal(t, want, got)

	var total uint64
	for _, r := range got {
		total += r.Length()
	}
	assert.Equal(t, uint64(20+4), total)
}

func TestPipelineEmpty(t *testing.T) {
	p := NewPipeline(nil)

	assert.Equal(t, uint64(42), p.TranslateValue(42))
	assert.Equal(t, []Interval{{Start: 40, End: 60}}, p.TranslateRanges([]Interval{{Start: 40, End: 60}}))
}
