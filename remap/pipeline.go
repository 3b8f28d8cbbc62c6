package remap

// Pipeline is an ordered sequence of stages. The order is fixed at
// construction and defines the direction of translation: the output of
// stage i is the input of stage i+1.
//
// A pipeline is immutable and holds no per query state, so it is safe for
// any number of goroutines to translate through the same pipeline
// concurrently.
type Pipeline struct {
	stages []Stage
}

// NewPipeline builds a pipeline from stages, in the order given. The slice
// is copied and not retained.
func NewPipeline(stages []Stage) Pipeline {
	ordered := make([]Stage, len(stages))
	copy(ordered, stages)
	return Pipeline{stages: ordered}
}

// Stages returns the pipeline's stages in translation order. The returned
// slice is the pipeline's own storage and must not be modified.
func (p Pipeline) Stages() []Stage {
	return p.stages
}

// TranslateValue folds a single value through every stage in order.
func (p Pipeline) TranslateValue(v uint64) uint64 {
	for _, m := range p.stages {
		v = m.TranslateValue(v)
	}
	return v
}

// TranslateRanges folds a working set of intervals through every stage in
// order. Each stage maps every interval of the working set through
// TranslateRange and the concatenated results become the working set for
// the next stage.
//
// The working set grows only where intervals cross segment boundaries, so
// its size is bounded by the total segment count across all stages plus one
// per input interval, never by the magnitude of the interval values. Output
// order within a stage is discovery order; callers must not assume the
// final set is sorted.
func (p Pipeline) TranslateRanges(intervals []Interval) []Interval {
	working := make([]Interval, len(intervals))
	copy(working, intervals)
	for _, m := range p.stages {
		var next []Interval
		for _, iv := range working {
			next = append(next, m.TranslateRange(iv)...)
		}
		working = next
	}
	return working
}
