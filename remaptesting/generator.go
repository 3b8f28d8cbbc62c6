// Package remaptesting builds deterministic random data for the remap
// property tests: stages of mutually disjoint segments, pipelines of such
// stages, and query intervals.
package remaptesting

import (
	"math/rand"

	"github.com/alightgoesout/advent2023/remap"
)

// Generator produces stages, pipelines and query intervals over a bounded
// identifier space. We seed the RNG explicitly so that the generated data is
// the same from run to run; failures are reproducible from the seed alone.
//
// Bound is kept small by the property tests that expand intervals value by
// value to cross check range mode against scalar mode.
type Generator struct {
	rng   *rand.Rand
	bound uint64
}

// NewGenerator returns a generator over the identifier space [0, bound).
// bound must be large relative to the segment counts requested from Stage,
// a few thousand is plenty.
func NewGenerator(seed int64, bound uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), bound: bound}
}

// Bound returns the exclusive upper bound of the generated source space.
func (g *Generator) Bound() uint64 {
	return g.bound
}

// Stage generates a stage of between 1 and maxSegments mutually disjoint
// segments. The source space is divided into equal strides, one segment per
// stride, and each segment occupies at most the first three quarters of its
// stride so that identity gaps survive between segments.
func (g *Generator) Stage(maxSegments int) remap.Stage {
	n := 1 + g.rng.Intn(maxSegments)
	stride := g.bound / uint64(n)

	segments := make([]remap.Segment, 0, n)
	for i := 0; i < n; i++ {
		lo := uint64(i) * stride
		start := lo + g.uint64n(stride/4)
		length := 1 + g.uint64n(stride/2)
		segments = append(segments, remap.Segment{
			SourceStart:      start,
			DestinationStart: g.uint64n(g.bound),
			Length:           length,
		})
	}
	return remap.NewStage(segments)
}

// Pipeline generates a pipeline of between 1 and maxStages stages.
func (g *Generator) Pipeline(maxStages, maxSegments int) remap.Pipeline {
	n := 1 + g.rng.Intn(maxStages)
	stages := make([]remap.Stage, 0, n)
	for i := 0; i < n; i++ {
		stages = append(stages, g.Stage(maxSegments))
	}
	return remap.NewPipeline(stages)
}

// Interval generates a query interval with its start inside the source
// space. Ends may land anywhere up to a quarter of the space past the start,
// so queries regularly run past every segment.
func (g *Generator) Interval() remap.Interval {
	start := g.uint64n(g.bound)
	return remap.Interval{Start: start, End: start + g.uint64n(g.bound/4)}
}

// Value generates a scalar query inside the source space.
func (g *Generator) Value() uint64 {
	return g.uint64n(g.bound)
}

func (g *Generator) uint64n(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return g.rng.Uint64() % n
}
