package remap

/*

# Piecewise range remapping

This package implements a multi stage translation pipeline over an unsigned
identifier space. Each stage is a table of disjoint contiguous source ranges,
each bound to a destination range of the same length at a fixed offset. A
value covered by a source range moves by that range's offset; a value covered
by no range maps to itself. Stages chain, so the output space of one stage is
the input space of the next.

Translating a single value is a scan of the stage's segments. The interesting
problem is range mode: the query intervals can be astronomically large, far
too large to enumerate value by value, yet the answer must be exact. The key
observation is that a contiguous input interval can only be cut where it
crosses a segment boundary. Sweeping the ordered segment list with a cursor
therefore produces the complete answer in time proportional to the number of
boundaries crossed, never to the magnitude of the interval:

  - spans of the query that fall between segments are emitted unchanged
  - spans covered by a segment are emitted shifted by that segment's offset

Total coverage is conserved. The output intervals of a stage re-expand to
exactly the multiset of per-value translations of the input interval, so
range mode and scalar mode can never disagree.

A pipeline folds one value, or a working set of intervals, through every
stage in order. The working set grows only at segment boundaries: after any
stage it holds at most one interval per input interval plus one per segment
boundary crossed. For realistic tables this is dozens of intervals for
queries spanning billions of values.

Everything here is immutable after construction and holds no per query
state, so a pipeline may be shared freely between goroutines.

Segment.Translate follows the low level api convention used across this
codebase: the burden of knowledge is on the caller. It does not re-check
that the value is covered, and its result for an uncovered value is
nonsense. Use Covers first, or stay on the Stage / Pipeline methods which
do this correctly.

*/
