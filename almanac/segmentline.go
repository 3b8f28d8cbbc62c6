package almanac

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alightgoesout/advent2023/remap"
)

// ParseSegment parses one stage definition line: exactly three whitespace
// separated non-negative integers, in the order
//
//	destination_start source_start length
//
// A line with the wrong field count, a non-numeric field, or a zero length
// is a dataset fault and rejects with a distinguishable error.
func ParseSegment(line string) (remap.Segment, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return remap.Segment{}, fmt.Errorf(
			"%w: want 3 fields, got %d in %q", ErrMalformedSegment, len(fields), line)
	}

	var values [3]uint64
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return remap.Segment{}, fmt.Errorf(
				"%w: %q is not a non-negative integer", ErrMalformedSegment, field)
		}
		values[i] = v
	}

	if values[2] == 0 {
		return remap.Segment{}, fmt.Errorf("%w: %q", ErrZeroLengthSegment, line)
	}

	return remap.Segment{
		DestinationStart: values[0],
		SourceStart:      values[1],
		Length:           values[2],
	}, nil
}

// ParseStage builds one translation stage from definition lines. Blank
// lines are ignored; any other malformed line rejects the whole stage.
func ParseStage(lines []string) (remap.Stage, error) {
	var segments []remap.Segment
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := ParseSegment(line)
		if err != nil {
			return remap.Stage{}, err
		}
		segments = append(segments, s)
	}
	return remap.NewStage(segments), nil
}
