// Package almanac loads the day 5 dataset: a seed list followed by a chain
// of piecewise range remapping tables, one per line-separated section. The
// core translation lives in the remap package; this package owns the trust
// boundary, so every malformed line rejects the whole dataset rather than
// building a partially valid pipeline.
package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alightgoesout/advent2023/remap"
)

const (
	seedsPrefix   = "seeds:"
	sectionSuffix = " map:"
)

// Almanac is a parsed dataset: the seed list and the pipeline built from
// the map sections in document order.
type Almanac struct {
	Seeds    []uint64
	Pipeline remap.Pipeline
}

// Parse reads a full almanac document:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Sections are separated by blank lines and chained in document order. The
// section names are decorative; the pipeline direction is the document
// order. A dataset without a seeds line, or with any malformed line, is
// rejected whole.
func Parse(r io.Reader) (Almanac, error) {
	var (
		seeds     []uint64
		seenSeeds bool
		stages    []remap.Stage
		section   []string
		inSection bool
	)

	flush := func() error {
		if !inSection {
			return nil
		}
		stage, err := ParseStage(section)
		if err != nil {
			return err
		}
		stages = append(stages, stage)
		section = section[:0]
		inSection = false
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			if err := flush(); err != nil {
				return Almanac{}, err
			}
		case strings.HasPrefix(line, seedsPrefix) && !inSection:
			var err error
			if seeds, err = parseSeeds(strings.TrimPrefix(line, seedsPrefix)); err != nil {
				return Almanac{}, err
			}
			seenSeeds = true
		case strings.HasSuffix(line, sectionSuffix):
			if err := flush(); err != nil {
				return Almanac{}, err
			}
			inSection = true
		case inSection:
			section = append(section, line)
		default:
			return Almanac{}, fmt.Errorf("%w: %q", ErrUnexpectedLine, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Almanac{}, err
	}
	if err := flush(); err != nil {
		return Almanac{}, err
	}

	if !seenSeeds {
		return Almanac{}, ErrNoSeeds
	}

	return Almanac{Seeds: seeds, Pipeline: remap.NewPipeline(stages)}, nil
}

func parseSeeds(rest string) ([]uint64, error) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no seed values", ErrMalformedSeeds)
	}
	seeds := make([]uint64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf(
				"%w: %q is not a non-negative integer", ErrMalformedSeeds, field)
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}
