package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alightgoesout/advent2023/almanac"
)

var day5Input string

// day5Cmd runs both parts of day 5: the minimum location reached by the
// seeds taken as scalars, then taken as (start, length) ranges translated
// in range mode.
var day5Cmd = &cobra.Command{
	Use:   "day5",
	Short: "If you give a seed a fertilizer: piecewise range remapping",
	RunE:  runDay5,
}

func init() {
	day5Cmd.Flags().StringVarP(&day5Input, "input", "i", "", "path to the almanac dataset")
	_ = day5Cmd.MarkFlagRequired("input")
}

func runDay5(cmd *cobra.Command, args []string) error {
	f, err := os.Open(day5Input)
	if err != nil {
		return err
	}
	defer f.Close()

	a, err := almanac.Parse(f)
	if err != nil {
		logger.Error("failed to load almanac", zap.String("input", day5Input), zap.Error(err))
		return err
	}
	logger.Debug("almanac loaded",
		zap.Int("seeds", len(a.Seeds)),
		zap.Int("stages", len(a.Pipeline.Stages())),
	)

	out := cmd.OutOrStdout()
	start := time.Now()

	lowest, err := a.LowestLocation()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "5:1 Minimal location: %d\n", lowest)
	part1 := time.Since(start)
	fmt.Fprintf(out, "Part 1 in %dms\n", part1.Milliseconds())

	lowestOfRanges, err := a.LowestLocationOfRanges()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "5:2 Minimal location with ranges: %d\n", lowestOfRanges)
	part2 := time.Since(start) - part1
	fmt.Fprintf(out, "Part 2 in %dms\n", part2.Milliseconds())

	fmt.Fprintf(out, "Done in %dms\n", time.Since(start).Milliseconds())
	return nil
}
