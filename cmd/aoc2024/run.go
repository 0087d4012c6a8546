package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/puzzle"
)

var errInputNeedsOneDay = errors.New("--input requires exactly one day")

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days, or every day when none are given",
		Example: `  aoc2024 run
  aoc2024 run 6 --input data/day06.txt -v
  aoc2024 run 1 2 3 --workers 4`,
		RunE: a.run,
	}
	cmd.Flags().StringVarP(&a.inputPath, "input", "i", "", "Input file (only with a single day)")
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	days, err := a.selectDays(args)
	if err != nil {
		return err
	}
	if a.inputPath != "" && len(days) != 1 {
		return errInputNeedsOneDay
	}

	out := cmd.OutOrStdout()
	for _, p := range days {
		path := a.inputPath
		if path == "" {
			path = a.cfg.InputPath(p.Day)
		}
		ans, err := puzzle.Run(cmd.Context(), p, path,
			puzzle.WithLogger(a.logger),
			puzzle.WithWorkers(a.cfg.Workers),
		)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Day %d: %s\n  Part 1: %d\n  Part 2: %d\n", p.Day, p.Title, ans.Part1, ans.Part2)
	}
	return nil
}

func (a *app) selectDays(args []string) ([]puzzle.Puzzle, error) {
	if len(args) == 0 {
		return a.registry.All(), nil
	}
	days := make([]puzzle.Puzzle, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		p, err := a.registry.Lookup(n)
		if err != nil {
			return nil, err
		}
		days = append(days, p)
	}
	return days, nil
}
