package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2024/config"
	"github.com/katalvlaran/aoc2024/day01"
	"github.com/katalvlaran/aoc2024/day02"
	"github.com/katalvlaran/aoc2024/day03"
	"github.com/katalvlaran/aoc2024/day04"
	"github.com/katalvlaran/aoc2024/day05"
	"github.com/katalvlaran/aoc2024/day06"
	"github.com/katalvlaran/aoc2024/day07"
	"github.com/katalvlaran/aoc2024/day08"
	"github.com/katalvlaran/aoc2024/logging"
	"github.com/katalvlaran/aoc2024/puzzle"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	// flags
	configPath string
	envFile    string
	inputPath  string
	workers    int
	verbose    bool

	cfg      *config.Config
	logger   *zap.Logger
	registry *puzzle.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "aoc2024",
		Short:         "Advent of Code 2024 solutions, days 1-8",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "aoc2024.yaml", "Config file (optional)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Dotenv file with AOC_* variables (optional)")
	root.PersistentFlags().IntVarP(&a.workers, "workers", "w", 0, "Worker goroutines for parallel solvers (0 = one per CPU)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newRunCmd(a), newListCmd(a))
	return root
}

// setup loads configuration, applies flag overrides and builds the logger
// and registry.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnvFile(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = a.workers
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	a.logger, err = logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}

	a.registry, err = puzzle.NewRegistry(
		day01.Puzzle,
		day02.Puzzle,
		day03.Puzzle,
		day04.Puzzle,
		day05.Puzzle,
		day06.Puzzle,
		day07.Puzzle,
		day08.Puzzle,
	)
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}
	return nil
}
