// Package aoc2024 collects solutions to the first eight days of Advent of
// Code 2024, plus the small grid, graph and input helpers they share.
//
// What is aoc2024?
//
//	Every day is its own package that reads one puzzle input, parses it
//	into a narrow structure and computes two integer answers:
//		• day01 – Historian Hysteria: sorted distance and similarity score
//		• day02 – Red-Nosed Reports: gradual reports, with a one-level dampener
//		• day03 – Mull It Over: mul/do/don't scanning of corrupted memory
//		• day04 – Ceres Search: XMAS word search and MAS crosses
//		• day05 – Print Queue: rule checking and topological repair
//		• day06 – Guard Gallivant: patrol simulation and loop-causing obstructions
//		• day07 – Bridge Repair: operator search with +, * and ||
//		• day08 – Resonant Collinearity: antinodes of antenna pairs and lines
//
// Shared building blocks:
//
//	core/      - generic thread-safe Graph[K] with induced subgraph views
//	dfs/       - TopologicalSort and FindCycle on core.Graph
//	gridgraph/ - immutable byte grid: bounds, directions, ray matching, symbol index
//	ints/      - generic integer helpers (AbsDiff, GCD, Digits, Fields)
//	input/     - line and section readers with line numbers
//	puzzle/    - Answer, Puzzle, Registry and the timed Run wrapper
//	config/    - YAML config with AOC_* environment overrides
//	logging/   - zap logger construction
//
// Running:
//
//	go run ./cmd/aoc2024 run          # every day, inputs from data/dayNN.txt
//	go run ./cmd/aoc2024 run 6 -v     # one day with debug logs
//	go run ./cmd/aoc2024 list
package aoc2024
