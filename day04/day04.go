// Package day04 solves "Ceres Search": a word search for XMAS in every
// direction, and for MAS crosses.
package day04

import (
	"context"
	"io"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/input"
	"github.com/katalvlaran/aoc2024/puzzle"
)

// Puzzle registers the day.
var Puzzle = puzzle.Puzzle{Day: 4, Title: "Ceres Search", Solve: Solve}

const word = "XMAS"

// Parse reads the letter grid.
func Parse(r io.Reader) (*gridgraph.Grid, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	return gridgraph.FromLines(lines, gridgraph.WithConn(gridgraph.Conn8))
}

// Part1 counts XMAS read in any of the eight directions.
func Part1(g *gridgraph.Grid) int64 {
	var n int64
	for p, c := range g.All() {
		if c != word[0] {
			continue
		}
		for _, d := range g.NeighborOffsets() {
			if g.Matches(p, d, word) {
				n++
			}
		}
	}
	return n
}

// Part2 counts A cells whose two diagonals both read MAS, either way.
func Part2(g *gridgraph.Grid) int64 {
	var n int64
	for p, c := range g.All() {
		if c == 'A' && crossed(g, p) {
			n++
		}
	}
	return n
}

func crossed(g *gridgraph.Grid, p gridgraph.Point) bool {
	diagonals := [2]gridgraph.Point{{X: 1, Y: 1}, {X: 1, Y: -1}}
	for _, d := range diagonals {
		start := p.Sub(d)
		if !g.Matches(start, d, "MAS") && !g.Matches(start, d, "SAM") {
			return false
		}
	}
	return true
}

// Solve parses r and computes both parts.
func Solve(_ context.Context, r io.Reader, _ ...puzzle.Option) (puzzle.Answer, error) {
	g, err := Parse(r)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Day: 4, Part1: Part1(g), Part2: Part2(g)}, nil
}
