// Package day08 solves "Resonant Collinearity": counting antinodes created
// by pairs of same-frequency antennas on a city map.
package day08

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/input"
	"github.com/katalvlaran/aoc2024/ints"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const empty = '.'

// ErrInvalidFrequency is returned for a map character that is neither
// '.' nor a letter or digit.
var ErrInvalidFrequency = errors.New("day08: invalid frequency")

// Puzzle registers the day.
var Puzzle = puzzle.Puzzle{Day: 8, Title: "Resonant Collinearity", Solve: Solve}

// City is the map with antennas grouped by frequency.
type City struct {
	Grid     *gridgraph.Grid
	Antennas map[byte][]gridgraph.Point
}

// Parse reads the map.
func Parse(r io.Reader) (*City, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	g, err := gridgraph.FromLines(lines)
	if err != nil {
		return nil, err
	}
	antennas := g.Symbols(empty)
	for freq, ps := range antennas {
		if !isFrequency(freq) {
			return nil, fmt.Errorf("%w: %q at %v", ErrInvalidFrequency, freq, ps[0])
		}
	}
	return &City{Grid: g, Antennas: antennas}, nil
}

func isFrequency(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

// Antinodes returns the distinct antinode positions in row-major order.
// With harmonics, every in-bounds point on the line through a pair counts;
// otherwise only the two points twice as far from one antenna as from the
// other, beyond each end.
func (c *City) Antinodes(harmonics bool) []gridgraph.Point {
	seen := make(map[gridgraph.Point]struct{})
	add := func(p gridgraph.Point) { seen[p] = struct{}{} }
	for _, ps := range c.Antennas {
		for i, a := range ps {
			for _, b := range ps[i+1:] {
				if harmonics {
					c.line(a, b, add)
				} else {
					c.pair(a, b, add)
				}
			}
		}
	}
	out := make([]gridgraph.Point, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.SortFunc(out, func(p, q gridgraph.Point) int {
		return c.Grid.Index(p) - c.Grid.Index(q)
	})
	return out
}

func (c *City) pair(a, b gridgraph.Point, add func(gridgraph.Point)) {
	d := a.Sub(b)
	for _, p := range []gridgraph.Point{a.Add(d), b.Sub(d)} {
		if c.Grid.InBounds(p) {
			add(p)
		}
	}
}

// line walks from a in both directions in the smallest lattice step along
// a→b.
func (c *City) line(a, b gridgraph.Point, add func(gridgraph.Point)) {
	d := b.Sub(a)
	k := ints.GCD(d.X, d.Y)
	step := gridgraph.Point{X: d.X / k, Y: d.Y / k}
	for p := a; c.Grid.InBounds(p); p = p.Add(step) {
		add(p)
	}
	for p := a.Sub(step); c.Grid.InBounds(p); p = p.Sub(step) {
		add(p)
	}
}

// Part1 counts antinodes from antenna pairs.
func Part1(c *City) int64 {
	return int64(len(c.Antinodes(false)))
}

// Part2 counts antinodes including resonant harmonics.
func Part2(c *City) int64 {
	return int64(len(c.Antinodes(true)))
}

// Solve parses r and computes both parts.
func Solve(_ context.Context, r io.Reader, _ ...puzzle.Option) (puzzle.Answer, error) {
	c, err := Parse(r)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Day: 8, Part1: Part1(c), Part2: Part2(c)}, nil
}
