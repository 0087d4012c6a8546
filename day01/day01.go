// Package day01 solves "Historian Hysteria": two columns of location IDs
// compared by sorted distance and by similarity score.
package day01

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/aoc2024/input"
	"github.com/katalvlaran/aoc2024/ints"
	"github.com/katalvlaran/aoc2024/puzzle"
)

// ErrMalformedLine is returned for a line that is not two integers.
var ErrMalformedLine = errors.New("day01: malformed line")

// Puzzle registers the day.
var Puzzle = puzzle.Puzzle{Day: 1, Title: "Historian Hysteria", Solve: Solve}

// Lists holds the left and right columns in input order.
type Lists struct {
	Left  []int64
	Right []int64
}

// Parse reads "L R" lines of non-negative integers. Blank lines are
// skipped.
func Parse(r io.Reader) (Lists, error) {
	lines, err := input.NonEmptyLines(r)
	if err != nil {
		return Lists{}, err
	}
	var l Lists
	for _, line := range lines {
		pair, err := ints.NaturalFields[int64](line.Text, "")
		if err != nil || len(pair) != 2 {
			return Lists{}, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, line.No, line.Text)
		}
		l.Left = append(l.Left, pair[0])
		l.Right = append(l.Right, pair[1])
	}
	return l, nil
}

// Part1 pairs the smallest left with the smallest right and so on, and
// sums the distances. l is not modified.
func Part1(l Lists) int64 {
	left, right := slices.Sorted(slices.Values(l.Left)), slices.Sorted(slices.Values(l.Right))
	var total int64
	for i := range min(len(left), len(right)) {
		total += ints.AbsDiff(left[i], right[i])
	}
	return total
}

// Part2 sums each left value times its number of occurrences on the right.
func Part2(l Lists) int64 {
	counts := make(map[int64]int64, len(l.Right))
	for _, v := range l.Right {
		counts[v]++
	}
	var score int64
	for _, v := range l.Left {
		score += v * counts[v]
	}
	return score
}

// Solve parses r and computes both parts.
func Solve(_ context.Context, r io.Reader, _ ...puzzle.Option) (puzzle.Answer, error) {
	l, err := Parse(r)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Day: 1, Part1: Part1(l), Part2: Part2(l)}, nil
}
