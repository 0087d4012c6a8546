// Package day02 solves "Red-Nosed Reports": counting reactor reports whose
// levels change gradually in one direction, optionally tolerating one bad
// level.
package day02

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/aoc2024/input"
	"github.com/katalvlaran/aoc2024/ints"
	"github.com/katalvlaran/aoc2024/puzzle"
)

// ErrMalformedLevel is returned for a report with a non-integer level.
var ErrMalformedLevel = errors.New("day02: malformed level")

// Puzzle registers the day.
var Puzzle = puzzle.Puzzle{Day: 2, Title: "Red-Nosed Reports", Solve: Solve}

const (
	minStep = 1
	maxStep = 3
)

// Report is one line of levels.
type Report []int

// Parse reads one report per non-blank line.
func Parse(r io.Reader) ([]Report, error) {
	lines, err := input.NonEmptyLines(r)
	if err != nil {
		return nil, err
	}
	out := make([]Report, 0, len(lines))
	for _, line := range lines {
		levels, err := ints.Fields[int](line.Text, "")
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLevel, line.No, err)
		}
		out = append(out, levels)
	}
	return out, nil
}

// Safe reports whether r has at least two levels, moves strictly in the
// direction set by its first pair, and never steps by more than three.
func (r Report) Safe() bool {
	return r.firstUnsafe() < 0
}

// SafeDampened reports whether r is safe, or becomes safe once a single
// level is removed.
func (r Report) SafeDampened() bool {
	i := r.firstUnsafe()
	if i < 0 {
		return true
	}
	if len(r) < 2 {
		return false
	}
	// The violation sits between i and i+1, or the direction chosen by
	// the first pair was wrong, so only these removals can help.
	for _, skip := range []int{i, i + 1, 0} {
		if skip < len(r) && r.without(skip).Safe() {
			return true
		}
	}
	return false
}

// firstUnsafe returns the index i of the first pair (i, i+1) that breaks
// the rules, or -1 when r is safe. Reports with fewer than two levels
// return 0.
func (r Report) firstUnsafe() int {
	if len(r) < 2 {
		return 0
	}
	increasing := r[1] > r[0]
	for i := 0; i+1 < len(r); i++ {
		d := r[i+1] - r[i]
		if !increasing {
			d = -d
		}
		if d < minStep || d > maxStep {
			return i
		}
	}
	return -1
}

func (r Report) without(i int) Report {
	out := make(Report, 0, len(r)-1)
	out = append(out, r[:i]...)
	return append(out, r[i+1:]...)
}

// Part1 counts safe reports.
func Part1(reports []Report) int64 {
	var n int64
	for _, r := range reports {
		if r.Safe() {
			n++
		}
	}
	return n
}

// Part2 counts reports that are safe with the dampener.
func Part2(reports []Report) int64 {
	var n int64
	for _, r := range reports {
		if r.SafeDampened() {
			n++
		}
	}
	return n
}

// Solve parses r and computes both parts.
func Solve(_ context.Context, r io.Reader, _ ...puzzle.Option) (puzzle.Answer, error) {
	reports, err := Parse(r)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Day: 2, Part1: Part1(reports), Part2: Part2(reports)}, nil
}
