// Package day07 solves "Bridge Repair": deciding which calibration
// equations can be made true by inserting operators between their operands.
//
// Operators are evaluated strictly left to right. The search is a
// depth-first backtracking over operator choices. Arithmetic saturates
// instead of wrapping, and a branch whose accumulator already exceeds the
// target is abandoned unless a zero operand is still to come, since every
// operator is non-decreasing on non-negative operands except × 0.
package day07

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"
	"strings"

	"github.com/katalvlaran/aoc2024/input"
	"github.com/katalvlaran/aoc2024/ints"
	"github.com/katalvlaran/aoc2024/puzzle"
)

// ErrInvalidEquation is returned for a line that is not "target: a b ...".
var ErrInvalidEquation = errors.New("day07: invalid equation")

// Puzzle registers the day.
var Puzzle = puzzle.Puzzle{Day: 7, Title: "Bridge Repair", Solve: Solve}

// Operator combines the accumulator with the next operand.
type Operator uint8

const (
	Add    Operator = iota // a + b
	Mul                    // a × b
	Concat                 // digits of a followed by digits of b
)

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Mul:
		return "*"
	case Concat:
		return "||"
	}
	return "?"
}

// Apply returns a op b and false if the exact result does not fit in
// uint64, in which case the value is math.MaxUint64.
func (op Operator) Apply(a, b uint64) (uint64, bool) {
	switch op {
	case Add:
		sum, carry := bits.Add64(a, b, 0)
		if carry != 0 {
			return math.MaxUint64, false
		}
		return sum, true
	case Mul:
		hi, lo := bits.Mul64(a, b)
		if hi != 0 {
			return math.MaxUint64, false
		}
		return lo, true
	case Concat:
		shift, ok := ints.Pow10(ints.Digits(b))
		if !ok {
			return math.MaxUint64, false
		}
		hi, lo := bits.Mul64(a, shift)
		if hi != 0 {
			return math.MaxUint64, false
		}
		return Add.Apply(lo, b)
	}
	return math.MaxUint64, false
}

var (
	basicOps    = []Operator{Add, Mul}
	extendedOps = []Operator{Add, Mul, Concat}
)

// Equation is one calibration line.
type Equation struct {
	Target   uint64
	Operands []uint64
}

// Parse reads one equation per non-blank line.
func Parse(r io.Reader) ([]Equation, error) {
	lines, err := input.NonEmptyLines(r)
	if err != nil {
		return nil, err
	}
	out := make([]Equation, 0, len(lines))
	for _, line := range lines {
		eq, err := parseEquation(line.Text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", err, line.No, line.Text)
		}
		out = append(out, eq)
	}
	return out, nil
}

func parseEquation(s string) (Equation, error) {
	head, tail, ok := strings.Cut(s, ":")
	if !ok {
		return Equation{}, fmt.Errorf("%w: missing ':'", ErrInvalidEquation)
	}
	target, err := ints.Parse[uint64](strings.TrimSpace(head))
	if err != nil {
		return Equation{}, fmt.Errorf("%w: %v", ErrInvalidEquation, err)
	}
	operands, err := ints.Fields[uint64](tail, "")
	if err != nil {
		return Equation{}, fmt.Errorf("%w: %v", ErrInvalidEquation, err)
	}
	if len(operands) == 0 {
		return Equation{}, fmt.Errorf("%w: no operands", ErrInvalidEquation)
	}
	return Equation{Target: target, Operands: operands}, nil
}

// Solvable reports whether some choice of ops between the operands
// evaluates to the target. A single operand must equal the target.
func (e Equation) Solvable(ops ...Operator) bool {
	if len(e.Operands) == 0 {
		return false
	}
	s := solver{target: e.Target, operands: e.Operands, ops: ops, lastZero: -1}
	for i, v := range e.Operands {
		if v == 0 {
			s.lastZero = i
		}
	}
	return s.search(1, e.Operands[0], false)
}

type solver struct {
	target   uint64
	operands []uint64
	ops      []Operator
	lastZero int // index of the last zero operand, -1 if none
}

// search tries every operator for operands[i:]. overflowed marks acc as
// saturated: its true value exceeds math.MaxUint64.
func (s *solver) search(i int, acc uint64, overflowed bool) bool {
	if i == len(s.operands) {
		return !overflowed && acc == s.target
	}
	if (overflowed || acc > s.target) && i > s.lastZero {
		return false
	}
	for _, op := range s.ops {
		next, ok := op.Apply(acc, s.operands[i])
		over := !ok
		if overflowed && !(op == Mul && s.operands[i] == 0) {
			over = true
		}
		if s.search(i+1, next, over) {
			return true
		}
	}
	return false
}

// Part1 sums the targets solvable with + and ×.
func Part1(eqs []Equation) int64 {
	return calibrate(eqs, basicOps)
}

// Part2 sums the targets solvable with +, × and ||.
func Part2(eqs []Equation) int64 {
	return calibrate(eqs, extendedOps)
}

func calibrate(eqs []Equation, ops []Operator) int64 {
	var total int64
	for _, e := range eqs {
		if e.Solvable(ops...) {
			total += int64(e.Target)
		}
	}
	return total
}

// Solve parses r and computes both parts.
func Solve(_ context.Context, r io.Reader, _ ...puzzle.Option) (puzzle.Answer, error) {
	eqs, err := Parse(r)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Day: 7, Part1: Part1(eqs), Part2: Part2(eqs)}, nil
}
