// Package day03 solves "Mull It Over": scanning corrupted memory for
// mul(X,Y) instructions, optionally gated by do() and don't().
package day03

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/katalvlaran/aoc2024/puzzle"
)

// Puzzle registers the day.
var Puzzle = puzzle.Puzzle{Day: 3, Title: "Mull It Over", Solve: Solve}

// Kind is the instruction type.
type Kind uint8

const (
	Mul Kind = iota
	Do
	Dont
)

func (k Kind) String() string {
	switch k {
	case Mul:
		return "mul"
	case Do:
		return "do"
	case Dont:
		return "don't"
	}
	return "invalid"
}

// Instruction is one recognised instruction. X and Y are set for Mul only.
type Instruction struct {
	Kind Kind
	X, Y int64
}

// Operands have one to three digits and no leading zero.
var instructionRE = regexp.MustCompile(`mul\(([1-9]\d{0,2}),([1-9]\d{0,2})\)|do\(\)|don't\(\)`)

// Instructions returns the instructions found in text, in order.
func Instructions(text string) []Instruction {
	var out []Instruction
	for _, m := range instructionRE.FindAllStringSubmatch(text, -1) {
		switch m[0] {
		case "do()":
			out = append(out, Instruction{Kind: Do})
		case "don't()":
			out = append(out, Instruction{Kind: Dont})
		default:
			// The pattern bounds both operands to three digits.
			x, _ := strconv.ParseInt(m[1], 10, 64)
			y, _ := strconv.ParseInt(m[2], 10, 64)
			out = append(out, Instruction{Kind: Mul, X: x, Y: y})
		}
	}
	return out
}

// Part1 sums every mul product.
func Part1(prog []Instruction) int64 {
	var sum int64
	for _, in := range prog {
		if in.Kind == Mul {
			sum += in.X * in.Y
		}
	}
	return sum
}

// Part2 sums mul products while enabled; don't() disables, do() enables.
// Execution starts enabled.
func Part2(prog []Instruction) int64 {
	var sum int64
	enabled := true
	for _, in := range prog {
		switch in.Kind {
		case Do:
			enabled = true
		case Dont:
			enabled = false
		case Mul:
			if enabled {
				sum += in.X * in.Y
			}
		}
	}
	return sum
}

// Solve reads all of r as one instruction stream.
func Solve(_ context.Context, r io.Reader, _ ...puzzle.Option) (puzzle.Answer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("day03: read: %w", err)
	}
	prog := Instructions(string(data))
	return puzzle.Answer{Day: 3, Part1: Part1(prog), Part2: Part2(prog)}, nil
}
