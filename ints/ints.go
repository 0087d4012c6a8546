// Package ints holds small generic integer helpers shared by the puzzle
// solutions: absolute differences, gcd, decimal digit arithmetic and
// parsing of separated integer lists.
package ints

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	// ErrNotInteger is returned when a field does not parse.
	ErrNotInteger = errors.New("ints: not an integer")
	// ErrNegative is returned by the Natural parsers for a signed field.
	ErrNegative = errors.New("ints: not a non-negative integer")
)

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AbsDiff returns |a-b| without overflowing for unsigned types.
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// GCD returns the greatest common divisor of |a| and |b|; GCD(0, 0) == 0.
func GCD[T constraints.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Digits returns the number of decimal digits in x; Digits(0) == 1.
func Digits[T constraints.Unsigned](x T) int {
	n := 1
	for x >= 10 {
		x /= 10
		n++
	}
	return n
}

// Pow10 returns 10**n and whether it fits in uint64.
func Pow10(n int) (uint64, bool) {
	p := uint64(1)
	for range n {
		if p > ^uint64(0)/10 {
			return 0, false
		}
		p *= 10
	}
	return p, true
}

// Fields splits s around sep and parses each piece as a base-10 integer.
// With sep == "" the string is split around runs of whitespace.
func Fields[T constraints.Integer](s, sep string) ([]T, error) {
	return fields(s, sep, Parse[T])
}

// NaturalFields is Fields restricted to non-negative values.
func NaturalFields[T constraints.Integer](s, sep string) ([]T, error) {
	return fields(s, sep, ParseNatural[T])
}

func fields[T constraints.Integer](s, sep string, parse func(string) (T, error)) ([]T, error) {
	var parts []string
	if sep == "" {
		parts = strings.Fields(s)
	} else {
		parts = strings.Split(s, sep)
	}
	out := make([]T, 0, len(parts))
	for _, p := range parts {
		v, err := parse(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Parse converts a single base-10 field to T, rejecting values that do
// not fit. Only a '-' sign is accepted, and only for signed T.
func Parse[T constraints.Integer](s string) (T, error) {
	var zero T
	if strings.HasPrefix(s, "+") {
		return zero, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}
	if zero-1 > 0 { // unsigned
		v, err := strconv.ParseUint(s, 10, bitSize[T]())
		if err != nil {
			return zero, fmt.Errorf("%w: %q", ErrNotInteger, s)
		}
		return T(v), nil
	}
	v, err := strconv.ParseInt(s, 10, bitSize[T]())
	if err != nil {
		return zero, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}
	return T(v), nil
}

// ParseNatural is Parse for digits only: any sign is rejected with
// ErrNegative, so "-0" fails too.
func ParseNatural[T constraints.Integer](s string) (T, error) {
	if strings.HasPrefix(s, "-") {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrNegative, s)
	}
	return Parse[T](s)
}

func bitSize[T constraints.Integer]() int {
	var x T
	switch any(x).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	}
	return 64
}
