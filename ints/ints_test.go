package ints_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/ints"
)

func TestAbsAndAbsDiff(t *testing.T) {
	assert.Equal(t, 3, ints.Abs(-3))
	assert.Equal(t, int64(7), ints.Abs(int64(7)))
	assert.Equal(t, uint32(2), ints.AbsDiff(uint32(3), uint32(5)))
	assert.Equal(t, uint32(2), ints.AbsDiff(uint32(5), uint32(3)))
	assert.Equal(t, 9, ints.AbsDiff(-4, 5))
}

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{12, 18, 6},
		{-12, 18, 6},
		{7, 0, 7},
		{0, -5, 5},
		{0, 0, 0},
		{17, 5, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ints.GCD(tc.a, tc.b), "GCD(%d,%d)", tc.a, tc.b)
	}
}

func TestDigitsAndPow10(t *testing.T) {
	assert.Equal(t, 1, ints.Digits(uint64(0)))
	assert.Equal(t, 1, ints.Digits(uint64(9)))
	assert.Equal(t, 2, ints.Digits(uint64(10)))
	assert.Equal(t, 20, ints.Digits(uint64(math.MaxUint64)))

	p, ok := ints.Pow10(3)
	assert.True(t, ok)
	assert.Equal(t, uint64(1000), p)
	p, ok = ints.Pow10(19)
	assert.True(t, ok)
	assert.Equal(t, uint64(10_000_000_000_000_000_000), p)
	_, ok = ints.Pow10(20)
	assert.False(t, ok)
}

func TestFields(t *testing.T) {
	got, err := ints.Fields[int]("3   4\t-2", "")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, -2}, got)

	pages, err := ints.Fields[int]("75,47, 61", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{75, 47, 61}, pages)

	_, err = ints.Fields[int]("1,x", ",")
	assert.ErrorIs(t, err, ints.ErrNotInteger)

	_, err = ints.Fields[uint8]("256", "")
	assert.ErrorIs(t, err, ints.ErrNotInteger)

	_, err = ints.Fields[uint64]("-1", "")
	assert.ErrorIs(t, err, ints.ErrNotInteger)

	_, err = ints.Fields[int]("+3", "")
	assert.ErrorIs(t, err, ints.ErrNotInteger)

	empty, err := ints.Fields[int]("   ", "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNaturalFields(t *testing.T) {
	got, err := ints.NaturalFields[int64]("3   4", "")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, got)

	for _, in := range []string{"-1 2", "1 -0", "+1 2", "1 x"} {
		_, err := ints.NaturalFields[int64](in, "")
		assert.Error(t, err, in)
	}
	_, err = ints.NaturalFields[int]("1,-2", ",")
	assert.ErrorIs(t, err, ints.ErrNegative)

	v, err := ints.ParseNatural[int]("75")
	require.NoError(t, err)
	assert.Equal(t, 75, v)
	_, err = ints.ParseNatural[int]("-75")
	assert.ErrorIs(t, err, ints.ErrNegative)
}
