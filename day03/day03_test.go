package day03_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/day03"
)

const (
	sample1 = "xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))"
	sample2 = "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))"
)

func TestSamples(t *testing.T) {
	assert.EqualValues(t, 161, day03.Part1(day03.Instructions(sample1)))
	assert.EqualValues(t, 48, day03.Part2(day03.Instructions(sample2)))

	ans, err := day03.Solve(context.Background(), strings.NewReader(sample2))
	require.NoError(t, err)
	assert.EqualValues(t, 161, ans.Part1)
	assert.EqualValues(t, 48, ans.Part2)
}

func TestInstructions(t *testing.T) {
	got := day03.Instructions("mul(1,2)don't()mul(0,5)mul(07,1)mul(1234,1)mul( 1,2)do()mul(999,999)")
	want := []day03.Instruction{
		{Kind: day03.Mul, X: 1, Y: 2},
		{Kind: day03.Dont},
		{Kind: day03.Do},
		{Kind: day03.Mul, X: 999, Y: 999},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Instructions mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, day03.Instructions(""))
}

func TestStateCarriesAcrossLines(t *testing.T) {
	ans, err := day03.Solve(context.Background(), strings.NewReader("mul(2,3)don't()\nmul(4,5)\ndo()mul(1,1)\n"))
	require.NoError(t, err)
	assert.EqualValues(t, 27, ans.Part1)
	assert.EqualValues(t, 7, ans.Part2)
}
