package day06_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/aoc2024/day06"
	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func parse(t *testing.T, in string) *day06.Lab {
	t.Helper()
	l, err := day06.Parse(strings.NewReader(in))
	require.NoError(t, err)
	return l
}

//---------------------------------------------------------------------
// Parsing
//---------------------------------------------------------------------

func TestParse(t *testing.T) {
	l := parse(t, sample)
	assert.Equal(t, gridgraph.Point{X: 4, Y: 6}, l.Start)
	assert.Equal(t, gridgraph.Up, l.Facing)
	assert.Equal(t, byte('.'), l.Grid.At(l.Start))

	l = parse(t, "..\n.<\n")
	assert.Equal(t, gridgraph.Left, l.Facing)
}

func TestParseErrors(t *testing.T) {
	_, err := day06.Parse(strings.NewReader("..\n.#\n"))
	assert.ErrorIs(t, err, day06.ErrNoGuard)

	_, err = day06.Parse(strings.NewReader("^.\n.v\n"))
	assert.ErrorIs(t, err, day06.ErrMultipleGuards)

	_, err = day06.Parse(strings.NewReader("^.\n.x\n"))
	var ice *day06.InvalidCharError
	require.True(t, errors.As(err, &ice))
	assert.Equal(t, byte('x'), ice.Char)
	assert.Equal(t, 1, ice.X)
	assert.Equal(t, 1, ice.Y)

	_, err = day06.Parse(strings.NewReader("^..\n..\n"))
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

//---------------------------------------------------------------------
// Simulation
//---------------------------------------------------------------------

func TestSolveSample(t *testing.T) {
	defer goleak.VerifyNone(t)

	ans, err := day06.Solve(context.Background(), strings.NewReader(sample), puzzle.WithWorkers(4))
	require.NoError(t, err)
	assert.EqualValues(t, 41, ans.Part1)
	assert.EqualValues(t, 6, ans.Part2)
}

func TestPart2IndependentOfWorkers(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := parse(t, sample)
	for _, w := range []int{1, 2, 8, 64} {
		n, err := day06.Part2(context.Background(), l, puzzle.WithWorkers(w))
		require.NoError(t, err)
		assert.EqualValues(t, 6, n, "workers=%d", w)
	}
}

func TestLoopsWith(t *testing.T) {
	l := parse(t, sample)

	loop, err := l.LoopsWith(gridgraph.Point{X: 3, Y: 6})
	require.NoError(t, err)
	assert.True(t, loop)

	loop, err = l.LoopsWith(gridgraph.Point{X: 0, Y: 0})
	require.NoError(t, err)
	assert.False(t, loop)

	_, err = l.LoopsWith(gridgraph.Point{X: 10, Y: 0})
	assert.ErrorIs(t, err, day06.ErrOutOfBounds)
}

func TestPatrolTurnsInPlace(t *testing.T) {
	// The guard turns right twice at the start and walks out downwards.
	l := parse(t, ".#.\n.^#\n...\n")
	assert.Equal(t, []gridgraph.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}, l.Patrol())
	assert.EqualValues(t, 2, day06.Part1(l))
}

func TestBoxedGuardCountsOffPathCells(t *testing.T) {
	// A guard walled in on all sides spins forever on its own cell, so an
	// obstruction in any of the four open corners leaves it trapped.
	l := parse(t, ".#.\n#^#\n.#.\n")
	assert.EqualValues(t, 1, day06.Part1(l))
	n, err := day06.Part2(context.Background(), l)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

// bruteForceLoops tries an obstruction on every open non-start cell.
func bruteForceLoops(t *testing.T, l *day06.Lab) int64 {
	t.Helper()
	var n int64
	for p, c := range l.Grid.All() {
		if c != '.' || p == l.Start {
			continue
		}
		loops, err := l.LoopsWith(p)
		require.NoError(t, err)
		if loops {
			n++
		}
	}
	return n
}

func TestPart2MatchesBruteForce(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{"sample", sample, 6},
		{"boxed", ".#.\n#^#\n.#.\n", 4},
		{"looping patrol", "..#......\n#........\n.##......\n#....#...\n....#>.#.\n#.#.###..\n", 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := parse(t, tt.in)
			got, err := day06.Part2(context.Background(), l, puzzle.WithWorkers(2))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, bruteForceLoops(t, l), got)
		})
	}
}

func TestPart2Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := day06.Part2(ctx, parse(t, sample))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPart2RejectsBadOptions(t *testing.T) {
	_, err := day06.Part2(context.Background(), parse(t, sample), puzzle.WithWorkers(-1))
	assert.ErrorIs(t, err, puzzle.ErrOptionViolation)
}
