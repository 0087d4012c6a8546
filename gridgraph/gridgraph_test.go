package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]byte
		err  error
	}{
		{"EmptyRows", [][]byte{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]byte{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]byte{[]byte("ab"), []byte("c")}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	rows := [][]byte{[]byte("ab"), []byte("cd")}
	g, err := gridgraph.NewGrid(rows)
	require.NoError(t, err)
	rows[0][0] = 'z'
	assert.Equal(t, byte('a'), g.At(gridgraph.Point{X: 0, Y: 0}))
}

// TestInBounds checks InBounds and Lookup on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.FromLines([]string{"abc", "def"})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)

	for _, p := range []gridgraph.Point{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []gridgraph.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
		_, ok := g.Lookup(p)
		assert.False(t, ok)
	}
	b, ok := g.Lookup(gridgraph.Point{X: 2, Y: 1})
	assert.True(t, ok)
	assert.Equal(t, byte('f'), b)
}

//----------------------------------------------------------------------------//
// Directions and offsets
//----------------------------------------------------------------------------//

// TestDirection_TurnRight walks the full clockwise cycle.
func TestDirection_TurnRight(t *testing.T) {
	d := gridgraph.Up
	var seen []string
	for range 4 {
		seen = append(seen, d.String())
		d = d.TurnRight()
	}
	assert.Equal(t, []string{"up", "right", "down", "left"}, seen)
	assert.Equal(t, gridgraph.Up, d)
	assert.Equal(t, gridgraph.Point{X: 4, Y: 5}, gridgraph.Left.Step(gridgraph.Point{X: 5, Y: 5}))
}

// TestParseDirection covers the four arrows and a miss.
func TestParseDirection(t *testing.T) {
	for glyph, want := range map[byte]gridgraph.Direction{
		'^': gridgraph.Up, '>': gridgraph.Right, 'v': gridgraph.Down, '<': gridgraph.Left,
	} {
		d, ok := gridgraph.ParseDirection(glyph)
		assert.True(t, ok)
		assert.Equal(t, want, d)
	}
	_, ok := gridgraph.ParseDirection('#')
	assert.False(t, ok)
}

// TestOffsets checks that Conn4 matches the Direction deltas in order.
func TestOffsets(t *testing.T) {
	four := gridgraph.Conn4.Offsets()
	require.Len(t, four, 4)
	for d := gridgraph.Up; d <= gridgraph.Left; d++ {
		assert.Equal(t, d.Delta(), four[d])
	}
	assert.Len(t, gridgraph.Conn8.Offsets(), 8)

	g, err := gridgraph.FromLines([]string{"ab"})
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Conn4, g.Conn)
	assert.Equal(t, four, g.NeighborOffsets())

	g, err = gridgraph.FromLines([]string{"ab"}, gridgraph.WithConn(gridgraph.Conn8))
	require.NoError(t, err)
	assert.Len(t, g.NeighborOffsets(), 8)
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

func TestMatches(t *testing.T) {
	g, err := gridgraph.FromLines([]string{
		"XMAS",
		"MM..",
		"A.A.",
		"S..S",
	}, gridgraph.WithConn(gridgraph.Conn8))
	require.NoError(t, err)

	origin := gridgraph.Point{}
	assert.True(t, g.Matches(origin, gridgraph.Point{X: 1, Y: 0}, "XMAS"))
	assert.True(t, g.Matches(origin, gridgraph.Point{X: 0, Y: 1}, "XMAS"))
	assert.True(t, g.Matches(origin, gridgraph.Point{X: 1, Y: 1}, "XMAS"))
	assert.False(t, g.Matches(origin, gridgraph.Point{X: -1, Y: 0}, "XMAS"))
	assert.False(t, g.Matches(gridgraph.Point{X: 2, Y: 0}, gridgraph.Point{X: 1, Y: 0}, "AS."))
}

func TestFindAndSymbols(t *testing.T) {
	g, err := gridgraph.FromLines([]string{
		"..a.",
		".^..",
		"a..B",
	})
	require.NoError(t, err)

	p, ok := g.Find('^')
	assert.True(t, ok)
	assert.Equal(t, gridgraph.Point{X: 1, Y: 1}, p)
	_, ok = g.Find('#')
	assert.False(t, ok)

	syms := g.Symbols('.', '^')
	assert.Equal(t, map[byte][]gridgraph.Point{
		'a': {{2, 0}, {0, 2}},
		'B': {{3, 2}},
	}, syms)

	lower := g.FindAll(func(b byte) bool { return b >= 'a' && b <= 'z' })
	assert.Equal(t, []gridgraph.Point{{2, 0}, {0, 2}}, lower)
}

func TestWithCellAndIndex(t *testing.T) {
	g, err := gridgraph.FromLines([]string{"..", ".."})
	require.NoError(t, err)

	p := gridgraph.Point{X: 1, Y: 1}
	h := g.WithCell(p, '#')
	assert.Equal(t, "..\n.#", h.String())
	assert.Equal(t, "..\n..", g.String())

	assert.Equal(t, 3, g.Index(p))
	assert.Equal(t, p, g.Coordinate(3))
	assert.Equal(t, 4, g.Size())
}
