// Package gridgraph provides utilities to treat a 2D grid of byte cells
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-checked lookup and fixed-length ray reads
//   - Locating and grouping cells by symbol
package gridgraph

import (
	"iter"
	"slices"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(rows [][]byte, opts ...GridOption) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]byte, h)
	for y := range h {
		cells[y] = make([]byte, w)
		copy(cells[y], rows[y])
	}

	g := &Grid{Width: w, Height: h, Conn: Conn4, cells: cells}
	for _, opt := range opts {
		opt(g)
	}
	g.neighborOffsets = g.Conn.Offsets()

	return g, nil
}

// FromLines builds a Grid from text lines, one row per line.
func FromLines(lines []string, opts ...GridOption) (*Grid, error) {
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		rows[i] = []byte(line)
	}
	return NewGrid(rows, opts...)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Point) byte {
	return g.cells[p.Y][p.X]
}

// Lookup returns the cell at p and whether p is in bounds.
func (g *Grid) Lookup(p Point) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() []Point {
	return g.neighborOffsets
}

// Matches reports whether word can be read starting at p and stepping by
// delta, with every cell in bounds.
func (g *Grid) Matches(p, delta Point, word string) bool {
	for i := 0; i < len(word); i++ {
		b, ok := g.Lookup(p.Add(delta.Scale(i)))
		if !ok || b != word[i] {
			return false
		}
	}
	return true
}

// All yields every cell in row-major order.
func (g *Grid) All() iter.Seq2[Point, byte] {
	return func(yield func(Point, byte) bool) {
		for y := range g.Height {
			for x := range g.Width {
				if !yield(Point{x, y}, g.cells[y][x]) {
					return
				}
			}
		}
	}
}

// Find returns the first cell (row-major) holding b.
func (g *Grid) Find(b byte) (Point, bool) {
	for p, c := range g.All() {
		if c == b {
			return p, true
		}
	}
	return Point{}, false
}

// FindAll returns every cell for which match returns true, row-major.
func (g *Grid) FindAll(match func(byte) bool) []Point {
	var out []Point
	for p, c := range g.All() {
		if match(c) {
			out = append(out, p)
		}
	}
	return out
}

// Symbols groups cell positions by their byte, skipping any byte in skip.
// Positions within a group are in row-major order.
func (g *Grid) Symbols(skip ...byte) map[byte][]Point {
	out := make(map[byte][]Point)
	for p, c := range g.All() {
		if slices.Contains(skip, c) {
			continue
		}
		out[c] = append(out[c], p)
	}
	return out
}

// WithCell returns a copy of g with the cell at p replaced by b.
// p must be in bounds.
func (g *Grid) WithCell(p Point, b byte) *Grid {
	clone := &Grid{
		Width:           g.Width,
		Height:          g.Height,
		Conn:            g.Conn,
		cells:           make([][]byte, g.Height),
		neighborOffsets: g.neighborOffsets,
	}
	for y, row := range g.cells {
		clone.cells[y] = append([]byte(nil), row...)
	}
	clone.cells[p.Y][p.X] = b
	return clone
}

// Index maps p to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row‑major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{idx % g.Width, idx / g.Width}
}

// Size returns Width×Height.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Size() + g.Height)
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}
