// Package gridgraph defines core types and options for the gridgraph
// package.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Offsets returns the unit offsets for c, clockwise from north.
func (c Connectivity) Offsets() []Point {
	if c == Conn8 {
		return []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Point is a grid coordinate. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p multiplied by k.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// Direction is a heading on the grid, numbered clockwise from Up.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionDeltas = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// TurnRight rotates d by 90° clockwise.
func (d Direction) TurnRight() Direction { return (d + 1) % 4 }

// Delta returns the unit step for d.
func (d Direction) Delta() Point { return directionDeltas[d%4] }

// Step returns the point one cell ahead of p when heading d.
func (d Direction) Step(p Point) Point { return p.Add(d.Delta()) }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "invalid"
}

// ParseDirection maps the arrow glyphs ^ > v < to a Direction.
func ParseDirection(b byte) (Direction, bool) {
	switch b {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

// GridOption configures a Grid during construction.
type GridOption func(*Grid)

// WithConn selects the connectivity reported by NeighborOffsets.
// The default is Conn4.
func WithConn(c Connectivity) GridOption {
	return func(g *Grid) { g.Conn = c }
}

// Grid treats a 2D byte grid as a graph. It is immutable once built;
// WithCell returns a modified copy.
type Grid struct {
	Width, Height   int
	Conn            Connectivity
	cells           [][]byte
	neighborOffsets []Point
}
