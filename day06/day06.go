package day06

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/input"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const (
	open       = '.'
	obstructed = '#'
)

var (
	// ErrNoGuard is returned when the map holds no guard.
	ErrNoGuard = errors.New("day06: no guard found")
	// ErrMultipleGuards is returned when the map holds more than one guard.
	ErrMultipleGuards = errors.New("day06: more than one guard found")
	// ErrOutOfBounds is returned for a position outside the map.
	ErrOutOfBounds = errors.New("day06: position out of bounds")
)

// InvalidCharError reports an unexpected map character and its position.
type InvalidCharError struct {
	Char byte
	X, Y int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("day06: invalid character %q at (%d, %d)", e.Char, e.X, e.Y)
}

// Puzzle registers the day.
var Puzzle = puzzle.Puzzle{Day: 6, Title: "Guard Gallivant", Solve: Solve}

// Lab is the parsed map with the guard's starting state. The guard glyph
// is replaced by an open cell in Grid.
type Lab struct {
	Grid   *gridgraph.Grid
	Start  gridgraph.Point
	Facing gridgraph.Direction
}

// Parse reads the map and locates the guard.
func Parse(r io.Reader) (*Lab, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	g, err := gridgraph.FromLines(lines)
	if err != nil {
		return nil, err
	}

	var (
		lab   = &Lab{}
		found bool
	)
	for p, c := range g.All() {
		if c == open || c == obstructed {
			continue
		}
		d, ok := gridgraph.ParseDirection(c)
		if !ok {
			return nil, &InvalidCharError{Char: c, X: p.X, Y: p.Y}
		}
		if found {
			return nil, fmt.Errorf("%w: at %v and %v", ErrMultipleGuards, lab.Start, p)
		}
		lab.Start, lab.Facing, found = p, d, true
	}
	if !found {
		return nil, ErrNoGuard
	}
	lab.Grid = g.WithCell(lab.Start, open)
	return lab, nil
}

// walk simulates the patrol. If extra is non-nil that cell is treated as
// obstructed. visit, if non-nil, is called once per distinct cell in the
// order first reached. walk reports whether the guard ends up in a loop.
func (l *Lab) walk(extra *gridgraph.Point, visit func(gridgraph.Point)) bool {
	g := l.Grid
	seen := make([]uint8, g.Size())
	pos, dir := l.Start, l.Facing
	for {
		idx, bit := g.Index(pos), uint8(1)<<dir
		if seen[idx]&bit != 0 {
			return true
		}
		if seen[idx] == 0 && visit != nil {
			visit(pos)
		}
		seen[idx] |= bit

		next := dir.Step(pos)
		c, ok := g.Lookup(next)
		if !ok {
			return false
		}
		if c == obstructed || (extra != nil && next == *extra) {
			dir = dir.TurnRight()
			continue
		}
		pos = next
	}
}

// Patrol returns the distinct cells the guard visits before leaving, in
// the order first reached, starting with Start.
func (l *Lab) Patrol() []gridgraph.Point {
	path, _ := l.patrol()
	return path
}

// patrol is Patrol plus whether the unobstructed walk already loops.
func (l *Lab) patrol() ([]gridgraph.Point, bool) {
	var path []gridgraph.Point
	looped := l.walk(nil, func(p gridgraph.Point) { path = append(path, p) })
	return path, looped
}

// offPath counts the open cells, other than Start, that the patrol never
// enters.
func (l *Lab) offPath(path []gridgraph.Point) int64 {
	g := l.Grid
	onPath := make([]bool, g.Size())
	for _, p := range path {
		onPath[g.Index(p)] = true
	}
	var n int64
	for p, c := range g.All() {
		if c == open && p != l.Start && !onPath[g.Index(p)] {
			n++
		}
	}
	return n
}

// LoopsWith reports whether an extra obstruction at p traps the guard.
func (l *Lab) LoopsWith(p gridgraph.Point) (bool, error) {
	if !l.Grid.InBounds(p) {
		return false, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return l.walk(&p, nil), nil
}

// Part1 counts the distinct cells visited, including the start.
func Part1(l *Lab) int64 {
	return int64(len(l.Patrol()))
}

// Part2 counts the cells where one new obstruction traps the guard. When
// the unobstructed patrol already loops, an obstruction off its path
// leaves that loop intact, so every such open cell counts as well.
func Part2(ctx context.Context, l *Lab, opts ...puzzle.Option) (int64, error) {
	o, err := puzzle.Apply(opts...)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	path, looped := l.patrol()
	candidates := path[1:] // path[0] is the start
	o.Logger.Debug("checking obstructions",
		zap.Int("candidates", len(candidates)),
		zap.Int("workers", o.Workers),
		zap.Bool("looped", looped),
	)

	var loops atomic.Int64
	if looped {
		loops.Store(l.offPath(path))
	}
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for _, c := range candidates {
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			if l.walk(&c, nil) {
				loops.Add(1)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	o.Logger.Debug("obstructions checked", zap.Int64("loops", loops.Load()))
	return loops.Load(), nil
}

// Solve parses r and computes both parts.
func Solve(ctx context.Context, r io.Reader, opts ...puzzle.Option) (puzzle.Answer, error) {
	l, err := Parse(r)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p2, err := Part2(ctx, l, opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Day: 6, Part1: Part1(l), Part2: p2}, nil
}
