package puzzle

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2024/input"
)

var (
	// ErrOptionViolation indicates an Option received an invalid value.
	ErrOptionViolation = errors.New("puzzle: invalid option value")

	// ErrDayNotRegistered is returned by Lookup for an unknown day.
	ErrDayNotRegistered = errors.New("puzzle: day not registered")

	// ErrDuplicateDay is returned when a day is registered twice.
	ErrDuplicateDay = errors.New("puzzle: day already registered")

	// ErrInvalidPuzzle rejects a Puzzle with a bad day or no SolveFunc.
	ErrInvalidPuzzle = errors.New("puzzle: invalid puzzle")
)

// Answer holds both parts of one day's result.
type Answer struct {
	Day   int
	Part1 int64
	Part2 int64
}

// SolveFunc parses r and computes both parts.
type SolveFunc func(ctx context.Context, r io.Reader, opts ...Option) (Answer, error)

// Puzzle describes one day.
type Puzzle struct {
	Day   int
	Title string
	Solve SolveFunc
}

// Registry maps day numbers to puzzles. The zero value is not usable;
// call NewRegistry.
type Registry struct {
	mu   sync.RWMutex
	days map[int]Puzzle
}

// NewRegistry returns a registry holding ps, failing on the first
// invalid or duplicate entry.
func NewRegistry(ps ...Puzzle) (*Registry, error) {
	r := &Registry{days: make(map[int]Puzzle, len(ps))}
	for _, p := range ps {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds p.
func (r *Registry) Register(p Puzzle) error {
	if p.Day < 1 || p.Day > 25 || p.Solve == nil {
		return fmt.Errorf("%w: day %d", ErrInvalidPuzzle, p.Day)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.days[p.Day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, p.Day)
	}
	r.days[p.Day] = p
	return nil
}

// Lookup returns the puzzle registered for day.
func (r *Registry) Lookup(day int) (Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.days[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %d", ErrDayNotRegistered, day)
	}
	return p, nil
}

// All returns every registered puzzle in day order.
func (r *Registry) All() []Puzzle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Puzzle, 0, len(r.days))
	for _, p := range r.days {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Puzzle) int { return cmp.Compare(a.Day, b.Day) })
	return out
}

// Run opens the file at path and solves it with p. Solve errors are
// wrapped with the day number.
func Run(ctx context.Context, p Puzzle, path string, opts ...Option) (Answer, error) {
	o, err := Apply(opts...)
	if err != nil {
		return Answer{}, err
	}
	log := o.Logger.With(zap.Int("day", p.Day), zap.String("input", path))

	f, err := input.Open(path)
	if err != nil {
		return Answer{}, fmt.Errorf("day %d: %w", p.Day, err)
	}
	defer f.Close()

	log.Info("solving")
	start := time.Now()
	ans, err := p.Solve(ctx, f, opts...)
	if err != nil {
		log.Debug("solve failed", zap.Error(err))
		return Answer{}, fmt.Errorf("day %d: %w", p.Day, err)
	}
	ans.Day = p.Day
	log.Info("solved",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int64("part1", ans.Part1),
		zap.Int64("part2", ans.Part2),
	)
	return ans, nil
}
