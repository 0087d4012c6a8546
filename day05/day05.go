// Package day05 solves "Print Queue": checking safety-manual updates
// against page ordering rules and repairing the ones printed out of order.
//
// The rules form a directed graph with an edge a→b for every "a|b". An
// update is repaired by topologically sorting the subgraph induced by its
// pages.
package day05

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2024/core"
	"github.com/katalvlaran/aoc2024/dfs"
	"github.com/katalvlaran/aoc2024/input"
	"github.com/katalvlaran/aoc2024/ints"
	"github.com/katalvlaran/aoc2024/puzzle"
)

var (
	// ErrMalformedRule is returned for a rule line that is not "a|b" with a != b.
	ErrMalformedRule = errors.New("day05: malformed rule")
	// ErrMalformedUpdate is returned for an update that is not a list of
	// distinct comma separated pages.
	ErrMalformedUpdate = errors.New("day05: malformed update")
	// ErrMalformedSections is returned unless the input is exactly a rule
	// block and an update block separated by blank lines.
	ErrMalformedSections = errors.New("day05: expected rules and updates separated by a blank line")
)

// Puzzle registers the day.
var Puzzle = puzzle.Puzzle{Day: 5, Title: "Print Queue", Solve: Solve}

// Manual holds the ordering rules and the updates to print.
type Manual struct {
	Rules   *core.Graph[int]
	Updates [][]int
}

// Parse reads the rule block and the update block.
func Parse(r io.Reader) (*Manual, error) {
	sections, err := input.Sections(r)
	if err != nil {
		return nil, err
	}
	if len(sections) != 2 {
		return nil, fmt.Errorf("%w: got %d blocks", ErrMalformedSections, len(sections))
	}

	m := &Manual{Rules: core.NewGraph[int]()}
	for _, line := range sections[0] {
		before, after, ok := strings.Cut(line.Text, "|")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedRule, line.No, line.Text)
		}
		a, errA := ints.ParseNatural[int](strings.TrimSpace(before))
		b, errB := ints.ParseNatural[int](strings.TrimSpace(after))
		if errA != nil || errB != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedRule, line.No, line.Text)
		}
		if err := m.Rules.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRule, line.No, err)
		}
	}

	for _, line := range sections[1] {
		pages, err := ints.NaturalFields[int](line.Text, ",")
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedUpdate, line.No, err)
		}
		seen := make(map[int]struct{}, len(pages))
		for _, p := range pages {
			if _, dup := seen[p]; dup {
				return nil, fmt.Errorf("%w: line %d: page %d repeated", ErrMalformedUpdate, line.No, p)
			}
			seen[p] = struct{}{}
		}
		m.Updates = append(m.Updates, pages)
	}
	return m, nil
}

// Ordered reports whether no later page in update is required to come
// before an earlier one.
func (m *Manual) Ordered(update []int) bool {
	for i := range update {
		for j := i + 1; j < len(update); j++ {
			if m.Rules.HasEdge(update[j], update[i]) {
				return false
			}
		}
	}
	return true
}

// Repair returns the pages of update in an order that satisfies every rule
// between them. Rules naming pages outside update are ignored.
// A contradiction among the pages returns an error wrapping
// dfs.ErrCycleDetected that names the cycle.
func (m *Manual) Repair(ctx context.Context, update []int) ([]int, error) {
	sub := core.InducedSubgraph(m.Rules, update)
	for _, p := range update {
		sub.AddVertex(p)
	}
	order, err := dfs.TopologicalSort(sub, dfs.WithCancelContext(ctx))
	if errors.Is(err, dfs.ErrCycleDetected) {
		if cycle, _ := dfs.FindCycle(sub); cycle != nil {
			return nil, fmt.Errorf("%w: %v", err, cycle)
		}
	}
	return order, err
}

// Part1 sums the middle page of every correctly ordered update.
func Part1(m *Manual) int64 {
	var sum int64
	for _, u := range m.Updates {
		if m.Ordered(u) {
			sum += int64(middle(u))
		}
	}
	return sum
}

// Part2 repairs every incorrectly ordered update and sums their middle
// pages.
func Part2(ctx context.Context, m *Manual, opts ...puzzle.Option) (int64, error) {
	o, err := puzzle.Apply(opts...)
	if err != nil {
		return 0, err
	}
	o.Logger.Debug("checking updates",
		zap.Int("pages", m.Rules.VertexCount()),
		zap.Int("rules", m.Rules.EdgeCount()),
		zap.Int("updates", len(m.Updates)),
	)

	var sum int64
	for i, u := range m.Updates {
		if m.Ordered(u) {
			continue
		}
		fixed, err := m.Repair(ctx, u)
		if err != nil {
			return 0, fmt.Errorf("update %d: %w", i+1, err)
		}
		o.Logger.Debug("repaired update",
			zap.Int("update", i+1),
			zap.Ints("from", u),
			zap.Ints("to", fixed),
		)
		sum += int64(middle(fixed))
	}
	return sum, nil
}

func middle(pages []int) int {
	if len(pages) == 0 {
		return 0
	}
	return pages[len(pages)/2]
}

// Solve parses r and computes both parts.
func Solve(ctx context.Context, r io.Reader, opts ...puzzle.Option) (puzzle.Answer, error) {
	m, err := Parse(r)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p2, err := Part2(ctx, m, opts...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Day: 5, Part1: Part1(m), Part2: p2}, nil
}
