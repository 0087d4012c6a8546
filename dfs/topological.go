// Package dfs provides topological sort on directed graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc2024/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[K cmp.Ordered] struct {
	graph *core.Graph[K] // the graph being sorted
	opts  topoOptions    // traversal options (cancellation)
	state map[K]int      // visitation state: White, Gray, Black
	order []K            // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Vertices are explored in ascending order, so the result is deterministic.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort[K cmp.Ordered](g *core.Graph[K], options ...TopoOption) ([]K, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	verts := g.Vertices()
	sorter := &topoSorter[K]{
		graph: g,
		opts:  opts,
		state: make(map[K]int, len(verts)),
		order: make([]K, 0, len(verts)),
	}
	// 4. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter[K]) visit(id K) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// Gray means we found a back-edge
	if t.state[id] == Gray {
		return ErrCycleDetected
	}
	if t.state[id] == Black {
		return nil
	}
	t.state[id] = Gray

	neighbors, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nbr := range neighbors {
		if err = t.visit(nbr); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
