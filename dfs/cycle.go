// Package dfs implements directed cycle discovery for core.Graph.
// FindCycle runs a three-color depth-first search and stops at the first
// back-edge, returning the cycle in canonical minimal rotation (Booth's
// algorithm) so the reported cycle does not depend on where the search
// happened to enter it.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (recursion stack + state map)
package dfs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc2024/core"
)

// FindCycle inspects the directed graph g for a cycle.
// Returns (cycle, nil) where cycle is closed ([v0, v1, ..., v0]) when one
// exists, or (nil, nil) when g is acyclic.
// Returns ErrGraphNil for a nil graph.
func FindCycle[K cmp.Ordered](g *core.Graph[K]) ([]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	state := make(map[K]int, len(verts))
	path := make([]K, 0, len(verts))

	var visit func(id K) ([]K, error)
	visit = func(id K) ([]K, error) {
		state[id] = Gray
		path = append(path, id)

		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, nbr := range nbrs {
			switch state[nbr] {
			case White:
				if cycle, err := visit(nbr); cycle != nil || err != nil {
					return cycle, err
				}
			case Gray:
				// back-edge: the cycle is the path segment starting at nbr
				idx := slices.Index(path, nbr)
				return canonical(path[idx:]), nil
			}
		}

		path = path[:len(path)-1]
		state[id] = Black

		return nil, nil
	}

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		cycle, err := visit(v)
		if err != nil {
			return nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if cycle != nil {
			return cycle, nil
		}
	}

	return nil, nil
}

// canonical rotates the open cycle base to its minimal rotation and closes
// it by repeating the first vertex at the end.
func canonical[K cmp.Ordered](base []K) []K {
	rot := MinimalRotation(base)

	return append(rot, rot[0])
}
