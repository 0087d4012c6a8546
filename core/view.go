// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

import "cmp"

// InducedSubgraph returns a new Graph induced by the vertex IDs in keep:
// the result contains only vertices listed in keep that exist in g, and all
// edges whose endpoints are both kept. The input graph is not mutated.
//
// Complexity: O(|keep| + Σdeg(keep)).
func InducedSubgraph[K cmp.Ordered](g *Graph[K], keep []K) *Graph[K] {
	out := NewGraph[K]()

	g.mu.RLock()
	defer g.mu.RUnlock()

	kept := make(map[K]struct{}, len(keep))
	for _, id := range keep {
		if _, ok := g.vertices[id]; ok {
			kept[id] = struct{}{}
			out.addVertexLocked(id)
		}
	}
	for from := range kept {
		for to := range g.adjacency[from] {
			if _, ok := kept[to]; !ok {
				continue
			}
			out.adjacency[from][to] = struct{}{}
			out.edgeCount++
		}
	}

	return out
}
