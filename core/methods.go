// Package core: Graph method implementations
//
// This file provides thread-safe, O(1) (amortized) operations for
// vertex and edge management on the Graph type defined in types.go.
// Adjacency is stored as nested sets: adjacency[from][to] = struct{}{},
// allowing constant-time existence checks and insertion.

package core

import "slices"

// AddVertex inserts a new vertex with the given ID into the Graph.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(id K) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddEdge connects from→to, adding both endpoints if needed.
// Adding an existing edge again is a no-op.
//
// Returns ErrLoopNotAllowed if from == to.
// Complexity: O(1).
func (g *Graph[K]) AddEdge(from, to K) error {
	if from == to {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if _, exists := g.adjacency[from][to]; exists {
		return nil
	}
	g.adjacency[from][to] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports true if an edge from 'from' to 'to' exists.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(from, to K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// NeighborIDs returns the IDs of all vertices reachable from id over one
// outgoing edge, sorted ascending.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(d log d)
func (g *Graph[K]) NeighborIDs(id K) ([]K, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]K, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		ids = append(ids, to)
	}
	slices.Sort(ids)

	return ids, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V)
func (g *Graph[K]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]K, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph[K]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// addVertexLocked inserts id and its adjacency set; caller holds g.mu.
func (g *Graph[K]) addVertexLocked(id K) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[K]struct{})
}
