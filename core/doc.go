// Package core provides a small, thread-safe in-memory directed Graph
// keyed by any ordered vertex type.
//
// The Graph G = (V,E) supports:
//
//   - Directed edges only; self-loops are rejected with ErrLoopNotAllowed
//   - Constant-time edge insertion and lookup via nested sets:
//     adjacency[from][to] = struct{}{}
//   - A single sync.RWMutex guarding vertices and adjacency
//
// Why use core.Graph?
//
//   - One generic type: vertex IDs may be page numbers, coordinates
//     encoded as strings, or anything else satisfying cmp.Ordered.
//   - Deterministic iteration: Vertices() and NeighborIDs() return sorted results,
//     so algorithms built on top (dfs.TopologicalSort) are reproducible.
//   - Views: InducedSubgraph restricts a graph to a vertex subset without
//     touching the source.
//
// Core Methods:
//
//	AddVertex(id K)                       // O(1), idempotent
//	HasVertex(id K) bool                  // O(1)
//	AddEdge(from, to K) error             // O(1), auto-adds endpoints
//	HasEdge(from, to K) bool              // O(1)
//	NeighborIDs(id K) ([]K, error)        // O(d·log d), sorted
//	Vertices() []K                        // O(V·log V), sorted
//	VertexCount(), EdgeCount() int        // O(1)
//
// Errors:
//
//	ErrVertexNotFound  – missing vertex
//	ErrLoopNotAllowed  – self-loop
package core
