// Package core defines the central Graph type and the sentinel errors
// returned by graph mutations and queries.
package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Graph is the core in-memory directed graph data structure.
//
// mu guards vertices, adjacency and edgeCount.
type Graph[K cmp.Ordered] struct {
	mu sync.RWMutex

	vertices map[K]struct{}

	// adjacency[from][to] = struct{}{}
	adjacency map[K]map[K]struct{}
	edgeCount int
}

// NewGraph creates an empty directed Graph. Self-loops are rejected.
// Complexity: O(1)
func NewGraph[K cmp.Ordered]() *Graph[K] {
	return &Graph[K]{
		vertices:  make(map[K]struct{}),
		adjacency: make(map[K]map[K]struct{}),
	}
}
