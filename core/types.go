// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexID indicates a negative vertex identifier.
	ErrInvalidVertexID = errors.New("core: invalid vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrContractViolation marks input that is structurally impossible once
	// the upstream category-count checks have passed. Callers must not treat
	// any partial result produced alongside it as valid.
	ErrContractViolation = errors.New("core: contract violation")
)

// NoBlock is the Block value of vertices that have no per-category array
// position (truth-side particles).
const NoBlock = -1

// Vertex is one particle instance of one event.
type Vertex struct {
	// ID is the per-event unique identifier (reco index or mc index).
	ID int

	// Lund is the signed particle-type code.
	Lund int

	// Block is the position inside the category's flat arrays, or NoBlock.
	Block int
}

// Edge points from a parent particle to one of its daughters.
type Edge struct {
	From int
	To   int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex and adjacency maps for n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the directed decay graph of one event.
//
// mu guards all storage. children and parents hold adjacency in insertion
// order; they always have an entry (possibly empty) for every vertex.
type Graph struct {
	mu sync.RWMutex

	capacity int

	vertices map[int]*Vertex
	children map[int][]int
	parents  map[int][]int
	nEdges   int
}

// NewGraph creates an empty decay graph.
// Complexity: O(capacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()

	return g
}

// reset allocates fresh storage; callers must hold mu for writing (or own g).
func (g *Graph) reset() {
	g.vertices = make(map[int]*Vertex, g.capacity)
	g.children = make(map[int][]int, g.capacity)
	g.parents = make(map[int][]int, g.capacity)
	g.nEdges = 0
}
