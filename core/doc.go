// SPDX-License-Identifier: MIT

// Package core provides the in-memory decay graph shared by the
// reconstructed-side and truth-side analyses.
//
// A decay graph G = (V,E) is directed: every edge points from a parent
// particle to one of its daughters. Vertices are keyed by a per-event
// integer identifier (the "reco index" or "mc index") rather than by a
// structural handle, so that in-place rewrites such as edge contraction
// never invalidate identifiers held by callers.
//
// Each Vertex carries:
//
//   - ID     the per-event unique identifier (>= 0)
//   - Lund   the signed particle-type code
//   - Block  the position inside its category's flat input arrays
//     (reconstructed side), or NoBlock on the truth side
//
// Determinism:
//
//   - Vertices(), Roots() and Edges() return results sorted by ID.
//   - Children(id) and Parents(id) preserve edge insertion order, which is
//     the order daughters were listed in the event record.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id, lund, block int) (*Vertex, bool, error) // O(1), create-or-reuse
//	Vertex(id int) (*Vertex, error)                      // O(1)
//	HasVertex(id int) bool                               // O(1)
//	RemoveVertex(id int) error                           // O(deg(v)·d)
//
//	// Edge lifecycle
//	AddEdge(from, to int) error                          // O(d), idempotent
//	RemoveEdge(from, to int) error                       // O(d)
//	HasEdge(from, to int) bool                           // O(d)
//
//	// Queries
//	Children(id int) ([]int, error)
//	Parents(id int) ([]int, error)
//	Vertices() []int
//	Roots() []int
//	Edges() []Edge
//	VertexCount() int
//	EdgeCount() int
//
//	// Housekeeping
//	Clear()
//	Clone() *Graph
//
// where d is the out- or in-degree of the touched vertex; decay vertices
// have a handful of daughters, so linear scans over adjacency slices are
// cheaper than nested maps.
//
// Errors:
//
//	ErrInvalidVertexID   - a negative vertex identifier.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrLoopNotAllowed    - a particle cannot decay into itself.
//	ErrContractViolation - shared by every analysis stage for structurally
//	                       impossible input (unknown particle code in a closed
//	                       dispatch set, wrong daughters, ...).
package core
