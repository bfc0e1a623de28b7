// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries.
// Determinism:
//   - Edges() returns edges sorted by (From, To).
//   - Children()/Parents() keep insertion order.

package core

import "sort"

// AddEdge adds the directed edge parent→daughter.
//
// Steps:
//  1. Reject from == to (ErrLoopNotAllowed).
//  2. Both endpoints must already exist (ErrVertexNotFound).
//  3. An existing edge is left untouched (no parallel edges).
//  4. Append to children[from] and parents[to].
//
// Complexity: O(d) for the duplicate check.
func (g *Graph) AddEdge(from, to int) error {
	if from == to {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return ErrVertexNotFound
	}
	if containsID(g.children[from], to) {
		return nil
	}
	g.children[from] = append(g.children[from], to)
	g.parents[to] = append(g.parents[to], from)
	g.nEdges++

	return nil
}

// RemoveEdge deletes the edge from→to.
//
// Errors:
//   - ErrEdgeNotFound: if the edge is absent (including missing endpoints).
func (g *Graph) RemoveEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !containsID(g.children[from], to) {
		return ErrEdgeNotFound
	}
	g.children[from] = removeID(g.children[from], to)
	g.parents[to] = removeID(g.parents[to], from)
	g.nEdges--

	return nil
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return containsID(g.children[from], to)
}

// Children returns a copy of the daughter IDs of id in insertion order.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
func (g *Graph) Children(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return append([]int(nil), g.children[id]...), nil
}

// Parents returns a copy of the parent IDs of id in insertion order.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
func (g *Graph) Parents(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return append([]int(nil), g.parents[id]...), nil
}

// Edges returns every edge sorted by (From, To).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.nEdges)
	for from, cs := range g.children {
		for _, to := range cs {
			out = append(out, Edge{From: from, To: to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nEdges
}

func containsID(s []int, id int) bool {
	for _, x := range s {
		if x == id {
			return true
		}
	}

	return false
}
