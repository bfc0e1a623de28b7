// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and Roots() return IDs sorted ascending.
//
// Concurrency:
//   - All storage guarded by mu.

package core

import "sort"

// AddVertex inserts the vertex id if missing and returns it.
//
// Implementation:
//   - Stage 1: Validate id >= 0 (ErrInvalidVertexID).
//   - Stage 2: Under mu, return the existing vertex unchanged if present.
//   - Stage 3: Otherwise register a new Vertex and bootstrap empty adjacency.
//
// Behavior highlights:
//   - Idempotent: re-presenting an existing id returns the stored vertex and
//     created=false; lund and block of the call are ignored in that case.
//
// Returns:
//   - *Vertex: the stored vertex.
//   - bool: true iff the vertex was created by this call.
//   - error: ErrInvalidVertexID for negative ids.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id, lund, block int) (*Vertex, bool, error) {
	if id < 0 {
		return nil, false, ErrInvalidVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if v, ok := g.vertices[id]; ok {
		return v, false, nil
	}
	v := &Vertex{ID: id, Lund: lund, Block: block}
	g.vertices[id] = v
	g.children[id] = nil
	g.parents[id] = nil

	return v, true, nil
}

// Vertex returns the vertex stored under id.
//
// Errors:
//   - ErrVertexNotFound: if id is not present.
func (g *Graph) Vertex(id int) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// HasVertex reports whether the vertex id exists.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Implementation:
//   - Stage 1: Under mu, verify presence (ErrVertexNotFound).
//   - Stage 2: Detach id from every parent's children list and every
//     child's parents list.
//   - Stage 3: Delete the vertex and its adjacency buckets.
//
// Complexity:
//   - Time O(Σ deg) over the neighbours touched, Space O(1) extra.
func (g *Graph) RemoveVertex(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	for _, p := range g.parents[id] {
		g.children[p] = removeID(g.children[p], id)
		g.nEdges--
	}
	for _, c := range g.children[id] {
		g.parents[c] = removeID(g.parents[c], id)
		g.nEdges--
	}
	delete(g.vertices, id)
	delete(g.children, id)
	delete(g.parents, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Roots returns the IDs of vertices without parents, sorted ascending.
func (g *Graph) Roots() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0)
	for id := range g.vertices {
		if len(g.parents[id]) == 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// removeID drops the first occurrence of id from s, keeping order.
func removeID(s []int, id int) []int {
	for i, x := range s {
		if x == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}

	return s
}
