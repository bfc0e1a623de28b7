// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: vertices, edges and adjacency order.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.vertices)))
	for id, v := range g.vertices {
		cp := *v
		clone.vertices[id] = &cp
		clone.children[id] = append([]int(nil), g.children[id]...)
		clone.parents[id] = append([]int(nil), g.parents[id]...)
	}
	clone.nEdges = g.nEdges

	return clone
}

// Clear removes all vertices and edges, keeping the configured capacity so
// the graph can be reused for the next event.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.reset()
}
