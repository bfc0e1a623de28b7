// Package bfs provides breadth-first search over a decay graph (core.Graph),
// returning generation depths and visit order.
//
// What
//
//   - Explore daughters in non-decreasing distance (edge count) from a set
//     of start vertices, all at depth 0.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance from the nearest start
//   - MaxDepth limit and context cancellation.
//
// Why
//
//   - Started from g.Roots(), Depth is the generation of every particle.
//     The graphviz writer uses it to put each generation on its own rank,
//     and MaxDepth to draw only the top generations of a large truth graph.
//
// Determinism
//
//	Starts are seeded in the given order and daughters are enqueued in
//	insertion order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if a start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - The context error when Ctx is cancelled.
package bfs
