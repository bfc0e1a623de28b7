// Package dfs implements depth‑first search over a decay graph (core.Graph).
//
// What:
//
//   - DFS explores as far as possible along each parent→daughter chain
//     before backtracking. Supports:
//   - Pre‑order (OnVisit) and post‑order (OnExit) hooks
//   - Cancellation via context.Context
//   - Forest traversal from every unvisited vertex in ascending ID order
//   - Back-edge detection with White/Gray/Black colouring
//
// Why:
//
//   - Bottom-up classification: a parent's label is computed from labels
//     already cached on its daughters, so it must be computed in OnExit,
//     when every daughter is Black.
//   - Truth matching walks the reconstructed graph the same way.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, FullTraversal
//   - DFSResult: collects post‑order, Depth, Parent, State maps
//
// Complexity:
//
//   - DFS: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrCycleDetected        a daughter is still on the recursion stack
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
