// Package dfs defines types and options for depth-first search traversal
// of decay graphs: cancellation, pre-/post-order hooks and full-forest
// traversal.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates a back edge: a daughter that is still on
	// the recursion stack. Decay graphs are acyclic by construction.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex turns Gray (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// OnExit, if non-nil, is invoked when a vertex turns Black, that is after
	// every daughter is Black (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(id int) error

	// FullTraversal, if true, runs DFS from every White vertex in ascending
	// ID order, covering the whole forest. Default is false.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		OnVisit:       nil,
		OnExit:        nil,
		FullTraversal: false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Depth maps each vertex ID to its distance (#edges) from its tree root.
	Depth map[int]int

	// Parent maps each vertex ID to the ID of the vertex from which it was
	// first discovered. Tree roots do not appear in this map.
	Parent map[int]int

	// State holds the final White/Gray/Black state of every reached vertex.
	State map[int]int
}
