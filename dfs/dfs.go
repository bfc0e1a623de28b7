// Package dfs implements depth-first search (single-source and forest) on
// core.Graph with three-colour vertex states.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Cycle detection: a Gray daughter aborts with ErrCycleDetected
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of the hooks.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - ErrCycleDetected          if a back edge is found.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/decaygraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from startID.
// Returns DFSResult or error if aborted by context, cycle or hook.
func DFS(g *core.Graph, startID int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify startID
	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	vertices := g.Vertices()
	res := &DFSResult{
		Order:  make([]int, 0, len(vertices)),
		Depth:  make(map[int]int, len(vertices)),
		Parent: make(map[int]int, len(vertices)),
		State:  make(map[int]int, len(vertices)),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range vertices {
			if res.State[v] == White {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := walker.traverse(startID, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits vertex id at given depth, recursing into its daughters.
func (w *dfsWalker) traverse(id int, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		w.res.Order = nil

		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark in-progress and record depth
	w.res.State[id] = Gray
	w.res.Depth[id] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 4. Fetch daughters once
	children, err := w.graph.Children(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: Children(%d): %w", id, err)
	}

	// 5. Explore each daughter
	for _, cid := range children {
		switch w.res.State[cid] {
		case White:
			w.res.Parent[cid] = id
			if err = w.traverse(cid, depth+1); err != nil {
				return err
			}
		case Gray:
			w.res.Order = nil

			return fmt.Errorf("dfs: edge %d→%d: %w", id, cid, ErrCycleDetected)
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	// 7. Finish
	w.res.State[id] = Black
	w.res.Order = append(w.res.Order, id)

	return nil
}
