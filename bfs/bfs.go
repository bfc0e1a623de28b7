package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/decaygraph/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from every ID in starts, following
// parent→daughter edges. All starts sit at depth 0, so Depth is the
// distance from the nearest start; with g.Roots() as starts it is the
// generation of every vertex.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on
// cancellation.
func BFS(g *core.Graph, starts []int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	for _, s := range starts {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, s)
		}
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Order: make([]int, 0, n),
			Depth: make(map[int]int, n),
		},
	}

	// Seed queue with the start vertices
	for _, s := range starts {
		if !w.visited[s] {
			w.enqueue(s, 0)
		}
	}
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker) enqueue(id int, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.enqueueChildren(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueChildren applies MaxDepth and enqueues each unseen daughter.
func (w *walker) enqueueChildren(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	children, err := w.graph.Children(item.id)
	if err != nil {
		return fmt.Errorf("bfs: daughters of %d: %w", item.id, err)
	}
	for _, c := range children {
		// first time seen?
		if !w.visited[c] {
			w.enqueue(c, next)
		}
	}
	return nil
}
