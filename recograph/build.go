// SPDX-License-Identifier: MIT

package recograph

import (
	"fmt"

	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/event"
)

// Build constructs the reconstructed decay graph of one event.
//
// Implementation:
//   - Stage 1: Validate the block shapes and set the band offsets.
//   - Stage 2: Walk the blocks from Y to gamma. Each candidate becomes the
//     vertex Index(lund, block), created once and reused afterwards.
//   - Stage 3: For each daughter slot up to the first empty one, create or
//     reuse the daughter vertex and add the parent→daughter edge.
//
// Daughters shared between parents become one vertex with several parents.
// A code that belongs to no block, a block index outside its block, or a
// vertex presented twice with different codes is ErrInconsistentInput.
//
// Complexity: O(total candidates × slots).
func Build(reco *event.Reco) (*core.Graph, *Indexer, error) {
	// Stage 1
	if err := reco.Validate(); err != nil {
		return nil, nil, err
	}
	x := &Indexer{}
	x.Set(reco.Counts())
	g := core.NewGraph(core.WithCapacity(x.Total()))

	// Stage 2
	for c := range reco.Blocks {
		cat := event.Category(c)
		blk := &reco.Blocks[c]
		for i := 0; i < blk.Len(); i++ {
			if got, ok := CategoryOf(blk.Lund[i]); !ok || got != cat {
				return nil, nil, fmt.Errorf("%w: code %d stored in %s block", ErrInconsistentInput, blk.Lund[i], cat)
			}
			u, err := addVertex(g, x, blk.Lund[i], i)
			if err != nil {
				return nil, nil, err
			}

			// Stage 3
			for s := 0; s < cat.Slots(); s++ {
				dIdx, dLund := blk.Daughter(i, s)
				if dIdx == -1 {
					break
				}
				v, err := addVertex(g, x, dLund, dIdx)
				if err != nil {
					return nil, nil, fmt.Errorf("%s[%d] slot %d: %w", cat, i, s+1, err)
				}
				if err = g.AddEdge(u, v); err != nil {
					return nil, nil, fmt.Errorf("%w: edge %d→%d: %w", ErrInconsistentInput, u, v, err)
				}
			}
		}
	}

	return g, x, nil
}

func addVertex(g *core.Graph, x *Indexer, code, block int) (int, error) {
	id := x.Index(code, block)
	if id < 0 {
		return -1, fmt.Errorf("%w: no reco index for code %d at block %d", ErrInconsistentInput, code, block)
	}
	v, _, err := g.AddVertex(id, code, block)
	if err != nil {
		return -1, fmt.Errorf("recograph: vertex %d: %w", id, err)
	}
	if v.Lund != code {
		return -1, fmt.Errorf("%w: reco index %d seen as %d and %d", ErrInconsistentInput, id, v.Lund, code)
	}
	return id, nil
}
