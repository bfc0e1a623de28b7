// SPDX-License-Identifier: MIT

package mcgraph

import (
	"fmt"

	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/event"
)

// Build constructs the truth decay graph of one event.
//
// Vertex i is mc particle i. The daughters of i are the contiguous range
// [DauIdx[i], DauIdx[i]+DauLen[i]); an edge is added to each. Truth blocks
// whose lengths disagree, daughter ranges leaving the record and particles
// listed as their own daughter return ErrInconsistentInput.
//
// Complexity: O(McLen + total daughters).
func Build(t *event.Truth) (*core.Graph, error) {
	n := t.Len()
	if len(t.DauIdx) != n || len(t.DauLen) != n {
		return nil, fmt.Errorf("%w: %d codes, %d daughter offsets, %d daughter counts",
			ErrInconsistentInput, n, len(t.DauIdx), len(t.DauLen))
	}

	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		if _, _, err := g.AddVertex(i, t.Lund[i], core.NoBlock); err != nil {
			return nil, fmt.Errorf("mcgraph: vertex %d: %w", i, err)
		}
	}
	for i := 0; i < n; i++ {
		first, count := t.DauIdx[i], t.DauLen[i]
		if count <= 0 {
			continue
		}
		if first < 0 || first+count > n {
			return nil, fmt.Errorf("%w: particle %d has daughters [%d, %d) outside [0, %d)",
				ErrInconsistentInput, i, first, first+count, n)
		}
		for j := first; j < first+count; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%w: edge %d→%d: %w", ErrInconsistentInput, i, j, err)
			}
		}
	}

	return g, nil
}
