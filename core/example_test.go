// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/decaygraph/core"
)

// ExampleGraph_RemoveVertex shows that identifiers stay valid after a
// vertex in the middle of a decay chain is removed and its daughters are
// re-attached to the grandparent.
//
//	B(0) → tau(1) → e(2)
//	              → nu(3)
func ExampleGraph_RemoveVertex() {
	g := core.NewGraph()
	for _, v := range []core.Vertex{{0, 511, core.NoBlock}, {1, -15, core.NoBlock}, {2, -11, core.NoBlock}, {3, 16, core.NoBlock}} {
		_, _, _ = g.AddVertex(v.ID, v.Lund, v.Block)
	}
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(1, 3)

	children, _ := g.Children(1)
	for _, c := range children {
		_ = g.AddEdge(0, c)
	}
	_ = g.RemoveVertex(1)

	fmt.Println(g.Edges())
	// Output:
	// [{0 2} {0 3}]
}
