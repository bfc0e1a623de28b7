package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/dfs"
)

// ExampleDFS demonstrates a post-order traversal of a small decay tree.
// Graph structure:
//
//	    Y(0)
//	   /    \
//	B(1)    B(2)
//	 |       |
//	D(3)    l(4)
//
// Every vertex finishes after all of its daughters.
func ExampleDFS() {
	g := core.NewGraph()
	for _, v := range []struct{ id, lund int }{{0, 70553}, {1, 511}, {2, -511}, {3, 421}, {4, 13}} {
		_, _, _ = g.AddVertex(v.id, v.lund, 0)
	}
	for _, e := range []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}} {
		_ = g.AddEdge(e.From, e.To)
	}

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)

	// Output:
	// [3 1 4 2 0]
}
