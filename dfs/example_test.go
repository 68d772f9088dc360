// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Mearman/Academic-Explorer-sub005/core"
	"github.com/Mearman/Academic-Explorer-sub005/dfs"
)

// diamond builds A→B, A→C, B→D, C→D, D→E, D→F.
func diamond() *graph {
	g := core.NewGraph[core.Vertex, core.Edge](core.WithDirected(true), core.WithLogger(log.New(io.Discard)))
	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		_ = g.AddNode(core.Vertex{ID: id})
	}
	for i, p := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		_ = g.AddEdge(core.Edge{ID: fmt.Sprint("e", i), Source: p[0], Target: p[1]})
	}
	return g
}

// ExampleDFS prints the post-order of a diamond-shaped graph.
func ExampleDFS() {
	res, err := dfs.DFS(diamond(), "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Order, " "))

	// Output:
	// E F D B C A
}

// ExampleTopologicalSort orders the same diamond; ties follow insertion order.
func ExampleTopologicalSort() {
	order, err := dfs.TopologicalSort(diamond())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)

	// Output:
	// [A B C D E F]
}

// ExampleDetectCycle adds a back edge F→B and reports the witness.
func ExampleDetectCycle() {
	g := diamond()
	_ = g.AddEdge(core.Edge{ID: "back", Source: "F", Target: "B"})

	res, _ := dfs.DetectCycle(g)
	fmt.Println(res.HasCycle, res.Cycle)

	// Output:
	// true [B D F B]
}
