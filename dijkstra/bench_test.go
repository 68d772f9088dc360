// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"strconv"
	"testing"

	"github.com/Mearman/Academic-Explorer-sub005/dijkstra"
)

// BenchmarkShortestPath_Grid measures a corner-to-corner query on a 40x40 grid.
func BenchmarkShortestPath_Grid(b *testing.B) {
	const side = 40
	id := func(r, c int) string { return strconv.Itoa(r) + ":" + strconv.Itoa(c) }
	g := newGraph(b, false)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			_ = g.AddNode(vertex(id(r, c)))
		}
	}
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if c+1 < side {
				addWeighted(b, g, id(r, c)+">", id(r, c), id(r, c+1), float64(1+(r+c)%3))
			}
			if r+1 < side {
				addWeighted(b, g, id(r, c)+"v", id(r, c), id(r+1, c), float64(1+(r*c)%4))
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(g, id(0, 0), id(side-1, side-1)); err != nil {
			b.Fatal(err)
		}
	}
}
