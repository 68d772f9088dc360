// SPDX-License-Identifier: MIT

package community_test

import (
	"io"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

type graph = core.Graph[core.Vertex, core.Edge]

// build creates a graph over ids; edge ids are "e0", "e1", ... in pair order.
func build(t testing.TB, directed bool, ids []string, pairs [][2]string) *graph {
	t.Helper()
	g := core.NewGraph[core.Vertex, core.Edge](core.WithDirected(directed), core.WithLogger(log.New(io.Discard)))
	for _, id := range ids {
		require.NoError(t, g.AddNode(core.Vertex{ID: id, Type: "work"}))
	}
	for i, p := range pairs {
		require.NoError(t, g.AddEdge(core.Edge{ID: "e" + strconv.Itoa(i), Source: p[0], Target: p[1]}))
	}
	return g
}

// twoTriangles is A-B-C and D-E-F with nothing in between.
func twoTriangles(t testing.TB) *graph {
	return build(t, false, []string{"A", "B", "C", "D", "E", "F"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}, {"D", "E"}, {"E", "F"}, {"D", "F"}})
}

// bridgedTriangles is twoTriangles plus the bridge C-D.
func bridgedTriangles(t testing.TB) *graph {
	return build(t, false, []string{"A", "B", "C", "D", "E", "F"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}, {"D", "E"}, {"E", "F"}, {"D", "F"}, {"C", "D"}})
}

var (
	left  = []string{"A", "B", "C"}
	right = []string{"D", "E", "F"}
)
