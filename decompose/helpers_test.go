// SPDX-License-Identifier: MIT

package decompose_test

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

// clique returns every pair of ids.
func clique(ids ...string) [][2]string {
	var out [][2]string
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			out = append(out, [2]string{ids[i], ids[j]})
		}
	}
	return out
}
