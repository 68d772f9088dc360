// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// chain builds A–B–C–D–E as an undirected path.
func chain(t *testing.T) *testGraph {
	return newTestGraph(t, false,
		[]string{NodeA, NodeB, NodeC, NodeD, NodeE},
		[][2]string{{NodeA, NodeB}, {NodeB, NodeC}, {NodeC, NodeD}, {NodeD, NodeE}})
}

func TestInducedSubgraph(t *testing.T) {
	g := chain(t)
	sub, err := core.InducedSubgraph(g, []string{NodeC, NodeB, NodeE})
	require.NoError(t, err)

	require.Equal(t, []string{NodeB, NodeC, NodeE}, sub.NodeIDs(), "source insertion order is kept")
	require.Equal(t, 1, sub.EdgeCount())
	require.True(t, sub.HasEdge(NodeB, NodeC))
	require.Equal(t, 4, g.EdgeCount(), "input graph is not mutated")

	_, err = core.InducedSubgraph(g, []string{NodeA, NodeX})
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestEgoNetwork(t *testing.T) {
	g := chain(t)

	ego, err := core.EgoNetwork(g, []string{NodeC}, 1)
	require.NoError(t, err)
	require.Equal(t, []string{NodeB, NodeC, NodeD}, ego.NodeIDs())
	require.Equal(t, 2, ego.EdgeCount())

	ego, err = core.EgoNetwork(g, []string{NodeA, NodeE}, 1)
	require.NoError(t, err)
	require.Equal(t, []string{NodeA, NodeB, NodeD, NodeE}, ego.NodeIDs())

	ego, err = core.EgoNetwork(g, []string{NodeA}, 0)
	require.NoError(t, err)
	require.Equal(t, []string{NodeA}, ego.NodeIDs())
	require.Equal(t, 0, ego.EdgeCount())

	_, err = core.EgoNetwork(g, []string{NodeA}, -1)
	require.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = core.EgoNetwork(g, nil, 1)
	require.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = core.EgoNetwork(g, []string{NodeX}, 1)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestEgoNetwork_DirectedFollowsBothWays(t *testing.T) {
	g := newTestGraph(t, true, []string{NodeA, NodeB, NodeC}, [][2]string{{NodeA, NodeB}, {NodeC, NodeB}})
	ego, err := core.EgoNetwork(g, []string{NodeB}, 1)
	require.NoError(t, err)
	require.Equal(t, []string{NodeA, NodeB, NodeC}, ego.NodeIDs())
	require.True(t, ego.Directed())
}

func TestFilter(t *testing.T) {
	g := core.NewGraph[core.Vertex, core.Edge](core.WithLogger(quietLogger()))
	require.NoError(t, g.AddNode(core.Vertex{ID: "W1", Type: "work"}))
	require.NoError(t, g.AddNode(core.Vertex{ID: "A1", Type: "author"}))
	require.NoError(t, g.AddNode(core.Vertex{ID: "W2", Type: "work"}))
	require.NoError(t, g.AddEdge(link("e1", "A1", "W1")))
	require.NoError(t, g.AddEdge(link("e2", "W1", "W2")))

	works, err := core.Filter(g, func(v core.Vertex) bool { return v.Type == "work" })
	require.NoError(t, err)
	require.Equal(t, []string{"W1", "W2"}, works.NodeIDs())
	require.Equal(t, 1, works.EdgeCount())

	_, err = core.Filter[core.Vertex, core.Edge](g, nil)
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestFilterEdges(t *testing.T) {
	g := core.NewGraph[core.Vertex, core.Edge](core.WithLogger(quietLogger()))
	for _, id := range []string{NodeA, NodeB, NodeC} {
		require.NoError(t, g.AddNode(work(id)))
	}
	require.NoError(t, g.AddEdge(core.Edge{ID: "e1", Source: NodeA, Target: NodeB, Score: ptr(0.9)}))
	require.NoError(t, g.AddEdge(core.Edge{ID: "e2", Source: NodeB, Target: NodeC, Score: ptr(0.1)}))

	strong, err := core.FilterEdges(g, func(e core.Edge) bool { return e.Score != nil && *e.Score > 0.5 })
	require.NoError(t, err)
	require.Equal(t, 3, strong.NodeCount(), "all nodes are kept")
	require.Equal(t, 1, strong.EdgeCount())
}

func TestEdgeInduced(t *testing.T) {
	g := chain(t)
	sub := core.EdgeInduced(g, []string{"e2", "e4", "missing"})
	require.Equal(t, []string{NodeB, NodeC, NodeD, NodeE}, sub.NodeIDs())
	require.Equal(t, 2, sub.EdgeCount())
}

// TestInducedSubgraph_Property checks that the node set equals the selection
// exactly and every surviving edge has both endpoints selected.
func TestInducedSubgraph_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	ids := []string{"n0", "n1", "n2", "n3", "n4", "n5", "n6", "n7"}

	properties.Property("induced subgraph keeps exactly the selection", prop.ForAll(
		func(edgeSeeds []int, mask []bool) bool {
			g := core.NewGraph[core.Vertex, core.Edge](core.WithLogger(quietLogger()))
			for _, id := range ids {
				_ = g.AddNode(work(id))
			}
			for i, seed := range edgeSeeds {
				src, dst := ids[seed%len(ids)], ids[(seed/len(ids))%len(ids)]
				_ = g.AddEdge(link(edgeID(i), src, dst))
			}
			var selected []string
			inSel := map[string]bool{}
			for i, keep := range mask {
				if keep && i < len(ids) {
					selected = append(selected, ids[i])
					inSel[ids[i]] = true
				}
			}
			sub, err := core.InducedSubgraph(g, selected)
			if err != nil || sub.NodeCount() != len(selected) {
				return false
			}
			for _, id := range sub.NodeIDs() {
				if !inSel[id] {
					return false
				}
			}
			for _, e := range sub.Edges() {
				if !inSel[e.Source] || !inSel[e.Target] {
					return false
				}
			}
			// every original edge inside the selection must survive
			want := 0
			for _, e := range g.Edges() {
				if inSel[e.Source] && inSel[e.Target] {
					want++
				}
			}
			return want == sub.EdgeCount()
		},
		gen.SliceOf(gen.IntRange(0, 63)),
		gen.SliceOfN(len(ids), gen.Bool()),
	))

	properties.TestingRun(t)
}

func TestSimpleAdjacency(t *testing.T) {
	g := newTestGraph(t, true, []string{NodeA, NodeB, NodeC, NodeD},
		[][2]string{{NodeB, NodeA}, {NodeA, NodeB}, {NodeA, NodeA}, {NodeC, NodeA}, {NodeB, NodeC}})
	a := core.SimpleAdjacency(g)

	require.Equal(t, 4, a.Len())
	require.Equal(t, []int{1, 2}, a.Adj[0], "reciprocal and self-loop edges collapse")
	require.Equal(t, 2, a.Degree(1))
	require.Equal(t, 0, a.Degree(3))
	require.True(t, a.Connected(2, 1))
	require.False(t, a.Connected(0, 3))
	require.Equal(t, 3, a.EdgeCount())
	require.Equal(t, []int{2}, a.Common(0, 1))
	require.Equal(t, []string{NodeC, NodeA}, a.Names([]int{2, 0}))
}
