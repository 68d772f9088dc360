// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"context"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/Mearman/Academic-Explorer-sub005/core"
	"github.com/Mearman/Academic-Explorer-sub005/dijkstra"
)

type graph = core.Graph[core.Vertex, core.Edge]

func ptr[T any](v T) *T { return &v }

func newGraph(t testing.TB, directed bool, ids ...string) *graph {
	t.Helper()
	g := core.NewGraph[core.Vertex, core.Edge](core.WithDirected(directed), core.WithLogger(log.New(io.Discard)))
	for _, id := range ids {
		require.NoError(t, g.AddNode(core.Vertex{ID: id, Type: "work"}))
	}
	return g
}

func addWeighted(t testing.TB, g *graph, id, src, dst string, w float64) {
	t.Helper()
	require.NoError(t, g.AddEdge(core.Edge{ID: id, Source: src, Target: dst, Relation: core.RelationCites, Weight: ptr(w)}))
}

// weightedDiamond: A→B(1) B→C(1) C→D(1) A→D(5) A→C(3)
func weightedDiamond(t testing.TB) *graph {
	g := newGraph(t, true, "A", "B", "C", "D")
	addWeighted(t, g, "ab", "A", "B", 1)
	addWeighted(t, g, "bc", "B", "C", 1)
	addWeighted(t, g, "cd", "C", "D", 1)
	addWeighted(t, g, "ad", "A", "D", 5)
	addWeighted(t, g, "ac", "A", "C", 3)
	return g
}

func TestShortestPath_PrefersCheaperLongerRoute(t *testing.T) {
	p, err := dijkstra.ShortestPath(weightedDiamond(t), "A", "D")
	require.NoError(t, err)
	require.True(t, p.Found)
	require.Equal(t, []string{"A", "B", "C", "D"}, p.Nodes)
	require.Equal(t, []string{"ab", "bc", "cd"}, p.Edges)
	require.InDelta(t, 3.0, p.Distance, 1e-12)
}

// TestShortestPath_UnweightedPath walks A-B-C-D with default unit weights,
// reversing direction on the undirected graph.
func TestShortestPath_UnweightedPath(t *testing.T) {
	g := newGraph(t, false, "A", "B", "C", "D")
	for _, e := range [][3]string{{"ab", "A", "B"}, {"bc", "B", "C"}, {"cd", "C", "D"}} {
		require.NoError(t, g.AddEdge(core.Edge{ID: e[0], Source: e[1], Target: e[2]}))
	}

	p, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, p.Nodes)
	require.Equal(t, 3.0, p.Distance)

	back, err := dijkstra.ShortestPath(g, "D", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"D", "C", "B", "A"}, back.Nodes)
	require.Equal(t, []string{"cd", "bc", "ab"}, back.Edges)
}

func TestShortestPath_SelfPath(t *testing.T) {
	p, err := dijkstra.ShortestPath(weightedDiamond(t), "B", "B")
	require.NoError(t, err)
	require.True(t, p.Found)
	require.Equal(t, []string{"B"}, p.Nodes)
	require.Empty(t, p.Edges)
	require.Zero(t, p.Distance)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := weightedDiamond(t)
	require.NoError(t, g.AddNode(core.Vertex{ID: "Z", Type: "work"}))

	p, err := dijkstra.ShortestPath(g, "A", "Z")
	require.NoError(t, err, "unreachable is not an error")
	require.False(t, p.Found)
	require.True(t, math.IsInf(p.Distance, 1))
	require.Empty(t, p.Nodes)
	require.Empty(t, p.Edges)

	// against the edge direction
	p, err = dijkstra.ShortestPath(g, "D", "A")
	require.NoError(t, err)
	require.False(t, p.Found)

	p, err = dijkstra.ShortestPath(g, "D", "A", dijkstra.WithDirection(core.In))
	require.NoError(t, err)
	require.True(t, p.Found)
	require.Equal(t, []string{"D", "C", "B", "A"}, p.Nodes)
}

func TestShortestPath_Errors(t *testing.T) {
	g := weightedDiamond(t)

	_, err := dijkstra.ShortestPath[core.Vertex, core.Edge](nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPath(g, "X", "A")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = dijkstra.ShortestPath(g, "A", "X")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxDistance(-1))
	require.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = dijkstra.ShortestPath(g, "A", "D", dijkstra.WithWeightProperty("", false))
	require.ErrorIs(t, err, dijkstra.ErrBadOption)
	_, err = dijkstra.ShortestPath(g, "A", "D", dijkstra.WithDirection(core.Direction(7)))
	require.ErrorIs(t, err, dijkstra.ErrBadOption)
}

func TestShortestPath_NegativeWeight(t *testing.T) {
	g := weightedDiamond(t)
	addWeighted(t, g, "neg", "D", "B", -2)

	_, err := dijkstra.ShortestPath(g, "A", "D")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	require.ErrorIs(t, err, core.ErrInvalidInput)

	// filtered out before weights are checked
	p, err := dijkstra.ShortestPath(g, "A", "D",
		dijkstra.WithEdgeFilter(func(e core.Edge) bool { return e.ID != "neg" }))
	require.NoError(t, err)
	require.InDelta(t, 3.0, p.Distance, 1e-12)

	_, err = dijkstra.ShortestPath(g, "A", "D",
		dijkstra.WithWeightFunc(func(core.Edge) float64 { return math.NaN() }))
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestShortestPath_WeightPrecedence(t *testing.T) {
	g := newGraph(t, false, "A", "B", "C")
	require.NoError(t, g.AddEdge(core.Edge{ID: "ab", Source: "A", Target: "B", Weight: ptr(10.0), Score: ptr(0.5)}))
	require.NoError(t, g.AddEdge(core.Edge{ID: "bc", Source: "B", Target: "C", Weight: ptr(10.0), Score: ptr(0.5)}))
	require.NoError(t, g.AddEdge(core.Edge{ID: "ac", Source: "A", Target: "C", Weight: ptr(1.0), Score: ptr(0.1)}))

	// payload weight
	p, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, p.Nodes)
	require.InDelta(t, 1.0, p.Distance, 1e-12)

	// inverted score: 1/0.5 + 1/0.5 = 4 beats 1/0.1 = 10
	p, err = dijkstra.ShortestPath(g, "A", "C", dijkstra.WithWeightProperty(core.PropScore, true))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, p.Nodes)
	require.InDelta(t, 4.0, p.Distance, 1e-9)

	// raw score
	p, err = dijkstra.ShortestPath(g, "A", "C", dijkstra.WithWeightProperty(core.PropScore, false))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, p.Nodes)

	// weight function wins over the property
	p, err = dijkstra.ShortestPath(g, "A", "C",
		dijkstra.WithWeightProperty(core.PropScore, true),
		dijkstra.WithWeightFunc(func(core.Edge) float64 { return 1 }))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, p.Nodes)
	require.InDelta(t, 1.0, p.Distance, 1e-12)

	// missing property defaults to 1
	p, err = dijkstra.ShortestPath(g, "A", "C", dijkstra.WithWeightProperty("citations", false))
	require.NoError(t, err)
	require.InDelta(t, 1.0, p.Distance, 1e-12)
}

func TestShortestPath_InvertedZeroScoreIsFinite(t *testing.T) {
	g := newGraph(t, false, "A", "B")
	require.NoError(t, g.AddEdge(core.Edge{ID: "ab", Source: "A", Target: "B", Score: ptr(0.0)}))

	p, err := dijkstra.ShortestPath(g, "A", "B", dijkstra.WithWeightProperty(core.PropScore, true))
	require.NoError(t, err)
	require.True(t, p.Found)
	require.InDelta(t, 1/dijkstra.Epsilon, p.Distance, 1)
}

func TestShortestPath_NodeTypeFilter(t *testing.T) {
	g := core.NewGraph[core.Vertex, core.Edge](core.WithLogger(log.New(io.Discard)))
	for _, v := range []core.Vertex{
		{ID: "W1", Type: "work"}, {ID: "A1", Type: "author"}, {ID: "W2", Type: "work"}, {ID: "W3", Type: "work"},
	} {
		require.NoError(t, g.AddNode(v))
	}
	require.NoError(t, g.AddEdge(core.Edge{ID: "e1", Source: "W1", Target: "A1", Relation: core.RelationAuthored}))
	require.NoError(t, g.AddEdge(core.Edge{ID: "e2", Source: "A1", Target: "W2", Relation: core.RelationAuthored}))
	require.NoError(t, g.AddEdge(core.Edge{ID: "e3", Source: "W1", Target: "W3", Relation: core.RelationCites}))
	require.NoError(t, g.AddEdge(core.Edge{ID: "e4", Source: "W3", Target: "W2", Relation: core.RelationCites}))

	p, err := dijkstra.ShortestPath(g, "W1", "W2")
	require.NoError(t, err)
	require.Equal(t, []string{"W1", "A1", "W2"}, p.Nodes, "ties settle in insertion order")

	p, err = dijkstra.ShortestPath(g, "W1", "W2", dijkstra.WithNodeTypes("work"))
	require.NoError(t, err)
	require.Equal(t, []string{"W1", "W3", "W2"}, p.Nodes)

	p, err = dijkstra.ShortestPath(g, "W1", "A1", dijkstra.WithNodeTypes("work"))
	require.NoError(t, err)
	require.False(t, p.Found)

	p, err = dijkstra.ShortestPath(g, "A1", "A1", dijkstra.WithNodeTypes("work"))
	require.NoError(t, err)
	require.True(t, p.Found, "self path ignores filters")
}

func TestShortestPath_PredicateBuilders(t *testing.T) {
	g := newGraph(t, false, "A", "B", "C")
	require.NoError(t, g.AddEdge(core.Edge{ID: "ab", Source: "A", Target: "B", Relation: core.RelationRelatedTo, Score: ptr(0.2)}))
	require.NoError(t, g.AddEdge(core.Edge{ID: "bc", Source: "B", Target: "C", Relation: core.RelationCites, Score: ptr(0.9)}))
	require.NoError(t, g.AddEdge(core.Edge{ID: "ac", Source: "A", Target: "C", Relation: core.RelationCites, Score: ptr(0.9),
		Metadata: map[string]any{"venue": "x"}}))

	p, err := dijkstra.ShortestPath(g, "A", "B", dijkstra.WithEdgeFilter(dijkstra.RelationIs(core.RelationCites)))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "B"}, p.Nodes)

	p, err = dijkstra.ShortestPath(g, "A", "B", dijkstra.WithEdgeFilter(dijkstra.PropertyAtLeast(core.PropScore, 0.5)))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "B"}, p.Nodes)

	p, err = dijkstra.ShortestPath(g, "A", "C", dijkstra.WithEdgeFilter(dijkstra.PropertyEquals("venue", "y")))
	require.NoError(t, err)
	require.False(t, p.Found)

	// filters accumulate
	p, err = dijkstra.ShortestPath(g, "A", "B",
		dijkstra.WithEdgeFilter(dijkstra.RelationIs(core.RelationCites)),
		dijkstra.WithEdgeFilter(func(e core.Edge) bool { return e.ID != "ac" }))
	require.NoError(t, err)
	require.False(t, p.Found)
}

func TestShortestPath_MismatchedPayloadFunc(t *testing.T) {
	type other struct{ core.Edge }
	_, err := dijkstra.ShortestPath(weightedDiamond(t), "A", "D",
		dijkstra.WithWeightFunc(func(other) float64 { return 1 }))
	require.ErrorIs(t, err, dijkstra.ErrBadOption)
}

func TestShortestPath_TieBreakIsDeterministic(t *testing.T) {
	// A reaches D through B or C at equal cost; B was inserted first
	g := newGraph(t, false, "A", "B", "C", "D")
	addWeighted(t, g, "ac", "A", "C", 1)
	addWeighted(t, g, "ab", "A", "B", 1)
	addWeighted(t, g, "cd", "C", "D", 1)
	addWeighted(t, g, "bd", "B", "D", 1)

	for i := 0; i < 20; i++ {
		p, err := dijkstra.ShortestPath(g, "A", "D")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "D"}, p.Nodes)
	}
}

func TestDistances(t *testing.T) {
	g := weightedDiamond(t)
	require.NoError(t, g.AddNode(core.Vertex{ID: "Z"}))

	dist, prev, err := dijkstra.Distances(g, "A")
	require.NoError(t, err)
	require.Equal(t, 0.0, dist["A"])
	require.Equal(t, 1.0, dist["B"])
	require.Equal(t, 2.0, dist["C"])
	require.Equal(t, 3.0, dist["D"])
	require.True(t, math.IsInf(dist["Z"], 1))
	require.Equal(t, map[string]string{"B": "A", "C": "B", "D": "C"}, prev)

	dist, _, err = dijkstra.Distances(g, "A", dijkstra.WithMaxDistance(1.5))
	require.NoError(t, err)
	require.Equal(t, 1.0, dist["B"])
	require.True(t, math.IsInf(dist["C"], 1), "beyond the cap")
}

func TestDistances_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := dijkstra.Distances(weightedDiamond(t), "A", dijkstra.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func vertex(id string) core.Vertex { return core.Vertex{ID: id, Type: "work"} }
