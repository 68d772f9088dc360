// SPDX-License-Identifier: MIT

package codec_test

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/Mearman/Academic-Explorer-sub005/codec"
	"github.com/Mearman/Academic-Explorer-sub005/community"
	"github.com/Mearman/Academic-Explorer-sub005/core"
	"github.com/Mearman/Academic-Explorer-sub005/dijkstra"
)

func quiet() core.GraphOption { return core.WithLogger(log.New(io.Discard)) }

func TestReadFile_YAML(t *testing.T) {
	doc, err := codec.ReadFile(filepath.Join("testdata", "triangles.yaml"))
	require.NoError(t, err)
	require.False(t, doc.Directed)
	require.Len(t, doc.Nodes, 6)
	require.Len(t, doc.Edges, 7)
	require.Equal(t, "Map equation", doc.Nodes[5].Label)
	require.NotNil(t, doc.Edges[2].Score)
	require.InDelta(t, 0.8, *doc.Edges[2].Score, 1e-12)

	g, report, err := codec.ToGraph(doc, quiet())
	require.NoError(t, err)
	require.Equal(t, []string{"c7"}, report.SkippedEdges, "W9 is not a node")
	require.Equal(t, 6, g.EdgeCount())

	e, ok := g.Edge("c6")
	require.True(t, ok)
	require.Equal(t, 2.5, core.WeightOf(e))

	res, err := community.Louvain(g)
	require.NoError(t, err)
	require.Len(t, res.Communities, 2)
}

func TestRoundTrip(t *testing.T) {
	doc, err := codec.ReadFile(filepath.Join("testdata", "triangles.yaml"))
	require.NoError(t, err)
	g, _, err := codec.ToGraph(doc, quiet())
	require.NoError(t, err)

	for _, f := range []codec.Format{codec.YAML, codec.JSON} {
		var buf bytes.Buffer
		require.NoError(t, codec.Encode(&buf, codec.FromGraph(g), f), f)
		back, err := codec.Decode(&buf, f)
		require.NoError(t, err, f)
		g2, report, err := codec.ToGraph(back, quiet())
		require.NoError(t, err, f)
		require.Empty(t, report.SkippedEdges)
		require.Equal(t, g.Fingerprint(), g2.Fingerprint(), "%s round trip keeps the content", f)
	}
}

func TestWriteFile(t *testing.T) {
	g, _, err := codec.ToGraph(&codec.Document{
		Directed: true,
		Nodes:    []core.Vertex{{ID: "a", Type: "author"}, {ID: "w", Type: "work"}},
		Edges:    []core.Edge{{ID: "x", Source: "a", Target: "w", Relation: core.RelationAuthored}},
	}, quiet())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, codec.WriteFile(path, codec.FromGraph(g)))
	doc, err := codec.ReadFile(path)
	require.NoError(t, err)
	require.True(t, doc.Directed)
	require.Equal(t, core.RelationAuthored, doc.Edges[0].Relation)

	require.ErrorIs(t, codec.WriteFile(filepath.Join(t.TempDir(), "graph.txt"), doc), codec.ErrUnknownFormat)
}

func TestDecode_Errors(t *testing.T) {
	_, err := codec.Decode(strings.NewReader("nodes: [ {id: a, colour: red} ]"), codec.YAML)
	require.ErrorIs(t, err, codec.ErrMalformed)
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = codec.Decode(strings.NewReader(`{"nodes": 3}`), codec.JSON)
	require.ErrorIs(t, err, codec.ErrMalformed)

	_, err = codec.Decode(strings.NewReader(""), codec.TOML)
	require.ErrorIs(t, err, codec.ErrUnknownFormat)

	_, err = codec.FormatOf("graph.csv")
	require.ErrorIs(t, err, codec.ErrUnknownFormat)

	_, _, err = codec.ToGraph(nil)
	require.ErrorIs(t, err, codec.ErrMalformed)

	dup := &codec.Document{Nodes: []core.Vertex{{ID: "a"}, {ID: "a"}}}
	_, _, err = codec.ToGraph(dup, quiet())
	require.ErrorIs(t, err, core.ErrDuplicateNode)
}

func TestLoadConfig_TOML(t *testing.T) {
	cfg, err := codec.LoadConfig(filepath.Join("testdata", "analysis.toml"))
	require.NoError(t, err)
	require.Equal(t, "leiden", cfg.Community.Algorithm)
	require.Equal(t, 1.2, cfg.Community.Resolution)
	require.NotNil(t, cfg.Community.Seed)
	require.Equal(t, int64(7), *cfg.Community.Seed)
	require.Len(t, cfg.Community.Options(), 3)

	require.Equal(t, []string{"cites"}, cfg.Path.Relations)
	require.Len(t, cfg.Path.Options(), 3)

	o := dijkstra.DefaultOptions()
	for _, opt := range cfg.Path.Options() {
		opt(&o)
	}
	require.Equal(t, "score", o.WeightProperty)
	require.True(t, o.InvertWeight)
	require.Equal(t, core.Both, o.Direction)

	co := community.DefaultOptions()
	for _, opt := range cfg.Community.Options() {
		opt(&co)
	}
	require.Equal(t, 50, co.MaxIterations)
	require.Equal(t, int64(7), co.Seed)
}

func TestLoadConfig_YAML(t *testing.T) {
	cfg, err := codec.LoadConfig(filepath.Join("testdata", "analysis.yaml"))
	require.NoError(t, err)
	require.Equal(t, "hierarchical", cfg.Community.Algorithm)
	require.Equal(t, "average", cfg.Community.Linkage)
	require.Equal(t, 2, cfg.Community.K)
	require.Empty(t, cfg.Community.Options(), "zero values keep the defaults")
}

func TestParseConfig_Errors(t *testing.T) {
	cases := map[string]struct {
		data string
		f    codec.Format
	}{
		"unknown algorithm":  {"[community]\nalgorithm = \"kmeans\"\n", codec.TOML},
		"teleport range":     {"[community]\nteleportation = 1.0\n", codec.TOML},
		"unknown toml key":   {"[community]\ncolour = \"red\"\n", codec.TOML},
		"bad toml":           {"[community\n", codec.TOML},
		"unknown yaml key":   {"community:\n  colour: red\n", codec.YAML},
		"bad direction":      {"path:\n  direction: sideways\n", codec.YAML},
		"negative distance":  {"path:\n  max_distance: -1\n", codec.YAML},
		"negative iteration": {"community:\n  max_iterations: -3\n", codec.YAML},
	}
	for name, tc := range cases {
		_, err := codec.ParseConfig([]byte(tc.data), tc.f)
		require.ErrorIs(t, err, codec.ErrMalformed, name)
	}

	_, err := codec.ParseConfig(nil, codec.JSON)
	require.ErrorIs(t, err, codec.ErrUnknownFormat)

	cfg, err := codec.ParseConfig(nil, codec.YAML)
	require.NoError(t, err, "an empty file is a valid config")
	require.Empty(t, cfg.Community.Algorithm)
}
