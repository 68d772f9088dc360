// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Graph is the graph type every constructor fills.
type Graph = core.Graph[core.Vertex, core.Edge]

// Constructor applies a deterministic mutation to g using the resolved
// configuration. Constructors validate their parameters before touching g
// and never panic.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped as
// "BuildGraph: ..."; no partial cleanup is attempted.
//
// Complexity: Σ cost of cons.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := core.NewGraph[core.Vertex, core.Edge](gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}
