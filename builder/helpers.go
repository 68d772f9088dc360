// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// addVertices inserts ids idFn(offset..offset+n-1) and returns them. Ids
// already present are reused.
func addVertices(g *Graph, method string, idFn IDFn, offset, n int, typ string) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		id := idFn(offset + i)
		ids[i] = id
		if g.HasNode(id) {
			continue
		}
		if err := g.AddNode(core.Vertex{ID: id, Type: typ}); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %v: %w", method, id, err, ErrConstructFailed)
		}
	}
	return ids, nil
}

// addEdge emits src→dst with the given relation.
func addEdge(g *Graph, cfg builderConfig, method, src, dst, relation string) error {
	return emit(g, cfg, method, core.Edge{Source: src, Target: dst, Relation: relation})
}

// emit assigns the next sequential edge id and, when a weight function is
// configured, a drawn weight, then adds e.
func emit(g *Graph, cfg builderConfig, method string, e core.Edge) error {
	e.ID = "e" + strconv.Itoa(g.EdgeCount())
	if cfg.weightFn != nil {
		w := cfg.weightFn(cfg.rng)
		e.Weight = &w
	}
	if err := g.AddEdge(e); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %v: %w", method, e.Source, e.Target, err, ErrConstructFailed)
	}
	return nil
}

// requireMin rejects n < minimum.
func requireMin(method, param string, n, minimum int) error {
	if n < minimum {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, n, minimum, ErrTooFewVertices)
	}
	return nil
}

func wrapNeedRand(method string) error {
	return fmt.Errorf("%s: use WithSeed or WithRand: %w", method, ErrNeedRandSource)
}
