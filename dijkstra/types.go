// SPDX-License-Identifier: MIT
// Package dijkstra defines the path result, weight resolution and filter
// options for Dijkstra's shortest-path algorithm.

package dijkstra

import (
	"context"
	"fmt"
	"math"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Epsilon floors property values before inversion so that a zero score maps
// to a large but finite weight.
const Epsilon = 1e-9

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = core.ErrNilGraph

	// ErrVertexNotFound indicates that the source or target does not exist.
	ErrVertexNotFound = fmt.Errorf("dijkstra: vertex not found: %w", core.ErrNodeNotFound)

	// ErrNegativeWeight indicates a traversable edge resolved to a negative
	// or NaN weight. It matches core.ErrInvalidInput.
	ErrNegativeWeight = fmt.Errorf("dijkstra: negative or NaN edge weight: %w", core.ErrInvalidInput)

	// ErrBadOption indicates an invalid option value. It matches core.ErrInvalidInput.
	ErrBadOption = fmt.Errorf("dijkstra: invalid option: %w", core.ErrInvalidInput)
)

// Path is the outcome of a single-pair search.
//
// An unreachable target gives Found=false, Distance=+Inf and empty Nodes and
// Edges; that is a normal result, not an error.
type Path struct {
	Found    bool
	Nodes    []string // source ... target
	Edges    []string // edge ids, len(Nodes)-1 of them
	Distance float64
}

// EdgePredicate is a payload-agnostic edge filter. The predicate builders in
// this package return it so they work with any edge payload.
type EdgePredicate = func(e core.EdgeData) bool

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Options configures the search.
//
// Weight precedence: a weight function beats a weight property, which beats
// the edge's own core.Weighted weight (DefaultWeight when absent).
type Options struct {
	// Ctx is checked once per settled vertex.
	Ctx context.Context

	// Direction selects which incident edges are relaxed (default core.Out).
	// Undirected graphs always relax both ways.
	Direction core.Direction

	// MaxDistance stops the search at this distance. Default +Inf.
	MaxDistance float64

	// NodeTypes, when non-empty, restricts the search to nodes whose
	// core.Typed tag is listed. Untyped nodes are excluded.
	NodeTypes []string

	// WeightProperty names a numeric edge property to use as the weight.
	// Edges lacking it weigh core.DefaultWeight.
	WeightProperty string

	// InvertWeight turns a property value v into 1/max(v, Epsilon), so that
	// higher scores give shorter paths.
	InvertWeight bool

	weightFn any   // func(E) float64 or func(core.EdgeData) float64
	filters  []any // func(E) bool or EdgePredicate
	err      error
}

// DefaultOptions returns Options with background context, outgoing
// direction, no distance cap, no filters and edge weights as reported by
// the payload.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Direction:   core.Out,
		MaxDistance: math.Inf(1),
	}
}

// WithContext sets a cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection relaxes edges in dir.
func WithDirection(dir core.Direction) Option {
	return func(o *Options) {
		switch dir {
		case core.Out, core.In, core.Both:
			o.Direction = dir
		default:
			o.err = fmt.Errorf("%w: unknown direction %d", ErrBadOption, dir)
		}
	}
}

// WithMaxDistance stops the search once the closest unsettled vertex lies
// farther than d. d must be non-negative.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative, got %v", ErrBadOption, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithWeightFunc sets a custom weight function. It takes precedence over
// every other weight source. fn must accept the graph's edge payload type or
// core.EdgeData.
func WithWeightFunc[E core.EdgeData](fn func(E) float64) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil weight function", ErrBadOption)
			return
		}
		o.weightFn = fn
	}
}

// WithWeightProperty weighs each edge by the numeric property key, inverted
// as 1/max(v, Epsilon) when invert is true.
func WithWeightProperty(key string, invert bool) Option {
	return func(o *Options) {
		if key == "" {
			o.err = fmt.Errorf("%w: empty weight property", ErrBadOption)
			return
		}
		o.WeightProperty = key
		o.InvertWeight = invert
	}
}

// WithNodeTypes restricts traversal to nodes of the listed types: an edge is
// usable only when both endpoints carry one of them.
func WithNodeTypes(types ...string) Option {
	return func(o *Options) {
		o.NodeTypes = append(o.NodeTypes, types...)
	}
}

// WithEdgeFilter keeps only edges for which pred returns true. Filters
// accumulate; an edge must pass all of them. pred must accept the graph's
// edge payload type or core.EdgeData.
func WithEdgeFilter[E core.EdgeData](pred func(E) bool) Option {
	return func(o *Options) {
		if pred == nil {
			o.err = fmt.Errorf("%w: nil edge filter", ErrBadOption)
			return
		}
		o.filters = append(o.filters, pred)
	}
}

// PropertyAtLeast accepts edges whose numeric property key is at least min.
// Edges without the property are rejected.
func PropertyAtLeast(key string, min float64) EdgePredicate {
	return func(e core.EdgeData) bool {
		v, ok := core.NumericProperty(e, key)
		return ok && v >= min
	}
}

// PropertyEquals accepts edges whose property key equals value.
func PropertyEquals(key string, value any) EdgePredicate {
	return func(e core.EdgeData) bool {
		v, ok := core.PropertyOf(e, key)
		return ok && v == value
	}
}

// RelationIs accepts edges whose "relation" property is one of rels.
func RelationIs(rels ...string) EdgePredicate {
	set := make(map[string]struct{}, len(rels))
	for _, r := range rels {
		set[r] = struct{}{}
	}
	return func(e core.EdgeData) bool {
		v, ok := core.PropertyOf(e, "relation")
		if !ok {
			return false
		}
		s, _ := v.(string)
		_, hit := set[s]
		return hit
	}
}
