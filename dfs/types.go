// SPDX-License-Identifier: MIT
// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.

package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants are finished.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// TopologicalSort, or DetectCycle.
	ErrGraphNil = core.ErrNilGraph

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex not found: %w", core.ErrNodeNotFound)

	// ErrCycleDetected indicates that TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph indicates an operation that needs edge orientation
	// was given an undirected graph. It matches core.ErrInvalidInput.
	ErrUndirectedGraph = fmt.Errorf("dfs: directed graph required: %w", core.ErrInvalidInput)
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Direction selects which incident edges are followed (default core.Out).
	// Undirected graphs always follow both.
	Direction core.Direction

	// OnVisit, if non-nil, is invoked on discovery (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants are explored
	// (post-order), before appending to result.Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before descending.
	// Return false to skip that neighbor.
	FilterNeighbor func(id string) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex in
	// insertion order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with a background context,
// outgoing direction, no hooks, no depth limit, no filtering and
// single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:       context.Background(),
		Direction: core.Out,
		MaxDepth:  -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection follows edges in dir.
func WithDirection(dir core.Direction) Option {
	return func(o *DFSOptions) {
		o.Direction = dir
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbor IDs. Skipped neighbors are counted in
// DFSResult.SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables full-graph (forest) traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Preorder records vertices in the sequence they were discovered.
	Preorder []string

	// Depth maps each vertex ID to its tree depth from its root.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was discovered from.
	// Tree roots do not appear.
	Parent map[string]string

	// Discovery and Finish hold the timestamps of entering and leaving each
	// vertex. One clock ticks for both, so for any u and v the intervals
	// [Discovery, Finish] are either nested or disjoint.
	Discovery map[string]int
	Finish    map[string]int

	// Visited flags which vertices were reached.
	Visited map[string]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// IsAncestor reports whether u is a proper ancestor of v in the DFS forest,
// using the parenthesis property of the timestamps.
func (r *DFSResult) IsAncestor(u, v string) bool {
	du, okU := r.Discovery[u]
	dv, okV := r.Discovery[v]
	if !okU || !okV || u == v {
		return false
	}
	return du < dv && r.Finish[v] < r.Finish[u]
}
