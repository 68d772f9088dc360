// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every algorithm package. Algorithms wrap them with
// context, so callers should branch with errors.Is.
var (
	// ErrNilGraph indicates a nil *Graph was passed to an algorithm.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrInvalidInput indicates a malformed option or argument (e.g. negative k).
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrEmptyGraph indicates the graph has zero nodes.
	ErrEmptyGraph = errors.New("core: graph is empty")

	// ErrInsufficientNodes indicates fewer nodes than an algorithm's structural minimum.
	ErrInsufficientNodes = errors.New("core: insufficient nodes")

	// ErrConvergenceFailure indicates an iteration cap was reached before the
	// improvement threshold. Algorithms report it through a partial result.
	ErrConvergenceFailure = errors.New("core: convergence failure")

	// ErrEdgeReferencesMissingNode indicates an edge whose source or target is absent.
	ErrEdgeReferencesMissingNode = errors.New("core: edge references missing node")

	// ErrNodeNotFound indicates a lookup of an absent node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates a node id was inserted twice.
	ErrDuplicateNode = errors.New("core: duplicate node id")

	// ErrDuplicateEdge indicates an edge id was inserted twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge id")

	// ErrEmptyNodeID indicates a node payload with an empty id.
	ErrEmptyNodeID = errors.New("core: node id is empty")

	// ErrEmptyEdgeID indicates an edge payload with an empty id.
	ErrEmptyEdgeID = errors.New("core: edge id is empty")
)

// ConvergenceError describes an iterative algorithm that stopped at its
// iteration cap. It matches ErrConvergenceFailure under errors.Is.
type ConvergenceError struct {
	Algorithm  string
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: no convergence after %d iterations", e.Algorithm, e.Iterations)
}

// Unwrap lets errors.Is match ErrConvergenceFailure.
func (e *ConvergenceError) Unwrap() error { return ErrConvergenceFailure }

// RequireNodes fails fast on degenerate inputs: nil graph, empty graph, or
// fewer than minNodes nodes.
func RequireNodes[N VertexData, E EdgeData](g *Graph[N, E], minNodes int) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.NodeCount()
	if n == 0 {
		return ErrEmptyGraph
	}
	if n < minNodes {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientNodes, n, minNodes)
	}
	return nil
}
