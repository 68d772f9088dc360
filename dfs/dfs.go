// SPDX-License-Identifier: MIT
// Package dfs implements depth-first search (single-source and forest) on core.Graph.

package dfs

import (
	"fmt"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[N core.VertexData, E core.EdgeData] struct {
	graph *core.Graph[N, E]
	opts  DFSOptions
	res   *DFSResult
	clock int
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers every component, taking roots in insertion order, and startID may be
// empty; otherwise it starts only from startID.
//
// Neighbours are explored in edge insertion order, so the result is
// reproducible. On a hook error or cancellation the partial result is
// returned alongside the error.
//
// Complexity: O(V + E)
func DFS[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.NodeCount()
	res := &DFSResult{
		Order:     make([]string, 0, n),
		Preorder:  make([]string, 0, n),
		Depth:     make(map[string]int, n),
		Parent:    make(map[string]string, n),
		Discovery: make(map[string]int, n),
		Finish:    make(map[string]int, n),
		Visited:   make(map[string]bool, n),
	}
	w := &dfsWalker[N, E]{graph: g, opts: dopts, res: res}

	if !dopts.FullTraversal {
		return res, w.traverse(startID, 0)
	}
	if startID != "" && g.HasNode(startID) {
		if err := w.traverse(startID, 0); err != nil {
			return res, err
		}
	}
	for _, v := range g.NodeIDs() {
		if res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return res, err
		}
	}
	return res, nil
}

// dfsFrame is one vertex on the explicit DFS stack.
type dfsFrame struct {
	id    string
	depth int
	nbrs  []string
	next  int
}

// traverse runs DFS from root on an explicit stack, so long citation chains
// do not exhaust the goroutine stack.
func (w *dfsWalker[N, E]) traverse(root string, depth int) error {
	start, err := w.enter(root, depth)
	if err != nil {
		return err
	}
	stack := []dfsFrame{start}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next < len(f.nbrs) {
			nid := f.nbrs[f.next]
			f.next++
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.res.SkippedNeighbors++
				continue
			}
			w.res.Parent[nid] = f.id
			child, err := w.enter(nid, f.depth+1)
			if err != nil {
				return err
			}
			stack = append(stack, child)
			continue
		}

		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(f.id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %q: %w", f.id, err)
			}
		}
		w.res.Finish[f.id] = w.clock
		w.clock++
		w.res.Order = append(w.res.Order, f.id)
		stack = stack[:len(stack)-1]
	}
	return nil
}

// enter discovers id and returns its frame with the neighbours left to explore.
func (w *dfsWalker[N, E]) enter(id string, depth int) (dfsFrame, error) {
	select {
	case <-w.opts.Ctx.Done():
		return dfsFrame{}, w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Discovery[id] = w.clock
	w.clock++
	w.res.Preorder = append(w.res.Preorder, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return dfsFrame{}, fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	f := dfsFrame{id: id, depth: depth}
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		f.nbrs = w.graph.Neighbors(id, w.opts.Direction)
	}
	return f, nil
}
