// Package dfs implements depth-first search (single-source and forest)
// on core.Graph, with cancellation, pre-/post-order hooks, depth limits,
// and neighbor filtering.
//
// Neighbors are explored in edge insertion order, so traversals are
// deterministic. Directed graphs are explored along edge direction only.
//
// Complexity: O(V + E) time, O(V) memory (recursion stack and maps).
package dfs

import (
	"fmt"

	"github.com/mbelenko/grafo/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from startID. With
// WithFullTraversal it covers all components and startID may be empty.
// Returns the traversal result, or an error from cancellation or a hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}

	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if !w.res.Visited[v] {
				if err := w.traverse(v, 0); err != nil {
					return w.res, err
				}
			}
		}
	} else if err := w.traverse(startID, 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// traverse visits id at the given depth, recursing into unvisited
// neighbors in insertion order.
func (w *walker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, n := range nbrs {
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			break
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(n.ID) {
			continue
		}
		if !w.res.Visited[n.ID] {
			w.res.Parent[n.ID] = id
			if err = w.traverse(n.ID, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	return nil
}
