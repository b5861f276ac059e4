// Package dfs: topological sorting of directed acyclic graphs.
//
// TopologicalSort computes a linear order of vertices such that for
// every edge u→v, u appears before v. The order is the reversed DFS
// post-order over vertices in insertion order, so it is deterministic.
//
// Complexity: O(V + E) time, O(V) memory.

package dfs

import (
	"context"
	"fmt"

	"github.com/mbelenko/grafo/core"
)

// sorter encapsulates state for a topological sort traversal.
type sorter struct {
	graph *core.Graph
	ctx   context.Context
	state map[string]int
	order []string
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Returns ErrGraphNil for nil input, ErrNotDirected for undirected
// graphs, and ErrCycleDetected when a back edge makes the graph cyclic.
// WithContext is honored for cancellation; other options are ignored.
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	verts := g.Vertices()
	s := &sorter{
		graph: g,
		ctx:   o.Ctx,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order yields the topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit runs the cycle-aware DFS from id.
func (s *sorter) visit(id string) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	switch s.state[id] {
	case Gray:
		// Back edge: id is already on the recursion stack.
		return fmt.Errorf("%w: at %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	s.state[id] = Gray

	nbrs, err := s.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, n := range nbrs {
		if err = s.visit(n.ID); err != nil {
			return err
		}
	}

	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}
