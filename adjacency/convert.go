// Package adjacency: graph-variant converters.

package adjacency

import (
	"fmt"

	"github.com/mbelenko/grafo/core"
)

// AsUnweighted rebuilds a weighted graph as its unweighted counterpart:
// same vertices, same edges in insertion order (parallel edges of a
// multigraph survive one-for-one), weights dropped. The source must be
// weighted, otherwise ErrVariantMismatch. Complexity: O(V + E).
func AsUnweighted(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, fmt.Errorf("%w: AsUnweighted needs a weighted source", ErrVariantMismatch)
	}

	tag := g.Type()
	tag.Weighted = false

	return rebuild(g, tag, func(core.Edge) int64 { return 0 })
}

// AsWeighted rebuilds an unweighted graph as its weighted counterpart,
// assigning defaultWeight to every edge. The source must be unweighted,
// otherwise ErrVariantMismatch. Complexity: O(V + E).
func AsWeighted(g *core.Graph, defaultWeight int64) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Weighted() {
		return nil, fmt.Errorf("%w: AsWeighted needs an unweighted source", ErrVariantMismatch)
	}

	tag := g.Type()
	tag.Weighted = true

	return rebuild(g, tag, func(core.Edge) int64 { return defaultWeight })
}

// AsUndirected rebuilds a directed graph as its undirected counterpart.
// In a multigraph every arc becomes its own undirected edge, so a
// reciprocal pair u→v, v→u turns into two parallel edges. In a simple
// graph the pair collapses into one edge; if the two arcs carry
// different weights the conversion fails with ErrReciprocalConflict.
// The source must be directed, otherwise ErrVariantMismatch.
// Complexity: O(V + E).
func AsUndirected(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, fmt.Errorf("%w: AsUndirected needs a directed source", ErrVariantMismatch)
	}

	tag := g.Type()
	tag.Directed = false

	out := core.NewGraphOf(tag)
	for _, id := range g.Vertices() {
		if err := out.AddVertex(id); err != nil {
			return nil, fmt.Errorf("adjacency: AsUndirected vertex %q: %w", id, err)
		}
	}

	seen := make(map[[2]string]int64)
	for _, e := range g.Edges() {
		if !tag.Multigraph {
			u, v := e.From, e.To
			if v < u {
				u, v = v, u
			}
			key := [2]string{u, v}
			if w, ok := seen[key]; ok {
				if tag.Weighted && w != e.Weight {
					return nil, fmt.Errorf("%w: %s-%s (%d vs %d)",
						ErrReciprocalConflict, u, v, w, e.Weight)
				}
				// Reciprocal arc of an edge already added.
				continue
			}
			seen[key] = e.Weight
		}
		if err := copyArc(out, e, tag.Weighted); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// rebuild reproduces g's vertices and edges in insertion order into a
// fresh graph of the given tag, taking each edge's weight from pick.
func rebuild(g *core.Graph, tag core.TypeTag, pick func(core.Edge) int64) (*core.Graph, error) {
	out := core.NewGraphOf(tag)
	for _, id := range g.Vertices() {
		if err := out.AddVertex(id); err != nil {
			return nil, fmt.Errorf("adjacency: convert vertex %q: %w", id, err)
		}
	}
	for _, e := range g.Edges() {
		e.Weight = pick(e)
		if err := copyArc(out, e, tag.Weighted); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func copyArc(dst *core.Graph, e core.Edge, weighted bool) error {
	var err error
	if weighted {
		_, err = dst.AddWeightedEdge(e.From, e.To, e.Weight)
	} else {
		_, err = dst.AddEdge(e.From, e.To)
	}
	if err != nil {
		return fmt.Errorf("adjacency: convert edge %s-%s: %w", e.From, e.To, err)
	}

	return nil
}
