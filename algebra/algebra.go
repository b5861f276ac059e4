// Package algebra: operation implementations.
//
// All operations work off core.Graph snapshot queries (Vertices, Edges)
// and build results through the ordinary mutation API, so insertion
// order in results is deterministic: operand A's elements first, then
// operand B's.

package algebra

import (
	"fmt"

	"github.com/mbelenko/grafo/core"
)

// Union returns the graph with vertex set A∪B and edge set A∪B.
// If both operands define the same edge with different weights, Union
// fails with ErrWeightConflict.
// Complexity: O(V + E·deg).
func Union(a, b *core.Graph) (*core.Graph, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	return merge(a, b)
}

// Join is graph addition over disjoint vertex namespaces: vertex set
// A∪B and edge set A∪B, with the same conflict policy as Union. Callers
// whose operands share vertex identifiers must rename beforehand (or
// accept Union semantics on the overlap).
// Complexity: O(V + E·deg).
func Join(a, b *core.Graph) (*core.Graph, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	return merge(a, b)
}

// Intersection returns the graph with vertex set A∩B and exactly the
// edges present in both operands (matching endpoints, and matching
// weight when weighted). For multigraphs, parallel edges intersect as a
// multiset: min(countA, countB) copies survive.
// Complexity: O(V + E).
func Intersection(a, b *core.Graph) (*core.Graph, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	out := core.NewGraphOf(a.Type())
	for _, id := range a.Vertices() {
		if !b.HasVertex(id) {
			continue
		}
		if err := out.AddVertex(id); err != nil {
			return nil, err
		}
	}

	quota := edgeMultiset(b)
	for _, e := range a.Edges() {
		if !out.HasVertex(e.From) || !out.HasVertex(e.To) {
			continue
		}
		k := edgeKey(a, e)
		if quota[k] == 0 {
			continue
		}
		quota[k]--
		if err := copyEdge(out, e); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Difference returns the graph with A's vertex set (vertices are never
// removed) and A's edges minus every edge also present in B with the
// same endpoints and, when weighted, the same weight. Parallel edges
// subtract as a multiset.
// Complexity: O(V + E).
func Difference(a, b *core.Graph) (*core.Graph, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	out := a.CloneEmpty()
	subtract := edgeMultiset(b)
	for _, e := range a.Edges() {
		k := edgeKey(a, e)
		if subtract[k] > 0 {
			subtract[k]--
			continue
		}
		if err := copyEdge(out, e); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Equal reports whether a and b have identical TypeTags, vertex sets,
// and edge sets (weights included; parallel edges compared as
// multisets). Two nil graphs are equal.
// Complexity: O(V + E).
func Equal(a, b *core.Graph) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() {
		return false
	}
	if a.VertexCount() != b.VertexCount() || a.EdgeCount() != b.EdgeCount() {
		return false
	}
	for _, id := range a.Vertices() {
		if !b.HasVertex(id) {
			return false
		}
	}

	quota := edgeMultiset(b)
	for _, e := range a.Edges() {
		k := edgeKey(a, e)
		if quota[k] == 0 {
			return false
		}
		quota[k]--
	}

	return true
}

// NotEqual is the logical negation of Equal.
func NotEqual(a, b *core.Graph) bool { return !Equal(a, b) }

// checkOperands gates every binary operation: non-nil operands with
// identical TypeTags.
func checkOperands(a, b *core.Graph) error {
	if a == nil || b == nil {
		return ErrNilGraph
	}
	if a.Type() != b.Type() {
		return fmt.Errorf("%w: %+v vs %+v", ErrTypeMismatch, a.Type(), b.Type())
	}

	return nil
}

// merge implements the shared Union/Join edge policy: all of A, then
// all of B, failing on weight conflicts between simple weighted graphs.
// Multigraphs keep every parallel edge from both operands.
func merge(a, b *core.Graph) (*core.Graph, error) {
	out := core.NewGraphOf(a.Type())
	for _, id := range a.Vertices() {
		if err := out.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, id := range b.Vertices() {
		if err := out.AddVertex(id); err != nil {
			return nil, err
		}
	}

	for _, e := range a.Edges() {
		if err := copyEdge(out, e); err != nil {
			return nil, err
		}
	}
	for _, e := range b.Edges() {
		if !out.Multigraph() && out.HasEdge(e.From, e.To) {
			w, err := out.EdgeWeight(e.From, e.To)
			if err != nil {
				return nil, err
			}
			if out.Weighted() && w != e.Weight {
				return nil, fmt.Errorf("%w: edge %s-%s has weight %d in A and %d in B",
					ErrWeightConflict, e.From, e.To, w, e.Weight)
			}
			// Same edge in both operands: keep A's copy.
			continue
		}
		if err := copyEdge(out, e); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// copyEdge inserts a snapshot edge into dst using the API matching dst's
// weightedness.
func copyEdge(dst *core.Graph, e core.Edge) error {
	var err error
	if dst.Weighted() {
		_, err = dst.AddWeightedEdge(e.From, e.To, e.Weight)
	} else {
		_, err = dst.AddEdge(e.From, e.To)
	}

	return err
}

// edgeKey canonicalizes an edge for set comparison: ordered endpoints
// for directed graphs, sorted endpoints otherwise, plus the weight
// (UnitWeight on unweighted graphs, so it never distinguishes).
func edgeKey(g *core.Graph, e core.Edge) string {
	u, v := e.From, e.To
	if !g.Directed() && v < u {
		u, v = v, u
	}

	return fmt.Sprintf("%s|%s|%d", u, v, e.Weight)
}

// edgeMultiset counts g's edges by canonical key.
func edgeMultiset(g *core.Graph) map[string]int {
	counts := make(map[string]int, g.EdgeCount())
	for _, e := range g.Edges() {
		counts[edgeKey(g, e)]++
	}

	return counts
}
