// Package core: Graph method implementations.
//
// Mutators confine their side effects to the receiver and either apply
// fully or not at all: every validation happens before the first write.
// Queries return fresh slices and copies so callers can never alias or
// corrupt internal state.

package core

import (
	"fmt"
	"strconv"
)

const edgeIDPrefix = "e"

// AddVertex inserts a vertex with the given ID.
// Adding an existing vertex is a no-op (idempotent).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}
	g.vertexOrder = append(g.vertexOrder, id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and cascades removal of all incident
// edges. Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(V + E) worst case.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	// Cascade: drop every edge touching id.
	for _, eid := range append([]string(nil), g.edgeOrder...) {
		e := g.edges[eid]
		if e.From == id || e.To == id {
			g.unlinkEdge(eid)
		}
	}

	delete(g.vertices, id)
	delete(g.adjacency, id)
	g.vertexOrder = removeString(g.vertexOrder, id)

	return nil
}

// AddEdge inserts an edge between u and v in an unweighted graph and
// returns its edge ID. On weighted graphs it fails with ErrWeightRequired;
// use AddWeightedEdge instead.
// Both endpoints must already exist (ErrVertexNotFound otherwise); the
// graph is left unchanged on any failure.
//
// In a simple (non-multigraph) graph a duplicate edge is idempotent when
// undirected and returns the existing edge's ID.
// Complexity: O(deg) for the duplicate check, O(1) otherwise.
func (g *Graph) AddEdge(u, v string) (string, error) {
	if g.tag.Weighted {
		return "", fmt.Errorf("%w: edge %s-%s", ErrWeightRequired, u, v)
	}

	return g.addEdge(u, v, 0)
}

// AddWeightedEdge inserts an edge with the given weight in a weighted
// graph and returns its edge ID. On unweighted graphs it fails with
// ErrWeightNotAllowed.
// Both endpoints must already exist (ErrVertexNotFound otherwise); the
// graph is left unchanged on any failure.
//
// In a simple (non-multigraph) graph a duplicate undirected edge is
// idempotent (the original weight is kept), while a duplicate directed
// edge replaces the stored weight.
// Complexity: O(deg) for the duplicate check, O(1) otherwise.
func (g *Graph) AddWeightedEdge(u, v string, weight int64) (string, error) {
	if !g.tag.Weighted {
		return "", fmt.Errorf("%w: edge %s-%s weight=%d", ErrWeightNotAllowed, u, v, weight)
	}

	return g.addEdge(u, v, weight)
}

// addEdge is the shared insertion path. weight is meaningful only for
// weighted graphs; unweighted graphs store zero and report UnitWeight.
func (g *Graph) addEdge(u, v string, weight int64) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[u]; !ok {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	if _, ok := g.vertices[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}

	// Simple graphs hold at most one edge per (ordered or unordered) pair.
	if !g.tag.Multigraph {
		if prev := g.findEdge(u, v); prev != nil {
			if g.tag.Directed {
				// Directed duplicate: replace the stored weight.
				prev.Weight = weight
			}
			// Undirected duplicate: idempotent.
			return prev.ID, nil
		}
	}

	g.nextEdgeID++
	eid := edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: u, To: v, Weight: weight}
	g.edgeOrder = append(g.edgeOrder, eid)

	g.adjacency[u] = append(g.adjacency[u], eid)
	if !g.tag.Directed && u != v {
		g.adjacency[v] = append(g.adjacency[v], eid)
	}

	return eid, nil
}

// RemoveEdge deletes every edge between u and v: the u→v edges for a
// directed graph, either orientation for an undirected one. In a
// multigraph all parallel edges between the pair are removed.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(E) worst case.
func (g *Graph) RemoveEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := false
	for _, eid := range append([]string(nil), g.edgeOrder...) {
		if g.connects(g.edges[eid], u, v) {
			g.unlinkEdge(eid)
			removed = true
		}
	}
	if !removed {
		return fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, u, v)
	}

	return nil
}

// RemoveEdgeByID deletes the single edge with the given ID, which is the
// precise way to remove one of several parallel edges in a multigraph.
// Returns ErrEdgeNotFound if the ID is unknown.
// Complexity: O(deg + E) worst case.
func (g *Graph) RemoveEdgeByID(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[eid]; !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, eid)
	}
	g.unlinkEdge(eid)

	return nil
}

// HasEdge reports whether at least one edge connects u to v
// (u→v for directed graphs, either orientation for undirected).
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.findEdge(u, v) != nil
}

// EdgeWeight returns the weight of the first-inserted edge connecting u
// to v, or ErrEdgeNotFound. Unweighted graphs report UnitWeight.
// Complexity: O(deg(u)).
func (g *Graph) EdgeWeight(u, v string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e := g.findEdge(u, v)
	if e == nil {
		return 0, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, u, v)
	}

	return g.reportWeight(e), nil
}

// Neighbors produces the adjacency sequence of id in edge insertion
// order: one (neighbor, weight, edgeID) entry per traversable edge.
// Directed graphs list outgoing edges only; undirected graphs list all
// incident edges. Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(deg).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	eids := g.adjacency[id]
	out := make([]Neighbor, 0, len(eids))
	for _, eid := range eids {
		e := g.edges[eid]
		nbr := e.To
		if e.To == id && e.From != id {
			nbr = e.From
		}
		out = append(out, Neighbor{ID: nbr, Weight: g.reportWeight(e), EdgeID: eid})
	}

	return out, nil
}

// NeighborIDs returns the distinct adjacent vertex IDs of id in
// first-seen (edge insertion) order.
// Complexity: O(deg).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(nbrs))
	ids := make([]string, 0, len(nbrs))
	for _, n := range nbrs {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		ids = append(ids, n.ID)
	}

	return ids, nil
}

// Degree returns the number of edges incident to id. For directed graphs
// this is out-degree plus in-degree; a self-loop counts twice.
// Complexity: O(deg) undirected, O(E) directed.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	deg := 0
	if g.tag.Directed {
		for _, e := range g.edges {
			if e.From == id {
				deg++
			}
			if e.To == id {
				deg++
			}
		}
	} else {
		for _, eid := range g.adjacency[id] {
			deg++
			if e := g.edges[eid]; e.From == e.To {
				deg++ // self-loop contributes both endpoints
			}
		}
	}

	return deg, nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.vertexOrder...)
}

// Edges returns snapshots of all edges in insertion order.
// Unweighted graphs report UnitWeight on every edge.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		out = append(out, Edge{ID: e.ID, From: e.From, To: e.To, Weight: g.reportWeight(e)})
	}

	return out
}

// EdgesBetween returns snapshots of every edge connecting u to v in
// insertion order (all parallel edges for a multigraph).
// Complexity: O(deg(u)).
func (g *Graph) EdgesBetween(u, v string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for _, eid := range g.adjacency[u] {
		e := g.edges[eid]
		if g.connects(e, u, v) {
			out = append(out, Edge{ID: e.ID, From: e.From, To: e.To, Weight: g.reportWeight(e)})
		}
	}

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// CloneEmpty returns a new Graph with the same TypeTag and vertex set
// but no edges. Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraphOf(g.tag)
	clone.vertexOrder = append([]string(nil), g.vertexOrder...)
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}

	return clone
}

// Clone returns a deep, independent copy of the Graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	clone.nextEdgeID = g.nextEdgeID
	clone.edgeOrder = append([]string(nil), g.edgeOrder...)
	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
	}
	for id, eids := range g.adjacency {
		clone.adjacency[id] = append([]string(nil), eids...)
	}

	return clone
}

// Internal helpers. Callers must hold the appropriate lock.

// findEdge returns the first-inserted edge connecting u to v, or nil.
func (g *Graph) findEdge(u, v string) *Edge {
	for _, eid := range g.adjacency[u] {
		if e := g.edges[eid]; g.connects(e, u, v) {
			return e
		}
	}

	return nil
}

// connects reports whether e links u to v under the graph's orientation
// rules: exact match for directed graphs, either orientation otherwise.
func (g *Graph) connects(e *Edge, u, v string) bool {
	if e.From == u && e.To == v {
		return true
	}

	return !g.tag.Directed && e.From == v && e.To == u
}

// reportWeight normalizes the stored weight for queries: unweighted
// graphs always report UnitWeight.
func (g *Graph) reportWeight(e *Edge) int64 {
	if !g.tag.Weighted {
		return UnitWeight
	}

	return e.Weight
}

// unlinkEdge removes eid from the catalog, the order slice, and both
// adjacency lists.
func (g *Graph) unlinkEdge(eid string) {
	e := g.edges[eid]
	delete(g.edges, eid)
	g.edgeOrder = removeString(g.edgeOrder, eid)
	g.adjacency[e.From] = removeString(g.adjacency[e.From], eid)
	if e.To != e.From {
		g.adjacency[e.To] = removeString(g.adjacency[e.To], eid)
	}
}

// removeString drops every occurrence of val from s preserving order.
func removeString(s []string, val string) []string {
	out := s[:0]
	for _, x := range s {
		if x != val {
			out = append(out, x)
		}
	}

	return out
}
