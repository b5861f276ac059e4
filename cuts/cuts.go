// Package cuts finds the fragile spots of undirected graphs: bridges,
// whose removal disconnects their component, and articulation points,
// vertices whose removal does the same.
//
// Both queries share one Tarjan low-link DFS. Each vertex gets a
// discovery time and a low-link, the smallest discovery time reachable
// through its subtree plus at most one back edge. A tree edge (u,v) is
// a bridge iff low[v] > disc[u]; a non-root u is an articulation point
// iff some child v has low[v] >= disc[u]; the root is one iff it has
// more than one DFS child. Parallel edges are respected: only the
// exact arrival edge is excluded from back-edge consideration, so a
// doubled edge is never a bridge.
package cuts

import (
	"errors"
	"fmt"

	"github.com/mbelenko/grafo/core"
)

var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("cuts: nil graph")

	// ErrNotApplicable is returned for directed graphs; bridges and
	// articulation points are defined over undirected connectivity.
	ErrNotApplicable = errors.New("cuts: requires an undirected graph")
)

// Bridges returns every bridge of g, deepest DFS subtree first; the
// order is deterministic for a given graph.
//
// Complexity: O(V+E) time, O(V) space.
func Bridges(g *core.Graph) ([]core.Edge, error) {
	a, err := analyze(g)
	if err != nil {
		return nil, err
	}

	return a.bridges, nil
}

// ArticulationPoints returns every articulation point of g in the
// order the DFS proves them; deterministic for a given graph.
//
// Complexity: O(V+E) time, O(V) space.
func ArticulationPoints(g *core.Graph) ([]string, error) {
	a, err := analyze(g)
	if err != nil {
		return nil, err
	}

	return a.points, nil
}

// analyzer carries the low-link DFS state.
type analyzer struct {
	graph    *core.Graph
	disc     map[string]int
	low      map[string]int
	clock    int
	edgeByID map[string]core.Edge
	bridges  []core.Edge
	points   []string
	isPoint  map[string]bool
}

// analyze runs the shared DFS over every component.
func analyze(g *core.Graph) (*analyzer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrNotApplicable
	}

	a := &analyzer{
		graph:    g,
		disc:     make(map[string]int, g.VertexCount()),
		low:      make(map[string]int, g.VertexCount()),
		edgeByID: make(map[string]core.Edge, g.EdgeCount()),
		isPoint:  make(map[string]bool),
	}
	for _, e := range g.Edges() {
		a.edgeByID[e.ID] = e
	}
	for _, v := range g.Vertices() {
		if _, seen := a.disc[v]; !seen {
			if err := a.visit(v, ""); err != nil {
				return nil, err
			}
		}
	}

	return a, nil
}

// visit explores v; arrivalEdge is the tree edge the DFS entered
// through, empty at component roots.
func (a *analyzer) visit(v, arrivalEdge string) error {
	a.clock++
	a.disc[v] = a.clock
	a.low[v] = a.clock

	children := 0
	nbrs, err := a.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("cuts: neighbors of %q: %w", v, err)
	}
	for _, n := range nbrs {
		if n.EdgeID == arrivalEdge || n.ID == v {
			continue // tree edge back up, or a self-loop
		}
		if d, seen := a.disc[n.ID]; seen {
			if d < a.low[v] {
				a.low[v] = d // back edge
			}
			continue
		}

		children++
		if err = a.visit(n.ID, n.EdgeID); err != nil {
			return err
		}
		if a.low[n.ID] < a.low[v] {
			a.low[v] = a.low[n.ID]
		}
		if a.low[n.ID] > a.disc[v] {
			a.bridges = append(a.bridges, a.edgeByID[n.EdgeID])
		}
		if arrivalEdge != "" && a.low[n.ID] >= a.disc[v] {
			a.markPoint(v)
		}
	}
	if arrivalEdge == "" && children > 1 {
		a.markPoint(v)
	}

	return nil
}

// markPoint records v once, keeping discovery order.
func (a *analyzer) markPoint(v string) {
	if !a.isPoint[v] {
		a.isPoint[v] = true
		a.points = append(a.points, v)
	}
}
