package cycles

import (
	"fmt"

	"github.com/mbelenko/grafo/core"
)

// Vertex DFS states for directed cycle detection.
const (
	white = iota // unvisited
	gray         // on the recursion stack
	black        // fully explored
)

// HasCycle reports whether g contains a cycle. Directed graphs use
// back-edge detection: an edge into a vertex still on the recursion
// stack closes a cycle. Undirected graphs detect an edge to an
// already visited vertex that is not the edge the search arrived by,
// which also counts parallel edges and self-loops as cycles.
//
// Complexity: O(V+E) time, O(V) space.
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}

	d := &detector{
		graph: g,
		state: make(map[string]int, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		if d.state[v] != white {
			continue
		}
		found, err := d.visit(v, "")
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}

type detector struct {
	graph *core.Graph
	state map[string]int
}

// visit explores v's component; arrivalEdge is the edge ID the search
// entered v through, empty at component roots.
func (d *detector) visit(v, arrivalEdge string) (bool, error) {
	d.state[v] = gray
	nbrs, err := d.graph.Neighbors(v)
	if err != nil {
		return false, fmt.Errorf("cycles: neighbors of %q: %w", v, err)
	}
	for _, n := range nbrs {
		if d.graph.Directed() {
			switch d.state[n.ID] {
			case gray:
				return true, nil // back edge
			case white:
				if found, err := d.visit(n.ID, n.EdgeID); err != nil || found {
					return found, err
				}
			}
			continue
		}

		// Undirected: any edge other than the arrival edge that leads
		// to a visited vertex closes a cycle. Parallel edges and
		// self-loops qualify.
		if n.EdgeID == arrivalEdge {
			continue
		}
		if d.state[n.ID] != white {
			return true, nil
		}
		if found, err := d.visit(n.ID, n.EdgeID); err != nil || found {
			return found, err
		}
	}
	d.state[v] = black

	return false, nil
}
