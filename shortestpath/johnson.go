package shortestpath

import (
	"container/heap"
	"fmt"

	"github.com/mbelenko/grafo/core"
)

// Johnson computes all-pairs shortest distances on sparse graphs with
// negative edge weights. A Bellman-Ford pass from a virtual source
// produces vertex potentials h; every arc u→v is reweighted to
// w + h[u] - h[v] ≥ 0, after which one Dijkstra per vertex recovers
// the true distances. A negative cycle surfaces in the reweighting
// pass as ErrNegativeCycle.
//
// Complexity: O(V·E + V·(V+E) log V) time, O(V²) space for the result.
func Johnson(g *core.Graph, opts ...Option) (*AllPairs, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := newAllPairs(g.Vertices())
	n := len(m.IDs)

	// Index-based arcs in edge insertion order.
	type idxArc struct {
		from, to int
		weight   int64
	}
	stringArcs := expandArcs(g)
	arcs := make([]idxArc, len(stringArcs))
	for i, a := range stringArcs {
		arcs[i] = idxArc{from: m.Index[a.from], to: m.Index[a.to], weight: a.weight}
	}

	// Potentials via Bellman-Ford from a virtual source with a
	// zero-weight arc to every vertex, equivalent to h ≡ 0 initially.
	h := make([]int64, n)
	for round := 1; round < n; round++ {
		improved := false
		for _, a := range arcs {
			if cand := h[a.from] + a.weight; cand < h[a.to] {
				h[a.to] = cand
				improved = true
			}
		}
		if !improved {
			break
		}
	}
	for _, a := range arcs {
		if h[a.from]+a.weight < h[a.to] {
			return nil, fmt.Errorf("%w: via edge %s→%s weight=%d",
				ErrNegativeCycle, m.IDs[a.from], m.IDs[a.to], a.weight)
		}
	}

	// Non-negative reweighted adjacency.
	adj := make([][]idxArc, n)
	for _, a := range arcs {
		a.weight += h[a.from] - h[a.to]
		adj[a.from] = append(adj[a.from], a)
	}

	// One Dijkstra per source over the reweighted arcs.
	dist := make([]int64, n)
	prev := make([]int, n)
	done := make([]bool, n)
	order := make([]int, 0, n)
	for src := 0; src < n; src++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		for i := range dist {
			dist[i] = Inf
			prev[i] = -1
			done[i] = false
		}
		dist[src] = 0
		order = order[:0]

		pq := idxPQ{{node: src}}
		seq := 0
		for len(pq) > 0 {
			item := heap.Pop(&pq).(idxEntry)
			u := item.node
			if done[u] {
				continue
			}
			done[u] = true
			order = append(order, u)

			for _, a := range adj[u] {
				if cand := dist[u] + a.weight; cand < dist[a.to] {
					dist[a.to] = cand
					prev[a.to] = u
					seq++
					heap.Push(&pq, idxEntry{node: a.to, dist: cand, seq: seq})
				}
			}
		}

		// Undo the reweighting and record first hops. Finalization
		// order guarantees a parent's hop is known before its child's.
		for _, v := range order {
			m.Dist[src][v] = dist[v] - h[src] + h[v]
			switch prev[v] {
			case -1: // v == src
			case src:
				m.next[src][v] = v
			default:
				m.next[src][v] = m.next[src][prev[v]]
			}
		}
	}

	return m, nil
}

// idxEntry is one (vertex row, reweighted distance) heap entry.
type idxEntry struct {
	node int
	dist int64
	seq  int
}

// idxPQ is a min-heap of idxEntry ordered by distance then sequence.
type idxPQ []idxEntry

func (pq idxPQ) Len() int { return len(pq) }

func (pq idxPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq idxPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *idxPQ) Push(x interface{}) { *pq = append(*pq, x.(idxEntry)) }

func (pq *idxPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
