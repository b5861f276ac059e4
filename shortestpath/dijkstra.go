package shortestpath

import (
	"container/heap"
	"fmt"

	"github.com/mbelenko/grafo/core"
)

// Dijkstra computes shortest distances from source to every vertex of
// g. All edge weights must be non-negative; the run fails fast with
// ErrNegativeWeight after an O(E) pre-scan otherwise. Unweighted
// graphs are traversed with unit weights, so Dijkstra degenerates to
// hop-count search.
//
// The priority queue uses lazy decrease-key: improved distances push
// duplicate entries and stale ones are skipped on extraction. Entries
// of equal distance pop in push order, keeping runs deterministic.
//
// Complexity: O((V+E) log V) time, O(V+E) space.
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	// Fail fast before any relaxation touches a negative edge.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s(%s→%s) weight=%d",
				ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}

	r := &dijkstraRun{
		graph: g,
		opts:  o,
		res: &Tree{
			Source: source,
			Dist:   make(map[string]int64, g.VertexCount()),
			Prev:   make(map[string]string, g.VertexCount()),
		},
		visited: make(map[string]bool, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		r.res.Dist[v] = Inf
	}
	r.res.Dist[source] = 0

	heap.Init(&r.pq)
	r.push(source, 0)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// dijkstraRun holds the mutable state of one Dijkstra execution.
type dijkstraRun struct {
	graph   *core.Graph
	opts    Options
	res     *Tree
	visited map[string]bool
	pq      distPQ
	seq     int
}

func (r *dijkstraRun) push(id string, dist int64) {
	r.seq++
	heap.Push(&r.pq, &distItem{id: id, dist: dist, seq: r.seq})
}

// process extracts vertices in distance order and relaxes their
// outgoing edges until the heap drains or MaxDistance is crossed.
func (r *dijkstraRun) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*distItem)
		if r.visited[item.id] {
			continue // stale lazy-decrease-key entry
		}
		if item.dist > r.opts.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves distances of u's neighbors in edge insertion order.
func (r *dijkstraRun) relax(u string) error {
	nbrs, err := r.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("shortestpath: neighbors of %q: %w", u, err)
	}
	for _, n := range nbrs {
		cand := r.res.Dist[u] + n.Weight
		if cand > r.opts.MaxDistance || cand >= r.res.Dist[n.ID] {
			continue
		}
		r.res.Dist[n.ID] = cand
		r.res.Prev[n.ID] = u
		r.push(n.ID, cand)
	}

	return nil
}

// distItem is one (vertex, distance) heap entry; seq breaks distance
// ties in push order.
type distItem struct {
	id   string
	dist int64
	seq  int
}

// distPQ is a min-heap of *distItem ordered by distance then sequence.
type distPQ []*distItem

func (pq distPQ) Len() int { return len(pq) }

func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }

func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
