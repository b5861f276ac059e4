package mst

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/mbelenko/grafo/core"
)

// Prim computes a minimum spanning forest by frontier growth: each
// component starts from its lowest-ID vertex (or WithRoot for the
// first one) and repeatedly accepts the lightest edge leaving the
// visited set, using a min-heap keyed by weight with insertion-order
// tie-breaking. When a component's frontier drains, growth restarts
// from the next unvisited vertex.
//
// Complexity: O(E log E) time, O(V+E) space.
func Prim(g *core.Graph, opts ...Option) (*Forest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkInput(g, o); err != nil {
		return nil, err
	}
	if o.Root != "" && !g.HasVertex(o.Root) {
		return nil, fmt.Errorf("%w: root %q", core.ErrVertexNotFound, o.Root)
	}

	starts := append([]string(nil), g.Vertices()...)
	sort.Strings(starts)
	if o.Root != "" {
		// The chosen root leads; remaining components still start
		// from their lowest IDs.
		starts = append([]string{o.Root}, starts...)
	}

	edgeByID := make(map[string]core.Edge, g.EdgeCount())
	for _, e := range g.Edges() {
		edgeByID[e.ID] = e
	}

	r := &primRun{
		graph:    g,
		opts:     o,
		edgeByID: edgeByID,
		visited:  make(map[string]bool, g.VertexCount()),
		forest:   &Forest{},
	}
	for _, start := range starts {
		if r.visited[start] {
			continue
		}
		r.forest.Components++
		if err := r.grow(start); err != nil {
			return nil, err
		}
	}

	return r.forest, nil
}

// primRun holds the mutable state of one Prim execution.
type primRun struct {
	graph    *core.Graph
	opts     Options
	edgeByID map[string]core.Edge
	visited  map[string]bool
	forest   *Forest
	pq       frontierPQ
	seq      int
}

// grow builds the spanning tree of start's component.
func (r *primRun) grow(start string) error {
	r.pq = r.pq[:0]
	heap.Init(&r.pq)
	if err := r.annex(start); err != nil {
		return err
	}

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*frontierItem)
		if r.visited[item.to] {
			continue // both endpoints already in the tree
		}
		e := r.edgeByID[item.edgeID]
		r.forest.Edges = append(r.forest.Edges, e)
		r.forest.TotalWeight += item.weight
		if err := r.annex(item.to); err != nil {
			return err
		}
	}

	return nil
}

// annex marks v visited and pushes its edges to unvisited neighbors.
func (r *primRun) annex(v string) error {
	r.visited[v] = true
	nbrs, err := r.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("mst: neighbors of %q: %w", v, err)
	}
	for _, n := range nbrs {
		if r.visited[n.ID] {
			continue
		}
		w := n.Weight
		if r.opts.UnitWeights {
			w = core.UnitWeight
		}
		r.seq++
		heap.Push(&r.pq, &frontierItem{edgeID: n.EdgeID, to: n.ID, weight: w, seq: r.seq})
	}

	return nil
}

// frontierItem is one candidate edge leaving the visited set.
type frontierItem struct {
	edgeID string
	to     string
	weight int64
	seq    int
}

// frontierPQ is a min-heap of *frontierItem ordered by weight, then
// by push order for equal weights.
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
