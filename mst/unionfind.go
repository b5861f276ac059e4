package mst

// unionFind is a disjoint-set arena over vertex indices: flat
// parent/rank slices instead of a pointer forest. Uses path
// compression and union by rank.
type unionFind struct {
	parent []int
	rank   []int
}

// newUnionFind builds n singleton sets.
func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// find returns the set representative of i, halving the path on the
// way up.
func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}

	return i
}

// union merges the sets of i and j by rank. Reports false when they
// were already joined.
func (uf *unionFind) union(i, j int) bool {
	ri, rj := uf.find(i), uf.find(j)
	if ri == rj {
		return false
	}
	if uf.rank[ri] < uf.rank[rj] {
		ri, rj = rj, ri
	}
	uf.parent[rj] = ri
	if uf.rank[ri] == uf.rank[rj] {
		uf.rank[ri]++
	}

	return true
}
