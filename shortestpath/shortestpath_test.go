package shortestpath_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbelenko/grafo/core"
	"github.com/mbelenko/grafo/shortestpath"
)

// buildWeighted constructs a directed weighted graph and returns it:
// A→B(4), A→C(1), C→B(2), B→D(5), C→D(8), plus isolated E.
func buildWeighted(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddVertex(id))
	}
	edges := []struct {
		u, v string
		w    int64
	}{
		{"A", "B", 4}, {"A", "C", 1}, {"C", "B", 2}, {"B", "D", 5}, {"C", "D", 8},
	}
	for _, e := range edges {
		_, err := g.AddWeightedEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	_, err := shortestpath.Dijkstra(nil, "A")
	assert.ErrorIs(t, err, shortestpath.ErrNilGraph)

	g := buildWeighted(t)
	_, err = shortestpath.Dijkstra(g, "ghost")
	assert.ErrorIs(t, err, shortestpath.ErrSourceNotFound)
}

func TestDijkstra_DistancesAndPaths(t *testing.T) {
	g := buildWeighted(t)

	tree, err := shortestpath.Dijkstra(g, "A")
	require.NoError(t, err)

	assert.Equal(t, int64(0), tree.Dist["A"])
	assert.Equal(t, int64(3), tree.Dist["B"]) // A→C→B beats A→B
	assert.Equal(t, int64(1), tree.Dist["C"])
	assert.Equal(t, int64(8), tree.Dist["D"]) // A→C→B→D
	assert.Equal(t, shortestpath.Inf, tree.Dist["E"])

	assert.Equal(t, []string{"A", "C", "B", "D"}, tree.PathTo("D"))
	assert.Nil(t, tree.PathTo("E"))
	assert.Nil(t, tree.PathTo("ghost"))
}

func TestDijkstra_RejectsNegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	_, err := g.AddWeightedEdge("A", "B", -3)
	require.NoError(t, err)

	_, err = shortestpath.Dijkstra(g, "A")
	assert.ErrorIs(t, err, shortestpath.ErrNegativeWeight)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := buildWeighted(t)

	tree, err := shortestpath.Dijkstra(g, "A", shortestpath.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), tree.Dist["B"])
	assert.Equal(t, shortestpath.Inf, tree.Dist["D"])

	assert.Panics(t, func() { shortestpath.WithMaxDistance(-1) })
}

func TestDijkstra_UnweightedCountsHops(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	tree, err := shortestpath.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(1), tree.Dist["B"])
	assert.Equal(t, int64(2), tree.Dist["D"])
}

func TestBellmanFord_MatchesDijkstraWithoutNegatives(t *testing.T) {
	g := buildWeighted(t)

	dj, err := shortestpath.Dijkstra(g, "A")
	require.NoError(t, err)
	bf, err := shortestpath.BellmanFord(g, "A")
	require.NoError(t, err)

	assert.Equal(t, dj.Dist, bf.Dist)
}

func TestBellmanFord_NegativeWeights(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddWeightedEdge("A", "B", -2)
	require.NoError(t, err)
	_, err = g.AddWeightedEdge("B", "C", 3)
	require.NoError(t, err)

	tree, err := shortestpath.BellmanFord(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(-2), tree.Dist["B"])
	assert.Equal(t, int64(1), tree.Dist["C"])
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		_, err := g.AddWeightedEdge(e[0], e[1], -1)
		require.NoError(t, err)
	}

	_, err := shortestpath.BellmanFord(g, "A")
	assert.ErrorIs(t, err, shortestpath.ErrNegativeCycle)

	_, err = shortestpath.FloydWarshall(g)
	assert.ErrorIs(t, err, shortestpath.ErrNegativeCycle)

	_, err = shortestpath.Johnson(g)
	assert.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
}

func TestFloydWarshall_AllPairs(t *testing.T) {
	g := buildWeighted(t)

	m, err := shortestpath.FloydWarshall(g)
	require.NoError(t, err)

	d, ok := m.Between("A", "D")
	require.True(t, ok)
	assert.Equal(t, int64(8), d)
	assert.Equal(t, []string{"A", "C", "B", "D"}, m.PathBetween("A", "D"))

	d, ok = m.Between("C", "D")
	require.True(t, ok)
	assert.Equal(t, int64(7), d) // C→B→D beats the direct C→D(8)

	_, ok = m.Between("D", "A")
	assert.False(t, ok)
	assert.Nil(t, m.PathBetween("D", "A"))

	d, ok = m.Between("E", "E")
	require.True(t, ok)
	assert.Equal(t, int64(0), d)
}

func TestFloydWarshall_UndirectedSymmetry(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddWeightedEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = g.AddWeightedEdge("B", "C", 3)
	require.NoError(t, err)

	m, err := shortestpath.FloydWarshall(g)
	require.NoError(t, err)
	ab, _ := m.Between("A", "C")
	ba, _ := m.Between("C", "A")
	assert.Equal(t, int64(5), ab)
	assert.Equal(t, ab, ba)
}

func TestJohnson_MatchesFloydWarshall(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	edges := []struct {
		u, v string
		w    int64
	}{
		{"A", "B", 3}, {"A", "C", 8}, {"B", "D", 1}, {"C", "B", -4}, {"D", "C", 2},
	}
	for _, e := range edges {
		_, err := g.AddWeightedEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	fw, err := shortestpath.FloydWarshall(g)
	require.NoError(t, err)
	jn, err := shortestpath.Johnson(g)
	require.NoError(t, err)

	require.Equal(t, fw.IDs, jn.IDs)
	assert.Equal(t, fw.Dist, jn.Dist)

	for _, u := range fw.IDs {
		for _, v := range fw.IDs {
			assert.Equal(t, fw.PathBetween(u, v) == nil, jn.PathBetween(u, v) == nil)
		}
	}
}

func TestShortestPath_ContextCancellation(t *testing.T) {
	g := buildWeighted(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := shortestpath.Dijkstra(g, "A", shortestpath.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = shortestpath.BellmanFord(g, "A", shortestpath.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = shortestpath.FloydWarshall(g, shortestpath.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = shortestpath.Johnson(g, shortestpath.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
