package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbelenko/grafo/adjacency"
	"github.com/mbelenko/grafo/core"
)

func TestAsUnweighted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted(), core.WithMultiEdges())
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range []struct {
		u, v string
		w    int64
	}{{"A", "B", 3}, {"A", "B", 7}, {"B", "C", 1}} {
		_, err := g.AddWeightedEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	got, err := adjacency.AsUnweighted(g)
	require.NoError(t, err)

	want := core.TypeTag{Directed: true, Weighted: false, Multigraph: true}
	assert.Equal(t, want, got.Type())
	assert.Equal(t, g.Vertices(), got.Vertices())
	assert.Equal(t, 3, got.EdgeCount(), "parallel edges must survive one-for-one")
	for _, e := range got.Edges() {
		assert.Equal(t, core.UnitWeight, e.Weight)
	}
}

func TestAsWeighted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	got, err := adjacency.AsWeighted(g, 5)
	require.NoError(t, err)

	assert.True(t, got.Weighted())
	assert.Equal(t, []string{"A|B|5", "B|C|5"}, edgeKeys(got))

	// Zero is a legitimate default weight.
	zero, err := adjacency.AsWeighted(g, 0)
	require.NoError(t, err)
	w, err := zero.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Zero(t, w)
}

func TestAsUndirected(t *testing.T) {
	t.Run("reciprocal pair collapses", func(t *testing.T) {
		g := core.NewGraph(core.WithDirected(), core.WithWeighted())
		for _, id := range []string{"A", "B", "C"} {
			require.NoError(t, g.AddVertex(id))
		}
		for _, e := range []struct {
			u, v string
			w    int64
		}{{"A", "B", 2}, {"B", "A", 2}, {"B", "C", 4}} {
			_, err := g.AddWeightedEdge(e.u, e.v, e.w)
			require.NoError(t, err)
		}

		got, err := adjacency.AsUndirected(g)
		require.NoError(t, err)

		assert.False(t, got.Directed())
		assert.Equal(t, []string{"A|B|2", "B|C|4"}, edgeKeys(got))
		assert.True(t, got.HasEdge("C", "B"), "undirected edge must answer both orders")
	})

	t.Run("reciprocal weight conflict", func(t *testing.T) {
		g := core.NewGraph(core.WithDirected(), core.WithWeighted())
		require.NoError(t, g.AddVertex("A"))
		require.NoError(t, g.AddVertex("B"))
		_, err := g.AddWeightedEdge("A", "B", 2)
		require.NoError(t, err)
		_, err = g.AddWeightedEdge("B", "A", 9)
		require.NoError(t, err)

		_, err = adjacency.AsUndirected(g)
		assert.ErrorIs(t, err, adjacency.ErrReciprocalConflict)
	})

	t.Run("multigraph keeps every arc", func(t *testing.T) {
		g := core.NewGraph(core.WithDirected(), core.WithMultiEdges())
		require.NoError(t, g.AddVertex("A"))
		require.NoError(t, g.AddVertex("B"))
		_, err := g.AddEdge("A", "B")
		require.NoError(t, err)
		_, err = g.AddEdge("B", "A")
		require.NoError(t, err)

		got, err := adjacency.AsUndirected(g)
		require.NoError(t, err)
		assert.Len(t, got.EdgesBetween("A", "B"), 2)
	})
}

func TestConvert_VariantMismatch(t *testing.T) {
	unweighted := core.NewGraph()
	weighted := core.NewGraph(core.WithWeighted())
	undirected := core.NewGraph()

	_, err := adjacency.AsUnweighted(unweighted)
	assert.ErrorIs(t, err, adjacency.ErrVariantMismatch)

	_, err = adjacency.AsWeighted(weighted, 1)
	assert.ErrorIs(t, err, adjacency.ErrVariantMismatch)

	_, err = adjacency.AsUndirected(undirected)
	assert.ErrorIs(t, err, adjacency.ErrVariantMismatch)

	for _, fn := range []func() error{
		func() error { _, err := adjacency.AsUnweighted(nil); return err },
		func() error { _, err := adjacency.AsWeighted(nil, 1); return err },
		func() error { _, err := adjacency.AsUndirected(nil); return err },
	} {
		assert.ErrorIs(t, fn(), adjacency.ErrNilGraph)
	}
}
