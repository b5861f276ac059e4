package cycles_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbelenko/grafo/core"
	"github.com/mbelenko/grafo/cycles"
)

// build constructs a graph with the given options and unweighted edges.
func build(t *testing.T, vertices []string, edges [][2]string, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, id := range vertices {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestHasCycle_Directed(t *testing.T) {
	_, err := cycles.HasCycle(nil)
	assert.ErrorIs(t, err, cycles.ErrNilGraph)

	dag := build(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}},
		core.WithDirected())
	found, err := cycles.HasCycle(dag)
	require.NoError(t, err)
	assert.False(t, found)

	loop := build(t, []string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}},
		core.WithDirected())
	found, err = cycles.HasCycle(loop)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestHasCycle_Undirected(t *testing.T) {
	tree := build(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"C", "D"}})
	found, err := cycles.HasCycle(tree)
	require.NoError(t, err)
	assert.False(t, found)

	triangle := build(t, []string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	found, err = cycles.HasCycle(triangle)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestHasCycle_ParallelEdgesAndSelfLoops(t *testing.T) {
	parallel := build(t, []string{"A", "B"},
		[][2]string{{"A", "B"}, {"A", "B"}},
		core.WithMultiEdges())
	found, err := cycles.HasCycle(parallel)
	require.NoError(t, err)
	assert.True(t, found, "two parallel edges form a cycle")

	selfLoop := build(t, []string{"A"}, [][2]string{{"A", "A"}})
	found, err = cycles.HasCycle(selfLoop)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestNegativeCycle_NoneOnConvergence(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddWeightedEdge("A", "B", -5)
	require.NoError(t, err)
	_, err = g.AddWeightedEdge("B", "C", 2)
	require.NoError(t, err)

	witness, found, err := cycles.NegativeCycle(g)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, witness)
}

func TestNegativeCycle_DirectedWitness(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	// D hangs off the cycle A→B→C→A.
	_, err := g.AddWeightedEdge("D", "A", 10)
	require.NoError(t, err)
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		_, err = g.AddWeightedEdge(e[0], e[1], -1)
		require.NoError(t, err)
	}

	witness, found, err := cycles.NegativeCycle(g)
	require.NoError(t, err)
	require.True(t, found)

	require.Len(t, witness, 4) // three vertices plus the closing repeat
	assert.Equal(t, witness[0], witness[len(witness)-1])
	assert.NotContains(t, witness, "D")
	assert.Negative(t, walkWeight(t, g, witness))
}

func TestNegativeCycle_UndirectedNegativeEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	_, err := g.AddWeightedEdge("A", "B", -4)
	require.NoError(t, err)

	// An undirected negative edge is traversable both ways, which is
	// itself a negative closed walk.
	witness, found, err := cycles.NegativeCycle(g)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Negative(t, walkWeight(t, g, witness))
}

// walkWeight sums the lightest edges along the closed walk.
func walkWeight(t *testing.T, g *core.Graph, walk []string) int64 {
	t.Helper()
	var total int64
	for i := 1; i < len(walk); i++ {
		edges := g.EdgesBetween(walk[i-1], walk[i])
		require.NotEmpty(t, edges, "no edge %s-%s", walk[i-1], walk[i])
		best := edges[0].Weight
		for _, e := range edges[1:] {
			if e.Weight < best {
				best = e.Weight
			}
		}
		total += best
	}

	return total
}

func TestHamiltonian_CompleteGraph(t *testing.T) {
	vertices := []string{"A", "B", "C", "D"}
	g := build(t, vertices,
		[][2]string{{"A", "B"}, {"A", "C"}, {"A", "D"}, {"B", "C"}, {"B", "D"}, {"C", "D"}})

	witness, err := cycles.Hamiltonian(g)
	require.NoError(t, err)

	require.Len(t, witness, 5)
	assert.Equal(t, witness[0], witness[4])
	assert.ElementsMatch(t, vertices, witness[:4])
	for i := 1; i < len(witness); i++ {
		assert.True(t, g.HasEdge(witness[i-1], witness[i]))
	}
}

func TestHamiltonian_NoneExists(t *testing.T) {
	path := build(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})
	_, err := cycles.Hamiltonian(path)
	assert.ErrorIs(t, err, cycles.ErrNoHamiltonianCycle)

	// Two undirected vertices cannot cycle without reusing the edge.
	pair := build(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	_, err = cycles.Hamiltonian(pair)
	assert.ErrorIs(t, err, cycles.ErrNoHamiltonianCycle)
}

func TestHamiltonian_ParallelPair(t *testing.T) {
	// With two parallel edges the closing hop uses a distinct edge,
	// so the two-vertex undirected tour is legitimate.
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B")
	require.NoError(t, err)

	witness, err := cycles.Hamiltonian(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A"}, witness)

	// A lone edge in a multigraph still cannot close the tour.
	single := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, single.AddVertex("A"))
	require.NoError(t, single.AddVertex("B"))
	_, err = single.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = cycles.Hamiltonian(single)
	assert.ErrorIs(t, err, cycles.ErrNoHamiltonianCycle)
}

func TestHamiltonian_DirectedAndDegenerate(t *testing.T) {
	ring := build(t, []string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}},
		core.WithDirected())
	witness, err := cycles.Hamiltonian(ring)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "A"}, witness)

	// One-way ring reversed: no cycle in traversal direction.
	reversed := build(t, []string{"A", "B", "C"},
		[][2]string{{"B", "A"}, {"C", "B"}, {"A", "C"}},
		core.WithDirected())
	witness, err = cycles.Hamiltonian(reversed)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "A"}, witness)

	selfLoop := build(t, []string{"A"}, [][2]string{{"A", "A"}})
	witness, err = cycles.Hamiltonian(selfLoop)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, witness)
}

func TestHamiltonian_ContextCancellation(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cycles.Hamiltonian(g, cycles.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
