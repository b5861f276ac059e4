package shortestpath_test

import (
	"fmt"

	"github.com/mbelenko/grafo/core"
	"github.com/mbelenko/grafo/shortestpath"
)

// ExampleDijkstra finds the cheapest route across a weighted triangle:
// the two-hop detour beats the direct edge.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddWeightedEdge("A", "B", 1)
	_, _ = g.AddWeightedEdge("B", "C", 2)
	_, _ = g.AddWeightedEdge("A", "C", 5)

	tree, err := shortestpath.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[C]=%d path=%v\n", tree.Dist["C"], tree.PathTo("C"))
	// Output: dist[C]=3 path=[A B C]
}

// ExampleBellmanFord handles a negative edge that Dijkstra must reject.
func ExampleBellmanFord() {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddWeightedEdge("A", "B", 4)
	_, _ = g.AddWeightedEdge("A", "C", 2)
	_, _ = g.AddWeightedEdge("C", "B", -3)

	tree, err := shortestpath.BellmanFord(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[B]=%d\n", tree.Dist["B"])
	// Output: dist[B]=-1
}

// ExampleFloydWarshall answers distance queries between any two
// vertices after one cubic pass.
func ExampleFloydWarshall() {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddWeightedEdge("A", "B", 1)
	_, _ = g.AddWeightedEdge("B", "C", 1)
	_, _ = g.AddWeightedEdge("C", "D", 1)

	m, err := shortestpath.FloydWarshall(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := m.Between("A", "D")
	fmt.Printf("A→D=%d via %v\n", d, m.PathBetween("A", "D"))
	// Output: A→D=3 via [A B C D]
}
