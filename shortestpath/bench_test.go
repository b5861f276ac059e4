package shortestpath_test

import (
	"testing"

	"github.com/mbelenko/grafo/builder"
	"github.com/mbelenko/grafo/core"
	"github.com/mbelenko/grafo/shortestpath"
)

// benchGrid builds a 32x32 weighted lattice, weights cycling 1..7.
func benchGrid(b *testing.B) *core.Graph {
	b.Helper()
	g, err := builder.Grid(32, 32,
		builder.WithGraphOptions(core.WithWeighted()),
		builder.WithWeightFunc(func(i int) int64 { return int64(i%7) + 1 }))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkDijkstra_Grid(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := shortestpath.Dijkstra(g, "v0"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBellmanFord_Grid(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := shortestpath.BellmanFord(g, "v0"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFloydWarshall_Grid(b *testing.B) {
	g, err := builder.Grid(12, 12,
		builder.WithGraphOptions(core.WithWeighted()))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = shortestpath.FloydWarshall(g); err != nil {
			b.Fatal(err)
		}
	}
}
