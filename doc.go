// Package grafo is an in-memory graph toolkit: one core model covering
// directed/undirected, weighted/unweighted, simple and multigraph
// variants, with representations and algorithms layered on top.
//
// 🚀 What is grafo?
//
//	A thread-safe, deterministic graph library that brings together:
//		• Core model: a single Graph type tagged by its variant, safe under locks
//		• Representations: adjacency lists & matrices, loss-aware conversions
//		• Algebra: union, join, intersection, difference, equality
//		• Traversals: BFS, DFS, topological sort
//		• Shortest paths: Dijkstra, Bellman-Ford, Floyd-Warshall, Johnson
//		• Spanning forests: Prim, Kruskal
//		• Structure: cycle & negative-cycle detection, Hamiltonian search,
//		  bridges & articulation points
//
// ✨ Why choose grafo?
//
//   - Deterministic – insertion-ordered iteration, reproducible results
//   - Explicit failure – sentinel errors for every contract violation,
//     never a silent fallback
//   - Extensible – traversal hooks (OnVisit, OnExit…) for custom logic
//   - Pure Go core – no cgo
//
// Everything is organized under flat subpackages:
//
//	core/         — the Graph model, type tags, records
//	adjacency/    — list & matrix representations + converters
//	algebra/      — set-style operations over whole graphs
//	bfs/, dfs/    — traversals and topological sort
//	shortestpath/ — single-source & all-pairs engines
//	mst/          — minimum spanning forests
//	cycles/       — cycle, negative-cycle and Hamiltonian detection
//	cuts/         — bridges and articulation points
//	builder/      — deterministic fixture topologies for tests & demos
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
//	go get github.com/mbelenko/grafo
package grafo
