// Package wgraph is a focused toolkit for weighted graphs: compact
// adjacency-list containers, single-source shortest paths, and minimum
// spanning forests, all driven by an index-addressable binary heap.
//
// What is inside?
//
//	A small, dependency-light library that brings together:
//		• Containers: edge-weighted digraphs and undirected graphs over
//		  integer vertices [0,V), plus a plain-text reader
//		• Shortest paths: Dijkstra (non-negative weights),
//		  Acyclic (DAG relaxation, any weights),
//		  Bellman–Ford (arbitrary weights, negative-cycle detection)
//		• Minimum spanning forests: Prim (eager, heap-indexed) and
//		  Kruskal (sorted edges over union-find)
//		• Max-flow: Edmonds–Karp over a residual flow network
//		• Primitives: IndexMinPQ (decrease-key in O(log n)) and
//		  array-backed UnionFind
//
// Why choose wgraph?
//
//   - Predictable contracts – sentinel errors, fail-fast validation,
//     explicit "no path" / "negative cycle" result states
//   - Engines never mutate their input graph; results are read-only
//   - Pure Go – no cgo, test-only third-party dependencies
//   - Optional post-run verification of the textbook optimality conditions
//
// Everything is organized under six subpackages:
//
//	graph/        — Digraph, Graph, DirectedEdge, Edge, text readers
//	indexpq/      — index-addressable binary min-heap
//	unionfind/    — disjoint sets with path halving and union by rank
//	shortestpath/ — Dijkstra, Acyclic, BellmanFord + Tree queries
//	mst/          — Prim, Kruskal + Forest queries
//	flow/         — FlowEdge, Network, Edmonds–Karp max-flow / min-cut
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a square with four vertices and four weighted edges; Dijkstra from 0
//	walks the cheap sides, Prim keeps the three lightest edges.
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/korzhvl/wgraph
package wgraph
