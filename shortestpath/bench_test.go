package shortestpath_test

import (
	"math/rand"
	"testing"

	"github.com/korzhvl/wgraph/graph"
	"github.com/korzhvl/wgraph/shortestpath"
)

// buildMediumDigraph returns a reproducible 1000-vertex digraph with a
// spanning chain (every vertex reachable from 0) plus random shortcuts.
func buildMediumDigraph(b *testing.B) *graph.Digraph {
	b.Helper()
	const v, extra = 1000, 8000

	g, err := graph.NewDigraph(v)
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewSource(11))
	for i := 0; i+1 < v; i++ {
		if _, err = g.AddEdge(i, i+1, r.Float64()+0.01); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < extra; i++ {
		if _, err = g.AddEdge(r.Intn(v), r.Intn(v), r.Float64()+0.01); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

func BenchmarkDijkstra(b *testing.B) {
	g := buildMediumDigraph(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := shortestpath.Dijkstra(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBellmanFord(b *testing.B) {
	g := buildMediumDigraph(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := shortestpath.BellmanFord(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAcyclic runs on a layered DAG of the same size: shortcuts only
// point forward so the digraph stays acyclic.
func BenchmarkAcyclic(b *testing.B) {
	const v, extra = 1000, 8000

	g, err := graph.NewDigraph(v)
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewSource(12))
	for i := 0; i+1 < v; i++ {
		if _, err = g.AddEdge(i, i+1, r.Float64()+0.01); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < extra; i++ {
		from := r.Intn(v - 1)
		to := from + 1 + r.Intn(v-from-1)
		if _, err = g.AddEdge(from, to, r.Float64()+0.01); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := shortestpath.Acyclic(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
