package mst_test

import (
	"math/rand"
	"testing"

	"github.com/korzhvl/wgraph/graph"
	"github.com/korzhvl/wgraph/mst"
)

// buildMediumGraph returns a reproducible connected 1000-vertex graph:
// a spanning chain plus random extra edges.
func buildMediumGraph(b *testing.B) *graph.Graph {
	b.Helper()
	const v, extra = 1000, 8000

	g, err := graph.NewGraph(v)
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewSource(21))
	for i := 0; i+1 < v; i++ {
		if _, err = g.AddEdge(i, i+1, r.Float64()); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < extra; i++ {
		if _, err = g.AddEdge(r.Intn(v), r.Intn(v), r.Float64()); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := mst.Prim(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := mst.Kruskal(g); err != nil {
			b.Fatal(err)
		}
	}
}
