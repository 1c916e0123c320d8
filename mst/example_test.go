package mst_test

import (
	"fmt"

	"github.com/korzhvl/wgraph/graph"
	"github.com/korzhvl/wgraph/mst"
)

// ExampleKruskal builds the tree of a small weighted graph and prints its
// edges in selection order (ascending weight).
func ExampleKruskal() {
	g, _ := graph.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 0.5)
	_, _ = g.AddEdge(1, 2, 0.75)
	_, _ = g.AddEdge(2, 3, 0.25)
	_, _ = g.AddEdge(0, 3, 2)

	f, _ := mst.Kruskal(g)
	fmt.Printf("weight = %.4g\n", f.Weight())
	for _, e := range f.Edges() {
		fmt.Println(e)
	}
	// Output:
	// weight = 1.5
	// 2-3 0.25
	// 0-1 0.5
	// 1-2 0.75
}

// ExampleCompute selects the algorithm at runtime.
func ExampleCompute() {
	g, _ := graph.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(0, 2, 3)

	f, _ := mst.Compute(g, mst.WithMethod(mst.MethodPrim))
	fmt.Printf("edges=%d weight=%.4g\n", f.Len(), f.Weight())
	// Output:
	// edges=2 weight=3
}
