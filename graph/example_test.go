// Package graph_test provides runnable examples for the containers.
package graph_test

import (
	"fmt"
	"strings"

	"github.com/korzhvl/wgraph/graph"
)

// ExampleReadDigraph parses the plain-text format and renders the digraph.
func ExampleReadDigraph() {
	in := "3 3\n0 1 0.5\n1 2 1.25\n2 0 2\n"
	g, err := graph.ReadDigraph(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(g)
	// Output:
	// 3 3
	// 0: 0->1 0.5
	// 1: 1->2 1.25
	// 2: 2->0 2
}

// ExampleGraph_AddEdge shows the shared-instance model of undirected edges:
// the same edge answers Other from both endpoints.
func ExampleGraph_AddEdge() {
	g, _ := graph.NewGraph(2)
	e, _ := g.AddEdge(0, 1, 4.2)

	fmt.Println(e.Other(0), e.Other(1), e.Weight())
	// Output: 1 0 4.2
}
