package flow_test

import (
	"fmt"

	"github.com/korzhvl/wgraph/flow"
)

// ExampleMaxFlow computes the maximum flow of a small network and prints
// the source side of the minimum cut.
func ExampleMaxFlow() {
	n, _ := flow.NewNetwork(4)
	_, _ = n.AddEdge(0, 1, 1)
	_, _ = n.AddEdge(0, 2, 2)
	_, _ = n.AddEdge(1, 3, 5)
	_, _ = n.AddEdge(2, 3, 5)

	res, _ := flow.MaxFlow(n, 0, 3)
	fmt.Printf("max flow = %.4g\n", res.Value())
	for v := 0; v < n.V(); v++ {
		if res.InCut(v) {
			fmt.Println("in cut:", v)
		}
	}
	// Output:
	// max flow = 3
	// in cut: 0
}
