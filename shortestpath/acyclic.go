// Shortest paths on a DAG: topological order first, then one relaxation per
// edge. Handles negative weights; no priority queue needed.
package shortestpath

import (
	"fmt"

	"github.com/korzhvl/wgraph/graph"
)

// Vertex colors for the topological DFS.
const (
	white int8 = iota // undiscovered
	gray              // on the current DFS path
	black             // fully explored
)

// Acyclic computes shortest paths from source on a directed acyclic graph.
// Edge weights may be negative; because the graph is acyclic, no negative
// cycle can exist and every relaxation is final.
//
// Validation: nil graph (ErrNilGraph), source range (ErrVertexRange), and a
// full-graph topological sort that fails with ErrCycleDetected when g is not
// a DAG — detected before any relaxation.
//
// Complexity: O(V + E) time, O(V) extra space.
func Acyclic(g *graph.Digraph, source int, opts ...Option) (*Tree, error) {
	// 1) Build options and validate inputs.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if source < 0 || source >= g.V() {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrVertexRange, source, g.V())
	}

	// 2) Topological order over the whole digraph; rejects cyclic input.
	order, err := topologicalOrder(g)
	if err != nil {
		return nil, err
	}

	// 3) Relax every edge exactly once, in topological order of its source.
	//    Vertices still at +Inf are unreached; relaxing from them cannot
	//    improve anything, so they are skipped.
	t := newTree(source, g.V())
	for _, v := range order {
		if !t.HasPathTo(v) {
			continue
		}
		adj, err := g.Adj(v)
		if err != nil {
			return nil, err
		}
		for _, e := range adj {
			if next := t.distTo[v] + e.Weight(); next < t.distTo[e.To()] {
				t.distTo[e.To()] = next
				t.edgeTo[e.To()] = e
			}
		}
	}

	// 4) Optional post-condition pass.
	if cfg.Verify {
		if err := verifyTree(g, t, cfg.MaxDistance); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// dfsFrame is one suspended vertex visit on the explicit DFS stack:
// the vertex, its adjacency snapshot, and the next edge to examine.
type dfsFrame struct {
	v    int
	adj  []*graph.DirectedEdge
	next int
}

// topologicalOrder returns the vertices of g in topological order, or
// ErrCycleDetected if g contains a directed cycle.
//
// The traversal is a depth-first search with white/gray/black coloring,
// driven by an explicit frame stack rather than recursion so vertex count
// has no bearing on goroutine stack depth; the visitation order matches the
// recursive formulation exactly. The order is the reverse of the DFS
// post-order.
func topologicalOrder(g *graph.Digraph) ([]int, error) {
	state := make([]int8, g.V())
	post := make([]int, 0, g.V())
	stack := make([]dfsFrame, 0, 16)

	for s := 0; s < g.V(); s++ {
		if state[s] != white {
			continue
		}
		// Open the root frame for this DFS tree.
		adj, err := g.Adj(s)
		if err != nil {
			return nil, err
		}
		state[s] = gray
		stack = append(stack, dfsFrame{v: s, adj: adj})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.adj) {
				// Examine the next outgoing edge of the current frame.
				w := top.adj[top.next].To()
				top.next++
				switch state[w] {
				case gray:
					// Back edge to a vertex on the current path.
					return nil, fmt.Errorf("%w: back edge into %d", ErrCycleDetected, w)
				case white:
					wAdj, err := g.Adj(w)
					if err != nil {
						return nil, err
					}
					state[w] = gray
					stack = append(stack, dfsFrame{v: w, adj: wAdj})
				}
				// black: already fully explored, nothing to do.
				continue
			}
			// All edges of top examined: finish the vertex (post-order).
			state[top.v] = black
			post = append(post, top.v)
			stack = stack[:len(stack)-1]
		}
	}

	// Reverse post-order is the topological order.
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}

	return post, nil
}
