// Bellman–Ford with the proven pass bound: V−1 full relaxation passes reach
// every shortest path; a further successful relaxation proves a negative
// cycle reachable from the source.
package shortestpath

import (
	"fmt"

	"github.com/korzhvl/wgraph/graph"
)

// BellmanFord computes shortest paths from source under arbitrary (finite)
// edge weights and detects negative cycles reachable from the source.
//
// Two terminal outcomes, both successful returns:
//
//   - shortest-path tree: HasNegativeCycle() == false, DistTo/PathTo answer;
//   - negative cycle: HasNegativeCycle() == true, NegativeCycle() yields one
//     offending cycle (its weights sum strictly negative), and DistTo/PathTo
//     return ErrNegativeCycle.
//
// The engine performs at most V−1 full passes over all edges, exiting early
// as soon as a pass changes nothing. One additional pass follows: by the
// standard argument, any relaxation that still succeeds proves the
// predecessor graph contains a negative cycle, which is then traced out of
// edgeTo (no heuristic iteration cutoffs).
//
// Complexity: O(V·E) time worst case, O(V) extra space.
func BellmanFord(g *graph.Digraph, source int, opts ...Option) (*Tree, error) {
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

	t := newTree(source, g.V())
	edges := g.Edges()

	// 2) V−1 full passes; a quiet pass means all distances are final.
	for pass := 1; pass < g.V(); pass++ {
		if !relaxAll(t, edges) {
			break
		}
	}

	// 3) Detection pass: a relaxation succeeding now can only mean a
	//    negative cycle. Apply the full pass so the predecessor graph is
	//    guaranteed to contain the cycle, then trace it.
	if relaxAll(t, edges) {
		t.cycle = findCycle(t.edgeTo)
		if t.cycle == nil {
			// Cannot happen after a successful pass V; guard against a
			// tracing bug rather than returning a half-true result.
			return nil, fmt.Errorf("%w: relaxation succeeded on pass %d but no cycle traced", ErrNegativeCycle, g.V())
		}

		return t, nil
	}

	// 4) Optional post-condition pass.
	if cfg.Verify {
		if err := verifyTree(g, t, cfg.MaxDistance); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// relaxAll runs one full relaxation pass over edges and reports whether any
// distance improved. Unreached sources (distance +Inf) never improve a
// neighbor: +Inf plus a finite weight stays +Inf.
func relaxAll(t *Tree, edges []*graph.DirectedEdge) bool {
	improved := false
	for _, e := range edges {
		if next := t.distTo[e.From()] + e.Weight(); next < t.distTo[e.To()] {
			t.distTo[e.To()] = next
			t.edgeTo[e.To()] = e
			improved = true
		}
	}

	return improved
}

// findCycle locates a directed cycle in the predecessor graph edgeTo, where
// each vertex has at most one incoming tree edge. It walks each vertex's
// predecessor chain with white/gray/black coloring: revisiting a gray vertex
// within the current walk closes a cycle, which is then collected in forward
// order. Returns nil when the predecessor graph is acyclic.
// Complexity: O(V) — every vertex is walked at most once.
func findCycle(edgeTo []*graph.DirectedEdge) []*graph.DirectedEdge {
	state := make([]int8, len(edgeTo))

	for s := range edgeTo {
		if state[s] != white {
			continue
		}

		// Walk the predecessor chain until it ends or hits a colored vertex.
		x := s
		for x != -1 && state[x] == white {
			state[x] = gray
			if edgeTo[x] == nil {
				x = -1
				break
			}
			x = edgeTo[x].From()
		}

		if x != -1 && state[x] == gray {
			// The chain re-entered itself at x: collect the cycle edges by
			// walking backward from x, then reverse into forward order.
			cycle := make([]*graph.DirectedEdge, 0, 4)
			v := x
			for {
				e := edgeTo[v]
				cycle = append(cycle, e)
				v = e.From()
				if v == x {
					break
				}
			}
			for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
				cycle[i], cycle[j] = cycle[j], cycle[i]
			}

			return cycle
		}

		// No cycle through this chain: retire the walked segment.
		x = s
		for x != -1 && state[x] == gray {
			state[x] = black
			if edgeTo[x] == nil {
				break
			}
			x = edgeTo[x].From()
		}
	}

	return nil
}
