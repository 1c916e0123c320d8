package shortestpath

import (
	"fmt"
	"math"

	"github.com/korzhvl/wgraph/graph"
)

// verifyEps absorbs float rounding when comparing path sums.
const verifyEps = 1e-9

// verifyTree re-checks the shortest-path optimality conditions on a
// completed tree (the opt-in WithVerify pass):
//
//  1. distTo[source] == 0 and the source has no tree edge;
//  2. for every edge (v,w): distTo[w] <= distTo[v] + weight (no edge is
//     still relaxable), skipping targets beyond the Dijkstra cap;
//  3. for every tree edge edgeTo[w] = (v,w): distTo[w] == distTo[v] + weight
//     exactly (tree tightness).
//
// Any violation is reported as ErrVerifyFailed with the offending edge or
// vertex. Complexity: O(V + E).
func verifyTree(g *graph.Digraph, t *Tree, maxDistance float64) error {
	// 1) Source invariants.
	if t.distTo[t.source] != 0 {
		return fmt.Errorf("%w: distTo[source] = %v, want 0", ErrVerifyFailed, t.distTo[t.source])
	}
	if t.edgeTo[t.source] != nil {
		return fmt.Errorf("%w: source %d has tree edge %s", ErrVerifyFailed, t.source, t.edgeTo[t.source])
	}
	for v := 0; v < g.V(); v++ {
		if v != t.source && t.edgeTo[v] == nil && !math.IsInf(t.distTo[v], 1) {
			return fmt.Errorf("%w: vertex %d reached without tree edge", ErrVerifyFailed, v)
		}
	}

	// 2) No edge relaxable.
	for _, e := range g.Edges() {
		v, w := e.From(), e.To()
		if math.IsInf(t.distTo[v], 1) {
			continue // unreached source vertex constrains nothing
		}
		next := t.distTo[v] + e.Weight()
		if next > maxDistance {
			continue // target legitimately unexplored under the cap
		}
		if t.distTo[w] > next+verifyEps {
			return fmt.Errorf("%w: edge %s still relaxable (distTo[%d]=%v)", ErrVerifyFailed, e, w, t.distTo[w])
		}
	}

	// 3) Tree edges are tight.
	for w := 0; w < g.V(); w++ {
		e := t.edgeTo[w]
		if e == nil {
			continue
		}
		if e.To() != w {
			return fmt.Errorf("%w: edgeTo[%d] = %s does not enter %d", ErrVerifyFailed, w, e, w)
		}
		if math.Abs(t.distTo[w]-(t.distTo[e.From()]+e.Weight())) > verifyEps {
			return fmt.Errorf("%w: tree edge %s not tight", ErrVerifyFailed, e)
		}
	}

	return nil
}
