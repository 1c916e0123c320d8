// Dijkstra's algorithm with eager decrease-key over an index-addressable
// binary heap.
package shortestpath

import (
	"fmt"

	"github.com/korzhvl/wgraph/graph"
	"github.com/korzhvl/wgraph/indexpq"
)

// Dijkstra computes shortest paths from source to every vertex reachable in
// g, which must contain no negative edge weights.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, V) (ErrVertexRange).
//  3. No edge may have negative weight (ErrNegativeWeight, detected by an
//     upfront O(E) scan before any relaxation — never silently wrong
//     distances).
//
// The engine keeps an IndexMinPQ keyed by the current best distance of each
// fringe vertex and decreases keys in place when a relaxation improves a
// distance, so each vertex is extracted exactly once.
//
// Options:
//
//   - WithMaxDistance(x): stop once the nearest unvisited vertex is farther
//     than x; unexplored vertices keep distance +Inf.
//   - WithVerify(): re-check optimality conditions after the run.
//
// Complexity: O((V + E) log V) time, O(V) extra space.
func Dijkstra(g *graph.Digraph, source int, opts ...Option) (*Tree, error) {
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

	// 2) Pre-scan all edges to fail fast on negative weights.
	for _, e := range g.Edges() {
		if e.Weight() < 0 {
			return nil, fmt.Errorf("%w: edge %s", ErrNegativeWeight, e)
		}
	}

	// 3) Per-run working state: distances, tree edges, fringe queue.
	t := newTree(source, g.V())
	pq, err := indexpq.New[float64](g.V())
	if err != nil {
		return nil, err
	}
	if err = pq.Insert(source, 0); err != nil {
		return nil, err
	}

	// 4) Main loop: extract the closest unvisited vertex, relax its edges.
	for !pq.IsEmpty() {
		v, err := pq.DelMin()
		if err != nil {
			return nil, err
		}
		// Beyond the cap nothing closer remains on the queue; stop exploring.
		if t.distTo[v] > cfg.MaxDistance {
			break
		}
		adj, err := g.Adj(v)
		if err != nil {
			return nil, err
		}
		for _, e := range adj {
			if err = relaxEager(t, pq, e, cfg.MaxDistance); err != nil {
				return nil, err
			}
		}
	}

	// 5) Optional post-condition pass.
	if cfg.Verify {
		if err := verifyTree(g, t, cfg.MaxDistance); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// relaxEager attempts to improve the distance to e.To() through e.
// On improvement it records the tree edge and either inserts the target
// into the queue or decreases its key in place (the eager pattern: at most
// one queue entry per vertex at any time).
func relaxEager(t *Tree, pq *indexpq.IndexMinPQ[float64], e *graph.DirectedEdge, maxDistance float64) error {
	v, w := e.From(), e.To()
	next := t.distTo[v] + e.Weight()
	if next > maxDistance {
		return nil // would land beyond the exploration cap
	}
	if next >= t.distTo[w] {
		return nil // not an improvement
	}

	t.distTo[w] = next
	t.edgeTo[w] = e
	if pq.Contains(w) {
		return pq.DecreaseKey(w, next)
	}

	return pq.Insert(w, next)
}
