// Kruskal's algorithm: sorted edges, union-find cycle avoidance.
package mst

import (
	"sort"

	"github.com/korzhvl/wgraph/graph"
	"github.com/korzhvl/wgraph/unionfind"
)

// Kruskal computes a minimum spanning forest of g.
//
// Steps:
//  1. Collect all edges, skipping self-loops (they can never join two
//     components).
//  2. Stable-sort by ascending weight; stability makes equal-weight
//     tie-breaking follow insertion order deterministically.
//  3. Scan the sorted edges, accepting each edge whose endpoints lie in
//     different union-find components; stop once V−1 edges are accepted or
//     edges are exhausted (fewer accepted edges simply means a forest over
//     multiple components).
//
// Complexity: O(E log E) time, O(V + E) extra space.
func Kruskal(g *graph.Graph, opts ...Option) (*Forest, error) {
	// 1) Build options and validate input.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Collect candidate edges (self-loops excluded).
	all := g.Edges()
	edges := make([]*graph.Edge, 0, len(all))
	for _, e := range all {
		if e.Other(e.Either()) == e.Either() {
			continue
		}
		edges = append(edges, e)
	}

	// 3) Stable sort by weight keeps insertion order among equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight() < edges[j].Weight()
	})

	// 4) Greedy scan with union-find cycle test.
	uf, err := unionfind.New(g.V())
	if err != nil {
		return nil, err
	}
	f := &Forest{edges: make([]*graph.Edge, 0, g.V())}
	for _, e := range edges {
		v := e.Either()
		w := e.Other(v)
		if !uf.Union(v, w) {
			continue // same component already: accepting e would close a cycle
		}
		f.edges = append(f.edges, e)
		f.weight += e.Weight()
		if len(f.edges) == g.V()-1 {
			break // a single spanning tree is complete
		}
	}

	// 5) Optional post-condition pass.
	if cfg.Verify {
		if err := verifyForest(g, f); err != nil {
			return nil, err
		}
	}

	return f, nil
}
