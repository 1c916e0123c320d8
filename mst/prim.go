// Prim's algorithm, eager variant: the heap holds every fringe vertex keyed
// by the weight of its lightest known edge into the growing tree.
package mst

import (
	"math"

	"github.com/korzhvl/wgraph/graph"
	"github.com/korzhvl/wgraph/indexpq"
)

// Prim computes a minimum spanning forest of g.
//
// The outer loop scans all vertices and starts a fresh tree from each one
// not yet claimed by an earlier tree, so disconnected graphs yield one
// spanning tree per component. Within a component the growth mirrors
// Dijkstra's eager relaxation, except the IndexMinPQ key of a fringe vertex
// is the weight of its cheapest edge to the tree, not a distance from a
// source.
//
// Steps per component:
//  1. Seed the start vertex with key 0.
//  2. Extract the minimum-key vertex, claim it for the tree, and record its
//     stored edge (nil only for the seed).
//  3. For each incident edge to an unclaimed vertex w, if it is lighter
//     than w's current best edge, update edgeTo[w] and decrease w's key
//     (or insert w on first contact).
//
// Complexity: O(E log V) time, O(V) extra space.
func Prim(g *graph.Graph, opts ...Option) (*Forest, error) {
	// 1) Build options and validate input.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Per-run working state, shared across the per-component scans.
	numV := g.V()
	distTo := make([]float64, numV) // lightest known edge weight into the tree
	edgeTo := make([]*graph.Edge, numV)
	marked := make([]bool, numV)
	for v := range distTo {
		distTo[v] = math.Inf(1)
	}
	pq, err := indexpq.New[float64](numV)
	if err != nil {
		return nil, err
	}

	// 3) One tree per component.
	for s := 0; s < numV; s++ {
		if marked[s] {
			continue
		}
		if err := primComponent(g, s, distTo, edgeTo, marked, pq); err != nil {
			return nil, err
		}
	}

	// 4) Collect the forest: every claimed vertex except component seeds
	//    carries exactly one tree edge.
	f := &Forest{edges: make([]*graph.Edge, 0, numV)}
	for v := 0; v < numV; v++ {
		if edgeTo[v] != nil {
			f.edges = append(f.edges, edgeTo[v])
			f.weight += edgeTo[v].Weight()
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

// primComponent grows one spanning tree from seed s, claiming every vertex
// of its connected component. The pq is drained on return and reusable by
// the next component.
func primComponent(g *graph.Graph, s int, distTo []float64, edgeTo []*graph.Edge, marked []bool, pq *indexpq.IndexMinPQ[float64]) error {
	distTo[s] = 0
	if err := pq.Insert(s, 0); err != nil {
		return err
	}

	for !pq.IsEmpty() {
		v, err := pq.DelMin()
		if err != nil {
			return err
		}
		marked[v] = true

		adj, err := g.Adj(v)
		if err != nil {
			return err
		}
		for _, e := range adj {
			w := e.Other(v)
			// Claimed vertices (including v itself for self-loops) are done.
			if marked[w] {
				continue
			}
			if e.Weight() >= distTo[w] {
				continue // not an improvement over w's current best edge
			}
			distTo[w] = e.Weight()
			edgeTo[w] = e
			if pq.Contains(w) {
				err = pq.DecreaseKey(w, e.Weight())
			} else {
				err = pq.Insert(w, e.Weight())
			}
			if err != nil {
				return err
			}
		}
	}

	return nil
}
