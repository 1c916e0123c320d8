package shortestpath

import (
	"fmt"
	"math"

	"github.com/korzhvl/wgraph/graph"
)

// Tree is the immutable result of a shortest-path run: per-vertex best
// distances and the incoming tree edge of each reached vertex.
//
// The referenced *graph.DirectedEdge instances are the graph's own edges,
// shared read-only. A Tree built by BellmanFord may instead carry a negative
// cycle; in that state distances are undefined and DistTo/PathTo return
// ErrNegativeCycle.
type Tree struct {
	source int
	distTo []float64             // +Inf = unreached
	edgeTo []*graph.DirectedEdge // nil = unreached (or the source)
	cycle  []*graph.DirectedEdge // non-nil iff a negative cycle was found
}

// newTree allocates the per-vertex working state for an engine run:
// all distances +Inf except the source at 0, no tree edges.
func newTree(source, v int) *Tree {
	t := &Tree{
		source: source,
		distTo: make([]float64, v),
		edgeTo: make([]*graph.DirectedEdge, v),
	}
	for i := range t.distTo {
		t.distTo[i] = math.Inf(1)
	}
	t.distTo[source] = 0

	return t
}

// Source returns the source vertex the tree was computed from.
func (t *Tree) Source() int { return t.source }

// HasNegativeCycle reports whether the run found a negative cycle
// (Bellman–Ford only; always false for Dijkstra and Acyclic trees).
func (t *Tree) HasNegativeCycle() bool { return t.cycle != nil }

// NegativeCycle returns the edges of one detected negative cycle in forward
// order, or nil if none was found. The slice is a fresh copy.
func (t *Tree) NegativeCycle() []*graph.DirectedEdge {
	if t.cycle == nil {
		return nil
	}
	out := make([]*graph.DirectedEdge, len(t.cycle))
	copy(out, t.cycle)

	return out
}

// DistTo returns the weight of the shortest path from the source to v,
// or +Inf when v is unreachable.
// Returns ErrNegativeCycle if the run found a negative cycle and
// ErrVertexRange if v is outside [0, V).
func (t *Tree) DistTo(v int) (float64, error) {
	if t.cycle != nil {
		return 0, ErrNegativeCycle
	}
	if err := t.check(v); err != nil {
		return 0, err
	}

	return t.distTo[v], nil
}

// HasPathTo reports whether the source reaches v. Out-of-range vertices and
// trees holding a negative cycle report false.
func (t *Tree) HasPathTo(v int) bool {
	if t.cycle != nil || v < 0 || v >= len(t.distTo) {
		return false
	}

	return !math.IsInf(t.distTo[v], 1)
}

// PathTo returns the shortest path from the source to v as edges in forward
// order (source first). Three shapes are possible:
//
//   - unreachable v → (nil, nil): the absence of a path is an expected
//     outcome, not an error
//   - v == source   → an empty, non-nil slice: the zero-length path exists
//   - otherwise     → the tree edges from source to v
//
// Returns ErrNegativeCycle / ErrVertexRange as DistTo does.
// Complexity: O(length of the path).
func (t *Tree) PathTo(v int) ([]*graph.DirectedEdge, error) {
	if t.cycle != nil {
		return nil, ErrNegativeCycle
	}
	if err := t.check(v); err != nil {
		return nil, err
	}
	if math.IsInf(t.distTo[v], 1) {
		return nil, nil
	}

	// Walk edgeTo backward from v to the source, then reverse in place.
	path := make([]*graph.DirectedEdge, 0, 4)
	for e := t.edgeTo[v]; e != nil; e = t.edgeTo[e.From()] {
		path = append(path, e)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// check validates a query vertex against the tree's vertex range.
func (t *Tree) check(v int) error {
	if v < 0 || v >= len(t.distTo) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexRange, v, len(t.distTo))
	}

	return nil
}
