package graph

import (
	"fmt"
	"strings"
)

// Digraph is an edge-weighted directed graph over vertices [0, V).
//
// The vertex count is fixed at construction; the edge set grows only through
// AddEdge (append-only topology, no removal). Each *DirectedEdge appears
// exactly once, in the adjacency list of its source vertex, in insertion
// order. The container is not synchronized: concurrent readers are safe as
// long as no AddEdge runs concurrently.
type Digraph struct {
	numV     int               // fixed vertex count
	numE     int               // number of edges added so far
	adj      [][]*DirectedEdge // adj[v] = edges leaving v, insertion order
	indegree []int             // indegree[v] = number of edges entering v
}

// NewDigraph creates an empty digraph with v vertices and no edges.
// Returns ErrNegativeVertices if v < 0.
// Complexity: O(V).
func NewDigraph(v int) (*Digraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &Digraph{
		numV:     v,
		adj:      make([][]*DirectedEdge, v),
		indegree: make([]int, v),
	}, nil
}

// V returns the vertex count. Complexity: O(1).
func (g *Digraph) V() int { return g.numV }

// E returns the number of edges added so far. Complexity: O(1).
func (g *Digraph) E() int { return g.numE }

// AddEdge creates the directed edge from→to with the given weight, stores it
// and returns it. Self-loops and parallel edges are permitted.
//
// Fails fast with ErrVertexRange if either endpoint is outside [0, V) and
// ErrBadWeight for NaN/±Inf weights; on failure the container is unchanged.
// Complexity: O(1) amortized.
func (g *Digraph) AddEdge(from, to int, weight float64) (*DirectedEdge, error) {
	// 1) Validate endpoints against the fixed vertex range.
	if err := g.check(from); err != nil {
		return nil, err
	}
	if err := g.check(to); err != nil {
		return nil, err
	}

	// 2) Validate the weight via the shared edge constructor.
	e, err := NewDirectedEdge(from, to, weight)
	if err != nil {
		return nil, err
	}

	// 3) Commit: append to the source list, bump counters.
	g.adj[from] = append(g.adj[from], e)
	g.indegree[to]++
	g.numE++

	return e, nil
}

// Adj returns the edges leaving v in insertion order.
// The returned slice is a fresh copy on every call; mutating it does not
// affect the container. Returns ErrVertexRange if v is outside [0, V).
// Complexity: O(deg(v)).
func (g *Digraph) Adj(v int) ([]*DirectedEdge, error) {
	if err := g.check(v); err != nil {
		return nil, err
	}
	out := make([]*DirectedEdge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Outdegree returns the number of edges leaving v.
// Returns ErrVertexRange if v is outside [0, V). Complexity: O(1).
func (g *Digraph) Outdegree(v int) (int, error) {
	if err := g.check(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// Indegree returns the number of edges entering v.
// Returns ErrVertexRange if v is outside [0, V). Complexity: O(1).
func (g *Digraph) Indegree(v int) (int, error) {
	if err := g.check(v); err != nil {
		return 0, err
	}

	return g.indegree[v], nil
}

// Edges returns every edge of the digraph, grouped by source vertex in
// insertion order. The slice is freshly allocated. Complexity: O(V + E).
func (g *Digraph) Edges() []*DirectedEdge {
	out := make([]*DirectedEdge, 0, g.numE)
	for v := 0; v < g.numV; v++ {
		out = append(out, g.adj[v]...)
	}

	return out
}

// Reverse returns a new digraph with every edge direction flipped.
// Reversed edges are fresh instances; the receiver is not modified.
// Complexity: O(V + E).
func (g *Digraph) Reverse() *Digraph {
	r, _ := NewDigraph(g.numV) // numV is known non-negative
	for v := 0; v < g.numV; v++ {
		for _, e := range g.adj[v] {
			_, _ = r.AddEdge(e.to, e.from, e.weight) // endpoints/weight already validated
		}
	}

	return r
}

// String renders the digraph as "V E" followed by one adjacency line per
// vertex, matching the text format accepted by ReadDigraph for the header.
func (g *Digraph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d\n", g.numV, g.numE)
	for v := 0; v < g.numV; v++ {
		fmt.Fprintf(&b, "%d:", v)
		for _, e := range g.adj[v] {
			fmt.Fprintf(&b, " %s", e)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// check validates a single vertex index against [0, V).
func (g *Digraph) check(v int) error {
	if v < 0 || v >= g.numV {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexRange, v, g.numV)
	}

	return nil
}
