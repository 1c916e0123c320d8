package graph

import (
	"fmt"
	"strings"
)

// Graph is an edge-weighted undirected graph over vertices [0, V).
//
// A single shared *Edge instance is referenced from both endpoints'
// adjacency lists (a self-loop appears twice in its vertex's list), so the
// edge set never needs two copies kept in sync. Topology is append-only.
// The container is not synchronized: concurrent readers are safe as long as
// no AddEdge runs concurrently.
type Graph struct {
	numV int       // fixed vertex count
	numE int       // number of edges added so far
	adj  [][]*Edge // adj[v] = edges incident to v, insertion order
}

// NewGraph creates an empty undirected graph with v vertices and no edges.
// Returns ErrNegativeVertices if v < 0.
// Complexity: O(V).
func NewGraph(v int) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &Graph{numV: v, adj: make([][]*Edge, v)}, nil
}

// V returns the vertex count. Complexity: O(1).
func (g *Graph) V() int { return g.numV }

// E returns the number of edges added so far. Each undirected edge counts
// once, even though it is referenced from two adjacency lists.
// Complexity: O(1).
func (g *Graph) E() int { return g.numE }

// AddEdge creates the undirected edge v-w with the given weight, stores the
// single shared instance in both endpoints' lists and returns it.
// Self-loops and parallel edges are permitted.
//
// Fails fast with ErrVertexRange if either endpoint is outside [0, V) and
// ErrBadWeight for NaN/±Inf weights; on failure the container is unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v, w int, weight float64) (*Edge, error) {
	// 1) Validate endpoints against the fixed vertex range.
	if err := g.check(v); err != nil {
		return nil, err
	}
	if err := g.check(w); err != nil {
		return nil, err
	}

	// 2) Validate the weight via the shared edge constructor.
	e, err := NewEdge(v, w, weight)
	if err != nil {
		return nil, err
	}

	// 3) Commit: the same instance goes into both lists.
	g.adj[v] = append(g.adj[v], e)
	g.adj[w] = append(g.adj[w], e)
	g.numE++

	return e, nil
}

// Adj returns the edges incident to v in insertion order.
// The returned slice is a fresh copy on every call; mutating it does not
// affect the container. Returns ErrVertexRange if v is outside [0, V).
// Complexity: O(deg(v)).
func (g *Graph) Adj(v int) ([]*Edge, error) {
	if err := g.check(v); err != nil {
		return nil, err
	}
	out := make([]*Edge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Degree returns the number of incident edges at v; a self-loop counts
// twice. Returns ErrVertexRange if v is outside [0, V). Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.check(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// Edges returns every edge exactly once, in a freshly allocated slice.
// Each shared instance is reported from its lower-ordered appearance:
// an edge v-w is emitted while scanning v's list when Other(v) >= v, so
// self-loops appear once. Complexity: O(V + E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.numE)
	for v := 0; v < g.numV; v++ {
		selfLoops := 0
		for _, e := range g.adj[v] {
			w := e.Other(v)
			switch {
			case w > v:
				out = append(out, e)
			case w == v:
				// Self-loop: present twice in adj[v], emit every other hit.
				if selfLoops%2 == 0 {
					out = append(out, e)
				}
				selfLoops++
			}
		}
	}

	return out
}

// String renders the graph as "V E" followed by one adjacency line per
// vertex.
func (g *Graph) String() string {
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
func (g *Graph) check(v int) error {
	if v < 0 || v >= g.numV {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexRange, v, g.numV)
	}

	return nil
}
