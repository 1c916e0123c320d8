package flow

import (
	"fmt"
	"strings"
)

// Network is a capacitated flow network over vertices [0, V).
//
// Each registered *FlowEdge appears in both endpoints' adjacency lists so
// BFS over residual capacities can traverse edges forward and backward.
// Topology is append-only; flows on the stored edges mutate during MaxFlow.
type Network struct {
	numV int
	numE int
	adj  [][]*FlowEdge
}

// NewNetwork creates an empty network with v vertices.
// Returns ErrNegativeVertices if v < 0. Complexity: O(V).
func NewNetwork(v int) (*Network, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &Network{numV: v, adj: make([][]*FlowEdge, v)}, nil
}

// V returns the vertex count. Complexity: O(1).
func (n *Network) V() int { return n.numV }

// E returns the number of edges added so far. Complexity: O(1).
func (n *Network) E() int { return n.numE }

// AddEdge creates the flow edge from→to with the given capacity, registers
// the single instance with both endpoints and returns it.
// Fails fast on out-of-range endpoints and invalid capacities.
// Complexity: O(1) amortized.
func (n *Network) AddEdge(from, to int, capacity float64) (*FlowEdge, error) {
	if err := n.check(from); err != nil {
		return nil, err
	}
	if err := n.check(to); err != nil {
		return nil, err
	}
	e, err := NewFlowEdge(from, to, capacity)
	if err != nil {
		return nil, err
	}
	n.add(e)

	return e, nil
}

// Add registers a pre-built edge with both of its endpoints.
// Returns ErrNilEdge for nil and ErrVertexRange when an endpoint does not
// fit this network. Complexity: O(1) amortized.
func (n *Network) Add(e *FlowEdge) error {
	if e == nil {
		return ErrNilEdge
	}
	if err := n.check(e.from); err != nil {
		return err
	}
	if err := n.check(e.to); err != nil {
		return err
	}
	n.add(e)

	return nil
}

func (n *Network) add(e *FlowEdge) {
	n.adj[e.from] = append(n.adj[e.from], e)
	if e.to != e.from {
		n.adj[e.to] = append(n.adj[e.to], e)
	}
	n.numE++
}

// Adj returns the edges incident to v (forward and backward) in insertion
// order, as a fresh slice. Returns ErrVertexRange if v is outside [0, V).
// Complexity: O(deg(v)).
func (n *Network) Adj(v int) ([]*FlowEdge, error) {
	if err := n.check(v); err != nil {
		return nil, err
	}
	out := make([]*FlowEdge, len(n.adj[v]))
	copy(out, n.adj[v])

	return out, nil
}

// Edges returns every edge exactly once (scanned from its tail vertex),
// in a freshly allocated slice. Complexity: O(V + E).
func (n *Network) Edges() []*FlowEdge {
	out := make([]*FlowEdge, 0, n.numE)
	for v := 0; v < n.numV; v++ {
		for _, e := range n.adj[v] {
			if e.from == v {
				out = append(out, e)
			}
		}
	}

	return out
}

// String renders the network as "V E" followed by one line per vertex.
func (n *Network) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d\n", n.numV, n.numE)
	for v := 0; v < n.numV; v++ {
		fmt.Fprintf(&b, "%d:", v)
		for _, e := range n.adj[v] {
			if e.from == v {
				fmt.Fprintf(&b, " %s", e)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// check validates a single vertex index against [0, V).
func (n *Network) check(v int) error {
	if v < 0 || v >= n.numV {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexRange, v, n.numV)
	}

	return nil
}
