// This file declares the sentinel errors and the immutable edge value types
// (DirectedEdge, Edge) shared by both containers.
package graph

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for container construction and mutation.
var (
	// ErrNegativeVertices indicates a negative vertex count passed to a constructor.
	ErrNegativeVertices = errors.New("graph: vertex count must be non-negative")

	// ErrVertexRange indicates a vertex index outside [0, V).
	ErrVertexRange = errors.New("graph: vertex out of range")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be finite")

	// ErrBadFormat indicates malformed text input fed to ReadDigraph/ReadGraph.
	ErrBadFormat = errors.New("graph: malformed graph input")
)

// finite reports whether w is a usable edge weight (not NaN, not ±Inf).
func finite(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0)
}

// DirectedEdge is an immutable weighted edge from→to.
//
// Instances are created once (by NewDirectedEdge or Digraph.AddEdge), never
// mutated, and shared read-only between the owning Digraph and any algorithm
// result that references them.
type DirectedEdge struct {
	from   int     // source vertex
	to     int     // destination vertex
	weight float64 // finite real weight
}

// NewDirectedEdge validates endpoints and weight and returns the edge.
// Returns ErrVertexRange for negative endpoints and ErrBadWeight for
// NaN/±Inf weights. Complexity: O(1).
func NewDirectedEdge(from, to int, weight float64) (*DirectedEdge, error) {
	if from < 0 || to < 0 {
		return nil, fmt.Errorf("%w: %d->%d", ErrVertexRange, from, to)
	}
	if !finite(weight) {
		return nil, fmt.Errorf("%w: %d->%d weight=%v", ErrBadWeight, from, to, weight)
	}

	return &DirectedEdge{from: from, to: to, weight: weight}, nil
}

// From returns the source vertex. Complexity: O(1).
func (e *DirectedEdge) From() int { return e.from }

// To returns the destination vertex. Complexity: O(1).
func (e *DirectedEdge) To() int { return e.to }

// Weight returns the edge weight. Complexity: O(1).
func (e *DirectedEdge) Weight() float64 { return e.weight }

// String renders the edge as "from->to weight".
func (e *DirectedEdge) String() string {
	return fmt.Sprintf("%d->%d %.5g", e.from, e.to, e.weight)
}

// Edge is an immutable weighted undirected edge between v and w.
//
// A single *Edge instance is stored in both endpoints' adjacency lists of
// its owning Graph; use Either and Other to resolve endpoints relative to
// the vertex you are iterating from.
type Edge struct {
	v      int     // one endpoint
	w      int     // the other endpoint
	weight float64 // finite real weight
}

// NewEdge validates endpoints and weight and returns the edge.
// Returns ErrVertexRange for negative endpoints and ErrBadWeight for
// NaN/±Inf weights. Complexity: O(1).
func NewEdge(v, w int, weight float64) (*Edge, error) {
	if v < 0 || w < 0 {
		return nil, fmt.Errorf("%w: %d-%d", ErrVertexRange, v, w)
	}
	if !finite(weight) {
		return nil, fmt.Errorf("%w: %d-%d weight=%v", ErrBadWeight, v, w, weight)
	}

	return &Edge{v: v, w: w, weight: weight}, nil
}

// Either returns one endpoint of the edge (always the first constructor
// argument). Complexity: O(1).
func (e *Edge) Either() int { return e.v }

// Other returns the endpoint opposite to x.
// Panics if x is neither endpoint; passing a foreign vertex is a programming
// error on the caller's side, not a recoverable condition.
// Complexity: O(1).
func (e *Edge) Other(x int) int {
	switch x {
	case e.v:
		return e.w
	case e.w:
		return e.v
	default:
		panic(fmt.Sprintf("graph: vertex %d is not an endpoint of edge %s", x, e))
	}
}

// Weight returns the edge weight. Complexity: O(1).
func (e *Edge) Weight() float64 { return e.weight }

// String renders the edge as "v-w weight".
func (e *Edge) String() string {
	return fmt.Sprintf("%d-%d %.5g", e.v, e.w, e.weight)
}
