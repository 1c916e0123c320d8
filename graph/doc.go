// Package graph provides compact adjacency-list containers for weighted
// graphs over integer vertices, together with the immutable edge types the
// algorithm packages consume.
//
// Vertices are opaque indices in [0, V): there is no vertex object, identity
// is positional. A container is created with a fixed vertex count and grows
// only by AddEdge; edges are never removed. Self-loops and parallel edges
// are permitted.
//
// Two containers are provided:
//
//   - Digraph — directed: each *DirectedEdge appears once, in the adjacency
//     list of its source vertex.
//   - Graph — undirected: each *Edge is a single shared instance referenced
//     from both endpoints' adjacency lists, so Other(v) resolves the
//     non-query endpoint without keeping two copies in sync.
//
// Both expose V, E, Adj, Edges and a String rendering. Adj returns a fresh
// slice on every call (insertion order), so callers may iterate and restart
// freely without aliasing container state.
//
// Construction is validated fail-fast: negative vertex counts, out-of-range
// endpoints and non-finite (NaN/±Inf) weights are rejected at the point of
// the offending call, never silently accepted.
//
// ReadDigraph and ReadGraph build a container from the plain-text format
//
//	V E
//	v w weight   (E times)
//
// where tokens are whitespace-separated; malformed input yields ErrBadFormat
// wrapped with token context.
//
// Complexity: AddEdge O(1) amortized; Adj(v) O(deg(v)) for the copy;
// Edges O(E); memory O(V + E).
package graph
