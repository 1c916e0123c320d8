// Package mst computes minimum spanning forests of edge-weighted undirected
// graphs with Prim's and Kruskal's algorithms.
//
// Both engines consume a *graph.Graph, never mutate it, and return a
// *Forest: the selected edges (the graph's own shared *graph.Edge
// instances) and their total weight. On a disconnected graph the result is
// a minimum spanning forest — one tree per connected component, V−C edges
// for C components — rather than an error: disconnection is an expected
// input shape, not a failure.
//
//   - Prim    — grows a tree per component with the same eager
//     IndexMinPQ-driven relaxation pattern as Dijkstra, keyed by the
//     lightest edge connecting each vertex to the growing tree;
//     O(E log V).
//   - Kruskal — stable-sorts all edges by weight and accepts each edge
//     whose endpoints are in different union-find components, stopping at
//     V−1 accepted edges; O(E log E).
//
// Equal-weight ties may be broken differently by the two engines; the total
// forest weight is identical either way.
//
// Compute dispatches between the two via WithMethod (MethodPrim /
// MethodKruskal); both functions remain directly callable. The WithVerify
// option re-checks acyclicity, per-component spanning and cut optimality
// after the run, failing with ErrVerifyFailed on any violation.
package mst
