// Package flow implements maximum flow on capacitated networks with the
// Edmonds–Karp algorithm (shortest augmenting paths by BFS).
//
// A Network stores residual flow edges: each *FlowEdge carries an immutable
// capacity and a mutable flow, and is registered with both of its endpoints
// so forward traversal consumes remaining capacity while backward traversal
// undoes committed flow. MaxFlow repeatedly finds the fewest-edge augmenting
// path from source to sink, pushes its bottleneck, and stops when no
// residual path remains; the final residual reachability from the source
// is exposed as the minimum cut.
//
// Validation fails fast: negative or non-finite capacities at edge
// construction, out-of-range endpoints at AddEdge, and source == sink at
// MaxFlow. WithEpsilon tunes the threshold below which residual capacity
// counts as exhausted (default 1e-9).
//
// Complexity: O(V·E²) time, O(V + E) memory.
package flow
