// Package shortestpath implements single-source shortest paths on
// edge-weighted digraphs: Dijkstra, Acyclic (DAG relaxation) and
// Bellman–Ford.
//
// Every engine consumes a *graph.Digraph and a source vertex, runs its full
// computation before returning (Constructed → Relaxing → Done, no lazy
// results) and never mutates the input graph. The result is an immutable
// *Tree exposing DistTo, HasPathTo, PathTo, and — for Bellman–Ford —
// HasNegativeCycle / NegativeCycle.
//
// Choosing an engine:
//
//   - Dijkstra     — non-negative weights only (fails fast on a negative
//     edge before any relaxation); eager decrease-key over an
//     indexpq.IndexMinPQ; O((V+E) log V).
//   - Acyclic      — any finite weights, but the digraph must be a DAG
//     (ErrCycleDetected otherwise); one relaxation per edge in topological
//     order; O(V+E).
//   - BellmanFord  — arbitrary weights; V−1 full relaxation passes with
//     early exit, then one more pass whose success proves a negative cycle.
//     A detected cycle is a first-class outcome, not an error: the call
//     succeeds, HasNegativeCycle reports true, and DistTo/PathTo refuse to
//     answer with ErrNegativeCycle until the caller acknowledges the state.
//
// Structural outcomes vs. failures: unreachable vertices keep distance
// +Inf and HasPathTo == false; PathTo returns a nil path for them and an
// empty (non-nil) path for the source itself. Validation problems — nil
// graph, out-of-range source, negative weight under Dijkstra, cyclic input
// under Acyclic — propagate immediately as errors with no partial result.
//
// The WithVerify option re-checks the textbook optimality conditions after
// the run (distTo[w] <= distTo[v]+weight for every edge, equality on tree
// edges) and fails with ErrVerifyFailed on any violation.
package shortestpath
