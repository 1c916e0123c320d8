// Package indexpq implements an index-addressable binary min-heap.
//
// An IndexMinPQ associates external integer indices 0..n-1 with priorities
// of any ordered type, each index present at most once. Unlike a plain heap,
// elements are addressed by their stable external index, so an element's
// priority can be decreased in place without a linear scan — the operation
// that lets Dijkstra and eager Prim run in O(E log V).
//
// Internals: three parallel arrays kept in sync on every exchange:
//
//	pq[k]   — index stored at 1-based heap position k
//	qp[i]   — heap position of index i, or -1 when i is absent
//	keys[i] — priority of index i while present
//
// Heap-order invariant: keys[pq[k]] <= keys[pq[2k]] and keys[pq[2k+1]]
// for every position k with children.
//
// Contract summary:
//
//   - Insert(i, key)      — O(log n); ErrIndexPresent if i already held
//   - Contains(i)         — O(1)
//   - DecreaseKey(i, key) — O(log n); ErrKeyNotSmaller if key is larger,
//     equal keys are accepted as a no-op
//   - DelMin / Min / MinKey — ErrUnderflow on an empty queue
//
// The zero value is unusable; construct with New. Not safe for concurrent
// use: a queue is algorithm-private state created per run.
package indexpq
