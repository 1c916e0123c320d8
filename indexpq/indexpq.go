package indexpq

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for queue construction and operations.
var (
	// ErrBadCapacity indicates a negative capacity passed to New.
	ErrBadCapacity = errors.New("indexpq: capacity must be non-negative")

	// ErrIndexRange indicates an index outside [0, Cap()).
	ErrIndexRange = errors.New("indexpq: index out of range")

	// ErrIndexPresent indicates an Insert for an index already on the queue.
	ErrIndexPresent = errors.New("indexpq: index already present")

	// ErrIndexAbsent indicates an operation on an index not on the queue.
	ErrIndexAbsent = errors.New("indexpq: index not present")

	// ErrKeyNotSmaller indicates DecreaseKey with a key larger than the current one.
	ErrKeyNotSmaller = errors.New("indexpq: key is not smaller than current key")

	// ErrUnderflow indicates DelMin/Min/MinKey on an empty queue.
	ErrUnderflow = errors.New("indexpq: queue underflow")
)

// IndexMinPQ is a bounded min-priority queue over indices 0..Cap()-1,
// each holding at most one priority of type P at a time.
type IndexMinPQ[P cmp.Ordered] struct {
	n    int   // number of indices currently on the queue
	pq   []int // 1-based heap: pq[1..n] holds indices in heap order
	qp   []int // inverse: qp[pq[k]] == k; -1 when absent
	keys []P   // keys[i] = priority of index i while present
}

// New creates an empty queue over indices [0, capacity).
// Returns ErrBadCapacity if capacity < 0.
// Complexity: O(capacity).
func New[P cmp.Ordered](capacity int) (*IndexMinPQ[P], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	q := &IndexMinPQ[P]{
		pq:   make([]int, capacity+1),
		qp:   make([]int, capacity),
		keys: make([]P, capacity),
	}
	for i := range q.qp {
		q.qp[i] = -1
	}

	return q, nil
}

// Len returns the number of indices currently on the queue. Complexity: O(1).
func (q *IndexMinPQ[P]) Len() int { return q.n }

// Cap returns the fixed index bound the queue was created with. Complexity: O(1).
func (q *IndexMinPQ[P]) Cap() int { return len(q.qp) }

// IsEmpty reports whether the queue holds no indices. Complexity: O(1).
func (q *IndexMinPQ[P]) IsEmpty() bool { return q.n == 0 }

// Contains reports whether index i is on the queue.
// Out-of-range indices are simply not present. Complexity: O(1).
func (q *IndexMinPQ[P]) Contains(i int) bool {
	if i < 0 || i >= len(q.qp) {
		return false
	}

	return q.qp[i] != -1
}

// Insert puts index i on the queue with the given key.
// Returns ErrIndexRange if i is outside [0, Cap()) and ErrIndexPresent if i
// is already held. Complexity: O(log n).
func (q *IndexMinPQ[P]) Insert(i int, key P) error {
	if err := q.check(i); err != nil {
		return err
	}
	if q.qp[i] != -1 {
		return fmt.Errorf("%w: %d", ErrIndexPresent, i)
	}

	// Place at the bottom, then restore heap order upward.
	q.n++
	q.qp[i] = q.n
	q.pq[q.n] = i
	q.keys[i] = key
	q.swim(q.n)

	return nil
}

// DecreaseKey lowers the priority of index i to key and restores heap order.
// An equal key is accepted as a no-op; a larger key returns ErrKeyNotSmaller.
// Returns ErrIndexRange / ErrIndexAbsent for invalid targets.
// Complexity: O(log n).
func (q *IndexMinPQ[P]) DecreaseKey(i int, key P) error {
	if err := q.check(i); err != nil {
		return err
	}
	if q.qp[i] == -1 {
		return fmt.Errorf("%w: %d", ErrIndexAbsent, i)
	}
	if q.keys[i] < key {
		return fmt.Errorf("%w: index %d", ErrKeyNotSmaller, i)
	}
	if q.keys[i] == key {
		return nil
	}

	q.keys[i] = key
	q.swim(q.qp[i])

	return nil
}

// DelMin removes the index with the smallest key and returns it.
// Returns ErrUnderflow on an empty queue. Complexity: O(log n).
func (q *IndexMinPQ[P]) DelMin() (int, error) {
	if q.n == 0 {
		return 0, ErrUnderflow
	}

	min := q.pq[1]
	q.exch(1, q.n)
	q.n--
	q.sink(1)
	q.qp[min] = -1 // mark absent; stale keys[min] is never observed

	return min, nil
}

// Min returns the index with the smallest key without removing it.
// Returns ErrUnderflow on an empty queue. Complexity: O(1).
func (q *IndexMinPQ[P]) Min() (int, error) {
	if q.n == 0 {
		return 0, ErrUnderflow
	}

	return q.pq[1], nil
}

// MinKey returns the smallest key on the queue.
// Returns ErrUnderflow on an empty queue. Complexity: O(1).
func (q *IndexMinPQ[P]) MinKey() (P, error) {
	var zero P
	if q.n == 0 {
		return zero, ErrUnderflow
	}

	return q.keys[q.pq[1]], nil
}

// KeyOf returns the current key of index i.
// Returns ErrIndexRange / ErrIndexAbsent for invalid targets. Complexity: O(1).
func (q *IndexMinPQ[P]) KeyOf(i int) (P, error) {
	var zero P
	if err := q.check(i); err != nil {
		return zero, err
	}
	if q.qp[i] == -1 {
		return zero, fmt.Errorf("%w: %d", ErrIndexAbsent, i)
	}

	return q.keys[i], nil
}

// check validates an external index against [0, Cap()).
func (q *IndexMinPQ[P]) check(i int) error {
	if i < 0 || i >= len(q.qp) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexRange, i, len(q.qp))
	}

	return nil
}

// greater reports whether the key at heap position a exceeds the one at b.
func (q *IndexMinPQ[P]) greater(a, b int) bool {
	return q.keys[q.pq[a]] > q.keys[q.pq[b]]
}

// exch swaps heap positions a and b, keeping the inverse array in sync.
// Every structural move goes through here so pq/qp can never drift apart.
func (q *IndexMinPQ[P]) exch(a, b int) {
	q.pq[a], q.pq[b] = q.pq[b], q.pq[a]
	q.qp[q.pq[a]] = a
	q.qp[q.pq[b]] = b
}

// swim moves the entry at position k up until its parent is no larger.
func (q *IndexMinPQ[P]) swim(k int) {
	for k > 1 && q.greater(k/2, k) {
		q.exch(k/2, k)
		k /= 2
	}
}

// sink moves the entry at position k down, always swapping with the smaller
// child, until both children are no smaller.
func (q *IndexMinPQ[P]) sink(k int) {
	for 2*k <= q.n {
		j := 2 * k
		if j < q.n && q.greater(j, j+1) {
			j++
		}
		if !q.greater(k, j) {
			break
		}
		q.exch(k, j)
		k = j
	}
}
