package unionfind

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative element count passed to New.
var ErrBadSize = errors.New("unionfind: size must be non-negative")

// UnionFind partitions the ints [0, n) into disjoint components.
type UnionFind struct {
	parent []int  // parent[p] = parent of p; roots point to themselves
	rank   []int8 // rank[root] bounds the height of its tree
	count  int    // current number of components
}

// New creates a UnionFind with n singleton components.
// Returns ErrBadSize if n < 0. Complexity: O(n).
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int8, n),
		count:  n,
	}
	for p := range uf.parent {
		uf.parent[p] = p
	}

	return uf, nil
}

// Find returns the component representative of p, compressing the walked
// path by halving (each node on the way points to its grandparent).
// Amortized near-O(1).
func (uf *UnionFind) Find(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// Connected reports whether p and q are in the same component.
func (uf *UnionFind) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

// Union merges the components of p and q, attaching the lower-rank root
// under the higher-rank one. It reports whether a merge happened (false
// means p and q were already connected).
func (uf *UnionFind) Union(p, q int) bool {
	rootP := uf.Find(p)
	rootQ := uf.Find(q)
	if rootP == rootQ {
		return false
	}

	switch {
	case uf.rank[rootP] < uf.rank[rootQ]:
		uf.parent[rootP] = rootQ
	case uf.rank[rootP] > uf.rank[rootQ]:
		uf.parent[rootQ] = rootP
	default:
		uf.parent[rootQ] = rootP
		uf.rank[rootP]++
	}
	uf.count--

	return true
}

// Count returns the current number of components; it only ever decreases.
func (uf *UnionFind) Count() int { return uf.count }
