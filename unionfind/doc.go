// Package unionfind implements an array-backed disjoint-set structure with
// path halving and union by rank.
//
// Components merge monotonically: Count only decreases, Union never splits.
// Find and Connected are pure queries. Near-constant amortized cost per
// operation; correctness, not performance, is the hard contract.
//
// Elements are ints in [0, n); out-of-range arguments panic, matching plain
// slice indexing — a UnionFind is inner-loop state for Kruskal-style
// consumers that have already validated their vertices.
package unionfind
