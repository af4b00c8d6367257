// Package unionfind implements a disjoint-set (union-find) structure
// with path compression and union by rank.
//
// What:
//
//   - UnionFind tracks a partition of the elements 0..n-1 into disjoint sets.
//   - Find returns a canonical representative per set.
//   - Union merges two sets; DistinctCount reports how many remain.
//
// Why:
//
//   - Connected components: merge cells/vertices as edges appear.
//   - Kruskal-style algorithms: cheap cycle detection while building trees.
//   - Puzzle bookkeeping: "how many regions are left" in O(1).
//
// Complexity:
//
//   - Find / Union / Connected: O(α(n)) amortized (inverse Ackermann,
//     effectively constant).
//   - Memory: O(n).
//
// Errors:
//
//   - ErrNegativeCount: New called with n < 0.
//
// Elements are dense ints in [0, n); passing an element outside that
// range is a contract violation and panics like any slice index.
package unionfind
