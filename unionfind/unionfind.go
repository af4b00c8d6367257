package unionfind

import "errors"

// ErrNegativeCount indicates New was called with a negative element count.
var ErrNegativeCount = errors.New("unionfind: element count must be non-negative")

// UnionFind is a partition of the elements 0..n-1 into disjoint sets.
// The zero value is unusable; construct with New.
type UnionFind struct {
	parent   []int
	rank     []int
	distinct int
}

// New returns a UnionFind over n singleton sets {0}, {1}, ..., {n-1}.
// Returns ErrNegativeCount for n < 0.
// Complexity: O(n).
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &UnionFind{
		parent:   parent,
		rank:     make([]int, n),
		distinct: n,
	}, nil
}

// Find returns the canonical representative of x's set, compressing the
// path as it walks: every visited element is pointed at its grandparent,
// halving the path for future lookups.
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// Union merges the sets containing a and b. Merging two elements
// already in the same set is a no-op. Roots are linked by rank: the
// shallower tree hangs under the deeper one, and equal ranks grow the
// surviving root by one.
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Union(a, b int) {
	rootA := u.Find(a)
	rootB := u.Find(b)
	if rootA == rootB {
		return
	}
	switch {
	case u.rank[rootA] > u.rank[rootB]:
		u.parent[rootB] = rootA
	case u.rank[rootA] < u.rank[rootB]:
		u.parent[rootA] = rootB
	default:
		u.parent[rootB] = rootA
		u.rank[rootA]++
	}
	u.distinct--
}

// Connected reports whether a and b are currently in the same set.
func (u *UnionFind) Connected(a, b int) bool {
	return u.Find(a) == u.Find(b)
}

// DistinctCount returns the number of disjoint sets remaining.
// Complexity: O(1).
func (u *UnionFind) DistinctCount() int {
	return u.distinct
}

// Len returns the total number of elements.
func (u *UnionFind) Len() int {
	return len(u.parent)
}
