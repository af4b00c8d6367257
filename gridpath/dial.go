package gridpath

import (
	"github.com/katalvlaran/gridkit/bucketq"
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// Dial computes weighted shortest distances from start, charging
// cost(cell) for every cell entered. Distances are bounded by
// Options.MaxDistance, which also sizes the bucket queue — this is
// Dial's algorithm: with small non-negative integer costs, bucket
// operations replace the O(log n) heap of classic Dijkstra.
//
// Cells costlier than the remaining budget simply stay unreached, so a
// cost of MaxDistance+1 works as a wall.
//
// Error Conditions:
//   - ErrNilView      : v is nil.
//   - ErrStartOutside : start is not contained in v.
//   - ErrNegativeCost : cost returned a negative value for some cell.
//
// Steps:
//  1. Validate the view and start, apply functional options.
//  2. Seed a bucketq with the start at priority 0.
//  3. Pop the closest point; relax each in-order neighbor: skip
//     distances beyond the cap, keep improvements, push (bucketq.Push
//     doubles as decrease-key since it moves a queued item).
//
// Complexity: O(W×H + MaxDistance) time, O(W×H + MaxDistance) memory.
func Dial[C any](v grid.View[C], start geom.Point, cost func(C) int, opts ...Option) (*Result, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if !v.Contains(start) {
		return nil, ErrStartOutside
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	q, err := bucketq.New(o.MaxDistance+1, map[geom.Point]int{start: 0})
	if err != nil {
		return nil, err
	}
	res := newResult(start)
	for it, ok := q.PopMin(); ok; it, ok = q.PopMin() {
		u, du := it.Value, it.Priority
		for _, n := range v.Adjacent(u) {
			c := cost(n.Cell)
			if c < 0 {
				return nil, ErrNegativeCost
			}
			nd := du + c
			if nd > o.MaxDistance {
				continue
			}
			if best, seen := res.Dist[n.Point]; seen && best <= nd {
				continue
			}
			res.Dist[n.Point] = nd
			res.Prev[n.Point] = u
			// Push moves an already-queued point, acting as decrease-key.
			_ = q.Push(n.Point, nd)
		}
	}

	return res, nil
}
