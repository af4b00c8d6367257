package gridpath

import (
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// BFS computes unit-cost shortest distances from start to every
// reachable passable cell, expanding neighbors in the fixed order up,
// right, down, left.
//
// Error Conditions:
//   - ErrNilView      : v is nil.
//   - ErrStartOutside : start is not contained in v.
//   - ErrStartBlocked : the start cell fails passable.
//
// Steps:
//  1. Validate the view, the start containment and the start cell.
//  2. Seed the result with dist[start] = 0.
//  3. Pop points off an index-scanned queue; for each in-order neighbor
//     that is passable and unseen, record dist+1 and the predecessor.
//
// Complexity: O(W×H) time, O(W×H) memory.
func BFS[C any](v grid.View[C], start geom.Point, passable func(C) bool) (*Result, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if !v.Contains(start) {
		return nil, ErrStartOutside
	}
	if !passable(v.At(start)) {
		return nil, ErrStartBlocked
	}

	res := newResult(start)
	queue := []geom.Point{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := res.Dist[u]
		for _, n := range v.Adjacent(u) {
			if !passable(n.Cell) {
				continue
			}
			if _, seen := res.Dist[n.Point]; seen {
				continue
			}
			res.Dist[n.Point] = du + 1
			res.Prev[n.Point] = u
			queue = append(queue, n.Point)
		}
	}

	return res, nil
}
