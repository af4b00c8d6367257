package gridpath

import (
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/unionfind"
)

// Components groups the passable cells of v into 4-connected regions
// using a disjoint-set structure. Components and their members appear
// in the view's Coordinates order, so the result is deterministic
// (row-major) for dense grids and transform views; sparse views
// inherit their unspecified key order.
//
// Returns nil for a nil view or when no cell is passable.
//
// Complexity: O(W×H·α(W×H)) time, O(W×H) memory.
func Components[C any](v grid.View[C], passable func(C) bool) [][]geom.Point {
	if v == nil {
		return nil
	}

	// Collect passable points and index them for the DSU.
	var pts []geom.Point
	index := make(map[geom.Point]int)
	for p := range v.Coordinates() {
		if !passable(v.At(p)) {
			continue
		}
		index[p] = len(pts)
		pts = append(pts, p)
	}
	if len(pts) == 0 {
		return nil
	}

	u, err := unionfind.New(len(pts))
	if err != nil {
		return nil
	}
	for i, p := range pts {
		for _, d := range grid.AdjacentOffsets {
			if j, ok := index[p.Add(d)]; ok {
				u.Union(i, j)
			}
		}
	}

	// Group members per root, keeping first-appearance order.
	groups := make(map[int][]geom.Point)
	var order []int
	for i, p := range pts {
		root := u.Find(i)
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], p)
	}
	out := make([][]geom.Point, 0, len(order))
	for _, root := range order {
		out = append(out, groups[root])
	}

	return out
}
