// Package gridpath runs traversal algorithms over anything satisfying
// grid.View: breadth-first search, Dial's bucket-queue shortest paths,
// and connected-component grouping.
//
// What:
//
//   - BFS: unit-cost distances and predecessors from a start cell.
//   - Dial: weighted shortest paths for small non-negative cell costs,
//     backed by a bucketq.Queue instead of a binary heap.
//   - Components: 4-connected groups of passable cells via unionfind.
//
// Why:
//
//   - Grid puzzles are shortest-path puzzles more often than not; these
//     run directly on the grid without converting to a graph first.
//   - Expansion follows grid.AdjacentOffsets (up, right, down, left), so
//     tie-breaking is deterministic and matches the grid's documented order.
//
// Complexity:
//
//   - BFS:        O(W×H) time, O(W×H) memory.
//   - Dial:       O(W×H + MaxDistance) time, O(W×H + MaxDistance) memory.
//   - Components: O(W×H·α(W×H)) time, O(W×H) memory.
//
// Errors:
//
//   - ErrNilView:       the view is nil.
//   - ErrStartOutside:  the start point is not contained in the view.
//   - ErrStartBlocked:  the start cell fails the passability predicate.
//   - ErrNegativeCost:  Dial met a cell with a negative cost.
//   - ErrBadMaxDistance: WithMaxDistance given a non-positive cap.
//
// A note on sparse grids: grid.Sparse has unbounded, unfiltered
// adjacency, so BFS and Dial over a Sparse view diverge unless the
// default cell is impassable (or costlier than MaxDistance).
package gridpath
