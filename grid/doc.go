// Package grid provides the 2D containers gridkit revolves around: a
// dense rectangular grid, a sparse default-valued grid, and a zero-copy
// transform view, all unified by one small View interface.
//
// What:
//
//   - Grid[C]: rectangular storage addressed by geom.Point, parseable
//     from line-delimited text and printable back.
//   - Sparse[C]: a Point→cell mapping with a default fallback for absent
//     keys, bakeable into a Grid once its extent is known.
//   - Transform[C]: a non-owning rotated/reflected read-write view over a
//     Grid, anchored so every visible coordinate stays non-negative.
//   - View[C]: the capability surface shared by all three
//     (At/Set/Get/Contains/Dimension/Position/Adjacent/Coordinates/Display).
//
// Why:
//
//   - Puzzle maps: parse a character grid once, then probe, mutate and
//     search it with bounds-checked coordinates.
//   - Unknown extents: accumulate cells sparsely, bake to dense when the
//     bounding box settles.
//   - Symmetry: rotate or reflect a grid for free — the view remaps
//     coordinates through an exact integer matrix instead of copying.
//
// Neighbor order is fixed and load-bearing for derived algorithms:
// Adjacent yields up, right, down, left; Neighbours yields the row-major
// scan NW, N, NE, W, E, SW, S, SE. "Up" decreases Y.
//
// Complexity:
//
//   - At/Set/Get/Contains: O(1) on Grid and Sparse, O(1) plus a 2×2
//     matrix application on Transform.
//   - Position: O(W×H) on Grid and Transform, O(n) keys on Sparse.
//   - Sparse.Dimension / ToDense: O(n) keys (plus the dense fill).
//
// Errors:
//
//   - ErrEmptyGrid: construction from no rows, no columns, or blank text.
//   - ErrRagged: construction from rows of unequal length.
//   - ErrInvalidDimensions: generator construction with a non-positive axis.
//   - ErrNoCells: dimension or bake of an empty sparse grid.
//   - geom.ErrNotUnimodular: transform construction with det ∉ {+1,-1}.
//
// Out-of-bounds At/Set is a contract violation and panics; use Get for a
// recoverable probe. A Transform assumes exclusive access to its grid for
// its whole lifetime — mutating the grid through another alias while a
// view is live is undefined (an aliasing discipline, not a runtime lock).
package grid
