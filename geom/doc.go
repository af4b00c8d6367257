// Package geom provides the integer plane primitives the rest of gridkit
// is built on: 2D points and exact 2×2 integer matrices.
//
// What:
//
//   - Point: an ordered pair of ints with componentwise arithmetic.
//   - Manhattan and Chebyshev distances between points.
//   - Min/Max componentwise reducers and BoundingBox over a point stream.
//   - Mat2: a 2×2 integer matrix with multiplication, determinant and an
//     exact adjugate inverse for unimodular matrices (det = ±1).
//   - Rot: the matrix for any number of quarter-turns.
//
// Why:
//
//   - Grid puzzles live on ℤ²: cells are addressed by integer coordinates,
//     and every rotation or reflection of a grid is a unimodular basis
//     change that stays exact in integer arithmetic.
//
// Errors:
//
//   - ErrNotUnimodular: Inverse requested for a matrix with det ∉ {+1,-1}.
//   - ErrNoPoints: BoundingBox over an empty point stream.
//
// All types are small value types; copy them freely.
package geom
