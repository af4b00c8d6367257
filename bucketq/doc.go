// Package bucketq implements a bounded-priority bucket queue: a
// min-priority queue whose priorities are small non-negative ints
// strictly below a fixed bound.
//
// What:
//
//   - Queue[T] keeps one bucket (set of items) per priority 0..bound-1.
//   - Push inserts or moves an item; ModifyKey is the decrease/increase-key.
//   - PopMin scans buckets upward and removes an arbitrary item from the
//     first non-empty one.
//
// Why:
//
//   - Dial's shortest paths: when distances are bounded small ints,
//     buckets beat a binary heap — pushes and key changes are O(1).
//   - Priority scheduling over a handful of levels.
//
// Complexity:
//
//   - Push / ModifyKey / Len: O(1).
//   - PopMin: O(bound) worst case for the upward scan, O(1) per item
//     amortized when priorities are popped in passes.
//   - Memory: O(bound + n).
//
// Errors:
//
//   - ErrInvalidBound: bound is not positive.
//   - ErrPriorityRange: a priority falls outside [0, bound).
//
// Items sharing a priority are popped in no particular order.
package bucketq
