// Package unionfind provides a weighted disjoint-set (union-find) structure
// over the integers 0..n-1.
//
// What:
//
//   - Elements are plain int indices into flat parent/size slices; no per-node
//     allocation.
//   - Union attaches the root of the smaller tree under the root of the larger
//     one (union by size). On a tie the second argument's root goes under the
//     first argument's root.
//   - Find compresses the traversed path: every visited element is repointed
//     directly to the root.
//
// Why:
//
//   - Incremental connectivity: answer "are i and j connected?" while edges
//     keep arriving, without recomputing components from scratch.
//
// Complexity:
//
//   - New:               O(n) time, O(n) memory.
//   - Find/Union/Connected: O(α(n)) amortized, α = inverse Ackermann.
//
// Errors:
//
//   - ErrInvalidArgument: New called with n < 1.
//   - ErrIndexOutOfRange: element outside [0, n).
//
// A UnionFind is not safe for concurrent use.
package unionfind
