// Package percolation models site percolation on an N×N grid of cells that
// are opened one at a time.
//
// What:
//
//   - Percolation tracks per-cell open/blocked state and keeps a
//     unionfind.UnionFind of N*N+2 elements: one per cell plus a virtual top
//     (index 0) and a virtual bottom (index N*N+1).
//   - Opening a cell unions it with its open 4-neighbors, and with the
//     virtual top (row 1) or bottom (row N).
//   - Percolates is then a single connectivity query between the two virtual
//     elements; no flood fill is ever run.
//
// Coordinates are 1-indexed: row and col ∈ [1, N]. Cell (row, col) maps to
// element (row-1)*N + col.
//
// Complexity:
//
//   - New:         O(N²) time and memory.
//   - Open:        O(α(N²)) amortized (at most 6 unions).
//   - IsOpen:      O(1).
//   - IsFull:      O(α(N²)) amortized.
//   - Percolates:  O(α(N²)) amortized.
//
// Errors:
//
//   - ErrInvalidArgument: grid size < 1, or N²+2 does not fit in an int.
//   - ErrIndexOutOfRange: row or col outside [1, N]. Checked before any
//     state change.
//
// Open cells never become blocked again. A Percolation is not safe for
// concurrent use; give each goroutine its own grid.
package percolation
