// Package bmatrix implements the inter-block edge-count matrix M used by the
// partitioner: a B×B nonnegative-integer matrix with fast row/column
// iteration, scalar row/column sums, and the two mutations the rest of the
// engine needs — ApplyUpdate (replace two rows and two columns at once) and
// DropBlock (delete a row/column and renumber).
//
// # What & Why
//
// Two implementations share one Matrix interface: Dense (flat []int64,
// row-major — fast for small/medium B) and Sparse (map-of-maps — fast when B
// is large and M is mostly zero). Algorithms in package sbm are written only
// against Matrix; the storage choice is a performance knob with no semantic
// effect (spec.md §6 "sparse-matrix flag").
//
// # Determinism & Policy
//
//   - Entries are always int64 and always >= 0; ApplyUpdate rejects
//     negative values with ErrInvariantViolation.
//   - RowNZ/ColNZ return entries in ascending column/row order for
//     reproducible iteration (no map-order leakage, even for Sparse).
package bmatrix
