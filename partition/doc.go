// Package partition implements the block-model state the partitioner
// mutates: the vertex-to-block assignment, the inter-block edge-count matrix
// M, and the three degree vectors derived from it, plus the PartitionTriplet
// bracket used by the outer golden-section driver (see package sbm).
//
// # What & Why
//
// A Partition owns its matrix and degree arrays exclusively (spec.md §3
// "Ownership"); kernels in package sbm read a Partition, compute candidate
// updates, and either apply them atomically through Matrix.ApplyUpdate or
// discard them. This package never imports sbm.
//
// # Determinism & Policy
//
//   - InitializeEdgeCounts recomputes M and the degree vectors from scratch
//     from (assignment, graph); it is the only place a Partition is built
//     from first principles, and must be called after any operation that
//     renumbers blocks (e.g. FromMerges).
//   - CheckInvariants re-verifies I1-I4 and is intended for debug builds and
//     tests, not the hot path.
package partition
