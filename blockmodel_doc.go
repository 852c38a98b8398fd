// Package blockmodel fits a degree-corrected stochastic blockmodel to a
// directed graph: it partitions vertices into blocks that best explain the
// graph's edge density, searching over the number of blocks as well as the
// assignment itself.
//
// The module is organized into five packages:
//
//	digraph/   — the read-only directed multigraph input type
//	bmatrix/   — the dense/sparse inter-block edge-count matrix
//	partition/ — partition state, the golden-section bracket, invariants
//	sbm/       — the proposal/update/entropy kernels and the outer driver
//	metrics/   — progress timeline and Prometheus gauges
//
// See sbm.Run for the entry point.
package blockmodel
