// Package sbm partitions a directed graph into blocks by fitting a
// degree-corrected stochastic blockmodel, searching over the number of
// blocks B with a golden-section bracket around a minimum-description-length
// entropy objective.
//
// # What & Why
//
// Given a digraph.Graph, Run alternates two phases: an agglomerative
// block-merge phase that proposes and commits whole-block merges, and a
// Metropolis-Hastings vertex phase that proposes and accepts/rejects
// single-vertex reassignments. Both phases share the same proposal kernel,
// edge-count update kernel, and delta-entropy kernel; they differ only in
// whether a "move" relabels an entire block or a single vertex, and in how
// aggressively moves are committed (best-of-K per block vs. one
// accept/reject draw per vertex).
//
// # Algorithms & Complexity
//
// The block-merge phase scores every block's K candidate merges independently
// (embarrassingly parallel); the MH phase is a strictly sequential sweep, since
// each vertex's proposal and acceptance decision depends on the block state
// left by every vertex visited earlier in the same sweep. The outer driver is
// a golden-section search over B: geometric reduction (BlockReductionRate)
// until a three-point bracket is established, then golden-ratio bisection
// until the bracket narrows to consecutive block counts.
//
// # Determinism & Stability
//
// With MaxParallelism == 1, a fixed Seed reproduces bit-identical results:
// every phase derives its own RNG substream from the root seed via
// deriveSeed, so substream assignment never depends on goroutine scheduling.
// With MaxParallelism > 1 the same substream-per-block-index discipline in
// the block-merge phase keeps results independent of scheduling order too;
// only floating-point summation order across goroutines can differ from the
// single-threaded run, and only at the level of the last few bits of a
// delta-entropy value.
//
// # Options
//
// See Options and DefaultOptions. ProposalsPerBlock, BlockReductionRate, and
// Beta control the search's exploration/exploitation tradeoff;
// ConvergenceThreshold and ThresholdStrategy control when the MH phase
// considers itself settled at a given B.
//
// # Errors
//
// Run returns ErrInvalidConfig for an out-of-range Options field and
// ErrInvalidGraph for a malformed WarmStart, both with a zero Result, and
// ErrCancelled (wrapping the context's error) if ctx is cancelled, in which
// case the best Result found so far is returned alongside the error.
//
// # Results
//
// Run returns a Result holding the final assignment, its entropy, and a
// metrics.Record timeline of the search's progress.
package sbm
