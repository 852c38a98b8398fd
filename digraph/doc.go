// Package digraph defines the read-only directed-graph input consumed by the
// partitioner (packages partition and sbm).
//
// # What & Why
//
// A Graph holds N vertices (0..N-1) and weighted directed edges, represented as
// per-vertex out/in neighbor lists. This mirrors the "Graph (read-only input)"
// data model: self-loops are permitted, weights are positive integers, and
// optional ground-truth labels are carried through for external evaluation but
// never read by this module's own algorithms.
//
// # Non-goals
//
// digraph does not parse TSV files or any other on-disk format; that is an
// external loader's job (see spec.md §6 "Collaborators"). Use Builder to
// populate a Graph incrementally, then call Builder.Build to obtain an
// immutable Graph.
package digraph
