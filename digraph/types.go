package digraph

// Arc is one weighted directed edge endpoint as seen from a neighbor list:
// for an out-neighbor list it means "edge to vertex To with Weight"; for an
// in-neighbor list it means "edge from vertex To with Weight". Reusing one
// field name for both directions keeps the neighbor-list shape uniform,
// matching the original partition_baseline_support.py convention of a single
// two-column (id, weight) array for both out_neighbors and in_neighbors.
type Arc struct {
	To     int
	Weight int64
}

// Graph is an immutable directed multigraph: N vertices numbered 0..N-1 and E
// weighted directed edges (self-loops permitted, weight >= 1). It is the sole
// input type consumed by package partition and package sbm.
type Graph struct {
	n     int
	edges int64
	out   [][]Arc
	in    [][]Arc
	// labels holds optional ground-truth block ids, length n or nil. Ignored
	// by this module's own algorithms; carried only for external evaluation.
	labels []int
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// E returns the total number of directed edges (counting each edge once,
// including self-loops).
func (g *Graph) E() int64 { return g.edges }

// OutNeighbors returns the out-neighbor list of vertex v. The returned slice
// must not be mutated by the caller.
func (g *Graph) OutNeighbors(v int) []Arc { return g.out[v] }

// InNeighbors returns the in-neighbor list of vertex v. The returned slice
// must not be mutated by the caller.
func (g *Graph) InNeighbors(v int) []Arc { return g.in[v] }

// Labels returns the optional ground-truth block assignment, or nil if none
// was supplied. Never consumed by package partition or package sbm.
func (g *Graph) Labels() []int { return g.labels }

// HasLabels reports whether ground-truth labels are present.
func (g *Graph) HasLabels() bool { return g.labels != nil }
