package sbm

import "math/rand"

// defaultRNGSeed mirrors tsp.defaultRNGSeed: the Seed that DefaultOptions
// fills in. An Options.Seed of 0 set by the caller is used as is.
const defaultRNGSeed int64 = 1

// rngFromSeed builds a *rand.Rand over a private source, so two runs with the
// same seed never share mutable RNG state (same convention as tsp/rng.go).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes parent with stream through a SplitMix64-style step so each
// (parent, stream) pair yields an independent-looking but reproducible child
// seed. stream distinguishes concurrent work items (one per block index in
// the block-merge phase; each MH phase uses stream 0 under its own parent
// seed) fed from the same root seed.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) + stream*0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x = x ^ (x >> 31)

	return int64(x)
}

// deriveRNG returns an independent RNG stream for work item `stream`, derived
// from rootSeed. Used so block-merge proposals for different blocks are
// reproducible regardless of which goroutine happens to run them.
func deriveRNG(rootSeed int64, stream uint64) *rand.Rand {
	return rngFromSeed(deriveSeed(rootSeed, stream))
}
