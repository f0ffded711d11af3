package ports

import (
	"golang.org/x/exp/rand"
)

// RNG provides seeded random number generation for deterministic operations
type RNG interface {
	// SeededStream creates a deterministic random number generator for a
	// named operation. The same (name, seed) pair always yields a stream
	// producing the same sequence.
	SeededStream(name string, seed uint64) *rand.Rand

	// WorkerStream derives a per-worker stream for data-parallel draws.
	// Streams for distinct worker indices are independent, and the mapping
	// from (name, seed, worker) to stream is deterministic so chunked
	// reductions reproduce exactly.
	WorkerStream(name string, seed uint64, worker int) *rand.Rand
}
