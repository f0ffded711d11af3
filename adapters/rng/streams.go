package rng

import (
	"hash/fnv"

	"golang.org/x/exp/rand"
)

// HashedStreams derives independent, reproducible random streams from a
// (name, seed) pair. The same pair always yields the same sequence, which is
// what makes marginalization runs replayable and lets parallel workers draw
// without sharing a stream.
type HashedStreams struct{}

// NewHashedStreams creates the stream factory.
func NewHashedStreams() *HashedStreams {
	return &HashedStreams{}
}

// SeededStream creates a deterministic stream for a named operation.
func (h *HashedStreams) SeededStream(name string, seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(mix(name, seed)))
}

// WorkerStream derives the stream for one worker of a chunked evaluation.
// Worker 0 is distinct from the instance stream of SeededStream so serial
// and parallel paths never alias.
func (h *HashedStreams) WorkerStream(name string, seed uint64, worker int) *rand.Rand {
	base := mix(name, seed)
	return rand.New(rand.NewSource(base ^ (0x9e3779b97f4a7c15 * uint64(worker+1))))
}

// mix folds the operation name into the seed via FNV-1a.
func mix(name string, seed uint64) uint64 {
	f := fnv.New64a()
	_, _ = f.Write([]byte(name))
	return f.Sum64() ^ (seed * 0xff51afd7ed558ccd)
}
