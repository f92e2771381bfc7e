// Package randutil builds the deterministic random sources shared by the deck,
// the automated players and the seat shuffle.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Two sources built
// from the same seed produce the same shuffles and the same automated wagers.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed resolves a configured seed: zero means "pick one from the clock". The
// resolved value is returned so it can be logged and a session replayed.
func Seed(configured int64) int64 {
	if configured != 0 {
		return configured
	}
	return time.Now().UnixNano()
}

// Derive returns the seed for the n-th child of a parent seed, used to give
// every simulated match its own independent stream.
func Derive(parent int64, n int) int64 {
	return int64(mix(uint64(parent) + uint64(n)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
