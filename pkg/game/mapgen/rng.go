package mapgen

import "math/rand"

// defaultSeed replaces a zero seed so "no seed" still selects a fixed,
// reproducible stream.
const defaultSeed int64 = 1

// newRand returns a deterministic source for the given seed.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed with a stream number into an independent
// child seed, so generation retries and successive regenerations never share
// a stream. Uses the SplitMix64 finalizer.
func DeriveSeed(parent int64, stream uint64) int64 {
	z := uint64(parent) + 0x9e3779b97f4a7c15*(stream+1)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	seed := int64(z)
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}
