package stats

import "math/rand"

// golden is the SplitMix64 increment (2⁶⁴/φ).
const golden uint64 = 0x9e3779b97f4a7c15

// trialSeeds draws one parent seed per trial from src, in trial order.
// This is the only place a parallel run touches the caller's source.
// Complexity: O(trials).
func trialSeeds(src RandomSource, trials int) []int64 {
	seeds := make([]int64, trials)
	for i := range seeds {
		seeds[i] = src.Int63()
	}
	return seeds
}

// deriveRNG returns the private stream for one trial. The parent seed and
// the stream id go through one SplitMix64 step, so equal parents on
// different trials still yield unrelated streams.
//
// math/rand.Rand is not goroutine-safe: a stream belongs to the goroutine
// that runs its trial.
// Complexity: O(1).
func deriveRNG(parent int64, stream uint64) *rand.Rand {
	z := uint64(parent) + (stream+1)*golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return rand.New(rand.NewSource(int64(z)))
}
