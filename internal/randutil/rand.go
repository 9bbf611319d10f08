package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// ForEpisode derives an independent RNG for one episode of a seeded run.
// Reset(seed) on episode n and a fresh run fast-forwarded to episode n
// produce the same deal.
func ForEpisode(seed int64, episode int) *rand.Rand {
	u := uint64(seed)
	e := uint64(episode)
	return rand.New(rand.NewPCG(mix(u^mix(e)), mix(u+goldenRatio64+e)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
