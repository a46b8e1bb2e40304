package dungeon

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// between samples [lo, hi) from src. hi must exceed lo.
func between(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo)
}
