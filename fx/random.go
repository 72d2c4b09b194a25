package fx

import "math/rand"

// defaultSeed seeds every randomized effect when the catalog is built
// without WithSeed.
const defaultSeed int64 = 1

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
