package skill

import "math/rand"

// OfferSize is how many choices a level-up menu presents.
const OfferSize = 3

// Draw picks up to n distinct ids from pool uniformly at random. It shuffles
// pool in place and returns a prefix of it.
func Draw(rng *rand.Rand, pool []ID, n int) []ID {
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
