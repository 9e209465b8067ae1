package sim

import "math/rand"

// RandomSource supplies the randomness the spawner needs.
type RandomSource interface {
	// IntRange returns an integer in [lo, hi], both inclusive.
	IntRange(lo, hi int) int
	// Coin returns true or false with equal probability.
	Coin() bool
}

// Random is the default RandomSource backed by a seeded math/rand generator.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a deterministic source for the given seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns an integer in [lo, hi]. If hi < lo it returns lo.
func (r *Random) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// Coin flips a fair coin.
func (r *Random) Coin() bool {
	return r.rng.Intn(2) == 0
}
