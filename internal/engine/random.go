package engine

import (
	"math/rand"
	"time"
)

// Random is the source of every chance roll the engine makes. *rand.Rand
// satisfies it; tests substitute a scripted source to force specific draws.
type Random interface {
	// Float64 returns a uniform draw in [0,1).
	Float64() float64
	// Intn returns a uniform integer in [0,n).
	Intn(n int) int
}

// NewRandom returns a seeded source. A seed of 0 picks one from the clock.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
