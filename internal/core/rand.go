package core

import (
	"math/rand"
	"time"
)

// Rand is the random source injected into simulations.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source. Seed 0 means seed from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
}
