package reveal

import (
	"math/rand/v2"
	"time"
)

// Source supplies the random draws of a run.
// *rand.Rand from math/rand/v2 satisfies it; tests inject scripted sources.
type Source interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// IntN returns a value in [0,n). n is always positive.
	IntN(n int) int
}

// NewSeededSource returns a reproducible Source. The same seed always
// produces the same frames for the same Config.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSource returns a Source seeded from the wall clock.
func NewSource() Source {
	return NewSeededSource(uint64(time.Now().UnixNano()))
}
