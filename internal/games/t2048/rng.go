package t2048

import "math/rand"

// Source is the single random input of the engine. Intn returns a
// value in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic Source for the given seed.
// Every seed, zero included, yields the same sequence on each call.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
