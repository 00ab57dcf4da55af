package service

import "math/rand/v2"

// Rand is the source lesson counts are drawn from. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewRand returns a PCG source for a non-zero seed and the process-wide
// non-deterministic source otherwise.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		return globalRand{}
	}
	return rand.New(rand.NewPCG(seed, seed))
}
