package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewClockRNG creates an RNG seeded from the wall clock, so successive
// processes draw different sequences.
func NewClockRNG() *RNG {
	now := uint64(time.Now().UnixNano())
	return &RNG{r: rand.New(rand.NewPCG(now, now>>17|1))}
}

// FillBinary fills the buffer with independent, uniformly drawn 0/1 values.
func (r *RNG) FillBinary(buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.r.IntN(2))
	}
}
