package core

import (
	"math/rand"
	"time"
)

// RandomPort abstracts the randomness consumed by the simulation.
// Production code wraps a system RNG; tests and the arena use the LCG so
// runs are reproducible.
type RandomPort interface {
	// Next returns a float in [0, 1).
	Next() float64
	// NextInt returns an integer in [0, max). Returns 0 when max <= 0.
	NextInt(max int) int
}

// LCG is a 32-bit linear congruential generator:
// state = (1664525*state + 1013904223) mod 2^32.
type LCG struct {
	state uint32
}

// NewLCG creates an LCG. The seed is truncated to 32 bits; zero becomes 1.
func NewLCG(seed int64) *LCG {
	s := uint32(seed)
	if s == 0 {
		s = 1
	}
	return &LCG{state: s}
}

func (r *LCG) step() uint32 {
	r.state = 1664525*r.state + 1013904223
	return r.state
}

// Next returns the next float in [0, 1).
func (r *LCG) Next() float64 {
	return float64(r.step()) / 4294967296.0
}

// NextInt returns the next integer in [0, max).
func (r *LCG) NextInt(max int) int {
	if max <= 0 {
		return 0
	}
	n := int(r.Next() * float64(max))
	if n >= max {
		n = max - 1
	}
	return n
}

// SystemRandom wraps math/rand for interactive play.
type SystemRandom struct {
	rng *rand.Rand
}

// NewSystemRandom creates a system RNG. Seed 0 means use the current time.
func NewSystemRandom(seed int64) *SystemRandom {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SystemRandom{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a float in [0, 1).
func (r *SystemRandom) Next() float64 {
	return r.rng.Float64()
}

// NextInt returns an integer in [0, max).
func (r *SystemRandom) NextInt(max int) int {
	if max <= 0 {
		return 0
	}
	return r.rng.Intn(max)
}

// Shuffle permutes n elements in place using Fisher-Yates driven by rng.
func Shuffle(rng RandomPort, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := rng.NextInt(i + 1)
		swap(i, j)
	}
}
