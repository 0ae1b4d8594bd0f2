package core

import "math/rand/v2"

// Source supplies uniform draws in [0, 1). *rand.Rand and *RNG satisfy it.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform draw in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Chance reports whether a single draw lands at or below p.
func Chance(src Source, p float64) bool {
	return src.Float64() <= p
}

// Constant is a Source that always returns the same value. It makes every
// probability comparison deterministic, which is what replay tests need.
type Constant float64

// Float64 returns c.
func (c Constant) Float64() float64 { return float64(c) }

// Sequence replays a fixed list of draws, cycling when exhausted.
type Sequence struct {
	Draws []float64
	pos   int
}

// Float64 returns the next draw. An empty sequence always returns 0.
func (s *Sequence) Float64() float64 {
	if len(s.Draws) == 0 {
		return 0
	}
	v := s.Draws[s.pos%len(s.Draws)]
	s.pos++
	return v
}
