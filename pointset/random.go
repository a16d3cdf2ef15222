package pointset

import (
	"math/rand/v2"
)

// Random generates uniform i.i.d. points on the unit square.
//
// The white-noise reference pattern: its expected power spectrum is flat at
// 1 for every non-DC frequency, which makes it the usual baseline when
// comparing sampling patterns.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a uniform random sampler seeded deterministically.
// The same seed reproduces the same sequence of point sets.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Sample appends n uniform points to dst and returns it.
func (s *Random) Sample(dst []Point, n int) []Point {
	for range n {
		dst = append(dst, Point{X: s.rng.Float64(), Y: s.rng.Float64()})
	}
	return dst
}

// Type returns "random".
func (s *Random) Type() string { return "random" }
