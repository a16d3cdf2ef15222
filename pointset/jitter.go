package pointset

import (
	"math"
	"math/rand/v2"
)

// Jitter generates stratified (jittered) points: the unit square is divided
// into a ⌊√n⌋×⌊√n⌋ cell grid and one uniform point is placed inside each
// cell. When n is not a perfect square the remaining points are drawn
// uniformly over the whole square.
//
// Jittered sampling suppresses low-frequency power relative to white noise,
// which is exactly the kind of difference the radial spectrum makes visible.
type Jitter struct {
	rng *rand.Rand
}

// NewJitter returns a stratified sampler seeded deterministically.
func NewJitter(seed uint64) *Jitter {
	return &Jitter{rng: rand.New(rand.NewPCG(seed, seed^0x6a09e667f3bcc909))}
}

// Sample appends n stratified points to dst and returns it.
func (s *Jitter) Sample(dst []Point, n int) []Point {
	if n <= 0 {
		return dst
	}

	side := int(math.Sqrt(float64(n)))
	cell := 1.0 / float64(side)

	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			dst = append(dst, Point{
				X: (float64(col) + s.rng.Float64()) * cell,
				Y: (float64(row) + s.rng.Float64()) * cell,
			})
		}
	}

	// Remainder when n is not a perfect square.
	for i := side * side; i < n; i++ {
		dst = append(dst, Point{X: s.rng.Float64(), Y: s.rng.Float64()})
	}

	return dst
}

// Type returns "jitter".
func (s *Jitter) Type() string { return "jitter" }
