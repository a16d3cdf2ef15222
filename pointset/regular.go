package pointset

import (
	"math"
)

// Regular generates a deterministic regular lattice with half-cell offset.
//
// The lattice concentrates all spectral energy in discrete peaks, making it
// a useful worst-case pattern for aliasing experiments and a convenient
// deterministic backend for tests.
type Regular struct{}

// NewRegular returns the lattice sampler.
func NewRegular() *Regular { return &Regular{} }

// Sample appends n lattice points to dst and returns it. The lattice side is
// ⌈√n⌉; points are emitted in row-major order and truncated to n.
func (s *Regular) Sample(dst []Point, n int) []Point {
	if n <= 0 {
		return dst
	}

	side := int(math.Ceil(math.Sqrt(float64(n))))
	cell := 1.0 / float64(side)

	emitted := 0
	for row := 0; row < side && emitted < n; row++ {
		for col := 0; col < side && emitted < n; col++ {
			dst = append(dst, Point{
				X: (float64(col) + 0.5) * cell,
				Y: (float64(row) + 0.5) * cell,
			})
			emitted++
		}
	}

	return dst
}

// Type returns "regular".
func (s *Regular) Type() string { return "regular" }
