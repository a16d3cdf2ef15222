package spectral

import (
	"fmt"
)

// Grid is a square complex accumulator over a centered frequency lattice.
//
// Cell (row, col) holds the transform value at frequency
//
//	(wx, wy) = ((col − R/2)·Δf, (row − R/2)·Δf)
//
// so the DC term lands exactly at the center cell (R/2, R/2). Real and
// imaginary parts are stored as separate row-major slices so that the
// vecmath kernels can consume them directly.
//
// Resolution and frequency step are fixed at construction; a Grid is always
// square by construction.
type Grid struct {
	res  int
	step float64

	// Re and Im hold the row-major transform accumulators. They are
	// exported for reduction kernels; writers outside this package must
	// keep their length untouched.
	Re, Im []float64
}

// NewGrid allocates a zeroed res×res grid with frequency step.
// The resolution must be positive and even, the step positive.
func NewGrid(res int, step float64) (*Grid, error) {
	if res <= 0 || res%2 != 0 {
		return nil, fmt.Errorf("spectral: resolution must be positive and even: %d", res)
	}
	if step <= 0 {
		return nil, fmt.Errorf("spectral: frequency step must be > 0: %f", step)
	}

	return &Grid{
		res:  res,
		step: step,
		Re:   make([]float64, res*res),
		Im:   make([]float64, res*res),
	}, nil
}

// Resolution returns the grid side length in cells.
func (g *Grid) Resolution() int { return g.res }

// Step returns the frequency spacing between adjacent cells.
func (g *Grid) Step() float64 { return g.step }

// Len returns the total cell count (Resolution²).
func (g *Grid) Len() int { return g.res * g.res }

// Freq returns the frequency sampled by cell (row, col).
func (g *Grid) Freq(row, col int) (wx, wy float64) {
	half := g.res / 2
	return float64(col-half) * g.step, float64(row-half) * g.step
}

// At returns the complex transform value at cell (row, col).
// Indexing out of range panics, as with any slice access.
func (g *Grid) At(row, col int) complex128 {
	i := row*g.res + col
	return complex(g.Re[i], g.Im[i])
}

// Clear zeroes every accumulator cell.
func (g *Grid) Clear() {
	for i := range g.Re {
		g.Re[i] = 0
		g.Im[i] = 0
	}
}
