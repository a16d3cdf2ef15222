package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// PowerInto writes the point-count-normalized power spectrum of g into dst:
//
//	dst[i] = (Re[i]² + Im[i]²) / n
//
// Dividing by the point count n makes spectra of different sample counts
// comparable. dst must have length g.Len(). For n <= 0 the output is all
// zeros (an empty point set has an all-zero transform; 0/0 is not useful).
//
// The squared-magnitude pass and the scaling pass both use SIMD kernels
// when available.
func PowerInto(dst []float64, g *Grid, n int) error {
	if len(dst) != g.Len() {
		return fmt.Errorf("spectral: power buffer length %d does not match grid cell count %d", len(dst), g.Len())
	}

	if n <= 0 {
		for i := range dst {
			dst[i] = 0
		}
		return nil
	}

	vecmath.Power(dst, g.Re, g.Im)
	vecmath.ScaleBlockInPlace(dst, 1/float64(n))

	return nil
}

// Power returns the point-count-normalized power spectrum of g as a newly
// allocated slice. See [PowerInto].
func Power(g *Grid, n int) []float64 {
	dst := make([]float64, g.Len())
	// Length matches by construction.
	_ = PowerInto(dst, g, n)
	return dst
}
