package spectral

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-pointspec/pointset"
)

// BinnedSpectrumInto estimates the power spectrum by snapping points to an
// res×res occupancy histogram and transforming the histogram with row and
// column FFT passes. dst receives the centered, point-count-normalized
// power grid (DC at cell (res/2, res/2)), matching the layout produced by
// [Transform] plus [PowerInto] at unit frequency step.
//
// The estimate is exact for points lying on histogram cell centers and an
// O(res² log res + points) approximation otherwise, useful when the exact
// O(res²·points) evaluation is too slow for large point counts. Frequencies
// are the integers −res/2 .. res/2−1; a non-unit frequency step cannot be
// represented and callers needing one must use [Transform].
//
// The resolution must be even, positive, and a power of two (FFT plan
// requirement).
func BinnedSpectrumInto(dst []float64, pts []pointset.Point, res int) error {
	if res <= 0 || res%2 != 0 || res&(res-1) != 0 {
		return fmt.Errorf("spectral: binned estimator resolution must be an even power of two: %d", res)
	}
	if len(dst) != res*res {
		return fmt.Errorf("spectral: power buffer length %d does not match grid cell count %d", len(dst), res*res)
	}

	if len(pts) == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return nil
	}

	// Occupancy histogram. Coordinates at the closed upper edge clamp into
	// the last cell.
	cells := make([]complex128, res*res)
	for _, p := range pts {
		col := clampCell(int(p.X*float64(res)), res)
		row := clampCell(int(p.Y*float64(res)), res)
		cells[row*res+col] += 1
	}

	plan, err := algofft.NewPlan64(res)
	if err != nil {
		return fmt.Errorf("spectral: creating FFT plan: %w", err)
	}

	scratch := make([]complex128, res)

	// Row pass.
	for row := 0; row < res; row++ {
		line := cells[row*res : (row+1)*res]
		if err := plan.Forward(scratch, line); err != nil {
			return fmt.Errorf("spectral: row FFT %d: %w", row, err)
		}
		copy(line, scratch)
	}

	// Column pass.
	column := make([]complex128, res)
	for col := 0; col < res; col++ {
		for row := 0; row < res; row++ {
			column[row] = cells[row*res+col]
		}
		if err := plan.Forward(scratch, column); err != nil {
			return fmt.Errorf("spectral: column FFT %d: %w", col, err)
		}
		for row := 0; row < res; row++ {
			cells[row*res+col] = scratch[row]
		}
	}

	// Center the DC term and reduce to normalized power. The FFT places
	// frequency u at index u mod res; cell (row, col) of the centered grid
	// samples frequency (col−res/2, row−res/2).
	half := res / 2
	re := make([]float64, res*res)
	im := make([]float64, res*res)
	for row := 0; row < res; row++ {
		srcRow := (row + half) % res

		for col := 0; col < res; col++ {
			srcCol := (col + half) % res
			v := cells[srcRow*res+srcCol]
			re[row*res+col] = real(v)
			im[row*res+col] = imag(v)
		}
	}

	vecmath.Power(dst, re, im)
	vecmath.ScaleBlockInPlace(dst, 1/float64(len(pts)))

	return nil
}

// BinnedSpectrum returns the binned power estimate as a newly allocated
// slice. See [BinnedSpectrumInto].
func BinnedSpectrum(pts []pointset.Point, res int) ([]float64, error) {
	dst := make([]float64, res*res)
	if err := BinnedSpectrumInto(dst, pts, res); err != nil {
		return nil, err
	}
	return dst, nil
}

func clampCell(i, res int) int {
	if i < 0 {
		return 0
	}
	if i >= res {
		return res - 1
	}
	return i
}
