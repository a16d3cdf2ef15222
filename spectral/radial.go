package spectral

import (
	"fmt"
	"io"
	"math"
)

const defaultTrim = 5

// RadialAverager reduces a square power grid to a 1D radial mean curve.
//
// Every cell is assigned to the integer bin ⌊distance to grid center⌋.
// Cells farther than halfwidth−1 from the center are discarded: rings that
// close to the grid corners have incomplete angular coverage and would bias
// the mean. The emitted curve additionally drops the trailing trim bins
// (default 5) near the Nyquist edge, where angular support is sparse.
//
// Resolution validity is checked once at construction, not per call.
type RadialAverager struct {
	res  int
	trim int
}

// RadialOption configures a [RadialAverager].
type RadialOption func(*RadialAverager) error

// WithTrim sets the number of trailing bins dropped from the emitted curve
// (default 5).
func WithTrim(bins int) RadialOption {
	return func(ra *RadialAverager) error {
		if bins < 0 {
			return fmt.Errorf("spectral: trim must be >= 0: %d", bins)
		}

		ra.trim = bins

		return nil
	}
}

// NewRadialAverager returns an averager for res×res power grids.
// The resolution must be positive, even, and large enough that at least one
// bin survives the trailing trim.
func NewRadialAverager(res int, opts ...RadialOption) (*RadialAverager, error) {
	if res <= 0 || res%2 != 0 {
		return nil, fmt.Errorf("spectral: resolution must be positive and even: %d", res)
	}

	ra := &RadialAverager{res: res, trim: defaultTrim}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(ra); err != nil {
			return nil, err
		}
	}

	if ra.res/2-ra.trim < 1 {
		return nil, fmt.Errorf("spectral: trim %d leaves no bins at resolution %d", ra.trim, ra.res)
	}

	return ra, nil
}

// Bins returns the length of the emitted curve: resolution/2 − trim.
func (ra *RadialAverager) Bins() int { return ra.res/2 - ra.trim }

// Mean computes the radial mean curve of a row-major res×res power grid.
//
// A bin that receives no cells divides to NaN; the value is passed through
// unchanged so that downstream consumers see the degeneracy instead of a
// silently substituted zero.
func (ra *RadialAverager) Mean(power []float64) ([]float64, error) {
	if len(power) != ra.res*ra.res {
		return nil, fmt.Errorf("spectral: power grid must hold %d×%d values: %d", ra.res, ra.res, len(power))
	}

	half := ra.res / 2
	sums := make([]float64, half)
	counts := make([]float64, half)

	for row := 0; row < ra.res; row++ {
		dy := float64(half - row)

		for col := 0; col < ra.res; col++ {
			dx := float64(half - col)
			distance := math.Sqrt(dx*dx + dy*dy)

			if distance > float64(half-1) {
				continue
			}

			bin := int(distance)
			sums[bin] += power[row*ra.res+col]
			counts[bin]++
		}
	}

	means := make([]float64, ra.Bins())
	for i := range means {
		means[i] = sums[i] / counts[i]
	}

	return means, nil
}

// WriteTable writes the curve as two-column rows "<bin> <mean>" with 15
// fixed decimal digits, the plain-text artifact format.
func (ra *RadialAverager) WriteTable(w io.Writer, means []float64) error {
	for i, m := range means {
		if _, err := fmt.Fprintf(w, "%d %.15f\n", i, m); err != nil {
			return fmt.Errorf("spectral: writing radial table row %d: %w", i, err)
		}
	}
	return nil
}
