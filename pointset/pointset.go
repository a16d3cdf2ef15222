// Package pointset defines 2D sampling patterns on the unit square and the
// generator interface the spectral analysis code consumes.
//
// The package intentionally stays small: the analysis engine only depends on
// the ability to produce a fresh point set of a requested size and to report
// a short type identifier for artifact naming. Concrete sampling strategies
// are pluggable backends behind the [Sampler] interface.
package pointset

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a sample location with coordinates in [0, 1).
type Point = r2.Vec

// Sampler produces point sets of a requested size.
//
// Implementations may be randomized; successive calls are not required to
// return the same points. Implementations must be usable from a single
// goroutine; concurrent use requires external synchronization.
type Sampler interface {
	// Sample appends n freshly generated points to dst and returns the
	// resulting slice. Passing dst[:0] reuses the backing array across
	// trials without reallocating.
	Sample(dst []Point, n int) []Point

	// Type returns a short identifier for the sampling strategy, used in
	// artifact file names (e.g. "random", "jitter").
	Type() string
}
