// Package testutil provides deterministic point sets and fake collaborators
// for tests.
package testutil

import (
	"math/rand/v2"

	"github.com/cwbudde/algo-pointspec/pointset"
)

// DeterministicPoints generates reproducible uniform points for a seed.
func DeterministicPoints(seed uint64, n int) []pointset.Point {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]pointset.Point, n)
	for i := range out {
		out[i] = pointset.Point{X: rng.Float64(), Y: rng.Float64()}
	}
	return out
}

// FixedSampler replays a predetermined point list and counts calls. With an
// empty Pool it generates a fresh deterministic set per call, so successive
// trials differ while staying reproducible.
type FixedSampler struct {
	Name  string
	Pool  []pointset.Point
	Calls int
}

// Sample appends n points to dst. When Pool is set its points are repeated
// cyclically; otherwise a per-call deterministic set is generated.
func (s *FixedSampler) Sample(dst []pointset.Point, n int) []pointset.Point {
	s.Calls++

	if len(s.Pool) == 0 {
		return append(dst, DeterministicPoints(uint64(s.Calls), n)...)
	}

	for i := range n {
		dst = append(dst, s.Pool[i%len(s.Pool)])
	}
	return dst
}

// Type returns the configured name, or "fixed" when unset.
func (s *FixedSampler) Type() string {
	if s.Name == "" {
		return "fixed"
	}
	return s.Name
}
