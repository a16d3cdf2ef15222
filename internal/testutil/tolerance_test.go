package testutil

import (
	"testing"
)

func TestRequireSliceNearlyEqual(t *testing.T) {
	got := []float64{1, 2, 3}
	want := []float64{1, 2 + 1e-13, 3 - 1e-13}

	RequireSliceNearlyEqual(t, got, want, 1e-12)
}
