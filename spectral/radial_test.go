package spectral

import (
	"math"
	"strings"
	"testing"
)

func TestNewRadialAveragerValidation(t *testing.T) {
	cases := []struct {
		name string
		res  int
		opts []RadialOption
	}{
		{"zero resolution", 0, nil},
		{"odd resolution", 15, nil},
		{"negative trim", 64, []RadialOption{WithTrim(-1)}},
		{"trim leaves no bins", 16, []RadialOption{WithTrim(8)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRadialAverager(tc.res, tc.opts...); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestRadialAveragerBins(t *testing.T) {
	cases := []struct {
		res  int
		trim int
		want int
	}{
		{512, 5, 251},
		{64, 5, 27},
		{16, 0, 8},
	}

	for _, tc := range cases {
		ra, err := NewRadialAverager(tc.res, WithTrim(tc.trim))
		if err != nil {
			t.Fatalf("NewRadialAverager(%d) error: %v", tc.res, err)
		}
		if got := ra.Bins(); got != tc.want {
			t.Fatalf("Bins() for res=%d trim=%d got=%d want=%d", tc.res, tc.trim, got, tc.want)
		}
	}
}

func TestRadialMeanConstantGrid(t *testing.T) {
	const c = 3.5

	for _, res := range []int{16, 64, 128} {
		ra, err := NewRadialAverager(res)
		if err != nil {
			t.Fatalf("NewRadialAverager(%d) error: %v", res, err)
		}

		power := make([]float64, res*res)
		for i := range power {
			power[i] = c
		}

		means, err := ra.Mean(power)
		if err != nil {
			t.Fatalf("Mean error: %v", err)
		}

		if len(means) != ra.Bins() {
			t.Fatalf("res=%d: len(means)=%d want=%d", res, len(means), ra.Bins())
		}

		for i, m := range means {
			if m != c {
				t.Fatalf("res=%d: mean[%d]=%g want=%g (constant grid)", res, i, m, c)
			}
		}
	}
}

func TestRadialMeanGridSizeMismatch(t *testing.T) {
	ra, err := NewRadialAverager(64)
	if err != nil {
		t.Fatalf("NewRadialAverager error: %v", err)
	}

	// A 64x32 grid is not square; the averager must reject it before
	// producing any output.
	if _, err := ra.Mean(make([]float64, 64*32)); err == nil {
		t.Fatalf("expected error for non-square power grid")
	}
}

func TestRadialMeanCornerExclusion(t *testing.T) {
	const res = 16

	ra, err := NewRadialAverager(res, WithTrim(0))
	if err != nil {
		t.Fatalf("NewRadialAverager error: %v", err)
	}

	// Poison every cell farther than halfwidth-1 from the center. If the
	// exclusion rule holds, the poison never reaches a bin.
	power := make([]float64, res*res)
	half := res / 2
	for row := 0; row < res; row++ {
		for col := 0; col < res; col++ {
			dx := float64(half - col)
			dy := float64(half - row)
			if math.Sqrt(dx*dx+dy*dy) > float64(half-1) {
				power[row*res+col] = 1e30
			} else {
				power[row*res+col] = 1
			}
		}
	}

	means, err := ra.Mean(power)
	if err != nil {
		t.Fatalf("Mean error: %v", err)
	}

	for i, m := range means {
		if m != 1 {
			t.Fatalf("mean[%d]=%g want=1: corner cells leaked into the histogram", i, m)
		}
	}
}

func TestRadialWriteTable(t *testing.T) {
	ra, err := NewRadialAverager(16, WithTrim(6))
	if err != nil {
		t.Fatalf("NewRadialAverager error: %v", err)
	}

	var sb strings.Builder
	if err := ra.WriteTable(&sb, []float64{1, 0.5}); err != nil {
		t.Fatalf("WriteTable error: %v", err)
	}

	want := "0 1.000000000000000\n1 0.500000000000000\n"
	if sb.String() != want {
		t.Fatalf("table output:\n got: %q\nwant: %q", sb.String(), want)
	}
}
