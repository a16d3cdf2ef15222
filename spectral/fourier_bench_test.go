package spectral

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-pointspec/internal/testutil"
)

func BenchmarkTransform(b *testing.B) {
	cases := []struct {
		name   string
		res    int
		points int
	}{
		{"64x64/16pts", 64, 16},
		{"64x64/256pts", 64, 256},
		{"128x128/64pts", 128, 64},
		{"256x256/64pts", 256, 64},
	}

	for _, bc := range cases {
		b.Run(bc.name, func(b *testing.B) {
			pts := testutil.DeterministicPoints(1, bc.points)
			g, err := NewGrid(bc.res, 1)
			if err != nil {
				b.Fatalf("NewGrid error: %v", err)
			}

			b.ResetTimer()

			for range b.N {
				if err := Transform(g, pts); err != nil {
					b.Fatalf("Transform error: %v", err)
				}
			}
		})
	}
}

func BenchmarkBinnedSpectrum(b *testing.B) {
	cases := []struct {
		name   string
		res    int
		points int
	}{
		{"64x64/256pts", 64, 256},
		{"256x256/4Kpts", 256, 4096},
	}

	for _, bc := range cases {
		b.Run(bc.name, func(b *testing.B) {
			pts := testutil.DeterministicPoints(1, bc.points)
			dst := make([]float64, bc.res*bc.res)

			b.ResetTimer()

			for range b.N {
				if err := BinnedSpectrumInto(dst, pts, bc.res); err != nil {
					b.Fatalf("BinnedSpectrumInto error: %v", err)
				}
			}
		})
	}
}

func BenchmarkRadialMean(b *testing.B) {
	for _, res := range []int{128, 512} {
		b.Run(strconv.Itoa(res), func(b *testing.B) {
			ra, err := NewRadialAverager(res)
			if err != nil {
				b.Fatalf("NewRadialAverager error: %v", err)
			}

			power := make([]float64, res*res)
			for i := range power {
				power[i] = float64(i % 97)
			}

			b.ResetTimer()

			for range b.N {
				if _, err := ra.Mean(power); err != nil {
					b.Fatalf("Mean error: %v", err)
				}
			}
		})
	}
}
