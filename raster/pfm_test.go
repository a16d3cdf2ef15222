package raster

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPFMRoundTrip(t *testing.T) {
	const width, height = 5, 3

	// Values chosen to be exactly representable as float32.
	data := []float64{
		0, 1, -1, 0.5, 100,
		0.0009765625, 1e6, -3.25, 2, 7,
		0.125, -0.125, 42, -42, 0.75,
	}

	path := filepath.Join(t.TempDir(), "roundtrip.pfm")
	if err := WritePFM(path, data, width, height); err != nil {
		t.Fatalf("WritePFM error: %v", err)
	}

	got, w, h, err := ReadPFM(path)
	if err != nil {
		t.Fatalf("ReadPFM error: %v", err)
	}

	if w != width || h != height {
		t.Fatalf("dimensions got=%dx%d want=%dx%d", w, h, width, height)
	}

	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("sample %d got=%g want=%g", i, got[i], data[i])
		}
	}
}

func TestWritePFMValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pfm")

	if err := WritePFM(path, make([]float64, 4), 0, 4); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if err := WritePFM(path, make([]float64, 4), 3, 2); err == nil {
		t.Fatalf("expected error for mismatched data length")
	}
}

func TestReadPFMRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-pfm.txt")
	if err := os.WriteFile(path, []byte("P6\n2 2\n255\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	if _, _, _, err := ReadPFM(path); err == nil {
		t.Fatalf("expected error for non-PFM magic")
	}
}

func TestReadPFMRejectsImplausibleDimensions(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"negative width", "Pf\n-4 4\n-1.0\n"},
		{"zero height", "Pf\n4 0\n-1.0\n"},
		{"oversized", "Pf\n4 1000000000\n-1.0\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad-dims.pfm")
			if err := os.WriteFile(path, []byte(tc.header), 0o644); err != nil {
				t.Fatalf("WriteFile error: %v", err)
			}

			if _, _, _, err := ReadPFM(path); err == nil {
				t.Fatalf("expected error for header %q", tc.header)
			}
		})
	}
}

func TestPFMWriterSatisfiesCollaborator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grey.pfm")

	var w PFMWriter
	if err := w.WriteGrey(path, []float64{1, 2, 3, 4}, 2, 2); err != nil {
		t.Fatalf("WriteGrey error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file at %s: %v", path, err)
	}
}
