// Package raster persists single-channel floating-point images.
//
// The format is greyscale PFM (portable float map): an ASCII header
//
//	Pf
//	<width> <height>
//	-1.0
//
// followed by width×height little-endian float32 samples in bottom-up row
// order. The negative scale in the header flags little-endian data. PFM
// keeps the full float range of a power spectrum, which 8-bit formats would
// destroy.
package raster

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// maxDimension bounds header dimensions accepted by [ReadPFM]; a 64K-wide
// spectrum grid is far beyond anything the analysis produces.
const maxDimension = 1 << 16

// WritePFM writes data as a width×height greyscale PFM file. data is
// row-major with row 0 at the top; rows are flipped on disk per the format.
func WritePFM(path string, data []float64, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: dimensions must be positive: %dx%d", width, height)
	}
	if len(data) != width*height {
		return fmt.Errorf("raster: data length %d does not match %dx%d", len(data), width, height)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: creating %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "Pf\n%d %d\n-1.0\n", width, height)

	var buf [4]byte
	for row := height - 1; row >= 0; row-- {
		for col := 0; col < width; col++ {
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(data[row*width+col])))
			if _, err := w.Write(buf[:]); err != nil {
				_ = f.Close()
				return fmt.Errorf("raster: writing %s: %w", path, err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: closing %s: %w", path, err)
	}

	return nil
}

// ReadPFM reads a greyscale PFM file written by [WritePFM] and returns the
// top-down row-major samples.
func ReadPFM(path string) (data []float64, width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("raster: opening %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var magic string
	var scale float64
	if _, err := fmt.Fscan(r, &magic, &width, &height, &scale); err != nil {
		return nil, 0, 0, fmt.Errorf("raster: parsing %s header: %w", path, err)
	}
	if magic != "Pf" {
		return nil, 0, 0, fmt.Errorf("raster: %s is not a greyscale PFM file: magic %q", path, magic)
	}
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return nil, 0, 0, fmt.Errorf("raster: %s declares implausible dimensions %dx%d", path, width, height)
	}
	if scale >= 0 {
		return nil, 0, 0, fmt.Errorf("raster: %s: big-endian PFM is not supported", path)
	}
	// Single whitespace byte separates the header from the samples.
	if _, err := r.ReadByte(); err != nil {
		return nil, 0, 0, fmt.Errorf("raster: parsing %s header: %w", path, err)
	}

	data = make([]float64, width*height)
	var buf [4]byte
	for row := height - 1; row >= 0; row-- {
		for col := 0; col < width; col++ {
			if _, err := io.ReadFull(r, buf[:]); err != nil {
				return nil, 0, 0, fmt.Errorf("raster: reading %s samples: %w", path, err)
			}
			data[row*width+col] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[:])))
		}
	}

	return data, width, height, nil
}

// PFMWriter adapts [WritePFM] to the grey-raster collaborator interface of
// the analysis driver.
type PFMWriter struct{}

// WriteGrey writes data as a PFM file at path.
func (PFMWriter) WriteGrey(path string, data []float64, width, height int) error {
	return WritePFM(path, data, width, height)
}
