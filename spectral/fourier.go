package spectral

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-pointspec/pointset"
)

const (
	defaultTileSize = 16
	twoPi           = 2 * math.Pi
)

type transformConfig struct {
	tileSize int
	workers  int
}

// TransformOption configures a [Transform] call.
type TransformOption func(*transformConfig) error

// WithTileSize sets the square tile edge used to partition the grid for the
// worker pool (default 16). Tile size is a tuning knob only; results are
// identical for any positive value.
func WithTileSize(size int) TransformOption {
	return func(cfg *transformConfig) error {
		if size <= 0 {
			return fmt.Errorf("spectral: tile size must be > 0: %d", size)
		}

		cfg.tileSize = size

		return nil
	}
}

// WithWorkers sets the number of tile workers (default runtime.NumCPU).
func WithWorkers(n int) TransformOption {
	return func(cfg *transformConfig) error {
		if n <= 0 {
			return fmt.Errorf("spectral: worker count must be > 0: %d", n)
		}

		cfg.workers = n

		return nil
	}
}

// tile is a half-open block [row0,row1)×[col0,col1) of grid cells.
type tile struct {
	row0, row1 int
	col0, col1 int
}

// Transform fills g with the continuous Fourier transform of pts:
//
//	Re(row,col) = Σᵢ cos(−2π(wx·xᵢ + wy·yᵢ))
//	Im(row,col) = Σᵢ sin(−2π(wx·xᵢ + wy·yᵢ))
//
// evaluated at the cell frequency (wx, wy). The previous grid contents are
// overwritten. An empty point set yields an all-zero grid.
//
// Every cell writes a disjoint output and reads only the shared immutable
// point slice, so tiles run concurrently without synchronization; the call
// returns after the fork-join barrier.
func Transform(g *Grid, pts []pointset.Point, opts ...TransformOption) error {
	cfg := transformConfig{
		tileSize: defaultTileSize,
		workers:  runtime.NumCPU(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return err
		}
	}

	res := g.Resolution()

	tilesPerSide := (res + cfg.tileSize - 1) / cfg.tileSize
	tiles := make(chan tile, tilesPerSide*tilesPerSide)
	for row0 := 0; row0 < res; row0 += cfg.tileSize {
		for col0 := 0; col0 < res; col0 += cfg.tileSize {
			tiles <- tile{
				row0: row0, row1: min(row0+cfg.tileSize, res),
				col0: col0, col1: min(col0+cfg.tileSize, res),
			}
		}
	}
	close(tiles)

	var wg sync.WaitGroup
	for range cfg.workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for t := range tiles {
				transformTile(g, pts, t)
			}
		}()
	}
	wg.Wait()

	return nil
}

// transformTile evaluates the transform for one block of cells. The inner
// loop runs over all points per cell, which keeps the point slice hot in
// cache for the whole tile.
func transformTile(g *Grid, pts []pointset.Point, t tile) {
	res := g.Resolution()
	step := g.Step()
	half := res / 2

	for row := t.row0; row < t.row1; row++ {
		wy := float64(row-half) * step

		for col := t.col0; col < t.col1; col++ {
			wx := float64(col-half) * step

			var re, im float64
			for i := range pts {
				s, c := math.Sincos(-twoPi * (wx*pts[i].X + wy*pts[i].Y))
				re += c
				im += s
			}

			idx := row*res + col
			g.Re[idx] = re
			g.Im[idx] = im
		}
	}
}
