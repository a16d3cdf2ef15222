package analyze

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

const (
	defaultResolution = 512
	defaultFreqStep   = 1.0
	defaultTrialStep  = 1
	defaultTrim       = 5
	defaultTileSize   = 16
)

type config struct {
	resolution int
	freqStep   float64
	trialStep  int
	trim       int
	tileSize   int
	workers    int
	outDir     string
	progress   io.Writer
	raster     RasterWriter
	recorder   Recorder
	binned     bool
}

func defaultConfig() config {
	return config{
		resolution: defaultResolution,
		freqStep:   defaultFreqStep,
		trialStep:  defaultTrialStep,
		trim:       defaultTrim,
		tileSize:   defaultTileSize,
		workers:    runtime.NumCPU(),
		outDir:     ".",
		progress:   os.Stderr,
	}
}

// Option configures an [Analyzer].
type Option func(*config) error

// WithResolution sets the frequency grid side length in cells
// (default 512). Must be positive and even.
func WithResolution(res int) Option {
	return func(cfg *config) error {
		if res <= 0 || res%2 != 0 {
			return fmt.Errorf("analyze: resolution must be positive and even: %d", res)
		}

		cfg.resolution = res

		return nil
	}
}

// WithFreqStep sets the spacing between adjacent frequency samples
// (default 1.0).
func WithFreqStep(step float64) Option {
	return func(cfg *config) error {
		if step <= 0 {
			return fmt.Errorf("analyze: frequency step must be > 0: %f", step)
		}

		cfg.freqStep = step

		return nil
	}
}

// WithTrialStep sets the snapshot output stride: artifacts are emitted at
// trial 1 and every trialStep trials thereafter (default 1).
func WithTrialStep(step int) Option {
	return func(cfg *config) error {
		if step < 1 {
			return fmt.Errorf("analyze: trial step must be >= 1: %d", step)
		}

		cfg.trialStep = step

		return nil
	}
}

// WithTrim sets the number of trailing radial bins dropped from the emitted
// curve (default 5).
func WithTrim(bins int) Option {
	return func(cfg *config) error {
		if bins < 0 {
			return fmt.Errorf("analyze: trim must be >= 0: %d", bins)
		}

		cfg.trim = bins

		return nil
	}
}

// WithTileSize sets the transform tile edge (default 16).
func WithTileSize(size int) Option {
	return func(cfg *config) error {
		if size <= 0 {
			return fmt.Errorf("analyze: tile size must be > 0: %d", size)
		}

		cfg.tileSize = size

		return nil
	}
}

// WithWorkers sets the transform worker count (default runtime.NumCPU).
func WithWorkers(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("analyze: worker count must be > 0: %d", n)
		}

		cfg.workers = n

		return nil
	}
}

// WithOutputDir sets the directory artifacts are written to (default ".").
func WithOutputDir(dir string) Option {
	return func(cfg *config) error {
		if dir == "" {
			return fmt.Errorf("analyze: output directory must not be empty")
		}

		cfg.outDir = dir

		return nil
	}
}

// WithProgress sets the progress sink (default os.Stderr). Pass io.Discard
// to silence progress output.
func WithProgress(w io.Writer) Option {
	return func(cfg *config) error {
		if w == nil {
			return fmt.Errorf("analyze: progress writer must not be nil")
		}

		cfg.progress = w

		return nil
	}
}

// WithRasterWriter sets the grey-raster collaborator (default PFM files).
func WithRasterWriter(w RasterWriter) Option {
	return func(cfg *config) error {
		if w == nil {
			return fmt.Errorf("analyze: raster writer must not be nil")
		}

		cfg.raster = w

		return nil
	}
}

// WithRecorder attaches a run/artifact recorder such as a catalog store.
// No recorder is attached by default.
func WithRecorder(r Recorder) Option {
	return func(cfg *config) error {
		cfg.recorder = r
		return nil
	}
}

// WithBinnedEstimator switches the per-trial spectrum to the FFT-based
// binned estimator instead of the exact transform. The estimator only
// samples integer frequencies, so it requires unit frequency step and a
// power-of-two resolution (validated at construction).
func WithBinnedEstimator() Option {
	return func(cfg *config) error {
		cfg.binned = true
		return nil
	}
}
