// Package analyze drives repeated spectral trials over generated point sets
// and emits progressive artifacts.
//
// For each requested sample count n the [Analyzer] runs a strictly
// sequential trial loop: generate a fresh point set, compute its normalized
// power spectrum, and add it to a running accumulator. At trial 1 and every
// trial-step trials the accumulator average is written out as a grey float
// raster plus a radially averaged text table. Any sampling or I/O failure
// aborts the run; trials are never retried.
package analyze

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cwbudde/algo-vecmath"
	"github.com/dustin/go-humanize"

	"github.com/cwbudde/algo-pointspec/pointset"
	"github.com/cwbudde/algo-pointspec/raster"
	"github.com/cwbudde/algo-pointspec/spectral"
)

// RasterWriter persists a single-channel floating-point image. The data is
// row-major with the given dimensions; format and bit depth are the
// implementation's concern.
type RasterWriter interface {
	WriteGrey(path string, data []float64, width, height int) error
}

// RunMeta describes one analysis run for a [Recorder].
type RunMeta struct {
	Sampler    string
	Samples    []int
	Trials     int
	FreqStep   float64
	Resolution int
}

// Artifact describes one emitted file for a [Recorder].
type Artifact struct {
	Kind    string // "raster" or "radial"
	Sampler string
	N       int
	Trial   int
	Path    string
}

// Recorder receives run and artifact notifications, e.g. a catalog store.
type Recorder interface {
	BeginRun(ctx context.Context, meta RunMeta) (runID string, err error)
	RecordArtifact(ctx context.Context, runID string, art Artifact) error
	FinishRun(ctx context.Context, runID string) error
}

// Analyzer orchestrates the multi-trial power spectrum analysis of one
// sampler across a list of sample counts.
type Analyzer struct {
	sampler pointset.Sampler
	samples []int
	trials  int
	cfg     config

	grid   *spectral.Grid
	radial *spectral.RadialAverager
}

// New builds an Analyzer for the given sampler, sample counts, and trial
// count. All configuration errors (invalid resolution, step, trim, ...)
// surface here, before any trial runs.
func New(sampler pointset.Sampler, samples []int, trials int, opts ...Option) (*Analyzer, error) {
	if sampler == nil {
		return nil, fmt.Errorf("analyze: sampler must not be nil")
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("analyze: at least one sample count is required")
	}
	for _, n := range samples {
		if n < 1 {
			return nil, fmt.Errorf("analyze: sample counts must be >= 1: %d", n)
		}
	}
	if trials < 1 {
		return nil, fmt.Errorf("analyze: trial count must be >= 1: %d", trials)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.raster == nil {
		cfg.raster = raster.PFMWriter{}
	}

	if cfg.binned {
		if cfg.freqStep != 1 {
			return nil, fmt.Errorf("analyze: binned estimator requires unit frequency step: %f", cfg.freqStep)
		}
		if cfg.resolution&(cfg.resolution-1) != 0 {
			return nil, fmt.Errorf("analyze: binned estimator requires power-of-two resolution: %d", cfg.resolution)
		}
	}

	grid, err := spectral.NewGrid(cfg.resolution, cfg.freqStep)
	if err != nil {
		return nil, err
	}

	radial, err := spectral.NewRadialAverager(cfg.resolution, spectral.WithTrim(cfg.trim))
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		sampler: sampler,
		samples: samples,
		trials:  trials,
		cfg:     cfg,
		grid:    grid,
		radial:  radial,
	}, nil
}

// Run executes the full trial loop and blocks until it completes or fails.
//
// Sample counts are processed in order; within one sample count trials are
// strictly sequential because each snapshot depends on the running
// accumulator. The context is checked between trials only — a trial in
// flight runs to completion.
func (a *Analyzer) Run(ctx context.Context) error {
	res := a.grid.Resolution()
	cells := a.grid.Len()

	power := make([]float64, cells)
	accum := make([]float64, cells)
	snapshot := make([]float64, cells)

	pad := len(strconv.Itoa(a.trials))

	var runID string
	if a.cfg.recorder != nil {
		var err error
		runID, err = a.cfg.recorder.BeginRun(ctx, RunMeta{
			Sampler:    a.sampler.Type(),
			Samples:    a.samples,
			Trials:     a.trials,
			FreqStep:   a.cfg.freqStep,
			Resolution: res,
		})
		if err != nil {
			return fmt.Errorf("analyze: recording run start: %w", err)
		}
	}

	var pts []pointset.Point
	for _, n := range a.samples {
		for i := range accum {
			accum[i] = 0
		}

		for trial := 1; trial <= a.trials; trial++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			pts = a.sampler.Sample(pts[:0], n)
			if len(pts) != n {
				return fmt.Errorf("analyze: sampler %q returned %d points, want %d", a.sampler.Type(), len(pts), n)
			}

			if err := a.trialPower(power, pts); err != nil {
				return err
			}

			vecmath.AddBlockInPlace(accum, power)

			fmt.Fprintf(a.cfg.progress, "\r%*d / %d : n=%s", pad, trial, a.trials, humanize.Comma(int64(n)))

			if trial == 1 || trial%a.cfg.trialStep == 0 {
				vecmath.ScaleBlock(snapshot, accum, 1/float64(trial))

				if err := a.emit(ctx, runID, snapshot, n, trial, pad); err != nil {
					return err
				}
			}
		}

		fmt.Fprintln(a.cfg.progress)
	}

	if a.cfg.recorder != nil {
		if err := a.cfg.recorder.FinishRun(ctx, runID); err != nil {
			return fmt.Errorf("analyze: recording run end: %w", err)
		}
	}

	return nil
}

// trialPower computes the normalized power spectrum of pts into power.
func (a *Analyzer) trialPower(power []float64, pts []pointset.Point) error {
	if a.cfg.binned {
		return spectral.BinnedSpectrumInto(power, pts, a.grid.Resolution())
	}

	a.grid.Clear()
	err := spectral.Transform(a.grid, pts,
		spectral.WithTileSize(a.cfg.tileSize),
		spectral.WithWorkers(a.cfg.workers),
	)
	if err != nil {
		return err
	}

	return spectral.PowerInto(power, a.grid, len(pts))
}

// emit writes the raster and radial artifacts for one snapshot and records
// them if a recorder is attached.
func (a *Analyzer) emit(ctx context.Context, runID string, snapshot []float64, n, trial, pad int) error {
	res := a.grid.Resolution()
	base := fmt.Sprintf("power-%s-n%d-%0*d", a.sampler.Type(), n, pad, trial)

	rasterPath := filepath.Join(a.cfg.outDir, base+".pfm")
	if err := a.cfg.raster.WriteGrey(rasterPath, snapshot, res, res); err != nil {
		return fmt.Errorf("analyze: writing raster %s: %w", rasterPath, err)
	}
	if err := a.record(ctx, runID, Artifact{Kind: "raster", Sampler: a.sampler.Type(), N: n, Trial: trial, Path: rasterPath}); err != nil {
		return err
	}

	means, err := a.radial.Mean(snapshot)
	if err != nil {
		return err
	}

	radialPath := filepath.Join(a.cfg.outDir, fmt.Sprintf("power-radial-mean-%s-n%d-%0*d.txt", a.sampler.Type(), n, pad, trial))
	f, err := os.Create(radialPath)
	if err != nil {
		return fmt.Errorf("analyze: creating radial table %s: %w", radialPath, err)
	}
	if err := a.radial.WriteTable(f, means); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("analyze: closing radial table %s: %w", radialPath, err)
	}

	return a.record(ctx, runID, Artifact{Kind: "radial", Sampler: a.sampler.Type(), N: n, Trial: trial, Path: radialPath})
}

func (a *Analyzer) record(ctx context.Context, runID string, art Artifact) error {
	if a.cfg.recorder == nil {
		return nil
	}
	if err := a.cfg.recorder.RecordArtifact(ctx, runID, art); err != nil {
		return fmt.Errorf("analyze: recording artifact %s: %w", art.Path, err)
	}
	return nil
}
