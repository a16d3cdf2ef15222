// Command pointspec computes averaged Fourier power spectra of 2D sampling
// patterns.
//
// Usage:
//
//	pointspec -n <count> [-n <count> ...] -trials <t> [flags]
//
// For every sample count it runs the requested number of trials, averages
// the per-trial power spectra, and periodically writes a grey float raster
// (power-<type>-n<n>-<trial>.pfm) plus a radial mean table
// (power-radial-mean-<type>-n<n>-<trial>.txt) to the output directory.
//
// Examples:
//
//	pointspec -n 1024 -trials 100 -tstep 10
//	pointspec -n 256 -n 1024 -n 4096 -trials 10 -sampler jitter -out results
//	pointspec -n 4096 -trials 1000 -binned -db runs.db
//	pointspec -config sweep.cfg
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/cwbudde/algo-pointspec/analyze"
	"github.com/cwbudde/algo-pointspec/catalog"
	"github.com/cwbudde/algo-pointspec/pointset"
)

// intList collects repeated or comma-separated integer flag values.
type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, n := range *l {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid sample count %q", part)
		}
		*l = append(*l, n)
	}
	return nil
}

// fileConfig mirrors the flag surface for gcfg run files:
//
//	[analysis]
//	sampler = jitter
//	samples = 256
//	samples = 1024
//	trials = 100
//	trialstep = 10
//
//	[output]
//	dir = results
//	database = runs.db
type fileConfig struct {
	Analysis struct {
		Samples    []int
		Trials     int
		TrialStep  int
		FreqStep   float64
		Resolution int
		// Pointers where zero is a meaningful setting, so an absent key
		// stays distinguishable from an explicit zero.
		Trim    *int
		Tile    int
		Sampler string
		Seed    *int64
		Binned  bool
	}
	Output struct {
		Dir      string
		Database string
		Quiet    bool
	}
}

func main() {
	var samples intList
	flag.Var(&samples, "n", "sample count (repeatable or comma-separated); required")
	trials := flag.Int("trials", 0, "number of trials per sample count; required")
	tstep := flag.Int("tstep", 1, "emit artifacts every tstep trials (and at trial 1)")
	wstep := flag.Float64("wstep", 1.0, "frequency step between adjacent grid samples")
	res := flag.Int("res", 512, "frequency grid resolution (even)")
	trim := flag.Int("trim", 5, "trailing radial bins dropped from the emitted curve")
	tileSize := flag.Int("tile", 16, "transform tile edge length")
	samplerName := flag.String("sampler", "random", "sampling pattern: random, jitter, regular")
	seed := flag.Int64("seed", 1, "seed for randomized samplers")
	outDir := flag.String("out", ".", "output directory for artifacts")
	dbPath := flag.String("db", "", "optional SQLite catalog recording runs and artifacts")
	configPath := flag.String("config", "", "optional gcfg run file; explicit flags take precedence")
	binned := flag.Bool("binned", false, "use the FFT-based binned estimator instead of the exact transform")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pointspec -n <count> [-n <count> ...] -trials <t> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Computes trial-averaged Fourier power spectra of 2D sampling patterns.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pointspec -n 1024 -trials 100 -tstep 10\n")
		fmt.Fprintf(os.Stderr, "  pointspec -n 256 -n 4096 -trials 10 -sampler jitter -out results\n")
		fmt.Fprintf(os.Stderr, "  pointspec -config sweep.cfg\n")
	}
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if *configPath != "" {
		var fc fileConfig
		if err := gcfg.ReadFileInto(&fc, *configPath); err != nil {
			fatal(fmt.Errorf("reading config %s: %w", *configPath, err))
		}
		applyFileConfig(&fc, explicit, &samples, trials, tstep, wstep, res, trim,
			tileSize, samplerName, seed, outDir, dbPath, binned, quiet)
	}

	if len(samples) == 0 {
		fatal(fmt.Errorf("at least one sample count is required (-n)"))
	}
	if *trials < 1 {
		fatal(fmt.Errorf("a positive trial count is required (-trials)"))
	}

	sampler, err := newSampler(*samplerName, uint64(*seed))
	if err != nil {
		fatal(err)
	}

	opts := []analyze.Option{
		analyze.WithResolution(*res),
		analyze.WithFreqStep(*wstep),
		analyze.WithTrialStep(*tstep),
		analyze.WithTrim(*trim),
		analyze.WithTileSize(*tileSize),
		analyze.WithOutputDir(*outDir),
	}
	if *binned {
		opts = append(opts, analyze.WithBinnedEstimator())
	}
	if *quiet {
		opts = append(opts, analyze.WithProgress(io.Discard))
	}

	ctx := context.Background()

	if *dbPath != "" {
		store := catalog.Open(*dbPath)
		if err := store.Init(ctx); err != nil {
			fatal(err)
		}
		defer store.Close()

		opts = append(opts, analyze.WithRecorder(store))
	}

	a, err := analyze.New(sampler, samples, *trials, opts...)
	if err != nil {
		fatal(err)
	}

	if err := a.Run(ctx); err != nil {
		fatal(err)
	}
}

// applyFileConfig copies config-file values into flags the user did not set
// explicitly on the command line.
func applyFileConfig(fc *fileConfig, explicit map[string]bool, samples *intList,
	trials, tstep *int, wstep *float64, res, trim, tileSize *int,
	samplerName *string, seed *int64, outDir, dbPath *string, binned, quiet *bool,
) {
	if !explicit["n"] && len(fc.Analysis.Samples) > 0 {
		*samples = fc.Analysis.Samples
	}
	if !explicit["trials"] && fc.Analysis.Trials != 0 {
		*trials = fc.Analysis.Trials
	}
	if !explicit["tstep"] && fc.Analysis.TrialStep != 0 {
		*tstep = fc.Analysis.TrialStep
	}
	if !explicit["wstep"] && fc.Analysis.FreqStep != 0 {
		*wstep = fc.Analysis.FreqStep
	}
	if !explicit["res"] && fc.Analysis.Resolution != 0 {
		*res = fc.Analysis.Resolution
	}
	if !explicit["trim"] && fc.Analysis.Trim != nil {
		*trim = *fc.Analysis.Trim
	}
	if !explicit["tile"] && fc.Analysis.Tile != 0 {
		*tileSize = fc.Analysis.Tile
	}
	if !explicit["sampler"] && fc.Analysis.Sampler != "" {
		*samplerName = fc.Analysis.Sampler
	}
	if !explicit["seed"] && fc.Analysis.Seed != nil {
		*seed = *fc.Analysis.Seed
	}
	if !explicit["out"] && fc.Output.Dir != "" {
		*outDir = fc.Output.Dir
	}
	if !explicit["db"] && fc.Output.Database != "" {
		*dbPath = fc.Output.Database
	}
	if !explicit["binned"] && fc.Analysis.Binned {
		*binned = true
	}
	if !explicit["quiet"] && fc.Output.Quiet {
		*quiet = true
	}
}

func newSampler(name string, seed uint64) (pointset.Sampler, error) {
	switch name {
	case "random":
		return pointset.NewRandom(seed), nil
	case "jitter":
		return pointset.NewJitter(seed), nil
	case "regular":
		return pointset.NewRegular(), nil
	default:
		return nil, fmt.Errorf("unknown sampler %q (want random, jitter, or regular)", name)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "pointspec:", err)
	os.Exit(1)
}
