package spectral_test

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-pointspec/pointset"
	"github.com/cwbudde/algo-pointspec/spectral"
)

func ExampleTransform() {
	// A single point has a perfectly flat power spectrum: the magnitude of
	// its continuous Fourier transform is 1 at every frequency.
	pts := []pointset.Point{{X: 0.25, Y: 0.75}}

	g, err := spectral.NewGrid(16, 1.0)
	if err != nil {
		panic(err)
	}

	if err := spectral.Transform(g, pts); err != nil {
		panic(err)
	}

	power := spectral.Power(g, len(pts))

	half := g.Resolution() / 2
	fmt.Printf("DC power: %.3f\n", power[half*g.Resolution()+half])
	fmt.Printf("corner power: %.3f\n", power[0])

	// Output:
	// DC power: 1.000
	// corner power: 1.000
}

func ExampleRadialAverager_WriteTable() {
	pts := []pointset.Point{{X: 0, Y: 0}}

	g, err := spectral.NewGrid(16, 1.0)
	if err != nil {
		panic(err)
	}

	if err := spectral.Transform(g, pts); err != nil {
		panic(err)
	}

	ra, err := spectral.NewRadialAverager(g.Resolution())
	if err != nil {
		panic(err)
	}

	means, err := ra.Mean(spectral.Power(g, len(pts)))
	if err != nil {
		panic(err)
	}

	if err := ra.WriteTable(os.Stdout, means); err != nil {
		panic(err)
	}

	// Output:
	// 0 1.000000000000000
	// 1 1.000000000000000
	// 2 1.000000000000000
}
