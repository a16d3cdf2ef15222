package pointset

import (
	"testing"
)

func inUnitSquare(p Point) bool {
	return p.X >= 0 && p.X < 1 && p.Y >= 0 && p.Y < 1
}

func TestSamplersCountAndRange(t *testing.T) {
	samplers := []Sampler{
		NewRandom(1),
		NewJitter(1),
		NewRegular(),
	}

	counts := []int{0, 1, 7, 16, 100, 1000}

	for _, s := range samplers {
		for _, n := range counts {
			pts := s.Sample(nil, n)

			if len(pts) != n {
				t.Fatalf("%s: Sample(nil, %d) returned %d points", s.Type(), n, len(pts))
			}
			for i, p := range pts {
				if !inUnitSquare(p) {
					t.Fatalf("%s: point %d outside unit square: (%f, %f)", s.Type(), i, p.X, p.Y)
				}
			}
		}
	}
}

func TestSampleAppendsToDst(t *testing.T) {
	s := NewRandom(1)

	pts := s.Sample(nil, 3)
	pts = s.Sample(pts, 2)

	if len(pts) != 5 {
		t.Fatalf("append sampling got %d points, want 5", len(pts))
	}
}

func TestRandomDeterministicPerSeed(t *testing.T) {
	a := NewRandom(42).Sample(nil, 50)
	b := NewRandom(42).Sample(nil, 50)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at point %d: %v vs %v", i, a[i], b[i])
		}
	}

	c := NewRandom(43).Sample(nil, 50)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different seeds produced identical point sets")
	}
}

func TestJitterStratification(t *testing.T) {
	const side = 5
	const n = side * side

	pts := NewJitter(7).Sample(nil, n)

	// One point per stratum for a perfect-square count.
	occupied := make(map[[2]int]int)
	for _, p := range pts {
		cx := int(p.X * side)
		cy := int(p.Y * side)
		occupied[[2]int{cx, cy}]++
	}

	if len(occupied) != n {
		t.Fatalf("jitter filled %d strata, want %d", len(occupied), n)
	}
	for cell, count := range occupied {
		if count != 1 {
			t.Fatalf("stratum %v holds %d points, want 1", cell, count)
		}
	}
}

func TestRegularLattice(t *testing.T) {
	pts := NewRegular().Sample(nil, 4)

	want := []Point{
		{X: 0.25, Y: 0.25},
		{X: 0.75, Y: 0.25},
		{X: 0.25, Y: 0.75},
		{X: 0.75, Y: 0.75},
	}

	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("lattice point %d got=%v want=%v", i, pts[i], want[i])
		}
	}
}

func TestTypeIdentifiers(t *testing.T) {
	cases := []struct {
		s    Sampler
		want string
	}{
		{NewRandom(1), "random"},
		{NewJitter(1), "jitter"},
		{NewRegular(), "regular"},
	}

	for _, tc := range cases {
		if got := tc.s.Type(); got != tc.want {
			t.Fatalf("Type() got=%q want=%q", got, tc.want)
		}
	}
}
