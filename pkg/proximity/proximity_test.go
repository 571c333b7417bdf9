package proximity

import (
	"math/rand"
	"testing"

	"github.com/chazu/meshdiag/pkg/geom"
)

func tri(x, y, z float64) geom.Triangle {
	return geom.Triangle{
		{X: x, Y: y, Z: z},
		{X: x + 1, Y: y, Z: z},
		{X: x, Y: y + 1, Z: z},
	}
}

func TestBruteForceAdjacentPair(t *testing.T) {
	triangles := []geom.Triangle{
		tri(0, 0, 0),
		tri(0.1, 0, 0),
		tri(100, 100, 100),
	}
	pairs := BruteForce(triangles, 0.5)
	if len(pairs) != 1 || pairs[0] != (Pair{0, 1}) {
		t.Errorf("BruteForce() = %v, want [{0 1}]", pairs)
	}
}

func TestBruteForceDegenerateBothZero(t *testing.T) {
	zero := geom.Triangle{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}}
	triangles := []geom.Triangle{zero, zero}
	pairs := BruteForce(triangles, 0.5)
	if len(pairs) != 1 {
		t.Errorf("BruteForce() = %v, want both-zero pair reported adjacent", pairs)
	}
}

func TestBruteForceSkipsWhenOnlyLIsZero(t *testing.T) {
	zero := geom.Triangle{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}}
	far := tri(50, 50, 50)
	triangles := []geom.Triangle{zero, far}
	pairs := BruteForce(triangles, 0.5)
	if len(pairs) != 0 {
		t.Errorf("BruteForce() = %v, want none (L below EpsGeom, d large)", pairs)
	}
}

func TestAcceleratedMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var triangles []geom.Triangle
	for i := 0; i < 60; i++ {
		triangles = append(triangles, tri(rng.Float64()*5, rng.Float64()*5, rng.Float64()*5))
	}

	want := BruteForce(triangles, 0.5)
	got := Accelerated(triangles, 0.5)

	if len(got) != len(want) {
		t.Fatalf("Accelerated() returned %d pairs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d: Accelerated() = %v, want %v", i, got[i], want[i])
		}
	}
}
