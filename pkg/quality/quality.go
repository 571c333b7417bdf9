// Package quality analyzes triangle shape quality via the 2·r/R
// inscribed/circumscribed-radius ratio.
package quality

import (
	"math"

	"github.com/chazu/meshdiag/pkg/geom"
)

// Stats summarizes face quality across an entire mesh.
type Stats struct {
	TotalFaces      int
	LowQualityFaces int
	Min, Max, Mean  float64
	Histogram       map[string]int
}

var histogramLabels = [10]string{
	"0.0-0.1", "0.1-0.2", "0.2-0.3", "0.3-0.4", "0.4-0.5",
	"0.5-0.6", "0.6-0.7", "0.7-0.8", "0.8-0.9", "0.9-1.0",
}

// Quality computes the 2·r/R ratio for one triangle, clamped to [0,1].
// Degenerate triangles (area below geom.EpsGeom) yield 0.
func Quality(tri geom.Triangle) float64 {
	sides := tri.SideLengths()
	a, b, c := sides[0], sides[1], sides[2]
	s := (a + b + c) / 2
	radicand := s * (s - a) * (s - b) * (s - c)
	if radicand < 0 {
		radicand = 0
	}
	area := math.Sqrt(radicand)
	if area < geom.EpsGeom {
		return 0
	}

	r := area / s
	bigR := (a * b * c) / (4 * area)
	q := 2 * r / bigR
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}
	return q
}

// Analyze runs Quality over every face and reports the sub-threshold list
// plus aggregate statistics.
func Analyze(vertices [][3]float32, faces [][3]int32, threshold float64) ([]int32, Stats) {
	stats := Stats{
		TotalFaces: len(faces),
		Histogram:  make(map[string]int, len(histogramLabels)),
	}
	for _, label := range histogramLabels {
		stats.Histogram[label] = 0
	}

	var low []int32
	if len(faces) == 0 {
		return low, stats
	}

	stats.Min = math.Inf(1)
	stats.Max = math.Inf(-1)
	sum := 0.0

	for f, face := range faces {
		tri := geom.Triangle{
			toVec3(vertices[face[0]]),
			toVec3(vertices[face[1]]),
			toVec3(vertices[face[2]]),
		}
		q := Quality(tri)

		if q < stats.Min {
			stats.Min = q
		}
		if q > stats.Max {
			stats.Max = q
		}
		sum += q

		if q < threshold {
			low = append(low, int32(f))
			stats.LowQualityFaces++
		}

		stats.Histogram[bucketLabel(q)]++
	}
	stats.Mean = sum / float64(len(faces))

	return low, stats
}

func bucketLabel(q float64) string {
	bin := int(q * 10)
	if bin >= 10 {
		bin = 9 // top bin [0.9,1.0] is inclusive of 1.0.
	}
	return histogramLabels[bin]
}

func toVec3(v [3]float32) geom.Vec3 {
	return geom.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
