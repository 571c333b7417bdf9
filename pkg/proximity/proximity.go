// Package proximity flags face pairs whose centroids lie closer together
// than a threshold relative to their edge scale, a cheap precursor to the
// more expensive pierced-face intersection test.
package proximity

import (
	"github.com/chazu/meshdiag/pkg/geom"
)

// Pair is an unordered face index pair with i < j.
type Pair struct {
	I, J int32
}

// BruteForce tests every unordered face pair in O(m²), per the original
// detector's documented complexity. It works on triangles already resolved
// from the face table and does no face-index validation of its own.
func BruteForce(triangles []geom.Triangle, threshold float64) []Pair {
	var out []Pair
	n := len(triangles)
	for i := 0; i < n; i++ {
		ci := triangles[i].Centroid()
		li := triangles[i].AvgEdge()
		for j := i + 1; j < n; j++ {
			if adjacent(ci, li, triangles[j], threshold) {
				out = append(out, Pair{int32(i), int32(j)})
			}
		}
	}
	return out
}

func adjacent(ci geom.Vec3, li float64, tj geom.Triangle, threshold float64) bool {
	cj := tj.Centroid()
	lj := tj.AvgEdge()
	d := ci.Distance(cj)
	l := li
	if lj < l {
		l = lj
	}

	if l < geom.EpsGeom && d < geom.EpsGeom {
		return true
	}
	if l < geom.EpsGeom {
		return false
	}
	return d/l <= threshold
}
