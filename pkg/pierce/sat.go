// Package pierce detects self-intersecting ("pierced") triangle pairs using
// the Separating Axis Theorem, accelerated by an octree candidate index,
// and exposes a persistent index supporting full, incremental, and
// localized detection.
package pierce

import "github.com/chazu/meshdiag/pkg/geom"

// Intersects reports whether triangles a and b intersect in 3D via SAT,
// testing both face normals and the nine edge-cross-product axes.
// Degenerate axes (norm below geom.EpsAxis) are skipped.
func Intersects(a, b geom.Triangle) bool {
	axes := make([]geom.Vec3, 0, 11)

	if n := a.Normal(); n.Norm() >= geom.EpsAxis {
		axes = append(axes, n)
	}
	if n := b.Normal(); n.Norm() >= geom.EpsAxis {
		axes = append(axes, n)
	}

	ea := a.Edges()
	eb := b.Edges()
	for _, x := range ea {
		for _, y := range eb {
			c := x.Cross(y)
			if c.Norm() >= geom.EpsAxis {
				axes = append(axes, c)
			}
		}
	}

	for _, axis := range axes {
		if separatedOnAxis(a, b, axis) {
			return false
		}
	}
	return true
}

func separatedOnAxis(a, b geom.Triangle, axis geom.Vec3) bool {
	aMin, aMax := projectOnto(a, axis)
	bMin, bMax := projectOnto(b, axis)
	return aMax < bMin || bMax < aMin
}

func projectOnto(t geom.Triangle, axis geom.Vec3) (min, max float64) {
	min = axis.Dot(t[0])
	max = min
	for _, v := range t[1:] {
		d := axis.Dot(v)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// SharesVertex reports whether a and b share any vertex by geometric
// proximity (distance below geom.EpsGeom); such pairs are excluded from
// the intersection set regardless of what SAT reports.
func SharesVertex(a, b geom.Triangle) bool {
	return a.SharesVertex(b)
}
