package geom

// AABB is an axis-aligned bounding box with closed-interval semantics.
type AABB struct {
	Min, Max Vec3
}

// EmptyAABB returns an AABB with inverted bounds, suitable as the seed of a
// running union.
func EmptyAABB() AABB {
	const inf = 1e308
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// Expand returns the AABB extended to also cover p.
func (b AABB) Expand(p Vec3) AABB {
	return AABB{Min: Min(b.Min, p), Max: Max(b.Max, p)}
}

// Union returns the AABB covering both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: Min(b.Min, o.Min), Max: Max(b.Max, o.Max)}
}

// Intersects reports whether b and o overlap, using closed-interval overlap
// on all three axes.
func (b AABB) Intersects(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Contains reports whether p lies within b (closed interval).
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Expanded returns b grown by margin on every side.
func (b AABB) Expanded(margin float64) AABB {
	m := Vec3{margin, margin, margin}
	return AABB{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// Center returns the midpoint of b.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
