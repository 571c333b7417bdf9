package topology

import "math"

// quantPrecision is the scale factor endpoints are multiplied by and rounded
// with before hashing into a geometric edge key: five decimal places, a
// 1e-5 grid (TOL_QUANT).
const quantPrecision = 1e5

type quantPoint [3]int64

func quantize(v [3]float32) quantPoint {
	return quantPoint{
		int64(math.Round(float64(v[0]) * quantPrecision)),
		int64(math.Round(float64(v[1]) * quantPrecision)),
		int64(math.Round(float64(v[2]) * quantPrecision)),
	}
}

func lessPoint(a, b quantPoint) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	return a[2] < b[2]
}

// geoEdgeKey canonicalizes two quantized endpoints so that a pair and its
// reverse hash identically, merging edges that are geometrically coincident
// but reference distinct (duplicate) vertex indices.
type geoEdgeKey struct {
	p, q quantPoint
}

func makeGeoEdgeKey(p, q quantPoint) geoEdgeKey {
	if lessPoint(q, p) {
		p, q = q, p
	}
	return geoEdgeKey{p, q}
}

// overlapEntry is one face-edge incidence recorded under a geometric key:
// the original (unquantized) vertex-index pair, preserved for the
// representative reported per overlap.
type overlapEntry struct {
	a, b int32
}

// OverlappingEdges builds a map keyed by geometric edge key from every
// face's three edges, and reports the edges (as vertex-index pairs) whose
// bucket holds more than two incidences. The representative is the first
// (a,b) observed in insertion order.
func OverlappingEdges(vertices [][3]float32, faces [][3]int32) []Edge {
	buckets := make(map[geoEdgeKey][]overlapEntry)
	var order []geoEdgeKey

	addEdge := func(a, b int32) {
		qa := quantize(vertices[a])
		qb := quantize(vertices[b])
		key := makeGeoEdgeKey(qa, qb)
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], overlapEntry{a, b})
	}

	for _, tri := range faces {
		addEdge(tri[0], tri[1])
		addEdge(tri[1], tri[2])
		addEdge(tri[2], tri[0])
	}

	var out []Edge
	for _, key := range order {
		entries := buckets[key]
		if len(entries) > 2 {
			rep := entries[0]
			out = append(out, Edge{rep.a, rep.b})
		}
	}
	return out
}
