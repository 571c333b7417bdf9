package pierce

import (
	"sort"

	"github.com/chazu/meshdiag/pkg/geom"
	"github.com/chazu/meshdiag/pkg/spatial"
)

// Result is the usual pierced-face output: the sorted set of faces
// involved in any intersection, and a symmetric adjacency map.
type Result struct {
	Faces []int32
	Map   map[int32][]int32
}

func newResult() *Result {
	return &Result{Map: make(map[int32][]int32)}
}

func (r *Result) record(f, g int32) {
	r.Map[f] = appendSorted(r.Map[f], g)
	r.Map[g] = appendSorted(r.Map[g], f)
}

func (r *Result) finalize() {
	r.Faces = make([]int32, 0, len(r.Map))
	for f := range r.Map {
		r.Faces = append(r.Faces, f)
	}
	sort.Slice(r.Faces, func(i, j int) bool { return r.Faces[i] < r.Faces[j] })
}

func appendSorted(list []int32, v int32) []int32 {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	list = append(list, v)
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

func buildTriangles(vertices [][3]float32, faces [][3]int32) []geom.Triangle {
	tris := make([]geom.Triangle, len(faces))
	for f, face := range faces {
		tris[f] = triangleAt(vertices, face)
	}
	return tris
}

func triangleAt(vertices [][3]float32, face [3]int32) geom.Triangle {
	return geom.Triangle{
		vecAt(vertices, face[0]),
		vecAt(vertices, face[1]),
		vecAt(vertices, face[2]),
	}
}

func vecAt(vertices [][3]float32, i int32) geom.Vec3 {
	v := vertices[i]
	return geom.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func buildAABBs(triangles []geom.Triangle) []geom.AABB {
	boxes := make([]geom.AABB, len(triangles))
	for i, t := range triangles {
		boxes[i] = t.AABB()
	}
	return boxes
}

// DetectFull builds a fresh triangle set, AABBs, and octree from (V,F) and
// reports every intersecting pair. It does not touch any persistent index.
func DetectFull(vertices [][3]float32, faces [][3]int32) *Result {
	triangles := buildTriangles(vertices, faces)
	aabbs := buildAABBs(triangles)
	tree := spatial.Build(triangles)

	result := newResult()
	for f := range triangles {
		var candidates []int32
		tree.Query(aabbs[f], &candidates)
		for _, g := range candidates {
			if g == int32(f) {
				continue
			}
			// Query candidate sets are not guaranteed symmetric (f's query
			// box need not equal g's), so both orderings are tried; record
			// is idempotent under repeated (f,g)/(g,f) calls.
			testPair(triangles, int32(f), g, result)
		}
	}
	result.finalize()
	return result
}

func testPair(triangles []geom.Triangle, f, g int32, result *Result) {
	a, b := triangles[f], triangles[g]
	if a.SharesVertex(b) {
		return
	}
	if !a.AABB().Intersects(b.AABB()) {
		return
	}
	if Intersects(a, b) {
		result.record(f, g)
	}
}
