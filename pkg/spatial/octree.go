// Package spatial implements a face-bucket octree over triangle centroids,
// used to prune candidate pairs before exact intersection tests.
package spatial

import "github.com/chazu/meshdiag/pkg/geom"

const (
	maxDepth    = 8
	leafFaces   = 20
	paddingFrac = 1.01
)

// node is one octree cell, held in a flat arena rather than as a
// heap-allocated tree: children are indices into Tree.nodes, with -1
// meaning "no child", which keeps construction linear and makes a full
// rebuild a matter of resetting a slice.
type node struct {
	center   geom.Vec3
	size     float64 // half-width of the cube
	depth    int
	faces    []int32 // leaf: candidate set; internal: empty once split
	children [8]int32
}

// Tree is an index-and-arena octree: build once from triangle centroids,
// then answer AABB-overlap candidate queries repeatedly.
type Tree struct {
	nodes []node
}

// Build constructs the octree over the given triangles' centroids and
// AABBs, per the face-bucket variant: a node is a leaf when depth ≥ 8 or
// it holds ≤ 20 faces, and the bounding cube is padded 1% so every
// centroid falls strictly inside.
func Build(triangles []geom.Triangle) *Tree {
	t := &Tree{}
	if len(triangles) == 0 {
		return t
	}

	box := geom.EmptyAABB()
	centroids := make([]geom.Vec3, len(triangles))
	for i, tri := range triangles {
		centroids[i] = tri.Centroid()
		box = box.Union(tri.AABB())
	}

	center := box.Center()
	extent := 0.0
	for axis := 0; axis < 3; axis++ {
		d := componentExtent(box, axis)
		if d > extent {
			extent = d
		}
	}
	size := paddingFrac * (extent / 2)
	if size < geom.EpsGeom {
		size = geom.EpsGeom
	}

	faceIdx := make([]int32, len(triangles))
	for i := range faceIdx {
		faceIdx[i] = int32(i)
	}

	rootIdx := t.newNode(center, size, 0)
	t.subdivide(rootIdx, faceIdx, centroids)
	return t
}

func componentExtent(box geom.AABB, axis int) float64 {
	switch axis {
	case 0:
		return box.Max.X - box.Min.X
	case 1:
		return box.Max.Y - box.Min.Y
	default:
		return box.Max.Z - box.Min.Z
	}
}

func (t *Tree) newNode(center geom.Vec3, size float64, depth int) int32 {
	n := node{center: center, size: size, depth: depth}
	for i := range n.children {
		n.children[i] = -1
	}
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

func (t *Tree) subdivide(idx int32, faces []int32, centroids []geom.Vec3) {
	n := &t.nodes[idx]
	if n.depth >= maxDepth || len(faces) <= leafFaces {
		n.faces = faces
		return
	}

	var buckets [8][]int32
	for _, f := range faces {
		oct := octant(n.center, centroids[f])
		buckets[oct] = append(buckets[oct], f)
	}

	childSize := n.size / 2
	for oct, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		childCenter := childCenterFor(n.center, n.size, oct)
		childIdx := t.newNode(childCenter, childSize, n.depth+1)
		t.subdivide(childIdx, bucket, centroids)
		// n may have been invalidated by appends to t.nodes in the
		// recursive call; re-fetch before writing.
		t.nodes[idx].children[oct] = childIdx
	}
}

func octant(center, p geom.Vec3) int {
	oct := 0
	if p.X >= center.X {
		oct |= 1
	}
	if p.Y >= center.Y {
		oct |= 2
	}
	if p.Z >= center.Z {
		oct |= 4
	}
	return oct
}

func childCenterFor(center geom.Vec3, size float64, oct int) geom.Vec3 {
	half := size / 2
	dx, dy, dz := -half, -half, -half
	if oct&1 != 0 {
		dx = half
	}
	if oct&2 != 0 {
		dy = half
	}
	if oct&4 != 0 {
		dz = half
	}
	return geom.Vec3{X: center.X + dx, Y: center.Y + dy, Z: center.Z + dz}
}

func (n *node) aabb() geom.AABB {
	return geom.AABB{
		Min: geom.Vec3{X: n.center.X - n.size, Y: n.center.Y - n.size, Z: n.center.Z - n.size},
		Max: geom.Vec3{X: n.center.X + n.size, Y: n.center.Y + n.size, Z: n.center.Z + n.size},
	}
}

// Query appends every face whose cell's AABB overlaps bbox to out. The
// caller is responsible for de-duplication and self-exclusion.
func (t *Tree) Query(bbox geom.AABB, out *[]int32) {
	if len(t.nodes) == 0 {
		return
	}
	t.queryNode(0, bbox, out)
}

func (t *Tree) queryNode(idx int32, bbox geom.AABB, out *[]int32) {
	n := &t.nodes[idx]
	if !n.aabb().Intersects(bbox) {
		return
	}
	if len(n.faces) > 0 || allChildrenEmpty(n) {
		*out = append(*out, n.faces...)
		return
	}
	for _, child := range n.children {
		if child >= 0 {
			t.queryNode(child, bbox, out)
		}
	}
}

func allChildrenEmpty(n *node) bool {
	for _, c := range n.children {
		if c >= 0 {
			return false
		}
	}
	return true
}
