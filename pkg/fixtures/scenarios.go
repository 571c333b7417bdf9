package fixtures

import "github.com/chazu/meshdiag/pkg/meshio"

// SingleTriangle returns one triangle with all three edges free.
func SingleTriangle() *meshio.Mesh {
	return &meshio.Mesh{
		Vertices: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    [][3]int32{{0, 1, 2}},
	}
}

// CoplanarSquare returns a unit square split into two triangles sharing
// the diagonal edge: 4 free boundary edges, no overlaps, no non-manifold
// vertices, no piercing. At the default 0.5 proximity threshold the two
// faces are adjacent (centroid distance / average edge ≈ 0.41).
func CoplanarSquare() *meshio.Mesh {
	return &meshio.Mesh{
		Vertices: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		Faces:    [][3]int32{{0, 1, 2}, {1, 3, 2}},
	}
}

// NonManifoldCross returns four open triangles meeting only at a shared
// central vertex, no two of which share an edge — the central vertex has
// four incident free edges and is reported non-manifold.
func NonManifoldCross() *meshio.Mesh {
	return &meshio.Mesh{
		Vertices: [][3]float32{
			{0, 0, 0},
			{1, 0, 0}, {1, 1, 0},
			{-1, 0, 0}, {-1, 1, 0},
			{0, 1, 1}, {0, 1, -1},
			{0, -1, 1}, {0, -1, -1},
		},
		Faces: [][3]int32{
			{0, 1, 2},
			{0, 3, 4},
			{0, 5, 6},
			{0, 7, 8},
		},
	}
}

// CrossingPair returns an axis-aligned triangle and a diagonal triangle
// that pierces its interior, sharing no vertex.
func CrossingPair() *meshio.Mesh {
	return &meshio.Mesh{
		Vertices: [][3]float32{
			{-1, -1, 0}, {1, -1, 0}, {0, 1, 0},
			{0, -1, -1}, {0, -1, 1}, {0, 1, 0.001},
		},
		Faces: [][3]int32{{0, 1, 2}, {3, 4, 5}},
	}
}

// DoubledEdge returns three coplanar triangles sharing one common edge,
// fanning out to three distinct third vertices: that shared edge has
// three incidences and is reported overlapping; the other six edges each
// have one incidence and are free.
func DoubledEdge() *meshio.Mesh {
	return &meshio.Mesh{
		Vertices: [][3]float32{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {1, 1, 0},
		},
		Faces: [][3]int32{
			{0, 1, 2},
			{0, 1, 3},
			{0, 1, 4},
		},
	}
}

// CrossingPairMovedApart is CrossingPair with the second triangle's three
// vertices translated far from the first, exercising the incremental
// spatial-index update path: after the move, detect-local on the moved
// face should report no intersection.
func CrossingPairMovedApart() *meshio.Mesh {
	m := CrossingPair()
	moved := &meshio.Mesh{
		Vertices: make([][3]float32, len(m.Vertices)),
		Faces:    m.Faces,
	}
	copy(moved.Vertices, m.Vertices)
	for i := 3; i < 6; i++ {
		v := moved.Vertices[i]
		moved.Vertices[i] = [3]float32{v[0] + 1000, v[1] + 1000, v[2] + 1000}
	}
	return moved
}
