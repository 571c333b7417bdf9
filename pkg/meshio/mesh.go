// Package meshio loads triangle surface meshes from STL and NAS/Nastran
// files. It is a thin I/O boundary: it produces vertex and face tables and
// never validates or repairs mesh topology.
package meshio

// Mesh is a triangle mesh in the flat, single-precision boundary layout.
// Coordinates are stored in float32 at this boundary; detectors promote to
// float64 internally.
type Mesh struct {
	Vertices [][3]float32 // n rows
	Faces    [][3]int32   // m rows, indices into Vertices
	Normals  [][3]float32 // optional, one per face, as read from the file
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Faces) == 0
}
