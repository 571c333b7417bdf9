package topology

import "testing"

func TestFreeEdgesCoplanarSquare(t *testing.T) {
	// Unit square split into two triangles sharing the diagonal edge.
	faces := [][3]int32{{0, 1, 2}, {1, 3, 2}}
	idx := BuildEdgeIndex(faces)
	free := FreeEdges(idx)
	if len(free) != 4 {
		t.Errorf("FreeEdges() = %d edges, want 4", len(free))
	}
	shared := canonicalEdge(1, 2)
	if fs, ok := idx.Incidence(shared); !ok || len(fs) != 2 {
		t.Errorf("shared diagonal incidence = %v, want 2 faces", fs)
	}
}

func TestFreeEdgesClosedMeshIsEmpty(t *testing.T) {
	// Every edge incident to exactly two faces.
	faces := [][3]int32{{0, 1, 2}, {1, 3, 2}, {0, 2, 3}, {0, 3, 1}}
	idx := BuildEdgeIndex(faces)
	for _, e := range idx.Edges() {
		fs, _ := idx.Incidence(e)
		if len(fs) != 2 {
			t.Fatalf("setup invariant broken: edge %v has %d incidences", e, len(fs))
		}
	}
	if free := FreeEdges(idx); len(free) != 0 {
		t.Errorf("FreeEdges() = %d, want 0 for a closed mesh", len(free))
	}
}

func TestNonManifoldVertexAtCross(t *testing.T) {
	// Four open strips meeting only at a shared central vertex 0, each
	// strip an isolated triangle sharing no edges with the others.
	faces := [][3]int32{
		{0, 1, 2},
		{0, 3, 4},
		{0, 5, 6},
		{0, 7, 8},
	}
	idx := BuildEdgeIndex(faces)
	free := FreeEdges(idx)
	nonManifold := NonManifoldVertices(free, 0)

	found := false
	for _, v := range nonManifold {
		if v == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("NonManifoldVertices() = %v, want vertex 0 present", nonManifold)
	}
}

func TestOverlappingEdgesDoubledEdge(t *testing.T) {
	// Three coplanar triangles sharing one common edge (0,1), fanning out
	// to three distinct third vertices.
	vertices := [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {1, 1, 0},
	}
	faces := [][3]int32{
		{0, 1, 2},
		{0, 1, 3},
		{0, 1, 4},
	}
	overlaps := OverlappingEdges(vertices, faces)
	if len(overlaps) != 1 {
		t.Fatalf("OverlappingEdges() = %d, want 1", len(overlaps))
	}
	if overlaps[0] != (Edge{0, 1}) {
		t.Errorf("OverlappingEdges()[0] = %v, want {0,1}", overlaps[0])
	}
}

func TestOverlappingEdgesMergesDuplicateVertices(t *testing.T) {
	// Vertex 3 duplicates vertex 1's position; the shared edge should
	// still be detected as overlapping via the geometric key.
	vertices := [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 0, 0}, {0, -1, 0},
	}
	faces := [][3]int32{
		{0, 1, 2},
		{0, 3, 4},
	}
	overlaps := OverlappingEdges(vertices, faces)
	if len(overlaps) != 0 {
		t.Errorf("OverlappingEdges() = %d, want 0 (only two incidences)", len(overlaps))
	}

	facesTriple := [][3]int32{
		{0, 1, 2},
		{0, 3, 4},
		{0, 1, 4},
	}
	overlaps = OverlappingEdges(vertices, facesTriple)
	if len(overlaps) != 1 {
		t.Errorf("OverlappingEdges() = %d, want 1 merged geometric edge", len(overlaps))
	}
}
