package pierce

import (
	"testing"

	"github.com/chazu/meshdiag/pkg/geom"
)

func crossingMesh() ([][3]float32, [][3]int32) {
	// An axis-aligned triangle in the z=0 plane and a diagonal triangle
	// passing straight through its interior, sharing no vertex.
	vertices := [][3]float32{
		{-1, -1, 0}, {1, -1, 0}, {0, 1, 0},
		{0, -1, -1}, {0, -1, 1}, {0, 1, 0.001},
	}
	faces := [][3]int32{{0, 1, 2}, {3, 4, 5}}
	return vertices, faces
}

func TestIntersectsCrossingTriangles(t *testing.T) {
	vertices, faces := crossingMesh()
	a := triangleAt(vertices, faces[0])
	b := triangleAt(vertices, faces[1])
	if !Intersects(a, b) {
		t.Errorf("Intersects() = false, want true for crossing triangles")
	}
}

func TestIntersectsSeparatedTriangles(t *testing.T) {
	a := geom.Triangle{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	b := geom.Triangle{{X: 10, Y: 10, Z: 10}, {X: 11, Y: 10, Z: 10}, {X: 10, Y: 11, Z: 10}}
	if Intersects(a, b) {
		t.Errorf("Intersects() = true, want false for well-separated triangles")
	}
}

func TestDetectFullFindsCrossingPair(t *testing.T) {
	vertices, faces := crossingMesh()
	result := DetectFull(vertices, faces)

	if len(result.Faces) != 2 {
		t.Fatalf("Faces = %v, want both face 0 and 1", result.Faces)
	}
	if !contains(result.Map[0], 1) || !contains(result.Map[1], 0) {
		t.Errorf("Map = %v, want symmetric {0:[1], 1:[0]}", result.Map)
	}
}

func TestDetectFullExcludesSharedVertexPairs(t *testing.T) {
	vertices := [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	}
	faces := [][3]int32{{0, 1, 2}, {1, 3, 2}}
	result := DetectFull(vertices, faces)
	if len(result.Faces) != 0 {
		t.Errorf("Faces = %v, want none (triangles share an edge)", result.Faces)
	}
}

func TestIncrementalEquivalence(t *testing.T) {
	vertices, faces := crossingMesh()

	idx := NewIndex()
	if err := idx.Initialize(vertices, faces); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	// Move the second triangle far away, modifying all three of its
	// vertices, then run detect-local on its face.
	movedVertices := make([][3]float32, len(vertices))
	copy(movedVertices, vertices)
	for i := 3; i < 6; i++ {
		movedVertices[i] = [3]float32{
			movedVertices[i][0] + 1000,
			movedVertices[i][1] + 1000,
			movedVertices[i][2] + 1000,
		}
	}

	if err := idx.Update(movedVertices, faces, []int32{1}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	local, err := idx.DetectLocal(movedVertices, faces, []int32{1})
	if err != nil {
		t.Fatalf("DetectLocal() error = %v", err)
	}
	if len(local.Faces) != 0 {
		t.Errorf("DetectLocal() after move = %v, want empty", local.Faces)
	}

	full := DetectFull(movedVertices, faces)
	if len(full.Faces) != len(local.Faces) {
		t.Errorf("DetectFull/DetectLocal mismatch after move: %v vs %v", full.Faces, local.Faces)
	}
}

func TestUpdateReturnsBusyOnContention(t *testing.T) {
	idx := NewIndex()
	idx.mu.Lock()
	defer idx.mu.Unlock()

	err := idx.Update(nil, nil, nil)
	if err != ErrIndexBusy {
		t.Errorf("Update() error = %v, want ErrIndexBusy", err)
	}
}

func contains(list []int32, v int32) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
