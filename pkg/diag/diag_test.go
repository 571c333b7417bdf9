package diag

import "testing"

func squareMesh() ([][3]float32, [][3]int32) {
	vertices := [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	}
	faces := [][3]int32{{0, 1, 2}, {1, 3, 2}}
	return vertices, faces
}

func TestEngineDetectFreeEdges(t *testing.T) {
	vertices, faces := squareMesh()
	e := NewEngine()
	result := e.DetectFreeEdges(faces)
	if len(result.Value) != 4 {
		t.Errorf("DetectFreeEdges() = %d edges, want 4", len(result.Value))
	}
	if result.RunID.String() == "" {
		t.Error("RunID should be populated")
	}
	_ = vertices
}

func TestEngineAnalyzeFaceQuality(t *testing.T) {
	vertices, faces := squareMesh()
	e := NewEngine()
	result := e.AnalyzeFaceQuality(vertices, faces, 0.3)
	if result.Value.Stats.TotalFaces != 2 {
		t.Errorf("TotalFaces = %d, want 2", result.Value.Stats.TotalFaces)
	}
}

func TestEngineSpatialIndexLifecycle(t *testing.T) {
	vertices, faces := squareMesh()
	e := NewEngine()

	if err := e.InitializeSpatialIndex(vertices, faces); err != nil {
		t.Fatalf("InitializeSpatialIndex() error = %v", err)
	}
	if err := e.UpdateSpatialIndex(vertices, faces, []int32{0}); err != nil {
		t.Fatalf("UpdateSpatialIndex() error = %v", err)
	}

	result, err := e.DetectPiercedFacesLocal(vertices, faces, []int32{0})
	if err != nil {
		t.Fatalf("DetectPiercedFacesLocal() error = %v", err)
	}
	if len(result.Value.Faces) != 0 {
		t.Errorf("DetectPiercedFacesLocal() on coplanar mesh = %v, want none", result.Value.Faces)
	}
}

func TestEngineSummarize(t *testing.T) {
	vertices, faces := squareMesh()
	e := NewEngine()
	summary := e.Summarize(vertices, faces, 0.3, 0.5)
	if len(summary.FreeEdges) != 4 {
		t.Errorf("Summarize().FreeEdges = %d, want 4", len(summary.FreeEdges))
	}
	if summary.Quality.Stats.TotalFaces != 2 {
		t.Errorf("Summarize().Quality.Stats.TotalFaces = %d, want 2", summary.Quality.Stats.TotalFaces)
	}
}
