// Package diag orchestrates the geometry, topology, quality, proximity, and
// piercing detectors behind a single narrow surface, timing every
// operation for parity with the original engine's timing contract.
package diag

import (
	"time"

	"github.com/google/uuid"

	"github.com/chazu/meshdiag/pkg/geom"
	"github.com/chazu/meshdiag/pkg/pierce"
	"github.com/chazu/meshdiag/pkg/proximity"
	"github.com/chazu/meshdiag/pkg/quality"
	"github.com/chazu/meshdiag/pkg/topology"
)

// Result wraps any detector's output with the elapsed wall-clock time and
// a run identifier, so callers and logs can correlate a value with the
// invocation that produced it.
type Result[T any] struct {
	Value   T
	Elapsed time.Duration
	RunID   uuid.UUID
}

func timed[T any](fn func() T) Result[T] {
	start := time.Now()
	v := fn()
	return Result[T]{Value: v, Elapsed: time.Since(start), RunID: uuid.New()}
}

// Engine is the diagnostic orchestrator: it dispatches across the
// individual detector packages and owns the one persistent spatial index
// used by the pierced-face detector's incremental mode.
type Engine struct {
	index *pierce.Index
}

// NewEngine returns an Engine with an uninitialized spatial index.
func NewEngine() *Engine {
	return &Engine{index: pierce.NewIndex()}
}

func trianglesOf(vertices [][3]float32, faces [][3]int32) []geom.Triangle {
	tris := make([]geom.Triangle, len(faces))
	for i, face := range faces {
		tris[i] = geom.Triangle{
			vec3At(vertices, face[0]),
			vec3At(vertices, face[1]),
			vec3At(vertices, face[2]),
		}
	}
	return tris
}

func vec3At(vertices [][3]float32, i int32) geom.Vec3 {
	v := vertices[i]
	return geom.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// DetectFreeEdges reports every edge with exactly one incident face.
func (e *Engine) DetectFreeEdges(faces [][3]int32) Result[[]topology.Edge] {
	return timed(func() []topology.Edge {
		idx := topology.BuildEdgeIndex(faces)
		return topology.FreeEdges(idx)
	})
}

// DetectOverlappingEdges reports edges shared by more than two face-edge
// incidences under the geometric (quantized-endpoint) edge key. The
// quantization grid is fixed at topology's 1e-5 (quantPrecision); tol is
// accepted for parity with the external operation signature and unused.
func (e *Engine) DetectOverlappingEdges(vertices [][3]float32, faces [][3]int32, _ float64) Result[[]topology.Edge] {
	return timed(func() []topology.Edge {
		return topology.OverlappingEdges(vertices, faces)
	})
}

// DetectNonManifoldVertices reports vertices incident to four or more free
// edges. tol is accepted for future use, currently unused.
func (e *Engine) DetectNonManifoldVertices(vertices [][3]float32, faces [][3]int32, tol float64) Result[[]int32] {
	return timed(func() []int32 {
		idx := topology.BuildEdgeIndex(faces)
		free := topology.FreeEdges(idx)
		return topology.NonManifoldVertices(free, tol)
	})
}

// QualityReport is the analyze-face-quality operation's paired output.
type QualityReport struct {
	LowQuality []int32
	Stats      quality.Stats
}

// AnalyzeFaceQuality scores every face by 2·r/R and reports faces below
// threshold plus aggregate statistics.
func (e *Engine) AnalyzeFaceQuality(vertices [][3]float32, faces [][3]int32, threshold float64) Result[QualityReport] {
	return timed(func() QualityReport {
		low, stats := quality.Analyze(vertices, faces, threshold)
		return QualityReport{LowQuality: low, Stats: stats}
	})
}

// DetectAdjacentFaces reports face pairs whose centroids lie within
// proximityThreshold of their minimum average edge length. Uses the
// rtreego-backed accelerated path.
func (e *Engine) DetectAdjacentFaces(vertices [][3]float32, faces [][3]int32, proximityThreshold float64) Result[[]proximity.Pair] {
	return timed(func() []proximity.Pair {
		tris := trianglesOf(vertices, faces)
		return proximity.Accelerated(tris, proximityThreshold)
	})
}

// DetectPiercedFaces runs full-mesh SAT-based intersection detection. It
// does not touch the Engine's persistent spatial index.
func (e *Engine) DetectPiercedFaces(vertices [][3]float32, faces [][3]int32) Result[*pierce.Result] {
	return timed(func() *pierce.Result {
		return pierce.DetectFull(vertices, faces)
	})
}

// InitializeSpatialIndex builds and stores the persistent index.
func (e *Engine) InitializeSpatialIndex(vertices [][3]float32, faces [][3]int32) error {
	return e.index.Initialize(vertices, faces)
}

// UpdateSpatialIndex incrementally refreshes the persistent index for the
// given modified faces, rebuilding the octree if the change is too large
// or the mesh shape changed.
func (e *Engine) UpdateSpatialIndex(vertices [][3]float32, faces [][3]int32, modifiedFaces []int32) error {
	return e.index.Update(vertices, faces, modifiedFaces)
}

// DetectPiercedFacesLocal restricts intersection detection to pairs
// touching targetFaces, using the persistent index (which is implicitly
// initialized if this is the first call).
func (e *Engine) DetectPiercedFacesLocal(vertices [][3]float32, faces [][3]int32, targetFaces []int32) (Result[*pierce.Result], error) {
	start := time.Now()
	res, err := e.index.DetectLocal(vertices, faces, targetFaces)
	if err != nil {
		return Result[*pierce.Result]{}, err
	}
	return Result[*pierce.Result]{Value: res, Elapsed: time.Since(start), RunID: uuid.New()}, nil
}
