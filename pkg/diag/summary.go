package diag

import (
	"github.com/chazu/meshdiag/pkg/pierce"
	"github.com/chazu/meshdiag/pkg/proximity"
	"github.com/chazu/meshdiag/pkg/quality"
	"github.com/chazu/meshdiag/pkg/topology"
)

// Summary bundles the full diagnostic pass over one mesh into a single
// value, for reporting surfaces (text, SVG) that want every defect
// category at once rather than issuing nine separate calls.
type Summary struct {
	FreeEdges        []topology.Edge
	OverlappingEdges []topology.Edge
	NonManifold      []int32
	Quality          QualityReport
	Adjacent         []proximity.Pair
	Pierced          *pierce.Result
}

// Summarize runs every stateless detector over (vertices, faces) and
// returns their combined output. It does not touch the persistent spatial
// index; DetectPiercedFacesLocal remains the entry point for incremental
// callers.
func (e *Engine) Summarize(vertices [][3]float32, faces [][3]int32, qualityThreshold, proximityThreshold float64) Summary {
	edgeIdx := topology.BuildEdgeIndex(faces)
	free := topology.FreeEdges(edgeIdx)
	overlapping := topology.OverlappingEdges(vertices, faces)
	nonManifold := topology.NonManifoldVertices(free, 0)

	low, stats := quality.Analyze(vertices, faces, qualityThreshold)
	tris := trianglesOf(vertices, faces)
	adjacent := proximity.Accelerated(tris, proximityThreshold)
	pierced := pierce.DetectFull(vertices, faces)

	return Summary{
		FreeEdges:        free,
		OverlappingEdges: overlapping,
		NonManifold:      nonManifold,
		Quality:          QualityReport{LowQuality: low, Stats: stats},
		Adjacent:         adjacent,
		Pierced:          pierced,
	}
}
