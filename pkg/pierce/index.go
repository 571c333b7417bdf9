package pierce

import (
	"log"
	"sync"

	"github.com/samber/lo"

	"github.com/chazu/meshdiag/pkg/geom"
	"github.com/chazu/meshdiag/pkg/spatial"
)

type indexState int

const (
	uninitialized indexState = iota
	initializedState
)

// rebuildFraction is the fraction of modified faces beyond which an Update
// forces a full octree rebuild, per the persistent-index lifecycle.
const rebuildFraction = 0.1

// Index is an opaque handle over a persistent spatial index: the cached
// triangles, AABBs, and octree from the last (re)build, plus the mesh
// counts used to detect staleness. Exactly one caller may hold it at a
// time; Initialize, Update, and DetectLocal all attempt a non-blocking
// lock and return ErrIndexBusy on contention rather than serializing.
type Index struct {
	mu sync.Mutex

	state     indexState
	triangles []geom.Triangle
	aabbs     []geom.AABB
	tree      *spatial.Tree
	m, n      int // face, vertex counts at last build
}

// NewIndex returns an uninitialized index.
func NewIndex() *Index {
	return &Index{}
}

// Initialize builds the index from scratch and stores it.
func (idx *Index) Initialize(vertices [][3]float32, faces [][3]int32) error {
	if !idx.mu.TryLock() {
		return ErrIndexBusy
	}
	defer idx.mu.Unlock()

	idx.rebuild(vertices, faces)
	return nil
}

func (idx *Index) rebuild(vertices [][3]float32, faces [][3]int32) {
	idx.triangles = buildTriangles(vertices, faces)
	idx.aabbs = buildAABBs(idx.triangles)
	idx.tree = spatial.Build(idx.triangles)
	idx.m = len(faces)
	idx.n = len(vertices)
	idx.state = initializedState
}

// Update recomputes the triangles and AABBs for the modified faces. If the
// mesh's face or vertex count has changed since the last build, or the
// modified set exceeds 10% of m, the octree is rebuilt wholesale;
// otherwise it is left in place and subsequent queries return a (still
// correct) candidate superset. Invalid face indices are logged and
// skipped; the run continues.
func (idx *Index) Update(vertices [][3]float32, faces [][3]int32, modified []int32) error {
	if !idx.mu.TryLock() {
		return ErrIndexBusy
	}
	defer idx.mu.Unlock()

	if idx.state == uninitialized || len(faces) != idx.m || len(vertices) != idx.n {
		idx.rebuild(vertices, faces)
		return nil
	}

	for _, f := range modified {
		if f < 0 || int(f) >= len(faces) {
			log.Printf("pierce: update skipped invalid face index %d", f)
			continue
		}
		idx.triangles[f] = triangleAt(vertices, faces[f])
		idx.aabbs[f] = idx.triangles[f].AABB()
	}

	if float64(len(modified)) > rebuildFraction*float64(idx.m) {
		idx.tree = spatial.Build(idx.triangles)
	}

	return nil
}

// DetectLocal expands targets to a candidate set by walking the octree
// from each target's AABB, then runs SAT once for every (target, candidate)
// pair, restricted to pairs touching a target; each hit is recorded under
// both faces in the result map. A call on an uninitialized index implicitly
// initializes it from (vertices, faces).
func (idx *Index) DetectLocal(vertices [][3]float32, faces [][3]int32, targets []int32) (*Result, error) {
	if !idx.mu.TryLock() {
		return nil, ErrIndexBusy
	}
	defer idx.mu.Unlock()

	if idx.state == uninitialized {
		idx.rebuild(vertices, faces)
	}

	targetSet := make(map[int32]bool, len(targets))
	candidateSet := make(map[int32]bool)
	for _, t := range targets {
		if t < 0 || int(t) >= len(idx.triangles) {
			log.Printf("pierce: detect-local skipped invalid target %d", t)
			continue
		}
		targetSet[t] = true
		candidateSet[t] = true

		var found []int32
		idx.tree.Query(idx.aabbs[t], &found)
		for _, c := range lo.Uniq(found) {
			candidateSet[c] = true
		}
	}

	result := newResult()
	for _, t := range lo.Keys(targetSet) {
		for _, c := range lo.Keys(candidateSet) {
			if c == t {
				continue
			}
			testPair(idx.triangles, t, c, result)
		}
	}
	result.finalize()
	return result, nil
}
