package proximity

import (
	"sort"

	"github.com/chazu/meshdiag/pkg/geom"
	"github.com/dhconnelly/rtreego"
)

// centroidBox is one face's centroid, stored in an rtree expanded by its
// own adjacency margin (threshold·avg_edge). Two faces can only satisfy
// d/min(li,lj) ≤ threshold if their margin-expanded boxes overlap, so the
// tree yields a safe candidate superset; BruteForce's exact adjacent()
// check still runs on every candidate.
type centroidBox struct {
	face   int32
	bounds rtreego.Rect
}

func (c *centroidBox) Bounds() rtreego.Rect { return c.bounds }

func expandedRect(c geom.Vec3, margin float64) rtreego.Rect {
	if margin < geom.EpsGeom {
		margin = geom.EpsGeom
	}
	p := rtreego.Point{c.X - margin, c.Y - margin, c.Z - margin}
	lengths := []float64{2 * margin, 2 * margin, 2 * margin}
	rect, err := rtreego.NewRect(p, lengths)
	if err != nil {
		// Degenerate (non-positive) lengths cannot occur given the margin
		// floor above; NewRect's error path is unreachable here.
		panic(err)
	}
	return rect
}

// Accelerated mirrors BruteForce's output but prefilters candidate pairs
// with an rtreego index over margin-expanded centroid boxes, addressing
// the detector's stated AABB-prefiltering gap. Output is equivalent to
// BruteForce, modulo pair ordering.
func Accelerated(triangles []geom.Triangle, threshold float64) []Pair {
	n := len(triangles)
	if n == 0 {
		return nil
	}

	tree := rtreego.NewTree(3, 4, 32)
	margins := make([]float64, n)
	boxes := make([]*centroidBox, n)
	for i, tri := range triangles {
		margin := threshold * tri.AvgEdge()
		margins[i] = margin
		boxes[i] = &centroidBox{face: int32(i), bounds: expandedRect(tri.Centroid(), margin)}
		tree.Insert(boxes[i])
	}

	seen := make(map[Pair]bool)
	var out []Pair
	for i := 0; i < n; i++ {
		ci := triangles[i].Centroid()
		li := triangles[i].AvgEdge()
		candidates := tree.SearchIntersect(boxes[i].bounds)
		for _, obj := range candidates {
			cb := obj.(*centroidBox)
			j := cb.face
			if j == int32(i) {
				continue
			}
			var p Pair
			if int32(i) < j {
				p = Pair{int32(i), j}
			} else {
				p = Pair{j, int32(i)}
			}
			if seen[p] {
				continue
			}
			if adjacent(ci, li, triangles[j], threshold) {
				seen[p] = true
				out = append(out, p)
			}
		}
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}
		return out[a].J < out[b].J
	})
	return out
}
